package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecem/goodworks/internal/app/models/dto"
	"github.com/ecem/goodworks/internal/app/services"
	"github.com/ecem/goodworks/internal/middleware"
	"github.com/ecem/goodworks/internal/storage"
)

// SiteController handles the cross-cutting endpoints: stats, contact and
// health.
type SiteController struct {
	statsService   *services.StatsService
	contactService *services.ContactService
	store          storage.Store
	backend        string
}

// NewSiteController creates a new SiteController. backend names the storage
// backend selected at startup.
func NewSiteController(statsService *services.StatsService, contactService *services.ContactService, store storage.Store, backend string) *SiteController {
	return &SiteController{
		statsService:   statsService,
		contactService: contactService,
		store:          store,
		backend:        backend,
	}
}

// GetStats returns the aggregate landing page counters
// @Summary Get site statistics
// @Tags site
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Router /stats [get]
func (c *SiteController) GetStats(ctx *gin.Context) {
	stats, err := c.statsService.Collect(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// PostContact accepts a contact form submission
// @Summary Submit the contact form
// @Tags site
// @Accept json
// @Produce json
// @Param request body dto.ContactRequest true "Contact message"
// @Success 200 {object} dto.ContactResponse
// @Router /contact [post]
func (c *SiteController) PostContact(ctx *gin.Context) {
	var req dto.ContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, c.contactService.Submit(ctx, req))
}

// GetHealth reports liveness and the active storage backend
// @Summary Health check
// @Tags site
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (c *SiteController) GetHealth(ctx *gin.Context) {
	if err := c.store.Ping(ctx); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, dto.HealthResponse{
			Status:  "degraded",
			Storage: c.backend,
		})
		return
	}
	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "ok",
		Storage: c.backend,
	})
}
