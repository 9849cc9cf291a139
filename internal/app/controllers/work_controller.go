package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecem/goodworks/internal/app/models"
	"github.com/ecem/goodworks/internal/app/models/dto"
	"github.com/ecem/goodworks/internal/app/services"
	"github.com/ecem/goodworks/internal/middleware"
	"github.com/ecem/goodworks/internal/storage"
)

// WorkController handles volunteer work endpoints
type WorkController struct {
	workService *services.WorkService
}

// NewWorkController creates a new WorkController
func NewWorkController(workService *services.WorkService) *WorkController {
	return &WorkController{workService: workService}
}

// CreateWork submits a new work for moderation
// @Summary Submit a work
// @Tags works
// @Accept json
// @Produce json
// @Param request body dto.CreateWorkRequest true "Work information"
// @Success 201 {object} dto.WorkResponse
// @Router /works [post]
func (c *WorkController) CreateWork(ctx *gin.Context) {
	var req dto.CreateWorkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	work := models.Work{
		Title:              req.Title,
		Description:        req.Description,
		Category:           req.Category,
		AuthorID:           req.AuthorID,
		WorkDate:           req.WorkDate,
		BeneficiariesCount: req.BeneficiariesCount,
		Images:             req.Images,
	}
	if err := c.workService.Create(ctx, &work); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp, err := c.workService.ToResponse(ctx, &work)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetWorks lists works, optionally filtered by category
// @Summary List works
// @Tags works
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {array} dto.WorkResponse
// @Router /works [get]
func (c *WorkController) GetWorks(ctx *gin.Context) {
	works, err := c.workService.List(ctx, ctx.Query("category"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses, err := c.workService.ToResponseList(ctx, works)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, responses)
}

// GetWorkByID retrieves a single work
// @Summary Get work details
// @Tags works
// @Produce json
// @Param id path int true "Work ID"
// @Success 200 {object} dto.WorkResponse
// @Router /works/{id} [get]
func (c *WorkController) GetWorkByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	work, err := c.workService.Get(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp, err := c.workService.ToResponse(ctx, work)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateWork applies a partial update, including approval
// @Summary Update a work
// @Tags works
// @Accept json
// @Produce json
// @Param id path int true "Work ID"
// @Param request body dto.UpdateWorkRequest true "Fields to update"
// @Success 200 {object} dto.WorkResponse
// @Router /works/{id} [put]
func (c *WorkController) UpdateWork(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateWorkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	patch := storage.WorkPatch{
		Title:              req.Title,
		Description:        req.Description,
		Category:           req.Category,
		AuthorID:           req.AuthorID,
		WorkDate:           req.WorkDate,
		BeneficiariesCount: req.BeneficiariesCount,
		Images:             req.Images,
		Approved:           req.Approved,
	}

	work, err := c.workService.Update(ctx, id, patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp, err := c.workService.ToResponse(ctx, work)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteWork removes a work
// @Summary Delete a work
// @Tags works
// @Produce json
// @Param id path int true "Work ID"
// @Success 200 {object} dto.MessageResponse
// @Router /works/{id} [delete]
func (c *WorkController) DeleteWork(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.workService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Work deleted"})
}
