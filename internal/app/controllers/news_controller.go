package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ecem/goodworks/internal/app/models"
	"github.com/ecem/goodworks/internal/app/models/dto"
	"github.com/ecem/goodworks/internal/app/services"
	"github.com/ecem/goodworks/internal/middleware"
	"github.com/ecem/goodworks/internal/storage"
)

// NewsController handles news endpoints
type NewsController struct {
	newsService *services.NewsService
}

// NewNewsController creates a new NewsController
func NewNewsController(newsService *services.NewsService) *NewsController {
	return &NewsController{newsService: newsService}
}

// CreateNews submits a new draft news item
// @Summary Create a news item
// @Tags news
// @Accept json
// @Produce json
// @Param request body dto.CreateNewsRequest true "News information"
// @Success 201 {object} dto.NewsResponse
// @Router /news [post]
func (c *NewsController) CreateNews(ctx *gin.Context) {
	var req dto.CreateNewsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	item := models.News{
		Title:          req.Title,
		Content:        req.Content,
		Summary:        req.Summary,
		AuthorID:       req.AuthorID,
		RelatedWorkIDs: req.RelatedWorkIDs,
	}
	if err := c.newsService.Create(ctx, &item); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp, err := c.newsService.ToResponse(ctx, &item)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetNews lists published news items; all=true includes drafts
// @Summary List news
// @Tags news
// @Produce json
// @Param all query bool false "Include unpublished drafts"
// @Success 200 {array} dto.NewsResponse
// @Router /news [get]
func (c *NewsController) GetNews(ctx *gin.Context) {
	var (
		items []models.News
		err   error
	)
	if all, perr := strconv.ParseBool(ctx.Query("all")); perr == nil && all {
		items, err = c.newsService.List(ctx)
	} else {
		items, err = c.newsService.ListPublished(ctx)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses, err := c.newsService.ToResponseList(ctx, items)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, responses)
}

// GetNewsByID retrieves a single news item
// @Summary Get news details
// @Tags news
// @Produce json
// @Param id path int true "News ID"
// @Success 200 {object} dto.NewsResponse
// @Router /news/{id} [get]
func (c *NewsController) GetNewsByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	item, err := c.newsService.Get(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp, err := c.newsService.ToResponse(ctx, item)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateNews applies a partial update, including publishing
// @Summary Update a news item
// @Tags news
// @Accept json
// @Produce json
// @Param id path int true "News ID"
// @Param request body dto.UpdateNewsRequest true "Fields to update"
// @Success 200 {object} dto.NewsResponse
// @Router /news/{id} [put]
func (c *NewsController) UpdateNews(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateNewsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	patch := storage.NewsPatch{
		Title:          req.Title,
		Content:        req.Content,
		Summary:        req.Summary,
		AuthorID:       req.AuthorID,
		RelatedWorkIDs: req.RelatedWorkIDs,
		Published:      req.Published,
	}

	item, err := c.newsService.Update(ctx, id, patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp, err := c.newsService.ToResponse(ctx, item)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteNews removes a news item
// @Summary Delete a news item
// @Tags news
// @Produce json
// @Param id path int true "News ID"
// @Success 200 {object} dto.MessageResponse
// @Router /news/{id} [delete]
func (c *NewsController) DeleteNews(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.newsService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "News deleted"})
}
