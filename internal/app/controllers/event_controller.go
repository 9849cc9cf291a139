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

// EventController handles event endpoints
type EventController struct {
	eventService *services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService *services.EventService) *EventController {
	return &EventController{eventService: eventService}
}

// CreateEvent creates a new event
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Event information"
// @Success 201 {object} dto.EventResponse
// @Router /events [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	event := models.Event{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
		Location:    req.Location,
	}
	if err := c.eventService.Create(ctx, &event); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewEventResponse(&event))
}

// GetEvents lists upcoming events; all=true includes past ones
// @Summary List events
// @Tags events
// @Produce json
// @Param all query bool false "Include past events"
// @Success 200 {array} dto.EventResponse
// @Router /events [get]
func (c *EventController) GetEvents(ctx *gin.Context) {
	var (
		events []models.Event
		err    error
	)
	if all, perr := strconv.ParseBool(ctx.Query("all")); perr == nil && all {
		events, err = c.eventService.List(ctx)
	} else {
		events, err = c.eventService.ListUpcoming(ctx)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		responses = append(responses, dto.NewEventResponse(&events[i]))
	}
	ctx.JSON(http.StatusOK, responses)
}

// GetEventByID retrieves a single event
// @Summary Get event details
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Router /events/{id} [get]
func (c *EventController) GetEventByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	event, err := c.eventService.Get(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEventResponse(event))
}

// UpdateEvent applies a partial update to an event
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param request body dto.UpdateEventRequest true "Fields to update"
// @Success 200 {object} dto.EventResponse
// @Router /events/{id} [put]
func (c *EventController) UpdateEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	patch := storage.EventPatch{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
		Location:    req.Location,
	}

	event, err := c.eventService.Update(ctx, id, patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEventResponse(event))
}

// DeleteEvent removes an event
// @Summary Delete an event
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} dto.MessageResponse
// @Router /events/{id} [delete]
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.eventService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Event deleted"})
}
