package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/raffles-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/raffles-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/raffles-api/internal/domain"
)

type EventService interface {
	ListEvents(ctx context.Context) ([]domain.Event, error)
	GetEvent(ctx context.Context, id uint) (domain.Event, error)
	CreateEvent(ctx context.Context, in domain.EventInput) (domain.Event, error)
	UpdateEvent(ctx context.Context, id uint, in domain.EventInput) (domain.Event, error)
	DeleteEvent(ctx context.Context, id uint) error
}

type EventHandler struct {
	svc EventService
}

func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{
		svc: svc,
	}
}

// HandleListEvents godoc
// @Summary      List events
// @Tags         events
// @Produce      json
// @Success      200  {object}  response.Data{data=[]response.Event}
// @Failure      401  {object}  response.Err
// @Failure      503  {object}  response.Err
// @Router       /events [get]
func (h *EventHandler) HandleListEvents(ctx *gin.Context) {
	events, err := h.svc.ListEvents(ctx.Request.Context())
	if err != nil {
		response.RenderError(ctx, fmt.Errorf("v1.HandleListEvents -> h.svc.ListEvents -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.Data{
		Data: response.NewEvents(events),
	})
}

// HandleGetEvent godoc
// @Summary      Get an event
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "event ID"
// @Success      200      {object}  response.Data{data=response.Event}
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Router       /events/{eventID} [get]
func (h *EventHandler) HandleGetEvent(ctx *gin.Context) {
	id, err := pathID(ctx, "eventID")
	if err != nil {
		response.RenderError(ctx, err)
		return
	}

	event, err := h.svc.GetEvent(ctx.Request.Context(), id)
	if err != nil {
		response.RenderError(ctx, fmt.Errorf("v1.HandleGetEvent -> h.svc.GetEvent -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.Data{
		Data: response.NewEvent(event),
	})
}

// HandleCreateEvent godoc
// @Summary      Create an event
// @Tags         events
// @Accept       mpfd,json
// @Produce      json
// @Param        name                    formData  string  true   "event name"
// @Param        organization            formData  string  true   "organization name"
// @Param        event_photo_url         formData  file    false  "event photo"
// @Param        organization_photo_url  formData  file    false  "organization photo"
// @Success      201                     {object}  response.EventSaved
// @Failure      401                     {object}  response.Err
// @Failure      419                     {object}  response.Err
// @Failure      422                     {object}  response.Err
// @Router       /events [post]
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	var req request.EventRequest
	if err := request.Bind(ctx, &req); err != nil {
		response.RenderError(ctx, err)
		return
	}

	if err := req.ValidateCreate(); err != nil {
		response.RenderError(ctx, err)
		return
	}

	var uploads request.Uploads
	defer uploads.Close()

	in, err := req.Input(&uploads)
	if err != nil {
		response.RenderError(ctx, fmt.Errorf("v1.HandleCreateEvent -> req.Input -> %w", err))
		return
	}

	event, err := h.svc.CreateEvent(ctx.Request.Context(), in)
	if err != nil {
		response.RenderError(ctx, fmt.Errorf("v1.HandleCreateEvent -> h.svc.CreateEvent -> %w", err))
		return
	}

	ctx.JSON(http.StatusCreated, response.EventSaved{
		Message: "event created",
		Event:   response.NewEvent(event),
	})
}

// HandleUpdateEvent godoc
// @Summary      Update an event
// @Description  Only the sent fields change. A sent photo replaces the stored one.
// @Tags         events
// @Accept       mpfd,json
// @Produce      json
// @Param        eventID                 path      int     true   "event ID"
// @Param        name                    formData  string  false  "event name"
// @Param        organization            formData  string  false  "organization name"
// @Param        event_photo_url         formData  file    false  "event photo"
// @Param        organization_photo_url  formData  file    false  "organization photo"
// @Success      200                     {object}  response.EventSaved
// @Failure      404                     {object}  response.Err
// @Failure      419                     {object}  response.Err
// @Failure      422                     {object}  response.Err
// @Router       /events/{eventID} [patch]
func (h *EventHandler) HandleUpdateEvent(ctx *gin.Context) {
	id, err := pathID(ctx, "eventID")
	if err != nil {
		response.RenderError(ctx, err)
		return
	}

	var req request.EventRequest
	if err = request.Bind(ctx, &req); err != nil {
		response.RenderError(ctx, err)
		return
	}

	if err = req.ValidateUpdate(); err != nil {
		response.RenderError(ctx, err)
		return
	}

	var uploads request.Uploads
	defer uploads.Close()

	in, err := req.Input(&uploads)
	if err != nil {
		response.RenderError(ctx, fmt.Errorf("v1.HandleUpdateEvent -> req.Input -> %w", err))
		return
	}

	event, err := h.svc.UpdateEvent(ctx.Request.Context(), id, in)
	if err != nil {
		response.RenderError(ctx, fmt.Errorf("v1.HandleUpdateEvent -> h.svc.UpdateEvent -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.EventSaved{
		Message: "event updated",
		Event:   response.NewEvent(event),
	})
}

// HandleDeleteEvent godoc
// @Summary      Delete an event and its photos
// @Tags         events
// @Param        eventID  path  int  true  "event ID"
// @Success      204
// @Failure      404  {object}  response.Err
// @Failure      419  {object}  response.Err
// @Router       /events/{eventID} [delete]
func (h *EventHandler) HandleDeleteEvent(ctx *gin.Context) {
	id, err := pathID(ctx, "eventID")
	if err != nil {
		response.RenderError(ctx, err)
		return
	}

	if err = h.svc.DeleteEvent(ctx.Request.Context(), id); err != nil {
		response.RenderError(ctx, fmt.Errorf("v1.HandleDeleteEvent -> h.svc.DeleteEvent -> %w", err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
