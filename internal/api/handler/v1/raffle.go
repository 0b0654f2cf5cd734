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

type RaffleService interface {
	ListRaffles(ctx context.Context) ([]domain.Raffle, error)
	GetRaffle(ctx context.Context, id uint) (domain.Raffle, error)
	CreateRaffle(ctx context.Context, in domain.RaffleInput) (domain.Raffle, error)
	UpdateRaffle(ctx context.Context, id uint, in domain.RaffleInput) (domain.Raffle, error)
	DeleteRaffle(ctx context.Context, id uint) error
}

type RaffleHandler struct {
	svc RaffleService
}

func NewRaffleHandler(svc RaffleService) *RaffleHandler {
	return &RaffleHandler{
		svc: svc,
	}
}

// HandleListRaffles godoc
// @Summary      List raffles
// @Tags         raffles
// @Produce      json
// @Success      200  {object}  response.Data{data=[]response.Raffle}
// @Failure      401  {object}  response.Err
// @Router       /raffles [get]
func (h *RaffleHandler) HandleListRaffles(ctx *gin.Context) {
	raffles, err := h.svc.ListRaffles(ctx.Request.Context())
	if err != nil {
		response.RenderError(ctx, fmt.Errorf("v1.HandleListRaffles -> h.svc.ListRaffles -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.Data{
		Data: response.NewRaffles(raffles),
	})
}

// HandleGetRaffle godoc
// @Summary      Get a raffle
// @Tags         raffles
// @Produce      json
// @Param        raffleID  path      int  true  "raffle ID"
// @Success      200       {object}  response.Data{data=response.Raffle}
// @Failure      404       {object}  response.Err
// @Router       /raffles/{raffleID} [get]
func (h *RaffleHandler) HandleGetRaffle(ctx *gin.Context) {
	id, err := pathID(ctx, "raffleID")
	if err != nil {
		response.RenderError(ctx, err)
		return
	}

	raffle, err := h.svc.GetRaffle(ctx.Request.Context(), id)
	if err != nil {
		response.RenderError(ctx, fmt.Errorf("v1.HandleGetRaffle -> h.svc.GetRaffle -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.Data{
		Data: response.NewRaffle(raffle),
	})
}

// HandleCreateRaffle godoc
// @Summary      Create a raffle
// @Tags         raffles
// @Accept       mpfd,json
// @Produce      json
// @Param        name             formData  string  true   "raffle name"
// @Param        price            formData  string  true   "prize description"
// @Param        events_id        formData  int     true   "event ID"
// @Param        is_played        formData  bool    false  "already drawn"
// @Param        has_questions    formData  bool    false  "has questions"
// @Param        winner_id        formData  int     false  "winning participant ID"
// @Param        winner_name      formData  string  false  "winner name"
// @Param        price_photo_url  formData  file    false  "prize photo"
// @Success      201              {object}  response.RaffleSaved
// @Failure      419              {object}  response.Err
// @Failure      422              {object}  response.Err
// @Router       /raffles [post]
func (h *RaffleHandler) HandleCreateRaffle(ctx *gin.Context) {
	var req request.RaffleRequest
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
		response.RenderError(ctx, fmt.Errorf("v1.HandleCreateRaffle -> req.Input -> %w", err))
		return
	}

	raffle, err := h.svc.CreateRaffle(ctx.Request.Context(), in)
	if err != nil {
		response.RenderError(ctx, fmt.Errorf("v1.HandleCreateRaffle -> h.svc.CreateRaffle -> %w", err))
		return
	}

	ctx.JSON(http.StatusCreated, response.RaffleSaved{
		Message: "raffle created",
		Raffle:  response.NewRaffle(raffle),
	})
}

// HandleUpdateRaffle godoc
// @Summary      Update a raffle
// @Tags         raffles
// @Accept       mpfd,json
// @Produce      json
// @Param        raffleID         path      int     true   "raffle ID"
// @Param        name             formData  string  false  "raffle name"
// @Param        price            formData  string  false  "prize description"
// @Param        events_id        formData  int     false  "event ID"
// @Param        price_photo_url  formData  file    false  "prize photo"
// @Success      200              {object}  response.RaffleSaved
// @Failure      404              {object}  response.Err
// @Failure      422              {object}  response.Err
// @Router       /raffles/{raffleID} [patch]
func (h *RaffleHandler) HandleUpdateRaffle(ctx *gin.Context) {
	id, err := pathID(ctx, "raffleID")
	if err != nil {
		response.RenderError(ctx, err)
		return
	}

	var req request.RaffleRequest
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
		response.RenderError(ctx, fmt.Errorf("v1.HandleUpdateRaffle -> req.Input -> %w", err))
		return
	}

	raffle, err := h.svc.UpdateRaffle(ctx.Request.Context(), id, in)
	if err != nil {
		response.RenderError(ctx, fmt.Errorf("v1.HandleUpdateRaffle -> h.svc.UpdateRaffle -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.RaffleSaved{
		Message: "raffle updated",
		Raffle:  response.NewRaffle(raffle),
	})
}

// HandleDeleteRaffle godoc
// @Summary      Delete a raffle and its prize photo
// @Tags         raffles
// @Param        raffleID  path  int  true  "raffle ID"
// @Success      204
// @Failure      404  {object}  response.Err
// @Router       /raffles/{raffleID} [delete]
func (h *RaffleHandler) HandleDeleteRaffle(ctx *gin.Context) {
	id, err := pathID(ctx, "raffleID")
	if err != nil {
		response.RenderError(ctx, err)
		return
	}

	if err = h.svc.DeleteRaffle(ctx.Request.Context(), id); err != nil {
		response.RenderError(ctx, fmt.Errorf("v1.HandleDeleteRaffle -> h.svc.DeleteRaffle -> %w", err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
