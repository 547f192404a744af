package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/h3tools/hashtrack/internal/api/handler/v1/request"
	"github.com/h3tools/hashtrack/internal/api/handler/v1/response"
	"github.com/h3tools/hashtrack/internal/domain"
	"github.com/h3tools/hashtrack/internal/service"
)

type KennelService interface {
	CreateKennel(ctx context.Context, kennel domain.Kennel) (domain.Kennel, error)
	GetKennel(ctx context.Context, id uint) (domain.Kennel, error)
	ListKennels(ctx context.Context) ([]domain.Kennel, error)
}

type KennelHandler struct {
	svc KennelService
}

func NewKennelHandler(svc KennelService) *KennelHandler {
	return &KennelHandler{
		svc: svc,
	}
}

// HandleListKennels godoc
// @Summary      List kennels
// @Tags         kennels
// @Produce      json
// @Success      200 {array}  domain.Kennel
// @Failure      500 {object} response.Err
// @Router       /kennels [get]
// @Security BearerAuth
func (h *KennelHandler) HandleListKennels(ctx *gin.Context) {
	kennels, err := h.svc.ListKennels(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListKennels -> h.svc.ListKennels -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, kennels)
}

// HandleGetKennel godoc
// @Summary      Get a kennel
// @Tags         kennels
// @Produce      json
// @Param        kennelID path int true "kennel ID"
// @Success      200 {object} domain.Kennel
// @Failure      400 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /kennels/{kennelID} [get]
// @Security BearerAuth
func (h *KennelHandler) HandleGetKennel(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "kennelID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	kennel, err := h.svc.GetKennel(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrKennelNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("kennel", "id", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetKennel -> h.svc.GetKennel -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, kennel)
}

// HandleCreateKennel godoc
// @Summary      Create a kennel
// @Description  Kennels are append-only reference data; admin only.
// @Tags         kennels
// @Accept       json
// @Produce      json
// @Param        request body request.CreateKennelRequest true "request body"
// @Success      201 {object} domain.Kennel
// @Failure      400 {object} response.Err
// @Failure      409 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /kennels [post]
// @Security BearerAuth
func (h *KennelHandler) HandleCreateKennel(ctx *gin.Context) {
	var req request.CreateKennelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateKennel(ctx.Request.Context(), domain.Kennel{Name: req.Name})
	if err != nil {
		if errors.Is(err, service.ErrKennelNameExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrKennelNameExists))
			return
		}

		err = fmt.Errorf("v1.HandleCreateKennel -> h.svc.CreateKennel -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}
