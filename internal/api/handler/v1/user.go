package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/h3tools/hashtrack/internal/api/handler/v1/request"
	"github.com/h3tools/hashtrack/internal/api/handler/v1/response"
	"github.com/h3tools/hashtrack/internal/api/middleware"
	"github.com/h3tools/hashtrack/internal/domain"
	"github.com/h3tools/hashtrack/internal/service"
)

type UserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
	UpdateProfile(ctx context.Context, id uint, name, email string) (domain.User, error)
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

// HandleGetProfile godoc
// @Summary      Get the authenticated user's profile
// @Tags         profile
// @Produce      json
// @Success      200 {object} domain.User
// @Failure      401 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /profile [get]
// @Security BearerAuth
func (h *UserHandler) HandleGetProfile(ctx *gin.Context) {
	id, err := middleware.UserIDFromContext(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err))
		return
	}

	user, err := h.svc.GetUser(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "id", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetProfile -> h.svc.GetUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleUpdateProfile godoc
// @Summary      Update the authenticated user's name and email
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request body request.UpdateProfileRequest true "request body"
// @Success      200 {object} domain.User
// @Failure      400 {object} response.Err
// @Failure      401 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /profile [put]
// @Security BearerAuth
func (h *UserHandler) HandleUpdateProfile(ctx *gin.Context) {
	id, err := middleware.UserIDFromContext(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err))
		return
	}

	var req request.UpdateProfileRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.UpdateProfile(ctx.Request.Context(), id, req.Name, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "id", id))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateProfile -> h.svc.UpdateProfile -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, user)
}
