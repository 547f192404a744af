package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/h3tools/hashtrack/internal/api/handler/v1/request"
	"github.com/h3tools/hashtrack/internal/api/handler/v1/response"
	"github.com/h3tools/hashtrack/internal/config"
	"github.com/h3tools/hashtrack/internal/domain"
	"github.com/h3tools/hashtrack/internal/pkg/jwthelper"
	"github.com/h3tools/hashtrack/internal/service"
)

type AuthService interface {
	Exchange(ctx context.Context, providerKey string) (domain.User, error)
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleExchangeToken godoc
// @Summary      Exchange an identity-provider key for an API token
// @Description  First-time keys get a user record with no permissions.
// @Tags         auth
// @Produce      json
// @Param        request   body      request.ExchangeTokenRequest true "request body"
// @Success      200      {object}   response.TokenResponse
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/token [post]
func (h *AuthHandler) HandleExchangeToken(ctx *gin.Context) {
	var req request.ExchangeTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.Exchange(ctx.Request.Context(), req.ProviderKey)
	if err != nil {
		if errors.Is(err, service.ErrInvalidArgument) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleExchangeToken -> h.svc.Exchange -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), user.ID, ctx.Request.UserAgent())
	if err != nil {
		err = fmt.Errorf("v1.HandleExchangeToken -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.TokenResponse{
		Token: token,
		User:  user,
	})
}
