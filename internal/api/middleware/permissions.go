package middleware

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/h3tools/hashtrack/internal/api/handler/v1/response"
	"github.com/h3tools/hashtrack/internal/domain"
)

var (
	errUnknownUser             = errors.New("unknown user")
	errInsufficientPermissions = errors.New("insufficient permissions")
)

type UserFinder interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
}

// PermissionGuard gates routes on the stored permission level. It runs
// after VerifyJWT, so a missing context user is a server bug, not a
// client error.
type PermissionGuard struct {
	users UserFinder
}

func NewPermissionGuard(users UserFinder) *PermissionGuard {
	return &PermissionGuard{
		users: users,
	}
}

// RequireDataEntry admits data_entry and admin users.
func (g *PermissionGuard) RequireDataEntry() gin.HandlerFunc {
	return g.require(func(u domain.User) bool { return u.CanEnterData() })
}

func (g *PermissionGuard) RequireAdmin() gin.HandlerFunc {
	return g.require(domain.User.IsAdmin)
}

func (g *PermissionGuard) require(allowed func(domain.User) bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, err := UserIDFromContext(ctx)
		if err != nil {
			response.RenderErr(ctx, response.ErrInternalServerError(err))
			return
		}

		user, err := g.users.GetUser(ctx.Request.Context(), id)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(errUnknownUser))
			return
		}

		if !allowed(user) {
			response.RenderErr(ctx, response.ErrPermissionDenied(errInsufficientPermissions))
			return
		}

		ctx.Next()
	}
}
