package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/h3tools/hashtrack/internal/pkg/jwthelper"
)

const ContextKeyUserID = "user_id"

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, token, ctx.Request.UserAgent())
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		ctx.Set(ContextKeyUserID, claims.UserID)
		ctx.Next()
	}
}

var errNoUserInContext = errors.New("no authenticated user in context")

// UserIDFromContext reads the authenticated user id set by VerifyJWT.
func UserIDFromContext(ctx *gin.Context) (uint, error) {
	v, ok := ctx.Get(ContextKeyUserID)
	if !ok {
		return 0, errNoUserInContext
	}

	id, ok := v.(uint)
	if !ok {
		return 0, errNoUserInContext
	}

	return id, nil
}
