package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/cyberquiz-backend/internal/http/response"
	"github.com/yungbote/cyberquiz-backend/internal/pkg/logger"
	"github.com/yungbote/cyberquiz-backend/internal/requestdata"
	"github.com/yungbote/cyberquiz-backend/internal/services"
)

const SessionCookie = "session"

type AuthMiddleware struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthMiddleware(log *logger.Logger, authService services.AuthService) *AuthMiddleware {
	middlewareLog := log.With("middleware", "AuthMiddleware")
	return &AuthMiddleware{log: middlewareLog, authService: authService}
}

// Resolve attaches the session user to the request context when a token is
// present. It never aborts; the Require* guards do that.
func (am *AuthMiddleware) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}
		user, err := am.authService.GetUserBySession(c.Request.Context(), token)
		if err != nil {
			am.log.Warn("session lookup failed", "error", err)
			c.Next()
			return
		}
		if user != nil {
			ctx := requestdata.WithRequestData(c.Request.Context(), &requestdata.RequestData{
				User:  user,
				Token: token,
			})
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}

func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		rd := requestdata.GetRequestData(c.Request.Context())
		if rd == nil || rd.User == nil {
			response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin runs before any handler side effect; non-admin callers get
// 403 without touching a store.
func (am *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		rd := requestdata.GetRequestData(c.Request.Context())
		if rd == nil || rd.User == nil || !rd.User.IsAdmin() {
			response.RespondError(c, http.StatusForbidden, "forbidden", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return authHeader[7:]
	}
	return ""
}
