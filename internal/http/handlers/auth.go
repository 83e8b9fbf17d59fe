package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/cyberquiz-backend/internal/http/middleware"
	"github.com/yungbote/cyberquiz-backend/internal/http/response"
	"github.com/yungbote/cyberquiz-backend/internal/pkg/logger"
	"github.com/yungbote/cyberquiz-backend/internal/requestdata"
	"github.com/yungbote/cyberquiz-backend/internal/services"
)

type AuthHandler struct {
	log         *logger.Logger
	authService services.AuthService
	secure      bool
}

func NewAuthHandler(log *logger.Logger, authService services.AuthService, secureCookies bool) *AuthHandler {
	handlerLog := log.With("handler", "AuthHandler")
	return &AuthHandler{log: handlerLog, authService: authService, secure: secureCookies}
}

type signInRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

func (ah *AuthHandler) SignUp(c *gin.Context) {
	var req services.CreateUserInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	user, err := ah.authService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	session, err := ah.authService.CreateSession(c.Request.Context(), user.ID)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	ah.setSessionCookie(c, session.Token)
	response.RespondOK(c, gin.H{"user": user})
}

func (ah *AuthHandler) SignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	user, err := ah.authService.VerifyUser(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	session, err := ah.authService.CreateSession(c.Request.Context(), user.ID)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	ah.setSessionCookie(c, session.Token)
	response.RespondOK(c, gin.H{"user": user})
}

func (ah *AuthHandler) SignOut(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd != nil && rd.Token != "" {
		if err := ah.authService.RemoveSession(c.Request.Context(), rd.Token); err != nil {
			ah.log.Warn("failed to remove session", "error", err)
		}
	}
	ah.clearSessionCookie(c)
	response.RespondOK(c, gin.H{"ok": true})
}

func (ah *AuthHandler) Me(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.User == nil {
		response.RespondOK(c, gin.H{"user": nil})
		return
	}
	response.RespondOK(c, gin.H{"user": rd.User})
}

func (ah *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	maxAge := int(ah.authService.SessionTTL().Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, maxAge, "/", "", ah.secure, true)
}

func (ah *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", ah.secure, true)
}
