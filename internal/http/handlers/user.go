package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/cyberquiz-backend/internal/domain"
	"github.com/yungbote/cyberquiz-backend/internal/http/response"
	"github.com/yungbote/cyberquiz-backend/internal/pkg/logger"
	"github.com/yungbote/cyberquiz-backend/internal/requestdata"
	"github.com/yungbote/cyberquiz-backend/internal/services"
)

type UserHandler struct {
	log         *logger.Logger
	userService services.UserService
}

func NewUserHandler(log *logger.Logger, userService services.UserService) *UserHandler {
	handlerLog := log.With("handler", "UserHandler")
	return &UserHandler{log: handlerLog, userService: userService}
}

func (uh *UserHandler) List(c *gin.Context) {
	users, err := uh.userService.GetUsers(c.Request.Context())
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"users": users})
}

type createUserAsAdminRequest struct {
	services.CreateUserInput
	Role string `json:"role"`
}

func (uh *UserHandler) Create(c *gin.Context) {
	var req createUserAsAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	role := domain.RoleUser
	if req.Role == string(domain.RoleAdmin) {
		role = domain.RoleAdmin
	}
	user, err := uh.userService.CreateUser(c.Request.Context(), req.CreateUserInput, role)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"user": user})
}

func (uh *UserHandler) Delete(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	if err := uh.userService.DeleteUser(c.Request.Context(), userID, rd.User.ID); err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
