package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/cyberquiz-backend/internal/http/response"
	"github.com/yungbote/cyberquiz-backend/internal/pkg/logger"
	"github.com/yungbote/cyberquiz-backend/internal/services"
)

type CategoryHandler struct {
	log            *logger.Logger
	catalogService services.CatalogService
}

func NewCategoryHandler(log *logger.Logger, catalogService services.CatalogService) *CategoryHandler {
	handlerLog := log.With("handler", "CategoryHandler")
	return &CategoryHandler{log: handlerLog, catalogService: catalogService}
}

func (ch *CategoryHandler) List(c *gin.Context) {
	categories, err := ch.catalogService.GetCategories(c.Request.Context())
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"categories": categories})
}

func (ch *CategoryHandler) Get(c *gin.Context) {
	category, err := ch.catalogService.GetCategoryByID(c.Request.Context(), c.Param("categoryId"))
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"category": category})
}

func (ch *CategoryHandler) Create(c *gin.Context) {
	var req services.CreateCategoryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	category, err := ch.catalogService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"category": category})
}

func (ch *CategoryHandler) Delete(c *gin.Context) {
	if err := ch.catalogService.DeleteCategory(c.Request.Context(), c.Param("categoryId")); err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
