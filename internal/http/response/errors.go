package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/cyberquiz-backend/internal/domain"
)

// RespondDomainError maps the domain error taxonomy onto HTTP statuses.
// Storage failures come back as an opaque 500; their internals stay in
// server logs only.
func RespondDomainError(c *gin.Context, err error) {
	switch domain.CodeOf(err) {
	case domain.CodeValidation:
		RespondError(c, http.StatusBadRequest, string(domain.CodeValidation), err)
	case domain.CodeNotFound:
		RespondError(c, http.StatusNotFound, string(domain.CodeNotFound), err)
	case domain.CodeConflict:
		RespondError(c, http.StatusConflict, string(domain.CodeConflict), err)
	case domain.CodeForbidden:
		RespondError(c, http.StatusForbidden, string(domain.CodeForbidden), err)
	default:
		RespondError(c, http.StatusInternalServerError, string(domain.CodeStorage), nil)
	}
}
