package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/cyberquiz-backend/internal/http/response"
	"github.com/yungbote/cyberquiz-backend/internal/pkg/logger"
	"github.com/yungbote/cyberquiz-backend/internal/requestdata"
	"github.com/yungbote/cyberquiz-backend/internal/services"
)

type QuizHandler struct {
	log         *logger.Logger
	quizService services.QuizService
}

func NewQuizHandler(log *logger.Logger, quizService services.QuizService) *QuizHandler {
	handlerLog := log.With("handler", "QuizHandler")
	return &QuizHandler{log: handlerLog, quizService: quizService}
}

func (qh *QuizHandler) List(c *gin.Context) {
	quizzes, err := qh.quizService.GetQuizzes(c.Request.Context())
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"quizzes": quizzes})
}

func (qh *QuizHandler) Get(c *gin.Context) {
	quizID, ok := parseQuizID(c)
	if !ok {
		return
	}
	quiz, err := qh.quizService.GetQuizByID(c.Request.Context(), quizID)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"quiz": quiz})
}

func (qh *QuizHandler) Submit(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	var req services.QuizInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	if err := qh.quizService.SubmitQuiz(c.Request.Context(), req, rd.User.ID); err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

func (qh *QuizHandler) Submissions(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	quizzes, err := qh.quizService.GetUserSubmissions(c.Request.Context(), rd.User.ID)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"submissions": quizzes})
}

func (qh *QuizHandler) Pending(c *gin.Context) {
	quizzes, err := qh.quizService.GetPendingQuizzes(c.Request.Context())
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"pending": quizzes})
}

type moderationRequest struct {
	Action          string `json:"action"`
	RejectionReason string `json:"rejectionReason"`
}

// Moderate handles approve/reject; the store's pending-state guard makes
// concurrent decisions on the same quiz first-writer-wins.
func (qh *QuizHandler) Moderate(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	quizID, ok := parseQuizID(c)
	if !ok {
		return
	}
	var req moderationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	switch req.Action {
	case "approve":
		if err := qh.quizService.ApprovePendingQuiz(c.Request.Context(), quizID, rd.User.ID); err != nil {
			response.RespondDomainError(c, err)
			return
		}
	case "reject":
		if err := qh.quizService.RejectPendingQuiz(c.Request.Context(), quizID, rd.User.ID, req.RejectionReason); err != nil {
			response.RespondDomainError(c, err)
			return
		}
	default:
		response.RespondError(c, http.StatusBadRequest, "validation", nil)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

func (qh *QuizHandler) UpdatePending(c *gin.Context) {
	quizID, ok := parseQuizID(c)
	if !ok {
		return
	}
	var req services.QuizInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	if err := qh.quizService.UpdatePendingQuiz(c.Request.Context(), quizID, req); err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

func (qh *QuizHandler) CreateAsAdmin(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	var req services.QuizInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	quiz, err := qh.quizService.CreateQuizAsAdmin(c.Request.Context(), req, rd.User.ID)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"quiz": quiz})
}

func (qh *QuizHandler) Delete(c *gin.Context) {
	quizID, ok := parseQuizID(c)
	if !ok {
		return
	}
	if err := qh.quizService.DeleteQuiz(c.Request.Context(), quizID); err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

func parseQuizID(c *gin.Context) (uuid.UUID, bool) {
	quizID, err := uuid.Parse(c.Param("quizId"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation", err)
		return uuid.Nil, false
	}
	return quizID, true
}
