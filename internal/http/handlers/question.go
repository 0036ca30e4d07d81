package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aulakit/aula-backend/internal/http/response"
	"github.com/aulakit/aula-backend/internal/platform/logger"
	"github.com/aulakit/aula-backend/internal/services"
)

type QuestionHandler struct {
	log             *logger.Logger
	questionService services.QuestionService
}

func NewQuestionHandler(log *logger.Logger, questionService services.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		log:             log.With("handler", "QuestionHandler"),
		questionService: questionService,
	}
}

type createQuestionRequest struct {
	StatementEs string `json:"statement_es"`
	StatementEn string `json:"statement_en"`
	Kind        string `json:"kind"`
	IsTrue      *bool  `json:"is_true"`
}

type updateQuestionRequest struct {
	StatementEs *string `json:"statement_es"`
	StatementEn *string `json:"statement_en"`
	Kind        *string `json:"kind"`
	IsTrue      *bool   `json:"is_true"`
	Approved    *bool   `json:"approved"`
}

type createAnswerRequest struct {
	TextEs  string `json:"text_es"`
	TextEn  string `json:"text_en"`
	Correct bool   `json:"correct"`
}

type updateAnswerRequest struct {
	TextEs  *string `json:"text_es"`
	TextEn  *string `json:"text_en"`
	Correct *bool   `json:"correct"`
}

func (h *QuestionHandler) Create(c *gin.Context) {
	var req createQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	question, err := h.questionService.Create(c.Request.Context(), req.StatementEs, req.StatementEn, req.Kind, req.IsTrue)
	if err != nil {
		response.RespondFromError(c, "create_question_failed", err)
		return
	}
	response.RespondCreated(c, gin.H{"question": question})
}

func (h *QuestionHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	question, err := h.questionService.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondFromError(c, "load_question_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"question": question})
}

func (h *QuestionHandler) List(c *gin.Context) {
	questions, err := h.questionService.List(c.Request.Context())
	if err != nil {
		response.RespondFromError(c, "list_questions_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"questions": questions})
}

func (h *QuestionHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	var req updateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	question, err := h.questionService.Update(c.Request.Context(), id, services.QuestionUpdate{
		StatementEs: req.StatementEs,
		StatementEn: req.StatementEn,
		Kind:        req.Kind,
		IsTrue:      req.IsTrue,
		Approved:    req.Approved,
	})
	if err != nil {
		response.RespondFromError(c, "update_question_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"question": question})
}

func (h *QuestionHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := h.questionService.Delete(c.Request.Context(), id); err != nil {
		response.RespondFromError(c, "delete_question_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": id})
}

func (h *QuestionHandler) AddAnswer(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	var req createAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	answer, err := h.questionService.AddAnswer(c.Request.Context(), id, req.TextEs, req.TextEn, req.Correct)
	if err != nil {
		response.RespondFromError(c, "create_answer_failed", err)
		return
	}
	response.RespondCreated(c, gin.H{"answer": answer})
}

func (h *QuestionHandler) ListAnswers(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	answers, err := h.questionService.ListAnswers(c.Request.Context(), id)
	if err != nil {
		response.RespondFromError(c, "list_answers_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"answers": answers})
}

func (h *QuestionHandler) UpdateAnswer(c *gin.Context) {
	answerID, err := pathID(c, "answerID")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	var req updateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	answer, err := h.questionService.UpdateAnswer(c.Request.Context(), answerID, services.AnswerUpdate{
		TextEs:  req.TextEs,
		TextEn:  req.TextEn,
		Correct: req.Correct,
	})
	if err != nil {
		response.RespondFromError(c, "update_answer_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"answer": answer})
}

func (h *QuestionHandler) DeleteAnswer(c *gin.Context) {
	answerID, err := pathID(c, "answerID")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := h.questionService.DeleteAnswer(c.Request.Context(), answerID); err != nil {
		response.RespondFromError(c, "delete_answer_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": answerID})
}
