package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aulakit/aula-backend/internal/http/response"
	"github.com/aulakit/aula-backend/internal/platform/logger"
	"github.com/aulakit/aula-backend/internal/services"
)

type ExamHandler struct {
	log         *logger.Logger
	examService services.ExamService
}

func NewExamHandler(log *logger.Logger, examService services.ExamService) *ExamHandler {
	return &ExamHandler{
		log:         log.With("handler", "ExamHandler"),
		examService: examService,
	}
}

type assembleRequest struct {
	TopicIDs     []uint `json:"topic_ids"`
	DesiredCount int    `json:"desired_count"`
}

type generateRequest struct {
	GroupID      uint   `json:"group_id"`
	TopicIDs     []uint `json:"topic_ids"`
	DesiredCount int    `json:"desired_count"`
}

type evaluateRequest struct {
	GroupID    uint `json:"group_id"`
	QuestionID uint `json:"question_id"`
	AnswerID   uint `json:"answer_id"`
}

type correctExamRequest struct {
	GroupID uint `json:"group_id"`
	// Submissions maps question id to the submitted answer id.
	Submissions map[uint]uint `json:"submissions"`
}

func (h *ExamHandler) Assemble(c *gin.Context) {
	var req assembleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	questions, err := h.examService.Assemble(c.Request.Context(), req.TopicIDs, req.DesiredCount)
	if err != nil {
		response.RespondFromError(c, "assemble_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"questions": questions})
}

func (h *ExamHandler) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	exam, questions, err := h.examService.Generate(c.Request.Context(), req.GroupID, req.TopicIDs, req.DesiredCount)
	if err != nil {
		response.RespondFromError(c, "generate_exam_failed", err)
		return
	}
	response.RespondCreated(c, gin.H{"exam": exam, "questions": questions})
}

func (h *ExamHandler) Get(c *gin.Context) {
	publicID, err := uuid.Parse(c.Param("publicID"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	exam, err := h.examService.GetExam(c.Request.Context(), publicID)
	if err != nil {
		response.RespondFromError(c, "load_exam_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"exam": exam})
}

func (h *ExamHandler) ListGroupExams(c *gin.Context) {
	groupID, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	exams, err := h.examService.ListGroupExams(c.Request.Context(), groupID)
	if err != nil {
		response.RespondFromError(c, "list_exams_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"exams": exams})
}

func (h *ExamHandler) Evaluate(c *gin.Context) {
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	correct, err := h.examService.Evaluate(c.Request.Context(), req.GroupID, req.QuestionID, req.AnswerID)
	if err != nil {
		response.RespondFromError(c, "evaluate_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"correct": correct})
}

func (h *ExamHandler) CorrectExam(c *gin.Context) {
	var req correctExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	mark, err := h.examService.CorrectExam(c.Request.Context(), req.GroupID, req.Submissions)
	if err != nil {
		response.RespondFromError(c, "correct_exam_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"mark": mark})
}

func (h *ExamHandler) GroupStats(c *gin.Context) {
	groupID, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	stats, err := h.examService.GroupStats(c.Request.Context(), groupID)
	if err != nil {
		response.RespondFromError(c, "load_group_stats_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"stats": stats})
}
