package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aulakit/aula-backend/internal/http/response"
	"github.com/aulakit/aula-backend/internal/platform/logger"
	"github.com/aulakit/aula-backend/internal/services"
)

type SubjectHandler struct {
	log            *logger.Logger
	subjectService services.SubjectService
}

func NewSubjectHandler(log *logger.Logger, subjectService services.SubjectService) *SubjectHandler {
	return &SubjectHandler{
		log:            log.With("handler", "SubjectHandler"),
		subjectService: subjectService,
	}
}

type createSubjectRequest struct {
	NameEs string `json:"name_es"`
	NameEn string `json:"name_en"`
}

type updateSubjectRequest struct {
	NameEs *string `json:"name_es"`
	NameEn *string `json:"name_en"`
}

func (h *SubjectHandler) Create(c *gin.Context) {
	var req createSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	subject, err := h.subjectService.Create(c.Request.Context(), req.NameEs, req.NameEn)
	if err != nil {
		response.RespondFromError(c, "create_subject_failed", err)
		return
	}
	response.RespondCreated(c, gin.H{"subject": subject})
}

func (h *SubjectHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	subject, err := h.subjectService.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondFromError(c, "load_subject_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"subject": subject})
}

func (h *SubjectHandler) List(c *gin.Context) {
	subjects, err := h.subjectService.List(c.Request.Context())
	if err != nil {
		response.RespondFromError(c, "list_subjects_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"subjects": subjects})
}

func (h *SubjectHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	var req updateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	subject, err := h.subjectService.Update(c.Request.Context(), id, services.SubjectUpdate{
		NameEs: req.NameEs,
		NameEn: req.NameEn,
	})
	if err != nil {
		response.RespondFromError(c, "update_subject_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"subject": subject})
}

func (h *SubjectHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := h.subjectService.Delete(c.Request.Context(), id); err != nil {
		response.RespondFromError(c, "delete_subject_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": id})
}
