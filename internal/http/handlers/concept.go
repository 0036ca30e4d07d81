package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aulakit/aula-backend/internal/http/response"
	"github.com/aulakit/aula-backend/internal/platform/logger"
	"github.com/aulakit/aula-backend/internal/services"
)

type ConceptHandler struct {
	log            *logger.Logger
	conceptService services.ConceptService
}

func NewConceptHandler(log *logger.Logger, conceptService services.ConceptService) *ConceptHandler {
	return &ConceptHandler{
		log:            log.With("handler", "ConceptHandler"),
		conceptService: conceptService,
	}
}

type createConceptRequest struct {
	NameEs        string `json:"name_es"`
	NameEn        string `json:"name_en"`
	DescriptionEs string `json:"description_es"`
	DescriptionEn string `json:"description_en"`
}

type updateConceptRequest struct {
	NameEs        *string `json:"name_es"`
	NameEn        *string `json:"name_en"`
	DescriptionEs *string `json:"description_es"`
	DescriptionEn *string `json:"description_en"`
}

func (h *ConceptHandler) Create(c *gin.Context) {
	var req createConceptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	concept, err := h.conceptService.Create(c.Request.Context(), req.NameEs, req.NameEn, req.DescriptionEs, req.DescriptionEn)
	if err != nil {
		response.RespondFromError(c, "create_concept_failed", err)
		return
	}
	response.RespondCreated(c, gin.H{"concept": concept})
}

func (h *ConceptHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	concept, err := h.conceptService.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondFromError(c, "load_concept_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"concept": concept})
}

func (h *ConceptHandler) List(c *gin.Context) {
	concepts, err := h.conceptService.List(c.Request.Context())
	if err != nil {
		response.RespondFromError(c, "list_concepts_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"concepts": concepts})
}

func (h *ConceptHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	var req updateConceptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	concept, err := h.conceptService.Update(c.Request.Context(), id, services.ConceptUpdate{
		NameEs:        req.NameEs,
		NameEn:        req.NameEn,
		DescriptionEs: req.DescriptionEs,
		DescriptionEn: req.DescriptionEn,
	})
	if err != nil {
		response.RespondFromError(c, "update_concept_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"concept": concept})
}

func (h *ConceptHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := h.conceptService.Delete(c.Request.Context(), id); err != nil {
		response.RespondFromError(c, "delete_concept_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": id})
}
