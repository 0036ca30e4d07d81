package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aulakit/aula-backend/internal/http/response"
	"github.com/aulakit/aula-backend/internal/platform/logger"
	"github.com/aulakit/aula-backend/internal/services"
)

type EpigraphHandler struct {
	log             *logger.Logger
	epigraphService services.EpigraphService
}

func NewEpigraphHandler(log *logger.Logger, epigraphService services.EpigraphService) *EpigraphHandler {
	return &EpigraphHandler{
		log:             log.With("handler", "EpigraphHandler"),
		epigraphService: epigraphService,
	}
}

type createEpigraphRequest struct {
	TopicID uint   `json:"topic_id"`
	TitleEs string `json:"title_es"`
	TitleEn string `json:"title_en"`
	BodyEs  string `json:"body_es"`
	BodyEn  string `json:"body_en"`
}

type updateEpigraphRequest struct {
	TitleEs *string `json:"title_es"`
	TitleEn *string `json:"title_en"`
	BodyEs  *string `json:"body_es"`
	BodyEn  *string `json:"body_en"`
}

func (h *EpigraphHandler) Create(c *gin.Context) {
	var req createEpigraphRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	epigraph, err := h.epigraphService.Create(c.Request.Context(), req.TopicID, req.TitleEs, req.TitleEn, req.BodyEs, req.BodyEn)
	if err != nil {
		response.RespondFromError(c, "create_epigraph_failed", err)
		return
	}
	response.RespondCreated(c, gin.H{"epigraph": epigraph})
}

func (h *EpigraphHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	epigraph, err := h.epigraphService.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondFromError(c, "load_epigraph_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"epigraph": epigraph})
}

func (h *EpigraphHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	var req updateEpigraphRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	epigraph, err := h.epigraphService.Update(c.Request.Context(), id, services.EpigraphUpdate{
		TitleEs: req.TitleEs,
		TitleEn: req.TitleEn,
		BodyEs:  req.BodyEs,
		BodyEn:  req.BodyEn,
	})
	if err != nil {
		response.RespondFromError(c, "update_epigraph_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"epigraph": epigraph})
}

func (h *EpigraphHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := h.epigraphService.Delete(c.Request.Context(), id); err != nil {
		response.RespondFromError(c, "delete_epigraph_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": id})
}
