package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aulakit/aula-backend/internal/http/response"
	"github.com/aulakit/aula-backend/internal/platform/logger"
	"github.com/aulakit/aula-backend/internal/services"
)

type TopicHandler struct {
	log             *logger.Logger
	topicService    services.TopicService
	epigraphService services.EpigraphService
}

func NewTopicHandler(log *logger.Logger, topicService services.TopicService, epigraphService services.EpigraphService) *TopicHandler {
	return &TopicHandler{
		log:             log.With("handler", "TopicHandler"),
		topicService:    topicService,
		epigraphService: epigraphService,
	}
}

type createTopicRequest struct {
	TitleEs string `json:"title_es"`
	TitleEn string `json:"title_en"`
}

type updateTopicRequest struct {
	TitleEs *string `json:"title_es"`
	TitleEn *string `json:"title_en"`
}

func (h *TopicHandler) Create(c *gin.Context) {
	var req createTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	topic, err := h.topicService.Create(c.Request.Context(), req.TitleEs, req.TitleEn)
	if err != nil {
		response.RespondFromError(c, "create_topic_failed", err)
		return
	}
	response.RespondCreated(c, gin.H{"topic": topic})
}

func (h *TopicHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	topic, err := h.topicService.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondFromError(c, "load_topic_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"topic": topic})
}

func (h *TopicHandler) List(c *gin.Context) {
	topics, err := h.topicService.List(c.Request.Context())
	if err != nil {
		response.RespondFromError(c, "list_topics_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"topics": topics})
}

func (h *TopicHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	var req updateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	topic, err := h.topicService.Update(c.Request.Context(), id, services.TopicUpdate{
		TitleEs: req.TitleEs,
		TitleEn: req.TitleEn,
	})
	if err != nil {
		response.RespondFromError(c, "update_topic_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"topic": topic})
}

func (h *TopicHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := h.topicService.Delete(c.Request.Context(), id); err != nil {
		response.RespondFromError(c, "delete_topic_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": id})
}

func (h *TopicHandler) ListEpigraphs(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	epigraphs, err := h.epigraphService.ListByTopic(c.Request.Context(), id)
	if err != nil {
		response.RespondFromError(c, "list_epigraphs_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"epigraphs": epigraphs})
}
