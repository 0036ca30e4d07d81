package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aulakit/aula-backend/internal/http/response"
	"github.com/aulakit/aula-backend/internal/platform/logger"
	"github.com/aulakit/aula-backend/internal/services"
)

type LinkHandler struct {
	log         *logger.Logger
	linkService services.LinkService
}

func NewLinkHandler(log *logger.Logger, linkService services.LinkService) *LinkHandler {
	return &LinkHandler{
		log:         log.With("handler", "LinkHandler"),
		linkService: linkService,
	}
}

type linkOrderedRequest struct {
	// OrderID zero means "append at the end".
	OrderID int `json:"order_id"`
}

type swapOrderRequest struct {
	AID uint `json:"a_id"`
	BID uint `json:"b_id"`
}

type conceptEdgeRequest struct {
	ToID          uint `json:"to_id"`
	Bidirectional bool `json:"bidirectional"`
}

type conceptEdgeDeleteRequest struct {
	ToID         uint `json:"to_id"`
	RemoveMirror bool `json:"remove_mirror"`
}

func (h *LinkHandler) LinkConceptToTopic(c *gin.Context) {
	topicID, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	conceptID, err := pathID(c, "conceptID")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	var req linkOrderedRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.RespondError(c, http.StatusBadRequest, "bad_request", err)
			return
		}
	}
	link, err := h.linkService.LinkConceptToTopic(c.Request.Context(), topicID, conceptID, req.OrderID)
	if err != nil {
		response.RespondFromError(c, "link_concept_failed", err)
		return
	}
	response.RespondCreated(c, gin.H{"link": link})
}

func (h *LinkHandler) UnlinkConceptFromTopic(c *gin.Context) {
	topicID, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	conceptID, err := pathID(c, "conceptID")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := h.linkService.UnlinkConceptFromTopic(c.Request.Context(), topicID, conceptID); err != nil {
		response.RespondFromError(c, "unlink_concept_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"unlinked": conceptID})
}

func (h *LinkHandler) ListTopicConcepts(c *gin.Context) {
	topicID, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	links, err := h.linkService.ListTopicConcepts(c.Request.Context(), topicID)
	if err != nil {
		response.RespondFromError(c, "list_topic_concepts_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"links": links})
}

func (h *LinkHandler) SwapConceptOrder(c *gin.Context) {
	topicID, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	var req swapOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := h.linkService.SwapConceptOrder(c.Request.Context(), topicID, req.AID, req.BID); err != nil {
		response.RespondFromError(c, "swap_concept_order_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"swapped": true})
}

func (h *LinkHandler) LinkTopicToSubject(c *gin.Context) {
	subjectID, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	topicID, err := pathID(c, "topicID")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	var req linkOrderedRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.RespondError(c, http.StatusBadRequest, "bad_request", err)
			return
		}
	}
	link, err := h.linkService.LinkTopicToSubject(c.Request.Context(), subjectID, topicID, req.OrderID)
	if err != nil {
		response.RespondFromError(c, "link_topic_failed", err)
		return
	}
	response.RespondCreated(c, gin.H{"link": link})
}

func (h *LinkHandler) UnlinkTopicFromSubject(c *gin.Context) {
	subjectID, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	topicID, err := pathID(c, "topicID")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := h.linkService.UnlinkTopicFromSubject(c.Request.Context(), subjectID, topicID); err != nil {
		response.RespondFromError(c, "unlink_topic_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"unlinked": topicID})
}

func (h *LinkHandler) ListSubjectTopics(c *gin.Context) {
	subjectID, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	links, err := h.linkService.ListSubjectTopics(c.Request.Context(), subjectID)
	if err != nil {
		response.RespondFromError(c, "list_subject_topics_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"links": links})
}

func (h *LinkHandler) SwapTopicOrder(c *gin.Context) {
	subjectID, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	var req swapOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := h.linkService.SwapTopicOrder(c.Request.Context(), subjectID, req.AID, req.BID); err != nil {
		response.RespondFromError(c, "swap_topic_order_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"swapped": true})
}

func (h *LinkHandler) LinkQuestionToTopic(c *gin.Context) {
	questionID, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	topicID, err := pathID(c, "topicID")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	link, err := h.linkService.LinkQuestionToTopic(c.Request.Context(), questionID, topicID)
	if err != nil {
		response.RespondFromError(c, "link_question_topic_failed", err)
		return
	}
	response.RespondCreated(c, gin.H{"link": link})
}

func (h *LinkHandler) UnlinkQuestionFromTopic(c *gin.Context) {
	questionID, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	topicID, err := pathID(c, "topicID")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := h.linkService.UnlinkQuestionFromTopic(c.Request.Context(), questionID, topicID); err != nil {
		response.RespondFromError(c, "unlink_question_topic_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"unlinked": topicID})
}

func (h *LinkHandler) LinkQuestionToConcept(c *gin.Context) {
	questionID, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	conceptID, err := pathID(c, "conceptID")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	link, err := h.linkService.LinkQuestionToConcept(c.Request.Context(), questionID, conceptID)
	if err != nil {
		response.RespondFromError(c, "link_question_concept_failed", err)
		return
	}
	response.RespondCreated(c, gin.H{"link": link})
}

func (h *LinkHandler) UnlinkQuestionFromConcept(c *gin.Context) {
	questionID, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	conceptID, err := pathID(c, "conceptID")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := h.linkService.UnlinkQuestionFromConcept(c.Request.Context(), questionID, conceptID); err != nil {
		response.RespondFromError(c, "unlink_question_concept_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"unlinked": conceptID})
}

func (h *LinkHandler) LinkConcepts(c *gin.Context) {
	fromID, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	var req conceptEdgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := h.linkService.LinkConcepts(c.Request.Context(), fromID, req.ToID, req.Bidirectional); err != nil {
		response.RespondFromError(c, "link_concepts_failed", err)
		return
	}
	response.RespondCreated(c, gin.H{"linked": req.ToID})
}

func (h *LinkHandler) UnlinkConcepts(c *gin.Context) {
	fromID, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	var req conceptEdgeDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := h.linkService.UnlinkConcepts(c.Request.Context(), fromID, req.ToID, req.RemoveMirror); err != nil {
		response.RespondFromError(c, "unlink_concepts_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"unlinked": req.ToID})
}
