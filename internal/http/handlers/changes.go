package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aulakit/aula-backend/internal/http/response"
	"github.com/aulakit/aula-backend/internal/platform/logger"
	"github.com/aulakit/aula-backend/internal/services"
)

type ChangeHandler struct {
	log           *logger.Logger
	changeService services.ChangeService
}

func NewChangeHandler(log *logger.Logger, changeService services.ChangeService) *ChangeHandler {
	return &ChangeHandler{
		log:           log.With("handler", "ChangeHandler"),
		changeService: changeService,
	}
}

type purgeRequest struct {
	Before time.Time `json:"before"`
}

func (h *ChangeHandler) ListForEntity(c *gin.Context) {
	kind := c.Param("kind")
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	changes, err := h.changeService.ChangesFor(c.Request.Context(), kind, id)
	if err != nil {
		response.RespondFromError(c, "list_changes_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"changes": changes})
}

func (h *ChangeHandler) Latest(c *gin.Context) {
	kind := c.Param("kind")
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	change, err := h.changeService.LatestChange(c.Request.Context(), kind, id)
	if err != nil {
		response.RespondFromError(c, "load_latest_change_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"change": change})
}

func (h *ChangeHandler) ListAll(c *gin.Context) {
	changes, err := h.changeService.AllChanges(c.Request.Context())
	if err != nil {
		response.RespondFromError(c, "list_all_changes_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"changes": changes})
}

func (h *ChangeHandler) Purge(c *gin.Context) {
	var req purgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if req.Before.IsZero() {
		response.RespondError(c, http.StatusBadRequest, "bad_request", nil)
		return
	}
	purged, err := h.changeService.PurgeOlderThan(c.Request.Context(), req.Before)
	if err != nil {
		response.RespondFromError(c, "purge_changes_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"purged": purged})
}
