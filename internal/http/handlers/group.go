package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aulakit/aula-backend/internal/http/response"
	"github.com/aulakit/aula-backend/internal/platform/logger"
	"github.com/aulakit/aula-backend/internal/services"
)

type GroupHandler struct {
	log          *logger.Logger
	groupService services.StudentGroupService
}

func NewGroupHandler(log *logger.Logger, groupService services.StudentGroupService) *GroupHandler {
	return &GroupHandler{
		log:          log.With("handler", "GroupHandler"),
		groupService: groupService,
	}
}

type createGroupRequest struct {
	NameEs string `json:"name_es"`
	NameEn string `json:"name_en"`
}

type updateGroupRequest struct {
	NameEs *string `json:"name_es"`
	NameEn *string `json:"name_en"`
}

func (h *GroupHandler) Create(c *gin.Context) {
	var req createGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	group, err := h.groupService.Create(c.Request.Context(), req.NameEs, req.NameEn)
	if err != nil {
		response.RespondFromError(c, "create_group_failed", err)
		return
	}
	response.RespondCreated(c, gin.H{"group": group})
}

func (h *GroupHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	group, err := h.groupService.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondFromError(c, "load_group_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"group": group})
}

func (h *GroupHandler) List(c *gin.Context) {
	groups, err := h.groupService.List(c.Request.Context())
	if err != nil {
		response.RespondFromError(c, "list_groups_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"groups": groups})
}

func (h *GroupHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	var req updateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	group, err := h.groupService.Update(c.Request.Context(), id, services.StudentGroupUpdate{
		NameEs: req.NameEs,
		NameEn: req.NameEn,
	})
	if err != nil {
		response.RespondFromError(c, "update_group_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"group": group})
}

func (h *GroupHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := h.groupService.Delete(c.Request.Context(), id); err != nil {
		response.RespondFromError(c, "delete_group_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": id})
}
