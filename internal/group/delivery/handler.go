package delivery

import (
	"net/http"

	groupdto "findit-backend/internal/group/dto"
	"findit-backend/internal/group/usecase"
	"findit-backend/pkg/apperror"
	"findit-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// GroupHandler handles group-related HTTP requests
type GroupHandler struct {
	groupUsecase usecase.GroupUsecase
	log          logrus.FieldLogger
}

// NewGroupHandler creates a new GroupHandler
func NewGroupHandler(groupUsecase usecase.GroupUsecase, log logrus.FieldLogger) *GroupHandler {
	return &GroupHandler{
		groupUsecase: groupUsecase,
		log:          log,
	}
}

// CreateGroup creates a group owned by the caller
// POST /groups/create
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req groupdto.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	group, err := h.groupUsecase.CreateGroup(c.Request.Context(), c.GetString("userID"), &req)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Group created successfully", "group": group})
}

// JoinGroup adds the caller to the group with the given code
// POST /groups/join
func (h *GroupHandler) JoinGroup(c *gin.Context) {
	var req groupdto.JoinGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	group, err := h.groupUsecase.JoinGroup(c.Request.Context(), c.GetString("userID"), &req)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully joined the group", "group": group})
}

// GetUserGroups lists groups the caller created and joined
// GET /groups/my-groups
func (h *GroupHandler) GetUserGroups(c *gin.Context) {
	groups, err := h.groupUsecase.GetUserGroups(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

// GetGroupMembers lists the users in a group
// GET /groups/:groupId/members
func (h *GroupHandler) GetGroupMembers(c *gin.Context) {
	groupID, ok := groupIDParam(c, h.log)
	if !ok {
		return
	}

	members, err := h.groupUsecase.GetGroupMembers(c.Request.Context(), groupID)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// GetGroupByID returns the group summary to its creator or members
// GET /groups/:groupId
func (h *GroupHandler) GetGroupByID(c *gin.Context) {
	groupID, ok := groupIDParam(c, h.log)
	if !ok {
		return
	}

	group, err := h.groupUsecase.GetGroupByID(c.Request.Context(), groupID, c.GetString("userID"))
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// UpdateGroup renames the group or changes its image
// PUT /groups/:groupId
func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	groupID, ok := groupIDParam(c, h.log)
	if !ok {
		return
	}

	var req groupdto.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.groupUsecase.UpdateGroup(c.Request.Context(), groupID, c.GetString("userID"), &req)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	if !result.Changed {
		c.JSON(http.StatusOK, gin.H{"message": "No changes detected, update skipped"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Group updated successfully!", "group": result.Group})
}

func groupIDParam(c *gin.Context, log logrus.FieldLogger) (string, bool) {
	groupID := c.Param("groupId")
	if _, err := uuid.Parse(groupID); err != nil {
		response.Error(c, log, apperror.Validation("Invalid group ID format"))
		return "", false
	}
	return groupID, true
}
