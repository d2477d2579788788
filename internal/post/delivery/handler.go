package delivery

import (
	"net/http"

	postdto "findit-backend/internal/post/dto"
	"findit-backend/internal/post/usecase"
	"findit-backend/pkg/apperror"
	"findit-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// PostHandler handles post-related HTTP requests
type PostHandler struct {
	postUsecase usecase.PostUsecase
	log         logrus.FieldLogger
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postUsecase usecase.PostUsecase, log logrus.FieldLogger) *PostHandler {
	return &PostHandler{
		postUsecase: postUsecase,
		log:         log,
	}
}

// CreatePost publishes a lost or found item to a group
// POST /posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req postdto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	post, err := h.postUsecase.CreatePost(c.Request.Context(), c.GetString("userID"), &req)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Post created successfully!", "post": post})
}

// GetPostsByGroupID lists a group's posts with author contact details
// GET /posts/group/:groupId
func (h *PostHandler) GetPostsByGroupID(c *gin.Context) {
	groupID := c.Param("groupId")
	if _, err := uuid.Parse(groupID); err != nil {
		response.Error(c, h.log, apperror.Validation("Invalid group ID format"))
		return
	}

	posts, err := h.postUsecase.GetPostsByGroupID(c.Request.Context(), groupID, c.GetString("userID"))
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// UpdatePostStatus marks a post ACTIVE or CLAIMED
// PUT /posts/:postId/status
func (h *PostHandler) UpdatePostStatus(c *gin.Context) {
	postID := c.Param("postId")
	if _, err := uuid.Parse(postID); err != nil {
		response.Error(c, h.log, apperror.Validation("Invalid post ID format"))
		return
	}

	var req postdto.UpdatePostStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	post, err := h.postUsecase.UpdatePostStatus(c.Request.Context(), postID, c.GetString("userID"), &req)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post status updated successfully!", "post": post})
}
