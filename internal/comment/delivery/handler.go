package delivery

import (
	"net/http"

	commentdto "findit-backend/internal/comment/dto"
	"findit-backend/internal/comment/usecase"
	"findit-backend/pkg/apperror"
	"findit-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CommentHandler handles comment-related HTTP requests
type CommentHandler struct {
	commentUsecase usecase.CommentUsecase
	log            logrus.FieldLogger
}

func NewCommentHandler(commentUsecase usecase.CommentUsecase, log logrus.FieldLogger) *CommentHandler {
	return &CommentHandler{
		commentUsecase: commentUsecase,
		log:            log,
	}
}

// AddComment posts a comment on an item the caller can see
// POST /comments
func (h *CommentHandler) AddComment(c *gin.Context) {
	var req commentdto.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	comment, err := h.commentUsecase.AddComment(c.Request.Context(), c.GetString("userID"), &req)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Comment added successfully!", "comment": comment})
}

// GetCommentsByPostID lists a post's comments oldest first
// GET /comments/:postId
func (h *CommentHandler) GetCommentsByPostID(c *gin.Context) {
	postID := c.Param("postId")
	if _, err := uuid.Parse(postID); err != nil {
		response.Error(c, h.log, apperror.Validation("Invalid post ID format"))
		return
	}

	comments, err := h.commentUsecase.GetCommentsByPostID(c.Request.Context(), postID, c.GetString("userID"))
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}
