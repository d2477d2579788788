package dto

import (
	"time"

	commentdomain "findit-backend/internal/comment/domain"
)

type AddCommentRequest struct {
	PostID  string `json:"postId" binding:"required,uuid"`
	Content string `json:"content" binding:"required"`
}

type CommentAuthor struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
}

type CommentWithAuthor struct {
	ID        string         `json:"id"`
	Content   string         `json:"content"`
	PostID    string         `json:"postId"`
	AuthorID  string         `json:"authorId"`
	CreatedAt time.Time      `json:"createdAt"`
	Author    *CommentAuthor `json:"author"`
}

type PostComments struct {
	PostID   string              `json:"postId"`
	Comments []CommentWithAuthor `json:"comments"`
}

func ToCommentsWithAuthor(comments []commentdomain.Comment) []CommentWithAuthor {
	out := make([]CommentWithAuthor, 0, len(comments))
	for _, c := range comments {
		item := CommentWithAuthor{
			ID:        c.ID,
			Content:   c.Content,
			PostID:    c.PostID,
			AuthorID:  c.AuthorID,
			CreatedAt: c.CreatedAt,
		}
		if c.Author != nil {
			item.Author = &CommentAuthor{
				ID:              c.Author.ID,
				Name:            c.Author.Name,
				ProfileImageURL: c.Author.ProfileImageURL,
			}
		}
		out = append(out, item)
	}
	return out
}
