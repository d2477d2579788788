package dto

import (
	"time"

	postdomain "findit-backend/internal/post/domain"
)

type CreatePostRequest struct {
	Title    string `json:"title" binding:"required"`
	Details  string `json:"details" binding:"required"`
	PostType string `json:"postType" binding:"required,oneof=LOST FOUND"`
	ImageURL string `json:"imageUrl" binding:"omitempty,url"`
	GroupID  string `json:"groupId" binding:"required,uuid"`
}

type UpdatePostStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ACTIVE CLAIMED"`
}

// PostAuthor carries contact details so members can reach the poster.
type PostAuthor struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
}

type PostWithAuthor struct {
	ID        string                `json:"id"`
	Title     string                `json:"title"`
	Details   string                `json:"details"`
	PostType  postdomain.PostType   `json:"postType"`
	ImageURL  string                `json:"imageUrl,omitempty"`
	Status    postdomain.PostStatus `json:"status"`
	GroupID   string                `json:"groupId"`
	AuthorID  string                `json:"authorId"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
	Author    *PostAuthor           `json:"author"`
}

type GroupPosts struct {
	GroupID string           `json:"groupId"`
	Posts   []PostWithAuthor `json:"posts"`
}

// ToPostsWithAuthor expects Author to be preloaded.
func ToPostsWithAuthor(posts []postdomain.Post) []PostWithAuthor {
	out := make([]PostWithAuthor, 0, len(posts))
	for _, p := range posts {
		item := PostWithAuthor{
			ID:        p.ID,
			Title:     p.Title,
			Details:   p.Details,
			PostType:  p.PostType,
			ImageURL:  p.ImageURL,
			Status:    p.Status,
			GroupID:   p.GroupID,
			AuthorID:  p.AuthorID,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		}
		if p.Author != nil {
			item.Author = &PostAuthor{
				ID:              p.Author.ID,
				Name:            p.Author.Name,
				ProfileImageURL: p.Author.ProfileImageURL,
				Email:           p.Author.Email,
				Phone:           p.Author.Phone,
			}
		}
		out = append(out, item)
	}
	return out
}
