package usecase

import (
	"context"

	notificationdomain "findit-backend/internal/notification/domain"
	postdomain "findit-backend/internal/post/domain"
	postdto "findit-backend/internal/post/dto"
)

// PostUsecase defines the interface for post operations
type PostUsecase interface {
	CreatePost(ctx context.Context, authorID string, req *postdto.CreatePostRequest) (*postdomain.Post, error)
	GetPostsByGroupID(ctx context.Context, groupID, callerID string) (*postdto.GroupPosts, error)
	UpdatePostStatus(ctx context.Context, postID, callerID string, req *postdto.UpdatePostStatusRequest) (*postdomain.Post, error)
}

// Notifier queues a group notification. It must not block on delivery.
type Notifier interface {
	NotifyGroup(groupID string, payload notificationdomain.Payload, excludeUserID string)
}
