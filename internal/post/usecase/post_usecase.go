package usecase

import (
	"context"
	"fmt"

	grouprepo "findit-backend/internal/group/repository"
	notificationdomain "findit-backend/internal/notification/domain"
	postdomain "findit-backend/internal/post/domain"
	postdto "findit-backend/internal/post/dto"
	"findit-backend/internal/post/repository"
	"findit-backend/pkg/apperror"

	"github.com/sirupsen/logrus"
)

// Notification types carried in the push data payload.
const (
	NotificationNewPost     = "NEW_POST"
	NotificationPostClaimed = "POST_CLAIMED"
)

type postUsecase struct {
	postRepo  repository.PostRepository
	groupRepo grouprepo.GroupRepository
	notifier  Notifier
	log       logrus.FieldLogger
}

// NewPostUsecase creates a new instance of postUsecase. notifier may be nil.
func NewPostUsecase(postRepo repository.PostRepository, groupRepo grouprepo.GroupRepository, notifier Notifier, log logrus.FieldLogger) PostUsecase {
	return &postUsecase{
		postRepo:  postRepo,
		groupRepo: groupRepo,
		notifier:  notifier,
		log:       log.WithField("component", "post"),
	}
}

func (u *postUsecase) CreatePost(ctx context.Context, authorID string, req *postdto.CreatePostRequest) (*postdomain.Post, error) {
	group, err := u.groupRepo.FindByID(ctx, req.GroupID)
	if err != nil {
		return nil, fmt.Errorf("find group: %w", err)
	}
	if group == nil {
		return nil, apperror.NotFound("Group not found")
	}

	allowed, err := grouprepo.CanAccess(ctx, u.groupRepo, group, authorID)
	if err != nil {
		return nil, fmt.Errorf("check access: %w", err)
	}
	if !allowed {
		return nil, apperror.Forbidden("You are not a member of this group")
	}

	post := &postdomain.Post{
		Title:    req.Title,
		Details:  req.Details,
		PostType: postdomain.PostType(req.PostType),
		ImageURL: req.ImageURL,
		Status:   postdomain.PostStatusActive,
		GroupID:  group.ID,
		AuthorID: authorID,
	}
	if err := u.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	u.notify(group.ID, notificationdomain.Payload{
		Title: fmt.Sprintf("New %s item in %s", post.PostType, group.Name),
		Body:  post.Title,
		Data: map[string]string{
			"type":    NotificationNewPost,
			"groupId": group.ID,
			"postId":  post.ID,
		},
	}, authorID)

	return post, nil
}

func (u *postUsecase) GetPostsByGroupID(ctx context.Context, groupID, callerID string) (*postdto.GroupPosts, error) {
	group, err := u.groupRepo.FindByID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("find group: %w", err)
	}
	if group == nil {
		return nil, apperror.NotFound("Group not found")
	}

	allowed, err := grouprepo.CanAccess(ctx, u.groupRepo, group, callerID)
	if err != nil {
		return nil, fmt.Errorf("check access: %w", err)
	}
	if !allowed {
		return nil, apperror.Forbidden("You are not a member of this group")
	}

	posts, err := u.postRepo.FindByGroupWithAuthor(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	return &postdto.GroupPosts{GroupID: groupID, Posts: postdto.ToPostsWithAuthor(posts)}, nil
}

// UpdatePostStatus lets the author move a post between ACTIVE and CLAIMED.
// Setting the current status again is allowed.
func (u *postUsecase) UpdatePostStatus(ctx context.Context, postID, callerID string, req *postdto.UpdatePostStatusRequest) (*postdomain.Post, error) {
	post, err := u.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("find post: %w", err)
	}
	if post == nil {
		return nil, apperror.NotFound("Post not found")
	}
	if post.AuthorID != callerID {
		return nil, apperror.Forbidden("You are not authorized to update this post")
	}

	status := postdomain.PostStatus(req.Status)
	if err := u.postRepo.UpdateStatus(ctx, postID, status); err != nil {
		return nil, fmt.Errorf("update post status: %w", err)
	}

	updated, err := u.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("reload post: %w", err)
	}
	if updated == nil {
		return nil, apperror.NotFound("Post not found")
	}

	if status == postdomain.PostStatusClaimed {
		u.notify(updated.GroupID, notificationdomain.Payload{
			Title: "Item claimed",
			Body:  fmt.Sprintf("%q has been marked as claimed", updated.Title),
			Data: map[string]string{
				"type":    NotificationPostClaimed,
				"groupId": updated.GroupID,
				"postId":  updated.ID,
			},
		}, callerID)
	}

	return updated, nil
}

func (u *postUsecase) notify(groupID string, payload notificationdomain.Payload, excludeUserID string) {
	if u.notifier == nil {
		return
	}
	u.notifier.NotifyGroup(groupID, payload, excludeUserID)
}
