package usecase

import (
	"context"
	"fmt"

	commentdomain "findit-backend/internal/comment/domain"
	commentdto "findit-backend/internal/comment/dto"
	"findit-backend/internal/comment/repository"
	grouprepo "findit-backend/internal/group/repository"
	postdomain "findit-backend/internal/post/domain"
	postrepo "findit-backend/internal/post/repository"
	"findit-backend/pkg/apperror"
)

type commentUsecase struct {
	commentRepo repository.CommentRepository
	postRepo    postrepo.PostRepository
	groupRepo   grouprepo.GroupRepository
}

func NewCommentUsecase(commentRepo repository.CommentRepository, postRepo postrepo.PostRepository, groupRepo grouprepo.GroupRepository) CommentUsecase {
	return &commentUsecase{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		groupRepo:   groupRepo,
	}
}

func (u *commentUsecase) AddComment(ctx context.Context, authorID string, req *commentdto.AddCommentRequest) (*commentdomain.Comment, error) {
	post, err := u.authorizePost(ctx, req.PostID, authorID)
	if err != nil {
		return nil, err
	}

	comment := &commentdomain.Comment{
		Content:  req.Content,
		PostID:   post.ID,
		AuthorID: authorID,
	}
	if err := u.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

func (u *commentUsecase) GetCommentsByPostID(ctx context.Context, postID, callerID string) (*commentdto.PostComments, error) {
	if _, err := u.authorizePost(ctx, postID, callerID); err != nil {
		return nil, err
	}

	comments, err := u.commentRepo.FindByPostWithAuthor(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return &commentdto.PostComments{PostID: postID, Comments: commentdto.ToCommentsWithAuthor(comments)}, nil
}

// authorizePost loads the post and checks that userID can see its group.
func (u *commentUsecase) authorizePost(ctx context.Context, postID, userID string) (*postdomain.Post, error) {
	post, err := u.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("find post: %w", err)
	}
	if post == nil {
		return nil, apperror.NotFound("Post not found")
	}

	group, err := u.groupRepo.FindByID(ctx, post.GroupID)
	if err != nil {
		return nil, fmt.Errorf("find group: %w", err)
	}
	if group == nil {
		return nil, apperror.NotFound("Group not found")
	}

	allowed, err := grouprepo.CanAccess(ctx, u.groupRepo, group, userID)
	if err != nil {
		return nil, fmt.Errorf("check access: %w", err)
	}
	if !allowed {
		return nil, apperror.Forbidden("You are not a member of this group")
	}
	return post, nil
}
