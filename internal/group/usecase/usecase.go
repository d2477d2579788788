package usecase

import (
	"context"

	groupdto "findit-backend/internal/group/dto"
)

// GroupUsecase defines the interface for group operations
type GroupUsecase interface {
	CreateGroup(ctx context.Context, creatorID string, req *groupdto.CreateGroupRequest) (*groupdto.GroupDetail, error)
	JoinGroup(ctx context.Context, userID string, req *groupdto.JoinGroupRequest) (*groupdto.GroupDetail, error)
	GetUserGroups(ctx context.Context, userID string) (*groupdto.UserGroups, error)
	GetGroupMembers(ctx context.Context, groupID string) (*groupdto.GroupMembers, error)
	GetGroupByID(ctx context.Context, groupID, callerID string) (*groupdto.GroupSummary, error)
	UpdateGroup(ctx context.Context, groupID, callerID string, req *groupdto.UpdateGroupRequest) (*groupdto.UpdateGroupResult, error)
}
