package repository

import (
	"context"
	"errors"

	authdomain "findit-backend/internal/auth/domain"
	groupdomain "findit-backend/internal/group/domain"
)

var (
	// ErrCodeTaken is returned when the group code unique index rejects an insert.
	ErrCodeTaken = errors.New("group code already in use")
	// ErrAlreadyMember is returned when the (user, group) pair already exists.
	ErrAlreadyMember = errors.New("user is already a member of this group")
)

// GroupRepository defines the interface for group and membership storage
type GroupRepository interface {
	CodeExists(ctx context.Context, code string) (bool, error)
	// CreateWithCreator inserts the group and the creator's membership atomically.
	CreateWithCreator(ctx context.Context, group *groupdomain.Group) error

	FindByID(ctx context.Context, id string) (*groupdomain.Group, error)
	FindByCode(ctx context.Context, code string) (*groupdomain.Group, error)
	// FindDetail loads the group with its creator and members' users.
	FindDetail(ctx context.Context, id string) (*groupdomain.Group, error)
	FindCreatedBy(ctx context.Context, userID string) ([]groupdomain.Group, error)
	FindJoinedBy(ctx context.Context, userID string) ([]groupdomain.Group, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error

	AddMember(ctx context.Context, groupID, userID string) error
	IsMember(ctx context.Context, groupID, userID string) (bool, error)
	ListMembers(ctx context.Context, groupID string) ([]authdomain.User, error)
	ListMemberUserIDs(ctx context.Context, groupID string) ([]string, error)
}

// CanAccess reports whether userID may see group-scoped content: the creator
// always can, everyone else needs a membership row.
func CanAccess(ctx context.Context, repo GroupRepository, group *groupdomain.Group, userID string) (bool, error) {
	if group.CreatorID == userID {
		return true, nil
	}
	return repo.IsMember(ctx, group.ID, userID)
}
