package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	groupdomain "findit-backend/internal/group/domain"
	groupdto "findit-backend/internal/group/dto"
	"findit-backend/internal/group/repository"
	"findit-backend/pkg/apperror"

	"github.com/sirupsen/logrus"
)

// maxCodeAttempts bounds code regeneration. With 16^6 codes a second attempt
// is already rare.
const maxCodeAttempts = 16

type groupUsecase struct {
	groupRepo    repository.GroupRepository
	generateCode func() (string, error)
	log          logrus.FieldLogger
}

// NewGroupUsecase creates a new instance of groupUsecase
func NewGroupUsecase(groupRepo repository.GroupRepository, log logrus.FieldLogger) GroupUsecase {
	return &groupUsecase{
		groupRepo:    groupRepo,
		generateCode: GenerateCode,
		log:          log.WithField("component", "group"),
	}
}

// GenerateCode returns 3 random bytes as 6 uppercase hex characters.
func GenerateCode() (string, error) {
	b := make([]byte, groupdomain.CodeLength/2)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(b)), nil
}

func (u *groupUsecase) CreateGroup(ctx context.Context, creatorID string, req *groupdto.CreateGroupRequest) (*groupdto.GroupDetail, error) {
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code, err := u.generateCode()
		if err != nil {
			return nil, fmt.Errorf("generate group code: %w", err)
		}

		exists, err := u.groupRepo.CodeExists(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("check group code: %w", err)
		}
		if exists {
			continue
		}

		group := &groupdomain.Group{
			Name:          req.Name,
			Code:          code,
			GroupImageURL: req.GroupImageURL,
			CreatorID:     creatorID,
		}
		err = u.groupRepo.CreateWithCreator(ctx, group)
		if errors.Is(err, repository.ErrCodeTaken) {
			// Another request claimed the code between the check and the insert.
			u.log.WithField("attempt", attempt).Warn("group code collision on insert, regenerating")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("create group: %w", err)
		}

		return u.detail(ctx, group.ID)
	}
	return nil, fmt.Errorf("no free group code after %d attempts", maxCodeAttempts)
}

func (u *groupUsecase) JoinGroup(ctx context.Context, userID string, req *groupdto.JoinGroupRequest) (*groupdto.GroupDetail, error) {
	group, err := u.groupRepo.FindByCode(ctx, strings.ToUpper(req.Code))
	if err != nil {
		return nil, fmt.Errorf("find group by code: %w", err)
	}
	if group == nil {
		return nil, apperror.NotFound("Group not found")
	}

	isMember, err := u.groupRepo.IsMember(ctx, group.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("check membership: %w", err)
	}
	if isMember {
		return nil, apperror.Conflict("You are already a member of this group")
	}

	if err := u.groupRepo.AddMember(ctx, group.ID, userID); err != nil {
		if errors.Is(err, repository.ErrAlreadyMember) {
			return nil, apperror.Conflict("You are already a member of this group")
		}
		return nil, fmt.Errorf("add member: %w", err)
	}

	return u.detail(ctx, group.ID)
}

func (u *groupUsecase) detail(ctx context.Context, groupID string) (*groupdto.GroupDetail, error) {
	group, err := u.groupRepo.FindDetail(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("load group: %w", err)
	}
	if group == nil {
		return nil, apperror.NotFound("Group not found")
	}
	return groupdto.ToGroupDetail(group), nil
}

func (u *groupUsecase) GetUserGroups(ctx context.Context, userID string) (*groupdto.UserGroups, error) {
	created, err := u.groupRepo.FindCreatedBy(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find created groups: %w", err)
	}

	joined, err := u.groupRepo.FindJoinedBy(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find joined groups: %w", err)
	}

	return &groupdto.UserGroups{
		CreatedGroups: groupdto.ToGroupListItems(created),
		JoinedGroups:  groupdto.ToGroupListItems(joined),
	}, nil
}

// GetGroupMembers does not check that the caller belongs to the group.
func (u *groupUsecase) GetGroupMembers(ctx context.Context, groupID string) (*groupdto.GroupMembers, error) {
	group, err := u.groupRepo.FindByID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("find group: %w", err)
	}
	if group == nil {
		return nil, apperror.NotFound("Group not found")
	}

	users, err := u.groupRepo.ListMembers(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	return &groupdto.GroupMembers{GroupID: groupID, Members: groupdto.ToMembers(users)}, nil
}

func (u *groupUsecase) GetGroupByID(ctx context.Context, groupID, callerID string) (*groupdto.GroupSummary, error) {
	group, err := u.groupRepo.FindByID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("find group: %w", err)
	}
	if group == nil {
		return nil, apperror.NotFound("Group not found")
	}

	allowed, err := repository.CanAccess(ctx, u.groupRepo, group, callerID)
	if err != nil {
		return nil, fmt.Errorf("check access: %w", err)
	}
	if !allowed {
		return nil, apperror.Forbidden("You are not a member of this group")
	}

	return groupdto.ToGroupSummary(group), nil
}

func (u *groupUsecase) UpdateGroup(ctx context.Context, groupID, callerID string, req *groupdto.UpdateGroupRequest) (*groupdto.UpdateGroupResult, error) {
	group, err := u.groupRepo.FindByID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("find group: %w", err)
	}
	if group == nil {
		return nil, apperror.NotFound("Group not found")
	}
	if group.CreatorID != callerID {
		return nil, apperror.Forbidden("You are not authorized to update this group")
	}

	fields := map[string]interface{}{}
	if req.Name != nil && *req.Name != "" && *req.Name != group.Name {
		fields["name"] = *req.Name
		group.Name = *req.Name
	}
	if req.GroupImageURL != nil && *req.GroupImageURL != "" && *req.GroupImageURL != group.GroupImageURL {
		fields["group_image_url"] = *req.GroupImageURL
		group.GroupImageURL = *req.GroupImageURL
	}

	if len(fields) == 0 {
		return &groupdto.UpdateGroupResult{Group: group, Changed: false}, nil
	}

	if err := u.groupRepo.Update(ctx, groupID, fields); err != nil {
		return nil, fmt.Errorf("update group: %w", err)
	}
	return &groupdto.UpdateGroupResult{Group: group, Changed: true}, nil
}
