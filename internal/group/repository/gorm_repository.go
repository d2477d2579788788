package repository

import (
	"context"
	"errors"
	"time"

	authdomain "findit-backend/internal/auth/domain"
	groupdomain "findit-backend/internal/group/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new gorm-backed group repository
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&groupdomain.Group{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

func (r *groupRepository) CreateWithCreator(ctx context.Context, group *groupdomain.Group) error {
	now := time.Now()
	group.ID = uuid.New().String()
	group.CreatedAt = now
	group.UpdatedAt = now

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Creator", "Members").Create(group).Error; err != nil {
			return err
		}
		member := &groupdomain.GroupMember{
			ID:        uuid.New().String(),
			UserID:    group.CreatorID,
			GroupID:   group.ID,
			CreatedAt: now,
		}
		return tx.Omit("User").Create(member).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrCodeTaken
	}
	return err
}

func (r *groupRepository) FindByID(ctx context.Context, id string) (*groupdomain.Group, error) {
	return r.findOne(r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *groupRepository) FindByCode(ctx context.Context, code string) (*groupdomain.Group, error) {
	return r.findOne(r.db.WithContext(ctx).Where("code = ?", code))
}

func (r *groupRepository) FindDetail(ctx context.Context, id string) (*groupdomain.Group, error) {
	query := r.db.WithContext(ctx).
		Preload("Creator").
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Members.User").
		Where("id = ?", id)
	return r.findOne(query)
}

func (r *groupRepository) findOne(query *gorm.DB) (*groupdomain.Group, error) {
	var group groupdomain.Group
	if err := query.First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}

func (r *groupRepository) FindCreatedBy(ctx context.Context, userID string) ([]groupdomain.Group, error) {
	var groups []groupdomain.Group
	err := r.db.WithContext(ctx).
		Preload("Creator").
		Where("creator_id = ?", userID).
		Order("created_at DESC").
		Find(&groups).Error
	return groups, err
}

func (r *groupRepository) FindJoinedBy(ctx context.Context, userID string) ([]groupdomain.Group, error) {
	memberships := r.db.Model(&groupdomain.GroupMember{}).Select("group_id").Where("user_id = ?", userID)

	var groups []groupdomain.Group
	err := r.db.WithContext(ctx).
		Preload("Creator").
		Where("id IN (?)", memberships).
		Order("created_at DESC").
		Find(&groups).Error
	return groups, err
}

func (r *groupRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()
	return r.db.WithContext(ctx).Model(&groupdomain.Group{}).Where("id = ?", id).Updates(fields).Error
}

func (r *groupRepository) AddMember(ctx context.Context, groupID, userID string) error {
	member := &groupdomain.GroupMember{
		ID:        uuid.New().String(),
		UserID:    userID,
		GroupID:   groupID,
		CreatedAt: time.Now(),
	}
	err := r.db.WithContext(ctx).Omit("User").Create(member).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAlreadyMember
	}
	return err
}

func (r *groupRepository) IsMember(ctx context.Context, groupID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&groupdomain.GroupMember{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *groupRepository) ListMembers(ctx context.Context, groupID string) ([]authdomain.User, error) {
	var users []authdomain.User
	err := r.db.WithContext(ctx).
		Joins("JOIN group_members ON group_members.user_id = users.id").
		Where("group_members.group_id = ?", groupID).
		Order("group_members.created_at ASC").
		Find(&users).Error
	return users, err
}

func (r *groupRepository) ListMemberUserIDs(ctx context.Context, groupID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&groupdomain.GroupMember{}).
		Where("group_id = ?", groupID).
		Pluck("user_id", &ids).Error
	return ids, err
}
