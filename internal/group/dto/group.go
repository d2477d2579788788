package dto

import (
	"time"

	authdomain "findit-backend/internal/auth/domain"
	groupdomain "findit-backend/internal/group/domain"
)

type CreateGroupRequest struct {
	Name          string `json:"name" binding:"required,min=3"`
	GroupImageURL string `json:"groupImageUrl" binding:"omitempty,url"`
}

type JoinGroupRequest struct {
	Code string `json:"code" binding:"required,len=6"`
}

// UpdateGroupRequest leaves absent fields unchanged. Present fields are
// validated as sent, so an empty name or image URL is rejected.
type UpdateGroupRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=3"`
	GroupImageURL *string `json:"groupImageUrl" binding:"omitempty,url"`
}

type CreatorContact struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type MemberContact struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// GroupDetail is returned after create and join.
type GroupDetail struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Code          string          `json:"code"`
	GroupImageURL string          `json:"groupImageUrl,omitempty"`
	CreatorID     string          `json:"creatorId"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	Creator       *CreatorContact `json:"creator"`
	Members       []MemberContact `json:"members"`
}

type CreatorSummary struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
}

type GroupListItem struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Code          string          `json:"code"`
	GroupImageURL string          `json:"groupImageUrl,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	Creator       *CreatorSummary `json:"creator"`
}

type UserGroups struct {
	CreatedGroups []GroupListItem `json:"createdGroups"`
	JoinedGroups  []GroupListItem `json:"joinedGroups"`
}

type Member struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
}

type GroupMembers struct {
	GroupID string   `json:"groupId"`
	Members []Member `json:"members"`
}

type GroupSummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Code          string `json:"code"`
	GroupImageURL string `json:"groupImageUrl,omitempty"`
}

type UpdateGroupResult struct {
	Group   *groupdomain.Group
	Changed bool
}

// ToGroupDetail expects Creator and Members.User to be preloaded.
func ToGroupDetail(g *groupdomain.Group) *GroupDetail {
	detail := &GroupDetail{
		ID:            g.ID,
		Name:          g.Name,
		Code:          g.Code,
		GroupImageURL: g.GroupImageURL,
		CreatorID:     g.CreatorID,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
		Members:       make([]MemberContact, 0, len(g.Members)),
	}
	if g.Creator != nil {
		detail.Creator = &CreatorContact{ID: g.Creator.ID, Name: g.Creator.Name, Email: g.Creator.Email}
	}
	for _, m := range g.Members {
		if m.User == nil {
			continue
		}
		detail.Members = append(detail.Members, MemberContact{
			ID:    m.User.ID,
			Name:  m.User.Name,
			Email: m.User.Email,
			Phone: m.User.Phone,
		})
	}
	return detail
}

func ToGroupListItems(groups []groupdomain.Group) []GroupListItem {
	items := make([]GroupListItem, 0, len(groups))
	for _, g := range groups {
		item := GroupListItem{
			ID:            g.ID,
			Name:          g.Name,
			Code:          g.Code,
			GroupImageURL: g.GroupImageURL,
			CreatedAt:     g.CreatedAt,
		}
		if g.Creator != nil {
			item.Creator = &CreatorSummary{
				ID:              g.Creator.ID,
				Name:            g.Creator.Name,
				ProfileImageURL: g.Creator.ProfileImageURL,
			}
		}
		items = append(items, item)
	}
	return items
}

func ToMembers(users []authdomain.User) []Member {
	members := make([]Member, 0, len(users))
	for _, u := range users {
		members = append(members, Member{
			ID:              u.ID,
			Name:            u.Name,
			Email:           u.Email,
			Phone:           u.Phone,
			ProfileImageURL: u.ProfileImageURL,
		})
	}
	return members
}

func ToGroupSummary(g *groupdomain.Group) *GroupSummary {
	return &GroupSummary{
		ID:            g.ID,
		Name:          g.Name,
		Code:          g.Code,
		GroupImageURL: g.GroupImageURL,
	}
}
