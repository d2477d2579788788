package notification

import (
	"context"
	"fmt"

	notificationdomain "findit-backend/internal/notification/domain"
	"findit-backend/internal/notification/repository"
	"findit-backend/pkg/fcm"
	"findit-backend/pkg/metrics"

	"github.com/sirupsen/logrus"
)

// PushSender delivers one notification to many device tokens.
type PushSender interface {
	SendToDevices(ctx context.Context, tokens []string, notification fcm.NotificationData) (*fcm.SendResult, error)
}

// MemberLister resolves the user ids belonging to a group.
type MemberLister interface {
	ListMemberUserIDs(ctx context.Context, groupID string) ([]string, error)
}

type Service struct {
	tokenRepo repository.TokenRepository
	members   MemberLister
	push      PushSender
	log       logrus.FieldLogger
}

// NewService wires token storage, group membership and the push gateway.
// push may be nil, in which case group sends are skipped.
func NewService(tokenRepo repository.TokenRepository, members MemberLister, push PushSender, log logrus.FieldLogger) *Service {
	return &Service{
		tokenRepo: tokenRepo,
		members:   members,
		push:      push,
		log:       log.WithField("component", "notification"),
	}
}

// SaveToken registers token for userID, taking it over from any previous owner.
func (s *Service) SaveToken(ctx context.Context, userID, token, deviceInfo string) (*notificationdomain.FCMToken, error) {
	t := &notificationdomain.FCMToken{
		UserID:     userID,
		Token:      token,
		DeviceInfo: deviceInfo,
	}
	if err := s.tokenRepo.Save(ctx, t); err != nil {
		return nil, fmt.Errorf("save fcm token: %w", err)
	}

	stored, err := s.tokenRepo.FindByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("reload fcm token: %w", err)
	}
	if stored == nil {
		return t, nil
	}
	return stored, nil
}

// DeleteToken removes token if userID owns it. Unknown tokens are ignored.
func (s *Service) DeleteToken(ctx context.Context, userID, token string) error {
	n, err := s.tokenRepo.Delete(ctx, userID, token)
	if err != nil {
		return fmt.Errorf("delete fcm token: %w", err)
	}
	s.log.WithFields(logrus.Fields{"user_id": userID, "deleted": n}).Debug("fcm token unregistered")
	return nil
}

// SendToGroup pushes payload to every member of groupID except excludeUserID.
// Only transport-level failures are returned; per-token failures are logged,
// and tokens the gateway reports as invalid are deleted.
func (s *Service) SendToGroup(ctx context.Context, groupID string, payload notificationdomain.Payload, excludeUserID string) error {
	log := s.log.WithField("group_id", groupID)
	if s.push == nil {
		log.Debug("push gateway not configured, skipping group notification")
		return nil
	}

	memberIDs, err := s.members.ListMemberUserIDs(ctx, groupID)
	if err != nil {
		return fmt.Errorf("list group members: %w", err)
	}

	recipients := make([]string, 0, len(memberIDs))
	for _, id := range memberIDs {
		if id != excludeUserID {
			recipients = append(recipients, id)
		}
	}
	if len(recipients) == 0 {
		log.Debug("no recipients for group notification")
		return nil
	}

	tokenRows, err := s.tokenRepo.LatestByUserIDs(ctx, recipients)
	if err != nil {
		return fmt.Errorf("load fcm tokens: %w", err)
	}
	if len(tokenRows) == 0 {
		log.Info("no fcm tokens registered for group members")
		return nil
	}

	tokens := make([]string, len(tokenRows))
	for i, t := range tokenRows {
		tokens[i] = t.Token
	}

	result, err := s.push.SendToDevices(ctx, tokens, fcm.NotificationData{
		Title: payload.Title,
		Body:  payload.Body,
		Data:  payload.Data,
	})
	if result == nil {
		result = &fcm.SendResult{}
	}
	metrics.RecordPush("success", result.SuccessCount)
	metrics.RecordPush("failure", result.FailureCount)
	metrics.RecordPush("invalid", len(result.InvalidTokens))
	s.forgetInvalid(ctx, result.InvalidTokens)
	if err != nil {
		return fmt.Errorf("send group notification: %w", err)
	}

	log.WithFields(logrus.Fields{
		"recipients": len(tokens),
		"success":    result.SuccessCount,
		"failure":    result.FailureCount,
	}).Info("group notification sent")
	return nil
}

func (s *Service) forgetInvalid(ctx context.Context, tokens []string) {
	if len(tokens) == 0 {
		return
	}
	n, err := s.tokenRepo.DeleteTokens(ctx, tokens)
	if err != nil {
		s.log.WithError(err).Warn("failed to delete invalid fcm tokens")
		return
	}
	metrics.RecordTokensDeleted("invalid", n)
	s.log.WithField("deleted", n).Info("removed invalid fcm tokens")
}
