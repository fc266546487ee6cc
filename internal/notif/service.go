package notif

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"pawshare/internal/common"
	"pawshare/internal/config"
	"pawshare/internal/dbmysql"
	"pawshare/internal/tasks"
)

// Service is the notification fan-out engine. Persisting rows is the
// durable part; push delivery is best-effort, dispatched through the
// task runner and never awaited by the triggering request.
type Service struct {
	notifications dbmysql.NotificationRepository
	prefs         dbmysql.PreferenceRepository
	subs          dbmysql.SubscriptionRepository
	follows       dbmysql.FollowRepository
	transport     PushTransport
	runner        *tasks.Runner
	batchSize     int
	log           zerolog.Logger
}

// NewService wires the fan-out engine. transport may be nil when push
// delivery is disabled; persistence still happens.
func NewService(
	notifications dbmysql.NotificationRepository,
	prefs dbmysql.PreferenceRepository,
	subs dbmysql.SubscriptionRepository,
	follows dbmysql.FollowRepository,
	transport PushTransport,
	runner *tasks.Runner,
	cfg *config.Config,
	logger zerolog.Logger,
) *Service {
	return &Service{
		notifications: notifications,
		prefs:         prefs,
		subs:          subs,
		follows:       follows,
		transport:     transport,
		runner:        runner,
		batchSize:     cfg.Notification.InsertBatchSize,
		log:           logger.With().Str("component", "notif").Logger(),
	}
}

// NotifyFollowersOfShare fans one share out to the owner's followers.
// Followers who explicitly disabled notifications for this owner are
// excluded; absence of a preference row means enabled. Rows are inserted
// in bounded batches, then push delivery is queued per recipient.
func (s *Service) NotifyFollowersOfShare(ctx context.Context, ownerID, videoID uint, title string) error {
	followerIDs, err := s.follows.FollowerIDs(ctx, ownerID)
	if err != nil {
		return err
	}
	if len(followerIDs) == 0 {
		return nil
	}

	disabled, err := s.prefs.DisabledFollowers(ctx, followerIDs, ownerID)
	if err != nil {
		return err
	}

	message := fmt.Sprintf("A user you follow shared a new video: %s", title)
	rows := make([]*dbmysql.Notification, 0, len(followerIDs))
	for _, followerID := range followerIDs {
		if disabled[followerID] {
			continue
		}
		owner := ownerID
		video := videoID
		rows = append(rows, &dbmysql.Notification{
			UserID:         followerID,
			Type:           common.NewShareType,
			Title:          "New video",
			Message:        message,
			RelatedUserID:  &owner,
			RelatedVideoID: &video,
		})
	}
	if len(rows) == 0 {
		return nil
	}

	if err := s.notifications.CreateBatch(ctx, rows, s.batchSize); err != nil {
		return err
	}
	s.log.Info().Uint("owner_id", ownerID).Int("recipients", len(rows)).Msg("share fan-out persisted")

	payload := PushPayload{Type: common.NewShareType, Title: "New video", Message: message}
	for _, row := range rows {
		s.queuePush(row.UserID, payload)
	}
	return nil
}

// NotifyDirect persists a single-target notification and queues its push
// delivery. Self-notifications are skipped entirely.
func (s *Service) NotifyDirect(ctx context.Context, actorID, targetID uint, typ common.NotificationType, title, message string, relatedVideoID *uint) error {
	if actorID == targetID {
		return nil
	}
	if targetID == 0 || title == "" {
		return fmt.Errorf("direct notification needs a target and a title: %w", common.ErrValidation)
	}

	actor := actorID
	row := &dbmysql.Notification{
		UserID:         targetID,
		Type:           typ,
		Title:          title,
		Message:        message,
		RelatedUserID:  &actor,
		RelatedVideoID: relatedVideoID,
	}
	if err := s.notifications.CreateBatch(ctx, []*dbmysql.Notification{row}, s.batchSize); err != nil {
		return err
	}

	s.queuePush(targetID, PushPayload{Type: typ, Title: title, Message: message})
	return nil
}

// ListByUser returns a user's notifications, newest first.
func (s *Service) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]*dbmysql.Notification, error) {
	return s.notifications.ByUserID(ctx, userID, limit, offset)
}

// MarkRead flags one notification of userID as read.
func (s *Service) MarkRead(ctx context.Context, id, userID uint) error {
	return s.notifications.MarkAsRead(ctx, id, userID)
}

// UnreadCount returns the number of unread notifications for userID.
func (s *Service) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	return s.notifications.UnreadCount(ctx, userID)
}

// queuePush schedules best-effort delivery to every subscription of one
// user. Failures are logged; a permanent failure deletes the
// subscription, the engine's only self-healing for stale endpoints.
func (s *Service) queuePush(userID uint, payload PushPayload) {
	if s.transport == nil {
		return
	}
	s.runner.Go("push_delivery", func(ctx context.Context) {
		s.deliver(ctx, userID, payload)
	})
}

func (s *Service) deliver(ctx context.Context, userID uint, payload PushPayload) {
	subs, err := s.subs.ByUserID(ctx, userID)
	if err != nil {
		s.log.Error().Err(err).Uint("user_id", userID).Msg("push delivery: subscription lookup failed")
		return
	}

	for _, sub := range subs {
		err := s.transport.Send(ctx, sub, payload)
		switch {
		case err == nil:
		case errors.Is(err, ErrPermanentFailure):
			if delErr := s.subs.DeleteByEndpoint(ctx, userID, sub.Endpoint); delErr != nil {
				s.log.Error().Err(delErr).Uint("user_id", userID).Msg("failed to prune dead subscription")
			} else {
				s.log.Info().Uint("user_id", userID).Str("endpoint", sub.Endpoint).Msg("pruned dead subscription")
			}
		default:
			s.log.Warn().Err(err).Uint("user_id", userID).Msg("push delivery failed")
		}
	}
}
