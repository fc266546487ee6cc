// Package social manages the follow graph and per-relationship
// notification preferences.
package social

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"pawshare/internal/common"
	"pawshare/internal/dbmysql"
	"pawshare/internal/tasks"
)

// DirectNotifier delivers single-target notifications.
type DirectNotifier interface {
	NotifyDirect(ctx context.Context, actorID, targetID uint, typ common.NotificationType, title, message string, relatedVideoID *uint) error
}

// Service implements follow management on top of the follow repository.
type Service struct {
	follows  dbmysql.FollowRepository
	prefs    dbmysql.PreferenceRepository
	notifier DirectNotifier
	runner   *tasks.Runner
	log      zerolog.Logger
}

// NewService wires the social service. notifier may be nil.
func NewService(follows dbmysql.FollowRepository, prefs dbmysql.PreferenceRepository, notifier DirectNotifier, runner *tasks.Runner, logger zerolog.Logger) *Service {
	return &Service{
		follows:  follows,
		prefs:    prefs,
		notifier: notifier,
		runner:   runner,
		log:      logger.With().Str("component", "social").Logger(),
	}
}

// Follow creates a follow edge and notifies the followed user
// best-effort. Self-follows are rejected.
func (s *Service) Follow(ctx context.Context, followerID, followingID uint) error {
	if followerID == 0 || followingID == 0 {
		return fmt.Errorf("missing user id: %w", common.ErrValidation)
	}
	follow := &dbmysql.Follow{FollowerID: followerID, FollowingID: followingID}
	if err := s.follows.Create(ctx, follow); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// already following, nothing to do
			return nil
		}
		return err
	}

	if s.notifier != nil {
		s.runner.Go("notify_follow", func(ctx context.Context) {
			err := s.notifier.NotifyDirect(ctx, followerID, followingID, common.FollowType,
				"New follower", "Someone started following you", nil)
			if err != nil {
				s.log.Warn().Err(err).Uint("following_id", followingID).Msg("follow notification failed")
			}
		})
	}
	return nil
}

// Unfollow removes a follow edge.
func (s *Service) Unfollow(ctx context.Context, followerID, followingID uint) error {
	return s.follows.Delete(ctx, followerID, followingID)
}

// IsFollowing reports whether the edge exists.
func (s *Service) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	return s.follows.IsFollowing(ctx, followerID, followingID)
}

// SetNotificationPreference records a per-relationship opt-in/opt-out.
func (s *Service) SetNotificationPreference(ctx context.Context, userID, followingUserID uint, enabled bool) error {
	if userID == 0 || followingUserID == 0 {
		return fmt.Errorf("missing user id: %w", common.ErrValidation)
	}
	return s.prefs.Upsert(ctx, userID, followingUserID, enabled)
}
