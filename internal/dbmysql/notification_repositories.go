package dbmysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pawshare/internal/common"
)

// NotificationRepository persists per-user notification rows.
type NotificationRepository interface {
	CreateBatch(ctx context.Context, notifications []*Notification, batchSize int) error
	ByUserID(ctx context.Context, userID uint, limit, offset int) ([]*Notification, error)
	MarkAsRead(ctx context.Context, id, userID uint) error
	UnreadCount(ctx context.Context, userID uint) (int64, error)
}

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates the MySQL-backed notification repository.
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) CreateBatch(ctx context.Context, notifications []*Notification, batchSize int) error {
	if len(notifications) == 0 {
		return nil
	}
	if batchSize <= 0 {
		batchSize = 100
	}
	if err := r.db.WithContext(ctx).CreateInBatches(notifications, batchSize).Error; err != nil {
		return fmt.Errorf("failed to create notifications: %w", err)
	}
	return nil
}

func (r *notificationRepository) ByUserID(ctx context.Context, userID uint, limit, offset int) ([]*Notification, error) {
	var notifications []*Notification
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	if err := q.Find(&notifications).Error; err != nil {
		return nil, fmt.Errorf("failed to get user notifications: %w", err)
	}
	return notifications, nil
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	if res.Error != nil {
		return fmt.Errorf("failed to mark notification %d read: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("notification %d for user %d: %w", id, userID, common.ErrNotFound)
	}
	return nil
}

func (r *notificationRepository) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("user_id = ? AND `read` = ?", userID, false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// PreferenceRepository reads and writes per-relationship notification
// opt-outs.
type PreferenceRepository interface {
	// DisabledFollowers returns the subset of followerIDs that explicitly
	// disabled notifications for ownerID.
	DisabledFollowers(ctx context.Context, followerIDs []uint, ownerID uint) (map[uint]bool, error)
	Upsert(ctx context.Context, userID, followingUserID uint, enabled bool) error
}

type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository creates the MySQL-backed preference repository.
func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) DisabledFollowers(ctx context.Context, followerIDs []uint, ownerID uint) (map[uint]bool, error) {
	disabled := make(map[uint]bool)
	if len(followerIDs) == 0 {
		return disabled, nil
	}
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&NotificationPreference{}).
		Where("user_id IN ? AND following_user_id = ? AND enabled = ?", followerIDs, ownerID, false).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load notification preferences: %w", err)
	}
	for _, id := range ids {
		disabled[id] = true
	}
	return disabled, nil
}

func (r *preferenceRepository) Upsert(ctx context.Context, userID, followingUserID uint, enabled bool) error {
	pref := NotificationPreference{
		UserID:          userID,
		FollowingUserID: followingUserID,
		Enabled:         enabled,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "following_user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"enabled"}),
		}).
		Create(&pref).Error
	if err != nil {
		return fmt.Errorf("failed to upsert notification preference: %w", err)
	}
	return nil
}

// SubscriptionRepository manages registered push endpoints.
type SubscriptionRepository interface {
	ByUserID(ctx context.Context, userID uint) ([]*PushSubscription, error)
	Create(ctx context.Context, sub *PushSubscription) error
	DeleteByEndpoint(ctx context.Context, userID uint, endpoint string) error
}

type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates the MySQL-backed subscription repository.
func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) ByUserID(ctx context.Context, userID uint) ([]*PushSubscription, error) {
	var subs []*PushSubscription
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&subs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get subscriptions for user %d: %w", userID, err)
	}
	return subs, nil
}

func (r *subscriptionRepository) Create(ctx context.Context, sub *PushSubscription) error {
	if err := r.db.WithContext(ctx).Create(sub).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	return nil
}

func (r *subscriptionRepository) DeleteByEndpoint(ctx context.Context, userID uint, endpoint string) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND endpoint = ?", userID, endpoint).
		Delete(&PushSubscription{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	return nil
}

// SearchHistoryRepository records executed searches.
type SearchHistoryRepository interface {
	Record(ctx context.Context, entry *SearchHistory) error
}

type searchHistoryRepository struct {
	db *gorm.DB
}

// NewSearchHistoryRepository creates the MySQL-backed search history repository.
func NewSearchHistoryRepository(db *gorm.DB) SearchHistoryRepository {
	return &searchHistoryRepository{db: db}
}

func (r *searchHistoryRepository) Record(ctx context.Context, entry *SearchHistory) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to record search: %w", err)
	}
	return nil
}
