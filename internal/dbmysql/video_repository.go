package dbmysql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"pawshare/internal/common"
)

// VideoRepository defines persistence operations for shared videos.
// Lookup methods return (nil, nil) when no row matches.
type VideoRepository interface {
	Create(ctx context.Context, video *Video) error
	ByID(ctx context.Context, id uint) (*Video, error)
	ByExternalAndSharer(ctx context.Context, externalID string, sharerID uint, repost bool) (*Video, error)
	EarliestOriginalShare(ctx context.Context, externalID string, excludeUserID uint) (*Video, error)
	BySharers(ctx context.Context, sharerIDs []uint, limit int) ([]Video, error)
	SearchByTag(ctx context.Context, query string, limit int) ([]Video, error)
	SearchByText(ctx context.Context, query string, limit int) ([]Video, error)
	Recent(ctx context.Context, tagNames []string, limit, offset int) ([]Video, error)
	UpdateViewCount(ctx context.Context, id uint, count uint64) error
	DeleteOwned(ctx context.Context, id, sharerID uint) error
}

type videoRepository struct {
	db *gorm.DB
}

// NewVideoRepository creates the MySQL-backed video repository.
func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(ctx context.Context, video *Video) error {
	video.IsRepost = video.OriginalSharerUserID != nil
	if err := r.db.WithContext(ctx).Create(video).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		return fmt.Errorf("failed to create video: %w", err)
	}
	return nil
}

func (r *videoRepository) ByID(ctx context.Context, id uint) (*Video, error) {
	var video Video
	err := r.db.WithContext(ctx).Preload("Tags").First(&video, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get video %d: %w", id, err)
	}
	return &video, nil
}

func (r *videoRepository) ByExternalAndSharer(ctx context.Context, externalID string, sharerID uint, repost bool) (*Video, error) {
	var video Video
	err := r.db.WithContext(ctx).
		Where("external_video_id = ? AND sharer_user_id = ? AND is_repost = ?", externalID, sharerID, repost).
		First(&video).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get video %s for user %d: %w", externalID, sharerID, err)
	}
	return &video, nil
}

// EarliestOriginalShare returns the oldest original-share row of an
// external video by any user other than excludeUserID.
func (r *videoRepository) EarliestOriginalShare(ctx context.Context, externalID string, excludeUserID uint) (*Video, error) {
	var video Video
	err := r.db.WithContext(ctx).
		Where("external_video_id = ? AND is_repost = ? AND sharer_user_id <> ?", externalID, false, excludeUserID).
		Order("created_at ASC").
		First(&video).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find original share of %s: %w", externalID, err)
	}
	return &video, nil
}

func (r *videoRepository) BySharers(ctx context.Context, sharerIDs []uint, limit int) ([]Video, error) {
	if len(sharerIDs) == 0 {
		return nil, nil
	}
	var videos []Video
	err := r.db.WithContext(ctx).
		Preload("Tags").
		Where("sharer_user_id IN ?", sharerIDs).
		Order("created_at DESC").
		Limit(limit).
		Find(&videos).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list videos by sharers: %w", err)
	}
	return videos, nil
}

func (r *videoRepository) SearchByTag(ctx context.Context, query string, limit int) ([]Video, error) {
	var videos []Video
	pattern := "%" + strings.ToLower(query) + "%"
	err := r.db.WithContext(ctx).
		Preload("Tags").
		Where("id IN (?)", r.db.Model(&Tag{}).Select("video_id").Where("LOWER(name) LIKE ?", pattern)).
		Order("view_count DESC").
		Limit(limit).
		Find(&videos).Error
	if err != nil {
		return nil, fmt.Errorf("tag search failed: %w", err)
	}
	return videos, nil
}

func (r *videoRepository) SearchByText(ctx context.Context, query string, limit int) ([]Video, error) {
	var videos []Video
	pattern := "%" + strings.ToLower(query) + "%"
	err := r.db.WithContext(ctx).
		Preload("Tags").
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Order("view_count DESC").
		Limit(limit).
		Find(&videos).Error
	if err != nil {
		return nil, fmt.Errorf("text search failed: %w", err)
	}
	return videos, nil
}

// Recent lists videos ordered by view count then recency, optionally
// restricted to rows carrying one of the given tag names.
func (r *videoRepository) Recent(ctx context.Context, tagNames []string, limit, offset int) ([]Video, error) {
	q := r.db.WithContext(ctx).Preload("Tags")
	if len(tagNames) > 0 {
		q = q.Where("id IN (?)", r.db.Model(&Tag{}).Select("video_id").Where("name IN ?", tagNames))
	}
	var videos []Video
	err := q.Order("view_count DESC, created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&videos).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent videos: %w", err)
	}
	return videos, nil
}

func (r *videoRepository) UpdateViewCount(ctx context.Context, id uint, count uint64) error {
	err := r.db.WithContext(ctx).
		Model(&Video{}).
		Where("id = ?", id).
		Update("view_count", count).Error
	if err != nil {
		return fmt.Errorf("failed to update view count for video %d: %w", id, err)
	}
	return nil
}

// DeleteOwned removes a video and its tags if it belongs to sharerID.
// Reposts crediting the deleted row are independent and untouched.
func (r *videoRepository) DeleteOwned(ctx context.Context, id, sharerID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND sharer_user_id = ?", id, sharerID).Delete(&Video{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete video %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("video %d owned by user %d: %w", id, sharerID, common.ErrNotFound)
		}
		if err := tx.Where("video_id = ?", id).Delete(&Tag{}).Error; err != nil {
			return fmt.Errorf("failed to delete tags of video %d: %w", id, err)
		}
		return nil
	})
}
