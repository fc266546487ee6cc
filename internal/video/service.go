package video

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"pawshare/internal/common"
	"pawshare/internal/config"
	"pawshare/internal/dbmysql"
	"pawshare/internal/metadata"
	"pawshare/internal/searchcache"
	"pawshare/internal/tasks"
)

// Notifier triggers follower fan-out. The video service never awaits it.
type Notifier interface {
	NotifyFollowersOfShare(ctx context.Context, ownerID, videoID uint, title string) error
}

// ShareRequest is the input for sharing an external video.
type ShareRequest struct {
	UserID     uint     `validate:"required"`
	ExternalID string   `validate:"required"`
	Tags       []string `validate:"omitempty,max=20,dive,max=100"`
}

// Service implements sharing, reposting, feed and search assembly, and
// the lazy view-count refresher.
type Service struct {
	videos   dbmysql.VideoRepository
	follows  dbmysql.FollowRepository
	history  dbmysql.SearchHistoryRepository
	provider metadata.Provider
	cache    *searchcache.Cache
	runner   *tasks.Runner
	notifier Notifier
	validate *validator.Validate
	cfg      *config.Config
	log      zerolog.Logger
}

// NewService wires the video service. notifier may be set later via
// SetNotifier to break the construction cycle with the fan-out engine.
func NewService(
	videos dbmysql.VideoRepository,
	follows dbmysql.FollowRepository,
	history dbmysql.SearchHistoryRepository,
	provider metadata.Provider,
	cache *searchcache.Cache,
	runner *tasks.Runner,
	cfg *config.Config,
	logger zerolog.Logger,
) *Service {
	return &Service{
		videos:   videos,
		follows:  follows,
		history:  history,
		provider: provider,
		cache:    cache,
		runner:   runner,
		validate: validator.New(),
		cfg:      cfg,
		log:      logger.With().Str("component", "video").Logger(),
	}
}

// SetNotifier attaches the fan-out engine.
func (s *Service) SetNotifier(n Notifier) { s.notifier = n }

// Share creates an original-share row for userID. Metadata and stats are
// fetched best-effort; either failing independently leaves an empty
// description or a zero view count, never an error.
func (s *Service) Share(ctx context.Context, req ShareRequest) (*dbmysql.Video, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, common.ErrValidation)
	}
	if !metadata.IsValidVideoID(req.ExternalID) {
		return nil, fmt.Errorf("malformed external video id %q: %w", req.ExternalID, common.ErrValidation)
	}

	existing, err := s.videos.ByExternalAndSharer(ctx, req.ExternalID, req.UserID, false)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("external video %s by user %d: %w", req.ExternalID, req.UserID, common.ErrAlreadyShared)
	}

	row := &dbmysql.Video{
		ExternalVideoID: req.ExternalID,
		SharerUserID:    req.UserID,
	}
	if meta, err := s.provider.GetMetadata(ctx, req.ExternalID); err != nil {
		s.log.Warn().Err(err).Str("external_id", req.ExternalID).Msg("metadata fetch failed, sharing without it")
	} else {
		row.Title = meta.Title
		row.Description = meta.Description
	}
	if stats, err := s.provider.GetStats(ctx, req.ExternalID); err != nil {
		s.log.Debug().Err(err).Str("external_id", req.ExternalID).Msg("stats fetch failed, view count defaults to 0")
	} else {
		row.ViewCount = stats.ViewCount
	}
	for _, name := range NormalizeTags(req.Tags) {
		row.Tags = append(row.Tags, dbmysql.Tag{Name: name})
	}

	if err := s.videos.Create(ctx, row); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("external video %s by user %d: %w", req.ExternalID, req.UserID, common.ErrAlreadyShared)
		}
		return nil, err
	}

	s.queueShareNotification(req.UserID, row.ID, row.Title)
	return row, nil
}

// Repost creates a repost row crediting the flattened original sharer,
// snapshotting title, description, view count and tags from the source.
func (s *Service) Repost(ctx context.Context, userID uint, ref VideoRef) (*dbmysql.Video, error) {
	if userID == 0 {
		return nil, fmt.Errorf("missing user id: %w", common.ErrValidation)
	}

	credited, source, err := s.ResolveOriginalSharer(ctx, userID, ref)
	if err != nil {
		return nil, err
	}

	existing, err := s.videos.ByExternalAndSharer(ctx, source.ExternalVideoID, userID, true)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("external video %s by user %d: %w", source.ExternalVideoID, userID, common.ErrAlreadyReposted)
	}

	row := &dbmysql.Video{
		ExternalVideoID:      source.ExternalVideoID,
		Title:                source.Title,
		Description:          source.Description,
		SharerUserID:         userID,
		OriginalSharerUserID: &credited,
		ViewCount:            source.ViewCount,
	}
	tags, err := s.sourceTags(ctx, source)
	if err != nil {
		return nil, err
	}
	for _, name := range tags {
		row.Tags = append(row.Tags, dbmysql.Tag{Name: name})
	}

	if err := s.videos.Create(ctx, row); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("external video %s by user %d: %w", source.ExternalVideoID, userID, common.ErrAlreadyReposted)
		}
		return nil, err
	}

	s.queueShareNotification(userID, row.ID, row.Title)
	return row, nil
}

// CanRepost reports whether a repost of ref by userID would succeed,
// without creating anything. Infrastructure failures are returned;
// rejection reasons are not.
func (s *Service) CanRepost(ctx context.Context, userID uint, ref VideoRef) (bool, error) {
	_, source, err := s.ResolveOriginalSharer(ctx, userID, ref)
	switch {
	case err == nil:
	case errors.Is(err, common.ErrValidation),
		errors.Is(err, common.ErrNotFound),
		errors.Is(err, common.ErrSelfRepost),
		errors.Is(err, common.ErrNoEligibleOriginal):
		return false, nil
	default:
		return false, err
	}

	existing, err := s.videos.ByExternalAndSharer(ctx, source.ExternalVideoID, userID, true)
	if err != nil {
		return false, err
	}
	return existing == nil, nil
}

// GetByID returns one video, opportunistically refreshing a zero view
// count.
func (s *Service) GetByID(ctx context.Context, id uint) (*dbmysql.Video, error) {
	row, err := s.videos.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("video %d: %w", id, common.ErrNotFound)
	}
	if row.ViewCount == 0 {
		s.queueViewCountRefresh(row.ID, row.ExternalVideoID)
	}
	return row, nil
}

// Delete removes a video owned by userID. Reposts crediting it survive;
// they carry their own snapshots.
func (s *Service) Delete(ctx context.Context, userID, id uint) error {
	return s.videos.DeleteOwned(ctx, id, userID)
}

// sourceTags returns the tag names of the snapshot source, loading them
// when the source row came without its association populated.
func (s *Service) sourceTags(ctx context.Context, source *dbmysql.Video) ([]string, error) {
	if len(source.Tags) == 0 {
		loaded, err := s.videos.ByID(ctx, source.ID)
		if err != nil {
			return nil, err
		}
		if loaded != nil {
			source = loaded
		}
	}
	names := make([]string, 0, len(source.Tags))
	for _, t := range source.Tags {
		names = append(names, t.Name)
	}
	return names, nil
}

func (s *Service) queueShareNotification(ownerID, videoID uint, title string) {
	if s.notifier == nil {
		return
	}
	s.runner.Go("notify_followers", func(ctx context.Context) {
		if err := s.notifier.NotifyFollowersOfShare(ctx, ownerID, videoID, title); err != nil {
			s.log.Error().Err(err).Uint("owner_id", ownerID).Uint("video_id", videoID).Msg("follower fan-out failed")
		}
	})
}
