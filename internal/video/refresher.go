package video

import (
	"context"

	"pawshare/internal/dbmysql"
)

// queueViewCountRefresh asks the provider for the current view count and
// overwrites the stored value. Fire-and-forget and idempotent: redundant
// or racing refreshes all write an observed value, last writer wins.
// Every failure is swallowed.
func (s *Service) queueViewCountRefresh(videoID uint, externalID string) {
	s.runner.Go("refresh_view_count", func(ctx context.Context) {
		stats, err := s.provider.GetStats(ctx, externalID)
		if err != nil {
			s.log.Debug().Err(err).Str("external_id", externalID).Msg("view count refresh skipped")
			return
		}
		if err := s.videos.UpdateViewCount(ctx, videoID, stats.ViewCount); err != nil {
			s.log.Error().Err(err).Uint("video_id", videoID).Msg("view count write failed")
		}
	})
}

// refreshStale queues a refresh for every zero-view row in a result set.
func (s *Service) refreshStale(videos []dbmysql.Video) {
	for _, v := range videos {
		if v.ViewCount == 0 {
			s.queueViewCountRefresh(v.ID, v.ExternalVideoID)
		}
	}
}
