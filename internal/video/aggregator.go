package video

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"pawshare/internal/common"
	"pawshare/internal/dbmysql"
	"pawshare/internal/metadata"
)

const defaultSearchLimit = 20

// VideoCard is one rendered feed or search entry. For reposts the
// attributed user is the credited original sharer; the reposting
// relationship only decides inclusion, never attribution.
type VideoCard struct {
	ID               uint
	ExternalVideoID  string
	Title            string
	Description      string
	SharerUserID     uint
	AttributedUserID uint
	Repost           bool
	External         bool
	ViewCount        uint64
	Tags             []string
	CreatedAt        time.Time
}

// SourceCounts reports where a blended result set came from.
type SourceCounts struct {
	Local    int
	External int
}

// SearchOutput is the blended local+external search result.
type SearchOutput struct {
	Videos       []VideoCard
	SourceCounts SourceCounts
}

func cardFromRow(v dbmysql.Video) VideoCard {
	attributed := v.SharerUserID
	if v.OriginalSharerUserID != nil {
		attributed = *v.OriginalSharerUserID
	}
	tags := make([]string, 0, len(v.Tags))
	for _, t := range v.Tags {
		tags = append(tags, t.Name)
	}
	return VideoCard{
		ID:               v.ID,
		ExternalVideoID:  v.ExternalVideoID,
		Title:            v.Title,
		Description:      v.Description,
		SharerUserID:     v.SharerUserID,
		AttributedUserID: attributed,
		Repost:           v.OriginalSharerUserID != nil,
		ViewCount:        v.ViewCount,
		Tags:             tags,
		CreatedAt:        v.CreatedAt,
	}
}

func cardFromExternal(r metadata.SearchResult) VideoCard {
	return VideoCard{
		ExternalVideoID: r.ExternalVideoID,
		Title:           r.Title,
		Description:     r.Description,
		External:        true,
	}
}

// Feed assembles the follow-scoped home feed, newest first, capped by
// config. The feed is computed from the follow graph on every read, so
// unfollowed or deleted users drop out with no invalidation step.
func (s *Service) Feed(ctx context.Context, userID uint) ([]VideoCard, error) {
	if userID == 0 {
		return nil, fmt.Errorf("missing user id: %w", common.ErrValidation)
	}
	followingIDs, err := s.follows.FollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(followingIDs) == 0 {
		return []VideoCard{}, nil
	}

	rows, err := s.videos.BySharers(ctx, followingIDs, s.cfg.Feed.Limit)
	if err != nil {
		return nil, err
	}
	s.refreshStale(rows)

	cards := make([]VideoCard, 0, len(rows))
	for _, v := range rows {
		cards = append(cards, cardFromRow(v))
	}
	return cards, nil
}

// Search merges two local queries (tag-name match has relevance priority
// over title/description match), deduplicates by row id, and tops up
// from the external provider only when local results fall short of
// limit. External trouble of any kind degrades to local-only results.
func (s *Service) Search(ctx context.Context, userID uint, query string, page, limit int, sortBy string) (*SearchOutput, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("empty search query: %w", common.ErrValidation)
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if page < 1 {
		page = 1
	}
	fetchLimit := page * limit

	tagRows, err := s.videos.SearchByTag(ctx, query, fetchLimit)
	if err != nil {
		return nil, err
	}
	textRows, err := s.videos.SearchByText(ctx, query, fetchLimit)
	if err != nil {
		return nil, err
	}

	merged := make([]dbmysql.Video, 0, len(tagRows)+len(textRows))
	seen := make(map[uint]bool, len(tagRows))
	for _, v := range tagRows {
		merged = append(merged, v)
		seen[v.ID] = true
	}
	for _, v := range textRows {
		if !seen[v.ID] {
			merged = append(merged, v)
			seen[v.ID] = true
		}
	}

	switch common.ParseSortMode(sortBy) {
	case common.SortRelevance:
		// tag-priority merge order already is relevance
	case common.SortRecency:
		sort.SliceStable(merged, func(i, j int) bool {
			return merged[i].CreatedAt.After(merged[j].CreatedAt)
		})
	default:
		sort.SliceStable(merged, func(i, j int) bool {
			return merged[i].ViewCount > merged[j].ViewCount
		})
	}

	offset := (page - 1) * limit
	if offset > len(merged) {
		offset = len(merged)
	}
	local := merged[offset:]
	if len(local) > limit {
		local = local[:limit]
	}
	s.refreshStale(local)

	out := &SearchOutput{Videos: make([]VideoCard, 0, limit)}
	localExternalIDs := make(map[string]bool, len(local))
	for _, v := range local {
		out.Videos = append(out.Videos, cardFromRow(v))
		localExternalIDs[v.ExternalVideoID] = true
	}
	out.SourceCounts.Local = len(local)

	if len(local) < limit {
		for _, r := range s.externalResults(ctx, query, limit-len(local)) {
			if localExternalIDs[r.ExternalVideoID] {
				continue
			}
			out.Videos = append(out.Videos, cardFromExternal(r))
			out.SourceCounts.External++
			if len(out.Videos) == limit {
				break
			}
		}
	}

	s.queueSearchHistory(userID, query, len(out.Videos))
	return out, nil
}

// externalResults serves an external top-up from the cache when it can,
// and otherwise asks the provider for at most the configured ceiling.
// Failures, quota errors included, return nothing.
func (s *Service) externalResults(ctx context.Context, query string, want int) []metadata.SearchResult {
	if cached, ok := s.cache.Get(query); ok {
		return cached
	}
	if want > s.cfg.Metadata.SearchCeiling {
		want = s.cfg.Metadata.SearchCeiling
	}
	results, err := s.provider.Search(ctx, query, want)
	if err != nil {
		s.log.Warn().Err(err).Str("query", query).Msg("external search degraded to local-only")
		return nil
	}
	s.cache.Set(query, results)
	return results
}

// Recent is the browse surface: ordered by view count then recency,
// optionally filtered by a tag category expanded through the synonym
// table, deduplicated by external video id keeping the first occurrence.
func (s *Service) Recent(ctx context.Context, limit, offset int, category string) ([]VideoCard, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if offset < 0 {
		offset = 0
	}

	var tagNames []string
	if category != "" {
		names, ok := SynonymsFor(category)
		if !ok {
			return nil, fmt.Errorf("unknown tag category %q: %w", category, common.ErrValidation)
		}
		tagNames = names
	}

	// Overfetch so offset and limit apply after external-id dedup,
	// doubling the fetch until the window is filled or the table is
	// exhausted.
	var deduped []dbmysql.Video
	for fetch := (offset + limit) * 2; ; fetch *= 2 {
		rows, err := s.videos.Recent(ctx, tagNames, fetch, 0)
		if err != nil {
			return nil, err
		}

		deduped = deduped[:0]
		seenExternal := make(map[string]bool, len(rows))
		for _, v := range rows {
			if seenExternal[v.ExternalVideoID] {
				continue
			}
			seenExternal[v.ExternalVideoID] = true
			deduped = append(deduped, v)
		}
		if len(deduped) >= offset+limit || len(rows) < fetch {
			break
		}
	}

	if offset > len(deduped) {
		offset = len(deduped)
	}
	window := deduped[offset:]
	if len(window) > limit {
		window = window[:limit]
	}
	s.refreshStale(window)

	cards := make([]VideoCard, 0, len(window))
	for _, v := range window {
		cards = append(cards, cardFromRow(v))
	}
	return cards, nil
}

func (s *Service) queueSearchHistory(userID uint, query string, resultCount int) {
	s.runner.Go("record_search", func(ctx context.Context) {
		entry := &dbmysql.SearchHistory{UserID: userID, Query: query, ResultCount: resultCount}
		if err := s.history.Record(ctx, entry); err != nil {
			s.log.Debug().Err(err).Str("query", query).Msg("search history write failed")
		}
	})
}
