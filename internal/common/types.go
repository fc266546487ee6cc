package common

type NotificationType string

const (
	NewShareType NotificationType = "new_share"
	RepostType   NotificationType = "repost"
	LikeType     NotificationType = "like"
	CommentType  NotificationType = "comment"
	FollowType   NotificationType = "follow"
	SystemType   NotificationType = "system"
)

// SortMode selects result ordering for search and browse queries.
type SortMode string

const (
	SortRelevance SortMode = "relevance"
	SortRecency   SortMode = "recency"
	SortViews     SortMode = "views"
)

// ParseSortMode maps a client-supplied sort string to a supported mode.
// Unknown values (including "engagement") fall back to view-count ordering.
func ParseSortMode(s string) SortMode {
	switch SortMode(s) {
	case SortRelevance, SortRecency, SortViews:
		return SortMode(s)
	default:
		return SortViews
	}
}
