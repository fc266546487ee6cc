package metadata

import (
	"context"
	"errors"
	"regexp"
)

// Provider supplies metadata about externally hosted videos.
//
// GetMetadata is quota-free; GetStats and Search consume API quota and
// can fail with ErrQuotaExceeded. Callers treat every Provider failure
// as a degraded-external condition, never a user-facing error.
type Provider interface {
	GetMetadata(ctx context.Context, externalID string) (*VideoMetadata, error)
	GetStats(ctx context.Context, externalID string) (*VideoStats, error)
	Search(ctx context.Context, query string, limit int) ([]SearchResult, error)
}

// VideoMetadata is the quota-free descriptive subset.
type VideoMetadata struct {
	Title        string
	Description  string
	ThumbnailURL string
}

// VideoStats is the quota-limited statistics subset.
type VideoStats struct {
	ViewCount uint64
}

// SearchResult is one externally found video.
type SearchResult struct {
	ExternalVideoID string
	Title           string
	Description     string
	ThumbnailURL    string
	ChannelTitle    string
}

var (
	// ErrQuotaExceeded means the provider rejected a quota-limited call.
	ErrQuotaExceeded = errors.New("metadata provider quota exceeded")

	// ErrUnavailable means the provider could not serve the request.
	ErrUnavailable = errors.New("metadata provider unavailable")
)

var videoIDRE = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// IsValidVideoID reports whether s is a well-formed 11-char video id.
func IsValidVideoID(s string) bool {
	return videoIDRE.MatchString(s)
}
