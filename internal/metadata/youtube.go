package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"pawshare/internal/config"
)

const (
	ytDataAPIBase = "https://www.googleapis.com/youtube/v3"
	ytOEmbedBase  = "https://www.youtube.com/oembed"
	ytWatchBase   = "https://www.youtube.com/watch?v="
)

// YouTubeClient implements Provider against the YouTube oEmbed endpoint
// (metadata, no key needed) and the Data API v3 (stats and search,
// API-key gated and quota-limited).
type YouTubeClient struct {
	apiKey     string
	apiBase    string
	oembedBase string
	http       *http.Client
	limiter    *rate.Limiter
	log        zerolog.Logger
}

// NewYouTubeClient creates a provider client. The rate limiter spaces out
// quota-limited Data API calls; oEmbed lookups are not limited.
func NewYouTubeClient(cfg *config.Config, logger zerolog.Logger) *YouTubeClient {
	return &YouTubeClient{
		apiKey:     cfg.Metadata.APIKey,
		apiBase:    ytDataAPIBase,
		oembedBase: ytOEmbedBase,
		http:       &http.Client{Timeout: cfg.Metadata.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.Metadata.RateLimit), 1),
		log:        logger.With().Str("component", "metadata").Logger(),
	}
}

type oembedResp struct {
	Title        string `json:"title"`
	AuthorName   string `json:"author_name"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// GetMetadata fetches title and thumbnail via oEmbed. The oEmbed payload
// carries no description, so when an API key is configured the description
// is filled in best-effort from the quota-limited snippet endpoint; a
// snippet failure leaves it empty rather than failing the whole lookup.
func (c *YouTubeClient) GetMetadata(ctx context.Context, externalID string) (*VideoMetadata, error) {
	params := url.Values{}
	params.Set("url", ytWatchBase+externalID)
	params.Set("format", "json")

	var out oembedResp
	if err := c.getJSON(ctx, c.oembedBase+"?"+params.Encode(), &out); err != nil {
		return nil, err
	}

	meta := &VideoMetadata{
		Title:        out.Title,
		ThumbnailURL: out.ThumbnailURL,
	}
	if c.apiKey != "" {
		desc, err := c.fetchDescription(ctx, externalID)
		if err != nil {
			c.log.Debug().Err(err).Str("external_id", externalID).Msg("description lookup failed")
		} else {
			meta.Description = desc
		}
	}
	return meta, nil
}

type ytSnippetResp struct {
	Items []struct {
		Snippet struct {
			Description string `json:"description"`
		} `json:"snippet"`
	} `json:"items"`
}

func (c *YouTubeClient) fetchDescription(ctx context.Context, externalID string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("id", externalID)
	params.Set("key", c.apiKey)

	var out ytSnippetResp
	if err := c.getJSON(ctx, c.apiBase+"/videos?"+params.Encode(), &out); err != nil {
		return "", err
	}
	if len(out.Items) == 0 {
		return "", fmt.Errorf("video %s: %w", externalID, ErrUnavailable)
	}
	return out.Items[0].Snippet.Description, nil
}

type ytVideosResp struct {
	Items []struct {
		Statistics struct {
			ViewCount string `json:"viewCount"`
		} `json:"statistics"`
	} `json:"items"`
}

// GetStats fetches the current view count from the quota-limited
// statistics endpoint.
func (c *YouTubeClient) GetStats(ctx context.Context, externalID string) (*VideoStats, error) {
	if c.apiKey == "" {
		return nil, ErrUnavailable
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	params := url.Values{}
	params.Set("part", "statistics")
	params.Set("id", externalID)
	params.Set("key", c.apiKey)

	var out ytVideosResp
	if err := c.getJSON(ctx, c.apiBase+"/videos?"+params.Encode(), &out); err != nil {
		return nil, err
	}
	if len(out.Items) == 0 {
		return nil, fmt.Errorf("video %s: %w", externalID, ErrUnavailable)
	}
	count, err := strconv.ParseUint(out.Items[0].Statistics.ViewCount, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad view count for %s: %w", externalID, err)
	}
	return &VideoStats{ViewCount: count}, nil
}

type ytSearchResp struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			ChannelTitle string `json:"channelTitle"`
			Thumbnails   struct {
				Medium struct {
					URL string `json:"url"`
				} `json:"medium"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

// Search queries the quota-limited search endpoint.
func (c *YouTubeClient) Search(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	if c.apiKey == "" {
		return nil, ErrUnavailable
	}
	if limit <= 0 {
		return nil, nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query)
	params.Set("type", "video")
	params.Set("maxResults", strconv.Itoa(limit))
	params.Set("key", c.apiKey)

	var out ytSearchResp
	if err := c.getJSON(ctx, c.apiBase+"/search?"+params.Encode(), &out); err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(out.Items))
	for _, item := range out.Items {
		if item.ID.VideoID == "" {
			continue
		}
		results = append(results, SearchResult{
			ExternalVideoID: item.ID.VideoID,
			Title:           item.Snippet.Title,
			Description:     item.Snippet.Description,
			ThumbnailURL:    item.Snippet.Thumbnails.Medium.URL,
			ChannelTitle:    item.Snippet.ChannelTitle,
		})
	}
	return results, nil
}

func (c *YouTubeClient) getJSON(ctx context.Context, apiURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusForbidden:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.log.Warn().Int("status", resp.StatusCode).Bytes("body", body).Msg("quota-limited call rejected")
		return ErrQuotaExceeded
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
