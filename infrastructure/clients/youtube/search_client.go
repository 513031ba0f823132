package youtube

import (
	"context"
	"fmt"
	"time"

	"mood-playlist/domain/model"
	"mood-playlist/domain/repository"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const (
	// YouTube video category 10 is Music
	musicCategoryID = "10"
	// One page of results per query; the orchestrator bounds calls, the
	// page size bounds scoring work per call.
	defaultPageSize = 5
)

// Config represents YouTube API configuration
type Config struct {
	APIKey       string `json:"api_key"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// SearchClient wraps the YouTube Data API search call. Results are
// restricted to embeddable music videos and kept in the relevance order the
// API returns.
type SearchClient struct {
	service  *youtube.Service
	pageSize int64
}

// NewSearchClient creates a new YouTube search client. API key mode is
// sufficient for search; OAuth mode is used when tokens are provided since
// it gets a higher quota ceiling.
func NewSearchClient(ctx context.Context, config *Config) (repository.IVideoSearch, error) {
	if config.AccessToken != "" && config.RefreshToken != "" {
		oauthConfig := &oauth2.Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			Scopes:       []string{youtube.YoutubeReadonlyScope},
			Endpoint:     google.Endpoint,
		}
		token := &oauth2.Token{
			AccessToken:  config.AccessToken,
			RefreshToken: config.RefreshToken,
			TokenType:    "Bearer",
			Expiry:       time.Now().Add(-1 * time.Minute), // Force refresh on first use
		}
		service, err := youtube.NewService(ctx, option.WithHTTPClient(oauthConfig.Client(ctx, token)))
		if err != nil {
			return nil, fmt.Errorf("failed to create YouTube service: %w", err)
		}
		return &SearchClient{service: service, pageSize: defaultPageSize}, nil
	}

	if config.APIKey == "" {
		return nil, fmt.Errorf("youtube search requires an API key or OAuth tokens")
	}
	service, err := youtube.NewService(ctx, option.WithAPIKey(config.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service with API key: %w", err)
	}
	return &SearchClient{service: service, pageSize: defaultPageSize}, nil
}

// Search runs one search.list call for the query
func (c *SearchClient) Search(ctx context.Context, query string) ([]model.VideoSearchResult, error) {
	call := c.service.Search.List([]string{"id", "snippet"}).
		Context(ctx).
		Q(query).
		Type("video").
		VideoCategoryId(musicCategoryID).
		VideoEmbeddable("true").
		MaxResults(c.pageSize)

	response, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to search videos: %w", err)
	}

	results := make([]model.VideoSearchResult, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}
		result := model.VideoSearchResult{
			VideoID:      item.Id.VideoId,
			Title:        item.Snippet.Title,
			ChannelTitle: item.Snippet.ChannelTitle,
		}
		if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.High != nil {
			result.Thumbnail = item.Snippet.Thumbnails.High.Url
		}
		results = append(results, result)
	}
	return results, nil
}
