package model

import "time"

// SearchCache is one row of the youtube_search_cache table: the persisted
// outcome of resolving a canonical search key. A row with a NULL YouTubeID
// is a confirmed negative; such keys are not re-searched.
type SearchCache struct {
	ID          int64     `json:"id"`
	SearchQuery string    `json:"search_query"`
	YouTubeID   *string   `json:"youtube_id,omitempty"`
	Title       *string   `json:"title,omitempty"`
	Channel     *string   `json:"channel,omitempty"`
	Thumbnail   *string   `json:"thumbnail,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SearchCacheFields are the non-key columns written by an upsert.
type SearchCacheFields struct {
	YouTubeID *string
	Title     *string
	Channel   *string
	Thumbnail *string
}
