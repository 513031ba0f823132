package model

// VideoSearchResult is one candidate video returned by the YouTube search
// call. DurationSeconds stays zero unless a caller enriched the result from
// videos.list; search.list itself does not return durations.
type VideoSearchResult struct {
	VideoID         string `json:"video_id"`
	Title           string `json:"title"`
	ChannelTitle    string `json:"channel_title"`
	Thumbnail       string `json:"thumbnail"`
	DurationSeconds int64  `json:"duration_seconds,omitempty"`
}

// ResolvedVideo is the accepted match for one candidate track together with
// the id of the cache row that recorded it. SearchCacheID is zero when the
// result could not be cached.
type ResolvedVideo struct {
	VideoID       string `json:"video_id"`
	Title         string `json:"title"`
	Channel       string `json:"channel"`
	Thumbnail     string `json:"thumbnail"`
	SearchCacheID int64  `json:"search_cache_id,omitempty"`
}
