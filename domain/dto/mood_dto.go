package dto

// Res is the generic response envelope used by middleware and handlers
type Res struct {
	ResponseCode    string      `json:"responseCode"`
	ResponseMessage string      `json:"responseMessage"`
	Data            interface{} `json:"data,omitempty"`
}

// MoodImageRequest carries a webcam capture as a base64 data URL
type MoodImageRequest struct {
	Image string `json:"image" binding:"required"`
}

// MoodTextRequest carries typed or voice-transcribed text describing a mood
type MoodTextRequest struct {
	Text string `json:"text" binding:"required"`
}

// VideoResult is the externally visible shape of one resolved video.
// SearchCacheID is the cache row id serialized as a string: the column is a
// BIGSERIAL and may exceed the safe integer range of JSON consumers.
type VideoResult struct {
	ID            string `json:"id,omitempty"`
	Title         string `json:"title,omitempty"`
	Channel       string `json:"channel,omitempty"`
	Thumbnail     string `json:"thumbnail,omitempty"`
	SearchCacheID string `json:"searchCacheId,omitempty"`
}

// MoodPlaylistResponse is the payload returned by the analyze endpoints
type MoodPlaylistResponse struct {
	Mood        string        `json:"mood"`
	Description string        `json:"description"`
	VoicePrompt string        `json:"voicePrompt,omitempty"`
	Videos      []VideoResult `json:"videos"`
}

// SaveMoodRequest persists a playlist the user wants to keep
type SaveMoodRequest struct {
	Mood        string        `json:"mood" binding:"required"`
	Description string        `json:"description"`
	Videos      []VideoResult `json:"videos"`
}

// SavedMoodListResponse is a page of saved moods
type SavedMoodListResponse struct {
	Items    interface{} `json:"items"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
}
