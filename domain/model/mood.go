package model

import "fmt"

// CandidateTrack is a (title, artist) pair proposed by the mood analysis
// step. The order of a candidate list is its search priority; earlier
// tracks are resolved first.
type CandidateTrack struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

// SearchKey returns the canonical cache key for the track. Every caller that
// touches the search cache (resolve path and save/backfill path) must derive
// keys through this function; a second normalization rule would silently
// split the cache into duplicate rows.
func (t CandidateTrack) SearchKey() string {
	return fmt.Sprintf("[%s] [%s] topic", t.Title, t.Artist)
}

// MoodAnalysis is the structured outcome of a mood analysis call.
type MoodAnalysis struct {
	Mood        string           `json:"mood"`
	Description string           `json:"description"`
	SearchQuery []CandidateTrack `json:"searchQuery"`
}
