package usecase

import (
	"regexp"
	"strings"

	"mood-playlist/domain/model"
)

// MinScoreThreshold is the minimum score a search result needs before it is
// accepted as the match for a candidate track.
const MinScoreThreshold = 50

const (
	scoreTopicChannel  = 50
	scoreOfficialTitle = 30
	scoreTitleMatch    = 20
	scoreArtistMatch   = 20
	scoreDurationFit   = 20
	penaltyDerivative  = 40

	durationFitMinSeconds = 120
	durationFitMaxSeconds = 360
)

var (
	officialPattern   = regexp.MustCompile(`(?i)official`)
	derivativePattern = regexp.MustCompile(`(?i)cover|live|remix|shorts`)
)

// ScoreVideo rates how well a search result matches the target track. The
// clauses are additive and independent. A channel name containing "Topic"
// is the strongest signal since YouTube auto-generates those channels for
// official audio uploads.
func ScoreVideo(result model.VideoSearchResult, track model.CandidateTrack) int {
	score := 0
	if strings.Contains(result.ChannelTitle, "Topic") {
		score += scoreTopicChannel
	}
	if officialPattern.MatchString(result.Title) {
		score += scoreOfficialTitle
	}
	if strings.Contains(result.Title, track.Title) {
		score += scoreTitleMatch
	}
	if strings.Contains(result.Title, track.Artist) {
		score += scoreArtistMatch
	}
	// search.list carries no duration; the clause only fires when a caller
	// enriched the result from videos.list.
	if result.DurationSeconds >= durationFitMinSeconds && result.DurationSeconds <= durationFitMaxSeconds {
		score += scoreDurationFit
	}
	if derivativePattern.MatchString(result.Title) {
		score -= penaltyDerivative
	}
	return score
}
