package usecase

import (
	"context"
	"strconv"

	"mood-playlist/domain/dto"
	"mood-playlist/domain/model"
	"mood-playlist/domain/repository"
	"mood-playlist/infrastructure/logger"
)

// DefaultTargetCount bounds how many videos one playlist resolves. Together
// with the candidate list length it caps the number of external search
// calls per request.
const DefaultTargetCount = 5

// IMoodUseCase defines the mood playlist operations
type IMoodUseCase interface {
	// GetMoodPlaylistFromImage analyzes a webcam capture and resolves the
	// recommended tracks to playable videos.
	GetMoodPlaylistFromImage(ctx context.Context, image []byte) (*dto.MoodPlaylistResponse, error)
	// GetMoodPlaylistFromText does the same for typed or transcribed text.
	GetMoodPlaylistFromText(ctx context.Context, text string) (*dto.MoodPlaylistResponse, error)
	// ResolveVideos resolves candidate tracks in priority order through the
	// search cache, stopping once targetCount videos are accepted.
	ResolveVideos(ctx context.Context, candidates []model.CandidateTrack, targetCount int) ([]model.ResolvedVideo, error)
}

// MoodUseCase implements the mood playlist operations
type MoodUseCase struct {
	analyzer    repository.IMoodAnalyzer
	videoSearch repository.IVideoSearch
	searchCache repository.ISearchCache
	targetCount int
}

// NewMoodUseCase creates a new mood use case instance
func NewMoodUseCase(
	analyzer repository.IMoodAnalyzer,
	videoSearch repository.IVideoSearch,
	searchCache repository.ISearchCache,
) IMoodUseCase {
	return &MoodUseCase{
		analyzer:    analyzer,
		videoSearch: videoSearch,
		searchCache: searchCache,
		targetCount: DefaultTargetCount,
	}
}

// GetMoodPlaylistFromImage analyzes a webcam capture and builds a playlist
func (u *MoodUseCase) GetMoodPlaylistFromImage(ctx context.Context, image []byte) (*dto.MoodPlaylistResponse, error) {
	analysis, err := u.analyzer.AnalyzeImage(ctx, image)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Image mood analysis failed")
		return nil, model.ErrAnalysisFailed
	}
	return u.buildPlaylist(ctx, analysis, "")
}

// GetMoodPlaylistFromText analyzes free text and builds a playlist
func (u *MoodUseCase) GetMoodPlaylistFromText(ctx context.Context, text string) (*dto.MoodPlaylistResponse, error) {
	analysis, err := u.analyzer.AnalyzeText(ctx, text)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Text mood analysis failed")
		return nil, model.ErrAnalysisFailed
	}
	return u.buildPlaylist(ctx, analysis, text)
}

func (u *MoodUseCase) buildPlaylist(ctx context.Context, analysis *model.MoodAnalysis, voicePrompt string) (*dto.MoodPlaylistResponse, error) {
	batch, err := u.ResolveVideos(ctx, analysis.SearchQuery, u.targetCount)
	if err != nil {
		return nil, err
	}
	return &dto.MoodPlaylistResponse{
		Mood:        analysis.Mood,
		Description: analysis.Description,
		VoicePrompt: voicePrompt,
		Videos:      AssembleVideoResults(batch),
	}, nil
}

// ResolveVideos walks the candidates in priority order. Each candidate is
// resolved fully (cache check, possible search, possible cache write) before
// the next is started. Per-candidate search and store failures only skip
// that candidate; an empty batch is a valid outcome, not an error.
func (u *MoodUseCase) ResolveVideos(ctx context.Context, candidates []model.CandidateTrack, targetCount int) ([]model.ResolvedVideo, error) {
	if targetCount <= 0 {
		targetCount = u.targetCount
	}
	accepted := make([]model.ResolvedVideo, 0, targetCount)
	for _, track := range candidates {
		if len(accepted) >= targetCount {
			break
		}
		// Cancellation stops issuing further search calls; rows already
		// written stay, they are idempotent.
		if err := ctx.Err(); err != nil {
			return accepted, err
		}
		if track.Title == "" || track.Artist == "" {
			logger.GetLogger().WithField("track", track).Warn("Skipping candidate with missing title or artist")
			continue
		}
		key := track.SearchKey()
		cached, err := u.searchCache.Get(ctx, key)
		if err != nil {
			// Treat a failed lookup as a miss so one bad read does not cost
			// the user a track.
			logger.GetLogger().WithField("error", err).WithField("searchQuery", key).
				Warn("Search cache lookup failed, falling back to live search")
			cached = nil
		}
		if cached != nil {
			if cached.YouTubeID == nil {
				// Confirmed negative: known to have no acceptable match.
				continue
			}
			accepted = append(accepted, resolvedFromCache(cached))
			continue
		}
		if video, ok := u.resolveLive(ctx, key, track); ok {
			accepted = append(accepted, video)
		}
	}
	return accepted, nil
}

// resolveLive runs one search call and accepts the first result clearing the
// score threshold. Results keep the relevance order of the API: the scorer
// validates, it does not re-rank, so later results are not even scored once
// one passes. An exhausted search writes no cache row, leaving the track
// free to resolve once a better upload appears.
func (u *MoodUseCase) resolveLive(ctx context.Context, key string, track model.CandidateTrack) (model.ResolvedVideo, bool) {
	results, err := u.videoSearch.Search(ctx, key)
	if err != nil {
		logger.GetLogger().WithField("error", err).WithField("searchQuery", key).
			Warn("Video search failed, skipping candidate")
		return model.ResolvedVideo{}, false
	}
	for _, r := range results {
		if ScoreVideo(r, track) < MinScoreThreshold {
			continue
		}
		video := model.ResolvedVideo{
			VideoID:   r.VideoID,
			Title:     r.Title,
			Channel:   r.ChannelTitle,
			Thumbnail: r.Thumbnail,
		}
		record, err := u.searchCache.Upsert(ctx, key, model.SearchCacheFields{
			YouTubeID: &r.VideoID,
			Title:     &r.Title,
			Channel:   &r.ChannelTitle,
			Thumbnail: &r.Thumbnail,
		})
		if err != nil {
			// The match is still good; it just will not carry a cache id.
			logger.GetLogger().WithField("error", err).WithField("searchQuery", key).
				Warn("Search cache upsert failed, returning uncached result")
			return video, true
		}
		video.SearchCacheID = record.ID
		return video, true
	}
	return model.ResolvedVideo{}, false
}

func resolvedFromCache(cached *model.SearchCache) model.ResolvedVideo {
	video := model.ResolvedVideo{SearchCacheID: cached.ID}
	if cached.YouTubeID != nil {
		video.VideoID = *cached.YouTubeID
	}
	if cached.Title != nil {
		video.Title = *cached.Title
	}
	if cached.Channel != nil {
		video.Channel = *cached.Channel
	}
	if cached.Thumbnail != nil {
		video.Thumbnail = *cached.Thumbnail
	}
	return video
}

// AssembleVideoResults maps resolved videos into the transport shape. The
// cache id travels as a string so bigint ids survive JSON consumers.
func AssembleVideoResults(batch []model.ResolvedVideo) []dto.VideoResult {
	out := make([]dto.VideoResult, 0, len(batch))
	for _, v := range batch {
		result := dto.VideoResult{
			ID:        v.VideoID,
			Title:     v.Title,
			Channel:   v.Channel,
			Thumbnail: v.Thumbnail,
		}
		if v.SearchCacheID != 0 {
			result.SearchCacheID = strconv.FormatInt(v.SearchCacheID, 10)
		}
		out = append(out, result)
	}
	return out
}
