package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"mood-playlist/domain/dto"
	"mood-playlist/domain/model"
	"mood-playlist/domain/repository"
	"mood-playlist/infrastructure/logger"
)

// DefaultDailySaveLimit caps how many moods one user can save per day.
const DefaultDailySaveLimit = 10

// ISavedMoodUseCase defines the save and list operations for moods
type ISavedMoodUseCase interface {
	SaveMood(ctx context.Context, userID string, req *dto.SaveMoodRequest) (*model.SavedMood, error)
	ListSavedMoods(ctx context.Context, userID string, page, pageSize int) (*dto.SavedMoodListResponse, error)
}

// SavedMoodUseCase implements the saved mood operations
type SavedMoodUseCase struct {
	savedMoods  repository.ISavedMood
	searchCache repository.ISearchCache
	quota       repository.ISaveQuota
	dailyLimit  int64
}

// NewSavedMoodUseCase creates a new saved mood use case instance
func NewSavedMoodUseCase(
	savedMoods repository.ISavedMood,
	searchCache repository.ISearchCache,
	quota repository.ISaveQuota,
	dailyLimit int64,
) ISavedMoodUseCase {
	if dailyLimit <= 0 {
		dailyLimit = DefaultDailySaveLimit
	}
	return &SavedMoodUseCase{
		savedMoods:  savedMoods,
		searchCache: searchCache,
		quota:       quota,
		dailyLimit:  dailyLimit,
	}
}

// SaveMood persists a playlist snapshot after enforcing the daily quota.
// Videos that arrive without a cache id are backfilled through the
// secondary video-id lookup so the stored snapshot always references the
// cache rows that produced it.
func (u *SavedMoodUseCase) SaveMood(ctx context.Context, userID string, req *dto.SaveMoodRequest) (*model.SavedMood, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	if req == nil || req.Mood == "" {
		return nil, fmt.Errorf("mood is required")
	}

	count, err := u.quota.Count(ctx, userID)
	if err != nil {
		// Quota bookkeeping must not block saving; log and allow.
		logger.GetLogger().WithField("error", err).WithField("userID", userID).
			Warn("Save quota lookup failed, allowing save")
	} else if count >= u.dailyLimit {
		return nil, model.ErrDailySaveLimit
	}

	videos := u.backfillCacheIDs(ctx, req.Videos)
	raw, err := json.Marshal(videos)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize videos: %w", err)
	}

	saved := &model.SavedMood{
		UserID:      userID,
		Mood:        req.Mood,
		Description: req.Description,
		Videos:      string(raw),
	}
	if err := u.savedMoods.Save(ctx, saved); err != nil {
		return nil, fmt.Errorf("failed to save mood: %w", err)
	}

	if _, err := u.quota.Increment(ctx, userID); err != nil {
		logger.GetLogger().WithField("error", err).WithField("userID", userID).
			Warn("Save quota increment failed")
	}
	return saved, nil
}

// backfillCacheIDs attaches search cache ids to videos that were resolved in
// an earlier request and round-tripped through the client without one.
func (u *SavedMoodUseCase) backfillCacheIDs(ctx context.Context, videos []dto.VideoResult) []dto.VideoResult {
	out := make([]dto.VideoResult, len(videos))
	copy(out, videos)
	for i := range out {
		if out[i].SearchCacheID != "" || out[i].ID == "" {
			continue
		}
		record, err := u.searchCache.GetByVideoID(ctx, out[i].ID)
		if err != nil {
			logger.GetLogger().WithField("error", err).WithField("videoID", out[i].ID).
				Warn("Cache lookup by video id failed")
			continue
		}
		if record != nil {
			out[i].SearchCacheID = strconv.FormatInt(record.ID, 10)
		}
	}
	return out
}

// ListSavedMoods returns a page of the user's saved moods, newest first
func (u *SavedMoodUseCase) ListSavedMoods(ctx context.Context, userID string, page, pageSize int) (*dto.SavedMoodListResponse, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	offset := (page - 1) * pageSize
	items, total, err := u.savedMoods.ListByUser(ctx, userID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved moods: %w", err)
	}
	return &dto.SavedMoodListResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
