package repository

import (
	"context"

	"mood-playlist/domain/model"
)

// ISavedMood persists mood snapshots per user
type ISavedMood interface {
	Save(ctx context.Context, mood *model.SavedMood) error
	// ListByUser returns a page of saved moods ordered newest first plus the
	// total count for pagination.
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]model.SavedMood, int64, error)
}

// ISaveQuota tracks how many moods a user has saved today
type ISaveQuota interface {
	// Increment bumps today's counter and returns the new value.
	Increment(ctx context.Context, userID string) (int64, error)
	// Count returns today's counter without modifying it.
	Count(ctx context.Context, userID string) (int64, error)
}
