package repository

import (
	"context"

	"mood-playlist/domain/model"
)

// ISearchCache is the gateway to the persistent video search cache.
// Get and GetByVideoID return (nil, nil) when no row exists for the key.
type ISearchCache interface {
	// Get returns the cached record for a canonical search key.
	Get(ctx context.Context, searchQuery string) (*model.SearchCache, error)
	// Upsert creates the row for searchQuery or overwrites its non-key
	// fields in place, and returns the stored record. The write must be
	// atomic under the unique search_query constraint so concurrent writers
	// for the same key never produce two rows.
	Upsert(ctx context.Context, searchQuery string, fields model.SearchCacheFields) (*model.SearchCache, error)
	// GetByVideoID is the secondary lookup used by the save path to attach a
	// cache id to a video resolved during an earlier request.
	GetByVideoID(ctx context.Context, videoID string) (*model.SearchCache, error)
}
