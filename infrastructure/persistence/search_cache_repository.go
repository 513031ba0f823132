package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"mood-playlist/domain/model"
	"mood-playlist/infrastructure/logger"
)

// EnsureSearchCacheSchema creates the video search cache table if not exists.
// The unique constraint on search_query is what makes Upsert safe under
// concurrent writers for the same key.
func EnsureSearchCacheSchema(db *sql.DB) error {
	ddl := `CREATE TABLE IF NOT EXISTS youtube_search_cache (
        id BIGSERIAL PRIMARY KEY,
        search_query TEXT NOT NULL UNIQUE,
        youtube_id TEXT,
        title TEXT,
        channel TEXT,
        thumbnail TEXT,
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`
	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("create youtube_search_cache table: %w", err)
	}

	// Supports the save path's reverse lookup by video id
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_youtube_search_cache_youtube_id ON youtube_search_cache(youtube_id)`); err != nil {
		logger.GetLogger().WithField("error", err).Warn("failed creating idx_youtube_search_cache_youtube_id")
	}
	return nil
}

const searchCacheColumns = `id, search_query, youtube_id, title, channel, thumbnail, created_at, updated_at`

// SearchCacheRepository implements the search cache gateway over PostgreSQL
type SearchCacheRepository struct{ db *sql.DB }

func NewSearchCacheRepository(db *sql.DB) *SearchCacheRepository {
	return &SearchCacheRepository{db: db}
}

// Get returns the cached record for a canonical search key, or (nil, nil)
// when no row exists.
func (r *SearchCacheRepository) Get(ctx context.Context, searchQuery string) (*model.SearchCache, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+searchCacheColumns+` FROM youtube_search_cache WHERE search_query=$1`,
		searchQuery,
	)
	record, err := scanSearchCache(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return record, err
}

// Upsert creates or overwrites the row for searchQuery in one statement.
// ON CONFLICT on the unique key guarantees a single row per key even under
// concurrent writers; RETURNING hands back the stored record including its
// id, so no second round trip is needed.
func (r *SearchCacheRepository) Upsert(ctx context.Context, searchQuery string, fields model.SearchCacheFields) (*model.SearchCache, error) {
	q := `INSERT INTO youtube_search_cache (search_query, youtube_id, title, channel, thumbnail)
          VALUES ($1,$2,$3,$4,$5)
          ON CONFLICT (search_query) DO UPDATE SET
            youtube_id=EXCLUDED.youtube_id,
            title=EXCLUDED.title,
            channel=EXCLUDED.channel,
            thumbnail=EXCLUDED.thumbnail,
            updated_at=NOW()
          RETURNING ` + searchCacheColumns
	row := r.db.QueryRowContext(ctx, q,
		searchQuery,
		nullable(fields.YouTubeID),
		nullable(fields.Title),
		nullable(fields.Channel),
		nullable(fields.Thumbnail),
	)
	return scanSearchCache(row)
}

// GetByVideoID returns the most recently updated cache row for a video id,
// or (nil, nil) when none exists.
func (r *SearchCacheRepository) GetByVideoID(ctx context.Context, videoID string) (*model.SearchCache, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+searchCacheColumns+` FROM youtube_search_cache WHERE youtube_id=$1 ORDER BY updated_at DESC LIMIT 1`,
		videoID,
	)
	record, err := scanSearchCache(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return record, err
}

func scanSearchCache(row *sql.Row) (*model.SearchCache, error) {
	record := &model.SearchCache{}
	var youtubeID, title, channel, thumbnail sql.NullString
	err := row.Scan(
		&record.ID,
		&record.SearchQuery,
		&youtubeID,
		&title,
		&channel,
		&thumbnail,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	record.YouTubeID = stringPtr(youtubeID)
	record.Title = stringPtr(title)
	record.Channel = stringPtr(channel)
	record.Thumbnail = stringPtr(thumbnail)
	return record, nil
}

func nullable(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}
