package persistence

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mood-playlist/domain/model"
)

func newSearchCacheMock(t *testing.T) (*SearchCacheRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return NewSearchCacheRepository(db), mock, func() { db.Close() }
}

func searchCacheRows(id int64, key string, youtubeID interface{}) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "search_query", "youtube_id", "title", "channel", "thumbnail", "created_at", "updated_at",
	}).AddRow(id, key, youtubeID, "Aimer - Lonely", "Aimer - Topic", "https://img.example/t.jpg", now, now)
}

func TestSearchCacheRepositoryGet(t *testing.T) {
	repo, mock, closeFn := newSearchCacheMock(t)
	defer closeFn()

	key := "[Lonely] [Aimer] topic"
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, search_query, youtube_id, title, channel, thumbnail, created_at, updated_at FROM youtube_search_cache WHERE search_query=$1`)).
		WithArgs(key).
		WillReturnRows(searchCacheRows(7, key, "vid-7"))

	record, err := repo.Get(context.Background(), key)

	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, int64(7), record.ID)
	require.NotNil(t, record.YouTubeID)
	assert.Equal(t, "vid-7", *record.YouTubeID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchCacheRepositoryGetMiss(t *testing.T) {
	repo, mock, closeFn := newSearchCacheMock(t)
	defer closeFn()

	key := "[Unknown] [Nobody] topic"
	mock.ExpectQuery(regexp.QuoteMeta(`FROM youtube_search_cache WHERE search_query=$1`)).
		WithArgs(key).
		WillReturnError(sql.ErrNoRows)

	record, err := repo.Get(context.Background(), key)

	require.NoError(t, err)
	assert.Nil(t, record)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchCacheRepositoryGetNegativeRow(t *testing.T) {
	repo, mock, closeFn := newSearchCacheMock(t)
	defer closeFn()

	key := "[Haru] [Suda] topic"
	rows := sqlmock.NewRows([]string{
		"id", "search_query", "youtube_id", "title", "channel", "thumbnail", "created_at", "updated_at",
	}).AddRow(3, key, nil, nil, nil, nil, time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta(`FROM youtube_search_cache WHERE search_query=$1`)).
		WithArgs(key).
		WillReturnRows(rows)

	record, err := repo.Get(context.Background(), key)

	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Nil(t, record.YouTubeID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchCacheRepositoryGetFailure(t *testing.T) {
	repo, mock, closeFn := newSearchCacheMock(t)
	defer closeFn()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM youtube_search_cache WHERE search_query=$1`)).
		WillReturnError(errors.New("connection refused"))

	record, err := repo.Get(context.Background(), "[Lonely] [Aimer] topic")

	assert.Error(t, err)
	assert.Nil(t, record)
}

func TestSearchCacheRepositoryUpsert(t *testing.T) {
	repo, mock, closeFn := newSearchCacheMock(t)
	defer closeFn()

	key := "[Lonely] [Aimer] topic"
	videoID := "vid-7"
	title := "Aimer - Lonely"
	channel := "Aimer - Topic"
	thumbnail := "https://img.example/t.jpg"
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO youtube_search_cache`)).
		WithArgs(key, videoID, title, channel, thumbnail).
		WillReturnRows(searchCacheRows(7, key, videoID))

	record, err := repo.Upsert(context.Background(), key, model.SearchCacheFields{
		YouTubeID: &videoID,
		Title:     &title,
		Channel:   &channel,
		Thumbnail: &thumbnail,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), record.ID)
	assert.Equal(t, key, record.SearchQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchCacheRepositoryUpsertNilFields(t *testing.T) {
	repo, mock, closeFn := newSearchCacheMock(t)
	defer closeFn()

	key := "[Haru] [Suda] topic"
	rows := sqlmock.NewRows([]string{
		"id", "search_query", "youtube_id", "title", "channel", "thumbnail", "created_at", "updated_at",
	}).AddRow(3, key, nil, nil, nil, nil, time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO youtube_search_cache`)).
		WithArgs(key, nil, nil, nil, nil).
		WillReturnRows(rows)

	record, err := repo.Upsert(context.Background(), key, model.SearchCacheFields{})

	require.NoError(t, err)
	assert.Equal(t, int64(3), record.ID)
	assert.Nil(t, record.YouTubeID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchCacheRepositoryGetByVideoID(t *testing.T) {
	repo, mock, closeFn := newSearchCacheMock(t)
	defer closeFn()

	key := "[Lonely] [Aimer] topic"
	mock.ExpectQuery(regexp.QuoteMeta(`FROM youtube_search_cache WHERE youtube_id=$1 ORDER BY updated_at DESC LIMIT 1`)).
		WithArgs("vid-7").
		WillReturnRows(searchCacheRows(7, key, "vid-7"))

	record, err := repo.GetByVideoID(context.Background(), "vid-7")

	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, int64(7), record.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchCacheRepositoryGetByVideoIDMiss(t *testing.T) {
	repo, mock, closeFn := newSearchCacheMock(t)
	defer closeFn()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM youtube_search_cache WHERE youtube_id=$1`)).
		WithArgs("vid-missing").
		WillReturnError(sql.ErrNoRows)

	record, err := repo.GetByVideoID(context.Background(), "vid-missing")

	require.NoError(t, err)
	assert.Nil(t, record)
}
