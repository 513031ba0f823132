package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveQuotaNilClient(t *testing.T) {
	quota := NewSaveQuota(nil)

	count, err := quota.Count(context.Background(), "101")
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = quota.Increment(context.Background(), "101")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestQuotaKeyCarriesUserAndDate(t *testing.T) {
	at := time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, "mood:save-count:101:2026-08-31", quotaKey("101", at))

	// different users and days never share a counter
	assert.NotEqual(t, quotaKey("101", at), quotaKey("102", at))
	assert.NotEqual(t, quotaKey("101", at), quotaKey("101", at.Add(24*time.Hour)))
}
