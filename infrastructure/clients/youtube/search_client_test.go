package youtube

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSearchClientRequiresCredentials(t *testing.T) {
	client, err := NewSearchClient(context.Background(), &Config{})

	assert.Nil(t, client)
	assert.Error(t, err)
}

func TestNewSearchClientWithAPIKey(t *testing.T) {
	client, err := NewSearchClient(context.Background(), &Config{APIKey: "test-key"})

	require.NoError(t, err)
	assert.NotNil(t, client)
}
