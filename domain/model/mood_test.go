package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchKey(t *testing.T) {
	track := CandidateTrack{Title: "Lonely", Artist: "Aimer"}

	assert.Equal(t, "[Lonely] [Aimer] topic", track.SearchKey())
	// deterministic: same input, same key
	assert.Equal(t, track.SearchKey(), track.SearchKey())
}

func TestSearchKeyPreservesRawFields(t *testing.T) {
	track := CandidateTrack{Title: "  Lonely ", Artist: "AIMER"}

	// no trimming or case folding; the key mirrors the analysis output
	assert.Equal(t, "[  Lonely ] [AIMER] topic", track.SearchKey())
}
