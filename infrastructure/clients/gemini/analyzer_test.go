package gemini

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mood-playlist/domain/model"

	"github.com/google/generative-ai-go/genai"
)

func TestExtractPayload(t *testing.T) {
	payload := `{"mood":"calm"}`

	assert.Equal(t, payload, extractPayload(payload))
	assert.Equal(t, payload, extractPayload("```json\n"+payload+"\n```"))
	assert.Equal(t, payload, extractPayload("```\n"+payload+"\n```"))
	assert.Equal(t, payload, extractPayload("  \n```json\n"+payload+"\n```\n  "))
}

func TestCollectText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("{\"mood\":"), genai.Text("\"calm\"}")}}},
			{Content: nil},
		},
	}

	assert.Equal(t, `{"mood":"calm"}`, collectText(resp))
}

func TestAnalysisPayloadDecodes(t *testing.T) {
	raw := "```json\n" + `{
        "mood": "melancholic",
        "description": "A quiet, rain-soaked kind of evening.",
        "searchQuery": [
            {"title": "Lonely", "artist": "Aimer"},
            {"title": "Haru", "artist": "Suda"}
        ]
    }` + "\n```"

	analysis := &model.MoodAnalysis{}
	err := json.Unmarshal([]byte(extractPayload(raw)), analysis)

	require.NoError(t, err)
	assert.Equal(t, "melancholic", analysis.Mood)
	require.Len(t, analysis.SearchQuery, 2)
	assert.Equal(t, "[Lonely] [Aimer] topic", analysis.SearchQuery[0].SearchKey())
}
