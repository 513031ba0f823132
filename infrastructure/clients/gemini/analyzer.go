package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"mood-playlist/domain/model"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultModel = "gemini-2.5-flash"

const analysisFormatPrompt = `You are a professional music DJ. Analyze the input and respond with exactly one JSON object of the form {"mood": "string", "description": "string", "searchQuery": [{"title": "song title", "artist": "artist name"}]}.`

const imageContextPrompt = `Analyze this person's emotion and the atmosphere of the surroundings. Consider the current weather, season, solar terms and holidays (Christmas, Valentine's Day, harvest festivals). For portraits focus on the person's mood, otherwise on the content of the image, and turn the analysis into keywords suitable for music recommendation.`

const trackListPrompt = `Build searchQuery as an array of 5 recommended songs based on the analysis, each entry shaped as {"title": "song title", "artist": "artist name"}.`

// Analyzer produces mood analyses through the Gemini API
type Analyzer struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewAnalyzer creates a new Gemini-backed mood analyzer
func NewAnalyzer(ctx context.Context, apiKey, modelName string) (*Analyzer, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	if modelName == "" {
		modelName = defaultModel
	}
	return &Analyzer{client: client, model: client.GenerativeModel(modelName)}, nil
}

// Close releases the underlying client
func (a *Analyzer) Close() error { return a.client.Close() }

// AnalyzeImage analyzes a webcam capture (JPEG bytes)
func (a *Analyzer) AnalyzeImage(ctx context.Context, image []byte) (*model.MoodAnalysis, error) {
	return a.generate(ctx,
		genai.Text(analysisFormatPrompt),
		genai.ImageData("jpeg", image),
		genai.Text(imageContextPrompt),
		genai.Text(trackListPrompt),
	)
}

// AnalyzeText analyzes typed or voice-transcribed text
func (a *Analyzer) AnalyzeText(ctx context.Context, text string) (*model.MoodAnalysis, error) {
	prompt := fmt.Sprintf("%s\n\nWhat the user said:\n%q\n\nAnalyze the user's mood, feelings, desired atmosphere and situation from the text above. %s",
		analysisFormatPrompt, text, trackListPrompt)
	return a.generate(ctx, genai.Text(prompt))
}

func (a *Analyzer) generate(ctx context.Context, parts ...genai.Part) (*model.MoodAnalysis, error) {
	resp, err := a.model.GenerateContent(ctx, parts...)
	if err != nil {
		return nil, fmt.Errorf("failed to generate mood analysis: %w", err)
	}
	raw := collectText(resp)
	analysis := &model.MoodAnalysis{}
	if err := json.Unmarshal([]byte(extractPayload(raw)), analysis); err != nil {
		return nil, fmt.Errorf("failed to parse mood analysis response: %w", err)
	}
	return analysis, nil
}

// collectText concatenates the text parts of the first-candidate response
func collectText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return sb.String()
}

// extractPayload strips the markdown code fences the model tends to wrap
// JSON output in, leaving the bare payload for the decoder.
func extractPayload(raw string) string {
	s := strings.ReplaceAll(raw, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
