package repository

import (
	"context"

	"mood-playlist/domain/model"
)

// IMoodAnalyzer turns a mood signal into a structured analysis with
// candidate tracks.
type IMoodAnalyzer interface {
	// AnalyzeImage analyzes a webcam capture (JPEG bytes).
	AnalyzeImage(ctx context.Context, image []byte) (*model.MoodAnalysis, error)
	// AnalyzeText analyzes typed or voice-transcribed text.
	AnalyzeText(ctx context.Context, text string) (*model.MoodAnalysis, error)
}
