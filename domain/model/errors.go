package model

import "errors"

var (
	// ErrAnalysisFailed is returned when the mood analysis call produced
	// unusable output. The detailed cause is logged server-side only; callers
	// surface a generic message.
	ErrAnalysisFailed = errors.New("mood analysis failed")

	// ErrDailySaveLimit is returned when a user hits the per-day save quota.
	ErrDailySaveLimit = errors.New("daily save limit reached")
)
