package repository

import (
	"context"

	"mood-playlist/domain/model"
)

// IVideoSearch wraps the external video search call. Results keep the
// relevance order returned by the service and are bounded to one page.
type IVideoSearch interface {
	Search(ctx context.Context, query string) ([]model.VideoSearchResult, error)
}
