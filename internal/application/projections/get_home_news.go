package projections

import (
	"context"

	"portal/internal/domain/news"
)

// HomeNewsStore defines the news store interface needed by the home projection.
type HomeNewsStore interface {
	ListPublished(ctx context.Context, limit int) ([]news.Item, error)
}

// GetHomeNewsDeps holds dependencies for the home projection.
type GetHomeNewsDeps struct {
	NewsStore HomeNewsStore
}

// QueryGetHomeNews returns the published items for the public home page:
// at most news.HomePageLimit, newest first, never an unpublished item.
func QueryGetHomeNews(ctx context.Context, deps GetHomeNewsDeps) ([]news.Item, error) {
	return deps.NewsStore.ListPublished(ctx, news.HomePageLimit)
}
