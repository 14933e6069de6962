package orchestrators

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"portal/internal/domain/news"
)

// NewsStoreForOrchestrator defines the store interface needed by the news
// orchestrators.
type NewsStoreForOrchestrator interface {
	GetByID(ctx context.Context, id string) (news.Item, error)
	Save(ctx context.Context, n news.Item) error
}

// CreateNewsInput carries input for creating a news item.
type CreateNewsInput struct {
	TitleAR   string
	ContentAR string
	TitleEN   string
	ContentEN string
	Published bool
}

// CreateNewsDeps holds dependencies for CreateNews.
type CreateNewsDeps struct {
	NewsStore  NewsStoreForOrchestrator
	GenerateID func() string
	Now        func() time.Time
}

// ExecuteCreateNews creates an announcement. Items can be created published
// or held back; only published items reach the public home page.
// PRE: caller is an authenticated admin
// POST: Item is persisted with CreatedAt set to now
func ExecuteCreateNews(ctx context.Context, input CreateNewsInput, deps CreateNewsDeps) (news.Item, error) {
	n := news.Item{
		ID:        deps.GenerateID(),
		TitleAR:   strings.TrimSpace(input.TitleAR),
		ContentAR: input.ContentAR,
		TitleEN:   strings.TrimSpace(input.TitleEN),
		ContentEN: input.ContentEN,
		Published: input.Published,
		CreatedAt: deps.Now(),
	}
	if err := n.Validate(); err != nil {
		return news.Item{}, err
	}
	if err := deps.NewsStore.Save(ctx, n); err != nil {
		return news.Item{}, err
	}
	slog.Info("admin_event", "event", "news_created", "news_id", n.ID, "published", n.Published)
	return n, nil
}

// SetNewsPublishedInput carries input for publishing or unpublishing an item.
type SetNewsPublishedInput struct {
	NewsID    string
	Published bool
}

// SetNewsPublishedDeps holds dependencies for SetNewsPublished.
type SetNewsPublishedDeps struct {
	NewsStore NewsStoreForOrchestrator
}

// ExecuteSetNewsPublished toggles an item's published flag.
// PRE: NewsID references an existing item
// POST: Item's published flag matches input.Published
func ExecuteSetNewsPublished(ctx context.Context, input SetNewsPublishedInput, deps SetNewsPublishedDeps) error {
	n, err := deps.NewsStore.GetByID(ctx, input.NewsID)
	if err != nil {
		return err
	}

	if input.Published {
		err = n.Publish()
	} else {
		err = n.Unpublish()
	}
	if err != nil {
		return err
	}

	if err := deps.NewsStore.Save(ctx, n); err != nil {
		return err
	}

	slog.Info("admin_event", "event", "news_published_changed",
		"news_id", n.ID, "published", input.Published)
	return nil
}
