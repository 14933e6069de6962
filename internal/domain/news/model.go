package news

import (
	"errors"
	"strings"
	"time"
)

// HomePageLimit is the number of published items shown on the public
// home page, newest first.
const HomePageLimit = 6

// Domain errors
var (
	ErrEmptyTitle         = errors.New("news needs a title in at least one language")
	ErrAlreadyPublished   = errors.New("news item is already published")
	ErrAlreadyUnpublished = errors.New("news item is not published")
)

// Item is a bilingual announcement. Unpublished items never appear on the
// public home page; admins see everything. Content supports Markdown.
type Item struct {
	ID        string
	TitleAR   string
	ContentAR string
	TitleEN   string
	ContentEN string
	Published bool
	CreatedAt time.Time
}

// Validate checks if the Item has valid data.
// PRE: Item struct is populated
// POST: Returns nil if valid, error otherwise
func (n *Item) Validate() error {
	if strings.TrimSpace(n.TitleAR) == "" && strings.TrimSpace(n.TitleEN) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// Publish makes the item visible on the public home page.
// PRE: item is unpublished
// POST: Published is true
func (n *Item) Publish() error {
	if n.Published {
		return ErrAlreadyPublished
	}
	n.Published = true
	return nil
}

// Unpublish pulls the item from the public home page.
// PRE: item is published
// POST: Published is false
func (n *Item) Unpublish() error {
	if !n.Published {
		return ErrAlreadyUnpublished
	}
	n.Published = false
	return nil
}

// Title returns the title for the given language code, falling back to the
// other language when the requested one is empty. Value receiver so
// templates can call it on ranged items.
func (n Item) Title(lang string) string {
	if lang == "en" {
		if n.TitleEN != "" {
			return n.TitleEN
		}
		return n.TitleAR
	}
	if n.TitleAR != "" {
		return n.TitleAR
	}
	return n.TitleEN
}

// Content returns the body for the given language code with the same
// fallback rule as Title.
func (n Item) Content(lang string) string {
	if lang == "en" {
		if n.ContentEN != "" {
			return n.ContentEN
		}
		return n.ContentAR
	}
	if n.ContentAR != "" {
		return n.ContentAR
	}
	return n.ContentEN
}
