package news

import "testing"

func TestValidate_NeedsOneTitle(t *testing.T) {
	n := Item{ID: "n1"}
	if err := n.Validate(); err != ErrEmptyTitle {
		t.Errorf("expected ErrEmptyTitle, got %v", err)
	}
	n.TitleAR = "إعلان"
	if err := n.Validate(); err != nil {
		t.Errorf("unexpected error with Arabic title only: %v", err)
	}
	n.TitleAR = ""
	n.TitleEN = "Announcement"
	if err := n.Validate(); err != nil {
		t.Errorf("unexpected error with English title only: %v", err)
	}
}

func TestPublishUnpublish(t *testing.T) {
	n := Item{ID: "n1", TitleEN: "Announcement"}

	if err := n.Publish(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !n.Published {
		t.Error("expected item to be published")
	}
	if err := n.Publish(); err != ErrAlreadyPublished {
		t.Errorf("expected ErrAlreadyPublished, got %v", err)
	}

	if err := n.Unpublish(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Published {
		t.Error("expected item to be unpublished")
	}
	if err := n.Unpublish(); err != ErrAlreadyUnpublished {
		t.Errorf("expected ErrAlreadyUnpublished, got %v", err)
	}
}

func TestTitleFallback(t *testing.T) {
	n := Item{TitleAR: "إعلان", TitleEN: "Announcement"}
	if got := n.Title("ar"); got != "إعلان" {
		t.Errorf("expected Arabic title, got %q", got)
	}
	if got := n.Title("en"); got != "Announcement" {
		t.Errorf("expected English title, got %q", got)
	}

	// Missing language falls back to the other one.
	arOnly := Item{TitleAR: "إعلان"}
	if got := arOnly.Title("en"); got != "إعلان" {
		t.Errorf("expected fallback to Arabic title, got %q", got)
	}
	enOnly := Item{TitleEN: "Announcement"}
	if got := enOnly.Title("ar"); got != "Announcement" {
		t.Errorf("expected fallback to English title, got %q", got)
	}
}

func TestContentFallback(t *testing.T) {
	n := Item{ContentAR: "نص"}
	if got := n.Content("en"); got != "نص" {
		t.Errorf("expected fallback to Arabic content, got %q", got)
	}
	n.ContentEN = "body"
	if got := n.Content("en"); got != "body" {
		t.Errorf("expected English content, got %q", got)
	}
}
