package course

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	c := Course{ID: "c1", Code: "CS101", TitleEN: "Intro to Programming"}
	if err := c.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	c = Course{ID: "c1", TitleEN: "Intro to Programming"}
	if err := c.Validate(); err != ErrEmptyCode {
		t.Errorf("expected ErrEmptyCode, got %v", err)
	}

	c = Course{ID: "c1", Code: strings.Repeat("X", 31), TitleEN: "Intro"}
	if err := c.Validate(); err != ErrCodeTooLong {
		t.Errorf("expected ErrCodeTooLong, got %v", err)
	}

	c = Course{ID: "c1", Code: "CS101"}
	if err := c.Validate(); err != ErrEmptyTitle {
		t.Errorf("expected ErrEmptyTitle, got %v", err)
	}
}

func TestTitleFallback(t *testing.T) {
	c := Course{TitleAR: "برمجة", TitleEN: "Programming"}
	if got := c.Title("en"); got != "Programming" {
		t.Errorf("expected English title, got %q", got)
	}
	if got := c.Title("ar"); got != "برمجة" {
		t.Errorf("expected Arabic title, got %q", got)
	}

	arOnly := Course{TitleAR: "برمجة"}
	if got := arOnly.Title("en"); got != "برمجة" {
		t.Errorf("expected fallback to Arabic title, got %q", got)
	}
}
