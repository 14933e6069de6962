package projections

import (
	"context"
	"testing"

	"portal/internal/domain/course"
	"portal/internal/domain/schedule"
	"portal/internal/domain/studentcard"
)

// mockScheduleStore is a mock implementation of ScheduleEntryStore.
type mockScheduleStore struct {
	entries []schedule.Entry
}

// ListByDepartment returns entries whose department matches exactly.
// PRE: department is the card's department string
// POST: Returns only matching entries, in stored order
func (m *mockScheduleStore) ListByDepartment(ctx context.Context, department string) ([]schedule.Entry, error) {
	var out []schedule.Entry
	for _, e := range m.entries {
		if e.Department == department {
			out = append(out, e)
		}
	}
	return out, nil
}

func scheduleDeps() GetMyScheduleDeps {
	return GetMyScheduleDeps{
		CardStore: &mockCardStore{cards: map[string]studentcard.Card{
			"card-1": {ID: "card-1", CardNumber: "S100", Name: "Sara Ahmed", Department: "Computer Science", Active: true},
		}},
		ScheduleStore: &mockScheduleStore{entries: []schedule.Entry{
			{ID: "e1", Department: "Computer Science", Day: schedule.DayTuesday, TimeFrom: "09:00", CourseID: "course-1"},
			{ID: "e2", Department: "Computer Science", Day: schedule.DaySunday, TimeFrom: "11:00", CourseID: "course-2"},
			{ID: "e3", Department: "Physics", Day: schedule.DaySunday, TimeFrom: "09:00", CourseID: "course-3"},
			{ID: "e4", Department: "Computer Science", Day: schedule.DaySunday, TimeFrom: "09:00", CourseID: "course-1"},
		}},
		CourseStore: &mockCourseStore{courses: map[string]course.Course{
			"course-1": {ID: "course-1", Code: "CS101", TitleEN: "Intro"},
			"course-2": {ID: "course-2", Code: "CS102", TitleEN: "Data Structures"},
		}},
	}
}

func TestQueryGetMySchedule_FilterAndOrder(t *testing.T) {
	got, err := QueryGetMySchedule(context.Background(),
		GetMyScheduleQuery{StudentID: "card-1"}, scheduleDeps())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Only the student's department; Sunday-first week, then start time.
	wantOrder := []string{"e4", "e2", "e1"}
	if len(got.Rows) != len(wantOrder) {
		t.Fatalf("expected %d rows, got %d", len(wantOrder), len(got.Rows))
	}
	for i, id := range wantOrder {
		if got.Rows[i].Entry.ID != id {
			t.Errorf("row %d: expected %q, got %q", i, id, got.Rows[i].Entry.ID)
		}
		if got.Rows[i].Entry.Department != "Computer Science" {
			t.Errorf("row %d: wrong department %q", i, got.Rows[i].Entry.Department)
		}
	}
}

func TestQueryGetMySchedule_CourseEnrichment(t *testing.T) {
	got, err := QueryGetMySchedule(context.Background(),
		GetMyScheduleQuery{StudentID: "card-1"}, scheduleDeps())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Rows[0].Course.Code != "CS101" {
		t.Errorf("expected enriched course CS101, got %q", got.Rows[0].Course.Code)
	}
}

func TestQueryGetMySchedule_EmptyDepartment(t *testing.T) {
	deps := scheduleDeps()
	deps.CardStore = &mockCardStore{cards: map[string]studentcard.Card{
		"card-9": {ID: "card-9", CardNumber: "S900", Department: "History", Active: true},
	}}

	got, err := QueryGetMySchedule(context.Background(),
		GetMyScheduleQuery{StudentID: "card-9"}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Rows) != 0 {
		t.Errorf("expected no rows, got %d", len(got.Rows))
	}
}

func TestQueryGetMySchedule_UnknownStudent(t *testing.T) {
	_, err := QueryGetMySchedule(context.Background(),
		GetMyScheduleQuery{StudentID: "nope"}, scheduleDeps())
	if err == nil {
		t.Error("expected error for unknown student")
	}
}
