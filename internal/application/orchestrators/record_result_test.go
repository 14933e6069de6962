package orchestrators

import (
	"context"
	"testing"
	"time"

	"portal/internal/domain/result"
)

// mockResultStoreForRecord is a mock implementation of ResultStoreForRecord.
type mockResultStoreForRecord struct {
	results []result.Result
}

// Save persists a result.
// PRE: r has been validated
// POST: Result is appended to the store
func (m *mockResultStoreForRecord) Save(ctx context.Context, r result.Result) error {
	m.results = append(m.results, r)
	return nil
}

// ExistsFor reports whether a result already exists for the combination.
// PRE: all three IDs are non-empty
// POST: Returns true if a matching result is stored
func (m *mockResultStoreForRecord) ExistsFor(ctx context.Context, studentID, courseID, semesterID string) (bool, error) {
	for _, r := range m.results {
		if r.StudentID == studentID && r.CourseID == courseID && r.SemesterID == semesterID {
			return true, nil
		}
	}
	return false, nil
}

func recordDeps(store *mockResultStoreForRecord) RecordResultDeps {
	return RecordResultDeps{
		ResultStore: store,
		GenerateID:  fixedID,
		Now:         func() time.Time { return fixedNow },
	}
}

func TestExecuteRecordResult_Success(t *testing.T) {
	store := &mockResultStoreForRecord{}

	r, err := ExecuteRecordResult(context.Background(), RecordResultInput{
		StudentID:  "card-1",
		CourseID:   "course-1",
		SemesterID: "sem-1",
		Grade:      " A ",
	}, recordDeps(store))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Grade != "A" {
		t.Errorf("expected trimmed grade A, got %q", r.Grade)
	}
	if !r.DateRecorded.Equal(fixedNow) {
		t.Errorf("expected DateRecorded %v, got %v", fixedNow, r.DateRecorded)
	}
	if len(store.results) != 1 {
		t.Errorf("expected one stored result, got %d", len(store.results))
	}
}

func TestExecuteRecordResult_Duplicate(t *testing.T) {
	store := &mockResultStoreForRecord{results: []result.Result{
		{ID: "r1", StudentID: "card-1", CourseID: "course-1", SemesterID: "sem-1", Grade: "B"},
	}}

	_, err := ExecuteRecordResult(context.Background(), RecordResultInput{
		StudentID:  "card-1",
		CourseID:   "course-1",
		SemesterID: "sem-1",
		Grade:      "A",
	}, recordDeps(store))
	if err != ErrDuplicateResult {
		t.Errorf("expected ErrDuplicateResult, got %v", err)
	}
	if len(store.results) != 1 {
		t.Errorf("expected no new result, got %d stored", len(store.results))
	}
}

// Same course in a different semester is a separate result, not a duplicate.
func TestExecuteRecordResult_SameCourseOtherSemester(t *testing.T) {
	store := &mockResultStoreForRecord{results: []result.Result{
		{ID: "r1", StudentID: "card-1", CourseID: "course-1", SemesterID: "sem-1", Grade: "B"},
	}}

	_, err := ExecuteRecordResult(context.Background(), RecordResultInput{
		StudentID:  "card-1",
		CourseID:   "course-1",
		SemesterID: "sem-2",
		Grade:      "A",
	}, recordDeps(store))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.results) != 2 {
		t.Errorf("expected two stored results, got %d", len(store.results))
	}
}

func TestExecuteRecordResult_MissingReference(t *testing.T) {
	store := &mockResultStoreForRecord{}

	_, err := ExecuteRecordResult(context.Background(), RecordResultInput{
		StudentID: "card-1",
		Grade:     "A",
	}, recordDeps(store))
	if err == nil {
		t.Error("expected validation error for missing references")
	}
}
