package projections

import (
	"context"
	"sort"

	"portal/internal/domain/course"
	"portal/internal/domain/schedule"
	"portal/internal/domain/studentcard"
)

// ScheduleCardStore defines the card store interface needed by this projection.
type ScheduleCardStore interface {
	GetByID(ctx context.Context, id string) (studentcard.Card, error)
}

// ScheduleEntryStore defines the schedule store interface needed by this projection.
type ScheduleEntryStore interface {
	ListByDepartment(ctx context.Context, department string) ([]schedule.Entry, error)
}

// ScheduleCourseStore defines the course store interface needed by this projection.
type ScheduleCourseStore interface {
	GetByID(ctx context.Context, id string) (course.Course, error)
}

// GetMyScheduleQuery carries input for the schedule projection.
type GetMyScheduleQuery struct {
	StudentID string
}

// GetMyScheduleDeps holds dependencies for the schedule projection.
type GetMyScheduleDeps struct {
	CardStore     ScheduleCardStore
	ScheduleStore ScheduleEntryStore
	CourseStore   ScheduleCourseStore // optional: nil skips course display info
}

// ScheduleRow is one class slot enriched with course display info.
type ScheduleRow struct {
	Entry  schedule.Entry
	Course course.Course
}

// MyScheduleResult carries the output of the schedule projection.
type MyScheduleResult struct {
	Card studentcard.Card
	Rows []ScheduleRow
}

// QueryGetMySchedule loads the schedule entries matching the student's
// department (exact string equality) and orders them by teaching-week day
// then start time for display.
// PRE: StudentID identifies an authenticated student
// POST: Returns only entries whose department equals the card's department
func QueryGetMySchedule(ctx context.Context, query GetMyScheduleQuery, deps GetMyScheduleDeps) (MyScheduleResult, error) {
	card, err := deps.CardStore.GetByID(ctx, query.StudentID)
	if err != nil {
		return MyScheduleResult{}, err
	}

	entries, err := deps.ScheduleStore.ListByDepartment(ctx, card.Department)
	if err != nil {
		return MyScheduleResult{}, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].DayRank() != entries[j].DayRank() {
			return entries[i].DayRank() < entries[j].DayRank()
		}
		return entries[i].TimeFrom < entries[j].TimeFrom
	})

	out := MyScheduleResult{Card: card}
	courseCache := map[string]course.Course{}
	for _, e := range entries {
		row := ScheduleRow{Entry: e}
		if deps.CourseStore != nil {
			c, ok := courseCache[e.CourseID]
			if !ok {
				if loaded, err := deps.CourseStore.GetByID(ctx, e.CourseID); err == nil {
					c = loaded
				}
				courseCache[e.CourseID] = c
			}
			row.Course = c
		}
		out.Rows = append(out.Rows, row)
	}

	return out, nil
}
