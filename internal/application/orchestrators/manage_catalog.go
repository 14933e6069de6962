package orchestrators

import (
	"context"
	"log/slog"
	"strings"

	"portal/internal/domain/course"
	"portal/internal/domain/schedule"
	"portal/internal/domain/semester"
)

// CourseStoreForManage defines the store interface needed by course management.
type CourseStoreForManage interface {
	GetByID(ctx context.Context, id string) (course.Course, error)
	Save(ctx context.Context, c course.Course) error
}

// SemesterStoreForManage defines the store interface needed by semester management.
type SemesterStoreForManage interface {
	Save(ctx context.Context, s semester.Semester) error
}

// ScheduleStoreForManage defines the store interface needed by schedule management.
type ScheduleStoreForManage interface {
	Save(ctx context.Context, e schedule.Entry) error
}

// CreateCourseInput carries input for creating a course.
type CreateCourseInput struct {
	Code       string
	TitleAR    string
	TitleEN    string
	Department string
	IsGeneral  bool
}

// CreateCourseDeps holds dependencies for CreateCourse.
type CreateCourseDeps struct {
	CourseStore CourseStoreForManage
	GenerateID  func() string
}

// ExecuteCreateCourse adds a catalog entry.
// PRE: caller is an authenticated admin
// POST: Course is persisted
func ExecuteCreateCourse(ctx context.Context, input CreateCourseInput, deps CreateCourseDeps) (course.Course, error) {
	c := course.Course{
		ID:         deps.GenerateID(),
		Code:       strings.TrimSpace(input.Code),
		TitleAR:    strings.TrimSpace(input.TitleAR),
		TitleEN:    strings.TrimSpace(input.TitleEN),
		Department: strings.TrimSpace(input.Department),
		IsGeneral:  input.IsGeneral,
	}
	if err := c.Validate(); err != nil {
		return course.Course{}, err
	}
	if err := deps.CourseStore.Save(ctx, c); err != nil {
		return course.Course{}, err
	}
	slog.Info("admin_event", "event", "course_created", "code", c.Code)
	return c, nil
}

// CreateSemesterInput carries input for creating a semester.
type CreateSemesterInput struct {
	Name string
}

// CreateSemesterDeps holds dependencies for CreateSemester.
type CreateSemesterDeps struct {
	SemesterStore SemesterStoreForManage
	GenerateID    func() string
}

// ExecuteCreateSemester adds a named academic term.
// PRE: caller is an authenticated admin
// POST: Semester is persisted
func ExecuteCreateSemester(ctx context.Context, input CreateSemesterInput, deps CreateSemesterDeps) (semester.Semester, error) {
	s := semester.Semester{
		ID:   deps.GenerateID(),
		Name: strings.TrimSpace(input.Name),
	}
	if err := s.Validate(); err != nil {
		return semester.Semester{}, err
	}
	if err := deps.SemesterStore.Save(ctx, s); err != nil {
		return semester.Semester{}, err
	}
	slog.Info("admin_event", "event", "semester_created", "name", s.Name)
	return s, nil
}

// CreateScheduleEntryInput carries input for creating a schedule entry.
type CreateScheduleEntryInput struct {
	Department string
	Day        string
	TimeFrom   string
	TimeTo     string
	Room       string
	CourseID   string
}

// CreateScheduleEntryDeps holds dependencies for CreateScheduleEntry.
type CreateScheduleEntryDeps struct {
	ScheduleStore ScheduleStoreForManage
	CourseStore   CourseStoreForManage
	GenerateID    func() string
}

// ExecuteCreateScheduleEntry adds a recurring class-meeting slot. The
// referenced course must exist; the admin is otherwise responsible for not
// leaving entries pointing at removed courses.
// PRE: caller is an authenticated admin
// POST: Entry is persisted
func ExecuteCreateScheduleEntry(ctx context.Context, input CreateScheduleEntryInput, deps CreateScheduleEntryDeps) (schedule.Entry, error) {
	e := schedule.Entry{
		ID:         deps.GenerateID(),
		Department: strings.TrimSpace(input.Department),
		Day:        strings.TrimSpace(input.Day),
		TimeFrom:   strings.TrimSpace(input.TimeFrom),
		TimeTo:     strings.TrimSpace(input.TimeTo),
		Room:       strings.TrimSpace(input.Room),
		CourseID:   input.CourseID,
	}
	if err := e.Validate(); err != nil {
		return schedule.Entry{}, err
	}
	if _, err := deps.CourseStore.GetByID(ctx, e.CourseID); err != nil {
		return schedule.Entry{}, err
	}
	if err := deps.ScheduleStore.Save(ctx, e); err != nil {
		return schedule.Entry{}, err
	}
	slog.Info("admin_event", "event", "schedule_entry_created",
		"department", e.Department, "day", e.Day)
	return e, nil
}
