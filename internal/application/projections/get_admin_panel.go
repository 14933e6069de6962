package projections

import (
	"context"

	"portal/internal/domain/course"
	"portal/internal/domain/news"
	"portal/internal/domain/semester"
	"portal/internal/domain/studentcard"
)

// PanelCardStore defines the card store interface needed by the panel projection.
type PanelCardStore interface {
	List(ctx context.Context) ([]studentcard.Card, error)
}

// PanelCourseStore defines the course store interface needed by the panel projection.
type PanelCourseStore interface {
	List(ctx context.Context) ([]course.Course, error)
}

// PanelSemesterStore defines the semester store interface needed by the panel projection.
type PanelSemesterStore interface {
	List(ctx context.Context) ([]semester.Semester, error)
}

// PanelNewsStore defines the news store interface needed by the panel projection.
type PanelNewsStore interface {
	List(ctx context.Context) ([]news.Item, error)
}

// GetAdminPanelDeps holds dependencies for the panel projection.
type GetAdminPanelDeps struct {
	CardStore     PanelCardStore
	CourseStore   PanelCourseStore
	SemesterStore PanelSemesterStore
	NewsStore     PanelNewsStore
}

// AdminPanelResult carries the complete unfiltered listings for the admin
// overview. News is newest-first and includes unpublished items; admins
// see everything.
type AdminPanelResult struct {
	Students  []studentcard.Card
	Courses   []course.Course
	Semesters []semester.Semester
	News      []news.Item
}

// QueryGetAdminPanel loads every collection for the admin overview page.
// PRE: caller is an authenticated admin
// POST: Returns all four listings unfiltered
func QueryGetAdminPanel(ctx context.Context, deps GetAdminPanelDeps) (AdminPanelResult, error) {
	students, err := deps.CardStore.List(ctx)
	if err != nil {
		return AdminPanelResult{}, err
	}
	courses, err := deps.CourseStore.List(ctx)
	if err != nil {
		return AdminPanelResult{}, err
	}
	semesters, err := deps.SemesterStore.List(ctx)
	if err != nil {
		return AdminPanelResult{}, err
	}
	items, err := deps.NewsStore.List(ctx)
	if err != nil {
		return AdminPanelResult{}, err
	}
	return AdminPanelResult{
		Students:  students,
		Courses:   courses,
		Semesters: semesters,
		News:      items,
	}, nil
}
