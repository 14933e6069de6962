package projections

import (
	"context"

	"portal/internal/domain/course"
	"portal/internal/domain/result"
	"portal/internal/domain/semester"
	"portal/internal/domain/studentcard"
)

// UnknownSemesterLabel is the fallback bucket for results whose semester
// reference cannot be resolved.
const UnknownSemesterLabel = "unknown"

// ResultsCardStore defines the card store interface needed by this projection.
type ResultsCardStore interface {
	GetByID(ctx context.Context, id string) (studentcard.Card, error)
}

// ResultsResultStore defines the result store interface needed by this projection.
type ResultsResultStore interface {
	ListByStudentID(ctx context.Context, studentID string) ([]result.Result, error)
}

// ResultsSemesterStore defines the semester store interface needed by this projection.
type ResultsSemesterStore interface {
	GetByID(ctx context.Context, id string) (semester.Semester, error)
}

// ResultsCourseStore defines the course store interface needed by this projection.
type ResultsCourseStore interface {
	GetByID(ctx context.Context, id string) (course.Course, error)
}

// GetResultsBySemesterQuery carries input for the results projection.
type GetResultsBySemesterQuery struct {
	StudentID string
}

// GetResultsBySemesterDeps holds dependencies for the results projection.
type GetResultsBySemesterDeps struct {
	CardStore     ResultsCardStore
	ResultStore   ResultsResultStore
	SemesterStore ResultsSemesterStore
	CourseStore   ResultsCourseStore // optional: nil skips course display info
}

// ResultRow is one grade row enriched with course display info. The course
// stays zero-valued when its reference cannot be resolved.
type ResultRow struct {
	Result result.Result
	Course course.Course
}

// SemesterGroup is one semester bucket with its rows in encounter order.
type SemesterGroup struct {
	Name    string
	Results []ResultRow
}

// ResultsBySemesterResult carries the output of the results projection.
type ResultsBySemesterResult struct {
	Card   studentcard.Card
	Groups []SemesterGroup
}

// QueryGetResultsBySemester loads a student's results ordered most recent
// first and partitions them into semester buckets. Every result lands in
// exactly one bucket; an unresolvable semester reference falls into the
// "unknown" bucket. Buckets appear in first-encounter order and rows keep
// their encounter order within a bucket.
// PRE: StudentID identifies an authenticated student
// POST: Returns the card and the semester grouping
func QueryGetResultsBySemester(ctx context.Context, query GetResultsBySemesterQuery, deps GetResultsBySemesterDeps) (ResultsBySemesterResult, error) {
	card, err := deps.CardStore.GetByID(ctx, query.StudentID)
	if err != nil {
		return ResultsBySemesterResult{}, err
	}

	results, err := deps.ResultStore.ListByStudentID(ctx, query.StudentID)
	if err != nil {
		return ResultsBySemesterResult{}, err
	}

	out := ResultsBySemesterResult{Card: card}
	groupIndex := map[string]int{}
	semesterNames := map[string]string{}

	for _, r := range results {
		name, ok := semesterNames[r.SemesterID]
		if !ok {
			if sem, err := deps.SemesterStore.GetByID(ctx, r.SemesterID); err == nil {
				name = sem.Name
			} else {
				name = UnknownSemesterLabel
			}
			semesterNames[r.SemesterID] = name
		}

		row := ResultRow{Result: r}
		if deps.CourseStore != nil {
			if c, err := deps.CourseStore.GetByID(ctx, r.CourseID); err == nil {
				row.Course = c
			}
		}

		idx, ok := groupIndex[name]
		if !ok {
			out.Groups = append(out.Groups, SemesterGroup{Name: name})
			idx = len(out.Groups) - 1
			groupIndex[name] = idx
		}
		out.Groups[idx].Results = append(out.Groups[idx].Results, row)
	}

	return out, nil
}
