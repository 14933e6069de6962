package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"portal/internal/domain/course"
	"portal/internal/domain/news"
	"portal/internal/domain/result"
	"portal/internal/domain/schedule"
	"portal/internal/domain/semester"
	"portal/internal/domain/studentcard"
)

// DemoSeedDeps holds the stores the demo seeder writes to.
type DemoSeedDeps struct {
	CardStore     CardStoreForManage
	CourseStore   CourseStoreForManage
	SemesterStore SemesterStoreForManage
	ResultStore   ResultStoreForRecord
	ScheduleStore ScheduleStoreForManage
	NewsStore     NewsStoreForOrchestrator
}

// ExecuteSeedDemo loads a small demo data set for development so every page
// renders non-empty: two cards (one inactive), two courses, two semesters,
// results, schedule entries, and news (one unpublished). Idempotent: it
// checks for the demo card and does nothing if present.
// PRE: schema exists
// POST: Demo rows exist exactly once
func ExecuteSeedDemo(ctx context.Context, deps DemoSeedDeps) error {
	if existing, err := deps.CardStore.GetByCardNumber(ctx, "S100"); err == nil && existing.ID != "" {
		return nil
	}

	now := time.Now()

	cards := []studentcard.Card{
		{ID: "demo-card-1", CardNumber: "S100", Name: "سارة أحمد", Department: "Computer Science", Active: true, CreatedAt: now},
		{ID: "demo-card-2", CardNumber: "S200", Name: "Omar Khalid", Department: "Computer Science", Active: false, CreatedAt: now},
	}
	for _, c := range cards {
		if err := deps.CardStore.Save(ctx, c); err != nil {
			return err
		}
	}

	courses := []course.Course{
		{ID: "demo-course-1", Code: "CS101", TitleAR: "مقدمة في البرمجة", TitleEN: "Introduction to Programming", Department: "Computer Science"},
		{ID: "demo-course-2", Code: "GEN110", TitleAR: "اللغة الإنجليزية", TitleEN: "English Language", Department: "General", IsGeneral: true},
	}
	for _, c := range courses {
		if err := deps.CourseStore.Save(ctx, c); err != nil {
			return err
		}
	}

	semesters := []semester.Semester{
		{ID: "demo-sem-1", Name: "Fall 2025"},
		{ID: "demo-sem-2", Name: "Spring 2026"},
	}
	for _, s := range semesters {
		if err := deps.SemesterStore.Save(ctx, s); err != nil {
			return err
		}
	}

	results := []result.Result{
		{ID: "demo-result-1", StudentID: "demo-card-1", CourseID: "demo-course-1", SemesterID: "demo-sem-1", Grade: "A", DateRecorded: now.AddDate(0, -6, 0)},
		{ID: "demo-result-2", StudentID: "demo-card-1", CourseID: "demo-course-2", SemesterID: "demo-sem-2", Grade: "88", DateRecorded: now.AddDate(0, -1, 0)},
	}
	for _, r := range results {
		if err := deps.ResultStore.Save(ctx, r); err != nil {
			return err
		}
	}

	entries := []schedule.Entry{
		{ID: "demo-entry-1", Department: "Computer Science", Day: schedule.DaySunday, TimeFrom: "09:00", TimeTo: "10:30", Room: "B12", CourseID: "demo-course-1"},
		{ID: "demo-entry-2", Department: "Computer Science", Day: schedule.DayTuesday, TimeFrom: "11:00", TimeTo: "12:30", Room: "A3", CourseID: "demo-course-2"},
	}
	for _, e := range entries {
		if err := deps.ScheduleStore.Save(ctx, e); err != nil {
			return err
		}
	}

	items := []news.Item{
		{ID: "demo-news-1", TitleAR: "بدء التسجيل للفصل الجديد", TitleEN: "Registration opens", ContentAR: "التسجيل متاح **الآن**.", ContentEN: "Registration is open **now**.", Published: true, CreatedAt: now.AddDate(0, 0, -2)},
		{ID: "demo-news-2", TitleAR: "مسودة إعلان", TitleEN: "Draft announcement", ContentAR: "غير منشور", ContentEN: "Not published yet", Published: false, CreatedAt: now.AddDate(0, 0, -1)},
	}
	for _, n := range items {
		if err := deps.NewsStore.Save(ctx, n); err != nil {
			return err
		}
	}

	slog.Info("seed_event", "event", "demo_data_loaded")
	return nil
}
