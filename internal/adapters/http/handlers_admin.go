package web

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/csrf"

	"portal/internal/adapters/http/middleware"
	"portal/internal/application/orchestrators"
	"portal/internal/application/projections"
)

// adminOnly wraps an admin-only handler with the admin auth gate: a missing
// admin flag queues a warning flash and redirects to the admin login page.
func adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !middleware.IsAdmin(r.Context()) {
			middleware.PushFlash(w, r, middleware.FlashWarning, "You need an admin login.")
			http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}

// handleAdminLogin handles GET (form) and POST (authenticate) for /admin/login.
func handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		if middleware.IsAdmin(r.Context()) {
			http.Redirect(w, r, "/admin/panel", http.StatusSeeOther)
			return
		}
		renderTemplate(w, r, "admin_login.html", map[string]any{
			"CSRFToken": csrf.Token(r),
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		input := orchestrators.AdminLoginInput{
			Username: r.FormValue("username"),
			Password: r.FormValue("password"),
		}
		deps := orchestrators.AdminLoginDeps{Credentials: adminCreds}

		if err := orchestrators.ExecuteAdminLogin(r.Context(), input, deps); err != nil {
			middleware.PushFlash(w, r, middleware.FlashDanger, err.Error())
			http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
			return
		}

		// Set the admin flag, keeping a concurrent student track intact.
		// The token is rotated either way.
		sess, _ := middleware.GetSessionFromContext(r.Context())
		sess.Admin = true
		if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil {
			sessions.Delete(cookie.Value)
		}
		token, err := sessions.Create(sess)
		if err != nil {
			http.Error(w, "Session error", http.StatusInternalServerError)
			return
		}
		middleware.SetSessionCookie(w, token)

		middleware.PushFlash(w, r, middleware.FlashSuccess, "Admin logged in.")
		http.Redirect(w, r, "/admin/panel", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleAdminPanel handles GET /admin/panel, the full unfiltered listings.
func handleAdminPanel(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	deps := projections.GetAdminPanelDeps{
		CardStore:     stores.CardStore,
		CourseStore:   stores.CourseStore,
		SemesterStore: stores.SemesterStore,
		NewsStore:     stores.NewsStore,
	}

	result, err := projections.QueryGetAdminPanel(r.Context(), deps)
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "admin_panel.html", map[string]any{
			"Students":  result.Students,
			"Courses":   result.Courses,
			"Semesters": result.Semesters,
			"News":      result.News,
			"CSRFToken": csrf.Token(r),
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// handleAdminLogout handles GET /admin/logout. It clears only the admin
// flag; a concurrent student session stays logged in.
func handleAdminLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil {
		if sess, ok := sessions.Get(cookie.Value); ok && sess.Admin {
			sess.Admin = false
			sessions.Update(cookie.Value, sess)
		}
	}
	middleware.PushFlash(w, r, middleware.FlashSuccess, "Admin logged out.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// redirectPanel flashes the outcome of an admin form action and returns to
// the panel, where validation failures surface next to the forms.
func redirectPanel(w http.ResponseWriter, r *http.Request, err error, successMsg string) {
	if err != nil {
		middleware.PushFlash(w, r, middleware.FlashDanger, err.Error())
	} else {
		middleware.PushFlash(w, r, middleware.FlashSuccess, successMsg)
	}
	http.Redirect(w, r, "/admin/panel", http.StatusSeeOther)
}

// handleAdminCreateStudent handles POST /admin/students.
func handleAdminCreateStudent(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	_, err := orchestrators.ExecuteCreateStudentCard(r.Context(), orchestrators.CreateStudentCardInput{
		CardNumber: r.FormValue("card_number"),
		Name:       r.FormValue("name"),
		Department: r.FormValue("department"),
	}, orchestrators.CreateStudentCardDeps{
		CardStore:  stores.CardStore,
		GenerateID: generateID,
		Now:        timeNow,
	})
	redirectPanel(w, r, err, "Student card created.")
}

// handleAdminSetStudentActive handles POST /admin/students/activate and
// /admin/students/deactivate.
func handleAdminSetStudentActive(active bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		err := orchestrators.ExecuteSetStudentCardActive(r.Context(), orchestrators.SetStudentCardActiveInput{
			CardID: r.FormValue("card_id"),
			Active: active,
		}, orchestrators.SetStudentCardActiveDeps{
			CardStore: stores.CardStore,
		})
		msg := "Student card deactivated."
		if active {
			msg = "Student card activated."
		}
		redirectPanel(w, r, err, msg)
	}
}

// handleAdminCreateCourse handles POST /admin/courses.
func handleAdminCreateCourse(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	_, err := orchestrators.ExecuteCreateCourse(r.Context(), orchestrators.CreateCourseInput{
		Code:       r.FormValue("code"),
		TitleAR:    r.FormValue("title_ar"),
		TitleEN:    r.FormValue("title_en"),
		Department: r.FormValue("department"),
		IsGeneral:  r.FormValue("is_general") == "on",
	}, orchestrators.CreateCourseDeps{
		CourseStore: stores.CourseStore,
		GenerateID:  generateID,
	})
	redirectPanel(w, r, err, "Course created.")
}

// handleAdminCreateSemester handles POST /admin/semesters.
func handleAdminCreateSemester(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	_, err := orchestrators.ExecuteCreateSemester(r.Context(), orchestrators.CreateSemesterInput{
		Name: r.FormValue("name"),
	}, orchestrators.CreateSemesterDeps{
		SemesterStore: stores.SemesterStore,
		GenerateID:    generateID,
	})
	redirectPanel(w, r, err, "Semester created.")
}

// handleAdminRecordResult handles POST /admin/results.
func handleAdminRecordResult(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	_, err := orchestrators.ExecuteRecordResult(r.Context(), orchestrators.RecordResultInput{
		StudentID:  r.FormValue("student_id"),
		CourseID:   r.FormValue("course_id"),
		SemesterID: r.FormValue("semester_id"),
		Grade:      r.FormValue("grade"),
	}, orchestrators.RecordResultDeps{
		ResultStore: stores.ResultStore,
		GenerateID:  generateID,
		Now:         timeNow,
	})
	redirectPanel(w, r, err, "Result recorded.")
}

// handleAdminCreateSchedule handles POST /admin/schedule.
func handleAdminCreateSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	_, err := orchestrators.ExecuteCreateScheduleEntry(r.Context(), orchestrators.CreateScheduleEntryInput{
		Department: r.FormValue("department"),
		Day:        r.FormValue("day"),
		TimeFrom:   r.FormValue("time_from"),
		TimeTo:     r.FormValue("time_to"),
		Room:       r.FormValue("room"),
		CourseID:   r.FormValue("course_id"),
	}, orchestrators.CreateScheduleEntryDeps{
		ScheduleStore: stores.ScheduleStore,
		CourseStore:   stores.CourseStore,
		GenerateID:    generateID,
	})
	redirectPanel(w, r, err, "Schedule entry created.")
}

// handleAdminCreateNews handles POST /admin/news.
func handleAdminCreateNews(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	_, err := orchestrators.ExecuteCreateNews(r.Context(), orchestrators.CreateNewsInput{
		TitleAR:   r.FormValue("title_ar"),
		ContentAR: r.FormValue("content_ar"),
		TitleEN:   r.FormValue("title_en"),
		ContentEN: r.FormValue("content_en"),
		Published: r.FormValue("published") == "on",
	}, orchestrators.CreateNewsDeps{
		NewsStore:  stores.NewsStore,
		GenerateID: generateID,
		Now:        timeNow,
	})
	redirectPanel(w, r, err, "News item created.")
}

// handleAdminSetNewsPublished handles POST /admin/news/publish and
// /admin/news/unpublish.
func handleAdminSetNewsPublished(published bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		err := orchestrators.ExecuteSetNewsPublished(r.Context(), orchestrators.SetNewsPublishedInput{
			NewsID:    r.FormValue("news_id"),
			Published: published,
		}, orchestrators.SetNewsPublishedDeps{
			NewsStore: stores.NewsStore,
		})
		msg := "News item unpublished."
		if published {
			msg = "News item published."
		}
		redirectPanel(w, r, err, msg)
	}
}
