package web

import (
	"bytes"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"portal/internal/adapters/http/middleware"
	"portal/internal/application/orchestrators"
	"portal/internal/application/projections"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), so news
// bodies cannot inject markup.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// generateID creates a new UUID string.
func generateID() string {
	return uuid.New().String()
}

// internalError logs the real error and returns a generic message to the
// client so internal details never leak.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

const templatesDir = "internal/adapters/http/templates"

func isHTMLRequest(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html") || strings.Contains(accept, "application/xhtml+xml")
}

func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data map[string]any) {
	sess, _ := middleware.GetSessionFromContext(r.Context())

	lang := sess.Lang
	if lang == "" {
		lang = "ar"
	}
	if l, ok := data["Lang"].(string); ok && l != "" {
		lang = l
	}

	funcMap := template.FuncMap{
		"csrfToken":          func() string { return csrf.Token(r) },
		"isStudent":          func() bool { return sess.IsStudent() },
		"isAdmin":            func() bool { return sess.Admin },
		"currentStudentName": func() string { return sess.StudentName },
		"lang":               func() string { return lang },
		"isArabic":           func() bool { return lang != "en" },
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
	}

	if data == nil {
		data = map[string]any{}
	}
	data["Flashes"] = middleware.PopFlashes(w, r)
	data["Lang"] = lang

	layoutPath := filepath.Join(templatesDir, "layout.html")
	pagePath := filepath.Join(templatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
}

// requireStudent enforces the student auth gate. On a missing student track
// it queues a warning flash, redirects to the login page, and returns
// ok=false so the protected page is never rendered.
func requireStudent(w http.ResponseWriter, r *http.Request) (middleware.Session, bool) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok || !sess.IsStudent() {
		middleware.PushFlash(w, r, middleware.FlashWarning, "You need to log in with your card number.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return middleware.Session{}, false
	}
	return sess, true
}

// handleHome handles GET /, the public home page with published news.
func handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang = "ar"
	}

	items, err := projections.QueryGetHomeNews(r.Context(), projections.GetHomeNewsDeps{
		NewsStore: stores.NewsStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "home.html", map[string]any{
			"News": items,
			"Lang": lang,
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

// handleStudentLogin handles GET (form) and POST (authenticate) for /login.
func handleStudentLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		// If already logged in, go straight to the dashboard
		if middleware.IsStudent(r.Context()) {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		renderTemplate(w, r, "login.html", map[string]any{
			"CSRFToken": csrf.Token(r),
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		input := orchestrators.StudentLoginInput{
			CardNumber: r.FormValue("card_number"),
			Lang:       r.FormValue("lang"),
		}
		deps := orchestrators.StudentLoginDeps{
			CardStore: stores.CardStore,
		}

		result, err := orchestrators.ExecuteStudentLogin(r.Context(), input, deps)
		if err != nil {
			middleware.PushFlash(w, r, middleware.FlashDanger, err.Error())
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		// Drop any prior session entirely before establishing the student
		// identity: a fresh token defends against fixation and a stale
		// admin flag never survives a student login.
		if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil {
			sessions.Delete(cookie.Value)
		}
		token, err := sessions.Create(middleware.Session{
			StudentID:   result.StudentID,
			StudentName: result.StudentName,
			Lang:        result.Lang,
		})
		if err != nil {
			http.Error(w, "Session error", http.StatusInternalServerError)
			return
		}
		middleware.SetSessionCookie(w, token)

		middleware.PushFlash(w, r, middleware.FlashSuccess, "Logged in.")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleDashboard handles GET /dashboard, results grouped by semester.
func handleDashboard(w http.ResponseWriter, r *http.Request) {
	serveResultsPage(w, r, "dashboard.html")
}

// handleMyResults handles GET /my/results. It shows the same semester
// grouping as the dashboard, addressable on its own.
func handleMyResults(w http.ResponseWriter, r *http.Request) {
	serveResultsPage(w, r, "my_results.html")
}

func serveResultsPage(w http.ResponseWriter, r *http.Request, templateName string) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	sess, ok := requireStudent(w, r)
	if !ok {
		return
	}

	query := projections.GetResultsBySemesterQuery{StudentID: sess.StudentID}
	deps := projections.GetResultsBySemesterDeps{
		CardStore:     stores.CardStore,
		ResultStore:   stores.ResultStore,
		SemesterStore: stores.SemesterStore,
		CourseStore:   stores.CourseStore,
	}

	result, err := projections.QueryGetResultsBySemester(r.Context(), query, deps)
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, templateName, map[string]any{
			"Card":   result.Card,
			"Groups": result.Groups,
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// handleMySchedule handles GET /my/schedule, the department schedule.
func handleMySchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	sess, ok := requireStudent(w, r)
	if !ok {
		return
	}

	query := projections.GetMyScheduleQuery{StudentID: sess.StudentID}
	deps := projections.GetMyScheduleDeps{
		CardStore:     stores.CardStore,
		ScheduleStore: stores.ScheduleStore,
		CourseStore:   stores.CourseStore,
	}

	result, err := projections.QueryGetMySchedule(r.Context(), query, deps)
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "my_schedule.html", map[string]any{
			"Card": result.Card,
			"Rows": result.Rows,
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// handleLogout handles GET /logout. It clears all session state, both the
// student and admin tracks, and is safe to hit twice in a row.
func handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil {
		sessions.Delete(cookie.Value)
	}
	middleware.ClearSessionCookie(w)
	middleware.PushFlash(w, r, middleware.FlashSuccess, "Logged out.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
