package web

import "net/http"

// registerRoutes wires every route onto the mux. Student pages enforce
// their own gate via requireStudent; admin pages are wrapped by adminOnly.
func registerRoutes(mux *http.ServeMux) {
	// Public
	mux.HandleFunc("/", handleHome)
	mux.HandleFunc("/login", handleStudentLogin)

	// Student
	mux.HandleFunc("/dashboard", handleDashboard)
	mux.HandleFunc("/my/results", handleMyResults)
	mux.HandleFunc("/my/schedule", handleMySchedule)
	mux.HandleFunc("/logout", handleLogout)

	// Admin
	mux.HandleFunc("/admin/login", handleAdminLogin)
	mux.HandleFunc("/admin/panel", adminOnly(handleAdminPanel))
	mux.HandleFunc("/admin/logout", handleAdminLogout)
	mux.HandleFunc("/admin/students", adminOnly(handleAdminCreateStudent))
	mux.HandleFunc("/admin/students/activate", adminOnly(handleAdminSetStudentActive(true)))
	mux.HandleFunc("/admin/students/deactivate", adminOnly(handleAdminSetStudentActive(false)))
	mux.HandleFunc("/admin/courses", adminOnly(handleAdminCreateCourse))
	mux.HandleFunc("/admin/semesters", adminOnly(handleAdminCreateSemester))
	mux.HandleFunc("/admin/results", adminOnly(handleAdminRecordResult))
	mux.HandleFunc("/admin/schedule", adminOnly(handleAdminCreateSchedule))
	mux.HandleFunc("/admin/news", adminOnly(handleAdminCreateNews))
	mux.HandleFunc("/admin/news/publish", adminOnly(handleAdminSetNewsPublished(true)))
	mux.HandleFunc("/admin/news/unpublish", adminOnly(handleAdminSetNewsPublished(false)))
}
