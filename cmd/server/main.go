package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"

	web "portal/internal/adapters/http"
	"portal/internal/adapters/storage"
	courseStore "portal/internal/adapters/storage/course"
	newsStore "portal/internal/adapters/storage/news"
	resultStore "portal/internal/adapters/storage/result"
	scheduleStore "portal/internal/adapters/storage/schedule"
	semesterStore "portal/internal/adapters/storage/semester"
	cardStore "portal/internal/adapters/storage/studentcard"
	"portal/internal/application/orchestrators"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Optional .env for local development; real deployments set env vars.
	_ = godotenv.Load()

	// Initialize database with WAL mode, foreign keys, and busy timeout
	dbPath := envOrDefault("PORTAL_DB", "portal.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	// Health check
	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	// Create tables if absent
	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	log.Println("Database initialized successfully!")

	stores := &web.Stores{
		CardStore:     cardStore.NewSQLiteStore(db),
		CourseStore:   courseStore.NewSQLiteStore(db),
		SemesterStore: semesterStore.NewSQLiteStore(db),
		ResultStore:   resultStore.NewSQLiteStore(db),
		ScheduleStore: scheduleStore.NewSQLiteStore(db),
		NewsStore:     newsStore.NewSQLiteStore(db),
	}

	// Admin credentials: loaded once, immutable for the process lifetime.
	// The password is only ever held as a bcrypt hash.
	adminUser := envOrDefault("PORTAL_ADMIN_USER", "admin")
	adminHash := os.Getenv("PORTAL_ADMIN_PW_HASH")
	if adminHash == "" {
		fallback, err := bcrypt.GenerateFromPassword([]byte("adminpass"), 12)
		if err != nil {
			log.Fatalf("failed to hash fallback admin password: %v", err)
		}
		adminHash = string(fallback)
		log.Println("WARNING: PORTAL_ADMIN_PW_HASH is not set, using the default admin password. Set a real hash before going live.")
	}
	web.SetAdminCredentials(orchestrators.AdminCredentials{
		Username:     adminUser,
		PasswordHash: adminHash,
	})

	// Seed demo data for development only
	if os.Getenv("PORTAL_ENV") != "production" {
		seedDeps := orchestrators.DemoSeedDeps{
			CardStore:     stores.CardStore,
			CourseStore:   stores.CourseStore,
			SemesterStore: stores.SemesterStore,
			ResultStore:   stores.ResultStore,
			ScheduleStore: stores.ScheduleStore,
			NewsStore:     stores.NewsStore,
		}
		if err := orchestrators.ExecuteSeedDemo(context.Background(), seedDeps); err != nil {
			log.Fatalf("failed to seed demo data: %v", err)
		}
		log.Println("Demo seed data loaded (dev mode)")
	}

	// Create HTTP handler with middleware
	mux := web.NewMux("static", stores)

	// Start server
	addr := envOrDefault("PORTAL_ADDR", ":8080")
	log.Printf("Portal %s starting on %s (env=%s)", version, addr, envOrDefault("PORTAL_ENV", "development"))

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
