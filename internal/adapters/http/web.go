package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"portal/internal/adapters/http/middleware"
	cardStore "portal/internal/adapters/storage/studentcard"
	courseStore "portal/internal/adapters/storage/course"
	newsStore "portal/internal/adapters/storage/news"
	resultStore "portal/internal/adapters/storage/result"
	scheduleStore "portal/internal/adapters/storage/schedule"
	semesterStore "portal/internal/adapters/storage/semester"
	"portal/internal/application/orchestrators"
)

// Stores holds all storage dependencies.
type Stores struct {
	CardStore     cardStore.Store
	CourseStore   courseStore.Store
	SemesterStore semesterStore.Store
	ResultStore   resultStore.Store
	ScheduleStore scheduleStore.Store
	NewsStore     newsStore.Store
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global session store instance
var sessions *middleware.SessionStore

// Admin credentials, loaded once at startup (set by SetAdminCredentials)
// and immutable for the process lifetime.
var adminCreds orchestrators.AdminCredentials

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// SetAdminCredentials sets the process-wide admin credential pair.
func SetAdminCredentials(creds orchestrators.AdminCredentials) {
	adminCreds = creds
}

// loadSecretKey reads the signing secret from PORTAL_SECRET_KEY (hex-encoded,
// 32 bytes). It signs both CSRF tokens and flash cookies. In production the
// key MUST be set; in development a random key is generated per startup.
func loadSecretKey() []byte {
	if keyHex := os.Getenv("PORTAL_SECRET_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("PORTAL_SECRET_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("PORTAL_ENV") == "production" {
		log.Fatal("PORTAL_SECRET_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate secret key: %v", err)
	}
	log.Println("WARNING: using random secret key (flash cookies won't survive restart). Set PORTAL_SECRET_KEY for production.")
	return key
}

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, s *Stores) http.Handler {
	stores = s
	sessions = middleware.NewSessionStore()
	middleware.SecureCookies = os.Getenv("PORTAL_ENV") == "production"

	secretKey := loadSecretKey()
	middleware.InitFlashCodec(secretKey)

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	registerRoutes(mux)

	// Rate limiter: configurable requests per second per IP
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	trustedOrigins := []string{"localhost:8080", "127.0.0.1:8080"}
	if host := os.Getenv("PORTAL_HOST"); host != "" {
		trustedOrigins = append(trustedOrigins, host)
	}

	// Apply middleware: SecurityHeaders -> CSRF -> Auth -> RateLimit -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(secretKey, trustedOrigins),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
	)
}
