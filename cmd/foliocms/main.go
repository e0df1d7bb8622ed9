// cmd/foliocms/main.go - Entry point
package main

import (
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/noor-latif/foliocms/internal/ai"
	"github.com/noor-latif/foliocms/internal/handlers"
	"github.com/noor-latif/foliocms/internal/logger"
	"github.com/noor-latif/foliocms/internal/presets"
	"github.com/noor-latif/foliocms/internal/session"
	"github.com/noor-latif/foliocms/internal/state"
	"github.com/noor-latif/foliocms/internal/store"
)

func main() {
	_ = godotenv.Load() // no .env is fine, everything has defaults

	log, err := logger.New(getEnv("LOG_MODE", "development"))
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	// Config
	port := getEnv("PORT", "8080")
	dbPath := getEnv("DB_PATH", "data/foliocms.db")
	uploadDir := getEnv("UPLOAD_DIR", "web/static/uploads")
	staticDir := getEnv("STATIC_DIR", "web/static")
	sessionSecret := getEnv("SESSION_SECRET", "change-me-in-production")
	sessionTTL := getEnvInt("SESSION_TTL_MINUTES", 120)

	containerCfg := state.Config{
		Password:       getEnv("ADMIN_PASSWORD", "IamNerd"),
		PasswordHash:   os.Getenv("ADMIN_PASSWORD_HASH"),
		RecoveryAnswer: getEnv("ADMIN_RECOVERY_ANSWER", "pizza"),
	}
	if containerCfg.PasswordHash != "" {
		// Hash mode disables the plaintext recovery flow
		containerCfg.Password = ""
	}

	// Init database
	db, err := store.New(dbPath)
	if err != nil {
		log.Fatal("init database", "error", err)
	}
	defer db.Close()
	log.Info("database ready", "path", dbPath)

	// State container, restored from the last persisted snapshot
	container := state.New(containerCfg)
	if snapshot, found, err := db.LoadSnapshot(); err != nil {
		log.Fatal("load snapshot", "error", err)
	} else if found {
		container.Restore(snapshot)
		log.Info("content restored from database")
	} else {
		log.Info("no persisted content, using defaults")
	}

	// Every content mutation is written back to the database
	container.Subscribe(func() {
		if err := db.SaveSnapshot(container.Snapshot()); err != nil {
			log.Error("persist snapshot", "error", err)
		}
	})

	// Presets
	catalog, err := presets.Load()
	if err != nil {
		log.Fatal("load preset catalogs", "error", err)
	}

	// Sessions, AI gateway, handlers
	sessions := session.New(sessionSecret, time.Duration(sessionTTL)*time.Minute)
	aiClient := ai.NewFromEnv(log)
	handler := handlers.New(log, container, db, sessions, aiClient, catalog, uploadDir, "/static/uploads")

	// Setup router
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	// Static files
	fs := http.FileServer(http.Dir(staticDir))
	r.Handle("/static/*", http.StripPrefix("/static/", fs))

	// Public routes
	r.Get("/health", handler.Health)
	r.Get("/api/portfolio", handler.GetPortfolio)
	r.Get("/api/presets", handler.GetPresets)
	r.Post("/api/contact", handler.SubmitContact)
	r.Post("/api/auth/login", handler.Login)
	r.Post("/api/auth/recover", handler.Recover)

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(handler.RequireAdmin)

		r.Post("/api/auth/logout", handler.Logout)

		r.Put("/api/admin/hero", handler.UpdateHero)
		r.Put("/api/admin/about", handler.UpdateAbout)
		r.Put("/api/admin/skills", handler.UpdateSkills)

		r.Post("/api/admin/experience", handler.CreateExperience)
		r.Put("/api/admin/experience/{id}", handler.UpdateExperience)
		r.Delete("/api/admin/experience/{id}", handler.DeleteExperience)

		r.Post("/api/admin/education", handler.CreateEducation)
		r.Put("/api/admin/education/{id}", handler.UpdateEducation)
		r.Delete("/api/admin/education/{id}", handler.DeleteEducation)

		r.Post("/api/admin/projects", handler.CreateProject)
		r.Put("/api/admin/projects/{id}", handler.UpdateProject)
		r.Delete("/api/admin/projects/{id}", handler.DeleteProject)

		r.Patch("/api/admin/theme", handler.PatchTheme)
		r.Patch("/api/admin/theme/colors", handler.PatchColors)
		r.Patch("/api/admin/theme/hero-background", handler.PatchHeroBackground)
		r.Patch("/api/admin/settings", handler.PatchSettings)

		r.Post("/api/admin/ai/headline", handler.GenerateHeadline)
		r.Post("/api/admin/ai/skills", handler.RecommendSkills)
		r.Post("/api/admin/ai/palette", handler.GeneratePalette)

		r.Post("/api/upload", handler.Upload)

		r.Get("/api/admin/submissions", handler.ListSubmissions)
		r.Get("/api/admin/export", handler.Export)
	})

	// CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: splitOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	// Start server
	addr := ":" + port
	log.Info("FolioCMS listening", "addr", addr)
	if err := http.ListenAndServe(addr, corsHandler); err != nil {
		log.Fatal("server error", "error", err)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return i
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
