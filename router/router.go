// Copyright (c) 2025 Capstone Expo Grading.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/capstone-expo/grading-server/handlers"
	"github.com/capstone-expo/grading-server/middleware"
	"github.com/capstone-expo/grading-server/models"
	"github.com/capstone-expo/grading-server/sessions"
)

func NewRouter(db *sql.DB, store *sessions.Store) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	loginHandler := handlers.NewLoginHandler(db, store)
	gradeHandler := handlers.NewGradeHandler(db, store)
	adminHandler := handlers.NewAdminHandler(db, store)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Authentication
	mux.HandleFunc("GET /login", middleware.WithLogging(loginHandler.ShowLogin))
	mux.HandleFunc("POST /login", middleware.WithLogging(loginHandler.Login))
	mux.HandleFunc("GET /logout", middleware.WithLogging(loginHandler.Logout))

	// Grade submission (judges only)
	mux.HandleFunc("GET /grade", middleware.WithLogging(
		middleware.RequireRole(store, models.RoleJudge, gradeHandler.ShowForm)))
	mux.HandleFunc("POST /grade", middleware.WithLogging(
		middleware.RequireRole(store, models.RoleJudge, gradeHandler.Submit)))

	// Admin dashboard (read-only)
	mux.HandleFunc("GET /admin", middleware.WithLogging(
		middleware.RequireRole(store, models.RoleAdmin, adminHandler.Dashboard)))

	// Root redirects to login
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	})

	return mux
}
