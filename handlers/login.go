// Copyright (c) 2025 Capstone Expo Grading.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/capstone-expo/grading-server/auth"
	"github.com/capstone-expo/grading-server/models"
	"github.com/capstone-expo/grading-server/sessions"
	"github.com/capstone-expo/grading-server/templates"
)

// User-facing messages. The invalid-credentials message is shared by
// "no such user" and "wrong password" so login cannot enumerate usernames.
// The unavailable message is deliberately different: a backend failure is
// not the user's fault and must not read like one.
const (
	msgInvalidCredentials = "Invalid credentials!"
	msgLoginUnavailable   = "Login service temporarily unavailable. Please try again."
)

type LoginHandler struct {
	db    *sql.DB
	store *sessions.Store
}

func NewLoginHandler(db *sql.DB, store *sessions.Store) *LoginHandler {
	return &LoginHandler{db: db, store: store}
}

type loginData struct {
	Error string
}

// ShowLogin handles GET /login
func (h *LoginHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, http.StatusOK, "login.html", loginData{})
}

// Login handles POST /login
func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		templates.Render(w, http.StatusBadRequest, "login.html", loginData{Error: msgInvalidCredentials})
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		templates.Render(w, http.StatusUnauthorized, "login.html", loginData{Error: msgInvalidCredentials})
		return
	}

	var user models.User
	err := h.db.QueryRow(`
		SELECT id, username, password, role FROM users WHERE username = $1
	`, username).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Role)

	if err == sql.ErrNoRows {
		// Same message as a wrong password
		templates.Render(w, http.StatusUnauthorized, "login.html", loginData{Error: msgInvalidCredentials})
		return
	}
	if err != nil {
		// Backend failure is NOT "invalid credentials" - conflating the two
		// hides outages behind a message that blames the user.
		slog.Error("failed to query user", "error", err)
		templates.Render(w, http.StatusServiceUnavailable, "login.html", loginData{Error: msgLoginUnavailable})
		return
	}

	if err := auth.VerifyPassword(user.PasswordHash, password); err != nil {
		templates.Render(w, http.StatusUnauthorized, "login.html", loginData{Error: msgInvalidCredentials})
		return
	}

	id := h.store.Create(user.Username, user.Role)
	h.store.SetCookie(w, id)

	slog.Info("login succeeded", "username", user.Username, "role", user.Role)

	if user.Role == models.RoleAdmin {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
	} else {
		http.Redirect(w, r, "/grade", http.StatusSeeOther)
	}
}

// Logout handles GET /logout
func (h *LoginHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessions.CookieName); err == nil {
		h.store.Destroy(cookie.Value)
	}
	h.store.ClearCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
