// Copyright (c) 2025 Capstone Expo Grading.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sessions

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/capstone-expo/grading-server/models"
)

// CookieName is the session cookie set after a successful login.
const CookieName = "grading_session"

// Session carries the two facts the rest of the app needs about a request:
// who is acting and what they may do.
type Session struct {
	Username  string
	Role      models.Role
	ExpiresAt time.Time
}

// Store is an in-memory session store. Sessions do not survive a restart,
// which forces a clean re-login after a deploy.
type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]Session
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:      ttl,
		sessions: make(map[string]Session),
	}
}

// Create registers a new session and returns its ID.
func (s *Store) Create(username string, role models.Role) string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = Session{
		Username:  username,
		Role:      role,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	return id
}

// Get looks up a session by ID. Expired sessions are removed on access.
func (s *Store) Get(id string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, false
	}
	if time.Now().After(sess.ExpiresAt) {
		delete(s.sessions, id)
		return Session{}, false
	}
	return sess, true
}

// Destroy removes a session. Destroying an unknown ID is a no-op.
func (s *Store) Destroy(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// FromRequest resolves the session referenced by the request's cookie.
func (s *Store) FromRequest(r *http.Request) (Session, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return Session{}, false
	}
	return s.Get(cookie.Value)
}

// SetCookie attaches the session cookie to a response.
func (s *Store) SetCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie on the client.
func (s *Store) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
