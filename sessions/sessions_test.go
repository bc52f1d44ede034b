package sessions

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/capstone-expo/grading-server/models"
)

func TestCreateAndGet(t *testing.T) {
	store := NewStore(time.Hour)

	id := store.Create("judge1", models.RoleJudge)
	if id == "" {
		t.Fatal("Expected non-empty session ID")
	}

	sess, ok := store.Get(id)
	if !ok {
		t.Fatal("Expected session to exist")
	}
	if sess.Username != "judge1" {
		t.Errorf("Expected username judge1, got %q", sess.Username)
	}
	if sess.Role != models.RoleJudge {
		t.Errorf("Expected role judge, got %q", sess.Role)
	}
}

func TestGetUnknownID(t *testing.T) {
	store := NewStore(time.Hour)

	if _, ok := store.Get("no-such-session"); ok {
		t.Error("Expected miss for unknown session ID")
	}
}

func TestDistinctIDs(t *testing.T) {
	store := NewStore(time.Hour)

	a := store.Create("judge1", models.RoleJudge)
	b := store.Create("judge1", models.RoleJudge)
	if a == b {
		t.Error("Expected distinct IDs for separate logins")
	}
}

func TestDestroy(t *testing.T) {
	store := NewStore(time.Hour)

	id := store.Create("admin", models.RoleAdmin)
	store.Destroy(id)

	if _, ok := store.Get(id); ok {
		t.Error("Expected session to be gone after Destroy")
	}

	// Destroying again must not panic.
	store.Destroy(id)
}

func TestExpiry(t *testing.T) {
	// Negative TTL makes every session born expired.
	store := NewStore(-time.Second)

	id := store.Create("judge1", models.RoleJudge)
	if _, ok := store.Get(id); ok {
		t.Error("Expected expired session to be rejected")
	}

	// A second lookup should also miss (the entry was pruned).
	if _, ok := store.Get(id); ok {
		t.Error("Expected pruned session to stay gone")
	}
}

func TestFromRequest(t *testing.T) {
	store := NewStore(time.Hour)
	id := store.Create("judge2", models.RoleJudge)

	r := httptest.NewRequest("GET", "/grade", nil)
	if _, ok := store.FromRequest(r); ok {
		t.Error("Expected miss for request without cookie")
	}

	// Round-trip the cookie the way a browser would.
	w := httptest.NewRecorder()
	store.SetCookie(w, id)
	r.Header.Set("Cookie", w.Header().Get("Set-Cookie"))

	sess, ok := store.FromRequest(r)
	if !ok {
		t.Fatal("Expected session from cookie")
	}
	if sess.Username != "judge2" {
		t.Errorf("Expected username judge2, got %q", sess.Username)
	}
}

func TestClearCookie(t *testing.T) {
	store := NewStore(time.Hour)

	w := httptest.NewRecorder()
	store.ClearCookie(w)

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("Expected 1 cookie, got %d", len(cookies))
	}
	if cookies[0].MaxAge >= 0 {
		t.Errorf("Expected expired cookie, got MaxAge %d", cookies[0].MaxAge)
	}
}
