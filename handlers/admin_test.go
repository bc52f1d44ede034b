package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/capstone-expo/grading-server/models"
	"github.com/capstone-expo/grading-server/sessions"
	"github.com/capstone-expo/grading-server/testutil"
)

func TestDashboardEmpty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	store := sessions.NewStore(time.Hour)
	handler := NewAdminHandler(db, store)

	req := testutil.MakeFormRequest("GET", "/admin", nil)
	testutil.WithSession(req, store, "admin", models.RoleAdmin)

	w := httptest.NewRecorder()
	handler.Dashboard(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	// Zero grades renders the placeholder and zeroed stats, never an error.
	testutil.AssertBodyContains(t, w, "No grades submitted yet.")
	testutil.AssertBodyContains(t, w, "0.0")
	if body := w.Body.String(); body == "" {
		t.Fatal("Expected a rendered page")
	}
}

func TestDashboardAggregates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	// Two judges score group 7: totals 50 and 58 -> average 54, count 2.
	testutil.InsertTestGrade(t, db, "7", "judge1", [4]int{12, 13, 11, 14})
	testutil.InsertTestGrade(t, db, "7", "judge2", [4]int{15, 15, 14, 14})
	// Group 3 gets one perfect score.
	testutil.InsertTestGrade(t, db, "3", "judge1", [4]int{15, 15, 15, 15})

	store := sessions.NewStore(time.Hour)
	handler := NewAdminHandler(db, store)

	groups, err := handler.queryGroupSummaries()
	if err != nil {
		t.Fatalf("queryGroupSummaries failed: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(groups))
	}
	// Ordered by group number: "3" before "7".
	if groups[0].GroupNumber != "3" || groups[1].GroupNumber != "7" {
		t.Errorf("Expected groups [3 7], got [%s %s]", groups[0].GroupNumber, groups[1].GroupNumber)
	}
	if groups[1].AverageGrade != 54 {
		t.Errorf("Expected group 7 average 54, got %f", groups[1].AverageGrade)
	}
	if groups[1].NumJudges != 2 {
		t.Errorf("Expected 2 judges for group 7, got %d", groups[1].NumJudges)
	}
	if !groups[1].Accomplished() {
		t.Error("90 percent average should be highlighted")
	}

	stats, err := handler.queryOverallStats()
	if err != nil {
		t.Fatalf("queryOverallStats failed: %v", err)
	}
	if stats.TotalGroups != 2 || stats.TotalGrades != 3 {
		t.Errorf("Expected 2 groups / 3 grades, got %d / %d", stats.TotalGroups, stats.TotalGrades)
	}
	if stats.OverallAvg != 56 { // (50+58+60)/3
		t.Errorf("Expected overall average 56, got %f", stats.OverallAvg)
	}

	grades, err := handler.queryAllGrades()
	if err != nil {
		t.Fatalf("queryAllGrades failed: %v", err)
	}
	if len(grades) != 3 {
		t.Fatalf("Expected 3 grade rows, got %d", len(grades))
	}
	// Ordered by group then judge.
	if grades[0].GroupNumber != "3" || grades[1].JudgeName != "judge1" || grades[2].JudgeName != "judge2" {
		t.Errorf("Unexpected listing order: %v", grades)
	}
}

func TestDashboardHighlightThreshold(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	// A single total of 50 is 83.3% - below the 85% highlight line.
	testutil.InsertTestGrade(t, db, "7", "judge1", [4]int{12, 13, 11, 14})

	store := sessions.NewStore(time.Hour)
	handler := NewAdminHandler(db, store)

	req := testutil.MakeFormRequest("GET", "/admin", nil)
	testutil.WithSession(req, store, "admin", models.RoleAdmin)

	w := httptest.NewRecorder()
	handler.Dashboard(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertBodyContains(t, w, "83.3%")
	testutil.AssertBodyContains(t, w, "score-blue")
}

func TestDashboardDegradesOnQueryFailure(t *testing.T) {
	db := testutil.SetupTestDB(t)

	store := sessions.NewStore(time.Hour)
	handler := NewAdminHandler(db, store)

	db.Close()

	req := testutil.MakeFormRequest("GET", "/admin", nil)
	testutil.WithSession(req, store, "admin", models.RoleAdmin)

	w := httptest.NewRecorder()
	handler.Dashboard(w, req)

	// The page still renders, with banners and zeroed stats.
	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertBodyContains(t, w, msgStatsUnavailable)
	testutil.AssertBodyContains(t, w, `<div class="stat-value">0</div>`)
}

