// Copyright (c) 2025 Capstone Expo Grading.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/capstone-expo/grading-server/models"
	"github.com/capstone-expo/grading-server/sessions"
	"github.com/capstone-expo/grading-server/templates"
)

const msgStatsUnavailable = "Unable to load statistics. Data may be temporarily unavailable."

type AdminHandler struct {
	db    *sql.DB
	store *sessions.Store
}

func NewAdminHandler(db *sql.DB, store *sessions.Store) *AdminHandler {
	return &AdminHandler{db: db, store: store}
}

type adminData struct {
	Stats       models.OverallStats
	StatsError  string
	Groups      []models.GroupSummary
	GroupsError string
	Grades      []models.Grade
	GradesError string
}

// Dashboard handles GET /admin. All three queries are read-only and take no
// user input. Each one degrades independently: a failed query shows an inline
// banner and zeroed data, but the page always renders.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	var data adminData

	groups, err := h.queryGroupSummaries()
	if err != nil {
		slog.Error("failed to query group summaries", "error", err)
		data.GroupsError = msgStatsUnavailable
	} else {
		data.Groups = groups
	}

	stats, err := h.queryOverallStats()
	if err != nil {
		slog.Error("failed to query overall stats", "error", err)
		data.StatsError = msgStatsUnavailable
		// Stats stay zeroed
	} else {
		data.Stats = stats
	}

	grades, err := h.queryAllGrades()
	if err != nil {
		slog.Error("failed to query grade listing", "error", err)
		data.GradesError = msgStatsUnavailable
	} else {
		data.Grades = grades
	}

	templates.Render(w, http.StatusOK, "admin.html", data)
}

// queryGroupSummaries is the per-group rollup. MIN() picks one representative
// group_members/project_title per group; if judges typed conflicting metadata
// for the same group, which value wins is arbitrary.
func (h *AdminHandler) queryGroupSummaries() ([]models.GroupSummary, error) {
	rows, err := h.db.Query(`
		SELECT group_number,
		       MIN(group_members) AS group_members,
		       MIN(project_title) AS project_title,
		       AVG(total) AS average_grade,
		       COUNT(*) AS num_judges
		FROM grades
		GROUP BY group_number
		ORDER BY group_number
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []models.GroupSummary
	for rows.Next() {
		var g models.GroupSummary
		if err := rows.Scan(&g.GroupNumber, &g.GroupMembers, &g.ProjectTitle,
			&g.AverageGrade, &g.NumJudges); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (h *AdminHandler) queryOverallStats() (models.OverallStats, error) {
	var stats models.OverallStats
	err := h.db.QueryRow(`
		SELECT COUNT(DISTINCT group_number) AS total_groups,
		       COUNT(*) AS total_grades,
		       COALESCE(AVG(total), 0) AS overall_avg
		FROM grades
	`).Scan(&stats.TotalGroups, &stats.TotalGrades, &stats.OverallAvg)
	return stats, err
}

func (h *AdminHandler) queryAllGrades() ([]models.Grade, error) {
	rows, err := h.db.Query(`
		SELECT id, group_members, project_title, group_number,
		       articulate_req, choose_tools, clear_presentation, functioned_team,
		       total, judge_name, comments, created_at
		FROM grades
		ORDER BY group_number, judge_name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grades []models.Grade
	for rows.Next() {
		var g models.Grade
		var comments sql.NullString
		if err := rows.Scan(&g.ID, &g.GroupMembers, &g.ProjectTitle, &g.GroupNumber,
			&g.ArticulateReq, &g.ChooseTools, &g.ClearPresentation, &g.FunctionedTeam,
			&g.Total, &g.JudgeName, &comments, &g.CreatedAt); err != nil {
			return nil, err
		}
		g.Comments = comments.String
		grades = append(grades, g)
	}
	return grades, rows.Err()
}
