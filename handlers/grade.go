// Copyright (c) 2025 Capstone Expo Grading.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/capstone-expo/grading-server/models"
	"github.com/capstone-expo/grading-server/sessions"
	"github.com/capstone-expo/grading-server/templates"
)

const (
	msgGradeSuccess  = "Grade submitted successfully!"
	msgMissingFields = "Please fill in all required fields."
	msgSubmitFailed  = "Unable to submit grade. Please check your connection and try again."
)

type GradeHandler struct {
	db    *sql.DB
	store *sessions.Store
}

func NewGradeHandler(db *sql.DB, store *sessions.Store) *GradeHandler {
	return &GradeHandler{db: db, store: store}
}

type gradeData struct {
	JudgeName string
	Success   string
	Error     string
	Form      models.GradeForm
}

// The four rubric criteria with their optional category companions. The
// category is a UI aid only and is never persisted.
var criteria = []struct {
	field    string
	category string
}{
	{"articulate_req", "articulate_category"},
	{"choose_tools", "tools_category"},
	{"clear_presentation", "presentation_category"},
	{"functioned_team", "team_category"},
}

// ShowForm handles GET /grade
func (h *GradeHandler) ShowForm(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.store.FromRequest(r)
	templates.Render(w, http.StatusOK, "grade.html", gradeData{JudgeName: sess.Username})
}

// Submit handles POST /grade
func (h *GradeHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.store.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		templates.Render(w, http.StatusBadRequest, "grade.html", gradeData{
			JudgeName: sess.Username,
			Error:     msgMissingFields,
		})
		return
	}

	// Capture every entered value first so no failure path loses them.
	form := models.GradeForm{
		GroupMembers:      r.PostFormValue("group_members"),
		ProjectTitle:      r.PostFormValue("project_title"),
		GroupNumber:       r.PostFormValue("group_number"),
		ArticulateReq:     r.PostFormValue("articulate_req"),
		ChooseTools:       r.PostFormValue("choose_tools"),
		ClearPresentation: r.PostFormValue("clear_presentation"),
		FunctionedTeam:    r.PostFormValue("functioned_team"),
		Comments:          r.PostFormValue("comments"),
	}
	data := gradeData{JudgeName: sess.Username, Form: form}

	scores, errMsg := validateSubmission(r, form)
	if errMsg != "" {
		data.Error = errMsg
		templates.Render(w, http.StatusBadRequest, "grade.html", data)
		return
	}

	// The total is computed here, never taken from the client.
	total := scores[0] + scores[1] + scores[2] + scores[3]

	// Judge identity comes from the session, never from the form.
	_, err := h.db.Exec(`
		INSERT INTO grades (group_members, project_title, group_number,
			articulate_req, choose_tools, clear_presentation, functioned_team,
			total, judge_name, comments)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, form.GroupMembers, form.ProjectTitle, form.GroupNumber,
		scores[0], scores[1], scores[2], scores[3],
		total, sess.Username, form.Comments)

	if err != nil {
		slog.Error("failed to insert grade", "error", err, "judge", sess.Username)
		data.Error = msgSubmitFailed
		templates.Render(w, http.StatusInternalServerError, "grade.html", data)
		return
	}

	slog.Info("grade submitted",
		"judge", sess.Username,
		"group", form.GroupNumber,
		"total", total,
	)

	data.Success = msgGradeSuccess
	templates.Render(w, http.StatusOK, "grade.html", data)
}

// validateSubmission checks presence of every field, the [0,15] range of each
// criterion, and category/score consistency when a category was supplied.
// Returns the four parsed scores in criteria order, or a user-facing message.
func validateSubmission(r *http.Request, form models.GradeForm) ([4]int, string) {
	var scores [4]int

	required := []string{
		"group_members", "project_title", "group_number",
		"articulate_req", "choose_tools", "clear_presentation",
		"functioned_team", "comments",
	}
	for _, field := range required {
		if !r.PostForm.Has(field) {
			return scores, msgMissingFields
		}
	}
	if form.GroupMembers == "" || form.ProjectTitle == "" || form.GroupNumber == "" {
		return scores, msgMissingFields
	}

	for i, c := range criteria {
		raw := r.PostFormValue(c.field)
		n, err := strconv.Atoi(raw)
		if err != nil || n < models.CriterionMin || n > models.CriterionMax {
			return scores, fmt.Sprintf("Each score must be a whole number between %d and %d.",
				models.CriterionMin, models.CriterionMax)
		}

		// The form may not be trusted to have enforced the sub-range.
		switch r.PostFormValue(c.category) {
		case "":
			// Category is optional.
		case "developing":
			if n < 1 || n > 10 {
				return scores, "Developing scores must be between 1 and 10."
			}
		case "accomplished":
			if n < 10 || n > 15 {
				return scores, "Accomplished scores must be between 10 and 15."
			}
		default:
			return scores, msgMissingFields
		}

		scores[i] = n
	}

	return scores, ""
}
