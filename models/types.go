package models

import "time"

// Role identifies what an authenticated user is allowed to do.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleJudge Role = "judge"
)

// Rubric bounds
const (
	CriterionMin = 0
	CriterionMax = 15
	MaxTotal     = 60

	// Groups at or above this percentage get the highlight color on the
	// admin dashboard.
	HighlightPercent = 85.0
)

type User struct {
	ID           int
	Username     string
	PasswordHash string `json:"-"` // Never expose
	Role         Role
}

type Grade struct {
	ID                int
	GroupMembers      string
	ProjectTitle      string
	GroupNumber       string
	ArticulateReq     int
	ChooseTools       int
	ClearPresentation int
	FunctionedTeam    int
	Total             int
	JudgeName         string
	Comments          string
	CreatedAt         time.Time
}

// Percentage returns the grade's total as a share of the 60-point maximum.
func (g Grade) Percentage() float64 {
	return float64(g.Total) / MaxTotal * 100
}

// Accomplished reports whether the grade clears the highlight threshold.
func (g Grade) Accomplished() bool {
	return g.Percentage() >= HighlightPercent
}

// GradeForm holds the raw form values of a submission so a failed attempt
// can be re-rendered without losing anything the judge typed.
type GradeForm struct {
	GroupMembers      string
	ProjectTitle      string
	GroupNumber       string
	ArticulateReq     string
	ChooseTools       string
	ClearPresentation string
	FunctionedTeam    string
	Comments          string
}

// GroupSummary is one row of the per-group rollup on the admin dashboard.
type GroupSummary struct {
	GroupNumber  string
	GroupMembers string
	ProjectTitle string
	AverageGrade float64
	NumJudges    int
}

func (s GroupSummary) Percentage() float64 {
	return s.AverageGrade / MaxTotal * 100
}

func (s GroupSummary) Accomplished() bool {
	return s.Percentage() >= HighlightPercent
}

// OverallStats is the global rollup shown in the dashboard stat cards.
// Zero values stand in for "no grades yet".
type OverallStats struct {
	TotalGroups int
	TotalGrades int
	OverallAvg  float64
}
