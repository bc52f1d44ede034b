// Copyright (c) 2025 Capstone Expo Grading.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// gradectl is the operational companion to the grading server: one-time
// schema setup, the legacy password-hash backfill, and a terminal standings
// report. The old install exposed setup and migration as web pages that had
// to be deleted after use; a CLI never ships to the browser in the first
// place.
package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/olekukonko/tablewriter"

	"github.com/capstone-expo/grading-server/cliparse"
	"github.com/capstone-expo/grading-server/db"
	"github.com/capstone-expo/grading-server/models"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: gradectl <command> [flags]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  setup              Create tables and seed default accounts")
	fmt.Fprintln(os.Stderr, "  migrate-passwords  Hash any plaintext passwords left by old installs")
	fmt.Fprintln(os.Stderr, "  report             Print group standings and overall stats")
	os.Exit(2)
}

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage()
	}
	command := os.Args[1]

	cfg, err := cliparse.ParseFlags(os.Args[2:])
	if err != nil {
		color.Red("Error parsing flags: %v", err)
		os.Exit(1)
	}

	conn, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		color.Red("Could not open database: %v", err)
		os.Exit(1)
	}
	defer conn.Close()

	if err := conn.Ping(); err != nil {
		color.Red("Could not connect to database: %v", err)
		os.Exit(1)
	}

	switch command {
	case "setup":
		runSetup(conn)
	case "migrate-passwords":
		runMigrate(conn)
	case "report":
		runReport(conn)
	default:
		color.Red("Unknown command: %s", command)
		usage()
	}
}

func runSetup(conn *sql.DB) {
	color.Cyan("=== Database Setup ===")

	if err := db.CreateSchema(conn); err != nil {
		color.Red("✗ Error creating tables: %v", err)
		os.Exit(1)
	}
	color.Green("✓ users and grades tables ready")

	created, err := db.SeedUsers(conn)
	if err != nil {
		color.Red("✗ Error seeding users: %v", err)
		os.Exit(1)
	}
	if created == 0 {
		color.Yellow("Users already exist, skipping user creation")
	} else {
		color.Green("✓ Seeded %d default accounts (judge1-judge4, admin)", created)
		color.Yellow("Change the default passwords before the event!")
	}

	color.Green("\nDatabase setup complete.")
}

func runMigrate(conn *sql.DB) {
	color.Cyan("=== Password Migration ===")

	updated, skipped, err := db.MigratePasswords(conn)
	if err != nil {
		color.Red("✗ Migration failed: %v", err)
		os.Exit(1)
	}

	color.Green("✓ Migration complete")
	fmt.Printf("Updated: %d users\n", updated)
	fmt.Printf("Skipped: %d users (already hashed)\n", skipped)
}

func runReport(conn *sql.DB) {
	rows, err := conn.Query(`
		SELECT group_number,
		       MIN(project_title) AS project_title,
		       AVG(total) AS average_grade,
		       COUNT(*) AS num_judges
		FROM grades
		GROUP BY group_number
		ORDER BY group_number
	`)
	if err != nil {
		color.Red("Error loading standings: %v", err)
		os.Exit(1)
	}
	defer rows.Close()

	color.Yellow("\nGroup Standings")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Group", "Project", "Judges", "Average", "Percent"})

	groups := 0
	for rows.Next() {
		var s models.GroupSummary
		if err := rows.Scan(&s.GroupNumber, &s.ProjectTitle, &s.AverageGrade, &s.NumJudges); err != nil {
			color.Red("Error scanning row: %v", err)
			os.Exit(1)
		}

		percent := fmt.Sprintf("%.1f%%", s.Percentage())
		if s.Accomplished() {
			percent = color.GreenString(percent)
		}

		table.Append([]string{
			s.GroupNumber,
			s.ProjectTitle,
			fmt.Sprintf("%d", s.NumJudges),
			fmt.Sprintf("%.1f", s.AverageGrade),
			percent,
		})
		groups++
	}
	if err := rows.Err(); err != nil {
		color.Red("Error reading standings: %v", err)
		os.Exit(1)
	}

	if groups == 0 {
		color.Yellow("No grades submitted yet.")
		return
	}
	table.Render()

	var stats models.OverallStats
	err = conn.QueryRow(`
		SELECT COUNT(DISTINCT group_number), COUNT(*), COALESCE(AVG(total), 0)
		FROM grades
	`).Scan(&stats.TotalGroups, &stats.TotalGrades, &stats.OverallAvg)
	if err != nil {
		color.Red("Error loading overall stats: %v", err)
		os.Exit(1)
	}

	color.Cyan("\nGroups: %d  Grades: %d  Overall average: %.1f/%d",
		stats.TotalGroups, stats.TotalGrades, stats.OverallAvg, models.MaxTotal)
}
