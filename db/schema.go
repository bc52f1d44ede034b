// Copyright (c) 2025 Capstone Expo Grading.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Accounts for judges and the admin
CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    username VARCHAR(50) UNIQUE NOT NULL,
    password VARCHAR(255) NOT NULL,
    role VARCHAR(20) NOT NULL
);

-- One row per judge per submission; immutable after insert
CREATE TABLE IF NOT EXISTS grades (
    id SERIAL PRIMARY KEY,
    group_members TEXT NOT NULL,
    project_title VARCHAR(255) NOT NULL,
    group_number VARCHAR(50) NOT NULL,
    articulate_req INT NOT NULL,
    choose_tools INT NOT NULL,
    clear_presentation INT NOT NULL,
    functioned_team INT NOT NULL,
    total INT NOT NULL,
    judge_name VARCHAR(100) NOT NULL,
    comments TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_grades_group_number ON grades(group_number);
CREATE INDEX IF NOT EXISTS idx_grades_judge_name ON grades(judge_name);
`
