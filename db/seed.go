// Copyright (c) 2025 Capstone Expo Grading.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	"github.com/capstone-expo/grading-server/auth"
	"github.com/capstone-expo/grading-server/models"
)

// Default accounts for a fresh install. Passwords are hashed at insert time;
// operators are expected to change them before the event.
var seedUsers = []struct {
	Username string
	Password string
	Role     models.Role
}{
	{"judge1", "123", models.RoleJudge},
	{"judge2", "123", models.RoleJudge},
	{"judge3", "123", models.RoleJudge},
	{"judge4", "123", models.RoleJudge},
	{"admin", "123", models.RoleAdmin},
}

// SeedUsers inserts the default accounts when the users table is empty.
// Returns the number of accounts created; zero means seeding was skipped
// because users already exist, so calling this on every startup is safe.
func SeedUsers(db *sql.DB) (int, error) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	created := 0
	for _, u := range seedUsers {
		hash, err := auth.HashPassword(u.Password)
		if err != nil {
			return created, err
		}
		_, err = db.Exec(`
			INSERT INTO users (username, password, role)
			VALUES ($1, $2, $3)
		`, u.Username, hash, u.Role)
		if err != nil {
			return created, fmt.Errorf("failed to seed user %s: %w", u.Username, err)
		}
		created++
	}

	return created, nil
}
