// Copyright (c) 2025 Capstone Expo Grading.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	"github.com/capstone-expo/grading-server/auth"
)

// MigratePasswords rewrites any plaintext password column values into bcrypt
// hashes. Rows that already carry a bcrypt prefix are skipped, so running
// this twice is harmless. Returns how many rows were updated and skipped.
//
// This exists for databases created by older installs that stored seed
// passwords in the clear; fresh installs hash at seed time and never need it.
func MigratePasswords(db *sql.DB) (updated, skipped int, err error) {
	rows, err := db.Query(`SELECT id, password FROM users`)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to fetch users: %w", err)
	}
	defer rows.Close()

	type pending struct {
		id       int
		password string
	}
	var plaintext []pending

	for rows.Next() {
		var p pending
		if err := rows.Scan(&p.id, &p.password); err != nil {
			return 0, 0, fmt.Errorf("failed to scan user: %w", err)
		}
		if auth.IsBcryptHash(p.password) {
			skipped++
			continue
		}
		plaintext = append(plaintext, p)
	}
	if err := rows.Err(); err != nil {
		return 0, skipped, fmt.Errorf("failed to iterate users: %w", err)
	}

	for _, p := range plaintext {
		hash, err := auth.HashPassword(p.password)
		if err != nil {
			return updated, skipped, err
		}
		if _, err := db.Exec(`UPDATE users SET password = $1 WHERE id = $2`, hash, p.id); err != nil {
			return updated, skipped, fmt.Errorf("failed to update user %d: %w", p.id, err)
		}
		updated++
	}

	return updated, skipped, nil
}
