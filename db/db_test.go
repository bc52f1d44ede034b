package db_test

import (
	"testing"

	"github.com/capstone-expo/grading-server/auth"
	"github.com/capstone-expo/grading-server/db"
	"github.com/capstone-expo/grading-server/models"
	"github.com/capstone-expo/grading-server/testutil"
)

func TestCreateSchemaIdempotent(t *testing.T) {
	conn := testutil.SetupTestDB(t) // already ran CreateSchema once
	defer conn.Close()

	// Running it again must be a no-op, not an error.
	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Second CreateSchema failed: %v", err)
	}

	for _, table := range []string{"users", "grades"} {
		var count int
		if err := conn.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&count); err != nil {
			t.Errorf("Table %s not usable after repeated setup: %v", table, err)
		}
	}
}

func TestSeedUsersIdempotent(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	created, err := db.SeedUsers(conn)
	if err != nil {
		t.Fatalf("SeedUsers failed: %v", err)
	}
	if created != 5 {
		t.Errorf("Expected 5 seeded users, got %d", created)
	}

	// Second run must not duplicate anyone.
	created, err = db.SeedUsers(conn)
	if err != nil {
		t.Fatalf("Second SeedUsers failed: %v", err)
	}
	if created != 0 {
		t.Errorf("Expected second seeding to skip, created %d", created)
	}

	var total int
	conn.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&total)
	if total != 5 {
		t.Errorf("Expected 5 users after two seed runs, got %d", total)
	}

	// Seeded passwords are hashed at insert time and the admin role lands
	// on the right account.
	var password string
	var role models.Role
	err = conn.QueryRow(`SELECT password, role FROM users WHERE username = 'admin'`).Scan(&password, &role)
	if err != nil {
		t.Fatalf("Failed to query admin: %v", err)
	}
	if !auth.IsBcryptHash(password) {
		t.Error("Seeded password is not hashed")
	}
	if role != models.RoleAdmin {
		t.Errorf("Expected admin role, got %q", role)
	}
	if err := auth.VerifyPassword(password, "123"); err != nil {
		t.Errorf("Seeded password does not verify: %v", err)
	}
}

func TestMigratePasswords(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	// A legacy install: plaintext passwords straight in the column.
	for _, u := range []string{"judge1", "judge2"} {
		if _, err := conn.Exec(`
			INSERT INTO users (username, password, role) VALUES ($1, '123', 'judge')
		`, u); err != nil {
			t.Fatalf("Failed to insert legacy user: %v", err)
		}
	}
	// One already-hashed account must be left alone.
	testutil.CreateTestUser(t, conn, "admin", "123", models.RoleAdmin)
	var adminHashBefore string
	conn.QueryRow(`SELECT password FROM users WHERE username = 'admin'`).Scan(&adminHashBefore)

	updated, skipped, err := db.MigratePasswords(conn)
	if err != nil {
		t.Fatalf("MigratePasswords failed: %v", err)
	}
	if updated != 2 || skipped != 1 {
		t.Errorf("Expected 2 updated / 1 skipped, got %d / %d", updated, skipped)
	}

	// Every password is now a verifiable hash.
	rows, err := conn.Query(`SELECT username, password FROM users`)
	if err != nil {
		t.Fatalf("Failed to query users: %v", err)
	}
	defer rows.Close()
	for rows.Next() {
		var username, password string
		if err := rows.Scan(&username, &password); err != nil {
			t.Fatalf("Failed to scan: %v", err)
		}
		if !auth.IsBcryptHash(password) {
			t.Errorf("User %s still has an unhashed password", username)
		}
		if err := auth.VerifyPassword(password, "123"); err != nil {
			t.Errorf("User %s password does not verify after migration", username)
		}
	}

	// The untouched hash is byte-identical.
	var adminHashAfter string
	conn.QueryRow(`SELECT password FROM users WHERE username = 'admin'`).Scan(&adminHashAfter)
	if adminHashAfter != adminHashBefore {
		t.Error("Migration rewrote an already-hashed password")
	}

	// Second run finds nothing to do.
	updated, skipped, err = db.MigratePasswords(conn)
	if err != nil {
		t.Fatalf("Second MigratePasswords failed: %v", err)
	}
	if updated != 0 || skipped != 3 {
		t.Errorf("Expected 0 updated / 3 skipped on rerun, got %d / %d", updated, skipped)
	}
}
