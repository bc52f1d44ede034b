// Copyright (c) 2025 Capstone Expo Grading.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db owns the schema and its one-time routines.

CreateSchema creates the users and grades tables; it uses IF NOT EXISTS and
is called on every server start. SeedUsers inserts the default accounts only
when the users table is empty. MigratePasswords backfills bcrypt hashes over
plaintext passwords left behind by old installs; rows already carrying a
bcrypt prefix are skipped, so both routines are safe to run repeatedly.

Grade rows are written and read by the handlers directly; this package does
not wrap queries.
*/
package db
