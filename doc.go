// Copyright (c) 2025 Capstone Expo Grading.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the project grading server.

The grading server is a small multi-role web application: judges log in and
submit one rubric evaluation per student group, and an admin logs in to see
per-group averages, overall statistics, and every individual grade.

# Starting the Server

The server reads configuration from environment variables or CLI flags:

	DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 8080 -d "postgres://..."

# Configuration

Every setting resolves CLI flag first, then environment, then a local default:

  - DATABASE_URL (-d): PostgreSQL connection string; when unset, a DSN is
    assembled from PGHOST/DB_HOST, PGPORT/DB_PORT, PGUSER/DB_USER,
    PGPASSWORD/DB_PASSWORD, PGDATABASE/DB_NAME
  - PORT (-p): Server port (default: 8080)
  - SESSION_TTL (-session-ttl): Session lifetime (default: 8h)

A .env file in the working directory is loaded when present.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: page handlers (login, grade submission, admin dashboard)
  - router: route definitions using Go 1.22+ routing, with role guards
  - middleware: request logging and the session role guard
  - sessions: in-memory session store behind an HttpOnly cookie
  - templates: embedded server-rendered HTML pages
  - models: domain types and rubric bounds
  - auth: bcrypt password hashing and verification
  - db: schema creation, seeding, and the password hash migration
  - cliparse: configuration parsing

Operational tooling (schema setup, password migration, a terminal standings
report) lives in cmd/gradectl.

If the database is unreachable at startup the server comes up in maintenance
mode and serves a static unavailable page on every route.
*/
package main
