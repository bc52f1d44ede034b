// Copyright (c) 2025 Capstone Expo Grading.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package models defines the domain types shared across the server: the
// typed Role, User and Grade rows, the admin rollup rows, and the rubric
// bounds (four criteria, 0-15 each, 60-point total, 85% highlight line).
package models
