// Copyright (c) 2025 Capstone Expo Grading.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package router wires the page handlers to their routes using Go 1.22+
// method patterns. All role gating happens here, uniformly, via
// middleware.RequireRole.
package router
