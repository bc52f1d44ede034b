// Copyright (c) 2025 Capstone Expo Grading.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware for the grading server.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# Role Guard

Protected routes are gated by a single guard instead of per-page checks:

	middleware.RequireRole(store, models.RoleJudge, gradeHandler.Submit)

A request without a live session of the required role is redirected to
/login before the handler runs.
*/
package middleware
