// Copyright (c) 2025 Capstone Expo Grading.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the page handlers for the grading server.

Each handler owns one page and its queries:

  - LoginHandler: GET/POST /login, GET /logout
  - GradeHandler: GET/POST /grade (judges)
  - AdminHandler: GET /admin (read-only dashboard)

Handlers receive the database pool and the session store via their
constructors and render pages through the templates package.

# Error discipline

Users only ever see three kinds of text: a generic invalid-credentials
message, a generic temporarily-unavailable message, or a validation message
naming what to fix. Backend error detail goes to slog and nowhere else. A
failed grade insert re-renders the form with everything the judge typed so
resubmitting costs nothing. The admin dashboard degrades per query: a failed
rollup shows an inline banner while the rest of the page still renders.
*/
package handlers
