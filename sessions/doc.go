// Copyright (c) 2025 Capstone Expo Grading.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package sessions provides the in-memory session store behind the login
cookie.

A session carries exactly two facts: the username and the role. IDs are
random UUIDs handed to the browser in an HttpOnly cookie; nothing about the
session is stored client-side, so a cookie by itself proves nothing without
the server-side entry.

	store := sessions.NewStore(8 * time.Hour)
	id := store.Create("judge1", models.RoleJudge)
	store.SetCookie(w, id)

Sessions expire after the store's TTL and are pruned on access. The store is
in-memory on purpose: a restart logs everyone out, which is the desired
behavior for a system that only runs during a grading event.
*/
package sessions
