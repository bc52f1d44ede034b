// Copyright (c) 2025 Capstone Expo Grading.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and verification.

# Hashing

Passwords are stored as bcrypt hashes:

	hash, err := auth.HashPassword("secret")

# Verification

	err := auth.VerifyPassword(storedHash, submitted)

Any failure is auth.ErrInvalidCredentials. The error is deliberately the same
for an unknown user's sentinel hash and a wrong password so that login cannot
be used to enumerate usernames.

# Migration support

	auth.IsBcryptHash(stored)

reports whether a stored value already carries a bcrypt prefix
($2a$, $2b$, $2y$). Legacy rows seeded with plaintext passwords are rewritten
by the one-off migration in the db package.
*/
package auth
