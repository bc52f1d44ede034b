// Copyright (c) 2025 Capstone Expo Grading.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both "no such user" and "wrong password".
// Callers must not distinguish the two in anything user-visible.
var ErrInvalidCredentials = errors.New("invalid credentials")

// HashPassword creates a bcrypt hash of a plaintext password.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword checks a plaintext password against a stored bcrypt hash.
// bcrypt's comparison is constant-time. Any mismatch, including a stored
// value that is not a bcrypt hash at all, comes back as ErrInvalidCredentials.
func VerifyPassword(hash, plain string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// IsBcryptHash reports whether a stored password value is already a bcrypt
// hash, detected by the $2a$/$2b$/$2y$ prefix. The password migration uses
// this to skip rows that have already been converted.
func IsBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") ||
		strings.HasPrefix(s, "$2b$") ||
		strings.HasPrefix(s, "$2y$")
}
