// Copyright (c) 2026 Miranda Hotel. All rights reserved.

package sec

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// hashCost is the bcrypt cost factor. bcrypt.DefaultCost (10) matches the
// adaptive-hashing floor required for stored staff credentials.
const hashCost = bcrypt.DefaultCost

// HashPassword hashes a plain-text password with bcrypt.
//
// Each call generates a fresh random salt, so two calls with the same
// plaintext produce different hash strings.
func HashPassword(plainTextPassword string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), hashCost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// CheckPasswordHash compares a plain-text password with its stored hash.
// A normal mismatch returns false, never an error.
func CheckPasswordHash(plainTextPassword, existingHash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(existingHash), []byte(plainTextPassword))
	return err == nil
}
