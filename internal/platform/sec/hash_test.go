// Copyright (c) 2026 Miranda Hotel. All rights reserved.

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirandahotel/api/internal/platform/sec"
)

/*
TestHashPassword verifies that hashing is salted: the same input yields
different hashes, and both verify against the original password.
*/
func TestHashPassword(t *testing.T) {
	first, err := sec.HashPassword("0000")
	require.NoError(t, err)

	second, err := sec.HashPassword("0000")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, sec.CheckPasswordHash("0000", first))
	assert.True(t, sec.CheckPasswordHash("0000", second))
}

/*
TestCheckPasswordHash_Mismatch covers wrong passwords and corrupted hashes.
*/
func TestCheckPasswordHash_Mismatch(t *testing.T) {
	hash, err := sec.HashPassword("correct-password")
	require.NoError(t, err)

	assert.False(t, sec.CheckPasswordHash("wrong-password", hash))
	assert.False(t, sec.CheckPasswordHash("correct-password", "not-a-bcrypt-hash"))
	assert.False(t, sec.CheckPasswordHash("", hash))
}
