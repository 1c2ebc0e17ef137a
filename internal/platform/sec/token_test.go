// Copyright (c) 2026 Miranda Hotel. All rights reserved.

package sec_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirandahotel/api/internal/platform/sec"
)

const testSecret = "unit-test-secret-key"

/*
TestNewTokenService_MissingSecret verifies that construction without a
signing secret fails fast instead of producing a silently unsigned service.
*/
func TestNewTokenService_MissingSecret(t *testing.T) {
	tests := []struct {
		name   string
		secret string
	}{
		{"empty_secret", ""},
		{"whitespace_secret", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, err := sec.NewTokenService(tt.secret, "miranda-hotel", time.Hour)
			require.ErrorIs(t, err, sec.ErrSecretMissing)
			assert.Nil(t, service)
		})
	}
}

/*
TestNewTokenService_InvalidTTL verifies that a non-positive lifetime is
rejected at construction.
*/
func TestNewTokenService_InvalidTTL(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "miranda-hotel", 0)
	require.Error(t, err)
	assert.Nil(t, service)
}

/*
TestTokenService_RoundTrip issues a token and verifies it with the same
service, checking the claim payload.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "miranda-hotel", time.Hour)
	require.NoError(t, err)

	token, err := service.Issue("admin.miranda@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin.miranda@example.com", claims.Email)
	assert.Equal(t, "admin.miranda@example.com", claims.Subject)
	assert.Equal(t, "miranda-hotel", claims.Issuer)

	// Verification has no side effects; a second pass yields the same claims.
	claimsAgain, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, claims.Email, claimsAgain.Email)
}

/*
TestTokenService_Verify_Tampered flips part of the signed payload and
expects verification to fail.
*/
func TestTokenService_Verify_Tampered(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "miranda-hotel", time.Hour)
	require.NoError(t, err)

	token, err := service.Issue("admin.miranda@example.com")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Corrupt one character of the payload segment.
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	claims, err := service.Verify(tampered)
	require.Error(t, err)
	assert.Nil(t, claims)
}

/*
TestTokenService_Verify_WrongSecret verifies that a token signed with a
different secret never passes.
*/
func TestTokenService_Verify_WrongSecret(t *testing.T) {
	issuerService, err := sec.NewTokenService("another-secret-entirely", "miranda-hotel", time.Hour)
	require.NoError(t, err)

	verifierService, err := sec.NewTokenService(testSecret, "miranda-hotel", time.Hour)
	require.NoError(t, err)

	token, err := issuerService.Issue("admin.miranda@example.com")
	require.NoError(t, err)

	claims, err := verifierService.Verify(token)
	require.Error(t, err)
	assert.Nil(t, claims)
}

/*
TestTokenService_Verify_Expired issues a token with a nanosecond lifetime
and expects verification to reject it after expiry.
*/
func TestTokenService_Verify_Expired(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "miranda-hotel", time.Nanosecond)
	require.NoError(t, err)

	token, err := service.Issue("admin.miranda@example.com")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	claims, err := service.Verify(token)
	require.Error(t, err)
	assert.Nil(t, claims)
}

/*
TestTokenService_Verify_Garbage feeds non-JWT input to the verifier.
*/
func TestTokenService_Verify_Garbage(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "miranda-hotel", time.Hour)
	require.NoError(t, err)

	for _, input := range []string{"", "not-a-token", "a.b", "a.b.c"} {
		claims, err := service.Verify(input)
		assert.Error(t, err, "input %q should not verify", input)
		assert.Nil(t, claims)
	}
}
