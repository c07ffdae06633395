package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "plain digits",
			raw:  "08031234567",
			want: "08031234567",
		},
		{
			name: "separators are dropped",
			raw:  "0803-123-4567",
			want: "08031234567",
		},
		{
			name: "spaces and parentheses",
			raw:  "(0803) 123 4567",
			want: "08031234567",
		},
		{
			name:    "letters rejected",
			raw:     "0803abc4567",
			wantErr: true,
		},
		{
			name:    "too short",
			raw:     "080312345",
			wantErr: true,
		},
		{
			name:    "must start with zero",
			raw:     "18031234567",
			wantErr: true,
		},
		{
			name:    "plus prefix rejected",
			raw:     "+2348031234567",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("a-strong-password")
	assert.NoError(t, err)
	assert.NotEqual(t, "a-strong-password", hash)

	assert.True(t, CheckPasswordHash("a-strong-password", hash))
	assert.False(t, CheckPasswordHash("the-wrong-password", hash))
}

func TestRefreshTokenHashing(t *testing.T) {
	hash := HashRefreshToken("the-raw-token")
	assert.NotEmpty(t, hash)
	// SHA256 hex digest
	assert.Len(t, hash, 64)

	assert.True(t, CompareRefreshTokenHash("the-raw-token", hash))
	assert.False(t, CompareRefreshTokenHash("another-token", hash))
}

func TestGenerateSecureRandomString(t *testing.T) {
	first, err := GenerateSecureRandomString(32)
	assert.NoError(t, err)
	assert.Len(t, first, 64)

	second, err := GenerateSecureRandomString(32)
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)

	_, err = GenerateSecureRandomString(0)
	assert.Error(t, err)
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("acct-123", "test-secret", time.Hour, "church-mgmt-test")
	assert.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, "test-secret")
	assert.NoError(t, err)
	assert.Equal(t, "acct-123", claims.Subject)
	assert.Equal(t, "church-mgmt-test", claims.Issuer)

	_, err = ParseAndValidateJWT(token, "wrong-secret")
	assert.Error(t, err)
}
