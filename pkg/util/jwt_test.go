package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAccessSecret  = "test-access-secret-key"
	testRefreshSecret = "test-refresh-secret-key"
)

func TestGenerateUserTokenPair(t *testing.T) {
	tokens, err := GenerateUserTokenPair(
		"user-1",
		"01012345678",
		testAccessSecret,
		testRefreshSecret,
		15*time.Minute,
		7*24*time.Hour,
	)

	require.NoError(t, err)
	require.NotNil(t, tokens)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.NotEqual(t, tokens.AccessToken, tokens.RefreshToken)
}

func TestValidateToken(t *testing.T) {
	tokens, err := GenerateUserTokenPair(
		"user-123",
		"01012345678",
		testAccessSecret,
		testRefreshSecret,
		15*time.Minute,
		7*24*time.Hour,
	)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		secret  string
		wantErr error
	}{
		{
			name:    "Valid access token",
			token:   tokens.AccessToken,
			secret:  testAccessSecret,
			wantErr: nil,
		},
		{
			name:    "Refresh token against access secret",
			token:   tokens.RefreshToken,
			secret:  testAccessSecret,
			wantErr: ErrInvalidToken,
		},
		{
			name:    "Invalid secret",
			token:   tokens.AccessToken,
			secret:  "wrong-secret",
			wantErr: ErrInvalidToken,
		},
		{
			name:    "Invalid token format",
			token:   "invalid.token.format",
			secret:  testAccessSecret,
			wantErr: ErrInvalidToken,
		},
		{
			name:    "Empty token",
			token:   "",
			secret:  testAccessSecret,
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ValidateToken(tt.token, tt.secret)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
			} else {
				require.NoError(t, err)
				require.NotNil(t, claims)
				assert.Equal(t, "user-123", claims.ID)
				assert.Equal(t, "01012345678", claims.Phone)
			}
		})
	}
}

func TestExpiredToken(t *testing.T) {
	token, err := GenerateUserToken("user-1", "01012345678", testAccessSecret, 1*time.Nanosecond)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	claims, err := ValidateToken(token, testAccessSecret)
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.Nil(t, claims)
}

func TestAdminTokenClaims(t *testing.T) {
	token, err := GenerateAdminToken("admin-1", "operator", testAccessSecret, 2*time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(token, testAccessSecret)
	require.NoError(t, err)
	require.NotNil(t, claims)

	assert.Equal(t, "admin-1", claims.ID)
	assert.Equal(t, "operator", claims.Name)
	assert.Empty(t, claims.Phone)
	assert.NotNil(t, claims.ExpiresAt)
	assert.NotNil(t, claims.IssuedAt)
	assert.True(t, claims.IssuedAt.Before(claims.ExpiresAt.Time))
}
