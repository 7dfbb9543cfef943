package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-git-save/internal/config"
	"github.com/MKhiriev/go-git-save/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(secret, issuer string, duration time.Duration) AuthService {
	return NewAuthService(config.App{
		SecretKey:     secret,
		TokenIssuer:   issuer,
		TokenDuration: duration,
	}, logger.Nop())
}

func TestAuthService_CreateAndParse(t *testing.T) {
	svc := newTestAuthService("s3cret", "git-save", time.Hour)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, "panel")
	require.NoError(t, err)
	require.NotEmpty(t, token.String())

	parsed, err := svc.ParseToken(ctx, token.String())
	require.NoError(t, err)
	assert.Equal(t, "panel", parsed.Subject)
	assert.Equal(t, "git-save", parsed.Issuer)
}

func TestAuthService_ParseToken_Rejects(t *testing.T) {
	ctx := context.Background()
	issued, err := newTestAuthService("s3cret", "git-save", time.Hour).CreateToken(ctx, "panel")
	require.NoError(t, err)

	expired, err := newTestAuthService("s3cret", "git-save", -time.Minute).CreateToken(ctx, "panel")
	require.NoError(t, err)

	tests := []struct {
		name   string
		parser AuthService
		token  string
	}{
		{name: "wrong secret", parser: newTestAuthService("other", "git-save", time.Hour), token: issued.String()},
		{name: "wrong issuer", parser: newTestAuthService("s3cret", "someone-else", time.Hour), token: issued.String()},
		{name: "expired", parser: newTestAuthService("s3cret", "git-save", time.Hour), token: expired.String()},
		{name: "garbage", parser: newTestAuthService("s3cret", "git-save", time.Hour), token: "not.a.jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.parser.ParseToken(ctx, tt.token)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}
