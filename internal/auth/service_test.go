package auth

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/LessUp/PoopRecorder/internal"
	"github.com/LessUp/PoopRecorder/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	dir := t.TempDir()
	logger := internal.NewZapLogger(zap.NewNop().Sugar())
	_, users, err := storage.NewFileRepositories(filepath.Join(dir, "entries.json"), filepath.Join(dir, "users.json"), logger)
	require.NoError(t, err)
	tokens := NewJWTManager("0123456789abcdef0123456789abcdef", "pooprecorder-test", time.Hour)
	return NewService(users, tokens, logger)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "demo@example.com", "Secr3tPass")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "Secr3tPass", user.PasswordHash)

	token, got, err := svc.Login(ctx, "demo@example.com", "Secr3tPass")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, got.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "demo@example.com", "Secr3tPass")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "demo@example.com", "WrongPass1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "unknown@example.com", "Secr3tPass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterRejectsWeakPasswords(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, password := range []string{"short1A", "alllowercase1", "ALLUPPERCASE1", "NoDigitsHere"} {
		_, err := svc.Register(ctx, "weak@example.com", password)
		assert.ErrorIs(t, err, ErrWeakPassword, "password %q should be rejected", password)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "demo@example.com", "Secr3tPass")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "demo@example.com", "Other3Pass")
	assert.ErrorIs(t, err, storage.ErrEmailTaken)
}
