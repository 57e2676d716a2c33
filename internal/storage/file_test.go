package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/LessUp/PoopRecorder/internal"
)

func newTestStorage(t *testing.T) (*FileStorage, string, string) {
	t.Helper()
	dir := t.TempDir()
	entriesFile := filepath.Join(dir, "entries.json")
	usersFile := filepath.Join(dir, "users.json")
	s, err := NewFileStorage(entriesFile, usersFile, internal.NewZapLogger(zap.NewNop().Sugar()))
	require.NoError(t, err)
	return s, entriesFile, usersFile
}

func testEntry(id, userID string, ts time.Time) *internal.Entry {
	return &internal.Entry{
		ID:              id,
		UserID:          userID,
		TimestampMinute: ts,
		BristolType:     4,
		SmellScore:      3,
		Color:           internal.ColorBrown,
		Volume:          internal.VolumeMedium,
		Symptoms:        []string{},
		CreatedAt:       ts,
		UpdatedAt:       ts,
		Version:         1,
	}
}

func TestSaveAndListEntriesDescending(t *testing.T) {
	s, _, _ := newTestStorage(t)
	defer s.Close()
	ctx := context.Background()
	base := time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC)

	// Insert out of chronological order.
	require.NoError(t, s.SaveEntry(ctx, testEntry("e2", "u1", base.AddDate(0, 0, 1))))
	require.NoError(t, s.SaveEntry(ctx, testEntry("e1", "u1", base)))
	require.NoError(t, s.SaveEntry(ctx, testEntry("e3", "u1", base.AddDate(0, 0, 2))))

	entries, err := s.ListEntries(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "e3", entries[0].ID)
	assert.Equal(t, "e2", entries[1].ID)
	assert.Equal(t, "e1", entries[2].ID)
}

func TestListEntriesUnknownUser(t *testing.T) {
	s, _, _ := newTestStorage(t)
	defer s.Close()

	entries, err := s.ListEntries(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDeleteAllEntriesScopedToUser(t *testing.T) {
	s, _, _ := newTestStorage(t)
	defer s.Close()
	ctx := context.Background()
	ts := time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC)

	require.NoError(t, s.SaveEntry(ctx, testEntry("a1", "u1", ts)))
	require.NoError(t, s.SaveEntry(ctx, testEntry("a2", "u1", ts.Add(time.Hour))))
	require.NoError(t, s.SaveEntry(ctx, testEntry("b1", "u2", ts)))

	deleted, err := s.DeleteAllEntries(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	entries, err := s.ListEntries(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, entries)

	other, err := s.ListEntries(ctx, "u2")
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	s, _, _ := newTestStorage(t)
	defer s.Close()
	ctx := context.Background()

	user := &internal.User{ID: "u1", Email: "a@example.com", PasswordHash: "x", CreatedAt: time.Now()}
	require.NoError(t, s.CreateUser(ctx, user))

	dup := &internal.User{ID: "u2", Email: "a@example.com", PasswordHash: "y", CreatedAt: time.Now()}
	assert.ErrorIs(t, s.CreateUser(ctx, dup), ErrEmailTaken)

	_, err := s.GetUserByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestPersistenceAcrossReload(t *testing.T) {
	s, entriesFile, usersFile := newTestStorage(t)
	ctx := context.Background()
	ts := time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC)

	require.NoError(t, s.SaveEntry(ctx, testEntry("e1", "u1", ts)))
	user := &internal.User{ID: "u1", Email: "a@example.com", PasswordHash: "hash", CreatedAt: ts}
	require.NoError(t, s.CreateUser(ctx, user))
	require.NoError(t, s.Close())

	reloaded, err := NewFileStorage(entriesFile, usersFile, internal.NewZapLogger(zap.NewNop().Sugar()))
	require.NoError(t, err)
	defer reloaded.Close()

	entries, err := reloaded.ListEntries(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "e1", entries[0].ID)

	got, err := reloaded.GetUserByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "hash", got.PasswordHash)
}
