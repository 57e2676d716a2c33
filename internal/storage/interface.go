package storage

import (
	"context"

	"github.com/LessUp/PoopRecorder/internal"
)

type EntryRepository interface {
	SaveEntry(ctx context.Context, entry *internal.Entry) error
	// ListEntries returns all entries for a user sorted descending by
	// TimestampMinute.
	ListEntries(ctx context.Context, userID string) ([]internal.Entry, error)
	DeleteAllEntries(ctx context.Context, userID string) (int, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *internal.User) error
	GetUserByEmail(ctx context.Context, email string) (*internal.User, error)
}
