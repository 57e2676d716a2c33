package api

import (
	"time"

	"github.com/LessUp/PoopRecorder/internal"
	"github.com/LessUp/PoopRecorder/internal/auth"
	"github.com/LessUp/PoopRecorder/internal/storage"
)

// App is the dependency surface handlers pull from. Now is the reference
// instant for every time-windowed computation; tests pin it to a fixed clock.
type App interface {
	Logger() internal.Logger
	EntryRepo() storage.EntryRepository
	UserRepo() storage.UserRepository
	Auth() *auth.Service
	Now() time.Time
}
