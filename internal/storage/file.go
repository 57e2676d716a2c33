package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/LessUp/PoopRecorder/internal"
)

// ErrEmailTaken is returned when registering an email that already exists.
var ErrEmailTaken = errors.New("storage: email already registered")

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("storage: user not found")

// FileStorage keeps everything in memory and persists to JSON files via
// debounced background workers, so bursts of writes collapse into one save.
type FileStorage struct {
	entries         map[string]*internal.Entry   // id -> Entry
	userEntryIndex  map[string][]*internal.Entry // userID -> entries sorted descending
	users           map[string]*internal.User    // email -> User
	mu              sync.RWMutex
	entriesFile     string
	usersFile       string
	saveEntriesChan chan struct{}
	saveUsersChan   chan struct{}
	shutdownChan    chan struct{}
	saveDelay       time.Duration
	logger          internal.Logger
}

func NewFileStorage(entriesFile, usersFile string, logger internal.Logger) (*FileStorage, error) {
	s := &FileStorage{
		entries:         make(map[string]*internal.Entry),
		userEntryIndex:  make(map[string][]*internal.Entry),
		users:           make(map[string]*internal.User),
		entriesFile:     entriesFile,
		usersFile:       usersFile,
		saveEntriesChan: make(chan struct{}, 1),
		saveUsersChan:   make(chan struct{}, 1),
		shutdownChan:    make(chan struct{}),
		saveDelay:       500 * time.Millisecond,
		logger:          logger,
	}

	if err := s.loadEntries(); err != nil {
		logger.Errorf("storage: failed to load entries: %v", err)
		return nil, err
	}
	if err := s.loadUsers(); err != nil {
		logger.Errorf("storage: failed to load users: %v", err)
		return nil, err
	}

	go s.saveWorker(s.saveEntriesChan, s.saveEntries, "entries")
	go s.saveWorker(s.saveUsersChan, s.saveUsers, "users")

	return s, nil
}

func (s *FileStorage) loadEntries() error {
	file, err := os.Open(s.entriesFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	var entries []*internal.Entry
	if err := json.NewDecoder(file).Decode(&entries); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range entries {
		s.entries[e.ID] = e
		s.userEntryIndex[e.UserID] = append(s.userEntryIndex[e.UserID], e)
	}
	for userID := range s.userEntryIndex {
		sort.Slice(s.userEntryIndex[userID], func(i, j int) bool {
			return s.userEntryIndex[userID][i].TimestampMinute.After(s.userEntryIndex[userID][j].TimestampMinute)
		})
	}

	return nil
}

func (s *FileStorage) loadUsers() error {
	file, err := os.Open(s.usersFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	var users []*struct {
		internal.User
		PasswordHash string `json:"password_hash"`
	}
	if err := json.NewDecoder(file).Decode(&users); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range users {
		user := u.User
		user.PasswordHash = u.PasswordHash
		s.users[user.Email] = &user
	}

	return nil
}

func atomicWriteFileJSON(filePath string, data interface{}) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}

func (s *FileStorage) saveEntries() error {
	s.mu.RLock()
	entries := make([]*internal.Entry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	return atomicWriteFileJSON(s.entriesFile, entries)
}

func (s *FileStorage) saveUsers() error {
	type persistedUser struct {
		internal.User
		PasswordHash string `json:"password_hash"`
	}
	s.mu.RLock()
	users := make([]persistedUser, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, persistedUser{User: *u, PasswordHash: u.PasswordHash})
	}
	s.mu.RUnlock()

	return atomicWriteFileJSON(s.usersFile, users)
}

func (s *FileStorage) saveWorker(signal chan struct{}, save func() error, what string) {
	timer := time.NewTimer(s.saveDelay)
	defer timer.Stop()

	for {
		select {
		case <-signal:
			timer.Reset(s.saveDelay)
		case <-timer.C:
			if err := save(); err != nil {
				s.logger.Errorf("storage: error saving %s: %v", what, err)
			}
		case <-s.shutdownChan:
			return
		}
	}
}

// Close stops the background workers and flushes pending data.
func (s *FileStorage) Close() error {
	close(s.shutdownChan)

	if err := s.saveEntries(); err != nil {
		return err
	}
	return s.saveUsers()
}

// --- EntryRepository ---

func (s *FileStorage) SaveEntry(ctx context.Context, entry *internal.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[entry.ID] = entry
	index := s.userEntryIndex[entry.UserID]
	inserted := false
	for i, existing := range index {
		if existing.TimestampMinute.Before(entry.TimestampMinute) {
			index = append(index[:i], append([]*internal.Entry{entry}, index[i:]...)...)
			inserted = true
			break
		}
	}
	if !inserted {
		index = append(index, entry)
	}
	s.userEntryIndex[entry.UserID] = index

	select {
	case s.saveEntriesChan <- struct{}{}:
	default:
	}
	return nil
}

func (s *FileStorage) ListEntries(ctx context.Context, userID string) ([]internal.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	index, ok := s.userEntryIndex[userID]
	if !ok {
		return []internal.Entry{}, nil
	}
	entries := make([]internal.Entry, len(index))
	for i, e := range index {
		entries[i] = *e
	}
	return entries, nil
}

func (s *FileStorage) DeleteAllEntries(ctx context.Context, userID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.userEntryIndex[userID]
	for _, e := range index {
		delete(s.entries, e.ID)
	}
	delete(s.userEntryIndex, userID)

	select {
	case s.saveEntriesChan <- struct{}{}:
	default:
	}
	return len(index), nil
}

// --- UserRepository ---

func (s *FileStorage) CreateUser(ctx context.Context, user *internal.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Email]; exists {
		return ErrEmailTaken
	}
	s.users[user.Email] = user

	select {
	case s.saveUsersChan <- struct{}{}:
	default:
	}
	return nil
}

func (s *FileStorage) GetUserByEmail(ctx context.Context, email string) (*internal.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

// --- Compile-time assertions ---
var _ EntryRepository = (*FileStorage)(nil)
var _ UserRepository = (*FileStorage)(nil)
