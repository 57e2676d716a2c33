package storage

import "github.com/LessUp/PoopRecorder/internal"

func NewFileRepositories(entriesFile, usersFile string, logger internal.Logger) (EntryRepository, UserRepository, error) {
	storage, err := NewFileStorage(entriesFile, usersFile, logger)
	if err != nil {
		return nil, nil, err
	}
	return storage, storage, nil
}

func NewPostgresRepositories(dsn string, logger internal.Logger) (EntryRepository, UserRepository, error) {
	storage, err := NewPostgresStorage(dsn, logger)
	if err != nil {
		return nil, nil, err
	}
	return storage, storage, nil
}
