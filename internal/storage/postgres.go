package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/LessUp/PoopRecorder/internal"
)

type PostgresStorage struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresStorage(dsn string, logger internal.Logger) (*PostgresStorage, error) {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	return &PostgresStorage{pool: pool, logger: logger}, nil
}

func (p *PostgresStorage) Close() {
	p.pool.Close()
}

// --- EntryRepository ---

func (p *PostgresStorage) SaveEntry(ctx context.Context, e *internal.Entry) error {
	_, err := p.pool.Exec(ctx, `INSERT INTO stool_entries (id, user_id, timestamp_minute, bristol_type, smell_score, color, volume, symptoms, notes, created_at, updated_at, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		e.ID, e.UserID, e.TimestampMinute, e.BristolType, e.SmellScore, e.Color, e.Volume, e.Symptoms, e.Notes, e.CreatedAt, e.UpdatedAt, e.Version)
	if err != nil {
		p.logger.Errorf("failed to insert entry: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) ListEntries(ctx context.Context, userID string) ([]internal.Entry, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, user_id, timestamp_minute, bristol_type, smell_score, color, volume, symptoms, notes, created_at, updated_at, version
		FROM stool_entries WHERE user_id = $1 ORDER BY timestamp_minute DESC`, userID)
	if err != nil {
		p.logger.Errorf("failed to query entries: %v", err)
		return nil, err
	}
	defer rows.Close()

	entries := []internal.Entry{}
	for rows.Next() {
		var e internal.Entry
		err := rows.Scan(&e.ID, &e.UserID, &e.TimestampMinute, &e.BristolType, &e.SmellScore, &e.Color, &e.Volume, &e.Symptoms, &e.Notes, &e.CreatedAt, &e.UpdatedAt, &e.Version)
		if err != nil {
			p.logger.Errorf("failed to scan entry: %v", err)
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (p *PostgresStorage) DeleteAllEntries(ctx context.Context, userID string) (int, error) {
	tag, err := p.pool.Exec(ctx, `DELETE FROM stool_entries WHERE user_id = $1`, userID)
	if err != nil {
		p.logger.Errorf("failed to delete entries: %v", err)
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

// --- UserRepository ---

func (p *PostgresStorage) CreateUser(ctx context.Context, u *internal.User) error {
	tag, err := p.pool.Exec(ctx, `INSERT INTO users (id, email, password_hash, created_at) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING`,
		u.ID, u.Email, u.PasswordHash, u.CreatedAt)
	if err != nil {
		p.logger.Errorf("failed to insert user: %v", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEmailTaken
	}
	return nil
}

func (p *PostgresStorage) GetUserByEmail(ctx context.Context, email string) (*internal.User, error) {
	row := p.pool.QueryRow(ctx, `SELECT id, email, password_hash, created_at FROM users WHERE email = $1`, email)
	var u internal.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		p.logger.Errorf("failed to query user: %v", err)
		return nil, err
	}
	return &u, nil
}

// --- Compile-time assertions ---
var _ EntryRepository = (*PostgresStorage)(nil)
var _ UserRepository = (*PostgresStorage)(nil)
