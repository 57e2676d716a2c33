package auth

import (
	"context"
	"errors"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/LessUp/PoopRecorder/internal"
	"github.com/LessUp/PoopRecorder/internal/storage"
)

var (
	ErrInvalidCredentials = errors.New("auth: invalid email or password")
	ErrWeakPassword       = errors.New("auth: password must be at least 8 characters with uppercase, lowercase, and a digit")
)

// Service handles registration and login against the user repository.
type Service struct {
	users  storage.UserRepository
	tokens *JWTManager
	logger internal.Logger
}

func NewService(users storage.UserRepository, tokens *JWTManager, logger internal.Logger) *Service {
	return &Service{users: users, tokens: tokens, logger: logger}
}

func (s *Service) Register(ctx context.Context, email, password string) (*internal.User, error) {
	if !validPassword(password) {
		return nil, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &internal.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Infof("registered user %s", user.ID)
	return user, nil
}

// Login verifies credentials and returns a signed access token. Lookup and
// compare failures collapse into the same error so the response does not
// leak which emails exist.
func (s *Service) Login(ctx context.Context, email, password string) (string, *internal.User, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		s.logger.Errorf("failed to sign token for %s: %v", user.ID, err)
		return "", nil, err
	}
	return token, user, nil
}

func validPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}
