package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/yerzhan-a/charter-market/internal/model"
)

// AccountStore is the persistence surface the account and authentication
// services need. *repository.AccountRepository implements it.
type AccountStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	FindFields(ctx context.Context, userID int64, fields []string) (model.Projection, error)
}

// PasswordHasher abstracts the credential hasher so services never see
// bcrypt directly.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

type AccountService struct {
	store  AccountStore
	hasher PasswordHasher
	log    zerolog.Logger
}

func NewAccountService(store AccountStore, hasher PasswordHasher, log zerolog.Logger) *AccountService {
	return &AccountService{store: store, hasher: hasher, log: log}
}

type RegisterInput struct {
	Email    string
	FullName string
	Company  string
	Role     string
	Password string
}

// Register creates a new account. The lookup is an early exit only; the
// email unique index decides races, and its violation maps to
// ErrDuplicateEmail so concurrent duplicates are indistinguishable from
// sequential ones. Rejection leaves no side effects.
func (s *AccountService) Register(ctx context.Context, input RegisterInput) (int64, error) {
	email := normalizeEmail(input.Email)
	if email == "" {
		return 0, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if input.Password == "" {
		return 0, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	role, err := model.ParseUserRole(input.Role)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, err := s.store.GetByEmail(ctx, email); err == nil {
		return 0, ErrDuplicateEmail
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	user := model.User{
		Email:        email,
		FullName:     strings.TrimSpace(input.FullName),
		Company:      strings.TrimSpace(input.Company),
		Role:         role,
		Reputation:   model.DefaultReputation,
		PasswordHash: hash,
		Status:       model.UserStatusActive,
	}
	if err := s.store.Create(ctx, &user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, ErrDuplicateEmail
		}
		return 0, err
	}

	s.log.Info().Int64("user_id", user.ID).Str("role", string(role)).Msg("account registered")
	return user.ID, nil
}

// Fields projects the requested attributes of one user. Unknown names are
// dropped; if nothing recognizable remains the full record comes back, same
// as requesting no fields at all.
func (s *AccountService) Fields(ctx context.Context, userID int64, fields []string) (model.Projection, error) {
	projection, err := s.store.FindFields(ctx, userID, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return projection, nil
}

func normalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
