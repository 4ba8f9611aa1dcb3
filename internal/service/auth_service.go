package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/yerzhan-a/charter-market/internal/model"
)

type AuthService struct {
	store  AccountStore
	hasher PasswordHasher
	log    zerolog.Logger
}

func NewAuthService(store AccountStore, hasher PasswordHasher, log zerolog.Logger) *AuthService {
	return &AuthService{store: store, hasher: hasher, log: log}
}

// Authenticate verifies the credentials and returns the session identity.
// Unknown email, wrong password and disabled account all come back as the
// same ErrInvalidCredentials; nothing about the failure cause leaks to the
// caller, and failure has no side effects.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (model.Principal, error) {
	user, err := s.store.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Principal{}, ErrInvalidCredentials
		}
		return model.Principal{}, err
	}

	if user.Status != model.UserStatusActive {
		return model.Principal{}, ErrInvalidCredentials
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return model.Principal{}, ErrInvalidCredentials
	}

	s.log.Debug().Int64("user_id", user.ID).Msg("authentication succeeded")
	return model.Principal{
		UserID:   user.ID,
		FullName: user.FullName,
		Role:     user.Role,
	}, nil
}
