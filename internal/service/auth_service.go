package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ptit-dev/qldsv-api/internal/models"
	"github.com/ptit-dev/qldsv-api/internal/session"
	appErrors "github.com/ptit-dev/qldsv-api/pkg/errors"
)

type accountTables interface {
	AccountsByRole(role models.Role) []models.Account
}

// LoginRequest carries the three credential fields. Role selects which of
// the account tables is consulted; it is part of the credentials, not a
// hint.
type LoginRequest struct {
	Role     string `json:"role" validate:"required,oneof=admin teacher student"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the issued session key and the persisted record.
type LoginResponse struct {
	SessionKey string         `json:"session_key"`
	User       models.Session `json:"user"`
}

// AuthService implements the credentials matcher over the seeded tables and
// owns the session lifecycle.
type AuthService struct {
	accounts  accountTables
	store     session.Store
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(accounts accountTables, store session.Store, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{accounts: accounts, store: store, validator: validate, logger: logger}
}

// Login matches role, username and password against the seeded tables.
// Comparison is exact, case-sensitive and plaintext: the tables are demo
// fixtures. Every mismatch, including a wrong role, yields the same generic
// credentials error and writes no session.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		// An unknown role reads as bad credentials, not a validation
		// detail the caller can enumerate roles from.
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
	}

	var matched *models.Account
	for _, a := range s.accounts.AccountsByRole(models.Role(req.Role)) {
		if a.Username == req.Username && a.Password == req.Password {
			found := a
			matched = &found
			break
		}
	}
	if matched == nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
	}

	record := &models.Session{
		Username: matched.Username,
		Role:     matched.Role,
		Name:     matched.Name,
		ID:       matched.ID,
	}

	key := uuid.NewString()
	if err := s.store.Set(ctx, key, record); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist session")
	}

	s.logger.Info("login", zap.String("username", matched.Username), zap.String("role", string(matched.Role)))
	return &LoginResponse{SessionKey: key, User: *record}, nil
}

// Logout clears the stored session for the key. Clearing an unknown or
// already cleared key succeeds; logout is idempotent.
func (s *AuthService) Logout(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	if err := s.store.Clear(ctx, key); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to clear session")
	}
	return nil
}
