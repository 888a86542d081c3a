package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ptit-dev/qldsv-api/internal/models"
	"github.com/ptit-dev/qldsv-api/internal/search"
	appErrors "github.com/ptit-dev/qldsv-api/pkg/errors"
)

type accountRepository interface {
	ListAccounts() []models.Account
	FindAccountByID(id string) (*models.Account, error)
	CreateAccount(account models.Account)
	UpdateAccount(account models.Account) error
	DeleteAccount(id string) error
}

// CreateAccountRequest describes the admin account creation payload.
type CreateAccountRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=admin teacher student"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
}

// UpdateAccountRequest describes the editable account fields. Role is not
// among them: it is immutable within an edit flow.
type UpdateAccountRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"omitempty,email"`
	Phone  string `json:"phone"`
	Status string `json:"status" validate:"required,oneof=active suspended"`
}

// AccountService implements the admin account management screen.
type AccountService struct {
	repo      accountRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAccountService constructs AccountService.
func NewAccountService(repo accountRepository, validate *validator.Validate, logger *zap.Logger) *AccountService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AccountService{repo: repo, validator: validate, logger: logger}
}

// List returns accounts filtered by role, status and free-text search over
// username, name and email.
func (s *AccountService) List(ctx context.Context, filter models.AccountFilter) []models.Account {
	var out []models.Account
	for _, a := range s.repo.ListAccounts() {
		if filter.Role != "" && a.Role != filter.Role {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if !search.Matches(filter.Search, a.Username, a.Name, a.Email) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Create registers a new account.
func (s *AccountService) Create(ctx context.Context, req CreateAccountRequest) (*models.Account, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid account payload")
	}
	for _, a := range s.repo.ListAccounts() {
		if a.Username == req.Username {
			return nil, appErrors.Clone(appErrors.ErrConflict, "username already exists")
		}
	}
	account := models.Account{
		ID:       uuid.NewString(),
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Role:     models.Role(req.Role),
		Email:    req.Email,
		Phone:    req.Phone,
		Status:   models.AccountStatusActive,
	}
	s.repo.CreateAccount(account)
	s.logger.Info("account created", zap.String("username", account.Username), zap.String("role", string(account.Role)))
	return &account, nil
}

// Update edits an existing account's mutable fields.
func (s *AccountService) Update(ctx context.Context, id string, req UpdateAccountRequest) (*models.Account, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid account payload")
	}
	account, err := s.repo.FindAccountByID(id)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "account not found")
	}
	account.Name = req.Name
	account.Email = req.Email
	account.Phone = req.Phone
	account.Status = models.AccountStatus(req.Status)
	if err := s.repo.UpdateAccount(*account); err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "account not found")
	}
	return account, nil
}

// Delete removes an account.
func (s *AccountService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteAccount(id); err != nil {
		return appErrors.Clone(appErrors.ErrNotFound, "account not found")
	}
	s.logger.Info("account deleted", zap.String("id", id))
	return nil
}
