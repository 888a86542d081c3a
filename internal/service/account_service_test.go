package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ptit-dev/qldsv-api/internal/models"
	appErrors "github.com/ptit-dev/qldsv-api/pkg/errors"
)

type mockAccountRepo struct {
	accounts []models.Account
}

func (m *mockAccountRepo) ListAccounts() []models.Account {
	return m.accounts
}

func (m *mockAccountRepo) FindAccountByID(id string) (*models.Account, error) {
	for _, a := range m.accounts {
		if a.ID == id {
			found := a
			return &found, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockAccountRepo) CreateAccount(account models.Account) {
	m.accounts = append(m.accounts, account)
}

func (m *mockAccountRepo) UpdateAccount(account models.Account) error {
	for i, a := range m.accounts {
		if a.ID == account.ID {
			m.accounts[i] = account
			return nil
		}
	}
	return sql.ErrNoRows
}

func (m *mockAccountRepo) DeleteAccount(id string) error {
	for i, a := range m.accounts {
		if a.ID == id {
			m.accounts = append(m.accounts[:i], m.accounts[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

func newAccountFixture() (*mockAccountRepo, *AccountService) {
	repo := &mockAccountRepo{accounts: []models.Account{
		{ID: "1", Username: "tuan.da", Name: "Đặng Anh Tuấn", Role: models.RoleTeacher, Email: "tuan.da@ptit.edu.vn", Status: models.AccountStatusActive},
		{ID: "B24DCCC016", Username: "B24DCCC016", Name: "Nguyễn Đức Anh", Role: models.RoleStudent, Status: models.AccountStatusActive},
		{ID: "B24DCCC148", Username: "B24DCCC148", Name: "Phạm Quốc Huy", Role: models.RoleStudent, Status: models.AccountStatusSuspended},
	}}
	svc := NewAccountService(repo, validator.New(), zap.NewNop())
	return repo, svc
}

func TestAccountServiceListFilters(t *testing.T) {
	_, svc := newAccountFixture()

	students := svc.List(context.Background(), models.AccountFilter{Role: models.RoleStudent})
	assert.Len(t, students, 2)

	active := svc.List(context.Background(), models.AccountFilter{Role: models.RoleStudent, Status: models.AccountStatusActive})
	require.Len(t, active, 1)
	assert.Equal(t, "B24DCCC016", active[0].ID)

	byName := svc.List(context.Background(), models.AccountFilter{Search: "quốc huy"})
	require.Len(t, byName, 1)
	assert.Equal(t, "B24DCCC148", byName[0].ID)

	assert.Len(t, svc.List(context.Background(), models.AccountFilter{Search: ""}), 3)
}

func TestAccountServiceCreate(t *testing.T) {
	repo, svc := newAccountFixture()

	account, err := svc.Create(context.Background(), CreateAccountRequest{
		Username: "b.lt", Password: "teacher123", Name: "Lê Thị B", Role: "teacher", Email: "b.lt@ptit.edu.vn",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, account.ID)
	assert.Equal(t, models.AccountStatusActive, account.Status)
	assert.Len(t, repo.accounts, 4)
}

func TestAccountServiceCreateDuplicateUsername(t *testing.T) {
	_, svc := newAccountFixture()

	_, err := svc.Create(context.Background(), CreateAccountRequest{
		Username: "tuan.da", Password: "teacher123", Name: "Someone Else", Role: "teacher",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
}

func TestAccountServiceUpdate(t *testing.T) {
	repo, svc := newAccountFixture()

	updated, err := svc.Update(context.Background(), "B24DCCC148", UpdateAccountRequest{
		Name: "Phạm Quốc Huy", Status: "active",
	})
	require.NoError(t, err)
	assert.Equal(t, models.AccountStatusActive, updated.Status)
	// Role stays what it was; the edit payload cannot carry one.
	assert.Equal(t, models.RoleStudent, updated.Role)

	stored, err := repo.FindAccountByID("B24DCCC148")
	require.NoError(t, err)
	assert.Equal(t, models.AccountStatusActive, stored.Status)
}

func TestAccountServiceDelete(t *testing.T) {
	repo, svc := newAccountFixture()

	require.NoError(t, svc.Delete(context.Background(), "B24DCCC016"))
	assert.Len(t, repo.accounts, 2)

	err := svc.Delete(context.Background(), "B24DCCC016")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}
