package repository

import (
	"database/sql"

	"github.com/ptit-dev/qldsv-api/internal/models"
)

// AccountsByRole returns every account in the table the role selects.
func (d *Dataset) AccountsByRole(role models.Role) []models.Account {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []models.Account
	for _, a := range d.accounts {
		if a.Role == role {
			out = append(out, a)
		}
	}
	return out
}

// ListAccounts returns all accounts.
func (d *Dataset) ListAccounts() []models.Account {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]models.Account, len(d.accounts))
	copy(out, d.accounts)
	return out
}

// FindAccountByID returns the account with the given ID.
func (d *Dataset) FindAccountByID(id string) (*models.Account, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, a := range d.accounts {
		if a.ID == id {
			found := a
			return &found, nil
		}
	}
	return nil, sql.ErrNoRows
}

// CreateAccount appends a new account.
func (d *Dataset) CreateAccount(account models.Account) {
	d.mu.Lock()
	d.accounts = append(d.accounts, account)
	d.mu.Unlock()
}

// UpdateAccount replaces the account with the same ID.
func (d *Dataset) UpdateAccount(account models.Account) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, a := range d.accounts {
		if a.ID == account.ID {
			d.accounts[i] = account
			return nil
		}
	}
	return sql.ErrNoRows
}

// DeleteAccount removes the account with the given ID.
func (d *Dataset) DeleteAccount(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, a := range d.accounts {
		if a.ID == id {
			d.accounts = append(d.accounts[:i], d.accounts[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}
