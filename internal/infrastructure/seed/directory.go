package seed

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/domain"
)

// seedAccount pairs a directory entry with its demo plaintext. The plaintext
// exists only long enough to produce a bcrypt hash.
type seedAccount struct {
	id       string
	email    string
	name     string
	password string
	role     domain.Role
}

var seedAccounts = []seedAccount{
	{id: "1", email: "admin@skylines.com", name: "Admin User", password: "admin123", role: domain.RoleAdmin},
	{id: "2", email: "user@example.com", name: "Regular User", password: "user123", role: domain.RoleUser},
}

// AccountDirectory is the fixed in-memory "backend" the auth service
// consults. It is built once at startup and never mutated afterwards.
type AccountDirectory struct {
	byEmail map[string]*domain.Account
	ordered []domain.Account
}

// NewAccountDirectory hashes the seed credentials and returns the directory.
func NewAccountDirectory() (*AccountDirectory, error) {
	d := &AccountDirectory{
		byEmail: make(map[string]*domain.Account, len(seedAccounts)),
		ordered: make([]domain.Account, 0, len(seedAccounts)),
	}
	for _, sa := range seedAccounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(sa.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("seed account %s: %w", sa.email, err)
		}
		acc := domain.Account{
			ID:           sa.id,
			Email:        sa.email,
			Name:         sa.name,
			PasswordHash: string(hash),
			Role:         sa.role,
		}
		d.ordered = append(d.ordered, acc)
		d.byEmail[acc.Email] = &d.ordered[len(d.ordered)-1]
	}
	return d, nil
}

// FindByEmail looks up an account by its exact, case-sensitive email.
func (d *AccountDirectory) FindByEmail(email string) (*domain.Account, error) {
	acc, ok := d.byEmail[email]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	clone := *acc
	return &clone, nil
}

// All returns a copy of every directory entry in seed order.
func (d *AccountDirectory) All() []domain.Account {
	out := make([]domain.Account, len(d.ordered))
	copy(out, d.ordered)
	return out
}
