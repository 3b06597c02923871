package ports

import (
	"context"

	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/domain"
)

// CreateMemberInput carries the fields of the admin "add user" form.
type CreateMemberInput struct {
	Email string
	Name  string
	Admin bool
}

// MemberService backs the admin user-management screen. Mutations live in
// process memory only; the seed is restored on restart.
type MemberService interface {
	List(ctx context.Context, search string) ([]domain.Member, error)
	Create(ctx context.Context, in CreateMemberInput) (*domain.Member, error)
	ToggleStatus(ctx context.Context, id string) (*domain.Member, error)
	ToggleRole(ctx context.Context, id string) (*domain.Member, error)
}
