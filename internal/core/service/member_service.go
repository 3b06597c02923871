package service

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/domain"
	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/ports"
)

// MemberService backs the admin user-management screen. Mutations apply to
// process memory only; the seed roster comes back on restart.
type MemberService struct {
	log zerolog.Logger

	mu      sync.RWMutex
	members []domain.Member
	nextID  int
}

func NewMemberService(seed []domain.Member, log zerolog.Logger) *MemberService {
	members := make([]domain.Member, len(seed))
	copy(members, seed)

	// Continue numbering after the highest numeric seed ID.
	next := 1
	for _, m := range members {
		if n, err := strconv.Atoi(m.ID); err == nil && n >= next {
			next = n + 1
		}
	}

	return &MemberService{members: members, nextID: next, log: log}
}

// List returns members matching the search term on email, name, or role.
func (s *MemberService) List(_ context.Context, search string) ([]domain.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]domain.Member, 0, len(s.members))
	for _, m := range s.members {
		if needle != "" && !memberMatches(m, needle) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

// Create adds a member to the in-memory roster. Duplicate emails are rejected.
func (s *MemberService) Create(_ context.Context, in ports.CreateMemberInput) (*domain.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.members {
		if m.Email == in.Email {
			return nil, domain.ErrMemberExists
		}
	}

	role := domain.RoleUser
	if in.Admin {
		role = domain.RoleAdmin
	}

	m := domain.Member{
		ID:     strconv.Itoa(s.nextID),
		Email:  in.Email,
		Name:   in.Name,
		Role:   role,
		Status: domain.MemberActive,
	}
	s.nextID++
	s.members = append(s.members, m)

	s.log.Info().Str("email", m.Email).Str("role", string(m.Role)).Msg("member added")
	return &m, nil
}

// ToggleStatus flips a member between active and inactive.
func (s *MemberService) ToggleStatus(_ context.Context, id string) (*domain.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.members {
		if s.members[i].ID != id {
			continue
		}
		if s.members[i].Status == domain.MemberActive {
			s.members[i].Status = domain.MemberInactive
		} else {
			s.members[i].Status = domain.MemberActive
		}
		m := s.members[i]
		s.log.Info().Str("email", m.Email).Str("status", string(m.Status)).Msg("member status toggled")
		return &m, nil
	}
	return nil, domain.ErrMemberNotFound
}

// ToggleRole flips a member between ADMIN and USER.
func (s *MemberService) ToggleRole(_ context.Context, id string) (*domain.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.members {
		if s.members[i].ID != id {
			continue
		}
		if s.members[i].Role == domain.RoleAdmin {
			s.members[i].Role = domain.RoleUser
		} else {
			s.members[i].Role = domain.RoleAdmin
		}
		m := s.members[i]
		s.log.Info().Str("email", m.Email).Str("role", string(m.Role)).Msg("member role toggled")
		return &m, nil
	}
	return nil, domain.ErrMemberNotFound
}

func memberMatches(m domain.Member, needle string) bool {
	return strings.Contains(strings.ToLower(m.Email), needle) ||
		strings.Contains(strings.ToLower(m.Name), needle) ||
		strings.Contains(strings.ToLower(string(m.Role)), needle)
}
