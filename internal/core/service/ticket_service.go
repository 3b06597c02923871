package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/domain"
)

// TicketService serves the fixed set of issued tickets.
type TicketService struct {
	tickets []domain.Ticket
	log     zerolog.Logger
}

func NewTicketService(tickets []domain.Ticket, log zerolog.Logger) *TicketService {
	return &TicketService{tickets: tickets, log: log}
}

// List returns tickets in the given tab; an empty status returns all.
func (s *TicketService) List(_ context.Context, status domain.TicketStatus) ([]domain.Ticket, error) {
	out := make([]domain.Ticket, 0, len(s.tickets))
	for _, t := range s.tickets {
		if status != "" && t.Status != status {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}
