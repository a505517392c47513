package service

import (
	"context"
	"fmt"
	"strings"

	"fornopos/internal/model"
	"fornopos/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ClientService manages the credit-account directory. Balances move only
// through checkout (debit) and RecordPayment (credit); Save never touches
// them.
type ClientService struct {
	repo repository.ClientRepository
}

func NewClientService(repo repository.ClientRepository) *ClientService {
	return &ClientService{repo: repo}
}

func (s *ClientService) List(ctx context.Context, activeOnly bool) ([]model.Client, error) {
	return s.repo.List(ctx, activeOnly)
}

func (s *ClientService) Get(ctx context.Context, id uint) (*model.Client, error) {
	return s.repo.FindByID(ctx, id)
}

// Save creates or updates a client's identity fields. The balance is carried
// over from the stored row on updates so a stale form can't rewrite it.
func (s *ClientService) Save(ctx context.Context, c *model.Client) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}
	if c.CreditLimit.IsNegative() {
		return fmt.Errorf("%w: credit limit cannot be negative", ErrInvalidInput)
	}
	if c.ID != 0 {
		stored, err := s.repo.FindByID(ctx, c.ID)
		if err != nil {
			return err
		}
		c.CurrentBalance = stored.CurrentBalance
	} else {
		c.CurrentBalance = decimal.Zero
		c.IsActive = true
	}
	return s.repo.Save(ctx, c)
}

// Deactivate soft-deletes the client: history and balance stay on record,
// new credit sales are refused.
func (s *ClientService) Deactivate(ctx context.Context, id uint) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return err
	}
	log.Info().Uint("client_id", id).Msg("client deactivated")
	return nil
}

// RecordPayment credits a payment against the client's outstanding balance.
func (s *ClientService) RecordPayment(ctx context.Context, id uint, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: payment amount must be positive", ErrInvalidInput)
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.SubtractFromBalance(ctx, id, amount); err != nil {
		return err
	}
	log.Info().Uint("client_id", id).Str("amount", amount.StringFixed(2)).Msg("client payment recorded")
	return nil
}
