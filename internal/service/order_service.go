package service

import (
	"context"
	"fmt"

	"fornopos/internal/model"
	"fornopos/internal/repository"
	"fornopos/internal/worker"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// OrderService covers the back-office side of orders: browsing history,
// administrative deletion and receipt reprints. Checkout itself lives in
// CartService.
type OrderService struct {
	repo         repository.OrderRepository
	clients      repository.ClientRepository
	dispatcher   *worker.Dispatcher
	adminPINHash string
}

func NewOrderService(
	repo repository.OrderRepository,
	clients repository.ClientRepository,
	dispatcher *worker.Dispatcher,
	adminPINHash string,
) *OrderService {
	return &OrderService{
		repo:         repo,
		clients:      clients,
		dispatcher:   dispatcher,
		adminPINHash: adminPINHash,
	}
}

func (s *OrderService) List(ctx context.Context, f repository.OrderFilter) ([]model.Order, error) {
	return s.repo.List(ctx, f)
}

func (s *OrderService) ListByRegister(ctx context.Context, registerID uint) ([]model.Order, error) {
	return s.repo.ListByRegister(ctx, registerID, true)
}

func (s *OrderService) Get(ctx context.Context, id uint) (*model.Order, error) {
	return s.repo.FindByID(ctx, id)
}

// verifyAdminPIN compares the supplied PIN against the configured bcrypt
// hash. An unconfigured hash fails closed: deletion is impossible until an
// administrator PIN is set up.
func (s *OrderService) verifyAdminPIN(pin string) error {
	if s.adminPINHash == "" {
		return ErrReauthFailed
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.adminPINHash), []byte(pin)); err != nil {
		return ErrReauthFailed
	}
	return nil
}

// Delete permanently removes an order after PIN re-verification. Deleting an
// unpaid credit sale also reverses the client's balance debit in the same
// transaction, so balances always equal the sum of their open orders.
func (s *OrderService) Delete(ctx context.Context, id uint, adminPIN string) error {
	if err := s.verifyAdminPIN(adminPIN); err != nil {
		return err
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if order.ClientID != nil && !order.IsPaid {
			if err := s.clients.AddToBalanceTx(tx, *order.ClientID, order.TotalAmount.Neg()); err != nil {
				return err
			}
		}
		return s.repo.DeleteTx(ctx, tx, id)
	})
	if txErr != nil {
		return fmt.Errorf("delete order: %w", txErr)
	}

	s.repo.Invalidate()
	if order.ClientID != nil {
		s.clients.Invalidate()
	}

	log.Info().Uint("order_id", id).Int("order_number", order.OrderNumber).Msg("order deleted")
	return nil
}

// Reprint re-queues the customer receipt for an existing order and records
// the reprint count. Kitchen copies are never reprinted.
func (s *OrderService) Reprint(ctx context.Context, id uint) (*model.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	order.ReprintCount++
	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		s.dispatcher.EnqueuePrint(order, true)
	}
	log.Info().Uint("order_id", id).Int("reprints", order.ReprintCount).Msg("receipt reprinted")
	return order, nil
}
