package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"fornopos/internal/model"
	"fornopos/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006/01/02"
const timeLayout = "15:04:05"

// RegisterService owns the single-open-session invariant and the per-session
// order-number counter. Open, Current and ReserveNextOrderNumber are
// serialized behind one mutex: the desktop-era code was single threaded and
// never exercised the read-then-write race, the HTTP surface can.
type RegisterService struct {
	repo     repository.RegisterRepository
	settings repository.SettingRepository
	mu       sync.Mutex
	now      func() time.Time
}

func NewRegisterService(repo repository.RegisterRepository, settings repository.SettingRepository) *RegisterService {
	return &RegisterService{repo: repo, settings: settings, now: time.Now}
}

// Open starts a new shift session with the counter at zero. It fails when a
// session is already open — recovery from a stuck session is closing it, not
// opening a second one.
func (s *RegisterService) Open(ctx context.Context, operator, shiftType string, openingCash decimal.Decimal) (*model.Register, error) {
	operator = strings.TrimSpace(operator)
	if operator == "" {
		return nil, fmt.Errorf("%w: operator name is required", ErrInvalidInput)
	}
	if openingCash.IsNegative() {
		return nil, fmt.Errorf("%w: opening cash cannot be negative", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	open, err := s.repo.FindOpen(ctx)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, ErrRegisterAlreadyOpen
	}

	reg := &model.Register{
		ShiftType:     shiftType,
		EmployeeName:  operator,
		OpeningAmount: openingCash,
		OpenedAt:      s.now(),
		IsOpen:        true,
	}
	if err := s.repo.Create(ctx, reg); err != nil {
		return nil, err
	}
	log.Info().Uint("register_id", reg.ID).Str("operator", operator).Str("shift", shiftType).Msg("register opened")
	return reg, nil
}

// Current returns the open session or nil. It is the unique source of truth
// consulted before any checkout.
func (s *RegisterService) Current(ctx context.Context) (*model.Register, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.FindOpen(ctx)
}

// ReserveNextOrderNumber atomically bumps and persists the session counter
// and returns the reserved value. Called at most once per checkout; values
// form a gap-free sequence starting at 1.
func (s *RegisterService) ReserveNextOrderNumber(ctx context.Context, reg *model.Register) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !reg.IsOpen {
		return 0, ErrRegisterClosed
	}
	n, err := s.repo.IncrementOrderNumber(ctx, reg.ID)
	if err != nil {
		return 0, err
	}
	reg.LastOrderNumber = n

	// Legacy global keys from the pre-register numbering scheme, kept for
	// migration compatibility. Best-effort: a settings write failure must not
	// void a reserved number.
	if err := s.settings.Set(ctx, model.SettingLastOrderNumber, strconv.Itoa(n)); err != nil {
		log.Warn().Err(err).Msg("failed to mirror last_order_number setting")
	}
	if err := s.settings.Set(ctx, model.SettingLastOrderDate, s.now().Format(dateLayout)); err != nil {
		log.Warn().Err(err).Msg("failed to mirror last_order_date setting")
	}
	return n, nil
}

// NextOrderNumber is the display value for the terminal header: the open
// session's counter plus one, or 0 when no session is open.
func (s *RegisterService) NextOrderNumber(ctx context.Context) (int, error) {
	reg, err := s.Current(ctx)
	if err != nil {
		return 0, err
	}
	if reg == nil {
		return 0, nil
	}
	return reg.LastOrderNumber + 1, nil
}

/// Close ends the session: closing cash, timestamp and notes are recorded and
// the session becomes read-only history.
func (s *RegisterService) Close(ctx context.Context, reg *model.Register, closingCash decimal.Decimal, notes string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !reg.IsOpen {
		return ErrRegisterClosed
	}
	closedAt := s.now()
	reg.ClosingAmount = closingCash
	reg.ClosedAt = &closedAt
	reg.IsOpen = false
	reg.Notes = notes
	if err := s.repo.Update(ctx, reg); err != nil {
		return err
	}
	log.Info().Uint("register_id", reg.ID).Str("closing", closingCash.StringFixed(2)).Msg("register closed")
	return nil
}

// TotalSales sums the totals of every order in the session.
func (s *RegisterService) TotalSales(ctx context.Context, reg *model.Register) (decimal.Decimal, error) {
	return s.repo.SumOrderTotals(ctx, reg.ID)
}

// OrdersCount reports how many orders the session produced.
func (s *RegisterService) OrdersCount(ctx context.Context, reg *model.Register) (int64, error) {
	return s.repo.CountOrders(ctx, reg.ID)
}

// ExpectedCash is opening cash plus the session's sales.
func (s *RegisterService) ExpectedCash(ctx context.Context, reg *model.Register) (decimal.Decimal, error) {
	sales, err := s.repo.SumOrderTotals(ctx, reg.ID)
	if err != nil {
		return decimal.Zero, err
	}
	return reg.OpeningAmount.Add(sales), nil
}

// Difference is declared minus expected cash, defined as 0 while open.
func (s *RegisterService) Difference(ctx context.Context, reg *model.Register) (decimal.Decimal, error) {
	if reg.IsOpen {
		return decimal.Zero, nil
	}
	expected, err := s.ExpectedCash(ctx, reg)
	if err != nil {
		return decimal.Zero, err
	}
	return reg.ClosingAmount.Sub(expected), nil
}

// History lists past sessions, newest first.
func (s *RegisterService) History(ctx context.Context, limit int) ([]model.Register, error) {
	return s.repo.List(ctx, limit)
}

// GetByID loads one session.
func (s *RegisterService) GetByID(ctx context.Context, id uint) (*model.Register, error) {
	return s.repo.FindByID(ctx, id)
}
