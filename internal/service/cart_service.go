package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fornopos/internal/dto"
	"fornopos/internal/model"
	"fornopos/internal/repository"
	"fornopos/internal/worker"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartService is the per-terminal working set of line items and the checkout
// path that turns it into a persisted order. All cart state lives in memory;
// nothing touches the ledger until checkout.
type CartService struct {
	mu    sync.Mutex
	items []model.CartItem

	registers  *RegisterService
	orders     repository.OrderRepository
	clients    repository.ClientRepository
	dispatcher *worker.Dispatcher
	now        func() time.Time
}

func NewCartService(
	registers *RegisterService,
	orders repository.OrderRepository,
	clients repository.ClientRepository,
	dispatcher *worker.Dispatcher,
) *CartService {
	return &CartService{
		registers:  registers,
		orders:     orders,
		clients:    clients,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// AddItem appends a new line for product. Every call creates a distinct item
// — identical products are never merged, so per-line notes, toppings and
// discounts stay independent. customPrice, when given, overrides the catalog
// price (e.g. toppings priced in by the dialog); otherwise topping surcharges
// are added to the catalog price. OriginalPrice always keeps the catalog
// price for override detection.
func (s *CartService) AddItem(product *model.Product, categoryName string, quantity int, notes string, toppings []model.ToppingSelection, customPrice *decimal.Decimal) {
	if quantity < 1 {
		quantity = 1
	}

	unit := product.Price
	if customPrice != nil {
		unit = *customPrice
	} else {
		for _, sel := range toppings {
			unit = unit.Add(sel.Surcharge())
		}
	}

	item := model.CartItem{
		ProductID:     product.ID,
		Name:          model.DisplayName(product.Name, toppings),
		BaseName:      product.Name,
		CategoryName:  categoryName,
		Quantity:      quantity,
		UnitPrice:     unit,
		OriginalPrice: product.Price,
		Discount:      decimal.Zero,
		Notes:         notes,
		Toppings:      toppings,
	}
	item.CalculateFinalPrice()

	s.mu.Lock()
	s.items = append(s.items, item)
	s.mu.Unlock()
}

// RemoveItem drops the line at index; out-of-range indexes are ignored.
func (s *CartService) RemoveItem(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.items) {
		return
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
}

// UpdateQuantity sets the line's quantity and recomputes its final price.
// Quantities ≤ 0 are a no-op — removal is explicit.
func (s *CartService) UpdateQuantity(index, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.items) || quantity <= 0 {
		return
	}
	s.items[index].Quantity = quantity
	s.items[index].CalculateFinalPrice()
}

// UpdateDiscount sets the line's flat per-unit discount and recomputes its
// final price.
func (s *CartService) UpdateDiscount(index int, discount decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.items) || discount.IsNegative() {
		return
	}
	s.items[index].Discount = discount
	s.items[index].CalculateFinalPrice()
}

// Items returns a snapshot copy of the cart.
func (s *CartService) Items() []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Total sums the cart's final prices.
func (s *CartService) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cartTotal(s.items)
}

func cartTotal(items []model.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.FinalPrice)
	}
	return total
}

// Clear empties the cart.
func (s *CartService) Clear() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
}

// Checkout converts the cart into a persisted order bound to the open
// register session.
//
// Failure contract: an empty cart or missing session writes nothing and
// keeps the cart; a persistence failure propagates and keeps the cart so the
// operator can retry without re-entering items. Printing is dispatched only
// after commit and can neither fail nor delay the sale.
func (s *CartService) Checkout(ctx context.Context, isDelivery bool, delivery dto.DeliveryData, clientID *uint) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) == 0 {
		return nil, ErrCartEmpty
	}

	reg, err := s.registers.Current(ctx)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, ErrNoOpenRegister
	}

	total := cartTotal(s.items)
	if isDelivery {
		total = total.Add(delivery.Price)
	}

	// A client present always means a credit sale; cash sales pass nil.
	if clientID != nil {
		client, err := s.clients.FindByID(ctx, *clientID)
		if err != nil {
			return nil, fmt.Errorf("%w: unknown client %d", ErrInvalidInput, *clientID)
		}
		if !client.IsActive {
			return nil, fmt.Errorf("%w: client %q is inactive", ErrInvalidInput, client.Name)
		}
		if !client.CanPurchase(total) {
			return nil, ErrCreditExceeded
		}
	}

	number, err := s.registers.ReserveNextOrderNumber(ctx, reg)
	if err != nil {
		return nil, err
	}

	now := s.now()
	order := &model.Order{
		OrderNumber: number,
		OrderDate:   now.Format(dateLayout),
		OrderTime:   now.Format(timeLayout),
		RegisterID:  reg.ID,
		ClientID:    clientID,
		IsPaid:      clientID == nil,
	}
	if isDelivery {
		order.IsDelivery = true
		order.DeliveryAddress = delivery.Address
		order.DeliveryPhone = delivery.Phone
		order.DeliveryPrice = delivery.Price
	}

	for _, ci := range s.items {
		if !ci.UnitPrice.Equal(ci.OriginalPrice) || !ci.Discount.IsZero() {
			order.PriceModified = true
		}
		item := model.OrderItem{
			ProductName:  ci.StoredName(),
			Quantity:     ci.Quantity,
			UnitPrice:    ci.UnitPrice,
			Discount:     ci.Discount,
			Notes:        ci.Notes,
			CategoryName: ci.CategoryName,
			BaseName:     ci.BaseName,
			Toppings:     ci.Toppings,
		}
		item.CalculateFinalPrice()
		order.Items = append(order.Items, item)
	}

	txErr := runTx(ctx, s.orders.DB(), func(tx *gorm.DB) error {
		if err := s.orders.CreateTx(ctx, tx, order); err != nil {
			return err
		}
		if clientID != nil {
			if err := s.clients.AddToBalanceTx(tx, *clientID, order.TotalAmount); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		// The cart stays intact for retry. The reserved number is consumed;
		// a numbering gap is preferable to reusing a number that may already
		// be on a kitchen slip.
		return nil, fmt.Errorf("persist order: %w", txErr)
	}

	s.orders.Invalidate()
	if clientID != nil {
		s.clients.Invalidate()
	}

	if s.dispatcher != nil {
		s.dispatcher.EnqueuePrint(order, false)
	}

	log.Info().
		Int("order_number", order.OrderNumber).
		Str("total", order.TotalAmount.StringFixed(2)).
		Bool("credit", clientID != nil).
		Msg("checkout complete")

	s.items = nil
	return order, nil
}

// CurrentOrderNumber is the number the next checkout will take, 0 when no
// register is open.
func (s *CartService) CurrentOrderNumber(ctx context.Context) (int, error) {
	return s.registers.NextOrderNumber(ctx)
}
