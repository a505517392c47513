package repository

import (
	"context"

	"fornopos/internal/cache"
	"fornopos/internal/model"

	"gorm.io/gorm"
)

// OrderFilter narrows order listings. Dates use the ledger's "2006/01/02"
// text layout; empty strings mean no bound.
type OrderFilter struct {
	StartDate string
	EndDate   string
	LoadItems bool
}

type OrderRepository interface {
	// DB exposes the handle for transaction creation in the service layer.
	DB() *gorm.DB
	// CreateTx persists the order and its items inside the given transaction.
	// The derived total is recomputed before writing; cache invalidation is
	// the caller's duty after the transaction commits.
	CreateTx(ctx context.Context, tx *gorm.DB, o *model.Order) error
	FindByID(ctx context.Context, id uint) (*model.Order, error)
	List(ctx context.Context, f OrderFilter) ([]model.Order, error)
	ListByRegister(ctx context.Context, registerID uint, loadItems bool) ([]model.Order, error)
	Update(ctx context.Context, o *model.Order) error
	Delete(ctx context.Context, id uint) error
	// DeleteTx removes the order and its items inside a caller-owned
	// transaction, for deletes that must also adjust a client balance.
	DeleteTx(ctx context.Context, tx *gorm.DB, id uint) error
	// Invalidate drops all cached order reads. Exposed for services that
	// compose order writes into their own transactions.
	Invalidate()
}

type orderRepo struct {
	db *gorm.DB
	qc *cache.QueryCache
}

func NewOrderRepository(db *gorm.DB, qc *cache.QueryCache) OrderRepository {
	return &orderRepo{db: db, qc: qc}
}

func (r *orderRepo) DB() *gorm.DB { return r.db }

func (r *orderRepo) Invalidate() { r.qc.InvalidateTag(cache.TagOrder) }

func (r *orderRepo) CreateTx(ctx context.Context, tx *gorm.DB, o *model.Order) error {
	o.CalculateTotal()
	return tx.WithContext(ctx).Create(o).Error
}

func (r *orderRepo) FindByID(ctx context.Context, id uint) (*model.Order, error) {
	const op = "Order.FindByID"
	if v, ok := r.qc.Get(op, id); ok {
		return v.(*model.Order), nil
	}
	var o model.Order
	if err := r.db.WithContext(ctx).Preload("Items").First(&o, id).Error; err != nil {
		return nil, err
	}
	r.qc.Set(op, &o, cache.TagOrder, id)
	return &o, nil
}

func (r *orderRepo) List(ctx context.Context, f OrderFilter) ([]model.Order, error) {
	const op = "Order.List"
	if v, ok := r.qc.Get(op, f.StartDate, f.EndDate, f.LoadItems); ok {
		return v.([]model.Order), nil
	}

	q := r.db.WithContext(ctx).Model(&model.Order{})
	if f.StartDate != "" && f.EndDate != "" {
		q = q.Where("order_date BETWEEN ? AND ?", f.StartDate, f.EndDate)
	}
	if f.LoadItems {
		q = q.Preload("Items")
	}

	var orders []model.Order
	if err := q.Order("order_date DESC, order_time DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	r.qc.Set(op, orders, cache.TagOrder, f.StartDate, f.EndDate, f.LoadItems)
	return orders, nil
}

func (r *orderRepo) ListByRegister(ctx context.Context, registerID uint, loadItems bool) ([]model.Order, error) {
	const op = "Order.ListByRegister"
	if v, ok := r.qc.Get(op, registerID, loadItems); ok {
		return v.([]model.Order), nil
	}

	q := r.db.WithContext(ctx).Where("register_id = ?", registerID)
	if loadItems {
		q = q.Preload("Items")
	}

	var orders []model.Order
	if err := q.Order("order_date DESC, order_time DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	r.qc.Set(op, orders, cache.TagOrder, registerID, loadItems)
	return orders, nil
}

func (r *orderRepo) Update(ctx context.Context, o *model.Order) error {
	o.CalculateTotal()
	if err := r.db.WithContext(ctx).Save(o).Error; err != nil {
		return err
	}
	r.Invalidate()
	return nil
}

// Delete removes the order's items first, then the order itself — referential
// cleanup is manual, not cascading.
func (r *orderRepo) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return r.DeleteTx(ctx, tx, id)
	})
	if err != nil {
		return err
	}
	r.Invalidate()
	return nil
}

func (r *orderRepo) DeleteTx(ctx context.Context, tx *gorm.DB, id uint) error {
	if err := tx.WithContext(ctx).Where("order_id = ?", id).Delete(&model.OrderItem{}).Error; err != nil {
		return err
	}
	return tx.WithContext(ctx).Delete(&model.Order{}, id).Error
}
