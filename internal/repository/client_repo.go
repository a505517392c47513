package repository

import (
	"context"

	"fornopos/internal/cache"
	"fornopos/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ClientRepository interface {
	List(ctx context.Context, activeOnly bool) ([]model.Client, error)
	FindByID(ctx context.Context, id uint) (*model.Client, error)
	// Save inserts when ID is zero, updates otherwise. It must never be used
	// to change CurrentBalance — that moves only through the balance ops.
	Save(ctx context.Context, c *model.Client) error
	// Deactivate is the soft delete: flips the active flag, keeps history.
	Deactivate(ctx context.Context, id uint) error
	AddToBalance(ctx context.Context, id uint, amount decimal.Decimal) error
	SubtractFromBalance(ctx context.Context, id uint, amount decimal.Decimal) error
	// AddToBalanceTx debits inside a caller-owned transaction; the caller
	// invalidates after commit.
	AddToBalanceTx(tx *gorm.DB, id uint, amount decimal.Decimal) error
	Invalidate()
}

type clientRepo struct {
	db *gorm.DB
	qc *cache.QueryCache
}

func NewClientRepository(db *gorm.DB, qc *cache.QueryCache) ClientRepository {
	return &clientRepo{db: db, qc: qc}
}

func (r *clientRepo) Invalidate() { r.qc.InvalidateTag(cache.TagClient) }

func (r *clientRepo) List(ctx context.Context, activeOnly bool) ([]model.Client, error) {
	const op = "Client.List"
	if v, ok := r.qc.Get(op, activeOnly); ok {
		return v.([]model.Client), nil
	}
	q := r.db.WithContext(ctx).Order("name")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var clients []model.Client
	if err := q.Find(&clients).Error; err != nil {
		return nil, err
	}
	r.qc.Set(op, clients, cache.TagClient, activeOnly)
	return clients, nil
}

func (r *clientRepo) FindByID(ctx context.Context, id uint) (*model.Client, error) {
	const op = "Client.FindByID"
	if v, ok := r.qc.Get(op, id); ok {
		return v.(*model.Client), nil
	}
	var c model.Client
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	r.qc.Set(op, &c, cache.TagClient, id)
	return &c, nil
}

func (r *clientRepo) Save(ctx context.Context, c *model.Client) error {
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return err
	}
	r.Invalidate()
	return nil
}

func (r *clientRepo) Deactivate(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).
		Model(&model.Client{}).
		Where("id = ?", id).
		Update("is_active", false).Error
	if err != nil {
		return err
	}
	r.Invalidate()
	return nil
}

func (r *clientRepo) AddToBalance(ctx context.Context, id uint, amount decimal.Decimal) error {
	if err := r.AddToBalanceTx(r.db.WithContext(ctx), id, amount); err != nil {
		return err
	}
	r.Invalidate()
	return nil
}

func (r *clientRepo) SubtractFromBalance(ctx context.Context, id uint, amount decimal.Decimal) error {
	return r.AddToBalance(ctx, id, amount.Neg())
}

func (r *clientRepo) AddToBalanceTx(tx *gorm.DB, id uint, amount decimal.Decimal) error {
	res := tx.Model(&model.Client{}).
		Where("id = ?", id).
		UpdateColumn("current_balance", gorm.Expr("current_balance + ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
