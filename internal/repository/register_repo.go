package repository

import (
	"context"
	"errors"

	"fornopos/internal/cache"
	"fornopos/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RegisterRepository interface {
	Create(ctx context.Context, r *model.Register) error
	// FindOpen returns the most recently opened session still flagged open,
	// or (nil, nil) when none exists. "None" and "found" are the only two
	// valid states — callers must not treat nil as an error.
	FindOpen(ctx context.Context) (*model.Register, error)
	FindByID(ctx context.Context, id uint) (*model.Register, error)
	Update(ctx context.Context, r *model.Register) error
	// IncrementOrderNumber bumps last_order_number at the database level and
	// returns the reserved value.
	IncrementOrderNumber(ctx context.Context, id uint) (int, error)
	List(ctx context.Context, limit int) ([]model.Register, error)
	SumOrderTotals(ctx context.Context, registerID uint) (decimal.Decimal, error)
	CountOrders(ctx context.Context, registerID uint) (int64, error)
}

type registerRepo struct {
	db *gorm.DB
	qc *cache.QueryCache
}

func NewRegisterRepository(db *gorm.DB, qc *cache.QueryCache) RegisterRepository {
	return &registerRepo{db: db, qc: qc}
}

func (r *registerRepo) Create(ctx context.Context, reg *model.Register) error {
	if err := r.db.WithContext(ctx).Create(reg).Error; err != nil {
		return err
	}
	r.qc.InvalidateTag(cache.TagRegister)
	return nil
}

// FindOpen is deliberately uncached: it is the source of truth consulted
// before every checkout.
func (r *registerRepo) FindOpen(ctx context.Context) (*model.Register, error) {
	var reg model.Register
	err := r.db.WithContext(ctx).
		Where("is_open = ?", true).
		Order("opened_at DESC").
		First(&reg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *registerRepo) FindByID(ctx context.Context, id uint) (*model.Register, error) {
	var reg model.Register
	if err := r.db.WithContext(ctx).First(&reg, id).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *registerRepo) Update(ctx context.Context, reg *model.Register) error {
	if err := r.db.WithContext(ctx).Save(reg).Error; err != nil {
		return err
	}
	r.qc.InvalidateTag(cache.TagRegister)
	return nil
}

func (r *registerRepo) IncrementOrderNumber(ctx context.Context, id uint) (int, error) {
	var reserved int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Register{}).
			Where("id = ?", id).
			UpdateColumn("last_order_number", gorm.Expr("last_order_number + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		var reg model.Register
		if err := tx.Select("last_order_number").First(&reg, id).Error; err != nil {
			return err
		}
		reserved = reg.LastOrderNumber
		return nil
	})
	if err != nil {
		return 0, err
	}
	r.qc.InvalidateTag(cache.TagRegister)
	return reserved, nil
}

func (r *registerRepo) List(ctx context.Context, limit int) ([]model.Register, error) {
	const op = "Register.List"
	if v, ok := r.qc.Get(op, limit); ok {
		return v.([]model.Register), nil
	}
	q := r.db.WithContext(ctx).Order("opened_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var regs []model.Register
	if err := q.Find(&regs).Error; err != nil {
		return nil, err
	}
	r.qc.Set(op, regs, cache.TagRegister, limit)
	return regs, nil
}

func (r *registerRepo) SumOrderTotals(ctx context.Context, registerID uint) (decimal.Decimal, error) {
	var result struct{ Total decimal.Decimal }
	err := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Select("COALESCE(SUM(total_amount), 0) AS total").
		Where("register_id = ?", registerID).
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}

func (r *registerRepo) CountOrders(ctx context.Context, registerID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("register_id = ?", registerID).
		Count(&count).Error
	return count, err
}
