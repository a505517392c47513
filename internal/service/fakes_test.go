package service

import (
	"context"
	"errors"
	"time"

	"fornopos/internal/model"
	"fornopos/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── In-memory RegisterRepository ─────────────────────────────────────────────

type fakeRegisterRepo struct {
	regs   map[uint]*model.Register
	nextID uint
}

func newFakeRegisterRepo() *fakeRegisterRepo {
	return &fakeRegisterRepo{regs: make(map[uint]*model.Register)}
}

func (r *fakeRegisterRepo) Create(_ context.Context, reg *model.Register) error {
	r.nextID++
	reg.ID = r.nextID
	r.regs[reg.ID] = reg
	return nil
}

func (r *fakeRegisterRepo) FindOpen(_ context.Context) (*model.Register, error) {
	for _, reg := range r.regs {
		if reg.IsOpen {
			return reg, nil
		}
	}
	return nil, nil
}

func (r *fakeRegisterRepo) FindByID(_ context.Context, id uint) (*model.Register, error) {
	reg, ok := r.regs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return reg, nil
}

func (r *fakeRegisterRepo) Update(_ context.Context, reg *model.Register) error {
	r.regs[reg.ID] = reg
	return nil
}

func (r *fakeRegisterRepo) IncrementOrderNumber(_ context.Context, id uint) (int, error) {
	reg, ok := r.regs[id]
	if !ok {
		return 0, gorm.ErrRecordNotFound
	}
	reg.LastOrderNumber++
	return reg.LastOrderNumber, nil
}

func (r *fakeRegisterRepo) List(_ context.Context, limit int) ([]model.Register, error) {
	var out []model.Register
	for _, reg := range r.regs {
		out = append(out, *reg)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeRegisterRepo) SumOrderTotals(_ context.Context, registerID uint) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, o := range sharedOrders {
		if o.RegisterID == registerID {
			total = total.Add(o.TotalAmount)
		}
	}
	return total, nil
}

func (r *fakeRegisterRepo) CountOrders(_ context.Context, registerID uint) (int64, error) {
	var n int64
	for _, o := range sharedOrders {
		if o.RegisterID == registerID {
			n++
		}
	}
	return n, nil
}

// sharedOrders lets the register fake report sales persisted through the
// order fake within one test.
var sharedOrders []*model.Order

// ── In-memory SettingRepository ──────────────────────────────────────────────

type fakeSettingRepo struct {
	values map[string]string
	// failSet simulates a settings write failure; reservations must survive it.
	failSet bool
}

func newFakeSettingRepo() *fakeSettingRepo {
	return &fakeSettingRepo{values: make(map[string]string)}
}

func (r *fakeSettingRepo) Get(_ context.Context, key string) (string, error) {
	return r.values[key], nil
}

func (r *fakeSettingRepo) Set(_ context.Context, key, value string) error {
	if r.failSet {
		return errors.New("settings table locked")
	}
	r.values[key] = value
	return nil
}

// ── In-memory OrderRepository ────────────────────────────────────────────────

type fakeOrderRepo struct {
	orders map[uint]*model.Order
	nextID uint
	// failCreate simulates a persistence failure during checkout.
	failCreate bool
}

func newFakeOrderRepo() *fakeOrderRepo {
	sharedOrders = nil
	return &fakeOrderRepo{orders: make(map[uint]*model.Order)}
}

func (r *fakeOrderRepo) DB() *gorm.DB { return nil }

func (r *fakeOrderRepo) CreateTx(_ context.Context, _ *gorm.DB, o *model.Order) error {
	if r.failCreate {
		return errors.New("disk I/O error")
	}
	o.CalculateTotal()
	r.nextID++
	o.ID = r.nextID
	o.CreatedAt = time.Now()
	for i := range o.Items {
		o.Items[i].OrderID = o.ID
	}
	r.orders[o.ID] = o
	sharedOrders = append(sharedOrders, o)
	return nil
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id uint) (*model.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (r *fakeOrderRepo) List(_ context.Context, f repository.OrderFilter) ([]model.Order, error) {
	var out []model.Order
	for _, o := range r.orders {
		if f.StartDate != "" && o.OrderDate < f.StartDate {
			continue
		}
		if f.EndDate != "" && o.OrderDate > f.EndDate {
			continue
		}
		out = append(out, *o)
	}
	return out, nil
}

func (r *fakeOrderRepo) ListByRegister(_ context.Context, registerID uint, _ bool) ([]model.Order, error) {
	var out []model.Order
	for _, o := range r.orders {
		if o.RegisterID == registerID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) Update(_ context.Context, o *model.Order) error {
	if _, ok := r.orders[o.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	o.CalculateTotal()
	r.orders[o.ID] = o
	return nil
}

func (r *fakeOrderRepo) Delete(ctx context.Context, id uint) error {
	return r.DeleteTx(ctx, nil, id)
}

func (r *fakeOrderRepo) DeleteTx(_ context.Context, _ *gorm.DB, id uint) error {
	if _, ok := r.orders[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.orders, id)
	for i, o := range sharedOrders {
		if o.ID == id {
			sharedOrders = append(sharedOrders[:i], sharedOrders[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeOrderRepo) Invalidate() {}

// ── In-memory ClientRepository ───────────────────────────────────────────────

type fakeClientRepo struct {
	clients map[uint]*model.Client
	nextID  uint
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[uint]*model.Client)}
}

func (r *fakeClientRepo) List(_ context.Context, activeOnly bool) ([]model.Client, error) {
	var out []model.Client
	for _, c := range r.clients {
		if activeOnly && !c.IsActive {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeClientRepo) FindByID(_ context.Context, id uint) (*model.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *fakeClientRepo) Save(_ context.Context, c *model.Client) error {
	if c.ID == 0 {
		r.nextID++
		c.ID = r.nextID
	}
	r.clients[c.ID] = c
	return nil
}

func (r *fakeClientRepo) Deactivate(_ context.Context, id uint) error {
	c, ok := r.clients[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.IsActive = false
	return nil
}

func (r *fakeClientRepo) AddToBalance(_ context.Context, id uint, amount decimal.Decimal) error {
	return r.AddToBalanceTx(nil, id, amount)
}

func (r *fakeClientRepo) SubtractFromBalance(ctx context.Context, id uint, amount decimal.Decimal) error {
	return r.AddToBalance(ctx, id, amount.Neg())
}

func (r *fakeClientRepo) AddToBalanceTx(_ *gorm.DB, id uint, amount decimal.Decimal) error {
	c, ok := r.clients[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.CurrentBalance = c.CurrentBalance.Add(amount)
	return nil
}

func (r *fakeClientRepo) Invalidate() {}
