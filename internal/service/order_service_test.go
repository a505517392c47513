package service

import (
	"context"
	"testing"

	"fornopos/internal/dto"
	"fornopos/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testPIN = "4242"

func newOrderFixture(t *testing.T) (*OrderService, *cartFixture) {
	t.Helper()
	f := newCartFixture(t)
	hash, err := bcrypt.GenerateFromPassword([]byte(testPIN), bcrypt.MinCost)
	require.NoError(t, err)
	svc := NewOrderService(f.orders, f.clients, nil, string(hash))
	return svc, f
}

func checkoutOne(t *testing.T, f *cartFixture, clientID *uint) *model.Order {
	t.Helper()
	f.cart.AddItem(pizza(), "Pizza", 2, "", nil, nil)
	order, err := f.cart.Checkout(context.Background(), false, dto.DeliveryData{}, clientID)
	require.NoError(t, err)
	return order
}

func TestDeleteRequiresCorrectPIN(t *testing.T) {
	svc, f := newOrderFixture(t)
	f.openRegister(t)
	order := checkoutOne(t, f, nil)

	err := svc.Delete(context.Background(), order.ID, "0000")
	assert.ErrorIs(t, err, ErrReauthFailed)

	_, err = svc.Get(context.Background(), order.ID)
	assert.NoError(t, err, "order untouched after failed reauth")
}

func TestDeleteFailsClosedWithoutConfiguredPIN(t *testing.T) {
	f := newCartFixture(t)
	f.openRegister(t)
	order := checkoutOne(t, f, nil)

	svc := NewOrderService(f.orders, f.clients, nil, "")
	err := svc.Delete(context.Background(), order.ID, testPIN)
	assert.ErrorIs(t, err, ErrReauthFailed)
}

func TestDeleteRemovesOrder(t *testing.T) {
	svc, f := newOrderFixture(t)
	f.openRegister(t)
	order := checkoutOne(t, f, nil)

	require.NoError(t, svc.Delete(context.Background(), order.ID, testPIN))

	_, err := svc.Get(context.Background(), order.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteUnpaidCreditSaleReversesBalance(t *testing.T) {
	svc, f := newOrderFixture(t)
	f.openRegister(t)

	client := &model.Client{Name: "Corner Office", CreditLimit: decimal.NewFromFloat(100.0), IsActive: true}
	require.NoError(t, f.clients.Save(context.Background(), client))

	order := checkoutOne(t, f, &client.ID)
	require.True(t, decimal.NewFromFloat(20.0).Equal(client.CurrentBalance))

	require.NoError(t, svc.Delete(context.Background(), order.ID, testPIN))
	assert.True(t, client.CurrentBalance.IsZero(), "deleting the sale reverses the debit")
}

func TestDeleteMissingOrder(t *testing.T) {
	svc, _ := newOrderFixture(t)
	err := svc.Delete(context.Background(), 404, testPIN)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestReprintIncrementsCounter(t *testing.T) {
	svc, f := newOrderFixture(t)
	f.openRegister(t)
	order := checkoutOne(t, f, nil)
	require.Equal(t, 0, order.ReprintCount)

	got, err := svc.Reprint(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.ReprintCount)

	got, err = svc.Reprint(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ReprintCount)
}

func TestListByRegisterScopesToSession(t *testing.T) {
	svc, f := newOrderFixture(t)
	reg := f.openRegister(t)
	checkoutOne(t, f, nil)
	checkoutOne(t, f, nil)

	orders, err := svc.ListByRegister(context.Background(), reg.ID)
	require.NoError(t, err)
	assert.Len(t, orders, 2)

	orders, err = svc.ListByRegister(context.Background(), reg.ID+1)
	require.NoError(t, err)
	assert.Empty(t, orders)
}
