package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"fornopos/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegisterService() (*RegisterService, *fakeRegisterRepo, *fakeSettingRepo) {
	repo := newFakeRegisterRepo()
	settings := newFakeSettingRepo()
	svc := NewRegisterService(repo, settings)
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC) }
	sharedOrders = nil
	return svc, repo, settings
}

func TestOpenRequiresOperator(t *testing.T) {
	svc, _, _ := newRegisterService()

	_, err := svc.Open(context.Background(), "   ", "morning", decimal.NewFromInt(100))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestOpenRejectsNegativeCash(t *testing.T) {
	svc, _, _ := newRegisterService()

	_, err := svc.Open(context.Background(), "Dana", "morning", decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestOpenStartsCounterAtZero(t *testing.T) {
	svc, _, _ := newRegisterService()

	reg, err := svc.Open(context.Background(), "Dana", "morning", decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.True(t, reg.IsOpen)
	assert.Equal(t, 0, reg.LastOrderNumber)
	assert.Equal(t, "Dana", reg.EmployeeName)
}

func TestOpenRejectsSecondSession(t *testing.T) {
	svc, _, _ := newRegisterService()

	_, err := svc.Open(context.Background(), "Dana", "morning", decimal.NewFromInt(100))
	require.NoError(t, err)

	_, err = svc.Open(context.Background(), "Sam", "evening", decimal.NewFromInt(50))
	assert.ErrorIs(t, err, ErrRegisterAlreadyOpen)
}

func TestReserveNextOrderNumberIsGapFree(t *testing.T) {
	svc, _, _ := newRegisterService()

	reg, err := svc.Open(context.Background(), "Dana", "morning", decimal.NewFromInt(100))
	require.NoError(t, err)

	for want := 1; want <= 5; want++ {
		n, err := svc.ReserveNextOrderNumber(context.Background(), reg)
		require.NoError(t, err)
		assert.Equal(t, want, n)
	}
	assert.Equal(t, 5, reg.LastOrderNumber)
}

func TestReserveMirrorsLegacySettings(t *testing.T) {
	svc, _, settings := newRegisterService()

	reg, err := svc.Open(context.Background(), "Dana", "morning", decimal.NewFromInt(100))
	require.NoError(t, err)

	n, err := svc.ReserveNextOrderNumber(context.Background(), reg)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(n), settings.values[model.SettingLastOrderNumber])
	assert.Equal(t, "2026/03/01", settings.values[model.SettingLastOrderDate])
}

func TestReserveSurvivesSettingsFailure(t *testing.T) {
	svc, _, settings := newRegisterService()
	settings.failSet = true

	reg, err := svc.Open(context.Background(), "Dana", "morning", decimal.NewFromInt(100))
	require.NoError(t, err)

	n, err := svc.ReserveNextOrderNumber(context.Background(), reg)
	require.NoError(t, err, "settings mirror is best-effort")
	assert.Equal(t, 1, n)
}

func TestReserveOnClosedRegisterFails(t *testing.T) {
	svc, _, _ := newRegisterService()

	reg, err := svc.Open(context.Background(), "Dana", "morning", decimal.NewFromInt(100))
	require.NoError(t, err)
	require.NoError(t, svc.Close(context.Background(), reg, decimal.NewFromInt(100), ""))

	_, err = svc.ReserveNextOrderNumber(context.Background(), reg)
	assert.ErrorIs(t, err, ErrRegisterClosed)
}

func TestCloseIsTerminal(t *testing.T) {
	svc, _, _ := newRegisterService()

	reg, err := svc.Open(context.Background(), "Dana", "morning", decimal.NewFromInt(100))
	require.NoError(t, err)
	require.NoError(t, svc.Close(context.Background(), reg, decimal.NewFromInt(140), "short till"))

	assert.False(t, reg.IsOpen)
	assert.NotNil(t, reg.ClosedAt)
	assert.Equal(t, "short till", reg.Notes)

	err = svc.Close(context.Background(), reg, decimal.NewFromInt(1), "")
	assert.ErrorIs(t, err, ErrRegisterClosed)

	current, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestExpectedCashAndDifference(t *testing.T) {
	svc, _, _ := newRegisterService()

	reg, err := svc.Open(context.Background(), "Dana", "morning", decimal.NewFromInt(100))
	require.NoError(t, err)

	sharedOrders = []*model.Order{
		{RegisterID: reg.ID, TotalAmount: decimal.NewFromInt(30)},
		{RegisterID: reg.ID, TotalAmount: decimal.NewFromInt(12)},
		{RegisterID: 99, TotalAmount: decimal.NewFromInt(1000)}, // other session
	}

	expected, err := svc.ExpectedCash(context.Background(), reg)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(142).Equal(expected))

	// Difference is defined as zero while the session is open.
	diff, err := svc.Difference(context.Background(), reg)
	require.NoError(t, err)
	assert.True(t, diff.IsZero())

	require.NoError(t, svc.Close(context.Background(), reg, decimal.NewFromInt(140), ""))
	diff, err = svc.Difference(context.Background(), reg)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(-2).Equal(diff), "declared 140 vs expected 142")

	count, err := svc.OrdersCount(context.Background(), reg)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestNextOrderNumberDisplay(t *testing.T) {
	svc, _, _ := newRegisterService()

	n, err := svc.NextOrderNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n, "no open session")

	reg, err := svc.Open(context.Background(), "Dana", "morning", decimal.NewFromInt(100))
	require.NoError(t, err)

	n, err = svc.NextOrderNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = svc.ReserveNextOrderNumber(context.Background(), reg)
	require.NoError(t, err)

	n, err = svc.NextOrderNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
