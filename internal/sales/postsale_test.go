package sales_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"uniforms-pos/internal/models"
	"uniforms-pos/internal/sales"
)

var laterAt = time.Date(2026, 3, 2, 10, 5, 0, 0, time.UTC)

func finalized(t *testing.T, received int64, fabric float64, items ...models.LineItem) []models.Row {
	t.Helper()
	d := pricedDraft(t, items...)
	p := models.Payment{AmountReceived: received, FabricDelivered: fabric}
	if received > 0 {
		p.PaymentMethod = models.Cash
	}
	rows, err := sales.Finalize(d, p, "order-9", closedAt)
	require.NoError(t, err)
	return rows
}

func TestApplyPaymentTopUp_FillsAscending(t *testing.T) {
	rows := finalized(t, 10000, 0, girlShirts(1, "8"), boyTrousers(1, 70)) // 30000 + 45000

	out, err := sales.ApplyPaymentTopUp(rows, 30000, "", laterAt)
	require.NoError(t, err)
	require.EqualValues(t, 30000, out[0].PaidAllocated)
	require.EqualValues(t, 10000, out[1].PaidAllocated)
	require.EqualValues(t, 35000, out[1].BalanceAllocated)
	for _, r := range out {
		require.EqualValues(t, 40000, r.AmountReceived)
		require.Equal(t, models.StatusPartial, r.PaymentStatus)
		require.Equal(t, "2026-03-02 10:05:00", r.UpdatedOn)
	}

	require.EqualValues(t, 10000, rows[0].PaidAllocated, "input rows must not change")

	out, err = sales.ApplyPaymentTopUp(out, 35000, "", laterAt)
	require.NoError(t, err)
	for _, r := range out {
		require.Equal(t, models.StatusPaidInFull, r.PaymentStatus)
		require.Zero(t, r.BalanceAllocated)
	}
}

func TestApplyPaymentTopUp_SplitEqualsCombined(t *testing.T) {
	rows := finalized(t, 5000, 0, girlShirts(1, "8"), boyTrousers(2, 70), girlShirts(2, "S"))

	a, err := sales.ApplyPaymentTopUp(rows, 40000, "", laterAt)
	require.NoError(t, err)
	a, err = sales.ApplyPaymentTopUp(a, 70000, "", laterAt)
	require.NoError(t, err)

	b, err := sales.ApplyPaymentTopUp(rows, 110000, "", laterAt)
	require.NoError(t, err)
	require.Equal(t, b, a)
}

func TestApplyPaymentTopUp_Rejects(t *testing.T) {
	rows := finalized(t, 0, 0, girlShirts(1, "8"))

	_, err := sales.ApplyPaymentTopUp(rows, 0, "", laterAt)
	require.ErrorIs(t, err, sales.ErrValidation)

	_, err = sales.ApplyPaymentTopUp(rows, 30001, "", laterAt)
	require.ErrorIs(t, err, sales.ErrOverpayment)

	_, err = sales.ApplyPaymentTopUp(nil, 10, "", laterAt)
	require.ErrorIs(t, err, sales.ErrEmptyOrder)

	mixed := append([]models.Row{}, rows...)
	other := rows[0]
	other.OrderID = "other"
	mixed = append(mixed, other)
	_, err = sales.ApplyPaymentTopUp(mixed, 10, "", laterAt)
	require.ErrorIs(t, err, sales.ErrRowsMismatched)
}

func TestApplyPaymentTopUp_PendingOrderNeedsMethod(t *testing.T) {
	rows := finalized(t, 0, 0, girlShirts(1, "8"), boyTrousers(1, 70))
	require.Empty(t, rows[0].PaymentMethod)

	_, err := sales.ApplyPaymentTopUp(rows, 10000, "", laterAt)
	require.ErrorIs(t, err, sales.ErrPaymentMethod)
	_, err = sales.ApplyPaymentTopUp(rows, 10000, "Card", laterAt)
	require.ErrorIs(t, err, sales.ErrValidation)

	out, err := sales.ApplyPaymentTopUp(rows, 10000, models.Transfer, laterAt)
	require.NoError(t, err)
	for _, r := range out {
		require.Equal(t, models.Transfer, r.PaymentMethod)
		require.Equal(t, models.StatusPartial, r.PaymentStatus)
	}

	out, err = sales.ApplyPaymentTopUp(out, 5000, "", laterAt)
	require.NoError(t, err)
	require.Equal(t, models.Transfer, out[1].PaymentMethod, "stored method is kept")
}

func TestApplyTotalPaid_PendingOrderNeedsMethod(t *testing.T) {
	rows := finalized(t, 0, 0, girlShirts(1, "8"))

	_, err := sales.ApplyTotalPaid(rows, 20000, "", laterAt)
	require.ErrorIs(t, err, sales.ErrPaymentMethod)

	out, err := sales.ApplyTotalPaid(rows, 0, "", laterAt)
	require.NoError(t, err)
	require.Empty(t, out[0].PaymentMethod)

	out, err = sales.ApplyTotalPaid(rows, 20000, models.Cash, laterAt)
	require.NoError(t, err)
	require.Equal(t, models.Cash, out[0].PaymentMethod)
}

func TestApplyTotalPaid_Reallocates(t *testing.T) {
	rows := finalized(t, 60000, 0, girlShirts(1, "8"), boyTrousers(1, 70))

	out, err := sales.ApplyTotalPaid(rows, 20000, "", laterAt)
	require.NoError(t, err)
	require.EqualValues(t, 20000, out[0].PaidAllocated)
	require.EqualValues(t, 10000, out[0].BalanceAllocated)
	require.Zero(t, out[1].PaidAllocated)
	require.Equal(t, models.StatusPartial, out[1].PaymentStatus)

	out, err = sales.ApplyTotalPaid(rows, 0, "", laterAt)
	require.NoError(t, err)
	require.Equal(t, models.StatusPending, out[0].PaymentStatus)

	_, err = sales.ApplyTotalPaid(rows, 75001, "", laterAt)
	require.ErrorIs(t, err, sales.ErrOverpayment)
	_, err = sales.ApplyTotalPaid(rows, -1, "", laterAt)
	require.ErrorIs(t, err, sales.ErrValidation)
}

func TestApplyFabricDelivery(t *testing.T) {
	rows := finalized(t, 0, 0, girlShirts(1, "8"), boyTrousers(2, 70), boyTrousers(1, 60))

	out, err := sales.ApplyFabricDelivery(rows, 1.2, laterAt)
	require.NoError(t, err)
	out, err = sales.ApplyFabricDelivery(out, 0.8, laterAt.Add(time.Hour))
	require.NoError(t, err)

	require.Zero(t, out[0].FabricAllocated)
	require.InDelta(t, 2.0, out[1].FabricAllocated, 1e-9)
	require.Zero(t, out[2].FabricAllocated)

	want := models.FabricLog{
		{At: "2026-03-02 10:05", Meters: 1.2},
		{At: "2026-03-02 11:05", Meters: 0.8},
	}
	for _, r := range out {
		require.True(t, r.FabricDelivered)
		require.False(t, r.FabricPending)
		require.InDelta(t, 2.0, r.FabricMeters, 1e-9)
		require.Equal(t, want, r.FabricLog)
	}
	require.Equal(t, "2026-03-02 10:05: 1.20 m; 2026-03-02 11:05: 0.80 m", out[0].FabricLog.String())
	require.Empty(t, rows[1].FabricLog, "input rows must not change")
}

func TestApplyFabricDelivery_Rejects(t *testing.T) {
	rows := finalized(t, 0, 0, girlShirts(1, "8"))

	_, err := sales.ApplyFabricDelivery(rows, 1, laterAt)
	require.ErrorIs(t, err, sales.ErrNoTrousers)

	_, err = sales.ApplyFabricDelivery(rows, 0, laterAt)
	require.ErrorIs(t, err, sales.ErrValidation)
}
