package sales_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"uniforms-pos/internal/models"
	"uniforms-pos/internal/sales"
)

func paidOf(a []sales.Allocation) []int64 {
	out := make([]int64, len(a))
	for i, x := range a {
		out[i] = x.Paid
	}
	return out
}

func balanceOf(a []sales.Allocation) []int64 {
	out := make([]int64, len(a))
	for i, x := range a {
		out[i] = x.Balance
	}
	return out
}

func sum(xs []int64) int64 {
	var s int64
	for _, x := range xs {
		s += x
	}
	return s
}

func TestAllocatePayment_FillsInEntryOrder(t *testing.T) {
	got := sales.AllocatePayment([]int64{30000, 45000}, 50000)
	require.Equal(t, []int64{30000, 20000}, paidOf(got))
	require.Equal(t, []int64{0, 25000}, balanceOf(got))
}

func TestAllocatePayment_Conserves(t *testing.T) {
	subs := []int64{30000, 45000, 15000}
	total := sum(subs)
	for r := int64(0); r <= total; r += 2500 {
		got := sales.AllocatePayment(subs, r)
		paid := paidOf(got)

		require.Equal(t, min(r, total), sum(paid), "R=%d", r)
		require.Equal(t, max(0, total-r), sum(balanceOf(got)), "R=%d", r)
		for i := range subs {
			require.LessOrEqual(t, paid[i], subs[i])
			require.Equal(t, subs[i], got[i].Paid+got[i].Balance)
			if i > 0 && paid[i] > 0 {
				require.Equal(t, subs[i-1], paid[i-1], "item %d paid before item %d was covered", i+1, i)
			}
		}
	}
}

func TestAllocatePayment_SurplusLandsOnLastRow(t *testing.T) {
	got := sales.AllocatePayment([]int64{10000, 20000}, 35000)
	require.Equal(t, []int64{10000, 25000}, paidOf(got))
	require.Equal(t, []int64{0, 0}, balanceOf(got))
	require.EqualValues(t, 35000, sum(paidOf(got)))
}

func TestAllocatePayment_Empty(t *testing.T) {
	require.Empty(t, sales.AllocatePayment(nil, 100))
}

func TestTopUpPayment_MonotonicFill(t *testing.T) {
	start := sales.AllocatePayment([]int64{30000, 45000, 15000}, 10000)

	for _, tc := range []struct{ x, y int64 }{
		{5000, 5000},
		{20000, 30000},
		{1000, 73999},
		{0, 80000},
	} {
		twice := sales.TopUpPayment(sales.TopUpPayment(start, tc.x), tc.y)
		once := sales.TopUpPayment(start, tc.x+tc.y)
		require.Equal(t, once, twice, "x=%d y=%d", tc.x, tc.y)
	}
}

func TestTopUpPayment_DoesNotMutateInput(t *testing.T) {
	start := sales.AllocatePayment([]int64{100, 100}, 50)
	before := append([]sales.Allocation(nil), start...)
	_ = sales.TopUpPayment(start, 100)
	require.Equal(t, before, start)
}

func TestTopUpPayment_MatchesFreshAllocation(t *testing.T) {
	subs := []int64{30000, 45000}
	got := sales.TopUpPayment(sales.AllocatePayment(subs, 20000), 30000)
	require.Equal(t, sales.AllocatePayment(subs, 50000), got)
}

func TestAllocateFabric_FirstTrouserRowOnly(t *testing.T) {
	for _, meters := range []float64{0.5, 3, 12.75} {
		got := sales.AllocateFabric([]int{0, 2}, meters)
		require.Zero(t, got[0])
		require.Equal(t, meters, got[1])
	}

	got := sales.AllocateFabric([]int{0, 1, 3}, 4)
	require.Equal(t, []float64{0, 4, 0}, got)

	got = sales.AllocateFabric([]int{0, 0}, 4)
	require.Equal(t, []float64{0, 0}, got)
	require.Equal(t, -1, sales.FabricBearer([]int{0, 0}))
}

func TestDerivePaymentStatus(t *testing.T) {
	s, err := sales.DerivePaymentStatus(0, 1000)
	require.NoError(t, err)
	require.Equal(t, models.StatusPending, s)

	s, err = sales.DerivePaymentStatus(500, 1000)
	require.NoError(t, err)
	require.Equal(t, models.StatusPartial, s)

	s, err = sales.DerivePaymentStatus(1000, 1000)
	require.NoError(t, err)
	require.Equal(t, models.StatusPaidInFull, s)

	_, err = sales.DerivePaymentStatus(1001, 1000)
	require.ErrorIs(t, err, sales.ErrOverpayment)
}
