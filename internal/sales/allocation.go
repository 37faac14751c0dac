package sales

import (
	"fmt"

	"uniforms-pos/internal/models"
)

// Allocation is the share of an order payment attributed to one line item.
type Allocation struct {
	Paid    int64
	Balance int64
}

// AllocatePayment fills the subtotals in entry order with the received
// amount. Any surplus left after the last item is added to the last item.
func AllocatePayment(subtotals []int64, received int64) []Allocation {
	out := make([]Allocation, len(subtotals))
	remaining := received
	for i, sub := range subtotals {
		allocated := min(remaining, sub)
		if allocated < 0 {
			allocated = 0
		}
		remaining -= allocated
		out[i] = Allocation{Paid: allocated, Balance: sub - allocated}
	}
	if remaining > 0 && len(out) > 0 {
		out[len(out)-1].Paid += remaining
	}
	return out
}

// TopUpPayment distributes increment over the outstanding balances in
// ascending order. The input is left untouched.
func TopUpPayment(allocs []Allocation, increment int64) []Allocation {
	out := make([]Allocation, len(allocs))
	copy(out, allocs)
	remaining := increment
	for i := range out {
		fill := min(remaining, out[i].Balance)
		if fill <= 0 {
			continue
		}
		out[i].Paid += fill
		out[i].Balance -= fill
		remaining -= fill
	}
	if remaining > 0 && len(out) > 0 {
		out[len(out)-1].Paid += remaining
	}
	return out
}

// FabricBearer returns the index of the first item with trousers, or -1.
func FabricBearer(trousers []int) int {
	for i, q := range trousers {
		if q > 0 {
			return i
		}
	}
	return -1
}

// AllocateFabric attributes all delivered meters to the fabric bearer so
// that summing over the rows of an order counts the delivery once.
func AllocateFabric(trousers []int, meters float64) []float64 {
	out := make([]float64, len(trousers))
	if i := FabricBearer(trousers); i >= 0 {
		out[i] = meters
	}
	return out
}

func DerivePaymentStatus(paid, total int64) (models.PaymentStatus, error) {
	switch {
	case paid > total:
		return "", fmt.Errorf("%w: paid %d, total %d", ErrOverpayment, paid, total)
	case paid == 0:
		return models.StatusPending, nil
	case paid < total:
		return models.StatusPartial, nil
	default:
		return models.StatusPaidInFull, nil
	}
}
