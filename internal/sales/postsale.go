package sales

import (
	"fmt"
	"sort"
	"time"

	"uniforms-pos/internal/models"
)

// sortedCopy returns the rows of a single order ordered by row number.
func sortedCopy(rows []models.Row) ([]models.Row, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrValidation, ErrEmptyOrder)
	}
	out := make([]models.Row, len(rows))
	copy(out, rows)
	for _, r := range out[1:] {
		if r.OrderID != out[0].OrderID {
			return nil, ErrRowsMismatched
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].RowNumber < out[j].RowNumber })
	for i := range out {
		out[i].FabricLog = append(models.FabricLog(nil), out[i].FabricLog...)
	}
	return out, nil
}

func subtotalsOf(rows []models.Row) (subs []int64, total int64) {
	subs = make([]int64, len(rows))
	for i, r := range rows {
		subs[i] = r.Subtotal
		total += r.Subtotal
	}
	return subs, total
}

// paymentMethod picks the method recorded with a payment change. An
// explicit method replaces the stored one; money on an order that has
// never had a method requires one.
func paymentMethod(stored, given models.PaymentMethod, paid int64) (models.PaymentMethod, error) {
	if given != "" {
		if err := ValidatePaymentMethod(given); err != nil {
			return "", err
		}
		return given, nil
	}
	if stored == "" && paid > 0 {
		return "", fmt.Errorf("%w: %w", ErrValidation, ErrPaymentMethod)
	}
	return stored, nil
}

func withPayments(rows []models.Row, allocs []Allocation, total int64, method models.PaymentMethod, now time.Time) ([]models.Row, error) {
	var paid int64
	for _, a := range allocs {
		paid += a.Paid
	}
	status, err := DerivePaymentStatus(paid, total)
	if err != nil {
		return nil, err
	}
	method, err = paymentMethod(rows[0].PaymentMethod, method, paid)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].PaymentMethod = method
		rows[i].PaidAllocated = allocs[i].Paid
		rows[i].BalanceAllocated = allocs[i].Balance
		rows[i].AmountReceived = paid
		rows[i].OrderTotal = total
		rows[i].PaymentStatus = status
		rows[i].UpdatedOn = now.Format(StampTime)
	}
	return rows, nil
}

// ApplyPaymentTopUp adds increment to an order, filling row balances in
// ascending row order. Increments above the outstanding balance are
// rejected. method may be empty when the order already has one.
func ApplyPaymentTopUp(rows []models.Row, increment int64, method models.PaymentMethod, now time.Time) ([]models.Row, error) {
	if increment <= 0 {
		return nil, fmt.Errorf("%w: %w", ErrValidation, ErrNonPositive)
	}
	out, err := sortedCopy(rows)
	if err != nil {
		return nil, err
	}
	_, total := subtotalsOf(out)

	allocs := make([]Allocation, len(out))
	var outstanding int64
	for i, r := range out {
		allocs[i] = Allocation{Paid: r.PaidAllocated, Balance: r.BalanceAllocated}
		outstanding += r.BalanceAllocated
	}
	if increment > outstanding {
		return nil, fmt.Errorf("%w: top-up %d, outstanding %d", ErrOverpayment, increment, outstanding)
	}
	return withPayments(out, TopUpPayment(allocs, increment), total, method, now)
}

// ApplyTotalPaid replaces the amount paid so far and reallocates it from
// the first row, as at finalization.
func ApplyTotalPaid(rows []models.Row, paid int64, method models.PaymentMethod, now time.Time) ([]models.Row, error) {
	if paid < 0 {
		return nil, fmt.Errorf("%w: paid amount must not be negative", ErrValidation)
	}
	out, err := sortedCopy(rows)
	if err != nil {
		return nil, err
	}
	subs, total := subtotalsOf(out)
	if paid > total {
		return nil, fmt.Errorf("%w: paid %d, total %d", ErrOverpayment, paid, total)
	}
	return withPayments(out, AllocatePayment(subs, paid), total, method, now)
}

// ApplyFabricDelivery records meters received for an order. The meters
// go to the fabric-bearing row; the delivered flag and the log are order
// fields and are copied to every row.
func ApplyFabricDelivery(rows []models.Row, meters float64, now time.Time) ([]models.Row, error) {
	if meters <= 0 {
		return nil, fmt.Errorf("%w: %w", ErrValidation, ErrNonPositive)
	}
	out, err := sortedCopy(rows)
	if err != nil {
		return nil, err
	}
	bearer := -1
	for i, r := range out {
		if r.HasTrousers() {
			bearer = i
			break
		}
	}
	if bearer < 0 {
		return nil, fmt.Errorf("%w: %w", ErrValidation, ErrNoTrousers)
	}

	entry := models.FabricDelivery{At: now.Format(DisplayTime), Meters: meters}
	out[bearer].FabricAllocated += meters
	for i := range out {
		out[i].FabricDelivered = true
		out[i].FabricPending = false
		out[i].FabricMeters += meters
		out[i].FabricLog = append(out[i].FabricLog, entry)
		out[i].UpdatedOn = now.Format(StampTime)
	}
	return out, nil
}
