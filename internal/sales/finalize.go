package sales

import (
	"time"

	"uniforms-pos/internal/models"
)

const (
	DisplayTime = "2006-01-02 15:04"
	StampTime   = "2006-01-02 15:04:05"
)

// Finalize closes a draft: it validates the order and payment, allocates
// the received amount and delivered fabric over the line items in entry
// order, and returns one row per item. The draft is not modified.
func Finalize(d *models.OrderDraft, p models.Payment, orderID string, now time.Time) ([]models.Row, error) {
	if err := ValidateDraft(d); err != nil {
		return nil, err
	}
	total := OrderTotal(d)
	trousers := TrouserCount(d)
	if err := ValidatePayment(p, total, trousers); err != nil {
		return nil, err
	}
	status, err := DerivePaymentStatus(p.AmountReceived, total)
	if err != nil {
		return nil, err
	}

	n := len(d.Items)
	subtotals := make([]int64, n)
	trouserQty := make([]int, n)
	for i, it := range d.Items {
		subtotals[i] = it.Subtotal
		trouserQty[i] = it.TrouserQuantity
	}
	payments := AllocatePayment(subtotals, p.AmountReceived)
	fabric := AllocateFabric(trouserQty, p.FabricDelivered)

	delivered := p.FabricDelivered > 0
	var fabricLog models.FabricLog
	if delivered {
		fabricLog = models.FabricLog{{At: now.Format(DisplayTime), Meters: p.FabricDelivered}}
	}

	c := d.Customer
	rows := make([]models.Row, n)
	for i, it := range d.Items {
		row := models.Row{
			OrderID:   orderID,
			RowNumber: i + 1,
			SoldAt:    now.Format(DisplayTime),

			CustomerName:   c.CustomerName,
			PrimaryPhone:   c.PrimaryPhone,
			SecondaryPhone: c.SecondaryPhone,
			School:         c.School,
			Description:    c.Description,

			ChildKind:       it.ChildKind,
			StudentName:     it.StudentName,
			ShirtQuantity:   it.ShirtQuantity,
			ShirtSize:       it.ShirtSize,
			TrouserQuantity: it.TrouserQuantity,

			UnitShirtPrice:   it.UnitShirtPrice,
			UnitTrouserPrice: it.UnitTrouserPrice,
			Subtotal:         it.Subtotal,
			FabricEstimate:   it.FabricEstimate,
			FabricSuggestion: RoundFabricSuggestion(it.FabricEstimate),

			OrderTotal:       total,
			AmountReceived:   p.AmountReceived,
			PaymentMethod:    p.PaymentMethod,
			PaymentStatus:    status,
			PaidAllocated:    payments[i].Paid,
			BalanceAllocated: payments[i].Balance,

			FabricDelivered: delivered,
			FabricPending:   trousers > 0 && !delivered,
			FabricMeters:    p.FabricDelivered,
			FabricAllocated: fabric[i],
			FabricLog:       append(models.FabricLog(nil), fabricLog...),

			UpdatedOn: now.Format(StampTime),
		}
		if m := it.Measurements; m != nil && it.HasTrousers() {
			row.Waist, row.Hip, row.Thigh, row.Length = m.Waist, m.Hip, m.Thigh, m.Length
		}
		rows[i] = row
	}
	return rows, nil
}
