package models

import "time"

type PaymentMethod string

const (
	Cash     PaymentMethod = "Cash"
	Transfer PaymentMethod = "Transfer"
)

type PaymentStatus string

const (
	StatusPending    PaymentStatus = "Pending"
	StatusPartial    PaymentStatus = "Partial"
	StatusPaidInFull PaymentStatus = "Paid in full"
)

// DefaultSchool is prefilled on new drafts.
const DefaultSchool = "NCP"

// Customer holds the order-level fields captured before line items.
type Customer struct {
	CustomerName   string `json:"customer_name"   validate:"required"`
	PrimaryPhone   string `json:"primary_phone"   validate:"required"`
	SecondaryPhone string `json:"secondary_phone"`
	School         string `json:"school"`
	Description    string `json:"description"`
}

// OrderDraft is an open order. Items keep their confirmation order.
type OrderDraft struct {
	ID        string     `json:"id"`
	Customer  Customer   `json:"customer"`
	Items     []LineItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
}

// Payment is captured when a draft is closed.
type Payment struct {
	AmountReceived  int64         `json:"amount_received"  validate:"gte=0"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	FabricDelivered float64       `json:"fabric_delivered" validate:"gte=0"`
}

// Order is the grouped view of all rows sharing an order id.
type Order struct {
	OrderID         string        `json:"order_id"`
	CreatedAt       string        `json:"created_at"`
	Customer        Customer      `json:"customer"`
	TotalAmount     int64         `json:"total_amount"`
	AmountReceived  int64         `json:"amount_received"`
	Balance         int64         `json:"balance"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	FabricDelivered bool          `json:"fabric_delivered"`
	FabricPending   bool          `json:"fabric_pending"`
	FabricMeters    float64       `json:"fabric_meters"`
	FabricLog       FabricLog     `json:"fabric_log"`
	NeedsAttention  bool          `json:"needs_attention"`
	Rows            []Row         `json:"rows"`
}

// Clone returns a deep copy, so cached drafts never alias caller memory.
func (d *OrderDraft) Clone() *OrderDraft {
	if d == nil {
		return nil
	}
	out := *d
	out.Items = make([]LineItem, len(d.Items))
	for i, it := range d.Items {
		if it.Measurements != nil {
			m := *it.Measurements
			it.Measurements = &m
		}
		out.Items[i] = it
	}
	return &out
}
