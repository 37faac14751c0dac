package models

import "time"

type EventType string

const (
	EventOrderFinalized  EventType = "order.finalized"
	EventPaymentRecorded EventType = "order.payment_recorded"
	EventFabricDelivered EventType = "order.fabric_delivered"
	EventOrderReplayed   EventType = "order.replayed"
)

// SaleEvent carries the full current rows of one order after a change.
type SaleEvent struct {
	Type       EventType `json:"type"        validate:"required"`
	OrderID    string    `json:"order_id"    validate:"required"`
	OccurredAt time.Time `json:"occurred_at"`
	Rows       []Row     `json:"rows"        validate:"required,min=1"`
}
