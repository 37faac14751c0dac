package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Row is the persisted unit: one line item plus a copy of its order's fields.
// RowNumber is 1-based and follows the entry order of the line items.
type Row struct {
	OrderID   string `json:"order_id"   gorm:"primary_key;type:varchar(36)"`
	RowNumber int    `json:"row_number" gorm:"primary_key;auto_increment:false"`
	SoldAt    string `json:"sold_at"`

	CustomerName   string `json:"customer_name"`
	PrimaryPhone   string `json:"primary_phone"`
	SecondaryPhone string `json:"secondary_phone"`
	School         string `json:"school"`
	Description    string `json:"description"`

	ChildKind       ChildKind `json:"child_kind" gorm:"type:varchar(8)"`
	StudentName     string    `json:"student_name"`
	ShirtQuantity   int       `json:"shirt_quantity"`
	ShirtSize       string    `json:"shirt_size"`
	TrouserQuantity int       `json:"trouser_quantity"`
	Waist           float64   `json:"waist"`
	Hip             float64   `json:"hip"`
	Thigh           float64   `json:"thigh"`
	Length          float64   `json:"length"`

	UnitShirtPrice   int64   `json:"unit_shirt_price"`
	UnitTrouserPrice int64   `json:"unit_trouser_price"`
	Subtotal         int64   `json:"subtotal"`
	FabricEstimate   float64 `json:"fabric_estimate"`
	FabricSuggestion float64 `json:"fabric_suggestion"`

	OrderTotal       int64         `json:"order_total"`
	AmountReceived   int64         `json:"amount_received"`
	PaymentMethod    PaymentMethod `json:"payment_method"`
	PaymentStatus    PaymentStatus `json:"payment_status"`
	PaidAllocated    int64         `json:"paid_allocated"`
	BalanceAllocated int64         `json:"balance_allocated"`

	FabricDelivered bool      `json:"fabric_delivered"`
	FabricPending   bool      `json:"fabric_pending"`
	FabricMeters    float64   `json:"fabric_meters"`
	FabricAllocated float64   `json:"fabric_allocated"`
	FabricLog       FabricLog `json:"fabric_log" gorm:"type:text"`

	UpdatedOn string `json:"updated_on"`

	// Position is the row's place in the store; only the database keeps it.
	Position int64 `json:"-" gorm:"index"`
}

func (Row) TableName() string {
	return "sale_rows"
}

func (r Row) HasTrousers() bool {
	return r.TrouserQuantity > 0
}

type FabricDelivery struct {
	At     string  `json:"at"`
	Meters float64 `json:"meters"`
}

// FabricLog is the append-only history of fabric received for an order.
type FabricLog []FabricDelivery

// String joins the entries for display.
func (l FabricLog) String() string {
	parts := make([]string, 0, len(l))
	for _, d := range l {
		parts = append(parts, fmt.Sprintf("%s: %.2f m", d.At, d.Meters))
	}
	return strings.Join(parts, "; ")
}

func (l FabricLog) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *FabricLog) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("fabric log: unsupported type %T", src)
	}
	parsed, err := ParseFabricLog(string(raw))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseFabricLog accepts the JSON form written by Value; blank means empty.
func ParseFabricLog(raw string) (FabricLog, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var out FabricLog
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("fabric log: %w", err)
	}
	return out, nil
}
