package models

type ChildKind string

const (
	Boy  ChildKind = "Boy"
	Girl ChildKind = "Girl"
)

// Sizes is the fixed shirt size list, in display order.
var Sizes = []string{"4", "6", "8", "10", "12", "14", "16", "S", "M", "L", "XL"}

// NoSize marks a line item without shirts.
const NoSize = "N/A"

// MaxQuantity bounds each garment quantity of a line item. It matches the
// lte tags below.
const MaxQuantity = 1000

func ValidSize(size string) bool {
	for _, s := range Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// Measurements are in centimeters.
type Measurements struct {
	Waist  float64 `json:"waist"  validate:"gte=0"`
	Hip    float64 `json:"hip"    validate:"gte=0"`
	Thigh  float64 `json:"thigh"  validate:"gte=0"`
	Length float64 `json:"length" validate:"gte=0"`
}

type LineItem struct {
	ChildKind       ChildKind     `json:"child_kind"       validate:"required,oneof=Boy Girl"`
	StudentName     string        `json:"student_name"`
	ShirtQuantity   int           `json:"shirt_quantity"   validate:"gte=0,lte=1000"`
	ShirtSize       string        `json:"shirt_size"`
	TrouserQuantity int           `json:"trouser_quantity" validate:"gte=0,lte=1000"`
	Measurements    *Measurements `json:"measurements,omitempty"`

	// Derived when the item is confirmed into a draft.
	UnitShirtPrice   int64   `json:"unit_shirt_price"`
	UnitTrouserPrice int64   `json:"unit_trouser_price"`
	Subtotal         int64   `json:"subtotal"`
	FabricEstimate   float64 `json:"fabric_estimate"`
}

func (i LineItem) HasTrousers() bool {
	return i.TrouserQuantity > 0
}
