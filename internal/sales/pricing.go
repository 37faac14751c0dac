package sales

import (
	"fmt"
	"math"

	"uniforms-pos/internal/models"
)

// PriceList is the part of the catalog needed to price a line item.
type PriceList interface {
	UnitShirtPrice(kind models.ChildKind, size string) (int64, error)
	UnitTrouserPrice() int64
}

// fabricAllowance is added per trouser on top of the leg length, in meters.
const fabricAllowance = 0.20

func ComputeSubtotal(item models.LineItem, prices PriceList) (int64, error) {
	var total int64
	if item.ShirtQuantity > 0 {
		p, err := prices.UnitShirtPrice(item.ChildKind, item.ShirtSize)
		if err != nil {
			return 0, err
		}
		total += int64(item.ShirtQuantity) * p
	}
	if item.HasTrousers() {
		total += int64(item.TrouserQuantity) * prices.UnitTrouserPrice()
	}
	return total, nil
}

// ComputeFabricEstimate returns meters of cloth for the item's trousers.
func ComputeFabricEstimate(item models.LineItem) float64 {
	if !item.HasTrousers() || item.Measurements == nil {
		return 0
	}
	return float64(item.TrouserQuantity) * (item.Measurements.Length/100 + fabricAllowance)
}

// RoundFabricSuggestion rounds up to the next 0.1 m. The product is first
// snapped to 1e-6 so that binary noise (0.7*10 = 7.000000000000001) does
// not push an exact value one step up.
func RoundFabricSuggestion(raw float64) float64 {
	if raw <= 0 {
		return 0
	}
	tenths := math.Round(raw*10*1e6) / 1e6
	return math.Ceil(tenths) / 10
}

// Price fills the derived fields of item from prices. Sizes and
// measurements are cleared for garments with zero quantity.
func Price(item models.LineItem, prices PriceList) (models.LineItem, error) {
	if item.ShirtQuantity == 0 {
		item.ShirtSize = models.NoSize
	}
	if item.TrouserQuantity == 0 {
		item.Measurements = nil
	}

	sub, err := ComputeSubtotal(item, prices)
	if err != nil {
		return models.LineItem{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	item.UnitShirtPrice = 0
	if item.ShirtQuantity > 0 {
		item.UnitShirtPrice, _ = prices.UnitShirtPrice(item.ChildKind, item.ShirtSize)
	}
	item.UnitTrouserPrice = 0
	if item.HasTrousers() {
		item.UnitTrouserPrice = prices.UnitTrouserPrice()
	}
	item.Subtotal = sub
	item.FabricEstimate = ComputeFabricEstimate(item)
	return item, nil
}
