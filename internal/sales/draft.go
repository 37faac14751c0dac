package sales

import (
	"strings"
	"time"

	"uniforms-pos/internal/models"
)

func NewDraft(id string, c models.Customer, now time.Time) *models.OrderDraft {
	if strings.TrimSpace(c.School) == "" {
		c.School = models.DefaultSchool
	}
	return &models.OrderDraft{ID: id, Customer: c, CreatedAt: now}
}

// AddOrUpdateLineItem replaces the item at index when it was already
// confirmed and appends it otherwise. Any index is accepted.
func AddOrUpdateLineItem(d *models.OrderDraft, index int, item models.LineItem) {
	if index >= 0 && index < len(d.Items) {
		d.Items[index] = item
		return
	}
	d.Items = append(d.Items, item)
}

func OrderTotal(d *models.OrderDraft) int64 {
	var total int64
	for _, it := range d.Items {
		total += it.Subtotal
	}
	return total
}

func FabricTotal(d *models.OrderDraft) float64 {
	var total float64
	for _, it := range d.Items {
		total += it.FabricEstimate
	}
	return total
}

func TrouserCount(d *models.OrderDraft) int {
	n := 0
	for _, it := range d.Items {
		n += it.TrouserQuantity
	}
	return n
}
