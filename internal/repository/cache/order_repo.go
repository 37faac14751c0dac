package cache

import (
	"fmt"
	"net/http"
	"sort"

	"uniforms-pos/internal/models"
)

// OrderCacheRepo is the read model of grouped orders kept by the subscriber.
type OrderCacheRepo struct {
	cch KV
}

func NewOrderCache(cch KV) *OrderCacheRepo {
	return &OrderCacheRepo{cch: cch}
}

func (o *OrderCacheRepo) PutOrder(id string, ord models.Order) {
	o.cch.Put(id, ord)
}

func (o *OrderCacheRepo) GetOrder(id string) (models.Order, error) {
	v, ok := o.cch.Get(id)
	if !ok {
		return models.Order{}, NewErrorHandler(fmt.Errorf("order %s not found", id), http.StatusNotFound)
	}

	ord, ok := v.(models.Order)
	if !ok {
		return models.Order{},
			NewErrorHandler(fmt.Errorf("failed to convert order %s to its struct", id),
				http.StatusInternalServerError)
	}
	return ord, nil
}

// GetAllOrders returns cached orders, oldest sale first.
func (o *OrderCacheRepo) GetAllOrders() ([]models.Order, error) {
	snap := o.cch.Snapshot()
	orders := make([]models.Order, 0, len(snap))
	for id, val := range snap {
		ord, ok := val.(models.Order)
		if !ok {
			return nil,
				NewErrorHandler(fmt.Errorf("failed to convert order %s to its struct", id),
					http.StatusInternalServerError)
		}
		orders = append(orders, ord)
	}
	sort.Slice(orders, func(i, j int) bool {
		if orders[i].CreatedAt != orders[j].CreatedAt {
			return orders[i].CreatedAt < orders[j].CreatedAt
		}
		return orders[i].OrderID < orders[j].OrderID
	})
	return orders, nil
}
