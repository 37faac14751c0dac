package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"uniforms-pos/internal/models"
	"uniforms-pos/internal/sales"
)

func (s *SalesService) GetOrder(id string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.RowStore.Load()
	if err != nil {
		return models.Order{}, err
	}
	rows := sales.RowsOf(all, id)
	if len(rows) == 0 {
		return models.Order{}, fmt.Errorf("%w: order %s", ErrNotFound, id)
	}
	return sales.OrderFromRows(rows), nil
}

// SearchOrders matches customer name or order id; a blank query lists
// every order.
func (s *SalesService) SearchOrders(query string) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.RowStore.Load()
	if err != nil {
		return nil, err
	}
	found := sales.Search(sales.GroupOrders(all), query)
	if found == nil {
		found = []models.Order{}
	}
	return found, nil
}

func (s *SalesService) Report() (sales.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.RowStore.Load()
	if err != nil {
		return sales.Summary{}, err
	}
	return sales.Summarize(sales.GroupOrders(all)), nil
}

// TopUpPayment records a further payment. method may be left empty when
// the order already has one.
func (s *SalesService) TopUpPayment(ctx context.Context, id string, amount int64, method models.PaymentMethod) (models.Order, error) {
	order, err := s.updateOrder(ctx, id, models.EventPaymentRecorded, func(rows []models.Row, now time.Time) ([]models.Row, error) {
		return sales.ApplyPaymentTopUp(rows, amount, method, now)
	})
	if err != nil {
		return models.Order{}, err
	}
	orderUpdates.WithLabelValues("top_up").Inc()
	amountReceived.WithLabelValues(string(order.PaymentMethod)).Add(float64(amount))
	return order, nil
}

func (s *SalesService) SetTotalPaid(ctx context.Context, id string, paid int64, method models.PaymentMethod) (models.Order, error) {
	order, err := s.updateOrder(ctx, id, models.EventPaymentRecorded, func(rows []models.Row, now time.Time) ([]models.Row, error) {
		return sales.ApplyTotalPaid(rows, paid, method, now)
	})
	if err != nil {
		return models.Order{}, err
	}
	orderUpdates.WithLabelValues("set_total_paid").Inc()
	return order, nil
}

func (s *SalesService) DeliverFabric(ctx context.Context, id string, meters float64) (models.Order, error) {
	order, err := s.updateOrder(ctx, id, models.EventFabricDelivered, func(rows []models.Row, now time.Time) ([]models.Row, error) {
		return sales.ApplyFabricDelivery(rows, meters, now)
	})
	if err != nil {
		return models.Order{}, err
	}
	orderUpdates.WithLabelValues("fabric").Inc()
	fabricMeters.Add(meters)
	return order, nil
}

// updateOrder rewrites the rows of one order in place, leaving every
// other row where it was.
func (s *SalesService) updateOrder(
	ctx context.Context,
	id string,
	kind models.EventType,
	apply func(rows []models.Row, now time.Time) ([]models.Row, error),
) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.RowStore.Load()
	if err != nil {
		return models.Order{}, err
	}
	rows := sales.RowsOf(all, id)
	if len(rows) == 0 {
		return models.Order{}, fmt.Errorf("%w: order %s", ErrNotFound, id)
	}
	updated, err := apply(rows, s.now())
	if err != nil {
		return models.Order{}, err
	}
	if err := s.RowStore.Save(replaceRows(all, id, updated)); err != nil {
		return models.Order{}, fmt.Errorf("save order %s: %w", id, err)
	}

	order := sales.OrderFromRows(updated)
	logrus.WithFields(logrus.Fields{
		"order_id": id,
		"event":    kind,
		"status":   order.PaymentStatus,
		"balance":  order.Balance,
	}).Info("order updated")

	s.publish(ctx, kind, updated)
	return order, nil
}

func replaceRows(all []models.Row, id string, updated []models.Row) []models.Row {
	out := make([]models.Row, 0, len(all))
	placed := false
	for _, r := range all {
		if r.OrderID != id {
			out = append(out, r)
			continue
		}
		if !placed {
			out = append(out, updated...)
			placed = true
		}
	}
	return out
}
