package sales

import (
	"sort"
	"strings"

	"uniforms-pos/internal/models"
)

// OrderFromRows builds the order view of rows sharing one order id.
func OrderFromRows(rows []models.Row) models.Order {
	if len(rows) == 0 {
		return models.Order{}
	}
	sorted := make([]models.Row, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].RowNumber < sorted[j].RowNumber })

	first := sorted[0]
	o := models.Order{
		OrderID:   first.OrderID,
		CreatedAt: first.SoldAt,
		Customer: models.Customer{
			CustomerName:   first.CustomerName,
			PrimaryPhone:   first.PrimaryPhone,
			SecondaryPhone: first.SecondaryPhone,
			School:         first.School,
			Description:    first.Description,
		},
		PaymentMethod: first.PaymentMethod,
		PaymentStatus: first.PaymentStatus,
		FabricLog:     first.FabricLog,
		Rows:          sorted,
	}
	for _, r := range sorted {
		o.TotalAmount += r.Subtotal
		o.AmountReceived += r.PaidAllocated
		o.Balance += r.BalanceAllocated
		o.FabricMeters += r.FabricAllocated
		o.FabricDelivered = o.FabricDelivered || r.FabricDelivered
		o.FabricPending = o.FabricPending || r.FabricPending
	}
	o.NeedsAttention = o.Balance > 0 || o.FabricPending
	return o
}

// GroupOrders groups rows by order id, keeping the order in which each id
// first appears.
func GroupOrders(rows []models.Row) []models.Order {
	idx := make(map[string]int)
	var groups [][]models.Row
	for _, r := range rows {
		i, ok := idx[r.OrderID]
		if !ok {
			i = len(groups)
			idx[r.OrderID] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], r)
	}
	out := make([]models.Order, 0, len(groups))
	for _, g := range groups {
		out = append(out, OrderFromRows(g))
	}
	return out
}

// RowsOf returns the rows of orderID in store order.
func RowsOf(rows []models.Row, orderID string) []models.Row {
	var out []models.Row
	for _, r := range rows {
		if r.OrderID == orderID {
			out = append(out, r)
		}
	}
	return out
}

// Search matches the customer name (case-insensitive) or the order id.
// A blank query matches everything.
func Search(orders []models.Order, query string) []models.Order {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return orders
	}
	var out []models.Order
	for _, o := range orders {
		if strings.Contains(strings.ToLower(o.Customer.CustomerName), q) ||
			strings.Contains(strings.ToLower(o.OrderID), q) {
			out = append(out, o)
		}
	}
	return out
}

type Summary struct {
	Orders         int                            `json:"orders"`
	Rows           int                            `json:"rows"`
	TotalSales     int64                          `json:"total_sales"`
	Collected      int64                          `json:"collected"`
	Outstanding    int64                          `json:"outstanding"`
	ByStatus       map[models.PaymentStatus]int   `json:"by_status"`
	ByMethod       map[models.PaymentMethod]int64 `json:"collected_by_method"`
	FabricPending  int                            `json:"fabric_pending"`
	FabricMeters   float64                        `json:"fabric_meters"`
	NeedsAttention int                            `json:"needs_attention"`
}

func Summarize(orders []models.Order) Summary {
	s := Summary{
		ByStatus: make(map[models.PaymentStatus]int),
		ByMethod: make(map[models.PaymentMethod]int64),
	}
	for _, o := range orders {
		s.Orders++
		s.Rows += len(o.Rows)
		s.TotalSales += o.TotalAmount
		s.Collected += o.AmountReceived
		s.Outstanding += o.Balance
		s.ByStatus[o.PaymentStatus]++
		if o.AmountReceived > 0 {
			s.ByMethod[o.PaymentMethod] += o.AmountReceived
		}
		s.FabricMeters += o.FabricMeters
		if o.FabricPending {
			s.FabricPending++
		}
		if o.NeedsAttention {
			s.NeedsAttention++
		}
	}
	return s
}
