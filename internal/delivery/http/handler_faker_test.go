package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"

	httpdelivery "uniforms-pos/internal/delivery/http"
	"uniforms-pos/internal/models"
	"uniforms-pos/internal/sales"
)

func fakeRows(f *gofakeit.Faker) []models.Row {
	id := f.UUID()
	customer := f.Name()
	phone := f.Phone()
	n := f.Number(1, 4)

	rows := make([]models.Row, n)
	for i := range rows {
		r := models.Row{
			OrderID:      id,
			RowNumber:    i + 1,
			SoldAt:       f.Date().Format(sales.DisplayTime),
			CustomerName: customer,
			PrimaryPhone: phone,
			School:       models.DefaultSchool,
			StudentName:  f.FirstName(),
		}
		if f.Bool() {
			r.ChildKind = models.Boy
			r.TrouserQuantity = f.Number(1, 2)
			r.Length = float64(f.Number(60, 100))
			r.UnitTrouserPrice = 45000
			r.Subtotal = int64(r.TrouserQuantity) * r.UnitTrouserPrice
			r.ShirtSize = models.NoSize
		} else {
			r.ChildKind = models.Girl
			r.ShirtQuantity = f.Number(1, 3)
			r.ShirtSize = f.RandomString(models.Sizes)
			r.UnitShirtPrice = 30000
			r.Subtotal = int64(r.ShirtQuantity) * r.UnitShirtPrice
		}
		rows[i] = r
	}

	subs := make([]int64, n)
	var total int64
	for i, r := range rows {
		subs[i] = r.Subtotal
		total += r.Subtotal
	}
	received := int64(f.Number(0, int(total)))
	status, _ := sales.DerivePaymentStatus(received, total)
	for i, a := range sales.AllocatePayment(subs, received) {
		rows[i].OrderTotal = total
		rows[i].AmountReceived = received
		rows[i].PaymentMethod = models.PaymentMethod(f.RandomString([]string{"Cash", "Transfer"}))
		rows[i].PaymentStatus = status
		rows[i].PaidAllocated = a.Paid
		rows[i].BalanceAllocated = a.Balance
	}
	return rows
}

func Test_GetAllOrders_Many(t *testing.T) {
	f := gofakeit.New(42)
	var orders []models.Order
	for i := 0; i < 20; i++ {
		orders = append(orders, sales.OrderFromRows(fakeRows(f)))
	}

	s := &svcStub{
		getAllCached: func() ([]models.Order, error) { return orders, nil },
	}
	r := httpdelivery.NewHandler(s).InitRoutes()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, len(orders))
	for i, o := range resp.Data {
		require.Equal(t, orders[i].OrderID, o.OrderID)
		require.Equal(t, o.TotalAmount, o.AmountReceived+o.Balance)
		require.Len(t, o.Rows, len(orders[i].Rows))
	}
}
