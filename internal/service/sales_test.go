package service_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"uniforms-pos/internal/catalog"
	"uniforms-pos/internal/models"
	"uniforms-pos/internal/repository"
	"uniforms-pos/internal/repository/cache"
	"uniforms-pos/internal/repository/xlsx"
	svc "uniforms-pos/internal/service"
)

type memStore struct {
	rows    []models.Row
	loadErr error
	saveErr error
	saves   int
}

func (m *memStore) Load() ([]models.Row, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return append([]models.Row(nil), m.rows...), nil
}

func (m *memStore) Save(rows []models.Row) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.rows = append([]models.Row(nil), rows...)
	return nil
}

type catalogStub struct {
	c       catalog.Catalog
	saveErr error
}

func (s *catalogStub) Load() (catalog.Catalog, error) { return s.c.Clone(), nil }
func (s *catalogStub) Save(c catalog.Catalog) (catalog.Catalog, error) {
	if s.saveErr != nil {
		return catalog.Catalog{}, s.saveErr
	}
	c = c.Clone()
	c.UpdatedAt = "2026-02-14 08:00:00"
	s.c = c
	return c, nil
}

type publisherStub struct {
	events []models.SaleEvent
	err    error
}

func (p *publisherStub) PublishEvent(_ context.Context, ev models.SaleEvent) error {
	p.events = append(p.events, ev)
	return p.err
}

var _ repository.RowStore = (*memStore)(nil)
var _ svc.CatalogStore = (*catalogStub)(nil)
var _ svc.EventPublisher = (*publisherStub)(nil)

var soldAt = time.Date(2026, 2, 14, 16, 45, 10, 0, time.UTC)

type fixture struct {
	s      *svc.SalesService
	store  *memStore
	events *publisherStub
}

func newFixture(t *testing.T, store repository.RowStore) *svc.SalesService {
	t.Helper()
	n := 0
	s, err := svc.NewSalesService(
		repository.NewSalesRepository(store, cache.NewCache()),
		&catalogStub{c: catalog.Default()},
		&publisherStub{},
		svc.WithClock(func() time.Time { return soldAt }),
		svc.WithIDs(func() string { n++; return fmt.Sprintf("id-%d", n) }),
	)
	require.NoError(t, err)
	return s
}

func setup(t *testing.T) fixture {
	t.Helper()
	store := &memStore{}
	events := &publisherStub{}
	n := 0
	s, err := svc.NewSalesService(
		repository.NewSalesRepository(store, cache.NewCache()),
		&catalogStub{c: catalog.Default()},
		events,
		svc.WithClock(func() time.Time { return soldAt }),
		svc.WithIDs(func() string { n++; return fmt.Sprintf("id-%d", n) }),
	)
	require.NoError(t, err)
	return fixture{s: s, store: store, events: events}
}

var customer = models.Customer{CustomerName: "Laura Gomez", PrimaryPhone: "3001234567"}

func shirt(kind models.ChildKind, size string) models.LineItem {
	return models.LineItem{ChildKind: kind, StudentName: "Sofia", ShirtQuantity: 1, ShirtSize: size}
}

func trousers(n int, length float64) models.LineItem {
	return models.LineItem{
		ChildKind:       models.Boy,
		StudentName:     "Mateo",
		TrouserQuantity: n,
		Measurements:    &models.Measurements{Waist: 62, Length: length},
	}
}

func TestSales_DraftLifecycle(t *testing.T) {
	f := setup(t)

	d, err := f.s.CreateDraft(customer)
	require.NoError(t, err)
	require.Equal(t, models.DefaultSchool, d.Customer.School)

	d, err = f.s.PutLineItem(d.ID, 0, shirt(models.Girl, "8"))
	require.NoError(t, err)
	d, err = f.s.PutLineItem(d.ID, 5, trousers(1, 75))
	require.NoError(t, err)
	require.Len(t, d.Items, 2)
	require.Equal(t, int64(75000), d.Total)
	require.InDelta(t, 0.95, d.FabricTotal, 1e-9)
	require.Equal(t, 1.0, d.FabricSuggestion)

	d, err = f.s.PutLineItem(d.ID, 0, shirt(models.Girl, "S"))
	require.NoError(t, err)
	require.Len(t, d.Items, 2)
	require.Equal(t, "S", d.Items[0].ShirtSize)

	order, err := f.s.FinalizeDraft(context.Background(), d.ID, models.Payment{
		AmountReceived:  50000,
		PaymentMethod:   models.Cash,
		FabricDelivered: 1.5,
	})
	require.NoError(t, err)
	require.Equal(t, models.StatusPartial, order.PaymentStatus)
	require.Equal(t, int64(25000), order.Balance)
	require.True(t, order.NeedsAttention)
	require.Len(t, f.store.rows, 2)

	_, err = f.s.GetDraft(d.ID)
	require.ErrorIs(t, err, svc.ErrNotFound, "finalized drafts are discarded")

	require.Len(t, f.events.events, 1)
	require.Equal(t, models.EventOrderFinalized, f.events.events[0].Type)
	require.Equal(t, order.OrderID, f.events.events[0].OrderID)
}

func TestSales_DraftValidation(t *testing.T) {
	f := setup(t)

	_, err := f.s.CreateDraft(models.Customer{CustomerName: "No phone"})
	require.ErrorIs(t, err, svc.ErrValidation)

	_, err = f.s.PutLineItem("missing", 0, shirt(models.Boy, "8"))
	require.ErrorIs(t, err, svc.ErrNotFound)

	d, err := f.s.CreateDraft(customer)
	require.NoError(t, err)

	bad := trousers(1, 70)
	bad.ChildKind = models.Girl
	_, err = f.s.PutLineItem(d.ID, 0, bad)
	require.ErrorIs(t, err, svc.ErrValidation)

	_, err = f.s.FinalizeDraft(context.Background(), d.ID, models.Payment{})
	require.ErrorIs(t, err, svc.ErrValidation, "empty order")
	require.Empty(t, f.store.rows)

	_, err = f.s.GetDraft(d.ID)
	require.NoError(t, err, "a failed finalize keeps the draft")

	f.s.DeleteDraft(d.ID)
	_, err = f.s.GetDraft(d.ID)
	require.ErrorIs(t, err, svc.ErrNotFound)
}

func TestSales_CreateOrder_OverpaymentRejected(t *testing.T) {
	f := setup(t)

	_, err := f.s.CreateOrder(context.Background(), customer,
		[]models.LineItem{shirt(models.Boy, "10")},
		models.Payment{AmountReceived: 30001, PaymentMethod: models.Transfer})
	require.ErrorIs(t, err, svc.ErrOverpayment)
	require.Zero(t, f.store.saves)
	require.Empty(t, f.events.events)
}

func TestSales_CreateOrder_PaymentMethodRequired(t *testing.T) {
	f := setup(t)

	_, err := f.s.CreateOrder(context.Background(), customer,
		[]models.LineItem{shirt(models.Boy, "10")},
		models.Payment{AmountReceived: 1000})
	require.ErrorIs(t, err, svc.ErrValidation)
}

func TestSales_CreateOrder_AppendsToStore(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	first, err := f.s.CreateOrder(ctx, customer, []models.LineItem{shirt(models.Boy, "10")},
		models.Payment{AmountReceived: 30000, PaymentMethod: models.Cash})
	require.NoError(t, err)
	require.Equal(t, models.StatusPaidInFull, first.PaymentStatus)
	require.False(t, first.NeedsAttention)

	second, err := f.s.CreateOrder(ctx, models.Customer{CustomerName: "Ana Ruiz", PrimaryPhone: "311"},
		[]models.LineItem{trousers(2, 70)}, models.Payment{})
	require.NoError(t, err)
	require.NotEqual(t, first.OrderID, second.OrderID)
	require.True(t, second.FabricPending)

	require.Len(t, f.store.rows, 2)
	require.Equal(t, first.OrderID, f.store.rows[0].OrderID)

	found, err := f.s.SearchOrders("ana")
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, second.OrderID, found[0].OrderID)

	none, err := f.s.SearchOrders("nobody")
	require.NoError(t, err)
	require.NotNil(t, none)
	require.Empty(t, none)

	rep, err := f.s.Report()
	require.NoError(t, err)
	require.Equal(t, 2, rep.Orders)
	require.Equal(t, int64(120000), rep.TotalSales)
	require.Equal(t, int64(30000), rep.Collected)
	require.Equal(t, 1, rep.FabricPending)
}

func TestSales_PostSaleUpdates(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	other, err := f.s.CreateOrder(ctx, customer, []models.LineItem{shirt(models.Boy, "4")}, models.Payment{})
	require.NoError(t, err)
	order, err := f.s.CreateOrder(ctx, customer,
		[]models.LineItem{shirt(models.Girl, "8"), trousers(1, 75)},
		models.Payment{AmountReceived: 10000, PaymentMethod: models.Transfer})
	require.NoError(t, err)

	got, err := f.s.TopUpPayment(ctx, order.OrderID, 40000, "")
	require.NoError(t, err)
	require.Equal(t, int64(50000), got.AmountReceived)
	require.Equal(t, int64(25000), got.Balance)

	_, err = f.s.TopUpPayment(ctx, order.OrderID, 25001, "")
	require.ErrorIs(t, err, svc.ErrOverpayment)

	got, err = f.s.SetTotalPaid(ctx, order.OrderID, 75000, "")
	require.NoError(t, err)
	require.Equal(t, models.StatusPaidInFull, got.PaymentStatus)
	require.Zero(t, got.Balance)

	got, err = f.s.DeliverFabric(ctx, order.OrderID, 1.2)
	require.NoError(t, err)
	require.True(t, got.FabricDelivered)
	require.False(t, got.FabricPending)
	require.Len(t, got.FabricLog, 1)

	_, err = f.s.DeliverFabric(ctx, other.OrderID, 1)
	require.ErrorIs(t, err, svc.ErrValidation, "no trousers")

	_, err = f.s.TopUpPayment(ctx, "missing", 1, "")
	require.ErrorIs(t, err, svc.ErrNotFound)

	require.Len(t, f.store.rows, 3)
	require.Equal(t, other.OrderID, f.store.rows[0].OrderID, "other orders keep their place")

	stored, err := f.s.GetOrder(order.OrderID)
	require.NoError(t, err)
	require.Equal(t, got.FabricMeters, stored.FabricMeters)

	types := []models.EventType{}
	for _, ev := range f.events.events {
		types = append(types, ev.Type)
	}
	require.Equal(t, []models.EventType{
		models.EventOrderFinalized,
		models.EventOrderFinalized,
		models.EventPaymentRecorded,
		models.EventPaymentRecorded,
		models.EventFabricDelivered,
	}, types)
}

func TestSales_TopUpOnPendingOrderNeedsMethod(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	order, err := f.s.CreateOrder(ctx, customer, []models.LineItem{shirt(models.Girl, "8"), trousers(1, 75)}, models.Payment{})
	require.NoError(t, err)
	require.Equal(t, models.StatusPending, order.PaymentStatus)
	saves := f.store.saves

	_, err = f.s.TopUpPayment(ctx, order.OrderID, 10000, "")
	require.ErrorIs(t, err, svc.ErrValidation)
	_, err = f.s.SetTotalPaid(ctx, order.OrderID, 10000, "")
	require.ErrorIs(t, err, svc.ErrValidation)
	require.Equal(t, saves, f.store.saves, "nothing written")

	got, err := f.s.TopUpPayment(ctx, order.OrderID, 10000, models.Cash)
	require.NoError(t, err)
	require.Equal(t, models.StatusPartial, got.PaymentStatus)
	require.Equal(t, models.Cash, got.PaymentMethod)

	rep, err := f.s.Report()
	require.NoError(t, err)
	require.Equal(t, map[models.PaymentMethod]int64{models.Cash: 10000}, rep.ByMethod)
}

func TestSales_TopUpsCompose(t *testing.T) {
	ctx := context.Background()
	run := func(amounts ...int64) models.Order {
		f := setup(t)
		o, err := f.s.CreateOrder(ctx, customer,
			[]models.LineItem{shirt(models.Girl, "8"), trousers(1, 75), shirt(models.Boy, "M")},
			models.Payment{AmountReceived: 5000, PaymentMethod: models.Cash})
		require.NoError(t, err)
		for _, a := range amounts {
			o, err = f.s.TopUpPayment(ctx, o.OrderID, a, "")
			require.NoError(t, err)
		}
		return o
	}

	split := run(27000, 41000)
	whole := run(68000)
	for i := range split.Rows {
		require.Equal(t, whole.Rows[i].PaidAllocated, split.Rows[i].PaidAllocated)
		require.Equal(t, whole.Rows[i].BalanceAllocated, split.Rows[i].BalanceAllocated)
	}
}

func TestSales_PublishFailureIsLoggedNotReturned(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	f := setup(t)
	f.events.err = errors.New("broker down")

	_, err := f.s.CreateOrder(context.Background(), customer, []models.LineItem{shirt(models.Boy, "8")}, models.Payment{})
	require.NoError(t, err)
	require.Len(t, f.store.rows, 1)

	found := false
	for _, e := range hook.AllEntries() {
		if e.Level == log.WarnLevel && e.Message == "publish sale event" {
			found = true
		}
	}
	require.True(t, found)
}

func TestSales_StoreErrors(t *testing.T) {
	f := setup(t)
	f.store.loadErr = fmt.Errorf("%w: zip: not a valid zip file", xlsx.ErrUnreadable)

	_, err := f.s.CreateOrder(context.Background(), customer, []models.LineItem{shirt(models.Boy, "8")}, models.Payment{})
	require.ErrorIs(t, err, svc.ErrStoreUnreadable)
	_, err = f.s.SearchOrders("")
	require.ErrorIs(t, err, svc.ErrStoreUnreadable)

	f.store.loadErr = nil
	f.store.saveErr = errors.New("disk full")
	d, err := f.s.CreateDraft(customer)
	require.NoError(t, err)
	_, err = f.s.PutLineItem(d.ID, 0, shirt(models.Boy, "8"))
	require.NoError(t, err)
	_, err = f.s.FinalizeDraft(context.Background(), d.ID, models.Payment{})
	require.Error(t, err)
	_, err = f.s.GetDraft(d.ID)
	require.NoError(t, err)
}

func TestSales_CatalogUpdateKeepsSoldPrices(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	sold, err := f.s.CreateOrder(ctx, customer, []models.LineItem{shirt(models.Boy, "10")}, models.Payment{})
	require.NoError(t, err)

	c := f.s.Catalog()
	c.BoyShirt["10"] = 35000
	updated, err := f.s.UpdateCatalog(c)
	require.NoError(t, err)
	require.Equal(t, "2026-02-14 08:00:00", updated.UpdatedAt)

	q, err := f.s.Quote(shirt(models.Boy, "10"))
	require.NoError(t, err)
	require.Equal(t, int64(35000), q.Subtotal)

	again, err := f.s.GetOrder(sold.OrderID)
	require.NoError(t, err)
	require.Equal(t, int64(30000), again.TotalAmount)
	require.Equal(t, int64(30000), again.Rows[0].UnitShirtPrice)

	delete(c.BoyShirt, "10")
	_, err = f.s.UpdateCatalog(c)
	require.ErrorIs(t, err, svc.ErrValidation)
}

func TestSales_BackupRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := xlsx.NewStore(filepath.Join(dir, "sales.xlsx"))
	s := newFixture(t, store)
	ctx := context.Background()

	_, err := s.CreateOrder(ctx, customer, []models.LineItem{shirt(models.Girl, "8"), trousers(1, 75)},
		models.Payment{AmountReceived: 50000, PaymentMethod: models.Cash, FabricDelivered: 1.5})
	require.NoError(t, err)
	before, err := store.Load()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s.ExportStore(&buf))

	_, err = s.ImportStore(ctx, bytes.NewReader(buf.Bytes()), false)
	require.ErrorIs(t, err, svc.ErrConfirmationRequired)

	_, err = s.ImportStore(ctx, bytes.NewReader([]byte("garbage")), true)
	require.ErrorIs(t, err, svc.ErrValidation)
	after, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, before, after, "a bad upload leaves the store untouched")

	n, err := s.ImportStore(ctx, bytes.NewReader(buf.Bytes()), true)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	after, err = store.Load()
	require.NoError(t, err)
	require.Equal(t, before, after)

	require.Equal(t, "Ventas_Uniformes_2026-02-14.xlsx", svc.BackupFilename(soldAt))
}

func TestSales_ResetUnreadableStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("corrupt"), 0o644))
	s := newFixture(t, xlsx.NewStore(path))

	_, err := s.GetOrder("any")
	require.ErrorIs(t, err, svc.ErrStoreUnreadable)

	_, err = s.ResetStore(false)
	require.ErrorIs(t, err, svc.ErrConfirmationRequired)

	aside, err := s.ResetStore(true)
	require.NoError(t, err)
	require.FileExists(t, aside)

	orders, err := s.SearchOrders("")
	require.NoError(t, err)
	require.Empty(t, orders)

	_, err = newFixture(t, &memStore{}).ResetStore(true)
	require.ErrorIs(t, err, svc.ErrValidation)
}

func TestSales_Replay(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := f.s.CreateOrder(ctx, customer, []models.LineItem{shirt(models.Boy, "8")}, models.Payment{})
		require.NoError(t, err)
	}
	f.events.events = nil

	n, err := f.s.Replay(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Len(t, f.events.events, 3)
	for _, ev := range f.events.events {
		require.Equal(t, models.EventOrderReplayed, ev.Type)
	}

	f.events.err = errors.New("broker down")
	_, err = f.s.Replay(ctx)
	require.Error(t, err)
}
