package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"uniforms-pos/internal/catalog"
	"uniforms-pos/internal/models"
	"uniforms-pos/internal/repository"
	"uniforms-pos/internal/repository/cache"
	"uniforms-pos/internal/sales"
)

// DraftView is a draft with its running totals.
type DraftView struct {
	*models.OrderDraft
	Total            int64   `json:"total"`
	FabricTotal      float64 `json:"fabric_total"`
	FabricSuggestion float64 `json:"fabric_suggestion"`
	TrouserCount     int     `json:"trouser_count"`
}

func viewOf(d *models.OrderDraft) DraftView {
	fabric := sales.FabricTotal(d)
	return DraftView{
		OrderDraft:       d,
		Total:            sales.OrderTotal(d),
		FabricTotal:      fabric,
		FabricSuggestion: sales.RoundFabricSuggestion(fabric),
		TrouserCount:     sales.TrouserCount(d),
	}
}

// SalesService runs the POS. A single mutex serialises every
// load-modify-save cycle on the store and every draft update.
type SalesService struct {
	mu sync.Mutex

	repository.RowStore
	repository.DraftCache

	prices  CatalogStore
	catalog catalog.Catalog
	events  EventPublisher

	now   func() time.Time
	newID func() string
}

type Option func(*SalesService)

func WithClock(now func() time.Time) Option { return func(s *SalesService) { s.now = now } }
func WithIDs(newID func() string) Option    { return func(s *SalesService) { s.newID = newID } }

func NewSalesService(repo *repository.Repository, prices CatalogStore, events EventPublisher, opts ...Option) (*SalesService, error) {
	c, err := prices.Load()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if events == nil {
		events = NopPublisher{}
	}
	s := &SalesService{
		RowStore:   repo.RowStore,
		DraftCache: repo.DraftCache,
		prices:     prices,
		catalog:    c,
		events:     events,
		now:        time.Now,
		newID:      uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

// draftNotFound turns a cache miss into ErrNotFound.
func draftNotFound(id string, err error) error {
	var eh cache.ErrorHandler
	if errors.As(err, &eh) && eh.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: draft %s", ErrNotFound, id)
	}
	return err
}

func (s *SalesService) CreateDraft(c models.Customer) (DraftView, error) {
	if err := sales.ValidateCustomer(c); err != nil {
		return DraftView{}, err
	}
	d := sales.NewDraft(s.newID(), c, s.now())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.PutDraft(d)
	return viewOf(d), nil
}

func (s *SalesService) GetDraft(id string) (DraftView, error) {
	d, err := s.DraftCache.GetDraft(id)
	if err != nil {
		return DraftView{}, draftNotFound(id, err)
	}
	return viewOf(d), nil
}

// PutLineItem prices item with the current catalog and stores it at
// index, or appends it when index is past the end.
func (s *SalesService) PutLineItem(id string, index int, item models.LineItem) (DraftView, error) {
	if err := sales.ValidateLineItem(item); err != nil {
		return DraftView{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.DraftCache.GetDraft(id)
	if err != nil {
		return DraftView{}, draftNotFound(id, err)
	}
	priced, err := sales.Price(item, s.catalog)
	if err != nil {
		return DraftView{}, err
	}
	sales.AddOrUpdateLineItem(d, index, priced)
	s.PutDraft(d)
	return viewOf(d), nil
}

func (s *SalesService) DeleteDraft(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.DraftCache.DeleteDraft(id)
}

// FinalizeDraft writes the draft as an order. The draft is kept when
// anything fails, so the operator can fix it and retry.
func (s *SalesService) FinalizeDraft(ctx context.Context, id string, p models.Payment) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.DraftCache.GetDraft(id)
	if err != nil {
		return models.Order{}, draftNotFound(id, err)
	}
	order, err := s.commit(ctx, d, p)
	if err != nil {
		return models.Order{}, err
	}
	s.DraftCache.DeleteDraft(id)
	return order, nil
}

// CreateOrder prices and finalizes an order in one step.
func (s *SalesService) CreateOrder(ctx context.Context, c models.Customer, items []models.LineItem, p models.Payment) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := sales.NewDraft("", c, s.now())
	for i, it := range items {
		if err := sales.ValidateLineItem(it); err != nil {
			return models.Order{}, fmt.Errorf("item %d: %w", i+1, err)
		}
		priced, err := sales.Price(it, s.catalog)
		if err != nil {
			return models.Order{}, fmt.Errorf("item %d: %w", i+1, err)
		}
		sales.AddOrUpdateLineItem(d, i, priced)
	}
	return s.commit(ctx, d, p)
}

func (s *SalesService) commit(ctx context.Context, d *models.OrderDraft, p models.Payment) (models.Order, error) {
	existing, err := s.RowStore.Load()
	if err != nil {
		return models.Order{}, err
	}
	rows, err := sales.Finalize(d, p, s.newID(), s.now())
	if err != nil {
		return models.Order{}, err
	}
	if err := s.RowStore.Save(append(existing, rows...)); err != nil {
		return models.Order{}, fmt.Errorf("save order: %w", err)
	}

	order := sales.OrderFromRows(rows)
	ordersFinalized.Inc()
	if p.AmountReceived > 0 {
		amountReceived.WithLabelValues(string(p.PaymentMethod)).Add(float64(p.AmountReceived))
	}
	if p.FabricDelivered > 0 {
		fabricMeters.Add(p.FabricDelivered)
	}
	logrus.WithFields(logrus.Fields{
		"order_id": order.OrderID,
		"items":    len(rows),
		"total":    order.TotalAmount,
		"status":   order.PaymentStatus,
	}).Info("order finalized")

	s.publish(ctx, models.EventOrderFinalized, rows)
	return order, nil
}

// publish never fails the caller: the store is the source of truth and
// the mirror can be resynchronised with a replay.
func (s *SalesService) publish(ctx context.Context, t models.EventType, rows []models.Row) {
	if len(rows) == 0 {
		return
	}
	ev := models.SaleEvent{Type: t, OrderID: rows[0].OrderID, OccurredAt: s.now().UTC(), Rows: rows}
	if err := s.events.PublishEvent(ctx, ev); err != nil {
		publishFailures.Inc()
		logrus.WithError(err).WithFields(logrus.Fields{
			"order_id": ev.OrderID,
			"type":     ev.Type,
		}).Warn("publish sale event")
	}
}

func (s *SalesService) Quote(item models.LineItem) (models.LineItem, error) {
	if err := sales.ValidateLineItem(item); err != nil {
		return models.LineItem{}, err
	}
	s.mu.Lock()
	c := s.catalog
	s.mu.Unlock()
	return sales.Price(item, c)
}

func (s *SalesService) Catalog() catalog.Catalog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Clone()
}

// UpdateCatalog affects items priced from now on. Stored orders and
// items already in drafts keep the prices they were sold at.
func (s *SalesService) UpdateCatalog(c catalog.Catalog) (catalog.Catalog, error) {
	if err := c.Validate(); err != nil {
		return catalog.Catalog{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	saved, err := s.prices.Save(c)
	if err != nil {
		return catalog.Catalog{}, err
	}
	s.catalog = saved
	logrus.WithField("updated_at", saved.UpdatedAt).Info("price catalog updated")
	return saved.Clone(), nil
}
