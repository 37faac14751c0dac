package service

import (
	"context"
	"io"

	"uniforms-pos/internal/catalog"
	"uniforms-pos/internal/models"
	"uniforms-pos/internal/sales"
)

// Sales is everything the POS API can do.
type Sales interface {
	CreateDraft(c models.Customer) (DraftView, error)
	GetDraft(id string) (DraftView, error)
	PutLineItem(id string, index int, item models.LineItem) (DraftView, error)
	DeleteDraft(id string)
	FinalizeDraft(ctx context.Context, id string, p models.Payment) (models.Order, error)
	CreateOrder(ctx context.Context, c models.Customer, items []models.LineItem, p models.Payment) (models.Order, error)

	Quote(item models.LineItem) (models.LineItem, error)
	Catalog() catalog.Catalog
	UpdateCatalog(c catalog.Catalog) (catalog.Catalog, error)

	GetOrder(id string) (models.Order, error)
	SearchOrders(query string) ([]models.Order, error)
	Report() (sales.Summary, error)
	TopUpPayment(ctx context.Context, id string, amount int64, method models.PaymentMethod) (models.Order, error)
	SetTotalPaid(ctx context.Context, id string, paid int64, method models.PaymentMethod) (models.Order, error)
	DeliverFabric(ctx context.Context, id string, meters float64) (models.Order, error)

	ExportStore(w io.Writer) error
	ImportStore(ctx context.Context, r io.Reader, confirmed bool) (int, error)
	ResetStore(confirmed bool) (string, error)
	Replay(ctx context.Context) (int, error)
}

// Mirror is the subscriber side: it applies sale events and serves reads.
type Mirror interface {
	GetCachedOrder(id string) (models.Order, error)
	GetAllCachedOrders() ([]models.Order, error)
	GetDbOrder(id string) (models.Order, error)
	PutOrdersFromDbToCache() error
	Report() (sales.Summary, error)

	HandleMessage(ctx context.Context, payload []byte) error
}

// EventPublisher sends sale events to the bus.
type EventPublisher interface {
	PublishEvent(ctx context.Context, ev models.SaleEvent) error
}

// NopPublisher is used when the event bus is disabled.
type NopPublisher struct{}

func (NopPublisher) PublishEvent(context.Context, models.SaleEvent) error { return nil }

// CatalogStore persists the price catalog.
type CatalogStore interface {
	Load() (catalog.Catalog, error)
	Save(c catalog.Catalog) (catalog.Catalog, error)
}

var (
	_ Sales  = (*SalesService)(nil)
	_ Mirror = (*MirrorService)(nil)
)
