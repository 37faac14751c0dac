package repository

import (
	"io"

	"github.com/jinzhu/gorm"

	"uniforms-pos/internal/models"
	"uniforms-pos/internal/repository/cache"
	"uniforms-pos/internal/repository/postgres"
)

// RowStore is the durable list of sale rows. Every write replaces the
// whole store.
type RowStore interface {
	Load() ([]models.Row, error)
	Save(rows []models.Row) error
}

// Exporter is implemented by stores that can hand out their file as is.
type Exporter interface {
	Export(w io.Writer) error
}

// Resetter is implemented by stores whose backing file can go bad.
type Resetter interface {
	Reset() (string, error)
}

type OrderMirror interface {
	ReplaceOrder(rows []models.Row) error
	Get(orderID string) ([]models.Row, error)
	GetAll() ([]models.Row, error)
}

type OrderCache interface {
	PutOrder(id string, order models.Order)
	GetOrder(id string) (models.Order, error)
	GetAllOrders() ([]models.Order, error)
}

type DraftCache interface {
	PutDraft(d *models.OrderDraft)
	GetDraft(id string) (*models.OrderDraft, error)
	DeleteDraft(id string)
}

type Repository struct {
	RowStore
	DraftCache
	OrderMirror
	OrderCache
}

// NewSalesRepository wires the POS: sale rows in store, drafts in kv.
func NewSalesRepository(store RowStore, kv cache.KV) *Repository {
	return &Repository{
		RowStore:   store,
		DraftCache: cache.NewDraftCache(kv),
	}
}

// NewMirrorRepository wires the subscriber: rows mirrored to postgres,
// grouped orders kept in kv.
func NewMirrorRepository(db *gorm.DB, kv cache.KV) *Repository {
	return &Repository{
		OrderMirror: postgres.NewSaleRowRepo(db),
		OrderCache:  cache.NewOrderCache(kv),
	}
}
