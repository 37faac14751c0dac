package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"

	"uniforms-pos/internal/models"
	"uniforms-pos/internal/repository"
	"uniforms-pos/internal/sales"
)

// MirrorService keeps a PostgreSQL copy of the sales store, fed by sale
// events, and serves grouped orders from a cache.
type MirrorService struct {
	repository.OrderMirror
	repository.OrderCache

	v *validator.Validate
}

func NewMirrorService(repo *repository.Repository) *MirrorService {
	return &MirrorService{
		OrderMirror: repo.OrderMirror,
		OrderCache:  repo.OrderCache,
		v:           validator.New(),
	}
}

func (s *MirrorService) GetCachedOrder(id string) (models.Order, error) {
	return s.OrderCache.GetOrder(id)
}

func (s *MirrorService) GetAllCachedOrders() ([]models.Order, error) {
	return s.OrderCache.GetAllOrders()
}

func (s *MirrorService) GetDbOrder(id string) (models.Order, error) {
	rows, err := s.OrderMirror.Get(id)
	if gorm.IsRecordNotFoundError(err) {
		return models.Order{}, ErrNotFound
	}
	if err != nil {
		return models.Order{}, err
	}
	return sales.OrderFromRows(rows), nil
}

// PutOrdersFromDbToCache warms the cache. Orders whose rows disagree on
// the order total are logged and skipped.
func (s *MirrorService) PutOrdersFromDbToCache() error {
	rows, err := s.OrderMirror.GetAll()
	if err != nil {
		return err
	}
	for _, o := range sales.GroupOrders(rows) {
		if err := checkOrder(o); err != nil {
			logrus.WithError(err).WithField("order_id", o.OrderID).Warn("skip invalid order from DB")
			continue
		}
		s.OrderCache.PutOrder(o.OrderID, o)
	}
	return nil
}

func checkOrder(o models.Order) error {
	if o.OrderID == "" {
		return fmt.Errorf("%w: order id is empty", ErrValidation)
	}
	for _, r := range o.Rows {
		if r.OrderTotal != o.TotalAmount {
			return fmt.Errorf("%w: row %d total %d, order total %d", ErrValidation, r.RowNumber, r.OrderTotal, o.TotalAmount)
		}
	}
	return nil
}

func (s *MirrorService) Report() (sales.Summary, error) {
	orders, err := s.OrderCache.GetAllOrders()
	if err != nil {
		return sales.Summary{}, err
	}
	return sales.Summarize(orders), nil
}

// HandleMessage applies one sale event. Decode and validation failures
// are marked so the consumer sends them to the dead-letter topic without
// retrying.
func (s *MirrorService) HandleMessage(ctx context.Context, payload []byte) error {
	var ev models.SaleEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if err := s.v.Struct(ev); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			return fmt.Errorf("%w: %s", ErrValidation, sales.HumanizeValidationErrors(verrs))
		}
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	for _, r := range ev.Rows {
		if r.OrderID != ev.OrderID {
			return fmt.Errorf("%w: row %d belongs to order %s", ErrValidation, r.RowNumber, r.OrderID)
		}
	}
	order := sales.OrderFromRows(ev.Rows)
	if err := checkOrder(order); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.OrderMirror.ReplaceOrder(order.Rows); err != nil {
		return err
	}
	s.OrderCache.PutOrder(order.OrderID, order)
	eventsMirrored.WithLabelValues(string(ev.Type)).Inc()

	logrus.WithFields(logrus.Fields{
		"order_id": ev.OrderID,
		"type":     ev.Type,
	}).Debug("sale event mirrored")
	return nil
}
