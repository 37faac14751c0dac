package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"uniforms-pos/internal/models"
	"uniforms-pos/internal/repository"
	"uniforms-pos/internal/repository/xlsx"
	"uniforms-pos/internal/sales"
)

// BackupFilename is the download name of an export taken at now.
func BackupFilename(now time.Time) string {
	return fmt.Sprintf("Ventas_Uniformes_%s.xlsx", now.Format("2006-01-02"))
}

// ExportStore writes the store as a workbook. File-backed stores are
// copied byte for byte.
func (s *SalesService) ExportStore(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ex, ok := s.RowStore.(repository.Exporter); ok {
		return ex.Export(w)
	}
	rows, err := s.RowStore.Load()
	if err != nil {
		return err
	}
	return xlsx.Encode(w, rows)
}

// ImportStore replaces the whole store with the rows of an exported
// workbook. The upload is parsed completely before anything is written,
// so a bad file leaves the store untouched. It returns the number of
// orders restored.
func (s *SalesService) ImportStore(ctx context.Context, r io.Reader, confirmed bool) (int, error) {
	if !confirmed {
		return 0, fmt.Errorf("%w: %w", ErrValidation, ErrConfirmationRequired)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return 0, fmt.Errorf("%w: read upload: %v", ErrValidation, err)
	}
	rows, err := xlsx.Decode(&buf)
	if err != nil {
		return 0, fmt.Errorf("%w: restore: %v", ErrValidation, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.RowStore.Save(rows); err != nil {
		return 0, fmt.Errorf("restore: %w", err)
	}
	orders := sales.GroupOrders(rows)
	logrus.WithFields(logrus.Fields{"orders": len(orders), "rows": len(rows)}).Warn("sales store restored from backup")

	for _, o := range orders {
		s.publish(ctx, models.EventOrderReplayed, o.Rows)
	}
	return len(orders), nil
}

// ResetStore moves an unreadable store aside and starts an empty one. It
// returns where the old file went, if anywhere.
func (s *SalesService) ResetStore(confirmed bool) (string, error) {
	if !confirmed {
		return "", fmt.Errorf("%w: %w", ErrValidation, ErrConfirmationRequired)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rs, ok := s.RowStore.(repository.Resetter)
	if !ok {
		return "", fmt.Errorf("%w: store backend cannot be reset", ErrValidation)
	}
	aside, err := rs.Reset()
	if err != nil {
		return "", err
	}
	logrus.WithField("moved_to", aside).Warn("sales store reset")
	return aside, nil
}

// Replay publishes every stored order as a replay event so that the
// mirror can be rebuilt. It returns the number of orders sent.
func (s *SalesService) Replay(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.RowStore.Load()
	if err != nil {
		return 0, err
	}
	orders := sales.GroupOrders(rows)
	for _, o := range orders {
		ev := models.SaleEvent{Type: models.EventOrderReplayed, OrderID: o.OrderID, OccurredAt: s.now().UTC(), Rows: o.Rows}
		if err := s.events.PublishEvent(ctx, ev); err != nil {
			return 0, fmt.Errorf("replay order %s: %w", o.OrderID, err)
		}
	}
	return len(orders), nil
}
