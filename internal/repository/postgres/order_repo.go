package postgres

import (
	"database/sql"

	"github.com/jinzhu/gorm"

	"uniforms-pos/internal/models"
)

// SaleRowRepo stores sale rows in the sale_rows table. It backs both the
// POS when configured for postgres and the subscriber's mirror.
type SaleRowRepo struct {
	db *gorm.DB
}

func NewSaleRowRepo(db *gorm.DB) *SaleRowRepo {
	return &SaleRowRepo{db: db}
}

func ordered(db *gorm.DB) *gorm.DB {
	return db.Order("position").Order("row_number")
}

// Load returns every row in the order it was saved in.
func (r *SaleRowRepo) Load() ([]models.Row, error) {
	var out []models.Row
	err := ordered(r.db).Find(&out).Error
	return out, err
}

// Save replaces the whole table with rows, numbering their positions
// from zero.
func (r *SaleRowRepo) Save(rows []models.Row) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(models.Row{}).Error; err != nil {
			return err
		}
		return createAt(tx, rows, 0)
	})
}

func createAt(tx *gorm.DB, rows []models.Row, base int64) error {
	for i := range rows {
		row := rows[i]
		row.Position = base + int64(i)
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

// basePosition is where the rows of orderID go: their current place, or
// after every stored row for an order seen for the first time.
func basePosition(tx *gorm.DB, orderID string) (int64, error) {
	var res struct{ Pos sql.NullInt64 }
	if err := tx.Model(&models.Row{}).Select("MIN(position) AS pos").Where("order_id = ?", orderID).Scan(&res).Error; err != nil {
		return 0, err
	}
	if res.Pos.Valid {
		return res.Pos.Int64, nil
	}
	if err := tx.Model(&models.Row{}).Select("MAX(position) + 1 AS pos").Scan(&res).Error; err != nil {
		return 0, err
	}
	if res.Pos.Valid {
		return res.Pos.Int64, nil
	}
	return 0, nil
}

// ReplaceOrder swaps the stored rows of one order for rows. The order
// keeps its position; a new order is appended.
func (r *SaleRowRepo) ReplaceOrder(rows []models.Row) error {
	if len(rows) == 0 {
		return nil
	}
	id := rows[0].OrderID
	return r.db.Transaction(func(tx *gorm.DB) error {
		base, err := basePosition(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", id).Delete(models.Row{}).Error; err != nil {
			return err
		}
		return createAt(tx, rows, base)
	})
}

// Get returns the rows of one order, or gorm's record-not-found error.
func (r *SaleRowRepo) Get(orderID string) ([]models.Row, error) {
	var out []models.Row
	if err := r.db.Where("order_id = ?", orderID).Order("row_number").Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return out, nil
}

func (r *SaleRowRepo) GetAll() ([]models.Row, error) {
	return r.Load()
}
