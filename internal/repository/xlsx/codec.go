package xlsx

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"uniforms-pos/internal/models"
)

// SheetName is the worksheet holding one row per sold line item.
const SheetName = "Ventas"

type column struct {
	name string
	get  func(r *models.Row) any
	set  func(r *models.Row, raw string) error
	// decimals marks columns displayed with two decimals.
	decimals bool
}

func text(name string, field func(r *models.Row) *string) column {
	return column{
		name: name,
		get:  func(r *models.Row) any { return *field(r) },
		set:  func(r *models.Row, raw string) error { *field(r) = raw; return nil },
	}
}

func integer(name string, field func(r *models.Row) *int) column {
	return column{
		name: name,
		get:  func(r *models.Row) any { return *field(r) },
		set: func(r *models.Row, raw string) error {
			v, err := parseInt(raw)
			*field(r) = int(v)
			return err
		},
	}
}

func money(name string, field func(r *models.Row) *int64) column {
	return column{
		name: name,
		get:  func(r *models.Row) any { return *field(r) },
		set: func(r *models.Row, raw string) error {
			v, err := parseInt(raw)
			*field(r) = v
			return err
		},
	}
}

func decimal(name string, field func(r *models.Row) *float64) column {
	return column{
		name:     name,
		decimals: true,
		get:      func(r *models.Row) any { return *field(r) },
		set: func(r *models.Row, raw string) error {
			if raw == "" {
				*field(r) = 0
				return nil
			}
			v, err := strconv.ParseFloat(raw, 64)
			*field(r) = v
			return err
		},
	}
}

func flag(name string, field func(r *models.Row) *bool) column {
	return column{
		name: name,
		get: func(r *models.Row) any {
			if *field(r) {
				return "Yes"
			}
			return "No"
		},
		set: func(r *models.Row, raw string) error {
			switch strings.ToLower(strings.TrimSpace(raw)) {
			case "yes", "true", "1", "si", "sí":
				*field(r) = true
			default:
				*field(r) = false
			}
			return nil
		},
	}
}

func parseInt(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	return int64(f), nil
}

var columns = []column{
	text("order_id", func(r *models.Row) *string { return &r.OrderID }),
	integer("row_number", func(r *models.Row) *int { return &r.RowNumber }),
	text("sold_at", func(r *models.Row) *string { return &r.SoldAt }),
	text("customer_name", func(r *models.Row) *string { return &r.CustomerName }),
	text("primary_phone", func(r *models.Row) *string { return &r.PrimaryPhone }),
	text("secondary_phone", func(r *models.Row) *string { return &r.SecondaryPhone }),
	text("school", func(r *models.Row) *string { return &r.School }),
	text("description", func(r *models.Row) *string { return &r.Description }),
	text("child_kind", func(r *models.Row) *string { return (*string)(&r.ChildKind) }),
	text("student_name", func(r *models.Row) *string { return &r.StudentName }),
	integer("shirt_quantity", func(r *models.Row) *int { return &r.ShirtQuantity }),
	text("shirt_size", func(r *models.Row) *string { return &r.ShirtSize }),
	integer("trouser_quantity", func(r *models.Row) *int { return &r.TrouserQuantity }),
	decimal("waist", func(r *models.Row) *float64 { return &r.Waist }),
	decimal("hip", func(r *models.Row) *float64 { return &r.Hip }),
	decimal("thigh", func(r *models.Row) *float64 { return &r.Thigh }),
	decimal("length", func(r *models.Row) *float64 { return &r.Length }),
	money("unit_shirt_price", func(r *models.Row) *int64 { return &r.UnitShirtPrice }),
	money("unit_trouser_price", func(r *models.Row) *int64 { return &r.UnitTrouserPrice }),
	money("subtotal", func(r *models.Row) *int64 { return &r.Subtotal }),
	decimal("fabric_estimate", func(r *models.Row) *float64 { return &r.FabricEstimate }),
	decimal("fabric_suggestion", func(r *models.Row) *float64 { return &r.FabricSuggestion }),
	money("order_total", func(r *models.Row) *int64 { return &r.OrderTotal }),
	money("amount_received", func(r *models.Row) *int64 { return &r.AmountReceived }),
	text("payment_method", func(r *models.Row) *string { return (*string)(&r.PaymentMethod) }),
	text("payment_status", func(r *models.Row) *string { return (*string)(&r.PaymentStatus) }),
	money("paid_allocated", func(r *models.Row) *int64 { return &r.PaidAllocated }),
	money("balance_allocated", func(r *models.Row) *int64 { return &r.BalanceAllocated }),
	flag("fabric_delivered", func(r *models.Row) *bool { return &r.FabricDelivered }),
	flag("fabric_pending", func(r *models.Row) *bool { return &r.FabricPending }),
	decimal("fabric_meters", func(r *models.Row) *float64 { return &r.FabricMeters }),
	decimal("fabric_allocated", func(r *models.Row) *float64 { return &r.FabricAllocated }),
	{
		name: "fabric_log",
		get: func(r *models.Row) any {
			v, _ := r.FabricLog.Value()
			return v
		},
		set: func(r *models.Row, raw string) error {
			l, err := models.ParseFabricLog(raw)
			r.FabricLog = l
			return err
		},
	},
	text("updated_on", func(r *models.Row) *string { return &r.UpdatedOn }),
}

// Header returns the column names in sheet order.
func Header() []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = c.name
	}
	return out
}

// Encode writes rows as a workbook with a single sheet.
func Encode(w io.Writer, rows []models.Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return errors.Wrap(err, "rename sheet")
	}

	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c.name
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return errors.Wrap(err, "write header")
	}

	for i := range rows {
		values := make([]any, len(columns))
		for j, c := range columns {
			values[j] = c.get(&rows[i])
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return errors.Wrapf(err, "write row %d", i+1)
		}
	}

	if err := styleDecimals(f); err != nil {
		return err
	}
	return f.Write(w)
}

func styleDecimals(f *excelize.File) error {
	style, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return errors.Wrap(err, "decimal style")
	}
	for i, c := range columns {
		if !c.decimals {
			continue
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColStyle(SheetName, name, style); err != nil {
			return errors.Wrapf(err, "style column %s", c.name)
		}
	}
	return nil
}

// Decode reads rows back. Columns are matched by header name, so sheets
// written with a subset or a different order of columns still load.
func Decode(r io.Reader) ([]models.Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "open workbook")
	}
	defer f.Close()

	sheet := SheetName
	if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheet = list[0]
	}

	grid, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(err, "read sheet %s", sheet)
	}
	if len(grid) == 0 {
		return nil, nil
	}

	byName := make(map[string]column, len(columns))
	for _, c := range columns {
		byName[c.name] = c
	}
	layout := make([]*column, len(grid[0]))
	hasID := false
	for i, name := range grid[0] {
		if c, ok := byName[strings.TrimSpace(name)]; ok {
			layout[i] = &c
			hasID = hasID || c.name == "order_id"
		}
	}
	if !hasID {
		return nil, errors.New("sheet has no order_id column")
	}

	var out []models.Row
	for n, cells := range grid[1:] {
		var row models.Row
		for i, raw := range cells {
			if i >= len(layout) || layout[i] == nil {
				continue
			}
			if err := layout[i].set(&row, raw); err != nil {
				return nil, fmt.Errorf("row %d column %s: %w", n+2, layout[i].name, err)
			}
		}
		if row.OrderID == "" {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}
