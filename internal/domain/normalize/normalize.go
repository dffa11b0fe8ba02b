// Package normalize maps loosely shaped upstream rows into the strict record types
// consumed by the analytics engine.
package normalize

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/diillson/stock-analytics-dashboard-go/internal/domain/entity"
)

// Row é um registro bruto vindo de JSON, CSV, YAML ou SQL.
type Row = map[string]any

// Logger receives one call per field that was present but could not be coerced.
type Logger func(index int, field string, value any, err error)

// Aliases aceitos para cada campo, na ordem de preferência.
var (
	productNameKeys     = []string{"product_name", "nombre", "name", "producto"}
	quantityKeys        = []string{"quantity", "cantidad", "stock"}
	unitPriceKeys       = []string{"unit_price", "precio", "price", "precio_unitario"}
	branchIDKeys        = []string{"branch_id", "sucursal_id", "id_sucursal"}
	recordedAtKeys      = []string{"recorded_at", "fecha", "created_at", "date"}
	idKeys              = []string{"id", "transaction_id", "id_transaccion"}
	transactionTypeKeys = []string{"transaction_type", "tipo", "type", "tipo_transaccion"}
	totalPriceKeys      = []string{"total_price", "total", "precio_total"}
	branchNameKeys      = []string{"branch_name", "sucursal", "nombre_sucursal"}
	employeeNameKeys    = []string{"employee_name", "empleado", "nombre_empleado"}
	descriptionKeys     = []string{"description", "descripcion", "detalle"}
	occurredAtKeys      = []string{"occurred_at", "fecha", "created_at", "date"}
)

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Inventory converts raw rows into inventory records. It never fails: fields that are
// absent or cannot be coerced stay empty and the engine skips them where they matter.
func Inventory(rows []Row, log Logger) []entity.InventoryRecord {
	out := make([]entity.InventoryRecord, 0, len(rows))
	for i, row := range rows {
		c := coercer{row: row, index: i, log: log}
		rec := entity.InventoryRecord{
			ProductName: c.str(productNameKeys),
			Quantity:    c.nonNegativeInt(quantityKeys),
			UnitPrice:   c.nonNegativeDecimal(unitPriceKeys),
			RecordedAt:  c.time(recordedAtKeys),
		}
		if id := c.intPtr(branchIDKeys); id != nil {
			rec.BranchID = *id
		}
		out = append(out, rec)
	}
	return out
}

// Transactions converts raw rows into transaction records.
func Transactions(rows []Row, log Logger) []entity.TransactionRecord {
	out := make([]entity.TransactionRecord, 0, len(rows))
	for i, row := range rows {
		c := coercer{row: row, index: i, log: log}
		rec := entity.TransactionRecord{
			TransactionType: c.str(transactionTypeKeys),
			Quantity:        c.intPtr(quantityKeys),
			UnitPrice:       c.decimal(unitPriceKeys),
			TotalPrice:      c.decimal(totalPriceKeys),
			BranchName:      c.str(branchNameKeys),
			EmployeeName:    c.str(employeeNameKeys),
			Description:     c.str(descriptionKeys),
			OccurredAt:      c.time(occurredAtKeys),
		}
		if id := c.intPtr(idKeys); id != nil {
			rec.ID = *id
		}
		out = append(out, rec)
	}
	return out
}

type coercer struct {
	row   Row
	index int
	log   Logger
}

// lookup returns the first alias present with a non-nil value.
func (c coercer) lookup(keys []string) (string, any, bool) {
	for _, k := range keys {
		if v, ok := c.row[k]; ok && v != nil {
			return k, v, true
		}
	}
	return "", nil, false
}

func (c coercer) fail(field string, value any, err error) {
	if c.log != nil {
		c.log(c.index, field, value, err)
	}
}

func (c coercer) str(keys []string) string {
	_, v, ok := c.lookup(keys)
	if !ok {
		return ""
	}
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case []byte:
		return strings.TrimSpace(string(s))
	default:
		return strings.TrimSpace(fmt.Sprint(s))
	}
}

func (c coercer) intPtr(keys []string) *int64 {
	field, v, ok := c.lookup(keys)
	if !ok {
		return nil
	}
	n, err := ParseInt(v)
	if err != nil {
		c.fail(field, v, err)
		return nil
	}
	return &n
}

func (c coercer) decimal(keys []string) decimal.NullDecimal {
	field, v, ok := c.lookup(keys)
	if !ok {
		return decimal.NullDecimal{}
	}
	d, err := ParseDecimal(v)
	if err != nil {
		c.fail(field, v, err)
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// nonNegativeInt is intPtr for fields that must be >= 0; a negative value is a coercion failure.
func (c coercer) nonNegativeInt(keys []string) *int64 {
	n := c.intPtr(keys)
	if n != nil && *n < 0 {
		field, v, _ := c.lookup(keys)
		c.fail(field, v, fmt.Errorf("negative value %d", *n))
		return nil
	}
	return n
}

func (c coercer) nonNegativeDecimal(keys []string) decimal.NullDecimal {
	d := c.decimal(keys)
	if d.Valid && d.Decimal.IsNegative() {
		field, v, _ := c.lookup(keys)
		c.fail(field, v, fmt.Errorf("negative value %s", d.Decimal))
		return decimal.NullDecimal{}
	}
	return d
}

func (c coercer) time(keys []string) time.Time {
	field, v, ok := c.lookup(keys)
	if !ok {
		return time.Time{}
	}
	t, err := ParseTime(v)
	if err != nil {
		c.fail(field, v, err)
		return time.Time{}
	}
	return t
}

// ParseDecimal accepts numbers and numeric strings. NaN and infinities are rejected.
func ParseDecimal(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n, nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int32:
		return decimal.NewFromInt32(n), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case float32:
		return ParseDecimal(float64(n))
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Zero, fmt.Errorf("non-finite number %v", n)
		}
		return decimal.NewFromFloat(n), nil
	case json.Number:
		return decimal.NewFromString(n.String())
	case []byte:
		return ParseDecimal(string(n))
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return decimal.Zero, fmt.Errorf("empty number")
		}
		return decimal.NewFromString(s)
	default:
		return decimal.Zero, fmt.Errorf("unsupported number type %T", v)
	}
}

// ParseInt accepts integers, integral floats and integer strings.
func ParseInt(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint32:
		return int64(n), nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, fmt.Errorf("integer %d out of range", n)
		}
		return int64(n), nil
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) || math.IsNaN(n) {
			return 0, fmt.Errorf("not an integer: %v", n)
		}
		if n < math.MinInt64 || n >= math.MaxInt64 {
			return 0, fmt.Errorf("integer %v out of range", n)
		}
		return int64(n), nil
	case json.Number:
		return ParseInt(n.String())
	case []byte:
		return ParseInt(string(n))
	case string:
		s := strings.TrimSpace(n)
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, nil
		}
		d, err := decimal.NewFromString(s)
		if err != nil || !d.IsInteger() {
			return 0, fmt.Errorf("not an integer: %q", n)
		}
		if d.GreaterThan(decimal.NewFromInt(math.MaxInt64)) || d.LessThan(decimal.NewFromInt(math.MinInt64)) {
			return 0, fmt.Errorf("integer %q out of range", n)
		}
		return d.IntPart(), nil
	default:
		return 0, fmt.Errorf("unsupported integer type %T", v)
	}
}

// ParseTime accepts time values and the layouts upstream exports are known to use.
func ParseTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case []byte:
		return ParseTime(string(t))
	case string:
		s := strings.TrimSpace(t)
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return parsed, nil
			}
		}
		return time.Time{}, fmt.Errorf("unrecognized timestamp %q", t)
	default:
		return time.Time{}, fmt.Errorf("unsupported timestamp type %T", v)
	}
}
