package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryRecord represents one priced stock entry at a point in time.
// A nil Quantity, an invalid UnitPrice or a zero RecordedAt mean the field was missing upstream.
type InventoryRecord struct {
	ProductName string              `json:"product_name"`
	Quantity    *int64              `json:"quantity"`
	UnitPrice   decimal.NullDecimal `json:"unit_price"`
	BranchID    int64               `json:"branch_id"`
	RecordedAt  time.Time           `json:"recorded_at"`
}

// MatchesBranch compares the branch identifier. Inventory does not carry a branch name,
// so a selector with only a name does not constrain it.
func (r InventoryRecord) MatchesBranch(sel BranchSelector) bool {
	if sel.ID == nil {
		return true
	}
	return r.BranchID == *sel.ID
}

// Value retorna quantidade × preço unitário, ou false quando algum dos dois está ausente
// ou é negativo.
func (r InventoryRecord) Value() (decimal.Decimal, bool) {
	if r.Quantity == nil || !r.UnitPrice.Valid {
		return decimal.Zero, false
	}
	if *r.Quantity < 0 || r.UnitPrice.Decimal.IsNegative() {
		return decimal.Zero, false
	}
	return r.UnitPrice.Decimal.Mul(decimal.NewFromInt(*r.Quantity)), true
}
