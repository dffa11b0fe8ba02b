package analytics

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/diillson/stock-analytics-dashboard-go/internal/domain/entity"
)

// Tipos de transação reconhecidos pelo cálculo de balanço.
const (
	TypeSale     = "venta"
	TypePurchase = "compra"
	TypeReturn   = "devolucion"
)

// NormalizeType lower-cases a transaction type and strips its diacritics,
// so "Devolución" and "DEVOLUCION" group together.
func NormalizeType(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// typeLabel capitaliza a primeira letra da chave normalizada.
func typeLabel(key string) string {
	r, size := utf8.DecodeRuneInString(key)
	if r == utf8.RuneError {
		return key
	}
	return string(unicode.ToUpper(r)) + key[size:]
}

// CountByType counts transactions per type in first-seen order. Types that only differ in
// case or accents are counted together; transactions without a type are skipped.
func CountByType(txs []entity.TransactionRecord) []entity.TransactionTypeSummary {
	summaries := []entity.TransactionTypeSummary{}
	index := make(map[string]int)

	for _, tx := range txs {
		key := NormalizeType(tx.TransactionType)
		if key == "" {
			continue
		}
		i, ok := index[key]
		if !ok {
			i = len(summaries)
			index[key] = i
			summaries = append(summaries, entity.TransactionTypeSummary{TypeName: typeLabel(key)})
		}
		summaries[i].Count++
	}
	return summaries
}

// Classify returns the balance side a transaction type contributes to.
func Classify(transactionType string) (entity.BalanceCategory, bool) {
	switch NormalizeType(transactionType) {
	case TypeSale:
		return entity.Income, true
	case TypePurchase, TypeReturn:
		return entity.Expense, true
	default:
		return "", false
	}
}

// Balance splits transaction totals into Income and Expense. Both entries are always
// returned; a missing or unparsable total skips only that transaction.
func Balance(txs []entity.TransactionRecord) [2]entity.BalanceSummary {
	income, expense := decimal.Zero, decimal.Zero

	for _, tx := range txs {
		if !tx.TotalPrice.Valid {
			continue
		}
		category, ok := Classify(tx.TransactionType)
		if !ok {
			continue
		}
		if category == entity.Income {
			income = income.Add(tx.TotalPrice.Decimal)
		} else {
			expense = expense.Add(tx.TotalPrice.Decimal)
		}
	}

	return [2]entity.BalanceSummary{
		{Category: entity.Income, Total: income},
		{Category: entity.Expense, Total: expense},
	}
}
