package source

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/diillson/stock-analytics-dashboard-go/internal/domain/entity"
	"github.com/diillson/stock-analytics-dashboard-go/internal/domain/normalize"
	"github.com/diillson/stock-analytics-dashboard-go/internal/domain/repository"
)

// RecordRepositoryImpl implementa o RecordRepository lendo de arquivos locais, S3 ou MySQL.
type RecordRepositoryImpl struct {
	inventory    []string
	transactions []string
	readers      map[string]RowReader
	logger       *logrus.Logger
}

// Option configura o RecordRepositoryImpl.
type Option func(*RecordRepositoryImpl)

// WithReader registra o leitor usado para um esquema de localização.
func WithReader(scheme string, reader RowReader) Option {
	return func(r *RecordRepositoryImpl) {
		r.readers[scheme] = reader
	}
}

// NewRecordRepository cria um repositório para as localizações informadas.
// Local files are always readable; other schemes need a reader registered via WithReader.
func NewRecordRepository(inventory, transactions []string, logger *logrus.Logger, opts ...Option) repository.RecordRepository {
	r := &RecordRepositoryImpl{
		inventory:    inventory,
		transactions: transactions,
		readers:      map[string]RowReader{SchemeFile: FileReader{}},
		logger:       logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FetchInventory lê e normaliza todas as localizações de inventário.
func (r *RecordRepositoryImpl) FetchInventory(ctx context.Context, branchID *int64) ([]entity.InventoryRecord, error) {
	rows, err := r.readAll(ctx, r.inventory, Scope{BranchID: branchID})
	if err != nil {
		return nil, err
	}
	return normalize.Inventory(rows, r.coercionLogger("inventory")), nil
}

// FetchTransactions lê e normaliza todas as localizações de transações.
func (r *RecordRepositoryImpl) FetchTransactions(ctx context.Context) ([]entity.TransactionRecord, error) {
	rows, err := r.readAll(ctx, r.transactions, Scope{})
	if err != nil {
		return nil, err
	}
	return normalize.Transactions(rows, r.coercionLogger("transactions")), nil
}

func (r *RecordRepositoryImpl) readAll(ctx context.Context, locations []string, scope Scope) ([]normalize.Row, error) {
	all := []normalize.Row{}
	for _, location := range locations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		reader, ok := r.readers[SchemeOf(location)]
		if !ok {
			return nil, unsupported(location)
		}

		rows, err := reader.ReadRows(ctx, location, scope)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", location, err)
		}

		r.logger.WithFields(logrus.Fields{
			"location": location,
			"rows":     len(rows),
		}).Debug("records loaded")
		all = append(all, rows...)
	}
	return all, nil
}

func (r *RecordRepositoryImpl) coercionLogger(collection string) normalize.Logger {
	return func(index int, field string, value any, err error) {
		r.logger.WithFields(logrus.Fields{
			"collection": collection,
			"index":      index,
			"field":      field,
			"value":      value,
		}).WithError(err).Debug("field could not be coerced, skipping it")
	}
}
