package source

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/diillson/stock-analytics-dashboard-go/internal/domain/normalize"
)

var tableNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// MySQLReader reads rows from a table, e.g. mysql://inventory. The connection is opened
// on first use and shared by every location.
type MySQLReader struct {
	dsn string

	mu sync.Mutex
	db *gorm.DB
}

// NewMySQLReader cria um leitor MySQL para o DSN informado.
func NewMySQLReader(dsn string) *MySQLReader {
	return &MySQLReader{dsn: dsn}
}

// NewMySQLReaderWithDB cria um leitor usando uma conexão gorm existente.
func NewMySQLReaderWithDB(db *gorm.DB) *MySQLReader {
	return &MySQLReader{db: db}
}

func (r *MySQLReader) getDB() (*gorm.DB, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.db != nil {
		return r.db, nil
	}
	if r.dsn == "" {
		return nil, fmt.Errorf("mysql source requires a DSN")
	}

	db, err := gorm.Open(mysql.Open(r.dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mysql: %w", err)
	}

	r.db = db
	return r.db, nil
}

// TableFromLocation extrai e valida o nome da tabela de mysql://tabela.
func TableFromLocation(location string) (string, error) {
	table, ok := strings.CutPrefix(location, "mysql://")
	if !ok {
		return "", unsupported(location)
	}
	if !tableNameRegex.MatchString(table) {
		return "", fmt.Errorf("invalid table name %q", table)
	}
	return table, nil
}

// ReadRows implementa RowReader. Inventory fetches are scoped to the branch in SQL.
func (r *MySQLReader) ReadRows(ctx context.Context, location string, scope Scope) ([]normalize.Row, error) {
	table, err := TableFromLocation(location)
	if err != nil {
		return nil, err
	}

	db, err := r.getDB()
	if err != nil {
		return nil, err
	}

	query := db.WithContext(ctx).Table(table)
	if scope.BranchID != nil {
		query = query.Where("branch_id = ?", *scope.BranchID)
	}

	var rows []map[string]interface{}
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("error querying %s: %w", table, err)
	}

	out := make([]normalize.Row, 0, len(rows))
	for _, row := range rows {
		out = append(out, normalize.Row(row))
	}
	return out, nil
}
