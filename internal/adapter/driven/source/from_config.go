package source

import (
	"github.com/sirupsen/logrus"

	"github.com/diillson/stock-analytics-dashboard-go/internal/domain/repository"
	"github.com/diillson/stock-analytics-dashboard-go/internal/shared/types"
)

// FromConfig cria o repositório com os leitores S3 e MySQL descritos na configuração.
// Os clients S3 e MySQL só são criados na primeira leitura.
func FromConfig(cfg *types.Config, logger *logrus.Logger) repository.RecordRepository {
	opts := []Option{
		WithReader(SchemeS3, NewS3Reader(cfg.AWS.Profile, cfg.AWS.Region)),
	}
	if cfg.MySQL.DSN != "" {
		opts = append(opts, WithReader(SchemeMySQL, NewMySQLReader(cfg.MySQL.DSN)))
	}
	return NewRecordRepository(cfg.Inventory, cfg.Transactions, logger, opts...)
}
