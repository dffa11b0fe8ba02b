package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/diillson/stock-analytics-dashboard-go/internal/domain/analytics"
	"github.com/diillson/stock-analytics-dashboard-go/internal/domain/entity"
	"github.com/diillson/stock-analytics-dashboard-go/internal/domain/repository"
	"github.com/diillson/stock-analytics-dashboard-go/internal/shared/types"
)

// AnalyticsService guarda o último snapshot carregado das duas coleções e memoiza os relatórios.
type AnalyticsService struct {
	records repository.RecordRepository
	cache   repository.ReportCache
	logger  *logrus.Logger
	now     func() time.Time

	mu           sync.RWMutex
	generation   uint64
	loaded       bool
	outcome      types.FetchOutcome
	inventory    []entity.InventoryRecord
	transactions []entity.TransactionRecord
}

// NewAnalyticsService cria o serviço sobre um repositório de registros e um cache de relatórios.
func NewAnalyticsService(records repository.RecordRepository, cache repository.ReportCache, logger *logrus.Logger) *AnalyticsService {
	return &AnalyticsService{
		records: records,
		cache:   cache,
		logger:  logger,
		now:     time.Now,
	}
}

// SetClock substitui o relógio usado como data de referência dos relatórios.
func (s *AnalyticsService) SetClock(now func() time.Time) {
	s.now = now
}

// Refresh fetches both collections concurrently and swaps the snapshot. A collection whose
// fetch fails is replaced by an empty one. When both fail the previous snapshot is kept.
func (s *AnalyticsService) Refresh(ctx context.Context, branchID *int64) (types.FetchOutcome, error) {
	var (
		wg           sync.WaitGroup
		inventory    []entity.InventoryRecord
		transactions []entity.TransactionRecord
		invErr       error
		txErr        error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		inventory, invErr = s.records.FetchInventory(ctx, branchID)
	}()
	go func() {
		defer wg.Done()
		transactions, txErr = s.records.FetchTransactions(ctx)
	}()
	wg.Wait()

	outcome := types.ClassifyFetch(invErr, txErr)
	if outcome == types.FetchBothFailed {
		s.logger.WithFields(logrus.Fields{
			"inventory_error":   invErr,
			"transaction_error": txErr,
		}).Error("could not load records")
		return outcome, fmt.Errorf("%w: %v; %v", types.ErrBothSourcesFailed, invErr, txErr)
	}

	if invErr != nil {
		s.logger.WithError(invErr).Warn("inventory fetch failed, continuing without inventory")
		inventory = []entity.InventoryRecord{}
	}
	if txErr != nil {
		s.logger.WithError(txErr).Warn("transaction fetch failed, continuing without transactions")
		transactions = []entity.TransactionRecord{}
	}

	s.mu.Lock()
	s.generation++
	s.loaded = true
	s.outcome = outcome
	s.inventory = inventory
	s.transactions = transactions
	generation := s.generation
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"generation":   generation,
		"inventory":    len(inventory),
		"transactions": len(transactions),
	}).Info("records refreshed")

	return outcome, nil
}

// Report runs the analytics pipeline for q over the current snapshot.
func (s *AnalyticsService) Report(ctx context.Context, q entity.Query) (entity.DashboardReport, error) {
	s.mu.RLock()
	loaded, generation := s.loaded, s.generation
	inventory, transactions := s.inventory, s.transactions
	s.mu.RUnlock()

	if !loaded {
		return entity.DashboardReport{}, types.ErrNoSnapshot
	}

	asOf := s.now()
	key := reportKey(generation, asOf.Year(), q)
	if report, ok := s.cache.Get(ctx, key); ok {
		s.logger.WithField("key", key).Debug("report cache hit")
		return report, nil
	}

	report := analytics.Run(inventory, transactions, q, asOf)
	report.RunID = uuid.NewString()
	s.cache.Set(ctx, key, report)

	s.logger.WithFields(logrus.Fields{
		"run_id":       report.RunID,
		"key":          key,
		"inventory":    report.InventoryCount,
		"transactions": report.TransactionCount,
	}).Debug("report computed")

	return report, nil
}

// Outcome returns how the last successful refresh went.
func (s *AnalyticsService) Outcome() types.FetchOutcome {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.outcome
}

// Generation é incrementada a cada Refresh bem-sucedido.
func (s *AnalyticsService) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// reportKey identifies a report by snapshot, current year and filter tuple. The year is part
// of the key because the yearly bucket is tied to it.
func reportKey(generation uint64, year int, q entity.Query) string {
	return fmt.Sprintf("g=%d|y=%d|%s", generation, year, q.CacheKey())
}
