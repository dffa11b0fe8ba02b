// Package api exposes the dashboard analytics over HTTP.
package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/diillson/stock-analytics-dashboard-go/internal/application/usecase"
	"github.com/diillson/stock-analytics-dashboard-go/internal/domain/entity"
	"github.com/diillson/stock-analytics-dashboard-go/internal/shared/types"
)

const (
	requestIDHeader = "X-Request-ID"
	shutdownTimeout = 15 * time.Second
)

// Server serve os relatórios do AnalyticsService.
type Server struct {
	service *usecase.AnalyticsService
	config  types.ServerConfig
	logger  *logrus.Logger
	engine  *gin.Engine
}

// NewServer monta o roteador com os middlewares e as rotas da API.
func NewServer(service *usecase.AnalyticsService, config types.ServerConfig, logger *logrus.Logger) *Server {
	s := &Server{
		service: service,
		config:  config,
		logger:  logger,
	}

	r := gin.New()
	r.Use(requestID())
	r.Use(cors.New(corsConfig(config.AllowedOrigins)))
	r.Use(accessLog(logger))
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	v1 := r.Group("/api/v1")
	v1.GET("/analytics", s.handleReport(func(r entity.DashboardReport) any { return r }))
	v1.GET("/analytics/valuation", s.handleReport(func(r entity.DashboardReport) any { return r.Valuation }))
	v1.GET("/analytics/composition", s.handleReport(func(r entity.DashboardReport) any { return r.Composition }))
	v1.GET("/analytics/transactions/types", s.handleReport(func(r entity.DashboardReport) any { return r.TransactionTypes }))
	v1.GET("/analytics/balance", s.handleReport(func(r entity.DashboardReport) any { return r.Balance }))
	v1.POST("/refresh", s.handleRefresh)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	s.engine = r
	return s
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully. When a refresh schedule is
// configured the sources are reloaded on that cron spec.
func (s *Server) Run(ctx context.Context) error {
	if s.config.RefreshSchedule != "" {
		c := cron.New()
		_, err := c.AddFunc(s.config.RefreshSchedule, func() {
			s.logger.Info("scheduled refresh started")
			if _, err := s.service.Refresh(context.Background(), nil); err != nil {
				s.logger.WithError(err).Error("scheduled refresh failed")
			}
		})
		if err != nil {
			return err
		}
		c.Start()
		defer c.Stop()
	}

	srv := &http.Server{
		Addr:    s.config.Addr,
		Handler: s.engine,
	}

	serverErrCh := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", s.config.Addr).Info("starting HTTP server")
		serverErrCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-serverErrCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) handleReport(view func(entity.DashboardReport) any) gin.HandlerFunc {
	return func(c *gin.Context) {
		q, err := parseQuery(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		report, err := s.service.Report(c.Request.Context(), q)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, types.ErrNoSnapshot) {
				status = http.StatusServiceUnavailable
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, view(report))
	}
}

func (s *Server) handleRefresh(c *gin.Context) {
	outcome, err := s.service.Refresh(c.Request.Context(), nil)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	body := gin.H{"generation": s.service.Generation()}
	if msg := outcome.Message(); msg != "" {
		body["warning"] = msg
	}
	c.JSON(http.StatusOK, body)
}

// parseQuery lê branch_id, branch_name, start, end e search da query string.
func parseQuery(c *gin.Context) (entity.Query, error) {
	var branchID *int64
	if raw := strings.TrimSpace(c.Query("branch_id")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return entity.Query{}, errors.New("branch_id must be an integer")
		}
		branchID = &id
	}

	return usecase.ParseQuery(branchID, c.Query("branch_name"), c.Query("start"), c.Query("end"), c.Query("search"))
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func accessLog(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"latency":    time.Since(start).String(),
		}).Info("request served")
	}
}

func corsConfig(origins []string) cors.Config {
	config := cors.DefaultConfig()
	if len(origins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
	}
	config.AddAllowHeaders(requestIDHeader)
	config.AddExposeHeaders(requestIDHeader)
	return config
}
