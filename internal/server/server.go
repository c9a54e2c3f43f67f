// Package server serves the web bundle and a few JSON endpoints over gin.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/nakachan-ing/dayspark/internal/backup"
	"github.com/nakachan-ing/dayspark/internal/model"
)

// Journal is the part of journal.Service the server reads from.
type Journal interface {
	Export(ctx context.Context) (model.Export, error)
	Settings(ctx context.Context) (model.Settings, error)
	Tasks(ctx context.Context, query string) ([]model.Task, error)
	Schedule(ctx context.Context) ([]model.ScheduleItem, error)
	Memories(ctx context.Context) ([]model.Memory, error)
	Streak(ctx context.Context) (model.Streak, error)
}

type Server struct {
	config  model.ServerConfig
	journal Journal
	logger  *zap.Logger
	metrics *Metrics
	engine  *gin.Engine
	root    string
	now     func() time.Time
}

func New(config model.ServerConfig, journal Journal, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	root, err := filepath.Abs(config.PublicDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve public dir: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		config:  config,
		journal: journal,
		logger:  logger,
		metrics: NewMetrics(),
		engine:  gin.New(),
		root:    root,
		now:     time.Now,
	}

	r := s.engine
	r.Use(recovery(logger, s.metrics))
	r.Use(requestLogger(logger, s.metrics))

	r.GET("/healthz", s.healthz)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{})))
	api := r.Group("/api")
	{
		api.GET("/export", s.export)
		api.GET("/tasks", s.tasks)
		api.GET("/schedule", s.schedule)
		api.GET("/memories", s.memories)
		api.GET("/streak", s.currentStreak)
	}
	r.GET("/theme.css", s.themeCSS)
	r.NoRoute(staticFiles(root, logger))

	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.config.Addr,
		Handler:      s.engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting_http_server", zap.String("addr", s.config.Addr), zap.String("public_dir", s.root))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting_down_server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	s.logger.Info("server_stopped")
	return nil
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now(),
	})
}

func (s *Server) export(c *gin.Context) {
	exp, err := s.journal.Export(c.Request.Context())
	if err != nil {
		s.fail(c, "export", err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, backup.FileName(exp)))
	c.Header("Content-Type", "application/json")
	c.Status(http.StatusOK)
	if err := backup.Encode(c.Writer, exp); err != nil {
		s.logger.Error("export_write_failed", zap.Error(err))
	}
}

func (s *Server) themeCSS(c *gin.Context) {
	settings, err := s.journal.Settings(c.Request.Context())
	if err != nil {
		s.fail(c, "theme", err)
		return
	}
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(ThemeCSS(settings)))
}

func (s *Server) fail(c *gin.Context, handler string, err error) {
	s.logger.Error("handler_failed", zap.String("handler", handler), zap.Error(err))
	s.metrics.ErrorCount.WithLabelValues(handler, "internal").Inc()
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// ThemeCSS renders the settings as CSS custom properties on :root.
func ThemeCSS(settings model.Settings) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	fmt.Fprintf(&b, "  --primary-color: %s;\n", settings.PrimaryColor)
	fmt.Fprintf(&b, "  --accent-color: %s;\n", settings.AccentColor)
	fmt.Fprintf(&b, "  --bg-color: %s;\n", settings.BgColor)
	fmt.Fprintf(&b, "  --card-color: %s;\n", settings.CardColor)
	fmt.Fprintf(&b, "  --font-family: %s;\n", settings.FontFamily)
	fmt.Fprintf(&b, "  --base-font-size: %s;\n", settings.FontSize)
	b.WriteString("}\n")
	return b.String()
}
