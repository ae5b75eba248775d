// Package server exposes the signup form over HTTP with echo.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goliatone/go-formcheck/internal/config"
	"github.com/goliatone/go-formcheck/pkg/model"
	"github.com/goliatone/go-formcheck/pkg/openapi"
	"github.com/goliatone/go-formcheck/pkg/render"
	"github.com/goliatone/go-formcheck/pkg/renderers/vanilla"
	"github.com/goliatone/go-formcheck/pkg/validation"
)

// Server wires the form model, renderer and validators into echo routes.
// Handlers only read shared state, so one Server serves concurrent requests.
type Server struct {
	echo       *echo.Echo
	cfg        *config.Config
	logger     *zap.Logger
	form       model.FormModel
	html       *vanilla.Renderer
	playground *playground
	live       validation.Live
	metrics    *Metrics
	registry   *prometheus.Registry
}

// Option configures a Server.
type Option func(*options)

type options struct {
	form     *model.FormModel
	registry *prometheus.Registry
}

// WithForm serves form instead of the one named by the configuration.
func WithForm(form model.FormModel) Option {
	return func(o *options) {
		o.form = &form
	}
}

// WithRegistry registers metrics with registry instead of a fresh one.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(o *options) {
		if registry != nil {
			o.registry = registry
		}
	}
}

// New builds the echo application. A nil logger disables logging.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger, opts ...Option) (*Server, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	o := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	form, err := loadForm(ctx, cfg, o.form)
	if err != nil {
		return nil, err
	}

	html, err := vanilla.New(vanilla.WithDocument(cfg.Form.Title))
	if err != nil {
		return nil, fmt.Errorf("server: vanilla renderer: %w", err)
	}
	pg, err := newPlayground()
	if err != nil {
		return nil, err
	}
	structValidator, err := validation.NewStructValidator()
	if err != nil {
		return nil, fmt.Errorf("server: struct validator: %w", err)
	}

	registry := o.registry
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	s := &Server{
		echo:       echo.New(),
		cfg:        cfg,
		logger:     logger,
		form:       form,
		html:       html,
		playground: pg,
		live:       validation.Live{RevalidateDependents: cfg.Form.RevalidateDependents},
		metrics:    NewMetrics(registry),
		registry:   registry,
	}
	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.echo.Validator = structValidator
	s.echo.HTTPErrorHandler = s.handleError
	s.routes()
	return s, nil
}

func loadForm(ctx context.Context, cfg *config.Config, override *model.FormModel) (model.FormModel, error) {
	if override != nil {
		return *override, nil
	}
	if cfg.Form.Document == "" {
		form, err := openapi.Default(ctx)
		if err != nil {
			return model.FormModel{}, fmt.Errorf("server: default form: %w", err)
		}
		return form, nil
	}
	operationID := cfg.Form.OperationID
	if operationID == "" {
		operationID = openapi.DefaultOperationID
	}
	form, err := openapi.Load(ctx, openapi.SourceFromFile(cfg.Form.Document), operationID)
	if err != nil {
		return model.FormModel{}, fmt.Errorf("server: load form: %w", err)
	}
	return form, nil
}

func (s *Server) routes() {
	e := s.echo
	e.Use(recoverMiddleware(s.logger))
	e.Use(requestIDMiddleware())
	e.Use(requestLogger(s.logger))
	if s.cfg.Server.CSRF.Enabled {
		e.Use(csrfMiddleware(s.cfg.Server.CSRF))
	}

	e.GET("/", s.showForm)
	e.POST("/", s.submitForm)
	e.POST("/validate/:field", s.validateField)
	e.POST("/api/signup", s.apiSignup)
	e.GET("/playground", s.showPlayground)
	e.StaticFS("/assets", vanilla.AssetsFS())
	e.StaticFS("/gallery", echo.MustSubFS(galleryFiles, "static/gallery"))
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	if s.cfg.Server.Metrics {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))
	}
}

// Handler exposes the echo application, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Metrics exposes the collectors updated by the handlers.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down within the configured grace period.
func (s *Server) Run(ctx context.Context) error {
	s.echo.Server.ReadTimeout = s.cfg.Server.ReadTimeout
	s.echo.Server.ReadHeaderTimeout = 5 * time.Second

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		if err := s.echo.Start(s.cfg.Server.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	s.logger.Info("server started", zap.String("addr", s.cfg.Server.Addr))

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	grace := s.cfg.Server.ShutdownGrace
	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	s.logger.Info("server shutting down", zap.Duration("grace", grace))
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return <-errCh
}

// Addr reports the bound listener address once Run is serving.
func (s *Server) Addr() string {
	if addr := s.echo.ListenerAddr(); addr != nil {
		return addr.String()
	}
	return ""
}

func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("request_id", requestID(c)),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}
	s.echo.DefaultHTTPErrorHandler(err, c)
}

// renderOptions decorates opts with the request-scoped hidden fields and the
// configured theme.
func (s *Server) renderOptions(c echo.Context, opts render.RenderOptions) render.RenderOptions {
	if token := csrfToken(c); token != "" {
		opts.Hidden = render.MergeHiddenFields(opts.Hidden, render.CSRFToken("", token))
	}
	if opts.Theme == nil {
		opts.Theme = s.cfg.RendererTheme()
	}
	return opts
}
