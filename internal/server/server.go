package server

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/quickdocs/internal/config"
	"github.com/smallbiznis/quickdocs/internal/document"
	documentdomain "github.com/smallbiznis/quickdocs/internal/document/domain"
	"github.com/smallbiznis/quickdocs/internal/observability"
	obsmiddleware "github.com/smallbiznis/quickdocs/internal/observability/logger"
	obstracing "github.com/smallbiznis/quickdocs/internal/observability/tracing"
	"go.uber.org/fx"
)

var Module = fx.Module("http.server",
	config.Module,
	fx.Provide(registerGin),
	document.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config) *gin.Engine {
	return NewEngine(obsCfg)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine      *gin.Engine
	cfg         config.Config
	documentSvc documentdomain.Service
}

type ServerParams struct {
	fx.In

	Gin         *gin.Engine
	Cfg         config.Config
	DocumentSvc documentdomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:      p.Gin,
		cfg:         p.Cfg,
		documentSvc: p.DocumentSvc,
	}

	svc.registerAPIRoutes()
	svc.registerUIRoutes()
	svc.registerFallback()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	api.GET("/documents/:id/pdf", s.RenderDocumentPDF)
}

func (s *Server) registerUIRoutes() {
	r := s.engine.Group("/")

	// ---- SPA entry points ----
	r.GET("/", s.serveIndex)

	documents := r.Group("/documents")
	{
		documents.GET("/:id", s.serveIndex)
	}
}

func (s *Server) serveIndex(c *gin.Context) {
	c.File(filepath.Join(s.cfg.PublicDir, "index.html"))
}

func (s *Server) registerFallback() {
	s.engine.NoRoute(func(c *gin.Context) {
		// static assets (vite)
		if fileExists(s.cfg.PublicDir, c.Request.URL.Path) {
			c.File(filepath.Join(s.cfg.PublicDir, c.Request.URL.Path))
			return
		}

		// SPA fallback
		s.serveIndex(c)
	})
}

func fileExists(publicDir, reqPath string) bool {
	clean := filepath.Clean(reqPath)

	// prevent path traversal
	if clean == "." || clean == "/" || clean == ".." {
		return false
	}

	fullPath := filepath.Join(publicDir, clean)

	info, err := os.Stat(fullPath)
	if err != nil {
		return false
	}

	return !info.IsDir()
}
