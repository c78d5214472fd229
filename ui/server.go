package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"greep/app"
	"greep/internal"
	"greep/internal/config"
)

// Server exposes the bulk-import engine over HTTP: analyze a spreadsheet,
// confirm reviewed mappings, list import history.
type Server struct {
	router  *gin.Engine
	service *app.ImportService
	cfg     *config.Config
	log     *internal.Logger
}

// NewServer builds the gin router and registers routes.
func NewServer(service *app.ImportService, cfg *config.Config, log *internal.Logger) *Server {
	if log == nil {
		log = internal.DefaultLogger
	}
	gin.SetMode(cfg.Server.GinMode)

	s := &Server{
		router:  gin.Default(),
		service: service,
		cfg:     cfg,
		log:     log.WithComponent("http"),
	}
	s.router.MaxMultipartMemory = cfg.Import.MaxUploadBytes
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.router.Group("/api")
	{
		api.POST("/imports/analyze", s.handleAnalyze)
		api.POST("/imports/confirm", s.handleConfirm)
		api.GET("/imports", s.handleHistory)
	}
}

// Start blocks serving HTTP on the configured port.
func (s *Server) Start() error {
	addr := ":" + s.cfg.Server.Port
	s.log.Info("listening on %s", addr)
	return s.router.Run(addr)
}
