package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Server wires the compute API onto a gin engine.
type Server struct {
	log     *slog.Logger
	version string
	router  *gin.Engine
}

// NewServer builds the HTTP surface. The logger receives one access record
// per request.
func NewServer(log *slog.Logger, version string) *Server {
	s := &Server{log: log, version: version}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.accessLog())

	api := r.Group("/api")
	{
		api.GET("/health", s.health)
		api.GET("/version", s.getVersion)
		api.POST("/compute", s.compute)
	}

	s.router = r
	return s
}

// Handler returns the root http.Handler for the server.
func (s *Server) Handler() http.Handler { return s.router }

// accessLog records method, path, status and duration for each request.
func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		begin := time.Now()
		c.Next()
		s.log.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(begin),
		)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) getVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"version": s.version})
}
