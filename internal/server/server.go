package server

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-map-search/internal/handlers"
	"github.com/justsurfingit/job-map-search/internal/views"
)

type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	addr       string
}

// New wires the router. corsOrigins empty means every origin is allowed.
func New(addr string, corsOrigins []string, search *handlers.SearchHandler, assets *handlers.AssetHandler) (*Server, error) {
	router := gin.Default()
	if err := router.SetTrustedProxies(nil); err != nil {
		return nil, err
	}

	config := cors.DefaultConfig()
	if len(corsOrigins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = corsOrigins
	}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept", handlers.RequestIDHeader}
	router.Use(cors.New(config))
	router.Use(handlers.RequestID())

	router.GET("/", search.Index)
	router.GET("/search", search.SearchPage)
	router.GET(views.ScriptPath, assets.Script)
	router.GET(views.StylesheetPath, assets.Stylesheet)
	router.GET(views.PlaceholderPath, assets.Placeholder)

	api := router.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/search", search.SearchAPI)
	}

	return &Server{
		httpServer: &http.Server{
			Addr:    addr,
			Handler: router,
		},
		router: router,
		addr:   addr,
	}, nil
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run() error {
	log.Printf("🚀 Server starting on %s...", s.addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}
	log.Println("Server shutdown completed")
	return nil
}
