// Package server exposes the battle backend over HTTP: POST /battle
// plus the record query endpoints under /db.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sapteams/battleapi/internal/battle"
	"github.com/sapteams/battleapi/internal/engine"
	"github.com/sapteams/battleapi/internal/records"
	"github.com/sapteams/battleapi/internal/stats"
)

// Dependencies holds everything the HTTP layer needs. The record
// snapshot is an immutable capability shared across requests; battles
// own their team copies, so handlers never coordinate.
type Dependencies struct {
	Snapshot   *records.Snapshot
	Store      *records.Store
	Logger     zerolog.Logger
	TurnLimit  int
	Metrics    *battle.Metrics
	Stats      *stats.Manager
	EnableCORS bool
}

// Server wraps the gin router and HTTP listener.
type Server struct {
	deps       Dependencies
	router     *gin.Engine
	httpServer *http.Server
	normalizer *battle.Normalizer
	driver     *battle.Driver
}

// New builds the router and handlers.
func New(deps Dependencies) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		deps:       deps,
		router:     gin.New(),
		normalizer: battle.NewNormalizer(deps.Snapshot),
		driver:     battle.NewDriver(battle.EngineFunc(engine.Fight), deps.TurnLimit),
	}

	s.router.Use(gin.Recovery())
	if deps.EnableCORS {
		s.router.Use(corsMiddleware())
	}

	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router.POST("/battle", s.postBattle)

	db := s.router.Group("/db")
	{
		db.GET("/pets", s.getPets)
		db.GET("/foods", s.getFoods)
	}

	return s
}

// corsMiddleware allows browser clients from any origin to use the
// GET/POST surface.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// Router exposes the handler tree, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Run serves until the context is cancelled, then drains connections.
func (s *Server) Run(ctx context.Context, addr string, port int) error {
	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", addr, port),
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		s.deps.Logger.Info().Str("addr", s.httpServer.Addr).Msg("Listening")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}
