package server

import (
	"CSChat/be/internal/auth"
	"CSChat/be/internal/chatbot"
	"CSChat/be/internal/config"
	"context"
	"errors"
	"fmt"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
	"slices"
	"time"
)

const (
	shutdownGracePeriod = 10 * time.Second
	readHeaderTimeout   = 10 * time.Second
)

type Server struct {
	engine  *gin.Engine
	address string
}

// New wires middleware and routes. authService may be nil when auth is disabled.
func New(cfg *config.Config, chatController *chatbot.ChatController, authService auth.Service) *Server {
	router := gin.Default()
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Configure CORS
	router.Use(cors.New(corsConfig(cfg.CORS)))

	api := router.Group("/api")
	if authService != nil {
		api.Use(auth.RequireToken(authService))
	}
	chatController.RegisterRoutes(api)

	return &Server{
		engine:  router,
		address: ":" + cfg.Server.Port,
	}
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then drains in-flight requests. No
// read/write deadline is placed on request handling.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.address,
		Handler:           s.engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s", s.address)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		log.Println("Server shutdown complete")
		return nil
	case err := <-errCh:
		return err
	}
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	c := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
	}
	// gin-contrib/cors refuses an empty origin list and "*" mixed with explicit origins.
	if len(cfg.AllowOrigins) == 0 || slices.Contains(cfg.AllowOrigins, "*") {
		c.AllowAllOrigins = true
		c.AllowCredentials = false
	} else {
		c.AllowOrigins = cfg.AllowOrigins
	}
	return c
}
