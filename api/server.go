package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/domp-site-backend/config"
	"github.com/rpupo63/domp-site-backend/database"
	"github.com/rs/zerolog/log"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

// NewServer builds the HTTP server for database. intake handles leads from
// the public contact form; c is the configuration map from config.New.
func NewServer(database database.Database, intake quoteSubmitter, c map[string]string) (Server, error) {
	if intake == nil {
		return Server{}, fmt.Errorf("quote intake is required")
	}

	// Ensure correct port is set
	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port) // Bind to 0.0.0.0 for external access

	// Capture startup time
	startupTime := time.Now()

	router := newRouter(database, intake, withConfig(c), withStartupTime(startupTime))

	// Get timeout values from config with sensible defaults
	readTimeout := config.GetDuration(c, "READ_TIMEOUT_SECONDS", 180*time.Second)
	writeTimeout := config.GetDuration(c, "WRITE_TIMEOUT_SECONDS", 180*time.Second)
	idleTimeout := config.GetDuration(c, "IDLE_TIMEOUT_SECONDS", 180*time.Second)

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  readTimeout,  // Timeout for reading the entire request
		WriteTimeout: writeTimeout, // Timeout for writing the response
		IdleTimeout:  idleTimeout,  // Timeout for idle connections
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      map[string]string
	startupTime time.Time
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func newRouter(database database.Database, intake quoteSubmitter, opts ...func(*router)) *chi.Mux {
	router := router{startupTime: time.Now()}
	for _, opt := range opts {
		opt(&router)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)

	// Initialize all handlers
	handlers := initializeHandlers(database, intake, router.config, router.startupTime)

	// Initialize auth middleware
	authMiddleware := newAuthMiddleware()

	// Apply CORS middleware
	acceptedOrigins := config.GetList(router.config, "ACCEPTED_ORIGINS")
	chiRouter.Use(CORSCheckMiddleware(acceptedOrigins))
	chiRouter.Use(corsMiddleware(acceptedOrigins))

	setupPublicRoutes(chiRouter, handlers)
	setupAdminRoutes(chiRouter, handlers, authMiddleware)

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
