package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	vocal "github.com/iagovirgilio/vocal-app"
	v1 "github.com/iagovirgilio/vocal-app/infrastructure/api/v1"
)

// APIServer provides an HTTP API backed by a vocal Client.
type APIServer struct {
	client      *vocal.Client
	corsOrigins []string
	server      *Server
	router      chi.Router
	logger      *slog.Logger
}

// NewAPIServer creates a new APIServer wired to the given vocal Client.
// corsOrigins configures which browser origins may call the API; an empty
// list disables CORS headers entirely.
func NewAPIServer(client *vocal.Client, corsOrigins []string) *APIServer {
	return &APIServer{
		client:      client,
		corsOrigins: corsOrigins,
		logger:      client.Logger(),
	}
}

// Router returns the chi router for customization before starting.
func (a *APIServer) Router() chi.Router {
	if a.router == nil {
		a.router = chi.NewRouter()
	}
	return a.router
}

// MountRoutes wires up all v1 API routes on the router.
func (a *APIServer) MountRoutes() {
	a.mountRoutes(a.Router())
}

func (a *APIServer) mountRoutes(router chi.Router) {
	transpositionsRouter := v1.NewTranspositionsRouter(a.client)
	voicesRouter := v1.NewVoicesRouter(a.client)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(chimiddleware.Timeout(30 * time.Second))

		if len(a.corsOrigins) > 0 {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins: a.corsOrigins,
				AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
				AllowedHeaders: []string{"Accept", "Content-Type"},
				MaxAge:         300,
			}))
		}

		r.Mount("/transpositions", transpositionsRouter.Routes())
		r.Mount("/voices", voicesRouter.Routes())
	})
}

// ListenAndServe starts the HTTP server on the given address and blocks.
func (a *APIServer) ListenAndServe(addr string) error {
	server := NewServer(addr, a.logger)
	a.server = &server

	if a.router != nil {
		server.Router().Mount("/", a.router)
	} else {
		a.mountRoutes(server.Router())
	}

	return server.Start()
}

// Shutdown gracefully shuts down the server.
func (a *APIServer) Shutdown(ctx context.Context) error {
	if a.server == nil {
		return nil
	}
	return a.server.Shutdown(ctx)
}

// Handler returns the router as an http.Handler for use with custom servers.
func (a *APIServer) Handler() http.Handler {
	if a.router == nil {
		a.Router()
		a.MountRoutes()
	}
	return a.router
}
