package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"carpooling-go/internal/config"
	"carpooling-go/internal/transport/httpserver/handler"
	"carpooling-go/internal/transport/httpserver/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.NewCORS(cfg.AllowedOrigins))

	r.Get("/", handlers.Index)
	r.Get("/health", handlers.Health)

	r.Get("/users", handlers.ListUsers)
	r.Get("/users/{id}", handlers.GetUser)
	r.Post("/register", handlers.Register)

	r.Get("/carpools", handlers.ListCarpools)
	r.Get("/carpools/{userId}", handlers.ListCarpoolsForUser)
	r.Post("/carpools", handlers.CreateCarpool)

	r.Get("/intermediaries", handlers.ListIntermediaries)

	r.Post("/proposals", handlers.AcceptProposal)
	r.Get("/proposals/{uid}", handlers.ListProposals)

	return r
}
