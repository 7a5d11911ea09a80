package api

import (
	"net/http"
	"shipment-address-service/internal/api/handlers"
	"shipment-address-service/internal/ports"

	"github.com/go-chi/chi/v5"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.ShipmentRepository) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware, loggingMiddleware, recoverMiddleware)
	r.NotFound(handlers.NotFound)

	shipmentHandler := &handlers.ShipmentHandler{Repo: repo}

	r.Get("/health", handlers.Health)
	r.Route("/shipments", func(r chi.Router) {
		r.Get("/", shipmentHandler.List)
		r.Get("/{shipmentID}", shipmentHandler.Get)
		r.Get("/{shipmentID}/parsed", shipmentHandler.Parsed)
	})

	return r
}
