// Package router wires the HTTP routes.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taemotherlode01/ministore-api/internal/controller"
	"github.com/taemotherlode01/ministore-api/internal/handler"
	"github.com/taemotherlode01/ministore-api/internal/middleware"
)

type Deps struct {
	Customers *controller.CustomerController
	Products  *controller.ProductController
	System    *handler.SystemHandler
	Limiter   *middleware.RateLimiter
	Verifier  middleware.TokenVerifier
}

// New builds the router. Writes and searches go through the rate limiter;
// GET /customers/{id} does not; listing customers needs a bearer token.
func New(d Deps) http.Handler {
	if d.Verifier == nil {
		d.Verifier = middleware.StaticToken("")
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Use(chimw.Recoverer)

	r.Get("/healthz", d.System.Health)
	r.Get("/openapi.yaml", d.System.OpenAPI)
	r.Get("/docs", d.System.Docs)

	r.Route("/api/v1", func(r chi.Router) {
		limited := r.With(d.Limiter.Middleware)
		authed := r.With(middleware.RequireToken(d.Verifier))

		// Customer routes
		limited.Post("/customers", d.Customers.CreateCustomer)
		limited.Put("/customers", d.Customers.UpdateCustomer)
		limited.Delete("/customers/{id}", d.Customers.DeleteCustomer)
		r.Get("/customers/{id}", d.Customers.GetCustomer)
		limited.Get("/customers/q/{term}", d.Customers.SearchCustomers)
		authed.Get("/customers", d.Customers.ListCustomers)

		// Product routes
		limited.Post("/products", d.Products.CreateProduct)
		limited.Put("/products", d.Products.UpdateProduct)
		limited.Delete("/products/{id}", d.Products.DeleteProduct)
		limited.Get("/products", d.Products.ListProducts)
		limited.Get("/products/{id}", d.Products.GetProduct)
		limited.Get("/products/q/{term}", d.Products.SearchProducts)
	})

	return r
}
