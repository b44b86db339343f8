package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/rogerio-castellano/product-catalog/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", handlers.HealthHandler)

	r.With(RateLimit).Post("/register", handlers.RegisterHandler)
	r.With(RateLimit).Post("/login", handlers.LoginHandler)
	r.With(AuthMiddleware).Get("/user", handlers.MeHandler)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/products", handlers.GetProductsHandler)
		r.Get("/products/search", handlers.SearchProductsHandler)
		r.Post("/products", handlers.CreateProductHandler)
		r.Get("/product/{id}", handlers.GetProductByIDHandler)
		r.Put("/product/{id}", handlers.UpdateProductHandler)
		r.Delete("/product/{id}", handlers.DeleteProductHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	return r
}
