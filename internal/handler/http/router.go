package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Nghalu/KingdomFarming/pkg/health"
	"github.com/Nghalu/KingdomFarming/pkg/middleware"

	"github.com/Nghalu/KingdomFarming/internal/domain"
	"github.com/Nghalu/KingdomFarming/internal/service"
)

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Cart     *service.CartService
	Catalog  *service.CatalogService
	Checkout *service.CheckoutService
	Orders   *service.OrderService
	Health   *health.Handler
	Logger   *slog.Logger
}

// NewRouter creates a chi router with all marketplace routes registered.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(deps.Logger))
	r.Use(middleware.PrometheusMetrics("marketplace"))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	// Health check endpoints
	r.Get("/health/live", deps.Health.LivenessHandler())
	r.Get("/health/ready", deps.Health.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	cartHandler := NewCartHandler(deps.Cart, deps.Logger)
	catalogHandler := NewCatalogHandler(deps.Catalog, deps.Logger)
	checkoutHandler := NewCheckoutHandler(deps.Checkout, deps.Logger)
	orderHandler := NewOrderHandler(deps.Orders, deps.Logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		// Public catalog browsing.
		r.Get("/products", catalogHandler.ListProducts)
		r.Get("/products/{productID}", catalogHandler.GetProduct)
		r.Get("/farms", catalogHandler.ListFarms)
		r.Get("/farms/{farmID}", catalogHandler.GetFarm)

		// Everything below needs a gateway-authenticated identity.
		r.Group(func(r chi.Router) {
			r.Use(Identity)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cartHandler.GetCart)
				r.Delete("/", cartHandler.ClearCart)
				r.Get("/totals", cartHandler.GetTotals)

				r.Post("/items", cartHandler.AddItem)
				r.Put("/items/{productID}", cartHandler.UpdateItemQuantity)
				r.Delete("/items/{productID}", cartHandler.RemoveItem)
			})

			r.Route("/checkout", func(r chi.Router) {
				r.Post("/", checkoutHandler.Start)
				r.Get("/{checkoutID}", checkoutHandler.Get)
				r.Put("/{checkoutID}/delivery", checkoutHandler.SetDelivery)
				r.Put("/{checkoutID}/payment-method", checkoutHandler.SetPaymentMethod)
				r.Post("/{checkoutID}/pay", checkoutHandler.Pay)
				r.Post("/{checkoutID}/complete", checkoutHandler.Complete)
				r.Post("/{checkoutID}/close", checkoutHandler.Close)
				r.Post("/{checkoutID}/cancel", checkoutHandler.Cancel)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", orderHandler.ListMine)
				r.Get("/{orderID}", orderHandler.Get)
			})

			r.Route("/farmer", func(r chi.Router) {
				r.Use(RequireRole(domain.RoleFarmer, domain.RoleAdmin))

				r.Post("/products", catalogHandler.CreateProduct)
				r.Put("/products/{productID}", catalogHandler.UpdateProduct)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(RequireRole(domain.RoleAdmin))

				r.Get("/orders", orderHandler.ListAll)
				r.Put("/orders/{orderID}/status", orderHandler.UpdateStatus)
				r.Get("/analytics", orderHandler.Analytics)
			})
		})
	})

	return r
}
