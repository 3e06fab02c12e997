package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dcastano/modaluxe-backend/api/controllers"
	"github.com/dcastano/modaluxe-backend/api/middleware"
	authsvc "github.com/dcastano/modaluxe-backend/internal/auth"
	"github.com/dcastano/modaluxe-backend/internal/catalog"
	"github.com/dcastano/modaluxe-backend/internal/orders"
	"github.com/dcastano/modaluxe-backend/internal/payments"
	"github.com/dcastano/modaluxe-backend/internal/reviews"
	"github.com/dcastano/modaluxe-backend/internal/wishlist"
	"github.com/dcastano/modaluxe-backend/pkg/config"
	"github.com/dcastano/modaluxe-backend/pkg/logger"
	"github.com/dcastano/modaluxe-backend/pkg/metrics"
	"github.com/dcastano/modaluxe-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbPinger controllers.Pinger,
	redisClient *redis.Client,
	httpMetrics *metrics.HTTPMetrics,
	promRegistry *prometheus.Registry,
	authService authsvc.Service,
	catalogService catalog.Service,
	orderService orders.Service,
	reviewService reviews.Service,
	paymentService payments.Service,
	wishlistService wishlist.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	loginLimit := passthrough
	registerLimit := passthrough
	if redisClient != nil {
		loginPolicy := middleware.NewAuthRateLimitPolicy(
			"login",
			cfg.AuthRateLimit.LoginWindow,
			cfg.AuthRateLimit.LoginIPLimit,
			cfg.AuthRateLimit.LoginEmailLimit,
		)
		registerPolicy := middleware.NewAuthRateLimitPolicy(
			"register",
			cfg.AuthRateLimit.RegisterWindow,
			cfg.AuthRateLimit.RegisterIPLimit,
			cfg.AuthRateLimit.RegisterEmailLimit,
		)
		loginLimit = middleware.AuthRateLimit(loginPolicy, redisClient, logg)
		registerLimit = middleware.AuthRateLimit(registerPolicy, redisClient, logg)
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, map[string]controllers.Pinger{
			"database": dbPinger,
			"redis":    redisPinger(redisClient),
		}))
	})

	if promRegistry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductList(catalogService, logg))
			r.Get("/search", controllers.ProductSearch(catalogService, logg))
			r.Get("/category/{category}", controllers.ProductsByCategory(catalogService, logg))
			r.Get("/{productId}", controllers.ProductGet(catalogService, logg))
			r.Get("/{productId}/details", controllers.ProductDetails(catalogService, logg))
		})

		r.Post("/orders", controllers.OrderCreate(orderService, logg))
		r.Post("/orders/{orderId}/pay", controllers.OrderPay(orderService, logg))

		r.Post("/reviews", controllers.ReviewCreate(reviewService, logg))
		r.Post("/pay", controllers.PaymentIntentCreate(paymentService, logg))

		r.With(registerLimit).Post("/register", controllers.Register(authService, logg))
		r.With(loginLimit).Post("/login", controllers.Login(authService, logg))

		r.With(middleware.Auth(cfg.JWT, logg)).Get("/me", controllers.Me(authService, logg))

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", controllers.WishlistGet(wishlistService, logg))
			r.Get("/check", controllers.WishlistCheck(wishlistService, logg))
			r.Post("/add", controllers.WishlistAdd(wishlistService, logg))
			r.Post("/remove", controllers.WishlistRemove(wishlistService, logg))
		})
	})

	return r
}

func passthrough(next http.Handler) http.Handler {
	return next
}

// redisPinger keeps a disabled redis out of the readiness checks without
// handing a typed nil to the health controller.
func redisPinger(client *redis.Client) controllers.Pinger {
	if client == nil {
		return nil
	}
	return client
}
