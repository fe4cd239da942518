package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zoramarket/zora-backend/api/controllers"
	"github.com/zoramarket/zora-backend/api/middleware"
	addresssvc "github.com/zoramarket/zora-backend/internal/address"
	authsvc "github.com/zoramarket/zora-backend/internal/auth"
	cartsvc "github.com/zoramarket/zora-backend/internal/cart"
	contentsvc "github.com/zoramarket/zora-backend/internal/content"
	ordersvc "github.com/zoramarket/zora-backend/internal/orders"
	paymentsvc "github.com/zoramarket/zora-backend/internal/payments"
	productsvc "github.com/zoramarket/zora-backend/internal/products"
	reviewsvc "github.com/zoramarket/zora-backend/internal/reviews"
	vendorsvc "github.com/zoramarket/zora-backend/internal/vendors"
	"github.com/zoramarket/zora-backend/pkg/config"
	"github.com/zoramarket/zora-backend/pkg/db"
	"github.com/zoramarket/zora-backend/pkg/logger"
	pkgredis "github.com/zoramarket/zora-backend/pkg/redis"
)

// Services groups everything the router mounts. All fields are required.
type Services struct {
	Auth     authsvc.Service
	Vendors  vendorsvc.Service
	Products productsvc.Service
	Cart     cartsvc.Service
	Orders   ordersvc.Service
	Reviews  reviewsvc.Service
	Address  addresssvc.Service
	Payments paymentsvc.Service
	Content  contentsvc.Service
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *pkgredis.Client,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	exchangePolicy := middleware.NewAuthRateLimitPolicy(
		"exchange",
		cfg.AuthRateLimit.ExchangeWindow,
		cfg.AuthRateLimit.ExchangeIPLimit,
		cfg.AuthRateLimit.ExchangeKeyLimit,
	)

	r.Get("/", controllers.Root())
	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbP, redisClient, logg))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Session(svcs.Auth, cfg.Auth.CookieName, logg))

		// Public catalog and discovery surface.
		r.Get("/home", controllers.Home(svcs.Content, logg))
		r.Get("/regions", controllers.Regions(svcs.Content, logg))
		r.Get("/search", controllers.Search(svcs.Products, logg))

		r.Route("/vendors", func(r chi.Router) {
			r.Get("/", controllers.VendorList(svcs.Vendors, logg))
			r.Get("/{vendorID}", controllers.VendorGet(svcs.Vendors, logg))
			r.Get("/{vendorID}/products", controllers.VendorProducts(svcs.Products, logg))
			r.Get("/{vendorID}/reviews", controllers.VendorReviews(svcs.Reviews, logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductList(svcs.Products, logg))
			r.Get("/popular", controllers.ProductPopular(svcs.Products, logg))
			r.Get("/region/{region}", controllers.ProductsByRegion(svcs.Products, logg))
			r.Get("/{productID}", controllers.ProductGet(svcs.Products, logg))
			r.Get("/{productID}/reviews", controllers.ProductReviews(svcs.Reviews, logg))
		})

		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.AuthRateLimit(exchangePolicy, redisClient, logg)).
				Post("/session", controllers.AuthExchangeSession(svcs.Auth, cfg.Auth, logg))

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth(logg))
				r.Get("/me", controllers.AuthMe(logg))
				r.Put("/profile", controllers.AuthUpdateProfile(svcs.Auth, logg))
				r.Post("/logout", controllers.AuthLogout(svcs.Auth, cfg.Auth, logg))
			})
		})

		// Everything below needs an identity.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(logg))
			r.Use(middleware.Idempotency(redisClient, logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartGet(svcs.Cart, logg))
				r.Post("/add", controllers.CartAddItem(svcs.Cart, logg))
				r.Put("/update", controllers.CartReplace(svcs.Cart, logg))
				r.Delete("/item/{productID}", controllers.CartRemoveItem(svcs.Cart, logg))
				r.Delete("/clear", controllers.CartClear(svcs.Cart, logg))
			})

			r.Route("/orders", func(r chi.Router) {
				r.Post("/", controllers.OrderCreate(svcs.Orders, logg))
				r.Get("/", controllers.OrderList(svcs.Orders, logg))
				r.Get("/{orderID}", controllers.OrderGet(svcs.Orders, logg))
				r.Post("/{orderID}/cancel", controllers.OrderCancel(svcs.Orders, logg))
			})

			r.Route("/payments", func(r chi.Router) {
				r.Post("/create-intent", controllers.PaymentCreateIntent(svcs.Payments, logg))
				r.Post("/confirm", controllers.PaymentConfirm(svcs.Payments, logg))
				r.Get("/config", controllers.PaymentConfig(svcs.Payments, logg))
			})

			r.Route("/addresses", func(r chi.Router) {
				r.Get("/", controllers.AddressList(svcs.Address, logg))
				r.Post("/", controllers.AddressCreate(svcs.Address, logg))
				r.Put("/{addressID}", controllers.AddressUpdate(svcs.Address, logg))
				r.Delete("/{addressID}", controllers.AddressDelete(svcs.Address, logg))
			})

			r.Post("/reviews", controllers.ReviewCreate(svcs.Reviews, logg))
		})
	})

	return r
}
