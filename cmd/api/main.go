package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/zoramarket/zora-backend/api/routes"
	"github.com/zoramarket/zora-backend/internal/address"
	"github.com/zoramarket/zora-backend/internal/auth"
	"github.com/zoramarket/zora-backend/internal/cart"
	"github.com/zoramarket/zora-backend/internal/content"
	"github.com/zoramarket/zora-backend/internal/orders"
	"github.com/zoramarket/zora-backend/internal/payments"
	"github.com/zoramarket/zora-backend/internal/products"
	"github.com/zoramarket/zora-backend/internal/reviews"
	"github.com/zoramarket/zora-backend/internal/users"
	"github.com/zoramarket/zora-backend/internal/vendors"
	"github.com/zoramarket/zora-backend/pkg/config"
	"github.com/zoramarket/zora-backend/pkg/db"
	"github.com/zoramarket/zora-backend/pkg/logger"
	"github.com/zoramarket/zora-backend/pkg/migrate"
	pkgredis "github.com/zoramarket/zora-backend/pkg/redis"
	pkgstripe "github.com/zoramarket/zora-backend/pkg/stripe"
)

const shutdownGrace = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}
	if err := content.MaybeSeedDev(context.Background(), cfg, dbClient, logg); err != nil {
		logg.Error(context.Background(), "failed to seed dev catalog", err)
		os.Exit(1)
	}

	redisClient, err := pkgredis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	stripeClient, err := pkgstripe.NewClient(context.Background(), cfg.Stripe, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap stripe", err)
		os.Exit(1)
	}

	svcs, err := buildServices(cfg, logg, dbClient, stripeClient)
	if err != nil {
		logg.Error(context.Background(), "failed to wire services", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:              addr,
		Handler:           routes.NewRouter(cfg, logg, dbClient, redisClient, svcs),
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdownCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-shutdownCtx.Done():
		logg.Info(ctx, "shutdown signal received")
		graceCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := server.Shutdown(graceCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}
}

func buildServices(cfg *config.Config, logg *logger.Logger, dbClient *db.Client, stripeClient *pkgstripe.Client) (routes.Services, error) {
	gdb := dbClient.DB()

	userRepo := users.NewRepository(gdb)
	sessionRepo := auth.NewSessionRepository(gdb)
	vendorRepo := vendors.NewRepository(gdb)
	productRepo := products.NewRepository(gdb)
	cartRepo := cart.NewRepository(gdb)
	orderRepo := orders.NewRepository(gdb)
	reviewRepo := reviews.NewRepository(gdb)
	addressRepo := address.NewRepository(gdb)
	contentRepo := content.NewRepository(gdb)

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:    userRepo,
		SessionRepo: sessionRepo,
		Provider:    auth.NewHTTPProvider(cfg.Auth),
		SessionTTL:  cfg.Auth.SessionTTL,
	})
	if err != nil {
		return routes.Services{}, err
	}

	vendorService, err := vendors.NewService(vendorRepo)
	if err != nil {
		return routes.Services{}, err
	}

	productService, err := products.NewService(products.ServiceParams{
		ProductRepo: productRepo,
		VendorRepo:  vendorRepo,
	})
	if err != nil {
		return routes.Services{}, err
	}

	cartService, err := cart.NewService(cart.ServiceParams{
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
		VendorRepo:  vendorRepo,
	})
	if err != nil {
		return routes.Services{}, err
	}

	orderService, err := orders.NewService(orders.ServiceParams{
		OrderRepo:   orderRepo,
		ProductRepo: productRepo,
		VendorRepo:  vendorRepo,
		CartRepo:    cartRepo,
		Logger:      logg,
	})
	if err != nil {
		return routes.Services{}, err
	}

	reviewService, err := reviews.NewService(reviews.ServiceParams{
		ReviewRepo:   reviewRepo,
		ProductStore: productRepo,
		VendorStore:  vendorRepo,
	})
	if err != nil {
		return routes.Services{}, err
	}

	addressService, err := address.NewService(addressRepo)
	if err != nil {
		return routes.Services{}, err
	}

	gateway, err := payments.NewStripeGateway(stripeClient)
	if err != nil {
		return routes.Services{}, err
	}
	paymentService, err := payments.NewService(payments.ServiceParams{
		Gateway:    gateway,
		OrderStore: orderService,
	})
	if err != nil {
		return routes.Services{}, err
	}

	contentService, err := content.NewService(content.ServiceParams{
		ContentRepo: contentRepo,
		VendorRepo:  vendorRepo,
		ProductRepo: productRepo,
	})
	if err != nil {
		return routes.Services{}, err
	}

	return routes.Services{
		Auth:     authService,
		Vendors:  vendorService,
		Products: productService,
		Cart:     cartService,
		Orders:   orderService,
		Reviews:  reviewService,
		Address:  addressService,
		Payments: paymentService,
		Content:  contentService,
	}, nil
}
