package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/indocart/pos-payments/internal/api/handler"
	"github.com/indocart/pos-payments/internal/api/middleware"
	"github.com/indocart/pos-payments/internal/core/domain"
	"github.com/indocart/pos-payments/internal/core/ports"
	"github.com/indocart/pos-payments/internal/core/service"
	"github.com/indocart/pos-payments/internal/infrastructure/config"
	mongodb "github.com/indocart/pos-payments/internal/infrastructure/db/mongo"
	redisdb "github.com/indocart/pos-payments/internal/infrastructure/db/redis"
	"github.com/indocart/pos-payments/internal/infrastructure/gateway"
	"github.com/indocart/pos-payments/internal/infrastructure/identity"
	"github.com/indocart/pos-payments/internal/infrastructure/store/memory"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("pos_payments"))
	e.Use(middleware.RateLimit(middleware.TierGlobal, cfg.Limits.Global))

	// --- Dependencies ---
	roleStore := redisdb.NewRoleStore(rdb)
	verifier := identity.NewJWTVerifier(cfg.JWTSecret)

	var sessions ports.SessionStore
	if cfg.SessionStore == "redis" {
		sessions = redisdb.NewSessionStore(rdb)
	} else {
		sessions = memory.NewSessionStore()
	}

	userRepo := mongodb.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, roleStore, cfg.JWTSecret, 24*time.Hour)
	authHandler := handler.NewAuthHandler(authService)

	paymentService := service.NewPaymentService(gateway.NewSnapGateway(cfg.Midtrans.ServerKey, cfg.Midtrans.Production), log)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	coordinator := service.NewSessionCoordinator(sessions, log)
	qrHandler := handler.NewQRHandler(coordinator, cfg.FrontendBaseURL)

	productHandler := handler.NewProductHandler(service.NewProductService(mongodb.NewProductRepository(db), log))
	saleHandler := handler.NewSaleHandler(service.NewSaleService(mongodb.NewSaleRepository(db), log))

	// Per-route chain runs in order: authentication, then the sensitive
	// throttle tier (keyed by identity once authenticated), then the role
	// gate. The global tier above already throttled by IP.
	authn := middleware.Authenticate(verifier)
	sensitive := middleware.RateLimit(middleware.TierSensitive, cfg.Limits.Sensitive)
	managers := middleware.RequireRole(roleStore, domain.RoleOwner, domain.RoleAdmin)
	staff := middleware.RequireRole(roleStore, domain.RoleOwner, domain.RoleAdmin, domain.RoleCashier)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	v1 := e.Group("/api/v1")

	// --- Charge creation ---
	v1.POST("/charges", paymentHandler.CreateCharge, authn, sensitive, staff)
	v1.POST("/snap/token", paymentHandler.LegacySnapToken, authn, sensitive, staff)

	// --- Scan-to-pay handoff (no operator credential: the phone belongs to
	// the paying customer) ---
	v1.POST("/qr/sessions", qrHandler.RegisterSession)
	v1.POST("/qr/status", qrHandler.ReportStatus)
	v1.GET("/qr/status/:token", qrHandler.PollStatus)
	e.GET("/payments/finish", qrHandler.Finish)

	// --- Catalog ---
	v1.GET("/products", productHandler.List)
	v1.GET("/products/:id", productHandler.Get)
	v1.POST("/products", productHandler.Create, authn, sensitive, managers)
	v1.PUT("/products/:id", productHandler.Update, authn, sensitive, managers)
	v1.DELETE("/products/:id", productHandler.Delete, authn, sensitive, managers)

	// --- Sales ledger ---
	v1.POST("/sales", saleHandler.Record, authn, sensitive, staff)
	v1.GET("/sales", saleHandler.List, authn, managers)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
