package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/tradecore/backend/internal/application/catalog"
	identityapp "github.com/tradecore/backend/internal/application/identity"
	inventoryapp "github.com/tradecore/backend/internal/application/inventory"
	ledgerapp "github.com/tradecore/backend/internal/application/ledger"
	procurementapp "github.com/tradecore/backend/internal/application/procurement"
	"github.com/tradecore/backend/internal/infrastructure/auth"
	"github.com/tradecore/backend/internal/infrastructure/cache"
	"github.com/tradecore/backend/internal/infrastructure/config"
	"github.com/tradecore/backend/internal/infrastructure/logger"
	"github.com/tradecore/backend/internal/infrastructure/persistence"
	"github.com/tradecore/backend/internal/infrastructure/storage"
	"github.com/tradecore/backend/internal/interfaces/http/handler"
	"github.com/tradecore/backend/internal/interfaces/http/middleware"
	"github.com/tradecore/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting TradeCore backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database connection
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, logger.MapGormLogLevel(cfg.Log.Level))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Token blacklist backed by Redis, with an in-process fallback so a
	// missing Redis does not block startup in development.
	var blacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis)
	if err != nil {
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = redisBlacklist
		log.Info("Redis token blacklist connected")
	}

	// OTP verification throttle follows the same fallback policy
	var throttle procurementapp.VerificationThrottle
	redisThrottle, err := cache.NewRedisVerificationThrottle(cache.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn("Redis unavailable, using in-memory verification throttle", zap.Error(err))
		throttle = cache.NewInMemoryVerificationThrottle()
	} else {
		throttle = redisThrottle
	}

	// Object storage for supplier documents
	var objectStorage procurementapp.ObjectStorageService
	if cfg.Storage.Bucket != "" {
		s3Storage, err := storage.NewS3ObjectStorage(&cfg.Storage)
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		objectStorage = s3Storage
		log.Info("Object storage initialized", zap.String("bucket", cfg.Storage.Bucket))
	} else {
		log.Warn("No storage bucket configured, supplier document URLs are stubbed")
		objectStorage = storage.NewStubObjectStorage()
	}

	// Initialize repositories
	companyRepo := persistence.NewGormCompanyRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	roleRepo := persistence.NewGormRoleRepository(db.DB)
	userRoleRepo := persistence.NewGormUserRoleRepository(db.DB)
	auditLogRepo := persistence.NewGormAuditLogRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	serialRepo := persistence.NewGormProductSerialRepository(db.DB)
	identifierTypeRepo := persistence.NewGormIdentifierTypeRepository(db.DB)
	warehouseRepo := persistence.NewGormWarehouseRepository(db.DB)
	stockQueryRepo := persistence.NewGormStockQueryRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	supplierOTPRepo := persistence.NewGormSupplierOTPRepository(db.DB)
	requisitionRepo := persistence.NewGormRequisitionRepository(db.DB)
	quotationRepo := persistence.NewGormQuotationRepository(db.DB)
	orderRepo := persistence.NewGormPurchaseOrderRepository(db.DB)
	accountRepo := persistence.NewGormAccountRepository(db.DB)
	entryRepo := persistence.NewGormEntryRepository(db.DB)

	// Transaction scopes group the repositories each multi-step operation
	// mutates inside a single database transaction
	inventoryScope := persistence.NewGormInventoryTransactionScope(db.DB)
	procurementScope := persistence.NewGormProcurementTransactionScope(db.DB)
	ledgerScope := persistence.NewGormLedgerTransactionScope(db.DB)

	// Initialize application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, roleRepo, jwtService, blacklist, log)
	userService := identityapp.NewUserService(userRepo, roleRepo, userRoleRepo, log)
	roleService := identityapp.NewRoleService(roleRepo, log)
	auditService := identityapp.NewAuditService(auditLogRepo, log)
	ledgerService := ledgerapp.NewLedgerService(accountRepo, entryRepo, ledgerScope)
	companyService := identityapp.NewCompanyService(companyRepo, userRepo, roleRepo, userRoleRepo, ledgerService, log)
	categoryService := catalogapp.NewCategoryService(categoryRepo, productRepo, identifierTypeRepo, log)
	productService := catalogapp.NewProductService(productRepo, categoryRepo, serialRepo, companyRepo, log)
	warehouseService := inventoryapp.NewWarehouseService(warehouseRepo, log)
	stockService := inventoryapp.NewStockService(warehouseRepo, stockQueryRepo, inventoryScope, log)
	supplierService := procurementapp.NewSupplierService(supplierRepo, supplierOTPRepo, objectStorage, throttle, log)
	requisitionService := procurementapp.NewRequisitionService(requisitionRepo, log)
	quotationService := procurementapp.NewQuotationService(quotationRepo, supplierRepo, requisitionRepo, orderRepo, procurementScope, log)
	orderService := procurementapp.NewOrderService(orderRepo, log)
	receivingService := procurementapp.NewReceivingService(productRepo, categoryRepo, warehouseRepo, procurementScope, log)
	invoiceService := procurementapp.NewInvoiceService(
		persistence.NewGormInvoiceRepository(db.DB), orderRepo,
		persistence.NewGormGoodsReceiptRepository(db.DB), supplierRepo, log)
	paymentService := procurementapp.NewPaymentService(orderRepo, procurementScope, log)

	// Initialize HTTP handlers
	systemHandler := handler.NewSystemHandler(db)
	authHandler := handler.NewAuthHandler(authService, cfg.JWT.RefreshTokenExpiration)
	companyHandler := handler.NewCompanyHandler(companyService)
	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(roleService)
	auditHandler := handler.NewAuditHandler(auditService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	productHandler := handler.NewProductHandler(productService)
	warehouseHandler := handler.NewWarehouseHandler(warehouseService)
	stockHandler := handler.NewStockHandler(stockService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	requisitionHandler := handler.NewRequisitionHandler(requisitionService)
	quotationHandler := handler.NewQuotationHandler(quotationService)
	orderHandler := handler.NewOrderHandler(orderService)
	receiptHandler := handler.NewReceiptHandler(receivingService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	ledgerHandler := handler.NewLedgerHandler(ledgerService)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := router.NewEngine(router.Config{
		Logger:         log,
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		CORS: middleware.CORSConfig{
			AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
			AllowMethods:     cfg.HTTP.CORSAllowMethods,
			AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
			ExposeHeaders:    []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		},
		MaxBodyBytes: cfg.HTTP.MaxBodySize,
		AuditSink: func(ctx context.Context, event middleware.AuditEvent) {
			_ = auditService.Record(ctx, identityapp.RecordActionInput{
				ActorID:   event.ActorID,
				CompanyID: event.CompanyID,
				Action:    event.Action,
				TargetID:  event.TargetID,
				Method:    event.Method,
				Path:      event.Path,
				Details:   event.Details,
			})
		},
	})

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	(&router.SystemRoutes{System: systemHandler}).RegisterOn(engine)

	router.NewRouter(engine).
		Register(&router.IdentityRoutes{
			Auth:    authHandler,
			Company: companyHandler,
			User:    userHandler,
			Role:    roleHandler,
			Audit:   auditHandler,
		}).
		Register(&router.CatalogRoutes{
			Category: categoryHandler,
			Product:  productHandler,
		}).
		Register(&router.InventoryRoutes{
			Warehouse: warehouseHandler,
			Stock:     stockHandler,
		}).
		Register(&router.ProcurementRoutes{
			Supplier:    supplierHandler,
			Requisition: requisitionHandler,
			Quotation:   quotationHandler,
			Order:       orderHandler,
			Receipt:     receiptHandler,
			Invoice:     invoiceHandler,
			Payment:     paymentHandler,
		}).
		Register(&router.LedgerRoutes{
			Ledger: ledgerHandler,
		}).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
