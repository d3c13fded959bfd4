package routes

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	_ "roads_authority/docs"
	"roads_authority/internal/adapter/http/dto/request"
	"roads_authority/internal/adapter/http/handlers"
	"roads_authority/internal/adapter/http/middleware"
	"roads_authority/internal/adapter/persistence/repository"
	"roads_authority/internal/config"
	"roads_authority/internal/infrastructure/cache"
	"roads_authority/internal/infrastructure/database"
	"roads_authority/internal/infrastructure/payments"
	"roads_authority/internal/infrastructure/push"
	"roads_authority/internal/infrastructure/storage"
	"roads_authority/internal/usecase"
	"roads_authority/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// handlerSet groups the HTTP handlers mounted under /v1.
type handlerSet struct {
	applications  *handlers.PLNApplicationHandler
	payments      *handlers.PLNPaymentHandler
	offices       *handlers.OfficeHandler
	documents     *handlers.DocumentHandler
	reports       *handlers.DamageReportHandler
	notifications *handlers.NotificationHandler
}

// Run will start the server
func Run(cfg *config.Config) {
	ctx := context.Background()

	if err := request.RegisterValidators(); err != nil {
		log.Fatalf("Failed to register validators: %v", err)
	}
	if err := configureProxies(router, cfg.TrustedProxies); err != nil {
		log.Fatalf("Invalid TRUSTED_PROXIES: %v", err)
	}
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	h, applications := getHandlers(ctx, cfg)
	trackLimit, referenceLimiter := trackingLimiters(ctx, cfg)
	h.applications.WithReferenceLimiter(referenceLimiter)
	h.notifications.WithReferenceLimiter(referenceLimiter)
	registerRoutes(router, h, middleware.RequireAdmin(cfg.JWTSecret), trackLimit)

	go runExpirySweeper(ctx, applications, cfg.ExpirySweepInterval)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getHandlers(ctx context.Context, cfg *config.Config) (handlerSet, *usecase.PLNApplicationUseCase) {
	ddb := database.ConnectDynamoDB(ctx)

	applicationRepo := repository.NewPLNApplicationDynamoRepository(ddb)
	paymentRepo := repository.NewPLNPaymentDynamoRepository(ddb)
	officeRepo := repository.NewOfficeDynamoRepository(ddb)
	documentRepo := repository.NewDocumentDynamoRepository(ddb)
	reportRepo := repository.NewDamageReportDynamoRepository(ddb)
	tokenRepo := repository.NewPushTokenDynamoRepository(ddb)

	var sender interfaces.IPushSender
	if cfg.FirebaseEnabled {
		fcm, err := push.NewFirebaseSender(ctx)
		if err != nil {
			log.Printf("[push][firebase] sender not configured: %v", err)
		} else {
			sender = fcm
		}
	}
	notificationUseCase := usecase.NewNotificationUseCase(tokenRepo, applicationRepo, sender)

	applicationUseCase := usecase.NewPLNApplicationUseCase(applicationRepo, notificationUseCase, usecase.PLNSettings{
		Fee:             cfg.PLNFee,
		PaymentDeadline: cfg.PaymentDeadline,
	})

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"), usecase.IsPaymentGatewayMockEnabled())
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		gateway = mpGateway
	}
	paymentUseCase := usecase.NewPLNPaymentUseCase(paymentRepo, applicationUseCase, gateway, cfg.PLNFee)

	var presigner interfaces.IFilePresigner
	if cfg.DocumentsBucket != "" {
		awsCfg, err := database.NewAWSConfigFromEnv(ctx)
		if err != nil {
			log.Printf("[storage][s3] aws config failed: %v", err)
		} else if s3Presigner, err := storage.NewS3Presigner(awsCfg, cfg.DocumentsBucket); err != nil {
			log.Printf("[storage][s3] presigner not configured: %v", err)
		} else {
			presigner = s3Presigner
		}
	}

	officeUseCase := usecase.NewOfficeUseCase(officeRepo)
	documentUseCase := usecase.NewDocumentUseCase(documentRepo, presigner, cfg.DownloadURLTTL)
	reportUseCase := usecase.NewDamageReportUseCase(reportRepo, officeUseCase)

	return handlerSet{
		applications:  handlers.NewPLNApplicationHandler(applicationUseCase),
		payments:      handlers.NewPLNPaymentHandler(paymentUseCase),
		offices:       handlers.NewOfficeHandler(officeUseCase),
		documents:     handlers.NewDocumentHandler(documentUseCase),
		reports:       handlers.NewDamageReportHandler(reportUseCase),
		notifications: handlers.NewNotificationHandler(notificationUseCase),
	}, applicationUseCase
}

// trackingLimiters returns the per-client middleware and the per-reference
// limiter for endpoints that check a tracking secret. Quotas are shared across instances through
// Redis when REDIS_ADDR is reachable, and kept per process otherwise.
func trackingLimiters(ctx context.Context, cfg *config.Config) (gin.HandlerFunc, middleware.Limiter) {
	client := cache.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword)
	newLimiter := func(prefix string, limit int, window time.Duration) middleware.Limiter {
		if client != nil {
			return middleware.NewRedisLimiter(client, prefix, limit, window)
		}
		return middleware.NewMemoryLimiter(limit, window)
	}
	byClient := newLimiter("ratelimit:pln-track", cfg.TrackingRateLimit, cfg.TrackingRateWindow)
	byReference := newLimiter("ratelimit:pln-track-ref", cfg.TrackingReferenceLimit, cfg.TrackingReferenceWindow)
	return middleware.RateLimit(byClient, nil), byReference
}

// configureProxies sets which peers may supply X-Forwarded-For. With none,
// ClientIP is the socket address.
func configureProxies(r *gin.Engine, proxies []string) error {
	return r.SetTrustedProxies(proxies)
}

func registerRoutes(r *gin.Engine, h handlerSet, adminAuth, trackLimit gin.HandlerFunc) {
	// Rotas publicas
	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addPLNRoutes(v1, h.applications, h.payments, trackLimit)
	addOfficeRoutes(v1, h.offices)
	addDocumentRoutes(v1, h.documents)
	addDamageReportRoutes(v1, h.reports)
	addNotificationRoutes(v1, h.notifications, trackLimit)

	// Rotas administrativas
	admin := v1.Group(PathAdmin, adminAuth)
	addAdminPLNRoutes(admin, h.applications, h.payments)
	addAdminOfficeRoutes(admin, h.offices)
	addAdminDocumentRoutes(admin, h.documents)
	addAdminDamageReportRoutes(admin, h.reports)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
