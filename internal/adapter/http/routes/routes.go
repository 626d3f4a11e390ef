package routes

import (
	"context"
	"log"
	"time"

	"luthierflow/internal/adapter/http/handlers"
	"luthierflow/internal/adapter/persistence/cache"
	"luthierflow/internal/adapter/persistence/repository"
	"luthierflow/internal/config"
	"luthierflow/internal/infrastructure/database"
	"luthierflow/internal/infrastructure/extraction"
	"luthierflow/internal/infrastructure/payments"
	"luthierflow/internal/usecase"
	"luthierflow/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run will start the server
func Run(cfg config.Config) {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	err := router.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ddb := database.ConnectDynamoDB(cfg)
	if err := database.EnsureTables(ctx, ddb, cfg); err != nil {
		log.Printf("[startup] ensure tables failed; remote store may be unavailable err=%v", err)
	}

	cacheDB, err := database.ConnectOrderCache(cfg)
	if err != nil {
		log.Fatalf("Failed to open local order cache: %v", err)
	}
	orderCache, err := cache.NewOrderSnapshotCache(cacheDB)
	if err != nil {
		log.Fatalf("Failed to migrate local order cache: %v", err)
	}

	orderRepo := repository.NewOrderDynamoRepository(ddb, cfg.OrdersTable)
	settingsRepo := repository.NewSettingsDynamoRepository(ddb, cfg.SettingsTable)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	var orderExtractor interfaces.IOrderExtractor
	gemini, err := extraction.NewGeminiExtractor(ctx, cfg)
	if err != nil {
		log.Printf("Gemini extractor not configured: %v", err)
	} else {
		orderExtractor = gemini
	}

	orderUseCase := usecase.NewOrderUseCase(orderRepo, orderCache)
	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo)
	extractionUseCase := usecase.NewExtractionUseCase(orderExtractor, orderUseCase)
	depositUseCase := usecase.NewDepositUseCase(orderRepo, orderUseCase, paymentGateway, usecase.DepositOptionsFromConfig(cfg))

	orderHandler := handlers.NewOrderHandler(orderUseCase, settingsUseCase)
	settingsHandler := handlers.NewSettingsHandler(settingsUseCase)
	extractionHandler := handlers.NewExtractionHandler(extractionUseCase, settingsUseCase)
	depositHandler := handlers.NewDepositHandler(depositUseCase, settingsUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, orderHandler, depositHandler, extractionHandler)
	addSettingsRoutes(v1, settingsHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
