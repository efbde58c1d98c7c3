package routes

import (
	_ "atelier_couture/docs" // This will be auto-generated
	"atelier_couture/internal/adapter/http/handlers"
	repository2 "atelier_couture/internal/adapter/persistence/repository"
	"atelier_couture/internal/infrastructure/cache"
	"atelier_couture/internal/infrastructure/database"
	"atelier_couture/internal/infrastructure/payments"
	"atelier_couture/internal/usecase"
	"atelier_couture/internal/usecase/interfaces"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to startup the application")
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	orderRepo := repository2.NewOrderDynamoRepository(ddb)

	var statsCache interfaces.IStatsCache
	redisCache, err := cache.NewStatsCache(os.Getenv("REDIS_URL"))
	if err != nil {
		log.Warn().Err(err).Msg("stats cache not configured")
	} else if redisCache != nil {
		statsCache = redisCache
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Warn().Err(err).Msg("Mercado Pago gateway not configured")
	} else {
		paymentGateway = mpGateway
	}

	orderUseCase := usecase.NewOrderUseCase(orderRepo, statsCache)
	reportUseCase := usecase.NewReportUseCase(orderRepo, statsCache)
	paymentUseCase := usecase.NewPaymentUseCase(orderRepo, paymentGateway, statsCache)

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	statusHandler := handlers.NewStatusHandler()

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, orderHandler, paymentHandler)
	addReportRoutes(v1, reportHandler, statusHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Msg("Recovered from panic")
		c.AbortWithStatus(500)
	}))
}
