package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	_ "trustify_claims/docs" // This will be auto-generated
	"trustify_claims/internal/adapter/http/handlers"
	"trustify_claims/internal/adapter/http/middleware"
	repository2 "trustify_claims/internal/adapter/persistence/repository"
	"trustify_claims/internal/infrastructure/database"
	"trustify_claims/internal/infrastructure/messaging"
	"trustify_claims/internal/infrastructure/policy"
	"trustify_claims/internal/infrastructure/push"
	"trustify_claims/internal/usecase"
	"trustify_claims/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
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
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	rdb := messaging.ConnectRedis()

	claimRepo := repository2.NewClaimDynamoRepository(ddb)
	notificationRepo := repository2.NewNotificationDynamoRepository(ddb)

	publisher := messaging.NewClaimEventPublisher(rdb)

	var policies interfaces.IPolicyClient
	policyClient, err := policy.NewHTTPClient(os.Getenv("POLICY_SERVICE_URL"))
	if err != nil {
		log.Printf("Policy service client not configured: %v", err)
	} else {
		policies = policyClient
	}

	claimUseCase := usecase.NewClaimUseCase(claimRepo, publisher, policies)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo)

	hub := push.NewHub()

	pipeline := usecase.NewClaimEventPipeline(notificationRepo, hub)
	consumer := messaging.NewClaimEventConsumer(rdb, pipeline)
	go func() {
		if err := consumer.Run(context.Background()); err != nil {
			log.Printf("Claim event consumer stopped: %v", err)
		}
	}()

	claimHandler := handlers.NewClaimHandler(claimUseCase)
	adminClaimHandler := handlers.NewAdminClaimHandler(claimUseCase)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase)
	pushHandler := handlers.NewPushHandler(hub)

	verifier := middleware.NewTokenVerifierFromEnv()

	addPingRoutes(&router.RouterGroup)

	api := router.Group("/api")
	api.Use(middleware.Authenticate(verifier))
	addClaimRoutes(api, claimHandler, adminClaimHandler)
	addNotificationRoutes(api, notificationHandler)

	ws := router.Group("/ws")
	ws.Use(middleware.Authenticate(verifier))
	ws.GET("/notifications", pushHandler.StreamNotifications)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
