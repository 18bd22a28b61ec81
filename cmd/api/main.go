package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/bereketsol/inkwell/internal/domain/contract"
	handlerHttp "github.com/bereketsol/inkwell/internal/handler/http"
	redisclient "github.com/bereketsol/inkwell/internal/infrastructure/cache"
	"github.com/bereketsol/inkwell/internal/infrastructure/config"
	database "github.com/bereketsol/inkwell/internal/infrastructure/database"
	"github.com/bereketsol/inkwell/internal/infrastructure/jwt"
	"github.com/bereketsol/inkwell/internal/infrastructure/logger"
	passwordservice "github.com/bereketsol/inkwell/internal/infrastructure/password_service"
	"github.com/bereketsol/inkwell/internal/infrastructure/repository/mongodb"
	"github.com/bereketsol/inkwell/internal/infrastructure/store"
	"github.com/bereketsol/inkwell/internal/infrastructure/uuidgen"
	"github.com/bereketsol/inkwell/internal/infrastructure/validator"
	"github.com/bereketsol/inkwell/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	dbName := os.Getenv("MONGODB_DB_NAME")
	if dbName == "" {
		log.Fatal("MONGODB_DB_NAME environment variable not set")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	// Initialize Gin router
	router := gin.Default()

	// Dependency Injection: Repositories
	db := mongoClient.Client.Database(dbName)
	userRepo := mongodb.NewUserRepository(db)
	blogRepo := mongodb.NewBlogRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}
	appConfig := config.NewConfig()
	jwtManager := jwt.NewJWTManager(jwtSecret, appConfig.GetAccessTokenExpiry(), appConfig.GetRefreshTokenExpiry())
	tokenService := jwt.NewTokenService(jwtManager)
	appLogger := logger.NewStdLogger()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()

	// Optional Dependency Injection: Redis cache. Without REDIS_URL the
	// store stays nil and the app runs uncached.
	var cacheStore contract.ICacheStore
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		if rdb := redisclient.NewRedisFromURL(context.Background(), redisURL); rdb != nil {
			defer redisclient.Close(rdb)
			cacheStore = store.NewRedisCacheStore(rdb, appConfig.GetCacheOpTimeout())
		}
	} else {
		appLogger.Warnf("REDIS_URL not set, caching disabled")
	}
	invalidator := usecase.NewCacheInvalidator(cacheStore, appLogger)

	// Dependency Injection: Usecases
	userUsecase := usecase.NewUserUsecase(userRepo, hasher, tokenService, appValidator, uuidGenerator, appLogger)
	blogUsecase := usecase.NewBlogUsecase(blogRepo, commentRepo, userRepo, uuidGenerator, invalidator, appLogger)
	commentUsecase := usecase.NewCommentUsecase(commentRepo, blogRepo, userRepo, uuidGenerator, invalidator)
	reactionUsecase := usecase.NewReactionUsecase(blogRepo, commentRepo, invalidator, appLogger)

	// Setup API routes
	appRouter := handlerHttp.NewRouter(
		userUsecase, blogUsecase, commentUsecase, reactionUsecase,
		tokenService, cacheStore, appLogger, appConfig,
	)
	appRouter.SetupRoutes(router)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
