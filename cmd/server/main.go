package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"akramfit/coaching-app/internal/api"
	"akramfit/coaching-app/internal/config"
	"akramfit/coaching-app/internal/repository/mongo"
	"akramfit/coaching-app/internal/service"
	"akramfit/coaching-app/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	log.Println("Starting Coaching App Server...")

	// Local development keeps its settings in a .env file; in deployment the
	// variables come from the environment and the file is simply absent.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	log.Println("Ensuring database indexes...")
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureAdminIndexes(ctx, appDB.Collection("admins"))
		mongo.EnsureClientIndexes(ctx, appDB.Collection("clients"))
		mongo.EnsureOrderIndexes(ctx, appDB.Collection("orders"))
		mongo.EnsurePricingIndexes(ctx, appDB.Collection("pricing"))
		mongo.EnsurePromoIndexes(ctx, appDB.Collection("promoCodes"))
		mongo.EnsureGalleryIndexes(ctx, appDB.Collection("gallery"))
		mongo.EnsureAchievementIndexes(ctx, appDB.Collection("achievements"))
		mongo.EnsureLedgerIndexes(ctx, appDB.Collection(mongo.IncomeCollectionName))
		mongo.EnsureLedgerIndexes(ctx, appDB.Collection(mongo.ExpenseCollectionName))
		mongo.EnsureProgressLogIndexes(ctx, appDB.Collection("progressLogs"))
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Storage ---
	log.Println("Initializing file storage service...")
	fileStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
	}

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	adminRepo := mongo.NewMongoAdminRepository(appDB)
	clientRepo := mongo.NewMongoClientRepository(appDB)
	orderRepo := mongo.NewMongoOrderRepository(appDB)
	planRepo := mongo.NewMongoPricingPlanRepository(appDB)
	promoRepo := mongo.NewMongoPromoCodeRepository(appDB)
	galleryRepo := mongo.NewMongoGalleryRepository(appDB)
	achievementRepo := mongo.NewMongoAchievementRepository(appDB)
	incomeRepo := mongo.NewMongoTransactionRepository(appDB, mongo.IncomeCollectionName)
	expenseRepo := mongo.NewMongoTransactionRepository(appDB, mongo.ExpenseCollectionName)
	scheduleRepo := mongo.NewMongoScheduleRepository(appDB)
	progressLogRepo := mongo.NewMongoProgressLogRepository(appDB)
	txRunner := mongo.NewTxRunner(dbClient)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	authService := service.NewAuthService(adminRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	orderService := service.NewOrderService(orderRepo, clientRepo, planRepo, promoRepo, incomeRepo, txRunner)
	membershipService := service.NewMembershipService(clientRepo, scheduleRepo)
	clientService := service.NewClientService(clientRepo, progressLogRepo)
	catalogService := service.NewCatalogService(planRepo, promoRepo, galleryRepo, achievementRepo)
	financeService := service.NewFinanceService(incomeRepo, expenseRepo)
	scheduleService := service.NewScheduleService(scheduleRepo)
	mediaService := service.NewMediaService(fileStorage)

	// --- Initialize Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default()

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(
		router,
		cfg.JWT.Secret,
		authService,
		orderService,
		membershipService,
		clientService,
		catalogService,
		financeService,
		scheduleService,
		mediaService,
	)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
