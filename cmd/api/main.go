package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/campushire/campushire/internal/config"
	"github.com/campushire/campushire/internal/database"
	"github.com/campushire/campushire/internal/handlers"
	"github.com/campushire/campushire/internal/logger"
	"github.com/campushire/campushire/internal/media"
	"github.com/campushire/campushire/internal/services"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	zlog, err := logger.New(cfg.GinMode)
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer zlog.Sync()

	// 2. Database Connection
	db := database.Connect(cfg.DSN(), zlog)

	// 3. Media pipeline (local store, served under /uploads)
	store, err := media.NewLocalStore(cfg.MediaDir, "/uploads")
	if err != nil {
		zlog.Fatal("Failed to prepare media directory", zap.Error(err))
	}
	mediaService := media.NewService(store, zlog)

	// 4. Initialize Core Services (Dependencies)
	authService := services.NewAuthService(db, cfg.JWTSecret)
	companyService := services.NewCompanyService(db, mediaService)
	jobService := services.NewJobService(db)
	profileService := services.NewProfileService(db, mediaService)
	applicationService := services.NewApplicationService(db, profileService)
	universityService := services.NewUniversityService(db, mediaService)

	// 5. Initialize Handlers
	set := &handlers.Set{
		Auth:         handlers.NewAuthHandler(authService, zlog),
		Company:      handlers.NewCompanyHandler(companyService, zlog),
		Jobs:         handlers.NewJobHandler(jobService, zlog),
		Applications: handlers.NewApplicationHandler(applicationService, zlog),
		Profile:      handlers.NewProfileHandler(profileService, zlog),
		University:   handlers.NewUniversityHandler(universityService, zlog),
	}

	// 6. Setup Router & CORS
	gin.SetMode(cfg.GinMode)
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 7. Define Routes
	r.Static("/uploads", cfg.MediaDir)
	handlers.RegisterRoutes(r, cfg.JWTSecret, set)

	zlog.Info("Server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("Server failed to start", zap.Error(err))
	}
}
