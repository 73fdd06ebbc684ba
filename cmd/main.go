package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/random"

	"chenu2/internal/caching"
	"chenu2/internal/handlers"
	"chenu2/internal/jobs/background"
	"chenu2/internal/middleware"
	"chenu2/internal/pricing"
	"chenu2/internal/repositories"
	"chenu2/internal/services"
	"chenu2/pkg/database"
)

const version = "1.0.0"

func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := database.NewPool(databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// JWT configuration
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = random.String(32) // Generate random secret for development
		log.Printf("WARNING: Using generated JWT secret; admin sessions will not survive restarts")
	}

	// Redis configuration
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisDB := 0
	if redisDBStr := os.Getenv("REDIS_DB"); redisDBStr != "" {
		if db, err := strconv.Atoi(redisDBStr); err == nil {
			redisDB = db
		}
	}

	// MinIO configuration (estimate PDF storage)
	minioEndpoint := os.Getenv("MINIO_ENDPOINT")
	if minioEndpoint == "" {
		minioEndpoint = "localhost:9000"
	}
	minioAccessKey := os.Getenv("MINIO_ACCESS_KEY")
	if minioAccessKey == "" {
		minioAccessKey = "minioadmin"
	}
	minioSecretKey := os.Getenv("MINIO_SECRET_KEY")
	if minioSecretKey == "" {
		minioSecretKey = "minioadmin"
	}
	useSSL := os.Getenv("MINIO_USE_SSL") == "true"

	minioSvc, err := services.NewMinioService(minioEndpoint, minioAccessKey, minioSecretKey, useSSL)
	if err != nil {
		log.Fatalf("Failed to initialize MinIO service: %v", err)
	}

	// Repositories
	companyRepo := repositories.NewCompanyRepository(pool)
	categoryRepo := repositories.NewCategoryRepository(pool)
	productRepo := repositories.NewProductRepository(pool, categoryRepo)
	optionRepo := repositories.NewOptionRepository(pool)
	variantRepo := repositories.NewVariantRepository(pool)
	matrixRepo := repositories.NewPricingMatrixRepository(pool)
	colorRepo := repositories.NewColorRepository(pool)
	userRepo := repositories.NewUserRepository(pool)
	tokenRepo := repositories.NewTokenRepository(pool)

	// Cache
	cacheSvc := caching.NewRedisCacheService(redisAddr, redisPassword, redisDB)

	// Pricing engine
	selector := pricing.NewSelector(matrixRepo, variantRepo)
	optionAggregator := pricing.NewOptionAggregator(optionRepo)

	// Services
	estimationSvc := services.NewEstimationService(productRepo, selector, optionAggregator, cacheSvc)
	catalogSvc := services.NewCatalogService(categoryRepo, productRepo, optionRepo, variantRepo, colorRepo, cacheSvc)
	pdfSvc := services.NewEstimatePdfService(minioSvc, os.Getenv("ESTIMATE_FONT_PATH"))
	authSvc := services.NewAuthService(userRepo, tokenRepo, jwtSecret)

	// First-run admin provisioning
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail != "" && adminPassword != "" {
		if err := authSvc.EnsureInitialAdmin(context.Background(), adminEmail, adminPassword); err != nil {
			log.Printf("WARNING: initial admin provisioning failed: %v", err)
		}
	}

	// Handlers
	estimateHandlers := handlers.NewEstimateHandlers(estimationSvc, pdfSvc)
	catalogHandlers := handlers.NewCatalogHandlers(catalogSvc)
	adminHandlers := handlers.NewAdminHandlers(companyRepo, categoryRepo, productRepo, variantRepo, optionRepo, matrixRepo, colorRepo, cacheSvc)
	authHandlers := handlers.NewAuthHandlers(authSvc, userRepo)
	healthHandlers := handlers.NewHealthHandlers(pool, cacheSvc)

	// Background jobs
	scheduler, err := background.NewJobScheduler(tokenRepo, companyRepo, catalogSvc)
	if err != nil {
		log.Fatalf("Failed to create job scheduler: %v", err)
	}
	scheduler.Start()
	defer func() {
		if err := scheduler.Stop(); err != nil {
			log.Printf("WARNING: scheduler shutdown failed: %v", err)
		}
	}()

	e := echo.New()

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	// Health endpoints (no auth required)
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)

	// Public quote API
	api := e.Group("/api")
	api.POST("/estimates/calculate", estimateHandlers.Calculate)
	api.GET("/estimates/ping", estimateHandlers.Ping)
	api.POST("/estimates/pdf", estimateHandlers.GeneratePdf)
	api.GET("/categories", catalogHandlers.ListMainCategories)
	api.GET("/subcategories", catalogHandlers.ListSubCategories)
	api.GET("/products", catalogHandlers.ListProducts)
	api.GET("/options", catalogHandlers.ListOptions)
	api.GET("/variants", catalogHandlers.ListVariants)
	api.GET("/colors", catalogHandlers.ListColors)

	// Auth routes
	auth := api.Group("/auth")
	auth.POST("/login", authHandlers.Login)
	auth.POST("/refresh", authHandlers.Refresh)

	jwtConfig := echojwt.Config{
		SigningKey: []byte(jwtSecret),
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
		},
	}

	me := api.Group("/auth")
	me.Use(echojwt.WithConfig(jwtConfig))
	me.Use(middleware.ExtractClaims())
	me.GET("/me", authHandlers.Me)

	// Admin routes (require JWT and the admin role)
	admin := api.Group("/admin")
	admin.Use(echojwt.WithConfig(jwtConfig))
	admin.Use(middleware.ExtractClaims())
	admin.Use(middleware.RequireAdmin())

	admin.GET("/companies", adminHandlers.ListCompanies)
	admin.POST("/companies", adminHandlers.CreateCompany)
	admin.POST("/categories", adminHandlers.CreateCategory)
	admin.POST("/products", adminHandlers.CreateProduct)
	admin.GET("/products/search", adminHandlers.SearchProducts)
	admin.PUT("/products/:id", adminHandlers.UpdateProduct)
	admin.DELETE("/products/:id", adminHandlers.DeleteProduct)
	admin.PUT("/products/variants/:id", adminHandlers.UpdateVariant)
	admin.DELETE("/products/variants/:id", adminHandlers.DeleteVariant)
	admin.POST("/options", adminHandlers.CreateOption)
	admin.POST("/pricing-matrix", adminHandlers.CreatePricingMatrixRow)
	admin.POST("/colors", adminHandlers.CreateColor)

	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		log.Fatalf("Invalid port %s: %v", portStr, err)
	}

	log.Printf("Chenu estimate server v%s starting on port %d", version, port)
	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", port)))
}
