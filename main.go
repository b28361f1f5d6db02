// main.go
package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/TheLastAirbenderAng/payment-calculator/auth"
	"github.com/TheLastAirbenderAng/payment-calculator/handlers"
	"github.com/TheLastAirbenderAng/payment-calculator/repository"
	"github.com/TheLastAirbenderAng/payment-calculator/routes"
	"github.com/TheLastAirbenderAng/payment-calculator/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Initialize New Relic
	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName("Payment Calculator API"),
		newrelic.ConfigLicense(os.Getenv("NEW_RELIC_LICENSE_KEY")),
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize New Relic: %v", err)
	}

	// Initialize database
	if err := repository.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer repository.CloseDB()

	// Session secret
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// Wire repositories and services
	db := repository.GetDB()
	userRepo := repository.NewUserRepository(db)
	entryRepo := repository.NewEntryRepository(db)
	preferenceRepo := repository.NewPreferenceRepository(db)

	authenticator := auth.NewPasswordAuthenticator(userRepo)
	jwtManager := auth.NewJWTManager(jwtSecret, 24*time.Hour)

	calculationService := services.NewCalculationService()
	entryService := services.NewEntryService(entryRepo, calculationService)
	reportService := services.NewReportService()
	exportService := services.NewExportService(reportService)
	excelService := services.NewExcelService(reportService)
	themeService := services.NewThemeService(preferenceRepo, systemPrefersDark)

	handler := handlers.NewHandler(
		authenticator, jwtManager,
		calculationService, entryService, reportService,
		exportService, excelService, themeService,
	)

	// Set up Gin router
	router := gin.Default()

	// Add New Relic middleware
	if app != nil {
		router.Use(nrgin.Middleware(app))
	}

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Change to your frontend URL in production
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Set up routes
	routes.SetupRoutes(router, handler)

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start server
	log.Printf("Server starting on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// systemPrefersDark probes the deployment-level dark-mode default, consulted
// only for users with no persisted theme choice.
func systemPrefersDark() bool {
	prefer, err := strconv.ParseBool(os.Getenv("PREFER_DARK"))
	return err == nil && prefer
}
