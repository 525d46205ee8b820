package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/tacocloud/taco-api/internal/config"
	"github.com/tacocloud/taco-api/internal/controllers"
	"github.com/tacocloud/taco-api/internal/database"
	"github.com/tacocloud/taco-api/internal/middleware"
	"github.com/tacocloud/taco-api/internal/models"
	"github.com/tacocloud/taco-api/internal/services"
	"github.com/tacocloud/taco-api/internal/validation"
	"gorm.io/gorm"
)

var (
	db                   *gorm.DB
	ingredientService    services.IngredientService
	cartService          services.CartService
	orderService         services.OrderService
	validator            *validation.Validator
	ingredientController controllers.IngredientController
	designController     controllers.DesignController
	orderController      controllers.OrderController
	configuration        *config.Config
)

// @title Taco Cloud API
// @version 1.0
// @description Compose tacos from catalog ingredients, accumulate them into an order and check out
// @host localhost:8080
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize database connection
	setupDatabase(configuration)

	// Initialize services and controllers
	ingredientService = services.NewIngredientService(db)
	cartService = services.NewCartService(configuration.CartTTL)
	orderService = services.NewOrderService(db)
	validator = validation.New(configuration.AllowEmptyOrders)

	ingredientController = controllers.NewIngredientController(ingredientService)
	designController = controllers.NewDesignController(ingredientService, cartService, validator)
	orderController = controllers.NewOrderController(orderService, cartService, validator)

	// Periodically evict idle in-progress orders
	stopSweeper := make(chan struct{})
	defer close(stopSweeper)
	go services.SweepExpiredCarts(cartService, configuration.CartTTL, stopSweeper)

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase initializes the database connection, migrates the order
// schema and seeds the ingredient catalog on first run
func setupDatabase(conf *config.Config) *gorm.DB {
	var err error
	db, err = database.Connect(database.DatabaseConfig{
		Driver:   conf.DBDriver,
		Host:     conf.DBHost,
		Port:     conf.DBPort,
		User:     conf.DBUser,
		Password: conf.DBPassword,
		Name:     conf.DBName,
		SSLMode:  conf.DBSSLMode,
		Path:     conf.DBPath,
	})
	checkPanicErr(err)

	// Migrate the schema
	err = db.AutoMigrate(
		&models.Ingredient{},
		&models.Taco{},
		&models.TacoIngredient{},
		&models.TacoOrder{},
		&models.TacoOrderTaco{},
	)
	checkPanicErr(err)

	// Seed the catalog only if it is empty
	var count int64
	db.Model(&models.Ingredient{}).Count(&count)
	if count == 0 {
		log.Info("Ingredient catalog is empty, seeding reference data")
		seedDatabase()
	} else {
		log.Info("Ingredient catalog already seeded")
	}
	return db
}

// seedDatabase seeds the ingredient catalog with its reference data
func seedDatabase() {
	ingredients := []models.Ingredient{
		{ID: "FLTO", Name: "Flour Tortilla", Type: models.Wrap},
		{ID: "COTO", Name: "Corn Tortilla", Type: models.Wrap},
		{ID: "GRBF", Name: "Ground Beef", Type: models.Protein},
		{ID: "CARN", Name: "Carnitas", Type: models.Protein},
		{ID: "TMTO", Name: "Diced Tomatoes", Type: models.Veggie},
		{ID: "LETC", Name: "Lettuce", Type: models.Veggie},
		{ID: "CHED", Name: "Cheddar", Type: models.Cheese},
		{ID: "JACK", Name: "Monterrey Jack", Type: models.Cheese},
		{ID: "SLSA", Name: "Salsa", Type: models.Sauce},
		{ID: "SRCR", Name: "Sour Cream", Type: models.Sauce},
	}
	for _, ingredient := range ingredients {
		db.Create(&ingredient)
	}
	log.Info("Ingredient catalog seeded successfully")
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	// Initialize Gin router
	router := gin.Default()

	// Define routes
	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.SessionID())
	{
		// Ingredient catalog (read-only reference data)
		v1.GET("/ingredients", ingredientController.GetAllIngredients)
		v1.GET("/ingredients/:id", ingredientController.GetIngredientByID)

		// Taco design step
		v1.POST("/design", designController.SubmitTaco)

		// Order accumulation and checkout
		v1.GET("/orders/current", orderController.GetCurrentOrder)
		v1.POST("/orders", orderController.SubmitOrder)
		v1.GET("/orders/:id", orderController.GetOrderByID)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "taco-api",
	})
}
