package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/emmanuelcheru/estate_backend/config"
	"github.com/emmanuelcheru/estate_backend/controllers"
	"github.com/emmanuelcheru/estate_backend/middleware"
	"github.com/emmanuelcheru/estate_backend/repositories"
	"github.com/emmanuelcheru/estate_backend/routes"
	"github.com/emmanuelcheru/estate_backend/services"
)

const defaultOTPTTL = 10 * time.Minute

// CustomValidator is a custom validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates the request body
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Connect external services; missing configuration aborts startup
	dbClient := config.InitFirebase()
	blobConfig := config.LoadBlobConfig()
	redisClient := config.ConnectRedis()

	// Create a new Echo instance
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	// Middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.GlobalCORS())

	e.Match([]string{"GET", "HEAD"}, "/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status":  "OK",
			"message": "Real Estate Backend is running",
			"version": "1.0",
		})
	})

	e.Match([]string{"GET", "HEAD"}, "/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status":   "healthy",
			"database": "connected",
		})
	})

	// OTP store: Redis when configured, in-memory otherwise
	otpTTL := defaultOTPTTL
	if ttlStr := os.Getenv("OTP_TTL_MINUTES"); ttlStr != "" {
		if minutes, err := strconv.Atoi(ttlStr); err == nil && minutes > 0 {
			otpTTL = time.Duration(minutes) * time.Minute
		}
	}
	var otpStore services.OTPStore
	if redisClient != nil {
		otpStore = services.NewRedisOTPStore(redisClient, otpTTL)
	} else {
		otpStore = services.NewMemoryOTPStore(otpTTL)
	}

	loginEmail := os.Getenv("USER_EMAIL")
	if loginEmail == "" {
		log.Fatal("USER_EMAIL environment variable is required")
	}

	// Initialize services, repositories and controllers
	uploader := services.NewBlobService(blobConfig)
	mailer := services.NewSMTPMailer()
	propertyRepo := repositories.NewPropertyRepository(dbClient)

	propertyController := controllers.NewPropertyController(propertyRepo, uploader)
	authController := controllers.NewAuthController(otpStore, mailer, loginEmail)
	contactController := controllers.NewContactController(mailer, "static/success.html", "static/error.html")

	routes.SetupRoutes(e, propertyController, authController, contactController)

	// Ensure uploads directory exists and serve it statically
	os.MkdirAll("uploads", 0755)
	e.Static("/uploads", "uploads")

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	e.Logger.Fatal(e.Start(":" + port))
}
