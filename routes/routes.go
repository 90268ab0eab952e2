package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/emmanuelcheru/estate_backend/controllers"
	"github.com/emmanuelcheru/estate_backend/middleware"
)

// SetupRoutes registers all API routes. Property routes sit behind the JWT
// middleware; the contact form and the OTP flow are public.
func SetupRoutes(e *echo.Echo, propertyController *controllers.PropertyController, authController *controllers.AuthController, contactController *controllers.ContactController) {
	// Protected property routes
	properties := e.Group("/properties")
	properties.Use(middleware.JWTMiddleware())
	properties.POST("", propertyController.CreateProperty)
	properties.GET("", propertyController.GetProperties)
	properties.GET("/:id", propertyController.GetProperty)
	properties.PUT("/:id", propertyController.UpdateProperty)
	properties.DELETE("/:id", propertyController.DeleteProperty)

	// Public contact form
	e.POST("/submit", contactController.Submit)

	// Public authentication routes
	e.POST("/generate-otp", authController.GenerateOTP)
	e.POST("/verify-otp", authController.VerifyOTP)
	e.POST("/verify-token", authController.VerifyToken)
}
