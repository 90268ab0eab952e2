// middleware/jwt_middleware.go
package middleware

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// TokenValidity is the lifetime of an issued bearer token.
const TokenValidity = 2 * time.Hour

// JwtCustomClaims for JWT token
type JwtCustomClaims struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

// GetJWTSecret returns the token signing secret from environment variables
func GetJWTSecret() string {
	secret := os.Getenv("SECRET_TOKEN_KEY")
	if secret == "" {
		panic("SECRET_TOKEN_KEY environment variable is required")
	}
	return secret
}

// GenerateJWT issues a signed token for the given email, valid for two hours
func GenerateJWT(email string) (string, error) {
	claims := &JwtCustomClaims{
		Email: email,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(TokenValidity).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	secret := os.Getenv("SECRET_TOKEN_KEY")
	if secret == "" {
		return "", errors.New("SECRET_TOKEN_KEY environment variable is required")
	}

	return token.SignedString([]byte(secret))
}

// ParseToken verifies the signature and expiry of a token string and returns
// its claims.
func ParseToken(tokenString string) (*JwtCustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(GetJWTSecret()), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*JwtCustomClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

// JWTMiddleware returns a configured JWT middleware for protected routes.
// The Authorization header must follow the strict "Bearer <token>" grammar;
// anything else fails closed with a 401.
func JWTMiddleware() echo.MiddlewareFunc {
	secret := os.Getenv("SECRET_TOKEN_KEY")
	if secret == "" {
		log.Printf("Warning: SECRET_TOKEN_KEY environment variable is not set")
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				return echo.NewHTTPError(echo.ErrUnauthorized.Code, "JWT configuration error")
			}
		}
	}

	return echoMiddleware.JWTWithConfig(echoMiddleware.JWTConfig{
		SigningKey: []byte(secret),
		Claims:     &JwtCustomClaims{},
		SuccessHandler: func(c echo.Context) {
			user := c.Get("user").(*jwt.Token)
			claims := user.Claims.(*JwtCustomClaims)
			c.Set("email", claims.Email)
		},
		ErrorHandler: func(err error) error {
			return echo.NewHTTPError(echo.ErrUnauthorized.Code, "Invalid token")
		},
	})
}

// GetEmailFromToken returns the email claim placed in the context by
// JWTMiddleware, or an empty string on unauthenticated requests.
func GetEmailFromToken(c echo.Context) string {
	if email, ok := c.Get("email").(string); ok {
		return email
	}
	return ""
}
