package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"task-service/internal/domain/entities"
	"task-service/internal/domain/repositories"
	"task-service/internal/infrastructure"
)

// contextUserKey is where the auth middleware stores the resolved user.
const contextUserKey = "auth.user"

// AuthMiddleware gates protected routes: it verifies the bearer token
// and resolves the embedded userId to a live user row, rejecting the
// request when the account no longer exists.
type AuthMiddleware struct {
	jwtService *infrastructure.JWTService
	userRepo   repositories.UserRepository
}

func NewAuthMiddleware(jwtService *infrastructure.JWTService, userRepo repositories.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
	}
}

func (m *AuthMiddleware) Require() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, MessageResponse{Message: "Unauthorized - No token provided"})
			}

			tokenValue := strings.TrimPrefix(authHeader, "Bearer ")

			userID, err := m.jwtService.VerifyToken(tokenValue)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, MessageResponse{Message: "Unauthorized - Invalid token"})
			}

			user, err := m.userRepo.FindByID(c.Request().Context(), userID)
			if err != nil {
				return internalError(c, "AuthMiddleware", err)
			}
			if user == nil {
				return c.JSON(http.StatusUnauthorized, MessageResponse{Message: "Unauthorized - User not found"})
			}

			c.Set(contextUserKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the user resolved by AuthMiddleware. Only valid
// inside protected handlers.
func CurrentUser(c echo.Context) *entities.User {
	user, _ := c.Get(contextUserKey).(*entities.User)
	return user
}
