package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes binds the HTTP surface. /register and /login are
// public; everything else sits behind the auth middleware.
func RegisterRoutes(e *echo.Echo, h *Handler, auth *AuthMiddleware) {
	e.POST("/register", h.Register)
	e.POST("/login", h.Login)

	protected := e.Group("", auth.Require())
	protected.GET("/user", h.GetUser)
	protected.POST("/create-task", h.CreateTask)
	protected.GET("/list-tasks", h.ListTasks)
}
