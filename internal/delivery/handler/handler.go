package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"task-service/internal/apperrors"
	"task-service/internal/application/command"
	"task-service/internal/application/interfaces"
)

type Handler struct {
	userService interfaces.UserService
	taskService interfaces.TaskService
}

func NewHandler(userService interfaces.UserService, taskService interfaces.TaskService) *Handler {
	return &Handler{
		userService: userService,
		taskService: taskService,
	}
}

// Register handles POST /register.
func (h *Handler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: validationMessage(err)})
	}

	result, err := h.userService.RegisterUser(c.Request().Context(), &command.RegisterUserCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEmail) {
			return c.JSON(http.StatusBadRequest, MessageResponse{Message: "User already exists"})
		}
		return internalError(c, "Register", err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"user": result.Result})
}

// Login handles POST /login.
func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: validationMessage(err)})
	}

	result, err := h.userService.LoginUser(c.Request().Context(), &command.LoginUserCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUserNotFound):
			return c.JSON(http.StatusBadRequest, MessageResponse{Message: "User not found"})
		case errors.Is(err, apperrors.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, MessageResponse{Message: "Authentication failed"})
		}
		return internalError(c, "Login", err)
	}

	return c.JSON(http.StatusOK, echo.Map{"jwt": result.Token})
}

// GetUser handles GET /user. The auth middleware has already resolved
// the caller.
func (h *Handler) GetUser(c echo.Context) error {
	user := CurrentUser(c)

	result, err := h.userService.GetProfile(c.Request().Context(), user.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, MessageResponse{Message: "User not found"})
		}
		return internalError(c, "GetUser", err)
	}

	return c.JSON(http.StatusOK, echo.Map{"user": result.Result})
}

// CreateTask handles POST /create-task.
func (h *Handler) CreateTask(c echo.Context) error {
	var req CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: validationMessage(err)})
	}
	if strings.TrimSpace(req.Name) == "" {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "\"name\" is not allowed to be empty"})
	}

	user := CurrentUser(c)

	result, err := h.taskService.CreateTask(c.Request().Context(), &command.CreateTaskCommand{
		Name:   req.Name,
		UserID: user.ID,
	})
	if err != nil {
		return internalError(c, "CreateTask", err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"task": echo.Map{
		"id":   result.Result.ID,
		"name": result.Result.Name,
	}})
}

// ListTasks handles GET /list-tasks.
func (h *Handler) ListTasks(c echo.Context) error {
	user := CurrentUser(c)

	result, err := h.taskService.ListTasks(c.Request().Context(), user.ID)
	if err != nil {
		return internalError(c, "ListTasks", err)
	}

	return c.JSON(http.StatusOK, echo.Map{"tasks": result.Result})
}

func internalError(c echo.Context, op string, err error) error {
	log.Printf("error in %s: %v", op, err)
	return c.JSON(http.StatusInternalServerError, MessageResponse{Message: "Internal Server Error"})
}
