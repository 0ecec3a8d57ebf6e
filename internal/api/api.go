package api

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"user-service/internal/entity"
	"user-service/internal/repository"
	"user-service/internal/service"
	"user-service/internal/validation"
)

type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new instance of UserHandler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRoutes attaches all handler routes to the echo instance.
func RegisterRoutes(e *echo.Echo, h *UserHandler) {
	e.GET("/", h.Root)
	e.GET("/users", h.ListUsers)
	e.GET("/users/:id", h.GetUserByID)
	e.POST("/users", h.CreateUser)
	e.PUT("/users/:id", h.UpdateUser)
	e.DELETE("/users/:id", h.DeleteUser)
	e.GET("/error", h.Fail)
	e.GET("/health", h.Health)
}

// Root returns a static greeting --> /
func (h *UserHandler) Root(c echo.Context) error {
	return c.String(200, "Root")
}

// ListUsers returns one page of users --> /users?page=&pageSize=
func (h *UserHandler) ListUsers(c echo.Context) error {
	page := queryInt(c, "page", 1)
	pageSize := queryInt(c, "pageSize", 10)

	users := h.userService.ListUsers(c.Request().Context(), page, pageSize)
	return c.JSON(200, users)
}

// GetUserByID retrieves a user by ID --> /users/:id
func (h *UserHandler) GetUserByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"detail": "Invalid ID"})
	}

	user, err := h.userService.GetUserByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.NoContent(404)
		}
		return err
	}

	return c.JSON(200, user)
}

// CreateUser creates a new user --> /users
func (h *UserHandler) CreateUser(c echo.Context) error {
	user := entity.User{}
	if err := c.Bind(&user); err != nil {
		return c.JSON(400, map[string]string{"detail": "Invalid request payload"})
	}

	if err := c.Validate(&user); err != nil {
		return c.JSON(400, validation.FieldErrors(err))
	}

	createdUser, err := h.userService.CreateUser(c.Request().Context(), &user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateID) {
			return c.JSON(409, map[string]string{"detail": err.Error()})
		}
		return err
	}

	c.Response().Header().Set("Location", fmt.Sprintf("/users/%d", createdUser.ID))
	return c.JSON(201, createdUser)
}

// UpdateUser replaces an existing user --> /users/:id
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"detail": "Invalid ID"})
	}

	ctx := c.Request().Context()
	if _, err := h.userService.GetUserByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.NoContent(404)
		}
		return err
	}

	user := entity.User{}
	if err := c.Bind(&user); err != nil {
		return c.JSON(400, map[string]string{"detail": "Invalid request payload"})
	}

	if err := c.Validate(&user); err != nil {
		return c.JSON(400, validation.FieldErrors(err))
	}

	if err := h.userService.UpdateUser(ctx, id, &user); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.NoContent(404)
		}
		return err
	}

	return c.NoContent(204)
}

// DeleteUser removes a user --> /users/:id
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"detail": "Invalid ID"})
	}

	if err := h.userService.DeleteUser(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.NoContent(404)
		}
		return err
	}

	return c.NoContent(204)
}

// Fail always returns an error; it exercises the problem-response
// fallback --> /error
func (h *UserHandler) Fail(c echo.Context) error {
	return errors.New("intentional failure")
}

// Health reports service liveness --> /health
func (h *UserHandler) Health(c echo.Context) error {
	return c.JSON(200, map[string]interface{}{
		"status":  "ok",
		"service": "user-service",
		"users":   h.userService.UserCount(c.Request().Context()),
		"time":    time.Now().Format(time.RFC3339),
	})
}

func queryInt(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return def
	}
	return v
}
