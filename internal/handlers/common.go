package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/craftbridge/platform_be_craftbridge/internal/models"
	"github.com/craftbridge/platform_be_craftbridge/internal/services"
	"github.com/craftbridge/platform_be_craftbridge/internal/store"
)

func getUserUUID(c *fiber.Ctx) (uuid.UUID, bool) {
	v, ok := c.Locals("userId").(string)
	if !ok || v == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// currentUser loads the acting account from the token identity set by the
// auth middleware. Behind OptionalAuth it returns (nil, nil) for anonymous
// requests.
func currentUser(c *fiber.Ctx, users store.Users) (*models.User, error) {
	id, ok := getUserUUID(c)
	if !ok {
		return nil, nil
	}
	u, err := users.ByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

func requireUser(c *fiber.Ctx, users store.Users) (*models.User, error) {
	u, err := currentUser(c, users)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fiber.ErrUnauthorized
	}
	return u, nil
}

// serviceError maps the rule-layer error taxonomy onto HTTP statuses.
func serviceError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Something went wrong"

	switch {
	case errors.Is(err, services.ErrValidation):
		status = fiber.StatusBadRequest
		message = err.Error()
	case errors.Is(err, services.ErrForbidden):
		status = fiber.StatusForbidden
		message = err.Error()
	case errors.Is(err, services.ErrNotFound):
		status = fiber.StatusNotFound
		message = err.Error()
	case errors.Is(err, services.ErrConflict), errors.Is(err, services.ErrInvalidState):
		status = fiber.StatusConflict
		message = err.Error()
	default:
		log.Println("unexpected error:", err)
	}

	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
