package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/craftbridge/platform_be_craftbridge/internal/store"
)

type EngineerHandler struct {
	Users store.Users
}

func NewEngineerHandler(users store.Users) *EngineerHandler {
	return &EngineerHandler{Users: users}
}

// List returns active engineer accounts, optionally filtered by skill tag or
// location substring.
func (h *EngineerHandler) List(c *fiber.Ctx) error {
	if _, err := requireUser(c, h.Users); err != nil {
		return err
	}

	engineers, err := h.Users.ListEngineers(c.Context(), store.EngineerFilter{
		Skill:    c.Query("skill"),
		Location: c.Query("location"),
	})
	if err != nil {
		log.Println("list engineers error:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to list engineers",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    engineers,
	})
}
