package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/craftbridge/platform_be_craftbridge/internal/store"
)

type CategoryHandler struct {
	Projects store.Projects
}

func NewCategoryHandler(projects store.Projects) *CategoryHandler {
	return &CategoryHandler{Projects: projects}
}

func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.Projects.Categories(c.Context())
	if err != nil {
		log.Println("categories error:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to load categories",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    categories,
	})
}
