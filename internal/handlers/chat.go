package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/craftbridge/platform_be_craftbridge/internal/services"
	"github.com/craftbridge/platform_be_craftbridge/internal/store"
)

// ChatHandler serves the poll-based per-project chat log.
type ChatHandler struct {
	Svc   *services.ChatService
	Users store.Users
}

func NewChatHandler(svc *services.ChatService, users store.Users) *ChatHandler {
	return &ChatHandler{Svc: svc, Users: users}
}

type PostMessageReq struct {
	Body string `json:"body"`
}

func (h *ChatHandler) Post(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid project ID",
		})
	}

	actor, err := requireUser(c, h.Users)
	if err != nil {
		return err
	}

	var req PostMessageReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	m, err := h.Svc.Post(c.Context(), actor, projectID, req.Body)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    m,
	})
}

func (h *ChatHandler) List(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid project ID",
		})
	}

	actor, err := requireUser(c, h.Users)
	if err != nil {
		return err
	}

	messages, err := h.Svc.List(c.Context(), actor, projectID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    messages,
	})
}
