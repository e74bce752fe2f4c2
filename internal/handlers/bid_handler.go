package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/craftbridge/platform_be_craftbridge/internal/services"
	"github.com/craftbridge/platform_be_craftbridge/internal/store"
)

type BidHandler struct {
	Svc   *services.BidService
	Users store.Users
}

func NewBidHandler(svc *services.BidService, users store.Users) *BidHandler {
	return &BidHandler{Svc: svc, Users: users}
}

type SubmitBidReq struct {
	ProjectID        string  `json:"project_id"`
	ProposedBudget   float64 `json:"proposed_budget"`
	ProposedTimeline string  `json:"proposed_timeline"`
	Message          string  `json:"message"`
}

func (h *BidHandler) Submit(c *fiber.Ctx) error {
	actor, err := requireUser(c, h.Users)
	if err != nil {
		return err
	}

	var req SubmitBidReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid project ID",
		})
	}

	b, err := h.Svc.Submit(c.Context(), actor, services.SubmitBidInput{
		ProjectID:        projectID,
		ProposedBudget:   req.ProposedBudget,
		ProposedTimeline: req.ProposedTimeline,
		Message:          req.Message,
	})
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Bid submitted",
		"data":    b,
	})
}

func (h *BidHandler) ListByProject(c *fiber.Ctx) error {
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

	bids, err := h.Svc.ListByProject(c.Context(), actor, projectID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    bids,
	})
}

func (h *BidHandler) ListMine(c *fiber.Ctx) error {
	actor, err := requireUser(c, h.Users)
	if err != nil {
		return err
	}

	bids, err := h.Svc.ListMine(c.Context(), actor)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    bids,
	})
}

type UpdateBidStatusReq struct {
	Status string `json:"status"` // accepted / rejected
}

func (h *BidHandler) UpdateStatus(c *fiber.Ctx) error {
	bidID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid bid ID",
		})
	}

	actor, err := requireUser(c, h.Users)
	if err != nil {
		return err
	}

	var req UpdateBidStatusReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	b, err := h.Svc.SetStatus(c.Context(), actor, bidID, req.Status)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Bid " + req.Status,
		"data":    b,
	})
}

func (h *BidHandler) Withdraw(c *fiber.Ctx) error {
	bidID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid bid ID",
		})
	}

	actor, err := requireUser(c, h.Users)
	if err != nil {
		return err
	}

	if err := h.Svc.Withdraw(c.Context(), actor, bidID); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Bid withdrawn",
	})
}
