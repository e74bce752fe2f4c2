package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/craftbridge/platform_be_craftbridge/internal/services"
	"github.com/craftbridge/platform_be_craftbridge/internal/store"
)

type ProjectHandler struct {
	Svc   *services.ProjectService
	Users store.Users
}

func NewProjectHandler(svc *services.ProjectService, users store.Users) *ProjectHandler {
	return &ProjectHandler{Svc: svc, Users: users}
}

type CreateProjectReq struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	Difficulty     string   `json:"difficulty"`
	Location       string   `json:"location"`
	RequiredSkills []string `json:"required_skills"`
	Images         []string `json:"images"`
	BudgetMin      *float64 `json:"budget_min"`
	BudgetMax      *float64 `json:"budget_max"`
	TimelineStart  string   `json:"timeline_start"` // 2006-01-02
	TimelineEnd    string   `json:"timeline_end"`
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	actor, err := requireUser(c, h.Users)
	if err != nil {
		return err
	}

	var req CreateProjectReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	p, err := h.Svc.Create(c.Context(), actor, services.CreateProjectInput{
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		Difficulty:     req.Difficulty,
		Location:       req.Location,
		RequiredSkills: req.RequiredSkills,
		Images:         req.Images,
		BudgetMin:      req.BudgetMin,
		BudgetMax:      req.BudgetMax,
		TimelineStart:  parseDate(req.TimelineStart),
		TimelineEnd:    parseDate(req.TimelineEnd),
	})
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Project created",
		"data":    p,
	})
}

// List is public; filters are exact-match except location and skill which are
// substring matches.
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	filter := store.ProjectFilter{
		Status:     c.Query("status"),
		Category:   c.Query("category"),
		Difficulty: c.Query("difficulty"),
		Location:   c.Query("location"),
		Skill:      c.Query("skill"),
	}
	if c.Query("mine") == "true" {
		if id, ok := getUserUUID(c); ok {
			filter.CommunityID = id
		}
	}

	items, err := h.Svc.List(c.Context(), filter)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    items,
	})
}

func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid project ID",
		})
	}

	viewer, err := currentUser(c, h.Users)
	if err != nil {
		return serviceError(c, err)
	}

	p, score, err := h.Svc.Get(c.Context(), id, viewer)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"project":     p,
			"match_score": score,
		},
	})
}

type UpdateProjectReq struct {
	Title          *string   `json:"title"`
	Description    *string   `json:"description"`
	Category       *string   `json:"category"`
	Difficulty     *string   `json:"difficulty"`
	Location       *string   `json:"location"`
	RequiredSkills *[]string `json:"required_skills"`
	Images         *[]string `json:"images"`
	BudgetMin      *float64  `json:"budget_min"`
	BudgetMax      *float64  `json:"budget_max"`
	TimelineStart  *string   `json:"timeline_start"`
	TimelineEnd    *string   `json:"timeline_end"`
	Status         *string   `json:"status"`
}

func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
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

	var req UpdateProjectReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	in := services.UpdateProjectInput{
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		Difficulty:     req.Difficulty,
		Location:       req.Location,
		RequiredSkills: req.RequiredSkills,
		Images:         req.Images,
		BudgetMin:      req.BudgetMin,
		BudgetMax:      req.BudgetMax,
		Status:         req.Status,
	}
	if req.TimelineStart != nil {
		in.TimelineStart = parseDate(*req.TimelineStart)
	}
	if req.TimelineEnd != nil {
		in.TimelineEnd = parseDate(*req.TimelineEnd)
	}

	p, err := h.Svc.Update(c.Context(), actor, id, in)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Project updated",
		"data":    p,
	})
}

func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
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

	if err := h.Svc.Delete(c.Context(), actor, id); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Project deleted",
	})
}
