package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/craftbridge/platform_be_craftbridge/internal/config"
	"github.com/craftbridge/platform_be_craftbridge/internal/middleware"
	"github.com/craftbridge/platform_be_craftbridge/internal/services"
	"github.com/craftbridge/platform_be_craftbridge/internal/store"
)

type Deps struct {
	Store   *store.Store
	Cfg     config.Config
	Limiter middleware.Limiter
}

// NewApp builds the Fiber app with every route registered. Kept separate from
// main so tests can run the whole HTTP surface against an in-memory store.
func NewApp(d Deps) *fiber.App {
	projectSvc := services.NewProjectService(d.Store)
	bidSvc := services.NewBidService(d.Store)
	chatSvc := services.NewChatService(d.Store)

	authH := &AuthHandler{
		Users:     d.Store.Users,
		Projects:  d.Store.Projects,
		Bids:      d.Store.Bids,
		JWTSecret: d.Cfg.JWTSecret,
		Expires:   d.Cfg.JWTExpiresMin,
	}
	googleH := &GoogleOAuthHandler{
		Users:           d.Store.Users,
		JWTSecret:       d.Cfg.JWTSecret,
		Expires:         d.Cfg.JWTExpiresMin,
		GoogleClientID:  d.Cfg.GoogleClientID,
		GoogleSecret:    d.Cfg.GoogleSecret,
		GoogleRedirect:  d.Cfg.GoogleRedirect,
		FrontendBaseURL: d.Cfg.FrontendBaseURL,
	}
	projectH := NewProjectHandler(projectSvc, d.Store.Users)
	bidH := NewBidHandler(bidSvc, d.Store.Users)
	chatH := NewChatHandler(chatSvc, d.Store.Users)
	engineerH := NewEngineerHandler(d.Store.Users)
	categoryH := NewCategoryHandler(d.Store.Projects)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     d.Cfg.CORSOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders:    "Content-Length",
		AllowCredentials: true,
	}))

	app.Options("/*", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	api := app.Group("/api")

	authLimit := middleware.RateLimit(d.Limiter, 10, time.Minute)

	// public
	api.Post("/auth/register", authLimit, authH.Register)
	api.Post("/auth/login", authLimit, authH.Login)
	api.Post("/auth/logout", authH.Logout)
	api.Get("/auth/google/start", googleH.GoogleStart)
	api.Get("/auth/google/callback", googleH.GoogleCallback)
	api.Get("/categories", categoryH.GetCategories)

	// project browsing is public; a token, when present, unlocks mine=true
	// filtering and the viewer's match score
	api.Get("/projects", middleware.OptionalAuth(d.Cfg.JWTSecret), projectH.List)
	api.Get("/projects/:id", middleware.OptionalAuth(d.Cfg.JWTSecret), projectH.Get)

	protected := api.Group("/", middleware.RequireAuth(d.Cfg.JWTSecret))

	protected.Get("/me", authH.Me)
	protected.Put("/me", authH.UpdateMe)
	protected.Get("/me/stats", authH.Stats)
	protected.Get("/engineers", engineerH.List)

	protected.Post("/projects", middleware.RequireRoles("community"), projectH.Create)
	protected.Put("/projects/:id", projectH.Update)
	protected.Delete("/projects/:id", projectH.Delete)
	protected.Get("/projects/:id/bids", bidH.ListByProject)
	protected.Get("/projects/:id/chat", chatH.List)
	protected.Post("/projects/:id/chat", chatH.Post)

	protected.Post("/bids", middleware.RequireRoles("engineer"), bidH.Submit)
	protected.Get("/my/bids", middleware.RequireRoles("engineer"), bidH.ListMine)
	protected.Patch("/bids/:id/status", bidH.UpdateStatus)
	protected.Delete("/bids/:id", bidH.Withdraw)

	return app
}
