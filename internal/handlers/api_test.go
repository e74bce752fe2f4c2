package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftbridge/platform_be_craftbridge/internal/config"
	"github.com/craftbridge/platform_be_craftbridge/internal/handlers"
	"github.com/craftbridge/platform_be_craftbridge/internal/middleware"
	"github.com/craftbridge/platform_be_craftbridge/internal/store/memstore"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	return handlers.NewApp(handlers.Deps{
		Store: memstore.New(),
		Cfg: config.Config{
			JWTSecret:     "test-secret",
			JWTExpiresMin: 60,
			CORSOrigins:   "http://localhost:3000",
		},
		Limiter: middleware.NewRateLimiter(),
	})
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var parsed map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &parsed)
	}
	return resp, parsed
}

func register(t *testing.T, app *fiber.App, role, email string, skills []string) string {
	t.Helper()
	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name":     "Account " + email,
		"email":    email,
		"password": "secret123",
		"role":     role,
		"skills":   skills,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "register %s: %v", email, body)
	data := body["data"].(map[string]any)
	return data["token"].(string)
}

func TestAuthFlow(t *testing.T) {
	app := newTestApp(t)

	token := register(t, app, "community", "priya@example.com", nil)

	t.Run("duplicate email conflicts", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
			"name":     "Priya Again",
			"email":    "priya@example.com",
			"password": "secret123",
			"role":     "community",
		})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("bad password rejected", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
			"email":    "priya@example.com",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("login returns a token", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
			"email":    "priya@example.com",
			"password": "secret123",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		data := body["data"].(map[string]any)
		assert.NotEmpty(t, data["token"])
	})

	t.Run("me requires auth", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, "/api/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		resp, body := doJSON(t, app, http.MethodGet, "/api/me", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		data := body["data"].(map[string]any)
		assert.Equal(t, "priya@example.com", data["email"])
	})

	t.Run("profile patch keeps email fixed", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPut, "/api/me", token, fiber.Map{
			"location": "Riverside",
			"email":    "hacked@example.com",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		data := body["data"].(map[string]any)
		assert.Equal(t, "Riverside", data["location"])
		assert.Equal(t, "priya@example.com", data["email"])
	})
}

// TestMarketplaceFlow walks the whole lifecycle: a community account posts a
// project, an engineer finds it, checks the match score, bids, gets accepted
// and the two talk in the project chat.
func TestMarketplaceFlow(t *testing.T) {
	app := newTestApp(t)

	ownerTok := register(t, app, "community", "priya@example.com", nil)
	engTok := register(t, app, "engineer", "wes@example.com", []string{"drill"})

	var projectID string
	{
		resp, body := doJSON(t, app, http.MethodPost, "/api/projects", ownerTok, fiber.Map{
			"title":           "Fix the community well",
			"description":     "Hand pump is seized.",
			"category":        "repair",
			"difficulty":      "medium",
			"location":        "Riverside",
			"required_skills": []string{"drill", "saw"},
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode, "%v", body)
		projectID = body["data"].(map[string]any)["id"].(string)
	}

	t.Run("engineers cannot post projects", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/projects", engTok, fiber.Map{
			"title": "nope", "description": "d", "category": "repair", "difficulty": "easy", "location": "l",
		})
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("listing is public and counts bids", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, "/api/projects?status=open", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		items := body["data"].([]any)
		require.Len(t, items, 1)
		item := items[0].(map[string]any)
		assert.Equal(t, float64(0), item["bid_count"])
	})

	t.Run("engineer sees a match score", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, "/api/projects/"+projectID, engTok, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		data := body["data"].(map[string]any)
		assert.Equal(t, float64(50), data["match_score"])
	})

	t.Run("anonymous viewer gets no score", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, "/api/projects/"+projectID, "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		data := body["data"].(map[string]any)
		assert.Nil(t, data["match_score"])
	})

	var bidID string
	{
		resp, body := doJSON(t, app, http.MethodPost, "/api/bids", engTok, fiber.Map{
			"project_id":        projectID,
			"proposed_budget":   100,
			"proposed_timeline": "1 weekend",
			"message":           "I have the tools.",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode, "%v", body)
		bidID = body["data"].(map[string]any)["id"].(string)
	}

	t.Run("duplicate bid conflicts", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/bids", engTok, fiber.Map{
			"project_id":        projectID,
			"proposed_budget":   80,
			"proposed_timeline": "3 days",
		})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("community accounts cannot bid", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/bids", ownerTok, fiber.Map{
			"project_id":        projectID,
			"proposed_budget":   10,
			"proposed_timeline": "never",
		})
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("owner lists project bids", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/projects/%s/bids", projectID), ownerTok, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, body["data"].([]any), 1)
	})

	t.Run("chat is closed before acceptance", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/projects/%s/chat", projectID), engTok, fiber.Map{
			"body": "hello?",
		})
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("accepting the bid starts the project", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPatch, fmt.Sprintf("/api/bids/%s/status", bidID), ownerTok, fiber.Map{
			"status": "accepted",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode, "%v", body)

		resp, body = doJSON(t, app, http.MethodGet, "/api/projects/"+projectID, "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		project := body["data"].(map[string]any)["project"].(map[string]any)
		assert.Equal(t, "in_progress", project["status"])
	})

	t.Run("accepted bid cannot be withdrawn", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodDelete, "/api/bids/"+bidID, engTok, nil)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("participants can chat", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/projects/%s/chat", projectID), ownerTok, fiber.Map{
			"body": "When can you start?",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		resp, _ = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/projects/%s/chat", projectID), engTok, fiber.Map{
			"body": "Saturday morning.",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		resp, body := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/projects/%s/chat", projectID), engTok, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		msgs := body["data"].([]any)
		require.Len(t, msgs, 2)
		assert.Equal(t, "When can you start?", msgs[0].(map[string]any)["body"])
	})

	t.Run("owner completes the project", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPut, "/api/projects/"+projectID, ownerTok, fiber.Map{
			"status": "completed",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode, "%v", body)
		project := body["data"].(map[string]any)
		assert.Equal(t, "completed", project["status"])
	})

	t.Run("stats reflect the outcome", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, "/api/me/stats", ownerTok, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		data := body["data"].(map[string]any)
		assert.Equal(t, float64(1), data["total_projects"])
		assert.Equal(t, float64(1), data["completed_projects"])

		resp, body = doJSON(t, app, http.MethodGet, "/api/me/stats", engTok, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		data = body["data"].(map[string]any)
		assert.Equal(t, float64(1), data["total_bids"])
		assert.Equal(t, float64(1), data["accepted_bids"])
	})
}

func TestEngineerDirectory(t *testing.T) {
	app := newTestApp(t)

	tok := register(t, app, "community", "owner@example.com", nil)
	register(t, app, "engineer", "welder@example.com", []string{"welding"})
	register(t, app, "engineer", "carpenter@example.com", []string{"carpentry"})

	t.Run("requires auth", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, "/api/engineers", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("skill filter narrows the list", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, "/api/engineers?skill=weld", tok, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		items := body["data"].([]any)
		require.Len(t, items, 1)
		assert.Equal(t, "welder@example.com", items[0].(map[string]any)["email"])
	})
}
