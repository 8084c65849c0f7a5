package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"magiars-be/internal/config"
	"magiars-be/internal/dto"
	"magiars-be/internal/pkg/serverutils"
	"magiars-be/internal/repository/unitofwork"
	"magiars-be/internal/service"
	"magiars-be/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := database.NewGormDB(":memory:")
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.App.JWTSecret = "test-secret"
	cfg.App.ClientURL = "http://localhost:5173"

	authService := service.NewAuthService(unitofwork.NewRepositoryFactory(db), cfg, nopLogger{})

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")
	NewAuthController(authService, cfg.App.ClientURL, cfg.App.JWTSecret).RegisterRoutes(api)
	return app
}

func fetchDeletionResponse(t *testing.T, app *fiber.App, method, body string) dto.DataDeletionResponse {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, "/api/auth/data-deletion", reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed dto.DataDeletionResponse
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return parsed
}

func TestDataDeletionContract(t *testing.T) {
	app := newAuthApp(t)

	first := fetchDeletionResponse(t, app, "GET", "")
	assert.Equal(t, "http://localhost:5173/data-deletion-status", first.Url)
	assert.True(t, strings.HasPrefix(first.ConfirmationCode, "deletion_"))

	// Codes are per-request identifiers, never a shared constant.
	time.Sleep(2 * time.Millisecond)
	second := fetchDeletionResponse(t, app, "GET", "")
	assert.NotEqual(t, first.ConfirmationCode, second.ConfirmationCode)

	t.Run("post with unknown user still answers 200 with the fixed shape", func(t *testing.T) {
		got := fetchDeletionResponse(t, app, "POST", `{"user_id":"meta-unknown"}`)
		assert.Equal(t, "http://localhost:5173/data-deletion-status", got.Url)
		assert.True(t, strings.HasPrefix(got.ConfirmationCode, "deletion_"))
	})
}
