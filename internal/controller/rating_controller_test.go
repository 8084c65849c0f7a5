package controller

import (
	"context"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"magiars-be/internal/pkg/serverutils"
	"magiars-be/internal/repository/unitofwork"
	"magiars-be/internal/service"
	"magiars-be/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

func newRatingApp(t *testing.T) (*fiber.App, unitofwork.RepositoryFactory) {
	t.Helper()
	db, err := database.NewGormDB(":memory:")
	require.NoError(t, err)
	uowFactory := unitofwork.NewRepositoryFactory(db)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")
	NewRatingController(service.NewRatingService(uowFactory, nopLogger{})).RegisterRoutes(api)
	return app, uowFactory
}

func postRating(t *testing.T, app *fiber.App, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/ratings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestRatingControllerRejectsOutOfRangeRating(t *testing.T) {
	app, uowFactory := newRatingApp(t)
	userId := uuid.NewString()

	tests := []struct {
		name   string
		rating int
	}{
		{name: "zero", rating: 0},
		{name: "above five", rating: 6},
		{name: "negative", rating: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := fmt.Sprintf(`{"conversationId":"conv-1","userId":"%s","rating":%d}`, userId, tt.rating)
			assert.Equal(t, fiber.StatusBadRequest, postRating(t, app, body))
		})
	}

	uow := uowFactory.NewUnitOfWork(context.Background())
	count, err := uow.RatingRepository().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count, "rejected ratings must not be persisted")
}

func TestRatingControllerAcceptsValidRating(t *testing.T) {
	app, uowFactory := newRatingApp(t)
	userId := uuid.NewString()

	body := fmt.Sprintf(`{"conversationId":"conv-1","userId":"%s","rating":5,"comment":"excelente"}`, userId)
	assert.Equal(t, fiber.StatusCreated, postRating(t, app, body))

	uow := uowFactory.NewUnitOfWork(context.Background())
	count, err := uow.RatingRepository().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
