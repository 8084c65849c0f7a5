package service

import (
	"context"
	"testing"
	"time"

	"magiars-be/internal/dto"
	"magiars-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatingCreateAndStats(t *testing.T) {
	_, uowFactory := newTestDB(t)
	svc := NewRatingService(uowFactory, nopLogger{})
	ctx := context.Background()

	user := &entity.User{MetaId: "meta-rate", Name: "Eva", LoginDate: time.Now()}
	uow := uowFactory.NewUnitOfWork(ctx)
	require.NoError(t, uow.UserRepository().Create(ctx, user))

	for _, score := range []int{5, 3} {
		_, err := svc.Create(ctx, &dto.CreateRatingRequest{
			ConversationId: "conv-1",
			UserId:         user.Id.String(),
			Rating:         score,
			Comment:        "ok",
		})
		require.NoError(t, err)
	}

	t.Run("stats rounds to two decimals", func(t *testing.T) {
		stats, err := svc.Stats(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(2), stats.Total)
		assert.Equal(t, 4.0, stats.Average)
	})

	t.Run("list filtered by conversation", func(t *testing.T) {
		got, err := svc.List(ctx, RatingFilters{ConversationKey: "conv-1"})
		require.NoError(t, err)
		assert.Len(t, got, 2)

		none, err := svc.List(ctx, RatingFilters{ConversationKey: "conv-2"})
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("list filtered by user", func(t *testing.T) {
		got, err := svc.List(ctx, RatingFilters{UserId: &user.Id})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})
}
