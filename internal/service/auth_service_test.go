package service

import (
	"context"
	"testing"
	"time"

	"magiars-be/internal/config"
	"magiars-be/internal/entity"
	"magiars-be/internal/repository/specification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteByMetaIdCascades(t *testing.T) {
	_, uowFactory := newTestDB(t)

	cfg := &config.Config{}
	cfg.App.JWTSecret = "test-secret"
	svc := NewAuthService(uowFactory, cfg, nopLogger{})

	ctx := context.Background()
	uow := uowFactory.NewUnitOfWork(ctx)

	user := &entity.User{MetaId: "meta-del", Name: "Sara", LoginDate: time.Now()}
	require.NoError(t, uow.UserRepository().Create(ctx, user))

	keeper := &entity.User{MetaId: "meta-keep", Name: "Leo", LoginDate: time.Now()}
	require.NoError(t, uow.UserRepository().Create(ctx, keeper))

	const key = "conv-del"
	require.NoError(t, uow.ConversationRepository().Create(ctx, &entity.Conversation{
		UserId:         user.Id,
		ConversationId: key,
		Title:          "Consulta",
	}))
	require.NoError(t, uow.MessageRepository().Create(ctx, &entity.Message{
		ConversationId: key,
		Role:           "user",
		Content:        "hola",
		Timestamp:      time.Now(),
	}))
	require.NoError(t, uow.RatingRepository().Create(ctx, &entity.Rating{
		ConversationId: key,
		UserId:         user.Id,
		Rating:         5,
		Timestamp:      time.Now(),
	}))

	esc := &entity.Escalation{UserId: user.Id, Issue: "necesito ayuda"}
	require.NoError(t, uow.EscalationRepository().Create(ctx, esc))
	require.NoError(t, uow.EscalationRepository().AddReply(ctx, &entity.EscalationReply{
		EscalationId: esc.Id,
		Message:      "revisando",
		Sender:       "agent",
		Timestamp:    time.Now(),
	}))
	require.NoError(t, uow.IntegrationRepository().Create(ctx, &entity.Integration{
		UserId:   user.Id,
		Platform: "whatsapp",
		IsActive: true,
	}))

	require.NoError(t, svc.DeleteByMetaId(ctx, "meta-del"))

	t.Run("user row gone", func(t *testing.T) {
		found, err := uow.UserRepository().FindOne(ctx, specification.ByMetaId{MetaId: "meta-del"})
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("conversation lookup returns empty", func(t *testing.T) {
		conversations, err := uow.ConversationRepository().FindAll(ctx, specification.ByUserId{UserId: user.Id})
		require.NoError(t, err)
		assert.Empty(t, conversations)

		messages, err := uow.MessageRepository().Count(ctx, specification.ByConversationKey{Key: key})
		require.NoError(t, err)
		assert.Zero(t, messages)
	})

	t.Run("ratings escalations and integrations gone", func(t *testing.T) {
		ratings, err := uow.RatingRepository().Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, ratings)

		escalations, err := uow.EscalationRepository().Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, escalations)

		replies, err := uow.EscalationRepository().FindReplies(ctx, esc.Id)
		require.NoError(t, err)
		assert.Empty(t, replies)

		integrations, err := uow.IntegrationRepository().Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, integrations)
	})

	t.Run("other users untouched", func(t *testing.T) {
		found, err := uow.UserRepository().FindOne(ctx, specification.ByMetaId{MetaId: "meta-keep"})
		require.NoError(t, err)
		assert.NotNil(t, found)
	})

	t.Run("unknown meta id is a no-op", func(t *testing.T) {
		assert.NoError(t, svc.DeleteByMetaId(ctx, "meta-unknown"))
	})
}
