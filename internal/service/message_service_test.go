package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"magiars-be/internal/constant"
	"magiars-be/internal/dto"
	"magiars-be/internal/entity"
	"magiars-be/internal/repository/specification"
	"magiars-be/internal/repository/unitofwork"
	"magiars-be/pkg/chatbot"
	"magiars-be/pkg/hours"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// alwaysOpenSchedule keeps router tests independent of the wall clock.
func alwaysOpenSchedule() hours.Schedule {
	schedule := hours.Schedule{}
	for day := range hours.DefaultConfig().Schedule {
		schedule[day] = hours.Window{Open: "00:00", Close: "23:59", Enabled: true}
	}
	return schedule
}

func alwaysClosedSchedule() hours.Schedule {
	schedule := hours.Schedule{}
	for day := range hours.DefaultConfig().Schedule {
		schedule[day] = hours.Window{Enabled: false}
	}
	return schedule
}

func newRouter(t *testing.T, schedule hours.Schedule) (IMessageService, *gorm.DB, unitofwork.RepositoryFactory) {
	t.Helper()
	db, uowFactory := newTestDB(t)

	hoursService := NewBusinessHoursService(uowFactory, nopLogger{})
	_, err := hoursService.Update(context.Background(), &dto.UpdateBusinessHoursRequest{
		Enabled:  true,
		Timezone: "America/Bogota",
		Schedule: schedule,
	})
	require.NoError(t, err)

	escalationService := NewEscalationService(uowFactory, newTestPublisher(), nopLogger{})
	router := NewMessageService(uowFactory, chatbot.NewClient("", nil), hoursService, escalationService, nopLogger{})
	return router, db, uowFactory
}

func seedRouterUser(t *testing.T, uowFactory unitofwork.RepositoryFactory) *entity.User {
	t.Helper()
	user := &entity.User{MetaId: "meta-1", Name: "Ana", LoginDate: time.Now()}
	uow := uowFactory.NewUnitOfWork(context.Background())
	require.NoError(t, uow.UserRepository().Create(context.Background(), user))
	return user
}

func TestSendOutOfHours(t *testing.T) {
	router, _, uowFactory := newRouter(t, alwaysClosedSchedule())
	user := seedRouterUser(t, uowFactory)
	ctx := context.Background()

	res, err := router.Send(ctx, &dto.SendMessageRequest{
		Message: "hola, necesito ayuda",
		UserId:  user.Id.String(),
	})
	require.NoError(t, err)

	assert.True(t, res.OutOfHours)
	assert.Equal(t, constant.OutOfHoursReply, res.Reply)
	assert.False(t, res.RequiresEscalation)

	uow := uowFactory.NewUnitOfWork(ctx)
	count, err := uow.MessageRepository().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "out of hours must persist nothing")
}

func TestSendRatingIntent(t *testing.T) {
	router, _, uowFactory := newRouter(t, alwaysOpenSchedule())
	user := seedRouterUser(t, uowFactory)
	ctx := context.Background()

	res, err := router.Send(ctx, &dto.SendMessageRequest{
		Message:        "gracias por todo",
		UserId:         user.Id.String(),
		ConversationId: "conv-abc",
	})
	require.NoError(t, err)

	assert.True(t, res.ShowRating)
	assert.Equal(t, constant.RatingPromptReply, res.Reply)
	assert.Equal(t, "conv-abc", res.ConversationId)

	uow := uowFactory.NewUnitOfWork(ctx)
	count, err := uow.MessageRepository().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "rating prompt must persist nothing")
}

func TestSendEscalationIntent(t *testing.T) {
	router, _, uowFactory := newRouter(t, alwaysOpenSchedule())
	user := seedRouterUser(t, uowFactory)
	ctx := context.Background()

	res, err := router.Send(ctx, &dto.SendMessageRequest{
		Message: "quiero hablar con un humano",
		UserId:  user.Id.String(),
	})
	require.NoError(t, err)

	assert.True(t, res.RequiresEscalation)
	assert.Equal(t, constant.EscalationReply, res.Reply)
	assert.True(t, strings.HasPrefix(res.ConversationId, "conv-"))
	assert.NotEmpty(t, res.Title)

	uow := uowFactory.NewUnitOfWork(ctx)

	escalations, err := uow.EscalationRepository().FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, escalations, 1, "exactly one ticket per escalation turn")
	assert.Equal(t, "quiero hablar con un humano", escalations[0].Issue)
	assert.Equal(t, entity.EscalationStatusOpen, escalations[0].Status)

	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.ByConversationKey{Key: res.ConversationId},
		specification.OrderBy{Field: "id"},
	)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, constant.ChatMessageRoleUser, messages[0].Role)
	assert.Equal(t, constant.EscalationReply, messages[1].Content)
}

func TestSendNormalFlow(t *testing.T) {
	router, _, uowFactory := newRouter(t, alwaysOpenSchedule())
	user := seedRouterUser(t, uowFactory)
	ctx := context.Background()

	res, err := router.Send(ctx, &dto.SendMessageRequest{
		Message:        "¿Cómo conecto mi cuenta de Instagram?",
		UserId:         user.Id.String(),
		IsFirstMessage: true,
	})
	require.NoError(t, err)

	// The client has no API key, so replies degrade to the canned fallback.
	assert.Equal(t, constant.UnconfiguredReply, res.Reply)
	assert.False(t, res.RequiresEscalation)
	assert.False(t, res.OutOfHours)
	assert.NotEmpty(t, res.ConversationId)
	assert.Equal(t, "¿Cómo conecto mi cuenta de Instagram?", res.Title)

	uow := uowFactory.NewUnitOfWork(ctx)

	conv, err := uow.ConversationRepository().FindOne(ctx,
		specification.ByConversationKey{Key: res.ConversationId})
	require.NoError(t, err)
	require.NotNil(t, conv)
	assert.Equal(t, user.Id, conv.UserId)

	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.ByConversationKey{Key: res.ConversationId},
		specification.OrderBy{Field: "id"},
	)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, constant.ChatMessageRoleUser, messages[0].Role)
	assert.Equal(t, constant.ChatMessageRoleAssistant, messages[1].Role)
}

func TestSendClassifiesAfterEnoughHistory(t *testing.T) {
	router, _, uowFactory := newRouter(t, alwaysOpenSchedule())
	user := seedRouterUser(t, uowFactory)
	ctx := context.Background()

	first, err := router.Send(ctx, &dto.SendMessageRequest{
		Message: "hola",
		UserId:  user.Id.String(),
	})
	require.NoError(t, err)
	assert.Empty(t, first.Category, "no classification on the first turn")

	second, err := router.Send(ctx, &dto.SendMessageRequest{
		Message:        "tengo un problema con mi factura",
		UserId:         user.Id.String(),
		ConversationId: first.ConversationId,
		ConversationHistory: []dto.HistoryTurn{
			{Role: "user", Content: "hola"},
			{Role: "assistant", Content: first.Reply},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, constant.FallbackCategory, second.Category)

	uow := uowFactory.NewUnitOfWork(ctx)
	conv, err := uow.ConversationRepository().FindOne(ctx,
		specification.ByConversationKey{Key: first.ConversationId})
	require.NoError(t, err)
	assert.Equal(t, constant.FallbackCategory, conv.Category)
	assert.Empty(t, second.Title, "title only on conversation creation")
}

func TestSendRejectsBadUserId(t *testing.T) {
	router, _, _ := newRouter(t, alwaysOpenSchedule())

	_, err := router.Send(context.Background(), &dto.SendMessageRequest{
		Message: "hola",
		UserId:  "not-a-uuid",
	})
	require.Error(t, err)

	var fiberErr *fiber.Error
	require.ErrorAs(t, err, &fiberErr)
	assert.Equal(t, fiber.StatusBadRequest, fiberErr.Code)
}
