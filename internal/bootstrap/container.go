package bootstrap

import (
	"fmt"

	"magiars-be/internal/config"
	"magiars-be/internal/controller"
	"magiars-be/internal/pkg/logger"
	"magiars-be/internal/pkg/mailer"
	"magiars-be/internal/repository/unitofwork"
	"magiars-be/internal/service"
	"magiars-be/pkg/chatbot"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	MessageController       controller.IMessageController
	ConversationController  controller.IConversationController
	EscalationController    controller.IEscalationController
	RatingController        controller.IRatingController
	BusinessHoursController controller.IBusinessHoursController
	IntegrationController   controller.IIntegrationController
	AuthController          controller.IAuthController
	HealthController        controller.IHealthController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.App.SupportInbox,
	)

	chatbotClient := chatbot.NewClient(cfg.Keys.GoogleGemini, func(format string, args ...interface{}) {
		sysLogger.Warn("chatbot", "Gemini request failed", map[string]interface{}{
			"detail": fmt.Sprintf(format, args...),
		})
	})

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)

	// 3. Services
	publisherService := service.NewPublisherService(pubSub)
	consumerService := service.NewConsumerService(pubSub, uowFactory, emailService, sysLogger)

	hoursService := service.NewBusinessHoursService(uowFactory, sysLogger)
	escalationService := service.NewEscalationService(uowFactory, publisherService, sysLogger)
	messageService := service.NewMessageService(uowFactory, chatbotClient, hoursService, escalationService, sysLogger)
	conversationService := service.NewConversationService(uowFactory)
	ratingService := service.NewRatingService(uowFactory, sysLogger)
	integrationService := service.NewIntegrationService(uowFactory)
	authService := service.NewAuthService(uowFactory, cfg, sysLogger)

	// 4. Controllers
	return &Container{
		MessageController:       controller.NewMessageController(messageService),
		ConversationController:  controller.NewConversationController(conversationService),
		EscalationController:    controller.NewEscalationController(escalationService),
		RatingController:        controller.NewRatingController(ratingService),
		BusinessHoursController: controller.NewBusinessHoursController(hoursService),
		IntegrationController:   controller.NewIntegrationController(integrationService),
		AuthController:          controller.NewAuthController(authService, cfg.App.ClientURL, cfg.App.JWTSecret),
		HealthController:        controller.NewHealthController(sysLogger),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
