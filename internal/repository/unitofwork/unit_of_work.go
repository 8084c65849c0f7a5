package unitofwork

import (
	"context"

	"magiars-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ConversationRepository() contract.ConversationRepository
	MessageRepository() contract.MessageRepository
	IntegrationRepository() contract.IntegrationRepository
	EscalationRepository() contract.EscalationRepository
	RatingRepository() contract.RatingRepository
	BusinessHoursRepository() contract.BusinessHoursRepository
}
