package service

import (
	"context"

	"magiars-be/internal/dto"
	"magiars-be/internal/entity"
	"magiars-be/internal/repository/specification"
	"magiars-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IIntegrationService interface {
	Create(ctx context.Context, req *dto.CreateIntegrationRequest) (*dto.IntegrationResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateIntegrationRequest) (*dto.IntegrationResponse, error)
	Delete(ctx context.Context, id uint) error
	ListByUser(ctx context.Context, userId string) ([]dto.IntegrationResponse, error)
	TestConnection(ctx context.Context) *dto.TestConnectionResponse
}

type integrationService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewIntegrationService(uowFactory unitofwork.RepositoryFactory) IIntegrationService {
	return &integrationService{uowFactory: uowFactory}
}

func (s *integrationService) Create(ctx context.Context, req *dto.CreateIntegrationRequest) (*dto.IntegrationResponse, error) {
	userId, err := uuid.Parse(req.UserId)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid userId")
	}

	integration := &entity.Integration{
		UserId:     userId,
		Platform:   req.Platform,
		ApiKey:     req.ApiKey,
		WebhookUrl: req.WebhookUrl,
		IsActive:   true,
		Config:     req.Config,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.IntegrationRepository().Create(ctx, integration); err != nil {
		return nil, err
	}
	return toIntegrationResponse(integration), nil
}

func (s *integrationService) Update(ctx context.Context, id uint, req *dto.UpdateIntegrationRequest) (*dto.IntegrationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.IntegrationRepository().FindOne(ctx, specification.Filter("id", id))
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Integration not found")
	}

	existing.Platform = req.Platform
	existing.ApiKey = req.ApiKey
	existing.WebhookUrl = req.WebhookUrl
	existing.IsActive = req.IsActive
	existing.Config = req.Config

	if err := uow.IntegrationRepository().Update(ctx, existing); err != nil {
		return nil, err
	}
	return toIntegrationResponse(existing), nil
}

func (s *integrationService) Delete(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.IntegrationRepository().FindOne(ctx, specification.Filter("id", id))
	if err != nil {
		return err
	}
	if existing == nil {
		return fiber.NewError(fiber.StatusNotFound, "Integration not found")
	}
	return uow.IntegrationRepository().Delete(ctx, id)
}

func (s *integrationService) ListByUser(ctx context.Context, userId string) ([]dto.IntegrationResponse, error) {
	id, err := uuid.Parse(userId)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid userId")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	integrations, err := uow.IntegrationRepository().FindAll(ctx,
		specification.ByUserId{UserId: id},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.IntegrationResponse, 0, len(integrations))
	for _, integration := range integrations {
		responses = append(responses, *toIntegrationResponse(integration))
	}
	return responses, nil
}

// TestConnection is a stub endpoint the settings page polls. No outbound
// call is made for any platform yet.
func (s *integrationService) TestConnection(ctx context.Context) *dto.TestConnectionResponse {
	return &dto.TestConnectionResponse{
		Success: true,
		Message: "Conexión exitosa",
	}
}

func toIntegrationResponse(integration *entity.Integration) *dto.IntegrationResponse {
	config := integration.Config
	if config == nil {
		config = map[string]interface{}{}
	}
	return &dto.IntegrationResponse{
		Id:         integration.Id,
		UserId:     integration.UserId.String(),
		Platform:   integration.Platform,
		ApiKey:     integration.ApiKey,
		WebhookUrl: integration.WebhookUrl,
		IsActive:   integration.IsActive,
		Config:     config,
		CreatedAt:  integration.CreatedAt,
	}
}
