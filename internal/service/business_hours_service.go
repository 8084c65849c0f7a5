package service

import (
	"context"
	"time"

	"magiars-be/internal/dto"
	"magiars-be/internal/entity"
	"magiars-be/internal/pkg/logger"
	"magiars-be/internal/repository/unitofwork"
	"magiars-be/pkg/hours"

	gocache "github.com/patrickmn/go-cache"
)

const businessHoursCacheKey = "business_hours_config"

type IBusinessHoursService interface {
	Get(ctx context.Context) (*dto.BusinessHoursResponse, error)
	Update(ctx context.Context, req *dto.UpdateBusinessHoursRequest) (*dto.BusinessHoursResponse, error)
	// IsAvailable never fails: configuration errors fail open and are logged.
	IsAvailable(ctx context.Context) bool
}

type businessHoursService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
	log        logger.ILogger
}

func NewBusinessHoursService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IBusinessHoursService {
	// The singleton row is read on every inbound message; a short TTL keeps
	// config edits visible without a query per chat turn.
	return &businessHoursService{
		uowFactory: uowFactory,
		cache:      gocache.New(30*time.Second, time.Minute),
		log:        log,
	}
}

func (s *businessHoursService) loadConfig(ctx context.Context) (hours.Config, error) {
	if cached, found := s.cache.Get(businessHoursCacheKey); found {
		return cached.(hours.Config), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	stored, err := uow.BusinessHoursRepository().Get(ctx)
	if err != nil {
		return hours.DefaultConfig(), err
	}

	cfg := hours.DefaultConfig()
	if stored != nil {
		cfg = stored.ToConfig()
	}
	s.cache.SetDefault(businessHoursCacheKey, cfg)
	return cfg, nil
}

func (s *businessHoursService) Get(ctx context.Context) (*dto.BusinessHoursResponse, error) {
	cfg, err := s.loadConfig(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.BusinessHoursResponse{
		Enabled:  cfg.Enabled,
		Timezone: cfg.Timezone,
		Schedule: cfg.Schedule,
	}, nil
}

func (s *businessHoursService) Update(ctx context.Context, req *dto.UpdateBusinessHoursRequest) (*dto.BusinessHoursResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	err := uow.BusinessHoursRepository().Upsert(ctx, &entity.BusinessHours{
		Enabled:  req.Enabled,
		Timezone: req.Timezone,
		Schedule: req.Schedule,
	})
	if err != nil {
		return nil, err
	}

	s.cache.Delete(businessHoursCacheKey)
	return s.Get(ctx)
}

func (s *businessHoursService) IsAvailable(ctx context.Context) bool {
	cfg, err := s.loadConfig(ctx)
	if err != nil {
		// Fail open: an unreadable config must never block the chat.
		s.log.Error("business_hours", "Failed to load config, assuming available", map[string]interface{}{"error": err.Error()})
		return true
	}

	available, err := hours.Evaluate(time.Now(), cfg)
	if err != nil {
		s.log.Warn("business_hours", "Malformed schedule, failing open", map[string]interface{}{"error": err.Error()})
	}
	return available
}
