package service

import (
	"context"
	"math"
	"time"

	"magiars-be/internal/dto"
	"magiars-be/internal/entity"
	"magiars-be/internal/pkg/logger"
	"magiars-be/internal/repository/specification"
	"magiars-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type RatingFilters struct {
	UserId          *uuid.UUID
	ConversationKey string
}

type IRatingService interface {
	Create(ctx context.Context, req *dto.CreateRatingRequest) (*dto.RatingResponse, error)
	List(ctx context.Context, filters RatingFilters) ([]dto.RatingResponse, error)
	Stats(ctx context.Context, userId *uuid.UUID) (*dto.RatingStatsResponse, error)
}

type ratingService struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewRatingService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IRatingService {
	return &ratingService{uowFactory: uowFactory, log: log}
}

func (s *ratingService) Create(ctx context.Context, req *dto.CreateRatingRequest) (*dto.RatingResponse, error) {
	userId, err := uuid.Parse(req.UserId)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid userId")
	}

	rating := &entity.Rating{
		ConversationId: req.ConversationId,
		UserId:         userId,
		Rating:         req.Rating,
		Comment:        req.Comment,
		Timestamp:      time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.RatingRepository().Create(ctx, rating); err != nil {
		return nil, err
	}

	s.log.Info("ratings", "Rating recorded", map[string]interface{}{
		"conversation_id": rating.ConversationId,
		"rating":          rating.Rating,
	})

	return toRatingResponse(rating), nil
}

func (s *ratingService) List(ctx context.Context, filters RatingFilters) ([]dto.RatingResponse, error) {
	specs := []specification.Specification{
		specification.OrderBy{Field: "timestamp", Desc: true},
	}
	if filters.UserId != nil {
		specs = append(specs, specification.ByUserId{UserId: *filters.UserId})
	}
	if filters.ConversationKey != "" {
		specs = append(specs, specification.ByConversationKey{Key: filters.ConversationKey})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	ratings, err := uow.RatingRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.RatingResponse, 0, len(ratings))
	for _, rating := range ratings {
		responses = append(responses, *toRatingResponse(rating))
	}
	return responses, nil
}

func (s *ratingService) Stats(ctx context.Context, userId *uuid.UUID) (*dto.RatingStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	stats, err := uow.RatingRepository().Stats(ctx, userId)
	if err != nil {
		return nil, err
	}

	return &dto.RatingStatsResponse{
		Average: math.Round(stats.Average*100) / 100,
		Total:   stats.Total,
	}, nil
}

func toRatingResponse(rating *entity.Rating) *dto.RatingResponse {
	return &dto.RatingResponse{
		Id:             rating.Id,
		ConversationId: rating.ConversationId,
		UserId:         rating.UserId.String(),
		Rating:         rating.Rating,
		Comment:        rating.Comment,
		Timestamp:      rating.Timestamp,
	}
}
