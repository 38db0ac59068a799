package service

import (
	"context"
	"errors"
	"strings"

	"eventdeck/internal/cache"
	"eventdeck/internal/model"
	"eventdeck/internal/repository"
	apperrors "eventdeck/pkg/app_errors"
	"eventdeck/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type BookingService interface {
	Create(ctx context.Context, eventID primitive.ObjectID, email string) (*model.Booking, error)
	ListByEvent(ctx context.Context, eventID primitive.ObjectID) ([]*model.Booking, error)
	ListByEmail(ctx context.Context, email string) ([]*model.Booking, error)
	CountByEvent(ctx context.Context, eventID primitive.ObjectID) (int64, error)
}

type BookingServiceImpl struct {
	repo      repository.BookingRepository
	eventRepo repository.EventRepository
	counter   cache.BookingCounter
}

func NewBookingService(repo repository.BookingRepository, eventRepo repository.EventRepository, counter cache.BookingCounter) BookingService {
	return &BookingServiceImpl{repo: repo, eventRepo: eventRepo, counter: counter}
}

// Create 先驗證 email 格式，再確認被參照的活動存在，才寫入。
// 參照不存在回傳 ErrEventReferenceNotFound，與格式錯誤區分。
func (s *BookingServiceImpl) Create(ctx context.Context, eventID primitive.ObjectID, email string) (*model.Booking, error) {
	normalized, err := model.NormalizeEmail(email)
	if err != nil {
		return nil, err
	}

	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		if errors.Is(err, apperrors.ErrEventNotFound) {
			return nil, apperrors.ErrEventReferenceNotFound
		}
		return nil, err
	}

	booking := &model.Booking{EventID: eventID, Email: normalized}
	created, err := s.repo.Create(ctx, booking)
	if err != nil {
		return nil, err
	}

	if s.counter != nil {
		if err := s.counter.Incr(ctx, eventID.Hex()); err != nil {
			// 快取失敗不影響已成功的報名
			logger.WithComponent("service").Warn("Failed to bump booking count cache",
				zap.String("event_id", eventID.Hex()), zap.Error(err))
		}
	}
	return created, nil
}

func (s *BookingServiceImpl) ListByEvent(ctx context.Context, eventID primitive.ObjectID) ([]*model.Booking, error) {
	return s.repo.FindByEventID(ctx, eventID)
}

func (s *BookingServiceImpl) ListByEmail(ctx context.Context, email string) ([]*model.Booking, error) {
	return s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

// CountByEvent 先查快取，未命中或快取故障時改查 Mongo 並回填
func (s *BookingServiceImpl) CountByEvent(ctx context.Context, eventID primitive.ObjectID) (int64, error) {
	key := eventID.Hex()

	if s.counter != nil {
		count, ok, err := s.counter.Get(ctx, key)
		if err != nil {
			logger.WithComponent("service").Warn("Booking count cache read failed",
				zap.String("event_id", key), zap.Error(err))
		} else if ok {
			return count, nil
		}
	}

	count, err := s.repo.CountByEventID(ctx, eventID)
	if err != nil {
		return 0, err
	}

	if s.counter != nil {
		if err := s.counter.Set(ctx, key, count); err != nil {
			logger.WithComponent("service").Warn("Booking count cache prime failed",
				zap.String("event_id", key), zap.Error(err))
		}
	}
	return count, nil
}
