package service

import (
	"context"

	"eventdeck/internal/model"
	"eventdeck/internal/repository"
)

type EventService interface {
	List(ctx context.Context) ([]*model.Event, error)
	ListUpcoming(ctx context.Context) ([]*model.Event, error)
	GetBySlug(ctx context.Context, slug string) (*model.Event, error)
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	UpdateBySlug(ctx context.Context, slug string, params model.UpdateEventParams) (*model.Event, error)
}

type EventServiceImpl struct {
	repo repository.EventRepository
}

func NewEventService(repo repository.EventRepository) EventService {
	return &EventServiceImpl{repo: repo}
}

func (s *EventServiceImpl) List(ctx context.Context) ([]*model.Event, error) {
	return s.repo.List(ctx)
}

func (s *EventServiceImpl) ListUpcoming(ctx context.Context) ([]*model.Event, error) {
	return s.repo.FindUpcoming(ctx)
}

func (s *EventServiceImpl) GetBySlug(ctx context.Context, slug string) (*model.Event, error) {
	return s.repo.FindBySlug(ctx, slug)
}

func (s *EventServiceImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	if err := event.ValidateAndNormalize(false); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, event)
}

// UpdateBySlug 套用部分更新後重跑完整的驗證與正規化，再 persist。
// 標題有變動時 slug 會重新推導。
func (s *EventServiceImpl) UpdateBySlug(ctx context.Context, slug string, params model.UpdateEventParams) (*model.Event, error) {
	event, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	titleChanged := applyEventParams(event, params)
	if err := event.ValidateAndNormalize(titleChanged); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, event)
}

func applyEventParams(event *model.Event, params model.UpdateEventParams) (titleChanged bool) {
	if params.Title != nil && *params.Title != event.Title {
		event.Title = *params.Title
		titleChanged = true
	}
	if params.Description != nil {
		event.Description = *params.Description
	}
	if params.Overview != nil {
		event.Overview = *params.Overview
	}
	if params.Image != nil {
		event.Image = *params.Image
	}
	if params.Venue != nil {
		event.Venue = *params.Venue
	}
	if params.Location != nil {
		event.Location = *params.Location
	}
	if params.Date != nil {
		event.Date = *params.Date
	}
	if params.Time != nil {
		event.Time = *params.Time
	}
	if params.Mode != nil {
		event.Mode = *params.Mode
	}
	if params.Audience != nil {
		event.Audience = *params.Audience
	}
	if params.Agenda != nil {
		event.Agenda = params.Agenda
	}
	if params.Organizer != nil {
		event.Organizer = *params.Organizer
	}
	if params.Tags != nil {
		event.Tags = params.Tags
	}
	return titleChanged
}
