package service_test

import (
	"context"
	"errors"
	"testing"

	"eventdeck/internal/model"
	repoMocks "eventdeck/internal/repository/mocks"
	"eventdeck/internal/service"
	apperrors "eventdeck/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func draftEvent() *model.Event {
	return &model.Event{
		Title:       "Go Conference 2026",
		Description: "Two days of Go talks",
		Overview:    "The annual Go conference",
		Image:       "https://cdn.example.com/events/go-conf.png",
		Venue:       "Taipei International Convention Center",
		Location:    "Taipei",
		Date:        "September 12, 2026",
		Time:        "9:00 AM",
		Mode:        model.ModeHybrid,
		Audience:    "Go developers",
		Organizer:   "Golang Taiwan",
	}
}

func TestEventService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - repo receives normalized event", func(t *testing.T) {
		repo := repoMocks.NewEventRepositoryMock()
		eventService := service.NewEventService(repo)

		repo.On("Create", ctx, mock.MatchedBy(func(e *model.Event) bool {
			return e.Slug == "go-conference-2026" && e.Date == "2026-09-12" && e.Time == "09:00"
		})).Return(draftEvent(), nil).Once()

		_, err := eventService.Create(ctx, draftEvent())

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Failed - invalid draft never reaches the repo", func(t *testing.T) {
		repo := repoMocks.NewEventRepositoryMock()
		eventService := service.NewEventService(repo)

		event := draftEvent()
		event.Time = "25:00"

		_, err := eventService.Create(ctx, event)

		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("Failed - duplicate slug surfaces as conflict", func(t *testing.T) {
		repo := repoMocks.NewEventRepositoryMock()
		eventService := service.NewEventService(repo)

		repo.On("Create", ctx, mock.Anything).Return(nil, apperrors.ErrDuplicateSlug).Once()

		_, err := eventService.Create(ctx, draftEvent())

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrDuplicateSlug)
		repo.AssertExpectations(t)
	})
}

func TestEventService_UpdateBySlug(t *testing.T) {
	ctx := context.Background()

	persisted := func() *model.Event {
		event := draftEvent()
		require.NoError(t, event.ValidateAndNormalize(false))
		return event
	}

	t.Run("Success - title change re-derives slug", func(t *testing.T) {
		repo := repoMocks.NewEventRepositoryMock()
		eventService := service.NewEventService(repo)

		repo.On("FindBySlug", ctx, "go-conference-2026").Return(persisted(), nil).Once()
		repo.On("Update", ctx, mock.MatchedBy(func(e *model.Event) bool {
			return e.Slug == "gophercon-taiwan" && e.Title == "GopherCon Taiwan"
		})).Return(persisted(), nil).Once()

		newTitle := "GopherCon Taiwan"
		_, err := eventService.UpdateBySlug(ctx, "go-conference-2026", model.UpdateEventParams{Title: &newTitle})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Success - untouched fields keep the slug", func(t *testing.T) {
		repo := repoMocks.NewEventRepositoryMock()
		eventService := service.NewEventService(repo)

		repo.On("FindBySlug", ctx, "go-conference-2026").Return(persisted(), nil).Once()
		repo.On("Update", ctx, mock.MatchedBy(func(e *model.Event) bool {
			return e.Slug == "go-conference-2026" && e.Venue == "New Venue"
		})).Return(persisted(), nil).Once()

		venue := "New Venue"
		_, err := eventService.UpdateBySlug(ctx, "go-conference-2026", model.UpdateEventParams{Venue: &venue})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Success - touched date is re-normalized", func(t *testing.T) {
		repo := repoMocks.NewEventRepositoryMock()
		eventService := service.NewEventService(repo)

		repo.On("FindBySlug", ctx, "go-conference-2026").Return(persisted(), nil).Once()
		repo.On("Update", ctx, mock.MatchedBy(func(e *model.Event) bool {
			return e.Date == "2026-10-01" && e.Time == "14:30"
		})).Return(persisted(), nil).Once()

		date, timeStr := "October 1, 2026", "2:30 PM"
		_, err := eventService.UpdateBySlug(ctx, "go-conference-2026", model.UpdateEventParams{Date: &date, Time: &timeStr})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Failed - event not found", func(t *testing.T) {
		repo := repoMocks.NewEventRepositoryMock()
		eventService := service.NewEventService(repo)

		repo.On("FindBySlug", ctx, "missing").Return(nil, apperrors.ErrEventNotFound).Once()

		_, err := eventService.UpdateBySlug(ctx, "missing", model.UpdateEventParams{})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
		repo.AssertNotCalled(t, "Update")
	})

	t.Run("Failed - invalid update never persisted", func(t *testing.T) {
		repo := repoMocks.NewEventRepositoryMock()
		eventService := service.NewEventService(repo)

		repo.On("FindBySlug", ctx, "go-conference-2026").Return(persisted(), nil).Once()

		bad := "13:61"
		_, err := eventService.UpdateBySlug(ctx, "go-conference-2026", model.UpdateEventParams{Time: &bad})

		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
		repo.AssertNotCalled(t, "Update")
	})

	t.Run("Failed - repo error propagates", func(t *testing.T) {
		repo := repoMocks.NewEventRepositoryMock()
		eventService := service.NewEventService(repo)

		repo.On("FindBySlug", ctx, "go-conference-2026").Return(nil, errors.New("db error")).Once()

		_, err := eventService.UpdateBySlug(ctx, "go-conference-2026", model.UpdateEventParams{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "db error")
	})
}
