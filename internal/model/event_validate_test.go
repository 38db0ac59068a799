package model

import (
	"strings"
	"testing"

	apperrors "eventdeck/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEvent() *Event {
	return &Event{
		Title:       "Go Conference 2026",
		Description: "Two days of Go talks",
		Overview:    "The annual Go conference",
		Image:       "https://cdn.example.com/events/go-conf.png",
		Venue:       "Taipei International Convention Center",
		Location:    "Taipei",
		Date:        "2026-09-12",
		Time:        "9:00",
		Mode:        ModeOffline,
		Audience:    "Go developers",
		Agenda:      []string{"Opening keynote", "Generics in practice"},
		Organizer:   "Golang Taiwan",
		Tags:        []string{"go", "conference"},
	}
}

func TestSlugify(t *testing.T) {
	t.Run("Lowercases and hyphenates", func(t *testing.T) {
		assert.Equal(t, "go-conference-2026", Slugify("Go Conference 2026"))
	})

	t.Run("Collapses runs of non-alphanumerics", func(t *testing.T) {
		assert.Equal(t, "kubecon-cloudnativecon", Slugify("KubeCon + CloudNativeCon"))
	})

	t.Run("Strips leading and trailing hyphens", func(t *testing.T) {
		assert.Equal(t, "hello-world", Slugify("  --Hello, World!--  "))
	})

	t.Run("Idempotent", func(t *testing.T) {
		titles := []string{"Go Conference 2026", "WWDC 2025", "ETHGlobal Hackathon (Paris)", "DEF CON 33"}
		for _, title := range titles {
			slug := Slugify(title)
			assert.Equal(t, slug, Slugify(slug))
			assert.True(t, IsValidSlug(slug), "slug %q should be valid", slug)
		}
	})
}

func TestNormalizeDate(t *testing.T) {
	t.Run("Already normalized", func(t *testing.T) {
		date, err := NormalizeDate("2026-09-12")
		require.NoError(t, err)
		assert.Equal(t, "2026-09-12", date)
	})

	t.Run("Keeps only the calendar date portion", func(t *testing.T) {
		date, err := NormalizeDate("2026-09-12T18:30:00Z")
		require.NoError(t, err)
		assert.Equal(t, "2026-09-12", date)
		assert.Len(t, date, 10)
	})

	t.Run("Human-friendly formats", func(t *testing.T) {
		date, err := NormalizeDate("September 12, 2026")
		require.NoError(t, err)
		assert.Equal(t, "2026-09-12", date)

		date, err = NormalizeDate("2026/09/12")
		require.NoError(t, err)
		assert.Equal(t, "2026-09-12", date)
	})

	t.Run("Unparseable input fails with validation error", func(t *testing.T) {
		_, err := NormalizeDate("not a date")
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestNormalizeTime(t *testing.T) {
	t.Run("Zero-pads 24h input", func(t *testing.T) {
		got, err := NormalizeTime("9:00")
		require.NoError(t, err)
		assert.Equal(t, "09:00", got)
	})

	t.Run("Converts PM", func(t *testing.T) {
		got, err := NormalizeTime("9:00 PM")
		require.NoError(t, err)
		assert.Equal(t, "21:00", got)
	})

	t.Run("12 AM is midnight", func(t *testing.T) {
		got, err := NormalizeTime("12:00 AM")
		require.NoError(t, err)
		assert.Equal(t, "00:00", got)
	})

	t.Run("12 PM stays noon", func(t *testing.T) {
		got, err := NormalizeTime("12:00 PM")
		require.NoError(t, err)
		assert.Equal(t, "12:00", got)
	})

	t.Run("Case-insensitive period without space", func(t *testing.T) {
		got, err := NormalizeTime("7:30pm")
		require.NoError(t, err)
		assert.Equal(t, "19:30", got)
	})

	t.Run("Invalid minutes", func(t *testing.T) {
		_, err := NormalizeTime("13:61")
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("Invalid hours", func(t *testing.T) {
		_, err := NormalizeTime("25:00")
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("Invalid pattern", func(t *testing.T) {
		_, err := NormalizeTime("around nine")
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestValidateAndNormalize(t *testing.T) {
	t.Run("Normalizes a valid draft", func(t *testing.T) {
		event := validEvent()
		require.NoError(t, event.ValidateAndNormalize(false))

		assert.Equal(t, "go-conference-2026", event.Slug)
		assert.Equal(t, "2026-09-12", event.Date)
		assert.Equal(t, "09:00", event.Time)
	})

	t.Run("Missing required field names the field", func(t *testing.T) {
		event := validEvent()
		event.Venue = "   "

		err := event.ValidateAndNormalize(false)
		require.Error(t, err)

		var ve *apperrors.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "venue", ve.Field)
	})

	t.Run("Field over max length names the field", func(t *testing.T) {
		event := validEvent()
		event.Title = strings.Repeat("x", 201)

		var ve *apperrors.ValidationError
		require.ErrorAs(t, event.ValidateAndNormalize(false), &ve)
		assert.Equal(t, "title", ve.Field)
	})

	t.Run("Invalid mode", func(t *testing.T) {
		event := validEvent()
		event.Mode = "in-person"

		var ve *apperrors.ValidationError
		require.ErrorAs(t, event.ValidateAndNormalize(false), &ve)
		assert.Equal(t, "mode", ve.Field)
	})

	t.Run("Blank agenda entry names the array field", func(t *testing.T) {
		event := validEvent()
		event.Agenda = []string{"Opening keynote", "  "}

		var ve *apperrors.ValidationError
		require.ErrorAs(t, event.ValidateAndNormalize(false), &ve)
		assert.Equal(t, "agenda", ve.Field)
	})

	t.Run("Blank tag names the array field", func(t *testing.T) {
		event := validEvent()
		event.Tags = []string{""}

		var ve *apperrors.ValidationError
		require.ErrorAs(t, event.ValidateAndNormalize(false), &ve)
		assert.Equal(t, "tags", ve.Field)
	})

	t.Run("Empty arrays pass", func(t *testing.T) {
		event := validEvent()
		event.Agenda = nil
		event.Tags = []string{}
		require.NoError(t, event.ValidateAndNormalize(false))
	})

	t.Run("Trims array elements", func(t *testing.T) {
		event := validEvent()
		event.Tags = []string{" go ", "conference"}
		require.NoError(t, event.ValidateAndNormalize(false))
		assert.Equal(t, []string{"go", "conference"}, event.Tags)
	})

	t.Run("Keeps existing slug when title unchanged", func(t *testing.T) {
		event := validEvent()
		event.Slug = "custom-slug"
		require.NoError(t, event.ValidateAndNormalize(false))
		assert.Equal(t, "custom-slug", event.Slug)
	})

	t.Run("Re-derives slug when title changed", func(t *testing.T) {
		event := validEvent()
		event.Slug = "custom-slug"
		event.Title = "Renamed Conference"
		require.NoError(t, event.ValidateAndNormalize(true))
		assert.Equal(t, "renamed-conference", event.Slug)
	})

	t.Run("Rejects malformed preset slug", func(t *testing.T) {
		event := validEvent()
		event.Slug = "Not A Slug"

		var ve *apperrors.ValidationError
		require.ErrorAs(t, event.ValidateAndNormalize(false), &ve)
		assert.Equal(t, "slug", ve.Field)
	})

	t.Run("Re-running normalization is a no-op", func(t *testing.T) {
		event := validEvent()
		require.NoError(t, event.ValidateAndNormalize(false))

		slug, date, timeStr := event.Slug, event.Date, event.Time
		require.NoError(t, event.ValidateAndNormalize(false))
		assert.Equal(t, slug, event.Slug)
		assert.Equal(t, date, event.Date)
		assert.Equal(t, timeStr, event.Time)
	})

	t.Run("Invalid date rejected", func(t *testing.T) {
		event := validEvent()
		event.Date = "next friday"
		require.Error(t, event.ValidateAndNormalize(false))
	})

	t.Run("created_by over max length", func(t *testing.T) {
		event := validEvent()
		event.CreatedBy = strings.Repeat("x", 201)

		var ve *apperrors.ValidationError
		require.ErrorAs(t, event.ValidateAndNormalize(false), &ve)
		assert.Equal(t, "created_by", ve.Field)
	})
}
