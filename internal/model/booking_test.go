package model

import (
	"strings"
	"testing"

	apperrors "eventdeck/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	t.Run("Lowercases and trims", func(t *testing.T) {
		email, err := NormalizeEmail("  Alice@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", email)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := NormalizeEmail("   ")
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("Missing domain", func(t *testing.T) {
		_, err := NormalizeEmail("alice@")
		require.Error(t, err)
	})

	t.Run("Missing TLD dot", func(t *testing.T) {
		_, err := NormalizeEmail("alice@localhost")
		require.Error(t, err)
	})

	t.Run("Contains whitespace", func(t *testing.T) {
		_, err := NormalizeEmail("alice smith@example.com")
		require.Error(t, err)
	})

	t.Run("Over max length", func(t *testing.T) {
		local := strings.Repeat("a", 250)
		_, err := NormalizeEmail(local + "@example.com")
		require.Error(t, err)

		var ve *apperrors.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "email", ve.Field)
	})
}
