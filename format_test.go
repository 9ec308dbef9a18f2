package revlens_test

import (
	"testing"

	"github.com/reviewlens/revlens"
	"github.com/stretchr/testify/assert"
)

func TestFormatReviews(t *testing.T) {
	t.Parallel()

	t.Run("formats single review", func(t *testing.T) {
		t.Parallel()

		result := revlens.FormatReviews([]string{"Great battery life"})

		assert.Equal(t, "- Great battery life", result)
	})

	t.Run("formats multiple reviews on separate lines", func(t *testing.T) {
		t.Parallel()

		result := revlens.FormatReviews([]string{"First review", "Second review"})

		assert.Equal(t, "- First review\n- Second review", result)
	})

	t.Run("returns empty string for empty slice", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, revlens.FormatReviews([]string{}))
	})

	t.Run("returns empty string for nil slice", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, revlens.FormatReviews(nil))
	})
}
