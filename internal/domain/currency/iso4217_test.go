package currency

import (
	"testing"

	"ecomm-gateway/internal/controller/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_NumericCode(t *testing.T) {
	t.Parallel()

	lookup := NewLookup()

	t.Run("should map alpha codes to ISO 4217 numeric codes", func(t *testing.T) {
		testCases := []struct {
			alpha string
			want  string
		}{
			{"USD", "840"},
			{"EUR", "978"},
			{"GEL", "981"},
			{"GBP", "826"},
			{"JPY", "392"},
		}

		for _, tc := range testCases {
			got, err := lookup.NumericCode(tc.alpha)
			require.NoError(t, err, tc.alpha)
			assert.Equal(t, tc.want, got, tc.alpha)
		}
	})

	t.Run("should be case-insensitive", func(t *testing.T) {
		got, err := lookup.NumericCode("usd")

		require.NoError(t, err)
		assert.Equal(t, "840", got)
	})

	t.Run("should reject an unknown code", func(t *testing.T) {
		_, err := lookup.NumericCode("XXX")

		assert.ErrorIs(t, err, apperror.ErrUnknownCurrency)
	})

	t.Run("should reject an empty code", func(t *testing.T) {
		_, err := lookup.NumericCode("")

		assert.ErrorIs(t, err, apperror.ErrUnknownCurrency)
	})
}
