package review

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/pro-booking/internal/httperr"
)

func TestValidateRating(t *testing.T) {
	for _, r := range []int{1, 3, 5} {
		assert.NoError(t, ValidateRating(r))
	}
	for _, r := range []int{0, 6, -1} {
		assert.True(t, httperr.IsKind(ValidateRating(r), httperr.KindValidation), "rating=%d", r)
	}
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, RatingSummary{}, Summarize(nil))

	s := Summarize([]int{5, 4, 3})
	assert.Equal(t, 3, s.Total)
	assert.InDelta(t, 4.0, s.Average, 1e-9)
}
