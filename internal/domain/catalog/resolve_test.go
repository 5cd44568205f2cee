package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/pro-booking/internal/models"
)

func intPtr(v int) *int { return &v }

func TestResolveOrder(t *testing.T) {
	tpl := &models.ServiceTemplate{Name: "Corte", BasePrice: 40, DefaultDurationMinutes: 45, Description: "corte padrão"}

	t.Run("active override wins", func(t *testing.T) {
		ps := &models.ProfessionalService{
			ServiceTemplate: *tpl,
			PriceAdjustment: 55,
			CustomDuration:  intPtr(60),
			IsActive:        true,
		}

		r := Resolve("Corte", ps, tpl)
		assert.Equal(t, SourceOverride, r.Source)
		assert.Equal(t, 60, r.DurationMinutes)
		require.NotNil(t, r.Price)
		assert.InDelta(t, 55, *r.Price, 1e-9)
		assert.Equal(t, "corte padrão", r.Description)
	})

	t.Run("override without custom duration uses template", func(t *testing.T) {
		ps := &models.ProfessionalService{ServiceTemplate: *tpl, IsActive: true, CustomDescription: "degradê"}

		r := Resolve("Corte", ps, tpl)
		assert.Equal(t, 45, r.DurationMinutes)
		assert.Equal(t, "degradê", r.Description)
	})

	t.Run("inactive override falls to template", func(t *testing.T) {
		ps := &models.ProfessionalService{ServiceTemplate: *tpl, CustomDuration: intPtr(90), IsActive: false}

		r := Resolve("Corte", ps, tpl)
		assert.Equal(t, SourceTemplate, r.Source)
		assert.Equal(t, 45, r.DurationMinutes)
	})

	t.Run("unknown name falls back", func(t *testing.T) {
		r := Resolve("Massagem", nil, nil)
		assert.Equal(t, SourceFallback, r.Source)
		assert.Equal(t, FallbackDurationMinutes, r.DurationMinutes)
		assert.Nil(t, r.Price)
	})
}

func TestPriceRangeIgnoresInactive(t *testing.T) {
	min, max := PriceRange([]models.ProfessionalService{
		{PriceAdjustment: 30, IsActive: true},
		{PriceAdjustment: 80, IsActive: true},
		{PriceAdjustment: 10, IsActive: false},
	})

	require.NotNil(t, min)
	require.NotNil(t, max)
	assert.InDelta(t, 30, *min, 1e-9)
	assert.InDelta(t, 80, *max, 1e-9)

	min, max = PriceRange(nil)
	assert.Nil(t, min)
	assert.Nil(t, max)
}
