package catalog

import "github.com/BruksfildServices01/pro-booking/internal/models"

const (
	// FallbackDurationMinutes é usado quando o nome não existe no catálogo.
	FallbackDurationMinutes = 30

	// DefaultTemplateDurationMinutes é a duração de templates novos.
	DefaultTemplateDurationMinutes = 45
)

type Source string

const (
	SourceOverride Source = "professional"
	SourceTemplate Source = "template"
	SourceFallback Source = "fallback"
)

// Resolved é o serviço efetivo de um profissional. Price nil = indefinido.
type Resolved struct {
	Name            string   `json:"name"`
	DurationMinutes int      `json:"duration_minutes"`
	Price           *float64 `json:"price"`
	Description     string   `json:"description"`
	Source          Source   `json:"source"`
}

// EffectiveDuration: duração customizada se houver, senão a do template.
func EffectiveDuration(ps *models.ProfessionalService) int {
	if ps.CustomDuration != nil && *ps.CustomDuration > 0 {
		return *ps.CustomDuration
	}
	return templateDuration(&ps.ServiceTemplate)
}

// EffectiveDescription: descrição customizada se não vazia, senão a do template.
func EffectiveDescription(ps *models.ProfessionalService) string {
	if ps.CustomDescription != "" {
		return ps.CustomDescription
	}
	return ps.ServiceTemplate.Description
}

// Resolve aplica a ordem: personalização ativa → template → fallback.
// O casamento por nome é exato (case-sensitive) e feito pelo repositório.
func Resolve(name string, override *models.ProfessionalService, template *models.ServiceTemplate) Resolved {
	if override != nil && override.IsActive {
		price := override.PriceAdjustment
		return Resolved{
			Name:            name,
			DurationMinutes: EffectiveDuration(override),
			Price:           &price,
			Description:     EffectiveDescription(override),
			Source:          SourceOverride,
		}
	}

	if template != nil {
		price := template.BasePrice
		return Resolved{
			Name:            name,
			DurationMinutes: templateDuration(template),
			Price:           &price,
			Description:     template.Description,
			Source:          SourceTemplate,
		}
	}

	return Resolved{
		Name:            name,
		DurationMinutes: FallbackDurationMinutes,
		Source:          SourceFallback,
	}
}

func templateDuration(t *models.ServiceTemplate) int {
	if t.DefaultDurationMinutes > 0 {
		return t.DefaultDurationMinutes
	}
	return DefaultTemplateDurationMinutes
}

// PriceRange calcula min/max dos preços dos serviços ativos.
func PriceRange(services []models.ProfessionalService) (min, max *float64) {
	for _, s := range services {
		if !s.IsActive {
			continue
		}
		p := s.PriceAdjustment
		if min == nil || p < *min {
			v := p
			min = &v
		}
		if max == nil || p > *max {
			v := p
			max = &v
		}
	}
	return min, max
}
