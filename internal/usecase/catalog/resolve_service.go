package catalog

import (
	"context"
	"fmt"

	domain "github.com/BruksfildServices01/pro-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/pro-booking/internal/httperr"
)

type ResolveService struct {
	repo domain.Repository
}

func NewResolveService(repo domain.Repository) *ResolveService {
	return &ResolveService{repo: repo}
}

// Execute devolve duração, preço e descrição efetivos do serviço para o
// profissional: personalização ativa → template → fallback.
func (uc *ResolveService) Execute(
	ctx context.Context,
	professionalID uint,
	name string,
) (domain.Resolved, error) {

	if name == "" {
		return domain.Resolved{}, httperr.Validation("missing_service_name")
	}

	override, err := uc.repo.FindActiveOverride(ctx, professionalID, name)
	if err != nil {
		return domain.Resolved{}, fmt.Errorf("find override: %w", err)
	}

	if override != nil {
		return domain.Resolve(name, override, nil), nil
	}

	tpl, err := uc.repo.FindTemplate(ctx, name)
	if err != nil {
		return domain.Resolved{}, fmt.Errorf("find template: %w", err)
	}

	return domain.Resolve(name, nil, tpl), nil
}
