package catalog

import (
	"context"

	domain "github.com/BruksfildServices01/pro-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/pro-booking/internal/httperr"
	"github.com/BruksfildServices01/pro-booking/internal/models"
)

type ListServices struct {
	repo domain.Repository
}

func NewListServices(repo domain.Repository) *ListServices {
	return &ListServices{repo: repo}
}

// All devolve o catálogo completo (ativos e inativos) para o próprio
// profissional.
func (uc *ListServices) All(
	ctx context.Context,
	professionalID uint,
) ([]models.ProfessionalService, error) {

	if err := uc.ensureProfessional(ctx, professionalID); err != nil {
		return nil, err
	}
	return uc.repo.ListServices(ctx, professionalID)
}

// Active devolve os serviços ativos já resolvidos (duração, preço e
// descrição efetivos).
func (uc *ListServices) Active(
	ctx context.Context,
	professionalID uint,
) ([]domain.Resolved, error) {

	if err := uc.ensureProfessional(ctx, professionalID); err != nil {
		return nil, err
	}

	services, err := uc.repo.ListServices(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Resolved, 0, len(services))
	for i := range services {
		if !services[i].IsActive {
			continue
		}
		out = append(out, domain.Resolve(services[i].ServiceTemplate.Name, &services[i], nil))
	}
	return out, nil
}

func (uc *ListServices) ensureProfessional(ctx context.Context, professionalID uint) error {
	ok, err := uc.repo.ProfessionalExists(ctx, professionalID)
	if err != nil {
		return err
	}
	if !ok {
		return httperr.NotFoundErr("professional_not_found")
	}
	return nil
}
