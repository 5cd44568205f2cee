package portfolio

import (
	"context"

	"github.com/BruksfildServices01/pro-booking/internal/dto"
	"github.com/BruksfildServices01/pro-booking/internal/models"
)

type Repository interface {
	ListAlbums(ctx context.Context, professionalID uint) ([]models.Album, error)
}

type ImageURLs interface {
	URL(ctx context.Context, key string) (string, error)
}

type ListAlbums struct {
	repo   Repository
	images ImageURLs
}

func NewListAlbums(repo Repository, images ImageURLs) *ListAlbums {
	return &ListAlbums{repo: repo, images: images}
}

// Execute troca as chaves das fotos por URLs (pré-assinadas quando há S3).
func (uc *ListAlbums) Execute(
	ctx context.Context,
	professionalID uint,
) ([]dto.AlbumDTO, error) {

	albums, err := uc.repo.ListAlbums(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AlbumDTO, 0, len(albums))
	for _, a := range albums {
		item := dto.AlbumDTO{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			Photos:      make([]dto.PhotoDTO, 0, len(a.Photos)),
		}

		for _, p := range a.Photos {
			url, err := uc.images.URL(ctx, p.ImageKey)
			if err != nil {
				return nil, err
			}
			item.Photos = append(item.Photos, dto.PhotoDTO{
				ID:       p.ID,
				URL:      url,
				Caption:  p.Caption,
				Position: p.Position,
			})
		}

		out = append(out, item)
	}

	return out, nil
}
