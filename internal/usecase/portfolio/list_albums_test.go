package portfolio

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/pro-booking/internal/infra/repository"
	"github.com/BruksfildServices01/pro-booking/internal/infra/storage"
	"github.com/BruksfildServices01/pro-booking/internal/models"
	"github.com/BruksfildServices01/pro-booking/internal/testutil"
)

func TestListAlbumsResolvesPhotoURLs(t *testing.T) {
	gdb := testutil.NewDB(t)
	p := testutil.SeedProfessional(t, gdb, "Ana")

	album := models.Album{
		ProfessionalID: p.ID,
		Title:          "Cortes",
		Photos: []models.Photo{
			{ImageKey: "albums/1/b.webp", Position: 2},
			{ImageKey: "albums/1/a.webp", Position: 1, Caption: "degradê"},
		},
	}
	require.NoError(t, gdb.Create(&album).Error)

	uc := NewListAlbums(
		repository.NewPortfolioGormRepository(gdb),
		storage.NewPrefixImages("https://cdn.example.com"),
	)

	albums, err := uc.Execute(context.Background(), p.ID)
	require.NoError(t, err)
	require.Len(t, albums, 1)
	require.Len(t, albums[0].Photos, 2)

	assert.Equal(t, "https://cdn.example.com/albums/1/a.webp", albums[0].Photos[0].URL)
	assert.Equal(t, "degradê", albums[0].Photos[0].Caption)
	assert.Equal(t, 2, albums[0].Photos[1].Position)

	empty, err := uc.Execute(context.Background(), 999)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
