package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/pro-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/pro-booking/internal/httperr"
	"github.com/BruksfildServices01/pro-booking/internal/models"
	"github.com/BruksfildServices01/pro-booking/internal/testutil"
)

func seedAppointment(t *testing.T, repo *AppointmentGormRepository, profID uint, date, from string, minutes int, status domain.Status) *models.Appointment {
	t.Helper()

	start, err := time.Parse("2006-01-02 15:04", date+" "+from)
	require.NoError(t, err)

	ap := &models.Appointment{
		ProfessionalID:  profID,
		CustomerID:      42,
		Date:            date,
		StartTime:       start,
		EndTime:         start.Add(time.Duration(minutes) * time.Minute),
		ServiceName:     "Corte",
		DurationMinutes: minutes,
		Status:          string(status),
	}
	require.NoError(t, repo.CreateAppointment(context.Background(), ap))
	return ap
}

func TestAppointmentRepositoryActiveForDate(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := NewAppointmentGormRepository(gdb)
	ctx := context.Background()
	p := testutil.SeedProfessional(t, gdb, "Ana")

	seedAppointment(t, repo, p.ID, "2026-03-02", "10:00", 45, domain.StatusScheduled)
	seedAppointment(t, repo, p.ID, "2026-03-02", "09:00", 30, domain.StatusConfirmed)
	seedAppointment(t, repo, p.ID, "2026-03-02", "11:00", 30, domain.StatusCancelled)
	seedAppointment(t, repo, p.ID, "2026-03-02", "12:00", 30, domain.StatusCompleted)
	seedAppointment(t, repo, p.ID, "2026-03-03", "10:00", 30, domain.StatusScheduled)

	apps, err := repo.ListActiveForDate(ctx, p.ID, "2026-03-02")
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, "confirmed", apps[0].Status, "ordered by start")
	assert.Equal(t, "scheduled", apps[1].Status)

	all, err := repo.ListByDate(ctx, p.ID, "2026-03-02")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	upcoming, err := repo.ListUpcoming(ctx, p.ID, "2026-03-02")
	require.NoError(t, err)
	assert.Len(t, upcoming, 3)
}

func TestAppointmentRepositoryNotFound(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := NewAppointmentGormRepository(gdb)
	ctx := context.Background()

	_, err := repo.GetAppointment(ctx, 999)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))

	_, err = repo.GetProfessional(ctx, 999)
	assert.True(t, httperr.IsBusiness(err, "professional_not_found"))

	wh, err := repo.GetWorkingHours(ctx, 999, 1)
	require.NoError(t, err)
	assert.Nil(t, wh)
}

func TestAppointmentRepositoryWithTxRollsBack(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := NewAppointmentGormRepository(gdb)
	ctx := context.Background()
	p := testutil.SeedProfessional(t, gdb, "Ana")

	err := repo.WithTx(ctx, func(tx domain.Repository) error {
		require.NoError(t, tx.LockProfessional(ctx, p.ID))
		ap := &models.Appointment{ProfessionalID: p.ID, CustomerID: 1, Date: "2026-03-02", ServiceName: "Corte", DurationMinutes: 30, Status: "scheduled"}
		require.NoError(t, tx.CreateAppointment(ctx, ap))
		return httperr.SlotConflict()
	})
	require.Error(t, err)

	apps, err := repo.ListByDate(ctx, p.ID, "2026-03-02")
	require.NoError(t, err)
	assert.Empty(t, apps)
}

func TestCatalogLookupIsCaseSensitive(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := NewCatalogGormRepository(gdb)
	ctx := context.Background()
	p := testutil.SeedProfessional(t, gdb, "Ana")
	testutil.SeedService(t, gdb, p.ID, "Corte", 50, testutil.Int(60))

	ps, err := repo.FindActiveOverride(ctx, p.ID, "Corte")
	require.NoError(t, err)
	require.NotNil(t, ps)
	assert.Equal(t, "Corte", ps.ServiceTemplate.Name)

	ps, err = repo.FindActiveOverride(ctx, p.ID, "corte")
	require.NoError(t, err)
	assert.Nil(t, ps, "name matching is exact")

	tpl, err := repo.FindTemplate(ctx, "CORTE")
	require.NoError(t, err)
	assert.Nil(t, tpl)
}

func TestCatalogReplaceServices(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := NewCatalogGormRepository(gdb)
	ctx := context.Background()
	p := testutil.SeedProfessional(t, gdb, "Ana")
	testutil.SeedService(t, gdb, p.ID, "Corte", 50, nil)

	tpl, err := repo.GetOrCreateTemplate(ctx, "Barba", 30)
	require.NoError(t, err)
	assert.Equal(t, 45, tpl.DefaultDurationMinutes)

	require.NoError(t, repo.ReplaceServices(ctx, p.ID, []models.ProfessionalService{
		{ServiceTemplateID: tpl.ID, PriceAdjustment: 35, IsActive: true},
	}))

	services, err := repo.ListServices(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "Barba", services[0].ServiceTemplate.Name)
}

func TestProfessionalSearchCandidates(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := NewProfessionalGormRepository(gdb)
	ctx := context.Background()

	barber := models.Category{Name: "Barbeiro", Slug: "barber", IsActive: true}
	nails := models.Category{Name: "Manicure", Slug: "nails", IsActive: true}
	require.NoError(t, gdb.Create(&barber).Error)
	require.NoError(t, gdb.Create(&nails).Error)

	ana := testutil.SeedProfessional(t, gdb, "Ana Corte Fino")
	bia := testutil.SeedProfessional(t, gdb, "Bia")
	caio := testutil.SeedProfessional(t, gdb, "Caio")
	require.NoError(t, gdb.Model(ana).Update("category_id", barber.ID).Error)
	require.NoError(t, gdb.Model(bia).Update("category_id", barber.ID).Error)
	require.NoError(t, gdb.Model(caio).Update("category_id", nails.ID).Error)

	// Bia casa por serviço, Ana por nome e serviço (não pode duplicar)
	testutil.SeedService(t, gdb, ana.ID, "Corte", 50, nil)
	testutil.SeedService(t, gdb, bia.ID, "Corte", 40, nil)

	list, err := repo.SearchCandidates(ctx, "corte", "")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, ana.ID, list[0].ID)
	assert.Equal(t, bia.ID, list[1].ID)

	list, err = repo.SearchCandidates(ctx, "corte", "nails")
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = repo.SearchCandidates(ctx, "augusta", "nails")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, caio.ID, list[0].ID)

	list, err = repo.SearchCandidates(ctx, "100%", "")
	require.NoError(t, err)
	assert.Empty(t, list, "wildcards are escaped")
}

func TestProfessionalListLocations(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := NewProfessionalGormRepository(gdb)
	ctx := context.Background()

	located := testutil.SeedProfessional(t, gdb, "Ana")
	testutil.SeedProfessional(t, gdb, "Sem Local")
	require.NoError(t, repo.UpdateLocation(ctx, located.ID, testutil.Float(-23.5), testutil.Float(-46.6)))

	items, err := repo.ListLocations(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, located.ID, items[0].ID)

	err = repo.UpdateLocation(ctx, 999, testutil.Float(1), testutil.Float(1))
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}

func TestReviewRecomputeRating(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := NewReviewGormRepository(gdb)
	ctx := context.Background()
	p := testutil.SeedProfessional(t, gdb, "Ana")

	for i, rating := range []int{5, 4, 3} {
		require.NoError(t, repo.CreateReview(ctx, &models.Review{
			CustomerID:     uint(i + 1),
			ProfessionalID: p.ID,
			Rating:         rating,
		}))
	}

	summary, err := repo.RecomputeRating(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Total)
	assert.InDelta(t, 4.0, summary.Average, 1e-9)

	var reloaded models.Professional
	require.NoError(t, gdb.First(&reloaded, p.ID).Error)
	assert.Equal(t, 3, reloaded.TotalReviews)
	assert.InDelta(t, 4.0, reloaded.AverageRating, 1e-9)
}

// Duas avaliações concorrentes do mesmo atendimento: a segunda esbarra no
// índice único e vira erro de negócio, não 500.
func TestReviewDuplicateAppointment(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := NewReviewGormRepository(gdb)
	ctx := context.Background()
	p := testutil.SeedProfessional(t, gdb, "Ana")
	appointmentID := uint(42)

	require.NoError(t, repo.CreateReview(ctx, &models.Review{
		CustomerID: 1, ProfessionalID: p.ID, AppointmentID: &appointmentID, Rating: 5,
	}))

	err := repo.CreateReview(ctx, &models.Review{
		CustomerID: 1, ProfessionalID: p.ID, AppointmentID: &appointmentID, Rating: 1,
	})
	assert.True(t, httperr.IsBusiness(err, "review_exists"), "got %v", err)
}

func TestCategoryListActive(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := NewCategoryGormRepository(gdb)

	require.NoError(t, gdb.Create(&models.Category{Name: "Salão", Slug: "salao", IsActive: true}).Error)
	require.NoError(t, gdb.Create(&models.Category{Name: "Barbearia", Slug: "barbearia", IsActive: true}).Error)
	require.NoError(t, gdb.Create(&models.Category{Name: "Tatuagem", Slug: "tatuagem", IsActive: false}).Error)

	list, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2, "inactive categories stay inactive")
	assert.Equal(t, "barbearia", list[0].Slug)
	assert.Equal(t, "salao", list[1].Slug)
}

func TestProfessionalListByIDs(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := NewProfessionalGormRepository(gdb)
	ctx := context.Background()

	ana := testutil.SeedProfessional(t, gdb, "Ana")
	testutil.SeedProfessional(t, gdb, "Bia")
	caio := testutil.SeedProfessional(t, gdb, "Caio")

	list, err := repo.ListByIDs(ctx, []uint{caio.ID, ana.ID, 999})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, ana.ID, list[0].ID)
	assert.Equal(t, caio.ID, list[1].ID)

	list, err = repo.ListByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestWorkingHoursReplace(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := NewWorkingHoursGormRepository(gdb)
	ctx := context.Background()
	p := testutil.SeedProfessional(t, gdb, "Ana")

	require.NoError(t, repo.ReplaceWorkingHours(ctx, p.ID, []models.WorkingHours{
		{Weekday: 1, StartTime: "08:00", EndTime: "12:00", IsSelected: true},
	}))

	hours, err := repo.ListWorkingHours(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, hours, 1)
	assert.Equal(t, "08:00", hours[0].StartTime)
}
