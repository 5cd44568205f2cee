package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/pro-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/pro-booking/internal/httperr"
	"github.com/BruksfildServices01/pro-booking/internal/infra/repository"
	"github.com/BruksfildServices01/pro-booking/internal/testutil"
)

func TestReplaceWorkingHours(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := repository.NewWorkingHoursGormRepository(gdb)
	uc := NewReplaceWorkingHours(repo, nil)
	ctx := context.Background()
	p := testutil.SeedProfessional(t, gdb, "Ana")

	hours, err := uc.Execute(ctx, p.ID, []domain.WorkingDay{
		{Weekday: 1, IsSelected: true, StartTime: "08:00", EndTime: "12:00"},
		{Weekday: 2, IsSelected: false, StartTime: "ignored", EndTime: "ignored"},
	})
	require.NoError(t, err)
	require.Len(t, hours, 2)
	assert.Equal(t, "08:00", hours[0].StartTime)
	assert.Empty(t, hours[1].StartTime)

	_, err = uc.Execute(ctx, p.ID, []domain.WorkingDay{
		{Weekday: 1, IsSelected: true, StartTime: "12:00", EndTime: "08:00"},
	})
	assert.True(t, httperr.IsBusiness(err, "start_after_end"))

	// falha de validação não altera nada
	stored, err := NewGetWorkingHours(repo).Execute(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 2)

	_, err = uc.Execute(ctx, 999, nil)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}
