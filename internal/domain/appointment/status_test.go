package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/pro-booking/internal/httperr"
	"github.com/BruksfildServices01/pro-booking/internal/models"
)

func TestCanTransition(t *testing.T) {
	all := []Status{StatusScheduled, StatusConfirmed, StatusCancelled, StatusCompleted}
	allowed := map[[2]Status]bool{
		{StatusScheduled, StatusConfirmed}: true,
		{StatusScheduled, StatusCancelled}: true,
		{StatusScheduled, StatusCompleted}: true,
		{StatusConfirmed, StatusCancelled}: true,
		{StatusConfirmed, StatusCompleted}: true,
	}

	for _, from := range all {
		for _, to := range all {
			err := CanTransition(from, to)
			if allowed[[2]Status{from, to}] {
				assert.NoError(t, err, "%s -> %s", from, to)
				continue
			}
			assert.True(t, httperr.IsKind(err, httperr.KindInvalidTransition), "%s -> %s", from, to)
		}
	}
}

func TestCancelTwice(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusScheduled)}
	now := time.Now()

	require.NoError(t, Cancel(ap, now, "customer"))
	assert.Equal(t, string(StatusCancelled), ap.Status)
	assert.NotNil(t, ap.CancelledAt)

	err := Cancel(ap, now, "customer")
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"), "got %v", err)
}

func TestConfirmThenComplete(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusScheduled)}
	now := time.Now()

	require.NoError(t, Confirm(ap, now))
	require.NoError(t, Complete(ap, now))
	assert.Equal(t, string(StatusCompleted), ap.Status)

	assert.Error(t, Confirm(ap, now))
	assert.Error(t, Cancel(ap, now, "professional"))
}
