package audit

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/pro-booking/internal/logs"
	"github.com/BruksfildServices01/pro-booking/internal/models"
	"github.com/BruksfildServices01/pro-booking/internal/testutil"
)

func TestDispatcherWritesOnClose(t *testing.T) {
	gdb := testutil.NewDB(t)
	d := NewDispatcher(New(gdb), logs.Discard())

	id := uint(7)
	d.Dispatch(Event{
		ProfessionalID: 1,
		ActorID:        &id,
		ActorRole:      "customer",
		Action:         "appointment_created",
		Entity:         "appointment",
		EntityID:       &id,
		Metadata:       map[string]any{"service": "Corte"},
	})
	d.Close()

	var entries []models.AuditLog
	require.NoError(t, gdb.Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Equal(t, "appointment_created", entries[0].Action)
	assert.JSONEq(t, `{"service":"Corte"}`, string(entries[0].Metadata))
}

func TestNilDispatcher(t *testing.T) {
	var d *Dispatcher

	assert.NotPanics(t, func() {
		d.Dispatch(Event{Action: "noop"})
		d.Close()
	})
}

// Handlers ainda em voo quando o shutdown estoura o prazo continuam
// despachando depois do Close.
func TestDispatchAfterClose(t *testing.T) {
	gdb := testutil.NewDB(t)
	d := NewDispatcher(New(gdb), logs.Discard())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Dispatch(Event{ProfessionalID: 1, Action: "appointment_created", Entity: "appointment"})
		}()
	}
	d.Close()

	assert.NotPanics(t, func() {
		d.Dispatch(Event{ProfessionalID: 1, Action: "late_event", Entity: "appointment"})
		d.Close()
	})
	wg.Wait()

	var late int64
	require.NoError(t, gdb.Model(&models.AuditLog{}).Where("action = ?", "late_event").Count(&late).Error)
	assert.Zero(t, late)
}
