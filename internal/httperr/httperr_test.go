package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("create appointment: %w", SlotConflict())

	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindSlotConflict, kind)
	assert.True(t, IsBusiness(err, "slot_conflict"))

	_, ok = KindOf(errors.New("boom"))
	assert.False(t, ok)
}

func TestRespondStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", Validation("invalid_date"), http.StatusBadRequest, "invalid_date"},
		{"invalid argument", InvalidArgument("invalid_radius"), http.StatusBadRequest, "invalid_radius"},
		{"not found", NotFoundErr("appointment_not_found"), http.StatusNotFound, "appointment_not_found"},
		{"conflict", SlotConflict(), http.StatusConflict, "slot_conflict"},
		{"transition", InvalidTransition("invalid_transition"), http.StatusConflict, "invalid_transition"},
		{"internal", errors.New("db down"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			Respond(c, tc.err)

			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), `"error_code":"`+tc.code+`"`)
		})
	}
}
