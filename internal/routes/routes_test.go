package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/pro-booking/internal/config"
	"github.com/BruksfildServices01/pro-booking/internal/geo"
	"github.com/BruksfildServices01/pro-booking/internal/infra/lock"
	"github.com/BruksfildServices01/pro-booking/internal/infra/storage"
	"github.com/BruksfildServices01/pro-booking/internal/logs"
	"github.com/BruksfildServices01/pro-booking/internal/metrics"
	"github.com/BruksfildServices01/pro-booking/internal/middleware"
	"github.com/BruksfildServices01/pro-booking/internal/models"
	"github.com/BruksfildServices01/pro-booking/internal/testutil"
)

const secret = "test-secret"

type server struct {
	t      *testing.T
	engine *gin.Engine
	pro    *models.Professional
}

func newServer(t *testing.T) *server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb := testutil.NewDB(t)
	pro := testutil.SeedProfessional(t, gdb, "Ana")
	testutil.SeedService(t, gdb, pro.ID, "Corte", 50, testutil.Int(45))

	cfg := &config.Config{
		JWTSecret:              secret,
		SlotGranularityMinutes: 30,
		DefaultSearchRadiusKm:  10,
		MetricsEnabled:         true,
	}

	r := gin.New()
	RegisterRoutes(r, gdb, cfg, Infra{
		Log:      logs.Discard(),
		Location: time.UTC,
		Locker:   lock.NewKeyedMutex(),
		Metrics:  metrics.New(prometheus.NewRegistry()),
		GeoIndex: geo.NewIndex(),
		Images:   storage.NewPrefixImages(""),
	})

	return &server{t: t, engine: r, pro: pro}
}

func (s *server) token(id uint, role string) string {
	tok, err := middleware.SignToken(secret, id, role, time.Hour)
	require.NoError(s.t, err)
	return tok
}

func (s *server) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	var body struct {
		Code string `json:"error_code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Code
}

func TestBookingFlow(t *testing.T) {
	s := newServer(t)
	customer := s.token(10, "customer")
	other := s.token(11, "customer")
	pro := s.token(s.pro.ID, "professional")

	date := time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02")
	booking := map[string]any{
		"professional_id": s.pro.ID,
		"date":            date,
		"time":            "10:00",
		"service_name":    "Corte",
	}

	// --------------------------------------------------
	// reserva e conflito
	// --------------------------------------------------
	w := s.do(http.MethodPost, "/api/appointments", customer, booking)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "scheduled", created.Status)
	assert.Equal(t, 45, created.DurationMinutes)

	w = s.do(http.MethodPost, "/api/appointments", other, booking)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "slot_conflict", errorCode(t, w))

	// --------------------------------------------------
	// disponibilidade sem o horário ocupado
	// --------------------------------------------------
	w = s.do(http.MethodGet, fmt.Sprintf("/api/public/professionals/%d/availability?date=%s", s.pro.ID, date), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var av struct {
		IsOpen bool `json:"is_open"`
		Slots  []struct {
			Start string `json:"start"`
		} `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &av))
	assert.True(t, av.IsOpen)
	for _, slot := range av.Slots {
		assert.NotEqual(t, "10:00", slot.Start)
	}

	// --------------------------------------------------
	// confirmação / cancelamento
	// --------------------------------------------------
	cancelPath := fmt.Sprintf("/api/appointments/%d/cancel", created.ID)

	w = s.do(http.MethodPatch, cancelPath, other, nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "other customers cannot see the appointment")

	w = s.do(http.MethodPatch, fmt.Sprintf("/api/me/appointments/%d/confirm", created.ID), pro, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodPatch, cancelPath, customer, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodPatch, cancelPath, customer, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "invalid_transition", errorCode(t, w))

	// --------------------------------------------------
	// listagem do profissional
	// --------------------------------------------------
	w = s.do(http.MethodGet, "/api/me/appointments?date="+date, pro, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"cancelled"`)
}

func TestRoleAndValidationErrors(t *testing.T) {
	s := newServer(t)
	customer := s.token(10, "customer")

	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/health", "", nil).Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/metrics", "", nil).Code)

	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodPost, "/api/appointments", "", nil).Code)
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodGet, "/api/me", customer, nil).Code)

	w := s.do(http.MethodPost, "/api/appointments", customer, map[string]any{
		"professional_id": s.pro.ID,
		"date":            "2020-01-01",
		"time":            "10:00",
		"service_name":    "Corte",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "in_the_past", errorCode(t, w))

	w = s.do(http.MethodGet, "/api/public/search", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "missing_query", errorCode(t, w))

	w = s.do(http.MethodGet, "/api/public/professionals/999/services", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfessionalSelfService(t *testing.T) {
	s := newServer(t)
	pro := s.token(s.pro.ID, "professional")

	w := s.do(http.MethodPut, "/api/me/location", pro, map[string]any{"latitude": -23.55, "longitude": -46.63})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodGet, "/api/public/search?query=ana&lat=-23.56&lon=-46.63&radius_km=5", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)

	w = s.do(http.MethodPost, "/api/me/pause", pro, map[string]any{"days": 7, "reason": "férias"})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/public/search?query=ana", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":0`, "paused professionals are hidden")

	w = s.do(http.MethodPost, "/api/me/pause", pro, map[string]any{"days": 91})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPut, "/api/me/working-hours", pro, map[string]any{
		"days": []map[string]any{{"weekday": 1, "is_selected": true, "start_time": "18:00", "end_time": "08:00"}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "start_after_end", errorCode(t, w))

	w = s.do(http.MethodPut, "/api/me/services", pro, map[string]any{
		"services": []map[string]any{{"name": "Corte", "price": 60}, {"name": "Barba", "price": 30}},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodGet, fmt.Sprintf("/api/public/professionals/%d/services/resolve?name=Barba", s.pro.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"duration_minutes":45`)

	w = s.do(http.MethodGet, "/api/me/audit-logs", pro, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPublicDiscovery(t *testing.T) {
	s := newServer(t)
	pro := s.token(s.pro.ID, "professional")

	w := s.do(http.MethodPut, "/api/me/location", pro, map[string]any{"latitude": -23.60, "longitude": -46.63})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// --------------------------------------------------
	// raio explícito inválido nunca cai no padrão
	// --------------------------------------------------
	for _, r := range []string{"0", "-1", "NaN", "Inf"} {
		w = s.do(http.MethodGet, "/api/public/search?query=Ana&lat=-23.55&lon=-46.63&radius_km="+r, "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, "radius_km=%s", r)
		assert.Equal(t, "invalid_radius", errorCode(t, w), "radius_km=%s", r)
	}

	// --------------------------------------------------
	// nearby
	// --------------------------------------------------
	w = s.do(http.MethodGet, "/api/public/professionals/nearby?lat=-23.55&lon=-46.63", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var nearby struct {
		Data []struct {
			ID         uint     `json:"id"`
			DistanceKm *float64 `json:"distance_km"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &nearby))
	require.Len(t, nearby.Data, 1)
	assert.Equal(t, s.pro.ID, nearby.Data[0].ID)
	require.NotNil(t, nearby.Data[0].DistanceKm)
	assert.InDelta(t, 5.56, *nearby.Data[0].DistanceKm, 0.05)

	w = s.do(http.MethodGet, "/api/public/professionals/nearby?lat=-23.55&lon=-46.63&radius_km=2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":0`)

	w = s.do(http.MethodGet, "/api/public/professionals/nearby", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "missing_center", errorCode(t, w))

	w = s.do(http.MethodGet, "/api/public/professionals/nearby?lat=-23.55&lon=-46.63&radius_km=0", "", nil)
	assert.Equal(t, "invalid_radius", errorCode(t, w))

	// --------------------------------------------------
	// perfil público
	// --------------------------------------------------
	w = s.do(http.MethodGet, fmt.Sprintf("/api/public/professionals/%d?lat=-23.55&lon=-46.63", s.pro.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var profile struct {
		Name       string   `json:"name"`
		IsPaused   bool     `json:"is_paused"`
		DistanceKm *float64 `json:"distance_km"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "Ana", profile.Name)
	assert.False(t, profile.IsPaused)
	require.NotNil(t, profile.DistanceKm)
	assert.InDelta(t, 5.56, *profile.DistanceKm, 0.05)

	w = s.do(http.MethodGet, fmt.Sprintf("/api/public/professionals/%d?lat=-23.55", s.pro.ID), "", nil)
	assert.Equal(t, "invalid_center", errorCode(t, w))

	w = s.do(http.MethodGet, "/api/public/professionals/999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// --------------------------------------------------
	// categorias
	// --------------------------------------------------
	w = s.do(http.MethodGet, "/api/public/categories", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":[],"total":0}`, w.Body.String())
}
