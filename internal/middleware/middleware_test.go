package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/pro-booking/internal/config"
	"github.com/BruksfildServices01/pro-booking/internal/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthEngine(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.GET("/me", AuthMiddleware(cfg), RequireRole("professional"), func(c *gin.Context) {
		a := CurrentActor(c)
		c.JSON(http.StatusOK, gin.H{"id": a.ID, "role": a.Role})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret"}
	r := newAuthEngine(cfg)

	do := func(header string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusUnauthorized, do("").Code)
	assert.Equal(t, http.StatusUnauthorized, do("Token abc").Code)
	assert.Equal(t, http.StatusUnauthorized, do("Bearer not-a-jwt").Code)

	wrongKey, err := SignToken("other", 1, "professional", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, do("Bearer "+wrongKey).Code)

	badRole, err := SignToken("secret", 1, "admin", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, do("Bearer "+badRole).Code)

	customer, err := SignToken("secret", 2, "customer", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, do("Bearer "+customer).Code)

	pro, err := SignToken("secret", 3, "professional", time.Hour)
	require.NoError(t, err)
	w := do("Bearer " + pro)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":3,"role":"professional"}`, w.Body.String())
}

func TestRequestIDAndMetrics(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	r := gin.New()
	r.Use(RequestIDMiddleware(), MetricsMiddleware(m))
	r.GET("/ping/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping/7", nil))
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping/8", nil)
	req.Header.Set(HeaderRequestID, "abc")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get(HeaderRequestID))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("/ping/:id", "GET", "204")))
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware(nil))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://app.example.com")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, HeaderRequestID, w.Header().Get("Access-Control-Expose-Headers"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), HeaderRequestID)
	assert.Equal(t, "600", w.Header().Get("Access-Control-Max-Age"))
}

func TestCORSAllowList(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{" https://app.example.com/ ", ""}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(method, origin string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(method, "/x", nil)
		if origin != "" {
			req.Header.Set("Origin", origin)
		}
		r.ServeHTTP(w, req)
		return w
	}

	w := send(http.MethodGet, "https://app.example.com")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Origin", w.Header().Get("Vary"))

	// origem fora da lista: a requisição segue, mas sem cabeçalhos CORS
	w = send(http.MethodGet, "https://evil.example.com")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	w = send(http.MethodOptions, "https://evil.example.com")
	assert.Equal(t, http.StatusForbidden, w.Code)

	// sem Origin (curl, servidor a servidor)
	w = send(http.MethodGet, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Vary"))
}
