package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cashcard-io/backend/internal/config"
	"github.com/cashcard-io/backend/internal/database"
	"github.com/cashcard-io/backend/internal/models"
	"github.com/cashcard-io/backend/internal/router"
	"github.com/cashcard-io/backend/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEngine returns a fully configured router with all routes attached to a
// fresh database.
func testEngine(t *testing.T, cfg config.Config) *gin.Engine {
	db, err := database.Connect(test.TmpFile(t))
	require.Nil(t, err)
	require.Nil(t, models.Migrate(db))

	r, teardown, err := router.Config(cfg)
	t.Cleanup(teardown)
	require.Nil(t, err, "Error on router initialization")

	router.AttachRoutes(r.Group("/"), db)

	return r
}

func TestRoutes(t *testing.T) {
	r := testEngine(t, config.Config{})

	var routes []string
	for _, route := range r.Routes() {
		routes = append(routes, route.Path)
	}

	for _, path := range []string{"/", "/healthz", "/version", "/metrics", "/docs/*any", "/cashcards", "/cashcards/:id"} {
		assert.Contains(t, routes, path)
	}
}

func TestPprofOn(t *testing.T) {
	r := testEngine(t, config.Config{EnablePprof: true})

	var routes []string
	for _, route := range r.Routes() {
		routes = append(routes, route.Path)
	}
	assert.Contains(t, routes, "/debug/pprof/")
}

func TestPprofOff(t *testing.T) {
	r := testEngine(t, config.Config{})

	for _, route := range r.Routes() {
		assert.NotContains(t, route.Path, "pprof", "pprof routes are registered erroneously! Route: %s", route)
	}
}

// TestCorsSetting checks that setting of CORS works.
// It does not check the actual headers as this is already done in testing of the module.
func TestCorsSetting(t *testing.T) {
	_, teardown, err := router.Config(config.Config{CORSAllowOrigins: "http://localhost:3000 https://example.com"})
	defer teardown()

	assert.Nil(t, err)
}

// TestMethodNotAllowed verifies that a request with a known path but an
// unhandled method responds 405.
func TestMethodNotAllowed(t *testing.T) {
	r := testEngine(t, config.Config{})

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "http://example.com/cashcards", nil)
	r.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
	assert.Equal(t, "This HTTP method is not allowed for the endpoint you called", test.DecodeError(t, recorder.Body.Bytes()))
}

// TestMetrics verifies that handled requests show up in the Prometheus
// metrics with the URL parameters replaced by their names.
func TestMetrics(t *testing.T) {
	r := testEngine(t, config.Config{})

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "http://example.com/cashcards/4099", nil)
	r.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "http://example.com/metrics", nil)
	r.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "cashcard_requests_total")
	assert.Contains(t, recorder.Body.String(), "/cashcards/:id")
}
