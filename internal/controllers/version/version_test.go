package version_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cashcard-io/backend/internal/controllers/version"
	"github.com/cashcard-io/backend/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)

	version.RegisterRoutes(r.Group("/version"), "1.2.3")

	req, _ := http.NewRequest(http.MethodGet, "http://example.com/version", nil)
	r.ServeHTTP(w, req)

	var response version.Response
	test.DecodeResponse(t, w, &response)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1.2.3", response.Data.Version)
}

func TestOptions(t *testing.T) {
	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)

	version.RegisterRoutes(r.Group("/version"), "1.2.3")

	req, _ := http.NewRequest(http.MethodOptions, "http://example.com/version", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "OPTIONS, GET", w.Header().Get("allow"))
}
