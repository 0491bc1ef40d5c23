package root_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cashcard-io/backend/internal/controllers/root"
	"github.com/cashcard-io/backend/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	t.Parallel()
	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)

	root.RegisterRoutes(r.Group("/"))

	// Test contexts cannot be injected any middleware, therefore the links
	// are relative here
	l := root.Response{
		Links: root.Links{
			Docs:      "/docs/index.html",
			Healthz:   "/healthz",
			Version:   "/version",
			Metrics:   "/metrics",
			CashCards: "/cashcards",
		},
	}

	req, _ := http.NewRequest(http.MethodGet, "http://example.com/", nil)
	r.ServeHTTP(w, req)

	var lr root.Response
	test.DecodeResponse(t, w, &lr)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, l, lr)
}

func TestOptions(t *testing.T) {
	t.Parallel()
	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)

	root.RegisterRoutes(r.Group("/"))

	req, _ := http.NewRequest(http.MethodOptions, "http://example.com/", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "OPTIONS, GET", w.Header().Get("allow"))
}
