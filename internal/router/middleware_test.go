package router_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/cashcard-io/backend/internal/httputil"
	"github.com/cashcard-io/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestURLMiddlewareContextSet(t *testing.T) {
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	u, _ := url.Parse("https://cashcard.example.com:8443/api")

	r.GET("/cashcards", func(ctx *gin.Context) {
		router.URLMiddleware(u)(c)
		c.String(http.StatusOK, c.GetString(string(httputil.ContextURL)))
	})

	c.Request, _ = http.NewRequest(http.MethodGet, "https://example.com/cashcards", nil)
	r.ServeHTTP(w, c.Request)

	assert.Equal(t, "https://cashcard.example.com:8443/api", w.Body.String())
}

// TestURLMiddlewareEmptyURL verifies that an empty base URL makes all links
// relative.
func TestURLMiddlewareEmptyURL(t *testing.T) {
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	u, _ := url.Parse("")

	r.GET("/cashcards", func(ctx *gin.Context) {
		router.URLMiddleware(u)(c)
		c.String(http.StatusOK, c.GetString(string(httputil.ContextURL)))
	})

	c.Request, _ = http.NewRequest(http.MethodGet, "https://example.com/cashcards", nil)
	r.ServeHTTP(w, c.Request)

	assert.Equal(t, "", w.Body.String())
}
