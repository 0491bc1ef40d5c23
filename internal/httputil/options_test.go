package httputil_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cashcard-io/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestOptions(t *testing.T) {
	tests := []struct {
		name    string
		handler gin.HandlerFunc
		allow   string
	}{
		{"get", httputil.OptionsGet, "OPTIONS, GET"},
		{"get and post", httputil.OptionsGetPost, "OPTIONS, GET, POST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, r := gin.CreateTestContext(w)

			r.OPTIONS("/", tt.handler)

			c.Request, _ = http.NewRequest(http.MethodOptions, "https://example.com/", nil)
			r.ServeHTTP(w, c.Request)

			assert.Equal(t, http.StatusNoContent, w.Code)
			assert.Equal(t, tt.allow, w.Header().Get("allow"))
		})
	}
}
