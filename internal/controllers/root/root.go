package root

import (
	"net/http"

	"github.com/cashcard-io/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Links Links `json:"links"`
}

type Links struct {
	Docs      string `json:"docs" example:"https://example.com/docs/index.html"` // Swagger API documentation
	Healthz   string `json:"healthz" example:"https://example.com/healthz"`      // Healthz endpoint
	Version   string `json:"version" example:"https://example.com/version"`      // Endpoint returning the version of the backend
	Metrics   string `json:"metrics" example:"https://example.com/metrics"`      // Endpoint returning Prometheus metrics
	CashCards string `json:"cashcards" example:"https://example.com/cashcards"`  // Collection endpoint for cash cards
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	Response
// @Router			/ [get]
func Get(c *gin.Context) {
	url := c.GetString(string(httputil.ContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Docs:      url + "/docs/index.html",
			Healthz:   url + "/healthz",
			Version:   url + "/version",
			Metrics:   url + "/metrics",
			CashCards: url + "/cashcards",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
