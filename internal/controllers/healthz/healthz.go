package healthz

import (
	"net/http"

	"github.com/cashcard-io/backend/internal/httperrors"
	"github.com/cashcard-io/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Controller answers health checks against the database it holds.
type Controller struct {
	db *gorm.DB
}

func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	co := Controller{db: db}

	r.OPTIONS("", co.Options)
	r.GET("", co.Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func (co Controller) Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	httperrors.HTTPError
// @Router			/healthz [get]
func (co Controller) Get(c *gin.Context) {
	sqlDB, err := co.db.DB()
	if err != nil {
		httperrors.DatabaseError(c, err)
		return
	}

	err = sqlDB.Ping()
	if err != nil {
		httperrors.DatabaseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
