package cashcard

import (
	"fmt"
	"net/http"

	"github.com/cashcard-io/backend/internal/httperrors"
	"github.com/cashcard-io/backend/internal/httputil"
	"github.com/cashcard-io/backend/internal/models"
	"github.com/cashcard-io/backend/internal/pagination"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// sortKeys are the fields list requests may sort by.
var sortKeys = []string{"id", "amount"}

// defaultSort orders listings by ascending amount unless the request says
// otherwise.
var defaultSort = pagination.Sort{Key: "amount", Direction: pagination.Ascending}

// RecordStore is the persistence contract the handlers need. It is satisfied
// by storage.Store.
type RecordStore interface {
	// Get returns the cash card with the given id.
	Get(id uint64) (models.CashCard, error)

	// Insert persists a new cash card with a store-assigned id.
	Insert(amount decimal.Decimal) (models.CashCard, error)

	// List returns one page of cash cards and the total count.
	List(q pagination.Descriptor) ([]models.CashCard, int64, error)
}

// Controller exposes cash cards over HTTP.
type Controller struct {
	store RecordStore
}

// RegisterRoutes registers the routes for cash cards with the RouterGroup
// that is passed.
func RegisterRoutes(r *gin.RouterGroup, store RecordStore) {
	co := Controller{store: store}

	// Root group
	{
		r.OPTIONS("", co.OptionsList)
		r.GET("", co.GetCashCards)
		r.POST("", co.CreateCashCard)
	}

	// Cash card with ID
	{
		r.OPTIONS("/:id", co.OptionsDetail)
		r.GET("/:id", co.GetCashCard)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CashCards
// @Success		204
// @Router			/cashcards [options]
func (co Controller) OptionsList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CashCards
// @Success		204
// @Failure		400	{object}	httperrors.HTTPError
// @Failure		404
// @Param			id	path	int	true	"ID of the cash card"
// @Router			/cashcards/{id} [options]
func (co Controller) OptionsDetail(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	_, err = co.store.Get(id)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Get cash card
// @Description	Returns a specific cash card
// @Tags			CashCards
// @Produce		json
// @Success		200	{object}	CashCard
// @Failure		400	{object}	httperrors.HTTPError
// @Failure		404
// @Failure		500	{object}	httperrors.HTTPError
// @Param			id	path	int	true	"ID of the cash card"
// @Router			/cashcards/{id} [get]
func (co Controller) GetCashCard(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	card, err := co.store.Get(id)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, newCashCard(card))
}

// @Summary		Create cash card
// @Description	Creates a new cash card. The id is assigned by the backend and returned in the Location header.
// @Tags			CashCards
// @Accept			json
// @Success		201
// @Failure		400	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Param			cashcard	body	CashCard	true	"CashCard"
// @Router			/cashcards [post]
func (co Controller) CreateCashCard(c *gin.Context) {
	var create CashCard
	if err := httputil.BindData(c, &create); err != nil {
		httperrors.Handler(c, err)
		return
	}

	if create.ID != nil {
		httperrors.Handler(c, errIDSetOnCreate)
		return
	}

	card, err := co.store.Insert(create.Amount)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/cashcards/%d", card.ID))
	c.Status(http.StatusCreated)
}

// @Summary		List cash cards
// @Description	Returns a list of cash cards, paged and sorted as requested
// @Tags			CashCards
// @Produce		json
// @Success		200	{array}		CashCard
// @Failure		400	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Router			/cashcards [get]
// @Param			page	query	int		false	"Page of the listing. Defaults to 0."
// @Param			size	query	int		false	"Number of cash cards per page. Defaults to 20."
// @Param			sort	query	string	false	"Sort as key[,direction], for example amount,desc. Defaults to amount,asc."
func (co Controller) GetCashCards(c *gin.Context) {
	var params pagination.Parameters
	if err := c.ShouldBindQuery(&params); err != nil {
		httperrors.Handler(c, err)
		return
	}

	q, err := pagination.Resolve(params, pagination.Options{
		DefaultSort: defaultSort,
		SortKeys:    sortKeys,
	})
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	cards, _, err := co.store.List(q)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	data := make([]CashCard, 0, len(cards))
	for _, card := range cards {
		data = append(data, newCashCard(card))
	}

	c.JSON(http.StatusOK, data)
}
