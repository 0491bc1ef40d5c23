package storage

import (
	"fmt"

	"github.com/cashcard-io/backend/internal/models"
	"github.com/cashcard-io/backend/internal/pagination"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Store persists cash cards in the database.
type Store struct {
	db *gorm.DB
}

// New returns a Store backed by db.
func New(db *gorm.DB) Store {
	return Store{db: db}
}

// Get returns the cash card with the given id.
func (s Store) Get(id uint64) (models.CashCard, error) {
	var card models.CashCard
	err := s.db.First(&card, id).Error
	if err != nil {
		return models.CashCard{}, err
	}

	return card, nil
}

// Insert persists a new cash card. The id is assigned by the database.
func (s Store) Insert(amount decimal.Decimal) (models.CashCard, error) {
	card := models.CashCard{Amount: amount}
	err := s.db.Create(&card).Error
	if err != nil {
		return models.CashCard{}, err
	}

	return card, nil
}

// List returns one page of cash cards ordered by q.Sort together with the
// total number of cash cards. A limit of pagination.LimitAll returns the
// full listing.
func (s Store) List(q pagination.Descriptor) ([]models.CashCard, int64, error) {
	query := s.db.Order(order(q.Sort)).Offset(q.Offset).Limit(q.Limit)

	// Data is initialized to a slice so that the response is always a JSON
	// array, even when empty
	cards := make([]models.CashCard, 0)
	err := query.Find(&cards).Error
	if err != nil {
		return nil, 0, err
	}

	var count int64
	err = query.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		return nil, 0, err
	}

	return cards, count, nil
}

// order builds the ORDER BY clause for a sort. Sort keys are whitelisted by
// the resolver, never raw request input.
//
// Records with equal sort values order by ascending id so that pages are
// stable.
func order(sort pagination.Sort) string {
	if sort.Key == "id" {
		return fmt.Sprintf("id %s", sort.Direction)
	}

	return fmt.Sprintf("%s %s, id ASC", sort.Key, sort.Direction)
}
