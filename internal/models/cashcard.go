package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CashCard is a stored value card and the amount of money it holds.
type CashCard struct {
	ID        uint64          `json:"id"`
	CreatedAt time.Time       `json:"-"`
	UpdatedAt time.Time       `json:"-"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
}

// Migrate migrates the database to the schema defined in the code.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(CashCard{})
	if err != nil {
		return fmt.Errorf("error during database migration: %w", err)
	}

	return nil
}
