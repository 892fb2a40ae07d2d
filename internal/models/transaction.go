package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductTransaction is the persisted row shape shared by the SQL stores.
// SaleMonth and PriceText are derived at write time so the month and price
// search filters behave the same in every backend.
type ProductTransaction struct {
	ID          int64           `gorm:"primaryKey;autoIncrement:false"`
	Title       string          `gorm:"not null"`
	Description string          `gorm:"not null;default:''"`
	Price       decimal.Decimal `gorm:"type:numeric;not null"`
	PriceText   string          `gorm:"not null"`
	Category    string          `gorm:"not null;default:'';index"`
	Sold        bool            `gorm:"not null"`
	DateOfSale  time.Time       `gorm:"not null"`
	SaleMonth   int             `gorm:"not null;index"`
	Image       string          `gorm:"not null;default:''"`
}

// TableName pins the table name used by both the migrations and gorm.
func (ProductTransaction) TableName() string {
	return "product_transactions"
}
