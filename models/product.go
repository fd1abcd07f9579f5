package models

import (
	"time"

	"gorm.io/gorm"
)

// Product model corresponds to the 'products' table in the database.
// Stock is only ever changed through the orders ledger (atomic guarded
// updates), never by loading and re-saving the row.
type Product struct {
	Id            uint           `gorm:"primaryKey" json:"id"`
	SKU           string         `gorm:"uniqueIndex;size:100" json:"sku"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	Description   string         `json:"description"`
	Price         float64        `gorm:"type:decimal(10,2);not null" json:"price"`
	StockQuantity int            `gorm:"not null;default:0" json:"stock_quantity"`
	IsActive      bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
