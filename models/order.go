package models

import (
	"time"

	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Order owns its items; totals are derived columns, recomputed by the
// orders package after every item change and never set directly.
type Order struct {
	Id          uint        `gorm:"primaryKey" json:"id"`
	OrderNumber string      `gorm:"uniqueIndex;size:32;not null" json:"order_number"`
	UserID      *uint       `gorm:"index" json:"user_id"`
	Status      OrderStatus `gorm:"type:varchar(20);not null;default:pending;index" json:"status"`

	ShippingName    string `gorm:"size:255" json:"shipping_name"`
	ShippingAddress string `json:"shipping_address"`
	ShippingCity    string `gorm:"size:100" json:"shipping_city"`
	ShippingState   string `gorm:"size:100" json:"shipping_state"`
	ShippingZip     string `gorm:"size:20" json:"shipping_zip"`
	ShippingCountry string `gorm:"size:100" json:"shipping_country"`
	Notes           string `json:"notes"`

	Subtotal     float64 `gorm:"type:decimal(10,2);not null;default:0" json:"subtotal"`
	Tax          float64 `gorm:"type:decimal(10,2);not null;default:0" json:"tax"`
	ShippingCost float64 `gorm:"type:decimal(10,2);not null;default:0" json:"shipping_cost"`
	Total        float64 `gorm:"type:decimal(10,2);not null;default:0" json:"total"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// ProductSnapshot freezes the product's display data at the moment an item
// is added, so later product edits or deletion do not alter past orders.
type ProductSnapshot struct {
	Name  string  `json:"name"`
	SKU   string  `json:"sku"`
	Price float64 `json:"price"`
}

// OrderItem is one product line within an order. UnitPrice is immutable
// after creation; TotalPrice is always UnitPrice * Quantity.
type OrderItem struct {
	Id             uint            `gorm:"primaryKey" json:"id"`
	OrderID        uint            `gorm:"index;not null" json:"order_id"`
	ProductID      uint            `gorm:"index;not null" json:"product_id"`
	Quantity       int             `gorm:"not null" json:"quantity"`
	UnitPrice      float64         `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	TotalPrice     float64         `gorm:"type:decimal(10,2);not null" json:"total_price"`
	ProductDetails ProductSnapshot `gorm:"serializer:json" json:"product_details"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
