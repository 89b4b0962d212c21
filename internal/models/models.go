package models

import (
	"time"
)

// OrderStatus — строковый тип статуса заказа
type OrderStatus string

const (
	// OrderStatusNew is the only status assigned by checkout; there is no
	// transition workflow yet.
	OrderStatusNew OrderStatus = "NEW"
)

type Product struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Price       int64     `gorm:"not null;check:chk_products_price_non_negative,price >= 0" json:"price"`
	Stock       int64     `gorm:"not null;default:0;check:chk_products_stock_non_negative,stock >= 0" json:"stock"`
	Category    string    `gorm:"type:text;not null;index" json:"category"`
	ImageURL    string    `gorm:"type:text;not null" json:"image_url"`
	Description string    `gorm:"type:text;not null;default:''" json:"description"`
	CreatedAt   time.Time `gorm:"not null;index" json:"created_at"`
}

func (Product) TableName() string { return "products" }

// Customer is created once per checkout; there is no deduplication by
// phone or email (no account system).
type Customer struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string    `gorm:"type:text;not null" json:"name"`
	Phone      string    `gorm:"type:text;not null" json:"phone"`
	Email      *string   `gorm:"type:text" json:"email"`
	Address    string    `gorm:"type:text;not null" json:"address"`
	City       string    `gorm:"type:text;not null" json:"city"`
	PostalCode string    `gorm:"type:text;not null" json:"postal_code"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}

func (Customer) TableName() string { return "customers" }

type Order struct {
	ID             int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderCode      string      `gorm:"type:text;not null;uniqueIndex:ux_orders_order_code" json:"order_code"`
	CustomerID     int64       `gorm:"not null;index" json:"customer_id"`
	ShippingMethod string      `gorm:"type:text;not null" json:"shipping_method"`
	ShippingCost   int64       `gorm:"not null" json:"shipping_cost"`
	PaymentMethod  string      `gorm:"type:text;not null" json:"payment_method"`
	Notes          *string     `gorm:"type:text" json:"notes"`
	Subtotal       int64       `gorm:"not null" json:"subtotal"`
	Total          int64       `gorm:"not null" json:"total"`
	Status         OrderStatus `gorm:"type:text;not null;default:'NEW';index" json:"status"`
	CreatedAt      time.Time   `gorm:"not null;index" json:"created_at"`

	Customer Customer    `gorm:"foreignKey:CustomerID" json:"-"`
	Items    []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"` // каскад на позиции
}

func (Order) TableName() string { return "orders" }

// OrderItem snapshots the product name and price at purchase time so later
// catalog edits never alter a persisted order.
type OrderItem struct {
	ID            int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID       int64  `gorm:"not null;index" json:"order_id"`
	ProductID     int64  `gorm:"not null" json:"product_id"`
	NameSnapshot  string `gorm:"type:text;not null" json:"name_snapshot"`
	PriceSnapshot int64  `gorm:"not null;check:chk_order_items_price_non_negative,price_snapshot >= 0" json:"price_snapshot"`
	Qty           int64  `gorm:"not null;check:chk_order_items_qty_gt_zero,qty > 0" json:"qty"`
	LineTotal     int64  `gorm:"not null" json:"line_total"`
}

func (OrderItem) TableName() string { return "order_items" }
