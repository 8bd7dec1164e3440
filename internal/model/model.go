package model

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
	OrderStatusReturned   OrderStatus = "Returned"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusCompleted PaymentStatus = "Completed"
	PaymentStatusFailed    PaymentStatus = "Failed"
	PaymentStatusRefunded  PaymentStatus = "Refunded"
)

type Customer struct {
	ID             int64     `json:"customer_id" db:"customer_id" validate:"gte=1"`
	FirstName      string    `json:"first_name" db:"first_name" validate:"required"`
	LastName       string    `json:"last_name" db:"last_name" validate:"required"`
	Email          string    `json:"email" db:"email" validate:"required,email"`
	Phone          string    `json:"phone" db:"phone"`
	Address        string    `json:"address" db:"address"`
	City           string    `json:"city" db:"city"`
	State          string    `json:"state" db:"state"`
	ZipCode        string    `json:"zip_code" db:"zip_code"`
	Country        string    `json:"country" db:"country"`
	DateRegistered time.Time `json:"date_registered" db:"date_registered"`
	IsActive       bool      `json:"is_active" db:"is_active"`
}

type Product struct {
	ID          int64     `json:"product_id" db:"product_id" validate:"gte=1"`
	Name        string    `json:"product_name" db:"product_name" validate:"required"`
	Category    string    `json:"category" db:"category"`
	Description string    `json:"description" db:"description"`
	Price       float64   `json:"price" db:"price" validate:"gte=0"`
	Cost        float64   `json:"cost" db:"cost" validate:"gte=0,ltefield=Price"`
	Stock       int       `json:"stock_quantity" db:"stock_quantity" validate:"gte=0"`
	SKU         string    `json:"sku" db:"sku" validate:"required"`
	Brand       string    `json:"brand" db:"brand"`
	CreatedDate time.Time `json:"created_date" db:"created_date"`
	IsActive    bool      `json:"is_active" db:"is_active"`
}

type Order struct {
	ID              int64       `json:"order_id" db:"order_id" validate:"gte=1"`
	CustomerID      int64       `json:"customer_id" db:"customer_id" validate:"gte=1"`
	OrderDate       time.Time   `json:"order_date" db:"order_date"`
	Status          OrderStatus `json:"status" db:"status"`
	ShippingAddress string      `json:"shipping_address" db:"shipping_address"`
	ShippingCity    string      `json:"shipping_city" db:"shipping_city"`
	ShippingState   string      `json:"shipping_state" db:"shipping_state"`
	ShippingZip     string      `json:"shipping_zip" db:"shipping_zip"`
	ShippingCountry string      `json:"shipping_country" db:"shipping_country"`
	ShippingCost    float64     `json:"shipping_cost" db:"shipping_cost" validate:"gte=0"`
	TaxAmount       float64     `json:"tax_amount" db:"tax_amount" validate:"gte=0"`
	Subtotal        float64     `json:"subtotal" db:"subtotal" validate:"gte=0"`
	TotalAmount     float64     `json:"total_amount" db:"total_amount" validate:"gte=0"`
}

type OrderItem struct {
	ID        int64   `json:"item_id" db:"item_id" validate:"gte=1"`
	OrderID   int64   `json:"order_id" db:"order_id" validate:"gte=1"`
	ProductID int64   `json:"product_id" db:"product_id" validate:"gte=1"`
	Quantity  int     `json:"quantity" db:"quantity" validate:"gte=1"`
	UnitPrice float64 `json:"unit_price" db:"unit_price" validate:"gte=0"`
	Discount  float64 `json:"discount" db:"discount" validate:"gte=0,lte=1"`
	Subtotal  float64 `json:"subtotal" db:"subtotal" validate:"gte=0"`
}

type Payment struct {
	ID            int64         `json:"payment_id" db:"payment_id" validate:"gte=1"`
	OrderID       int64         `json:"order_id" db:"order_id" validate:"gte=1"`
	PaymentDate   time.Time     `json:"payment_date" db:"payment_date"`
	Method        string        `json:"payment_method" db:"payment_method"`
	Amount        float64       `json:"amount" db:"amount" validate:"gte=0"`
	Status        PaymentStatus `json:"status" db:"status" validate:"oneof=Pending Completed Failed Refunded"`
	TransactionID string        `json:"transaction_id" db:"transaction_id" validate:"required"`
}
