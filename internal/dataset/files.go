// Package dataset defines the CSV artifact contract shared by the pipeline
// stages: file names, header rows, field formats, and strict readers and
// writers for the five record sets.
package dataset

import (
	"fmt"
	"strconv"
	"time"

	"github.com/oakline/shopdata/internal/model"
)

const (
	CustomersFile  = "customers.csv"
	ProductsFile   = "products.csv"
	OrdersFile     = "orders.csv"
	OrderItemsFile = "order_items.csv"
	PaymentsFile   = "payments.csv"
)

// DateLayout is used for date-only fields, TimestampLayout for datetimes.
// Both sort lexicographically, which the report's ORDER BY relies on.
const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02T15:04:05"
)

var (
	CustomersHeader = []string{
		"customer_id", "first_name", "last_name", "email", "phone", "address",
		"city", "state", "zip_code", "country", "date_registered", "is_active",
	}
	ProductsHeader = []string{
		"product_id", "product_name", "category", "description", "price",
		"cost", "stock_quantity", "sku", "brand", "created_date", "is_active",
	}
	OrdersHeader = []string{
		"order_id", "customer_id", "order_date", "status", "shipping_address",
		"shipping_city", "shipping_state", "shipping_zip", "shipping_country",
		"shipping_cost", "tax_amount", "subtotal", "total_amount",
	}
	OrderItemsHeader = []string{
		"item_id", "order_id", "product_id", "quantity", "unit_price",
		"discount", "subtotal",
	}
	PaymentsHeader = []string{
		"payment_id", "order_id", "payment_date", "payment_method", "amount",
		"status", "transaction_id",
	}
)

// Dataset bundles the five generated record sets.
type Dataset struct {
	Customers  []model.Customer
	Products   []model.Product
	Orders     []model.Order
	OrderItems []model.OrderItem
	Payments   []model.Payment
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatBool(v bool) string {
	return strconv.FormatBool(v)
}

func formatID(v int64) string {
	return strconv.FormatInt(v, 10)
}

// CustomerRecord encodes a customer as a CSV row in CustomersHeader order.
func CustomerRecord(c model.Customer) []string {
	return []string{
		formatID(c.ID),
		c.FirstName,
		c.LastName,
		c.Email,
		c.Phone,
		c.Address,
		c.City,
		c.State,
		c.ZipCode,
		c.Country,
		c.DateRegistered.Format(DateLayout),
		formatBool(c.IsActive),
	}
}

// ProductRecord encodes a product as a CSV row in ProductsHeader order.
func ProductRecord(p model.Product) []string {
	return []string{
		formatID(p.ID),
		p.Name,
		p.Category,
		p.Description,
		formatMoney(p.Price),
		formatMoney(p.Cost),
		strconv.Itoa(p.Stock),
		p.SKU,
		p.Brand,
		p.CreatedDate.Format(DateLayout),
		formatBool(p.IsActive),
	}
}

// OrderRecord encodes an order as a CSV row in OrdersHeader order.
func OrderRecord(o model.Order) []string {
	return []string{
		formatID(o.ID),
		formatID(o.CustomerID),
		o.OrderDate.Format(TimestampLayout),
		string(o.Status),
		o.ShippingAddress,
		o.ShippingCity,
		o.ShippingState,
		o.ShippingZip,
		o.ShippingCountry,
		formatMoney(o.ShippingCost),
		formatMoney(o.TaxAmount),
		formatMoney(o.Subtotal),
		formatMoney(o.TotalAmount),
	}
}

// OrderItemRecord encodes an order item as a CSV row in OrderItemsHeader order.
func OrderItemRecord(i model.OrderItem) []string {
	return []string{
		formatID(i.ID),
		formatID(i.OrderID),
		formatID(i.ProductID),
		strconv.Itoa(i.Quantity),
		formatMoney(i.UnitPrice),
		formatFloat(i.Discount),
		formatMoney(i.Subtotal),
	}
}

// PaymentRecord encodes a payment as a CSV row in PaymentsHeader order.
func PaymentRecord(p model.Payment) []string {
	return []string{
		formatID(p.ID),
		formatID(p.OrderID),
		p.PaymentDate.Format(TimestampLayout),
		p.Method,
		formatMoney(p.Amount),
		string(p.Status),
		p.TransactionID,
	}
}

type fieldError struct {
	column string
	err    error
}

func (e fieldError) Error() string {
	return fmt.Sprintf("column %s: %v", e.column, e.err)
}

func (e fieldError) Unwrap() error { return e.err }

func parseID(column, s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fieldError{column: column, err: err}
	}
	return v, nil
}

func parseInt(column, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fieldError{column: column, err: err}
	}
	return v, nil
}

func parseFloat(column, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fieldError{column: column, err: err}
	}
	return v, nil
}

func parseBool(column, s string) (bool, error) {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fieldError{column: column, err: err}
	}
	return v, nil
}

func parseTime(column, layout, s string) (time.Time, error) {
	v, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, fieldError{column: column, err: err}
	}
	return v, nil
}

// ParseCustomer decodes a CSV row produced by CustomerRecord.
func ParseCustomer(rec []string) (model.Customer, error) {
	var c model.Customer
	var err error
	if c.ID, err = parseID("customer_id", rec[0]); err != nil {
		return c, err
	}
	c.FirstName = rec[1]
	c.LastName = rec[2]
	c.Email = rec[3]
	c.Phone = rec[4]
	c.Address = rec[5]
	c.City = rec[6]
	c.State = rec[7]
	c.ZipCode = rec[8]
	c.Country = rec[9]
	if c.DateRegistered, err = parseTime("date_registered", DateLayout, rec[10]); err != nil {
		return c, err
	}
	if c.IsActive, err = parseBool("is_active", rec[11]); err != nil {
		return c, err
	}
	return c, nil
}

// ParseProduct decodes a CSV row produced by ProductRecord.
func ParseProduct(rec []string) (model.Product, error) {
	var p model.Product
	var err error
	if p.ID, err = parseID("product_id", rec[0]); err != nil {
		return p, err
	}
	p.Name = rec[1]
	p.Category = rec[2]
	p.Description = rec[3]
	if p.Price, err = parseFloat("price", rec[4]); err != nil {
		return p, err
	}
	if p.Cost, err = parseFloat("cost", rec[5]); err != nil {
		return p, err
	}
	if p.Stock, err = parseInt("stock_quantity", rec[6]); err != nil {
		return p, err
	}
	p.SKU = rec[7]
	p.Brand = rec[8]
	if p.CreatedDate, err = parseTime("created_date", DateLayout, rec[9]); err != nil {
		return p, err
	}
	if p.IsActive, err = parseBool("is_active", rec[10]); err != nil {
		return p, err
	}
	return p, nil
}

// ParseOrder decodes a CSV row produced by OrderRecord.
func ParseOrder(rec []string) (model.Order, error) {
	var o model.Order
	var err error
	if o.ID, err = parseID("order_id", rec[0]); err != nil {
		return o, err
	}
	if o.CustomerID, err = parseID("customer_id", rec[1]); err != nil {
		return o, err
	}
	if o.OrderDate, err = parseTime("order_date", TimestampLayout, rec[2]); err != nil {
		return o, err
	}
	o.Status = model.OrderStatus(rec[3])
	o.ShippingAddress = rec[4]
	o.ShippingCity = rec[5]
	o.ShippingState = rec[6]
	o.ShippingZip = rec[7]
	o.ShippingCountry = rec[8]
	if o.ShippingCost, err = parseFloat("shipping_cost", rec[9]); err != nil {
		return o, err
	}
	if o.TaxAmount, err = parseFloat("tax_amount", rec[10]); err != nil {
		return o, err
	}
	if o.Subtotal, err = parseFloat("subtotal", rec[11]); err != nil {
		return o, err
	}
	if o.TotalAmount, err = parseFloat("total_amount", rec[12]); err != nil {
		return o, err
	}
	return o, nil
}

// ParseOrderItem decodes a CSV row produced by OrderItemRecord.
func ParseOrderItem(rec []string) (model.OrderItem, error) {
	var i model.OrderItem
	var err error
	if i.ID, err = parseID("item_id", rec[0]); err != nil {
		return i, err
	}
	if i.OrderID, err = parseID("order_id", rec[1]); err != nil {
		return i, err
	}
	if i.ProductID, err = parseID("product_id", rec[2]); err != nil {
		return i, err
	}
	if i.Quantity, err = parseInt("quantity", rec[3]); err != nil {
		return i, err
	}
	if i.UnitPrice, err = parseFloat("unit_price", rec[4]); err != nil {
		return i, err
	}
	if i.Discount, err = parseFloat("discount", rec[5]); err != nil {
		return i, err
	}
	if i.Subtotal, err = parseFloat("subtotal", rec[6]); err != nil {
		return i, err
	}
	return i, nil
}

// ParsePayment decodes a CSV row produced by PaymentRecord.
func ParsePayment(rec []string) (model.Payment, error) {
	var p model.Payment
	var err error
	if p.ID, err = parseID("payment_id", rec[0]); err != nil {
		return p, err
	}
	if p.OrderID, err = parseID("order_id", rec[1]); err != nil {
		return p, err
	}
	if p.PaymentDate, err = parseTime("payment_date", TimestampLayout, rec[2]); err != nil {
		return p, err
	}
	p.Method = rec[3]
	if p.Amount, err = parseFloat("amount", rec[4]); err != nil {
		return p, err
	}
	p.Status = model.PaymentStatus(rec[5])
	p.TransactionID = rec[6]
	return p, nil
}
