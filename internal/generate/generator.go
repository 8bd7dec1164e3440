// Package generate produces the five synthetic record sets. All randomness
// flows through a single seeded faker instance in a fixed draw order, so one
// seed and one set of counts always yield byte-identical artifacts.
package generate

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/oakline/shopdata/internal/dataset"
	"github.com/oakline/shopdata/internal/model"
)

// Edit-time configuration. Record counts are constants rather than flags on
// purpose: each binary is a zero-argument batch run.
const (
	Seed = 42

	NumCustomers = 150
	NumProducts  = 100
	NumOrders    = 180

	MinItemsPerOrder = 1
	MaxItemsPerOrder = 5
)

// referenceDate anchors every generated date. Anchoring to a constant rather
// than time.Now keeps reruns with the same seed byte-identical.
var referenceDate = time.Date(2025, time.June, 30, 12, 0, 0, 0, time.UTC)

var categories = []string{
	"Electronics", "Clothing", "Home & Garden", "Books", "Sports & Outdoors",
	"Toys & Games", "Health & Beauty", "Automotive", "Food & Beverages", "Pet Supplies",
}

var paymentMethods = []string{
	"Credit Card", "Debit Card", "PayPal", "Bank Transfer", "Cash on Delivery",
}

var orderStatuses = []model.OrderStatus{
	model.OrderStatusPending, model.OrderStatusProcessing, model.OrderStatusShipped,
	model.OrderStatusDelivered, model.OrderStatusCancelled, model.OrderStatusReturned,
}

var paymentStatuses = []model.PaymentStatus{
	model.PaymentStatusPending, model.PaymentStatusCompleted,
	model.PaymentStatusFailed, model.PaymentStatusRefunded,
}

var productSuffixes = []string{"Pro", "Premium", "Deluxe", "Standard", "Basic"}

// Half of the items carry no discount; discounts are fractions of the list
// price applied when computing the item subtotal.
var discounts = []float64{0, 0, 0, 0, 0.10, 0.15, 0.20, 0.25}

// txnNamespace scopes the name-based UUIDs behind transaction ids.
var txnNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("shopdata/payments"))

// Generator produces internally consistent record sets.
type Generator struct {
	faker    *gofakeit.Faker
	validate *validator.Validate
	logger   *slog.Logger
}

// New returns a generator seeded with the package seed.
func New(logger *slog.Logger) *Generator {
	return &Generator{
		faker:    gofakeit.New(Seed),
		validate: validator.New(),
		logger:   logger,
	}
}

// Run generates, validates, and writes the five CSV artifacts under dir.
// Validation happens before anything touches the filesystem, so a bad
// dataset never leaves partial output behind.
func (g *Generator) Run(dir string) error {
	ds := g.Dataset()
	if err := g.Validate(ds); err != nil {
		return err
	}
	if err := dataset.WriteAll(dir, ds); err != nil {
		return err
	}
	g.logger.Info("dataset written",
		slog.String("dir", dir),
		slog.Int("customers", len(ds.Customers)),
		slog.Int("products", len(ds.Products)),
		slog.Int("orders", len(ds.Orders)),
		slog.Int("order_items", len(ds.OrderItems)),
		slog.Int("payments", len(ds.Payments)))
	return nil
}

// Dataset builds the five record sets with resolving foreign keys.
func (g *Generator) Dataset() *dataset.Dataset {
	customers := g.customers(NumCustomers)
	g.logger.Info("generated customers", slog.Int("count", len(customers)))

	products := g.products(NumProducts)
	g.logger.Info("generated products", slog.Int("count", len(products)))

	orders, items := g.orders(NumOrders, len(customers), products)
	g.logger.Info("generated orders", slog.Int("orders", len(orders)), slog.Int("items", len(items)))

	payments := g.payments(orders)
	g.logger.Info("generated payments", slog.Int("count", len(payments)))

	return &dataset.Dataset{
		Customers:  customers,
		Products:   products,
		Orders:     orders,
		OrderItems: items,
		Payments:   payments,
	}
}

func (g *Generator) customers(n int) []model.Customer {
	customers := make([]model.Customer, 0, n)
	for id := int64(1); id <= int64(n); id++ {
		customers = append(customers, model.Customer{
			ID:             id,
			FirstName:      g.faker.FirstName(),
			LastName:       g.faker.LastName(),
			Email:          g.faker.Email(),
			Phone:          g.faker.Phone(),
			Address:        g.faker.Street(),
			City:           g.faker.City(),
			State:          g.faker.State(),
			ZipCode:        g.faker.Zip(),
			Country:        g.faker.Country(),
			DateRegistered: g.dateBetween(referenceDate.AddDate(-2, 0, 0), referenceDate),
			IsActive:       g.faker.Number(1, 4) <= 3, // 75% active
		})
	}
	return customers
}

func (g *Generator) products(n int) []model.Product {
	products := make([]model.Product, 0, n)
	for id := int64(1); id <= int64(n); id++ {
		price := round2(g.faker.Float64Range(5.99, 999.99))
		products = append(products, model.Product{
			ID:          id,
			Name:        g.faker.Slogan() + " " + g.faker.RandomString(productSuffixes),
			Category:    g.faker.RandomString(categories),
			Description: g.faker.Sentence(12),
			Price:       price,
			// Cost lands between 30% and 70% of the list price.
			Cost:        round2(price * g.faker.Float64Range(0.3, 0.7)),
			Stock:       g.faker.Number(0, 500),
			SKU:         strings.ToUpper(g.faker.Lexify(g.faker.Numerify("SKU-####-???"))),
			Brand:       g.faker.Company(),
			CreatedDate: g.dateBetween(referenceDate.AddDate(-1, 0, 0), referenceDate),
			IsActive:    g.faker.Number(1, 4) <= 3,
		})
	}
	return products
}

func (g *Generator) orders(n, numCustomers int, products []model.Product) ([]model.Order, []model.OrderItem) {
	orders := make([]model.Order, 0, n)
	items := make([]model.OrderItem, 0, n*MaxItemsPerOrder)
	itemID := int64(1)

	for id := int64(1); id <= int64(n); id++ {
		order := model.Order{
			ID:              id,
			CustomerID:      int64(g.faker.Number(1, numCustomers)),
			OrderDate:       g.timestampBetween(referenceDate.AddDate(0, 0, -365), referenceDate),
			Status:          orderStatuses[g.faker.Number(0, len(orderStatuses)-1)],
			ShippingAddress: g.faker.Street(),
			ShippingCity:    g.faker.City(),
			ShippingState:   g.faker.State(),
			ShippingZip:     g.faker.Zip(),
			ShippingCountry: g.faker.Country(),
			ShippingCost:    round2(g.faker.Float64Range(0, 25.99)),
			TaxAmount:       round2(g.faker.Float64Range(0, 50)),
		}

		subtotal := 0.0
		for _, productID := range g.pickProducts(len(products)) {
			product := products[productID-1]
			quantity := g.faker.Number(1, 5)
			discount := discounts[g.faker.Number(0, len(discounts)-1)]
			itemSubtotal := round2(float64(quantity) * product.Price * (1 - discount))
			items = append(items, model.OrderItem{
				ID:        itemID,
				OrderID:   id,
				ProductID: product.ID,
				Quantity:  quantity,
				UnitPrice: product.Price,
				Discount:  discount,
				Subtotal:  itemSubtotal,
			})
			itemID++
			subtotal += itemSubtotal
		}

		order.Subtotal = round2(subtotal)
		order.TotalAmount = round2(order.Subtotal + order.ShippingCost + order.TaxAmount)
		orders = append(orders, order)
	}
	return orders, items
}

// pickProducts draws between MinItemsPerOrder and MaxItemsPerOrder distinct
// product ids in [1, numProducts].
func (g *Generator) pickProducts(numProducts int) []int {
	n := g.faker.Number(MinItemsPerOrder, MaxItemsPerOrder)
	if n > numProducts {
		n = numProducts
	}
	picked := make([]int, 0, n)
	seen := make(map[int]bool, n)
	for len(picked) < n {
		id := g.faker.Number(1, numProducts)
		if seen[id] {
			continue
		}
		seen[id] = true
		picked = append(picked, id)
	}
	return picked
}

func (g *Generator) payments(orders []model.Order) []model.Payment {
	payments := make([]model.Payment, 0, len(orders))
	paymentID := int64(1)

	for _, order := range orders {
		if g.faker.Number(1, 4) < 4 {
			// Single payment covering the full order, any status.
			payments = append(payments, model.Payment{
				ID:            paymentID,
				OrderID:       order.ID,
				PaymentDate:   g.timestampBetween(order.OrderDate, order.OrderDate.AddDate(0, 0, 7)),
				Method:        g.faker.RandomString(paymentMethods),
				Amount:        order.TotalAmount,
				Status:        paymentStatuses[g.faker.Number(0, len(paymentStatuses)-1)],
				TransactionID: transactionID(paymentID),
			})
			paymentID++
			continue
		}

		// 60/40 split: a partial payment then the remainder, both completed.
		first := round2(order.TotalAmount * 0.6)
		second := round2(order.TotalAmount - first)
		firstDate := g.timestampBetween(order.OrderDate, order.OrderDate.AddDate(0, 0, 3))
		secondDate := g.timestampBetween(firstDate, order.OrderDate.AddDate(0, 0, 7))

		payments = append(payments, model.Payment{
			ID:            paymentID,
			OrderID:       order.ID,
			PaymentDate:   firstDate,
			Method:        g.faker.RandomString(paymentMethods),
			Amount:        first,
			Status:        model.PaymentStatusCompleted,
			TransactionID: transactionID(paymentID),
		})
		paymentID++

		payments = append(payments, model.Payment{
			ID:            paymentID,
			OrderID:       order.ID,
			PaymentDate:   secondDate,
			Method:        g.faker.RandomString(paymentMethods),
			Amount:        second,
			Status:        model.PaymentStatusCompleted,
			TransactionID: transactionID(paymentID),
		})
		paymentID++
	}
	return payments
}

// Validate runs the struct validators over every record before it is written.
func (g *Generator) Validate(ds *dataset.Dataset) error {
	for _, c := range ds.Customers {
		if err := g.validate.Struct(c); err != nil {
			return fmt.Errorf("customer %d: %w", c.ID, err)
		}
	}
	for _, p := range ds.Products {
		if err := g.validate.Struct(p); err != nil {
			return fmt.Errorf("product %d: %w", p.ID, err)
		}
	}
	for _, o := range ds.Orders {
		if err := g.validate.Struct(o); err != nil {
			return fmt.Errorf("order %d: %w", o.ID, err)
		}
	}
	for _, i := range ds.OrderItems {
		if err := g.validate.Struct(i); err != nil {
			return fmt.Errorf("order item %d: %w", i.ID, err)
		}
	}
	for _, p := range ds.Payments {
		if err := g.validate.Struct(p); err != nil {
			return fmt.Errorf("payment %d: %w", p.ID, err)
		}
	}
	return nil
}

func (g *Generator) dateBetween(start, end time.Time) time.Time {
	d := g.faker.DateRange(start, end)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

func (g *Generator) timestampBetween(start, end time.Time) time.Time {
	return g.faker.DateRange(start, end).Truncate(time.Second).UTC()
}

// transactionID derives a stable external reference from the payment id.
func transactionID(paymentID int64) string {
	id := uuid.NewSHA1(txnNamespace, []byte(fmt.Sprintf("payment-%d", paymentID)))
	return "TXN-" + strings.ToUpper(hex.EncodeToString(id[:]))[:10]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
