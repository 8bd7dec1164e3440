package generate

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakline/shopdata/internal/dataset"
	"github.com/oakline/shopdata/internal/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDatasetReferentialIntegrity(t *testing.T) {
	ds := New(testLogger()).Dataset()

	customers := make(map[int64]bool, len(ds.Customers))
	for _, c := range ds.Customers {
		require.False(t, customers[c.ID], "duplicate customer id %d", c.ID)
		customers[c.ID] = true
	}
	products := make(map[int64]bool, len(ds.Products))
	for _, p := range ds.Products {
		require.False(t, products[p.ID], "duplicate product id %d", p.ID)
		products[p.ID] = true
	}
	orders := make(map[int64]bool, len(ds.Orders))
	for _, o := range ds.Orders {
		orders[o.ID] = true
		assert.True(t, customers[o.CustomerID],
			"order %d references missing customer %d", o.ID, o.CustomerID)
	}
	for _, i := range ds.OrderItems {
		assert.True(t, orders[i.OrderID],
			"item %d references missing order %d", i.ID, i.OrderID)
		assert.True(t, products[i.ProductID],
			"item %d references missing product %d", i.ID, i.ProductID)
	}
	for _, p := range ds.Payments {
		assert.True(t, orders[p.OrderID],
			"payment %d references missing order %d", p.ID, p.OrderID)
	}
}

func TestDatasetCounts(t *testing.T) {
	ds := New(testLogger()).Dataset()
	require.Len(t, ds.Customers, NumCustomers)
	require.Len(t, ds.Products, NumProducts)
	require.Len(t, ds.Orders, NumOrders)
	assert.GreaterOrEqual(t, len(ds.OrderItems), NumOrders*MinItemsPerOrder)
	assert.LessOrEqual(t, len(ds.OrderItems), NumOrders*MaxItemsPerOrder)
	assert.GreaterOrEqual(t, len(ds.Payments), NumOrders)
}

func TestOrderItemSubtotal(t *testing.T) {
	ds := New(testLogger()).Dataset()
	allowed := map[float64]bool{0: true, 0.10: true, 0.15: true, 0.20: true, 0.25: true}
	for _, i := range ds.OrderItems {
		assert.GreaterOrEqual(t, i.Quantity, 1)
		assert.LessOrEqual(t, i.Quantity, 5)
		assert.True(t, allowed[i.Discount], "item %d has discount %v", i.ID, i.Discount)
		want := float64(i.Quantity) * i.UnitPrice * (1 - i.Discount)
		assert.InDelta(t, want, i.Subtotal, 0.005,
			"item %d subtotal %v, want %v", i.ID, i.Subtotal, want)
	}
}

func TestProductPriceCoversCost(t *testing.T) {
	ds := New(testLogger()).Dataset()
	for _, p := range ds.Products {
		assert.GreaterOrEqual(t, p.Price, p.Cost, "product %d priced below cost", p.ID)
		assert.GreaterOrEqual(t, p.Cost, 0.0)
		assert.GreaterOrEqual(t, p.Stock, 0)
	}
}

func TestOrderTotals(t *testing.T) {
	ds := New(testLogger()).Dataset()

	itemSubtotals := make(map[int64]float64)
	for _, i := range ds.OrderItems {
		itemSubtotals[i.OrderID] += i.Subtotal
	}
	for _, o := range ds.Orders {
		assert.InDelta(t, itemSubtotals[o.ID], o.Subtotal, 0.005,
			"order %d subtotal mismatch", o.ID)
		assert.InDelta(t, o.Subtotal+o.ShippingCost+o.TaxAmount, o.TotalAmount, 0.011,
			"order %d total mismatch", o.ID)
	}
}

func TestSplitPaymentsCompleteAndSum(t *testing.T) {
	ds := New(testLogger()).Dataset()

	totals := make(map[int64]float64)
	for _, o := range ds.Orders {
		totals[o.ID] = o.TotalAmount
	}
	byOrder := make(map[int64][]model.Payment)
	for _, p := range ds.Payments {
		byOrder[p.OrderID] = append(byOrder[p.OrderID], p)
	}

	split := 0
	for orderID, payments := range byOrder {
		require.NotEmpty(t, payments)
		if len(payments) == 1 {
			assert.InDelta(t, totals[orderID], payments[0].Amount, 0.005)
			continue
		}
		split++
		sum := 0.0
		for _, p := range payments {
			assert.Equal(t, model.PaymentStatusCompleted, p.Status,
				"split payment %d not completed", p.ID)
			sum += p.Amount
		}
		assert.InDelta(t, totals[orderID], sum, 0.011,
			"split payments for order %d do not sum to its total", orderID)
	}
	assert.Greater(t, split, 0, "expected some split-payment orders")
}

func TestPaymentDatesFollowOrderDates(t *testing.T) {
	ds := New(testLogger()).Dataset()
	orderDates := make(map[int64]int64)
	for _, o := range ds.Orders {
		orderDates[o.ID] = o.OrderDate.Unix()
	}
	for _, p := range ds.Payments {
		assert.GreaterOrEqual(t, p.PaymentDate.Unix(), orderDates[p.OrderID],
			"payment %d dated before its order", p.ID)
	}
}

func TestValidatePasses(t *testing.T) {
	g := New(testLogger())
	require.NoError(t, g.Validate(g.Dataset()))
}

func TestValidateRejectsBadRecord(t *testing.T) {
	g := New(testLogger())
	ds := g.Dataset()
	ds.Customers[0].Email = "not-an-email"
	err := g.Validate(ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "customer 1")
}

func TestRegenerationIsByteIdentical(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()

	require.NoError(t, New(testLogger()).Run(dirA))
	require.NoError(t, New(testLogger()).Run(dirB))

	files := []string{
		dataset.CustomersFile, dataset.ProductsFile, dataset.OrdersFile,
		dataset.OrderItemsFile, dataset.PaymentsFile,
	}
	for _, name := range files {
		a, err := os.ReadFile(filepath.Join(dirA, name))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(dirB, name))
		require.NoError(t, err)
		require.Equal(t, a, b, "%s differs between runs with the same seed", name)
	}
}

func TestTransactionIDsAreStableAndUnique(t *testing.T) {
	assert.Equal(t, transactionID(1), transactionID(1))
	ds := New(testLogger()).Dataset()
	seen := make(map[string]bool)
	for _, p := range ds.Payments {
		assert.Contains(t, p.TransactionID, "TXN-")
		assert.False(t, seen[p.TransactionID], "duplicate transaction id %s", p.TransactionID)
		seen[p.TransactionID] = true
	}
}
