package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/oakline/shopdata/internal/model"
)

func TestWriteThenReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.csv")
	order := model.Order{
		ID:           7,
		CustomerID:   3,
		OrderDate:    time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
		Status:       model.OrderStatusShipped,
		ShippingCost: 4.99,
		TaxAmount:    1.25,
		Subtotal:     20,
		TotalAmount:  26.24,
	}
	if err := WriteFile(path, OrdersHeader, [][]string{OrderRecord(order)}); err != nil {
		t.Fatalf("write file: %v", err)
	}

	rows, err := ReadFile(path, OrdersHeader)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	got, err := ParseOrder(rows[0])
	if err != nil {
		t.Fatalf("parse order: %v", err)
	}
	if got.ID != order.ID || got.CustomerID != order.CustomerID {
		t.Fatalf("round trip ids mismatch: %+v", got)
	}
	if !got.OrderDate.Equal(order.OrderDate) {
		t.Fatalf("order date %v, want %v", got.OrderDate, order.OrderDate)
	}
	if got.TotalAmount != order.TotalAmount {
		t.Fatalf("total %v, want %v", got.TotalAmount, order.TotalAmount)
	}
}

func TestReadFileMissingInput(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), CustomersFile), CustomersHeader)
	if !errors.Is(err, ErrMissingInput) {
		t.Fatalf("expected ErrMissingInput, got %v", err)
	}
	if !strings.Contains(err.Error(), "run the generator first") {
		t.Fatalf("expected operator hint in error, got %q", err.Error())
	}
}

func TestReadFileRejectsWrongColumnCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), PaymentsFile)
	content := strings.Join(PaymentsHeader, ",") + "\n1,2,2025-01-01T00:00:00\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := ReadFile(path, PaymentsHeader); err == nil {
		t.Fatal("expected error for short row")
	}
}

func TestReadFileRejectsHeaderMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), CustomersFile)
	header := append([]string(nil), CustomersHeader...)
	header[0] = "id"
	if err := WriteFile(path, header, nil); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	_, err := ReadFile(path, CustomersHeader)
	if err == nil || !strings.Contains(err.Error(), "header column 1") {
		t.Fatalf("expected header mismatch error, got %v", err)
	}
}

func TestParseErrorsNameTheColumn(t *testing.T) {
	rec := OrderItemRecord(model.OrderItem{
		ID: 1, OrderID: 1, ProductID: 1, Quantity: 2, UnitPrice: 10, Subtotal: 20,
	})
	rec[3] = "two"
	_, err := ParseOrderItem(rec)
	if err == nil || !strings.Contains(err.Error(), "column quantity") {
		t.Fatalf("expected quantity column error, got %v", err)
	}
}

func TestMoneyFormatting(t *testing.T) {
	p := model.Product{ID: 1, Name: "Widget", Price: 9.9, Cost: 3, SKU: "SKU-1",
		CreatedDate: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)}
	rec := ProductRecord(p)
	if rec[4] != "9.90" {
		t.Fatalf("price formatted %q, want 9.90", rec[4])
	}
	if rec[5] != "3.00" {
		t.Fatalf("cost formatted %q, want 3.00", rec[5])
	}
}
