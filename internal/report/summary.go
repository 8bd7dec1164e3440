package report

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Summary aggregates the report. Revenue and average order value are counted
// once per order, not once per item row.
type Summary struct {
	Rows            int
	UniqueCustomers int
	UniqueOrders    int
	UniqueProducts  int
	TotalQuantity   int
	TotalRevenue    float64
	AvgOrderValue   float64
}

// Summarize computes the summary block over the full result set.
func Summarize(rows []Row) Summary {
	s := Summary{Rows: len(rows)}

	customers := make(map[string]bool)
	products := make(map[string]bool)
	orderPaid := make(map[int64]float64)

	for _, r := range rows {
		customers[r.CustomerName] = true
		products[r.ProductName] = true
		orderPaid[r.OrderID] = r.TotalAmountPaid
		s.TotalQuantity += r.Quantity
	}

	s.UniqueCustomers = len(customers)
	s.UniqueProducts = len(products)
	s.UniqueOrders = len(orderPaid)
	for _, paid := range orderPaid {
		s.TotalRevenue += paid
	}
	if s.UniqueOrders > 0 {
		s.AvgOrderValue = s.TotalRevenue / float64(s.UniqueOrders)
	}
	return s
}

// PrintSummary writes the summary block with thousands-separated totals.
func PrintSummary(w io.Writer, s Summary) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "Total records: %d\n", s.Rows)
	p.Fprintf(w, "Unique customers: %d\n", s.UniqueCustomers)
	p.Fprintf(w, "Unique orders: %d\n", s.UniqueOrders)
	p.Fprintf(w, "Unique products: %d\n", s.UniqueProducts)
	p.Fprintf(w, "Total quantity sold: %d\n", s.TotalQuantity)
	p.Fprintf(w, "Total revenue (completed payments): $%.2f\n", s.TotalRevenue)
	p.Fprintf(w, "Average order value: $%.2f\n", s.AvgOrderValue)
}
