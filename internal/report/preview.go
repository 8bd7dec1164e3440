package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderPreview prints a human-readable table of the first limit rows.
func RenderPreview(w io.Writer, rows []Row, limit int) {
	if limit <= 0 || limit > len(rows) {
		limit = len(rows)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{
		"Customer", "Email", "Order", "Order Date", "Product", "Qty", "Price", "Paid",
	})
	for _, r := range rows[:limit] {
		t.AppendRow(table.Row{
			r.CustomerName,
			r.Email,
			r.OrderID,
			r.OrderDate,
			r.ProductName,
			r.Quantity,
			fmt.Sprintf("%.2f", r.Price),
			fmt.Sprintf("%.2f", r.TotalAmountPaid),
		})
	}
	t.Render()
	fmt.Fprintf(w, "showing %d of %d rows\n", limit, len(rows))
}
