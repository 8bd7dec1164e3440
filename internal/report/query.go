// Package report runs the denormalized order report: one row per order item
// with its customer, product, and the summed completed payments of its order.
package report

import (
	"context"
	"database/sql"
	"fmt"
)

// Query is the whole report, executed as a single parameterless statement.
// The left join substitutes zero for orders without a completed payment.
const Query = `
SELECT
    c.first_name || ' ' || c.last_name AS customer_name,
    c.email,
    o.order_id,
    o.order_date,
    p.product_name,
    oi.quantity,
    oi.unit_price AS price,
    COALESCE(payment_totals.total_amount_paid, 0) AS total_amount_paid
FROM
    order_items oi
    INNER JOIN orders o ON oi.order_id = o.order_id
    INNER JOIN customers c ON o.customer_id = c.customer_id
    INNER JOIN products p ON oi.product_id = p.product_id
    LEFT JOIN (
        SELECT
            order_id,
            SUM(amount) AS total_amount_paid
        FROM payments
        WHERE status = 'Completed'
        GROUP BY order_id
    ) payment_totals ON o.order_id = payment_totals.order_id
ORDER BY
    o.order_date DESC`

// Header is the report CSV header row.
var Header = []string{
	"customer_name", "email", "order_id", "order_date", "product_name",
	"quantity", "price", "total_amount_paid",
}

// Row is one report line.
type Row struct {
	CustomerName    string
	Email           string
	OrderID         int64
	OrderDate       string
	ProductName     string
	Quantity        int
	Price           float64
	TotalAmountPaid float64
}

// Fetch materializes the full result set. Data volumes are small (hundreds
// of rows), so no pagination.
func Fetch(ctx context.Context, db *sql.DB) ([]Row, error) {
	rows, err := db.QueryContext(ctx, Query)
	if err != nil {
		return nil, fmt.Errorf("report query: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.CustomerName, &r.Email, &r.OrderID, &r.OrderDate,
			&r.ProductName, &r.Quantity, &r.Price, &r.TotalAmountPaid); err != nil {
			return nil, fmt.Errorf("scan report row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate report rows: %w", err)
	}
	return out, nil
}
