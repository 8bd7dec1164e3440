package report

import (
	"strconv"

	"github.com/oakline/shopdata/internal/dataset"
)

func record(r Row) []string {
	return []string{
		r.CustomerName,
		r.Email,
		strconv.FormatInt(r.OrderID, 10),
		r.OrderDate,
		r.ProductName,
		strconv.Itoa(r.Quantity),
		strconv.FormatFloat(r.Price, 'f', 2, 64),
		strconv.FormatFloat(r.TotalAmountPaid, 'f', 2, 64),
	}
}

// WriteCSV writes the full result set to path with the report header.
func WriteCSV(path string, rows []Row) error {
	records := make([][]string, len(rows))
	for i, r := range rows {
		records[i] = record(r)
	}
	return dataset.WriteFile(path, Header, records)
}
