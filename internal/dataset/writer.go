package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	csvFlushEvery = 200
	csvBufferSize = 32 * 1024
)

type csvStreamer struct {
	buf          *bufio.Writer
	csv          *csv.Writer
	flushEvery   int
	pendingLines int
}

func newCSVStreamer(w io.Writer) *csvStreamer {
	buf := bufio.NewWriterSize(w, csvBufferSize)
	return &csvStreamer{buf: buf, csv: csv.NewWriter(buf), flushEvery: csvFlushEvery}
}

func (s *csvStreamer) writeRow(row []string) error {
	if s == nil || s.csv == nil {
		return fmt.Errorf("csv streamer not initialised")
	}
	if err := s.csv.Write(row); err != nil {
		return err
	}
	s.pendingLines++
	if s.flushEvery > 0 && s.pendingLines >= s.flushEvery {
		return s.Flush()
	}
	return nil
}

func (s *csvStreamer) Flush() error {
	if s == nil || s.csv == nil || s.buf == nil {
		return fmt.Errorf("csv streamer not initialised")
	}
	s.csv.Flush()
	if err := s.csv.Error(); err != nil {
		return err
	}
	if err := s.buf.Flush(); err != nil {
		return err
	}
	s.pendingLines = 0
	return nil
}

func (s *csvStreamer) Close() error {
	return s.Flush()
}

// WriteFile writes a header row plus data rows to path, creating or
// truncating the file. An unwritable path is returned as-is to the caller,
// which treats it as fatal.
func WriteFile(path string, header []string, rows [][]string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	streamer := newCSVStreamer(f)
	if err := streamer.writeRow(header); err != nil {
		return fmt.Errorf("write %s header: %w", path, err)
	}
	for i, row := range rows {
		if err := streamer.writeRow(row); err != nil {
			return fmt.Errorf("write %s row %d: %w", path, i+1, err)
		}
	}
	return streamer.Close()
}

// WriteAll serialises the dataset into the five CSV artifacts under dir,
// creating the directory when it is missing.
func WriteAll(dir string, ds *Dataset) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir %s: %w", dir, err)
	}

	customers := make([][]string, len(ds.Customers))
	for i, c := range ds.Customers {
		customers[i] = CustomerRecord(c)
	}
	if err := WriteFile(filepath.Join(dir, CustomersFile), CustomersHeader, customers); err != nil {
		return err
	}

	products := make([][]string, len(ds.Products))
	for i, p := range ds.Products {
		products[i] = ProductRecord(p)
	}
	if err := WriteFile(filepath.Join(dir, ProductsFile), ProductsHeader, products); err != nil {
		return err
	}

	orders := make([][]string, len(ds.Orders))
	for i, o := range ds.Orders {
		orders[i] = OrderRecord(o)
	}
	if err := WriteFile(filepath.Join(dir, OrdersFile), OrdersHeader, orders); err != nil {
		return err
	}

	items := make([][]string, len(ds.OrderItems))
	for i, it := range ds.OrderItems {
		items[i] = OrderItemRecord(it)
	}
	if err := WriteFile(filepath.Join(dir, OrderItemsFile), OrderItemsHeader, items); err != nil {
		return err
	}

	payments := make([][]string, len(ds.Payments))
	for i, p := range ds.Payments {
		payments[i] = PaymentRecord(p)
	}
	return WriteFile(filepath.Join(dir, PaymentsFile), PaymentsHeader, payments)
}
