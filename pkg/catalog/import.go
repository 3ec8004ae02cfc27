package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/shopscope/pkg/domain"
)

// ImportStats reports results of a CSV import
type ImportStats struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// ImportCSV reads products from CSV with a header row naming columns name, stock, price
// and optional description, in any order. Invalid rows are logged and skipped. If the tag model
// is not fitted yet, it is fitted on stored descriptions together with the imported ones before
// any row is saved, then each product is saved with SaveProduct. Storage errors stop the import.
func (s *Service) ImportCSV(ctx context.Context, r io.Reader) (ImportStats, error) {
	var stats ImportStats
	rows, err := s.readProducts(ctx, r, &stats)
	if err != nil {
		return stats, err
	}

	descriptions := make([]string, 0, len(rows))
	for _, row := range rows {
		descriptions = append(descriptions, row.product.Description)
	}
	if err := s.fitCorpus(ctx, descriptions); err != nil {
		lgr.Printf("[WARN] failed to fit tag model before import: %v", err)
	}

	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if err := s.SaveProduct(ctx, row.product); err != nil {
			if errors.Is(err, ErrInvalidProduct) {
				lgr.Printf("[WARN] skip csv line %d: %v", row.line, err)
				stats.Skipped++
				continue
			}
			return stats, fmt.Errorf("import csv line %d: %w", row.line, err)
		}
		stats.Imported++
		lgr.Printf("[INFO] product %q imported", row.product.Name)
	}
	return stats, nil
}

type csvRow struct {
	line    int
	product *domain.Product
}

// readProducts parses all CSV rows, counting unparseable ones as skipped
func (s *Service) readProducts(ctx context.Context, r io.Reader, stats *ImportStats) ([]csvRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	cols := map[string]int{}
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\uFEFF")))] = i
	}
	for _, required := range []string{"name", "stock", "price"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("csv header misses column %q", required)
		}
	}

	var rows []csvRow
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}

		p, err := parseProductRow(rec, cols)
		if err != nil {
			lgr.Printf("[WARN] skip csv line %d: %v", line, err)
			stats.Skipped++
			continue
		}
		rows = append(rows, csvRow{line: line, product: p})
	}
	return rows, nil
}

func parseProductRow(rec []string, cols map[string]int) (*domain.Product, error) {
	field := func(name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[idx])
	}

	stock, err := strconv.Atoi(field("stock"))
	if err != nil {
		return nil, fmt.Errorf("invalid stock %q", field("stock"))
	}
	price, err := parsePrice(field("price"))
	if err != nil {
		return nil, err
	}
	return &domain.Product{
		Name:        field("name"),
		Stock:       stock,
		PriceCents:  price,
		Description: field("description"),
	}, nil
}

// parsePrice converts a decimal price to cents, rounding to the nearest cent
func parsePrice(s string) (int64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid price %q", s)
	}
	return int64(math.Round(v * 100)), nil
}
