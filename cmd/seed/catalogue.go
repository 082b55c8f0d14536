package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/kwawicks/kwawicks-api/internal/application/dto"
)

// catalogueColumns is the expected header, in any order. Only name is required.
var catalogueColumns = []string{"name", "unitCost", "sellPrice", "vat", "qtyOnHandHub", "qtyBookedOutForDelivery"}

// readCatalogue parses a species CSV. Files that are not valid UTF-8 are
// read as Windows-1252, which is what spreadsheet exports usually are.
func readCatalogue(r io.Reader) ([]dto.CreateSpeciesRequest, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var src io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		src = transform.NewReader(src, charmap.Windows1252.NewDecoder())
	}

	cr := csv.NewReader(src)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		for _, known := range catalogueColumns {
			if strings.EqualFold(h, known) {
				cols[known] = i
			}
		}
	}
	if _, ok := cols["name"]; !ok {
		return nil, fmt.Errorf("header has no name column")
	}

	var out []dto.CreateSpeciesRequest
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		field := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		if field("name") == "" {
			continue
		}

		row := dto.CreateSpeciesRequest{Name: field("name")}
		if row.UnitCost, err = parseAmount(field("unitCost")); err != nil {
			return nil, fmt.Errorf("line %d: unitCost: %w", line, err)
		}
		if row.Vat, err = parseAmount(field("vat")); err != nil {
			return nil, fmt.Errorf("line %d: vat: %w", line, err)
		}
		if s := field("sellPrice"); s != "" {
			d, err := parseAmount(s)
			if err != nil {
				return nil, fmt.Errorf("line %d: sellPrice: %w", line, err)
			}
			row.SellPrice = decimal.NewNullDecimal(d)
		}
		if row.QtyOnHandHub, err = parseQty(field("qtyOnHandHub")); err != nil {
			return nil, fmt.Errorf("line %d: qtyOnHandHub: %w", line, err)
		}
		if row.QtyBookedOutForDelivery, err = parseQty(field("qtyBookedOutForDelivery")); err != nil {
			return nil, fmt.Errorf("line %d: qtyBookedOutForDelivery: %w", line, err)
		}
		out = append(out, row)
	}
}

func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(strings.TrimPrefix(s, "R"))
}

func parseQty(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
