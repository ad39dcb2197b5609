package normalize

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/encoding/charmap"

	"github.com/rmonteiro/fuel-data/internal/model"
)

// Batch is the outcome of normalizing one survey file.
//
// Records holds one record per distinct key: when two rows of the same file
// normalize to the same key, the first occurrence wins and later ones are
// counted in Collapsed. len(Records) + Empty + Rejected + Collapsed equals
// Total.
type Batch struct {
	Records   []model.Record
	Total     int // data rows read (header excluded)
	Empty     int // fully blank rows, dropped silently
	Rejected  int // rows missing or failing to parse a key field
	Collapsed int // intra-batch duplicate keys, first occurrence kept
}

// Date layouts accepted for the collection date. Survey files write
// dd/mm/yyyy; the canonical form is accepted too so re-exported data
// round-trips.
var dateLayouts = []string{"02/01/2006", model.DateLayout}

// Read consumes a survey file and returns the normalized batch.
//
// The reader is decoded from ISO-8859-1, split on ';', and the header row
// is translated through the column table. A file without a header row is
// an error; per-row problems never are.
func Read(r io.Reader) (*Batch, error) {
	cr := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(r))
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header row: %w", err)
	}

	// Column index -> canonical field name.
	fields := make(map[int]string, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if canonical, ok := columnTable[name]; ok {
			fields[i] = canonical
		}
	}

	batch := &Batch{}
	seen := make(map[model.Key]struct{})

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", batch.Total+1, err)
		}
		batch.Total++

		values := make(map[string]string, len(fields))
		blank := true
		for i, cell := range row {
			if strings.TrimSpace(cell) != "" {
				blank = false
			}
			if canonical, ok := fields[i]; ok {
				values[canonical] = cell
			}
		}
		if blank {
			batch.Empty++
			continue
		}

		rec, ok := normalizeRow(values)
		if !ok {
			batch.Rejected++
			continue
		}

		key := rec.Key()
		if _, dup := seen[key]; dup {
			batch.Collapsed++
			continue
		}
		seen[key] = struct{}{}
		batch.Records = append(batch.Records, rec)
	}

	return batch, nil
}

// normalizeRow maps translated cell values into a Record. ok is false when
// a key field (seller, date, product) or the sale price is missing or
// unparsable.
func normalizeRow(values map[string]string) (model.Record, bool) {
	sellerID := strings.TrimSpace(values[fieldSellerID])
	product := strings.TrimSpace(values[fieldProduct])
	if sellerID == "" || product == "" {
		return model.Record{}, false
	}

	date, err := parseDate(values[fieldCollectionDate])
	if err != nil {
		return model.Record{}, false
	}

	salePrice, err := parsePrice(values[fieldSalePrice])
	if err != nil || salePrice < 0 {
		return model.Record{}, false
	}

	rec := model.Record{
		RegionCode:     strings.TrimSpace(values[fieldRegionCode]),
		StateCode:      strings.TrimSpace(values[fieldStateCode]),
		Municipality:   strings.TrimSpace(values[fieldMunicipality]),
		SellerName:     strings.TrimSpace(values[fieldSellerName]),
		SellerID:       sellerID,
		Product:        product,
		CollectionDate: date,
		SalePrice:      salePrice,
		Unit:           strings.TrimSpace(values[fieldUnit]),
		Brand:          strings.TrimSpace(values[fieldBrand]),
	}

	// Purchase price is frequently absent from the surveys; keep the
	// record either way.
	if pp, err := parsePrice(values[fieldPurchasePrice]); err == nil {
		rec.PurchasePrice = &pp
	}

	return rec, true
}

// parseDate accepts the survey's dd/mm/yyyy form and the canonical form.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// parsePrice parses a decimal that uses ',' as the decimal separator.
func parsePrice(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty price")
	}
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
}
