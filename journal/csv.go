package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// ReadCSV decodes a broker export into its header list and raw rows. Ragged
// rows are tolerated; cells beyond the header count are ignored and missing
// cells read as empty.
func ReadCSV(r io.Reader) ([]string, []RawRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("empty csv")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []RawRow
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read csv row %d: %w", len(rows)+2, err)
		}
		row := make(RawRow, len(header))
		for i, h := range header {
			if i < len(rec) {
				row[h] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

// ReadCSVFile is ReadCSV over a file on disk.
func ReadCSVFile(path string) ([]string, []RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// exportHeader is the fixed canonical column order for normalized exports.
var exportHeader = []string{
	"datetime", "symbol", "side", "qty", "price", "pnl",
	"notes", "strategy", "tags", "buy_fill_id", "sell_fill_id", "image_url",
}

// ExportCSV writes normalized trades with the canonical header. Tag lists
// are joined with commas, so the export reimports cleanly.
func ExportCSV(w io.Writer, trades []Trade) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, t := range trades {
		err := cw.Write([]string{
			t.Time.Format(time.RFC3339),
			t.Symbol,
			string(t.Side),
			f(t.Qty),
			f(t.Price),
			f(t.PnL),
			t.Notes,
			t.Strategy,
			strings.Join(t.Tags, ","),
			t.BuyFillID,
			t.SellFillID,
			t.ImageURL,
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
