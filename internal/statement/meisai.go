package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/shiwake-dev/shiwake/internal/model"
)

// MeisaiParser parses debit-card statement exports (meisai_*.csv). The
// files are Shift_JIS, carry a header row, and pad multi-line entries by
// leaving the date cell blank on continuation rows.
type MeisaiParser struct{}

const (
	meisaiColDate   = "お取引日"
	meisaiColDesc   = "お取引内容"
	meisaiColAmount = "お取引金額"
)

// Format returns the parser name.
func (p *MeisaiParser) Format() string { return "meisai" }

// Parse reads a card statement CSV and returns Transactions. Rows that
// cannot yield a dated, numeric transaction are dropped rather than failing
// the file; the caller gets every usable row.
func (p *MeisaiParser) Parse(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(transform.NewReader(r, japanese.ShiftJIS.NewDecoder()))
	cr.FieldsPerRecord = -1 // exports differ in trailing fee columns

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading card statement CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	cols, err := meisaiColumns(records[0])
	if err != nil {
		return nil, err
	}

	var txns []model.Transaction
	var lastDate time.Time
	for _, rec := range records[1:] {
		txn, ok := parseMeisaiRow(rec, cols, &lastDate)
		if !ok {
			continue
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

type meisaiCols struct {
	date, desc, amount int
}

func meisaiColumns(header []string) (meisaiCols, error) {
	cols := meisaiCols{date: -1, desc: -1, amount: -1}
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case meisaiColDate:
			cols.date = i
		case meisaiColDesc:
			cols.desc = i
		case meisaiColAmount:
			cols.amount = i
		}
	}
	if cols.date < 0 || cols.desc < 0 || cols.amount < 0 {
		return cols, fmt.Errorf("card statement header missing %s/%s/%s columns",
			meisaiColDate, meisaiColDesc, meisaiColAmount)
	}
	return cols, nil
}

// parseMeisaiRow converts one data row. Blank dates inherit the previous
// row's date (continuation rows); rows with no parsable date or amount are
// skipped.
func parseMeisaiRow(rec []string, cols meisaiCols, lastDate *time.Time) (model.Transaction, bool) {
	if cols.date >= len(rec) || cols.desc >= len(rec) || cols.amount >= len(rec) {
		return model.Transaction{}, false
	}

	date, ok := parseDate(rec[cols.date], *lastDate)
	if !ok {
		return model.Transaction{}, false
	}
	*lastDate = date

	raw := cleanNumber(rec[cols.amount])
	if raw == "" {
		return model.Transaction{}, false
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return model.Transaction{}, false
	}

	return model.Transaction{
		Date:        date,
		Description: strings.TrimSpace(rec[cols.desc]),
		Amount:      amount,
	}, true
}

func parseDate(cell string, fallback time.Time) (time.Time, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		if fallback.IsZero() {
			return time.Time{}, false
		}
		return fallback, true
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, cell); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}
