// Package journal serializes annotated records to the journal sheet CSV
// handed off for manual review and tax filing.
package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shiwake-dev/shiwake/internal/model"
)

// Header is the CSV header for the journal sheet. The column order is fixed
// and downstream spreadsheets depend on it.
const Header = "date,account,merchant,amount,usage,business_amount"

const (
	numFields   = 6
	dateFormat  = "2006-01-02"
	colDate     = 0
	colAccount  = 1
	colMerchant = 2
	colAmount   = 3
	colUsage    = 4
	colBusiness = 5
)

// WriteRecords writes annotated records to a journal sheet (including header).
func WriteRecords(w io.Writer, recs []model.AnnotatedRecord) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, rec := range recs {
		if err := cw.Write(MarshalRecord(rec)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// ReadRecords reads a journal sheet back into annotated records.
func ReadRecords(r io.Reader) ([]model.AnnotatedRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading journal CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var recs []model.AnnotatedRecord
	for i, rec := range records[1:] {
		out, err := UnmarshalRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		recs = append(recs, out)
	}
	return recs, nil
}

// MarshalRecord converts an AnnotatedRecord to a CSV row.
func MarshalRecord(rec model.AnnotatedRecord) []string {
	row := make([]string, numFields)
	row[colDate] = rec.Date.Format(dateFormat)
	row[colAccount] = rec.Account
	row[colMerchant] = rec.Merchant
	row[colAmount] = rec.Amount.String()
	row[colUsage] = string(rec.Usage)
	row[colBusiness] = rec.BusinessAmount.String()
	return row
}

// UnmarshalRecord converts a CSV row to an AnnotatedRecord.
func UnmarshalRecord(record []string) (model.AnnotatedRecord, error) {
	if len(record) != numFields {
		return model.AnnotatedRecord{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.AnnotatedRecord{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.AnnotatedRecord{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	business, err := decimal.NewFromString(record[colBusiness])
	if err != nil {
		return model.AnnotatedRecord{}, fmt.Errorf("parsing business_amount %q: %w", record[colBusiness], err)
	}

	return model.AnnotatedRecord{
		Date:           date,
		Account:        record[colAccount],
		Merchant:       record[colMerchant],
		Amount:         amount,
		Usage:          model.UsageCategory(record[colUsage]),
		BusinessAmount: business,
	}, nil
}
