// Package review records rows the pipeline could not settle on its own:
// unclassified merchants, apportioned merchants without a ratio, and rows
// priced with a provisional ratio. The flags file drives the manual pass
// over the exported journal sheet.
package review

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Flag is one row in the review flags file.
type Flag struct {
	Date     time.Time
	Merchant string
	Amount   decimal.Decimal
	Reason   string
}

// Header is the CSV header for review-flags.csv.
const Header = "date,merchant,amount,reason"

const (
	numFields   = 4
	dateFormat  = "2006-01-02"
	logDir      = "logs"
	logFile     = "logs/review-flags.csv"
	colDate     = 0
	colMerchant = 1
	colAmount   = 2
	colReason   = 3
)

// MarshalFlag converts a Flag to a CSV row.
func MarshalFlag(f Flag) []string {
	row := make([]string, numFields)
	row[colDate] = f.Date.Format(dateFormat)
	row[colMerchant] = f.Merchant
	row[colAmount] = f.Amount.String()
	row[colReason] = f.Reason
	return row
}

// UnmarshalFlag converts a CSV row to a Flag.
func UnmarshalFlag(record []string) (Flag, error) {
	if len(record) != numFields {
		return Flag{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return Flag{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return Flag{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	return Flag{
		Date:     date,
		Merchant: record[colMerchant],
		Amount:   amount,
		Reason:   record[colReason],
	}, nil
}

// Append writes flags to <booksRoot>/logs/review-flags.csv, creating the
// file and header if needed.
func Append(booksRoot string, flags []Flag) error {
	dir := filepath.Join(booksRoot, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(booksRoot, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening review flags: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	for i, flag := range flags {
		if err := cw.Write(MarshalFlag(flag)); err != nil {
			return fmt.Errorf("writing flag %d: %w", i, err)
		}
	}
	return cw.Error()
}

// Read returns all flags from <booksRoot>/logs/review-flags.csv.
// Returns nil if the file does not exist.
func Read(booksRoot string) ([]Flag, error) {
	path := filepath.Join(booksRoot, logFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening review flags: %w", err)
	}
	defer f.Close()

	return readFlags(f)
}

func readFlags(r io.Reader) ([]Flag, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading review flags CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	var flags []Flag
	for i, rec := range records[1:] {
		flag, err := UnmarshalFlag(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		flags = append(flags, flag)
	}
	return flags, nil
}
