package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shiwake-dev/shiwake/internal/model"
)

// IntegratedHeader is the CSV header for the merged bank statement file.
const IntegratedHeader = "date,description,withdrawal,deposit,balance"

const (
	integratedNumFields = 5
	integratedDateFmt   = "2006-01-02"
	intColDate          = 0
	intColDesc          = 1
	intColWithdrawal    = 2
	intColDeposit       = 3
	intColBalance       = 4
)

// WriteIntegrated writes merged bank lines as UTF-8 CSV (including header).
func WriteIntegrated(w io.Writer, lines []model.BankLine) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(IntegratedHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, line := range lines {
		if err := cw.Write(MarshalBankLine(line)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// ReadIntegrated reads a merged bank statement CSV back into lines.
func ReadIntegrated(r io.Reader) ([]model.BankLine, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = integratedNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading integrated CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var lines []model.BankLine
	for i, rec := range records[1:] {
		line, err := UnmarshalBankLine(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// MarshalBankLine converts a BankLine to a CSV row. Zero amounts become
// empty cells.
func MarshalBankLine(line model.BankLine) []string {
	row := make([]string, integratedNumFields)
	row[intColDate] = line.Date.Format(integratedDateFmt)
	row[intColDesc] = line.Description
	if !line.Withdrawal.IsZero() {
		row[intColWithdrawal] = line.Withdrawal.String()
	}
	if !line.Deposit.IsZero() {
		row[intColDeposit] = line.Deposit.String()
	}
	if !line.Balance.IsZero() {
		row[intColBalance] = line.Balance.String()
	}
	return row
}

// UnmarshalBankLine converts a CSV row to a BankLine.
func UnmarshalBankLine(record []string) (model.BankLine, error) {
	if len(record) != integratedNumFields {
		return model.BankLine{}, fmt.Errorf("expected %d fields, got %d", integratedNumFields, len(record))
	}

	date, err := time.Parse(integratedDateFmt, strings.TrimPrefix(record[intColDate], "\ufeff"))
	if err != nil {
		return model.BankLine{}, fmt.Errorf("parsing date %q: %w", record[intColDate], err)
	}

	line := model.BankLine{Date: date, Description: record[intColDesc]}
	for _, f := range []struct {
		col  int
		dst  *decimal.Decimal
		name string
	}{
		{intColWithdrawal, &line.Withdrawal, "withdrawal"},
		{intColDeposit, &line.Deposit, "deposit"},
		{intColBalance, &line.Balance, "balance"},
	} {
		if record[f.col] == "" {
			continue
		}
		d, err := decimal.NewFromString(record[f.col])
		if err != nil {
			return model.BankLine{}, fmt.Errorf("parsing %s %q: %w", f.name, record[f.col], err)
		}
		*f.dst = d
	}
	return line, nil
}
