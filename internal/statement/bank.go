package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/shiwake-dev/shiwake/internal/model"
)

// Bank export column names (CP932 files straight from the bank site).
const (
	bankColDate       = "日付"
	bankColDesc       = "内容"
	bankColWithdrawal = "出金金額(円)"
	bankColDeposit    = "入金金額(円)"
	bankColBalance    = "残高(円)"
)

// ReadBankExport reads one CP932 bank statement export. Rows without a
// parsable date are dropped; blank or malformed amount cells become zero so
// a messy cell never drops a real withdrawal elsewhere in the row.
func ReadBankExport(r io.Reader) ([]model.BankLine, error) {
	cr := csv.NewReader(transform.NewReader(r, japanese.ShiftJIS.NewDecoder()))
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading bank export CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	cols, err := bankColumns(records[0])
	if err != nil {
		return nil, err
	}

	var lines []model.BankLine
	for _, rec := range records[1:] {
		if cols.date >= len(rec) || cols.desc >= len(rec) {
			continue
		}
		date, ok := parseDate(rec[cols.date], time.Time{})
		if !ok {
			continue
		}

		lines = append(lines, model.BankLine{
			Date:        date,
			Description: strings.TrimSpace(rec[cols.desc]),
			Withdrawal:  cellAmount(rec, cols.withdrawal),
			Deposit:     cellAmount(rec, cols.deposit),
			Balance:     cellAmount(rec, cols.balance),
		})
	}
	return lines, nil
}

type bankCols struct {
	date, desc, withdrawal, deposit, balance int
}

func bankColumns(header []string) (bankCols, error) {
	cols := bankCols{date: -1, desc: -1, withdrawal: -1, deposit: -1, balance: -1}
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case bankColDate:
			cols.date = i
		case bankColDesc:
			cols.desc = i
		case bankColWithdrawal:
			cols.withdrawal = i
		case bankColDeposit:
			cols.deposit = i
		case bankColBalance:
			cols.balance = i
		}
	}
	if cols.date < 0 || cols.desc < 0 || cols.withdrawal < 0 {
		return cols, fmt.Errorf("bank export header missing %s/%s/%s columns",
			bankColDate, bankColDesc, bankColWithdrawal)
	}
	return cols, nil
}

func cellAmount(rec []string, col int) decimal.Decimal {
	if col < 0 || col >= len(rec) {
		return decimal.Zero
	}
	raw := cleanNumber(rec[col])
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// MergeBankExports reads several period exports and concatenates them into
// one line sequence sorted ascending by date. A file that cannot be read is
// skipped with a warning written to warn; the merge fails only when no file
// was readable.
func MergeBankExports(paths []string, warn io.Writer) ([]model.BankLine, error) {
	var all []model.BankLine
	readable := false
	for _, path := range paths {
		lines, err := readBankFile(path)
		if err != nil {
			fmt.Fprintf(warn, "warning: skipping %s: %v\n", path, err)
			continue
		}
		readable = true
		all = append(all, lines...)
	}
	if !readable {
		return nil, fmt.Errorf("no readable bank exports among %d files", len(paths))
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Date.Before(all[j].Date)
	})
	return all, nil
}

func readBankFile(path string) ([]model.BankLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadBankExport(f)
}
