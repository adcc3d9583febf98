// Package report renders run summaries for the console.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"

	"github.com/shiwake-dev/shiwake/internal/model"
)

// usageOrder fixes the display order of usage categories.
var usageOrder = []model.UsageCategory{
	model.UsageBusiness,
	model.UsageApportioned,
	model.UsagePersonal,
	model.UsageUnclassified,
}

// Summary prints row counts per usage category and the deductible total per
// account for all annotated records.
func Summary(w io.Writer, recs []model.AnnotatedRecord) {
	counts := make(map[model.UsageCategory]int)
	totals := make(map[string]decimal.Decimal)
	grand := decimal.Zero
	for _, rec := range recs {
		counts[rec.Usage]++
		if !rec.BusinessAmount.IsZero() {
			totals[rec.Account] = totals[rec.Account].Add(rec.BusinessAmount)
			grand = grand.Add(rec.BusinessAmount)
		}
	}

	fmt.Fprintf(w, "Annotated %d rows\n\n", len(recs))

	usage := tablewriter.NewWriter(w)
	usage.SetHeader([]string{"Usage", "Rows"})
	for _, u := range usageOrder {
		usage.Append([]string{string(u), strconv.Itoa(counts[u])})
	}
	usage.Render()

	accounts := make([]string, 0, len(totals))
	for account := range totals {
		accounts = append(accounts, account)
	}
	sort.Strings(accounts)

	fmt.Fprintln(w)
	deductible := tablewriter.NewWriter(w)
	deductible.SetHeader([]string{"Account", "Business Amount"})
	for _, account := range accounts {
		deductible.Append([]string{account, totals[account].String()})
	}
	deductible.SetFooter([]string{"total", grand.String()})
	deductible.Render()
}
