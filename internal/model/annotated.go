package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AnnotatedRecord is a Transaction after normalization, classification and
// apportionment. It maps one-to-one onto a row of the journal sheet.
type AnnotatedRecord struct {
	Date           time.Time
	Account        string // bookkeeping account label
	Merchant       string // normalized merchant key, empty if the raw text was blank
	Amount         decimal.Decimal
	Usage          UsageCategory
	BusinessAmount decimal.Decimal // deductible portion of Amount
}
