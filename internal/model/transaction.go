package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents one card-statement row after ingestion.
type Transaction struct {
	Date        time.Time
	Description string          // raw merchant text, may be empty
	Amount      decimal.Decimal // positive = charge, negative = refund
}

// BankLine represents one row of a bank account statement export.
// Withdrawal and Deposit are both non-negative; at most one is set per row.
type BankLine struct {
	Date        time.Time
	Description string
	Withdrawal  decimal.Decimal
	Deposit     decimal.Decimal
	Balance     decimal.Decimal
}
