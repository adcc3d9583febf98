// Package extract filters the integrated bank statement down to the row
// subsets worth reconciling first.
package extract

import (
	"strings"

	"github.com/shiwake-dev/shiwake/internal/model"
)

// debitKeyword marks card-debit rows in the bank description text.
const debitKeyword = "デビット"

// highPriorityKeywords mark rows whose counterparty is identifiable from
// the description alone: bank transfers, direct debits, Kotora transfers.
var highPriorityKeywords = []string{"振込", "口座振替", "ことら送金"}

// Debit returns rows that are card-debit withdrawals.
func Debit(lines []model.BankLine) []model.BankLine {
	return filter(lines, func(line model.BankLine) bool {
		return strings.Contains(line.Description, debitKeyword)
	})
}

// HighPriority returns withdrawal rows matching any high-priority keyword.
func HighPriority(lines []model.BankLine) []model.BankLine {
	return filter(lines, func(line model.BankLine) bool {
		for _, kw := range highPriorityKeywords {
			if strings.Contains(line.Description, kw) {
				return true
			}
		}
		return false
	})
}

// filter keeps lines with a positive withdrawal that match the predicate.
func filter(lines []model.BankLine, match func(model.BankLine) bool) []model.BankLine {
	var out []model.BankLine
	for _, line := range lines {
		if line.Withdrawal.IsPositive() && match(line) {
			out = append(out, line)
		}
	}
	return out
}
