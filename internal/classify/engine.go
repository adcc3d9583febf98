// Package classify turns normalized merchant keys into usage categories,
// bookkeeping accounts and deductible amounts. All decisions come from the
// rule tables; there is no per-row state.
package classify

import (
	"github.com/shopspring/decimal"

	"github.com/shiwake-dev/shiwake/internal/model"
	"github.com/shiwake-dev/shiwake/internal/normalize"
	"github.com/shiwake-dev/shiwake/internal/rules"
)

// Engine is an immutable compiled view of the rule tables. Every merchant
// key in the tables is pre-normalized, so lookups match the normalizer's
// output regardless of how rules.yaml spells a merchant.
type Engine struct {
	norm *normalize.Normalizer

	business    map[string]struct{}
	personal    map[string]struct{}
	apportioned map[string]struct{}

	accounts       map[string]string
	personalRefund string
	personalCharge string
	fallback       string

	ratios       map[string]decimal.Decimal
	provisional  map[string]struct{}
	aliasTargets map[string]struct{}

	lowValueMerchant  string
	lowValueThreshold decimal.Decimal
}

// NewEngine compiles rule tables into an Engine.
func NewEngine(r *rules.Rules) *Engine {
	n := normalize.New(r.Aliases)

	e := &Engine{
		norm:           n,
		business:       keySet(n, r.Usage.Business),
		personal:       keySet(n, r.Usage.Personal),
		apportioned:    keySet(n, r.Usage.Apportioned),
		accounts:       keyMap(n, r.Accounts.Merchants),
		personalRefund: r.Accounts.PersonalRefund,
		personalCharge: r.Accounts.PersonalCharge,
		fallback:       r.Accounts.Fallback,
		ratios:         make(map[string]decimal.Decimal, len(r.Ratios)),
		provisional:    keySet(n, r.Provisional),
		aliasTargets:   make(map[string]struct{}, len(r.Aliases)),

		lowValueMerchant:  n.Normalize(r.LowValue.Merchant),
		lowValueThreshold: r.LowValue.Threshold.Decimal,
	}
	for k, v := range r.Ratios {
		e.ratios[n.Normalize(k)] = v.Decimal
	}
	for _, target := range r.Aliases {
		e.aliasTargets[n.Normalize(target)] = struct{}{}
	}
	return e
}

// Normalize canonicalizes raw description text into a merchant key.
func (e *Engine) Normalize(raw string) string {
	return e.norm.Normalize(raw)
}

// Usage returns the usage category for a merchant key. An empty key or a
// key in none of the membership sets is unclassified.
func (e *Engine) Usage(key string) model.UsageCategory {
	if key == "" {
		return model.UsageUnclassified
	}
	if _, ok := e.business[key]; ok {
		return model.UsageBusiness
	}
	if _, ok := e.personal[key]; ok {
		return model.UsagePersonal
	}
	if _, ok := e.apportioned[key]; ok {
		return model.UsageApportioned
	}
	return model.UsageUnclassified
}

// Account returns the bookkeeping account label for a row. Personal rows
// split on sign: a refund flows back to the owner, a charge was fronted by
// the owner. Everything else uses the merchant mapping with a fallback.
func (e *Engine) Account(key string, usage model.UsageCategory, amount decimal.Decimal) string {
	if usage == model.UsagePersonal {
		if amount.IsNegative() {
			return e.personalRefund
		}
		return e.personalCharge
	}
	if label, ok := e.accounts[key]; ok {
		return label
	}
	return e.fallback
}

// Ratio returns the configured apportionment ratio for a merchant key.
func (e *Engine) Ratio(key string) (decimal.Decimal, bool) {
	r, ok := e.ratios[key]
	return r, ok
}

// BusinessAmount returns the deductible portion of amount. Business rows
// pass through unchanged so refunds offset the business total; apportioned
// rows are scaled by the merchant's ratio, or zero when none is configured.
func (e *Engine) BusinessAmount(usage model.UsageCategory, key string, amount decimal.Decimal) decimal.Decimal {
	switch usage {
	case model.UsageBusiness:
		return amount
	case model.UsageApportioned:
		if ratio, ok := e.ratios[key]; ok {
			return amount.Mul(ratio)
		}
		return decimal.Zero
	default:
		return decimal.Zero
	}
}

func keySet(n *normalize.Normalizer, keys []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[n.Normalize(k)] = struct{}{}
	}
	return set
}

func keyMap(n *normalize.Normalizer, m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[n.Normalize(k)] = v
	}
	return out
}
