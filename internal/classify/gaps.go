package classify

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/shiwake-dev/shiwake/internal/model"
)

// Gap describes a rule-table configuration problem worth fixing before the
// output is trusted.
type Gap struct {
	Merchant string
	Detail   string
}

func (g Gap) String() string {
	return fmt.Sprintf("%s: %s", g.Merchant, g.Detail)
}

var one = decimal.NewFromInt(1)

// Gaps audits the compiled tables: every apportioned merchant needs a ratio
// in [0, 1], ratios for merchants outside the apportioned set are dead
// entries, alias targets should land in a usage set, and the low-value
// override must target an apportioned merchant.
func (e *Engine) Gaps() []Gap {
	var gaps []Gap

	for key := range e.apportioned {
		ratio, ok := e.ratios[key]
		if !ok {
			gaps = append(gaps, Gap{Merchant: key, Detail: "apportioned merchant has no configured ratio"})
			continue
		}
		if ratio.IsNegative() || ratio.Cmp(one) > 0 {
			gaps = append(gaps, Gap{Merchant: key, Detail: fmt.Sprintf("ratio %s outside [0, 1]", ratio)})
		}
	}

	for key := range e.ratios {
		if _, ok := e.apportioned[key]; !ok {
			gaps = append(gaps, Gap{Merchant: key, Detail: "ratio configured for a merchant not in the apportioned set"})
		}
	}

	for target := range e.aliasTargets {
		if e.Usage(target) == model.UsageUnclassified {
			gaps = append(gaps, Gap{Merchant: target, Detail: "alias target is not in any usage set"})
		}
	}

	if e.lowValueMerchant != "" {
		if _, ok := e.apportioned[e.lowValueMerchant]; !ok {
			gaps = append(gaps, Gap{Merchant: e.lowValueMerchant, Detail: "low-value override targets a merchant not in the apportioned set"})
		}
	}

	sort.Slice(gaps, func(i, j int) bool {
		if gaps[i].Merchant != gaps[j].Merchant {
			return gaps[i].Merchant < gaps[j].Merchant
		}
		return gaps[i].Detail < gaps[j].Detail
	})
	return gaps
}
