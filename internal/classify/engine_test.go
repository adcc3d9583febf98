package classify

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/shiwake-dev/shiwake/internal/model"
	"github.com/shiwake-dev/shiwake/internal/rules"
)

func testEngine() *Engine {
	return NewEngine(rules.Default())
}

func TestUsage(t *testing.T) {
	e := testEngine()

	tests := []struct {
		key  string
		want model.UsageCategory
	}{
		{"", model.UsageUnclassified},
		{"GOOGLE GSUITE", model.UsageBusiness},
		{"清瀬市コワーキングスペース", model.UsageBusiness},
		{"UBER EATS", model.UsagePersonal},
		{"AMAZON", model.UsageApportioned},
		{"LOOOPでんき", model.UsageApportioned},
		{"ZZZ UNKNOWN SHOP 123", model.UsageUnclassified},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, e.Usage(tt.key), "key %q", tt.key)
	}
}

func TestUsage_KeysMatchNormalizerOutput(t *testing.T) {
	e := testEngine()

	// Rule tables may spell merchants loosely; compiled keys still line up
	// with what Normalize produces for the raw descriptor.
	key := e.Normalize("Looopでんき")
	assert.Equal(t, model.UsageApportioned, e.Usage(key))

	key = e.Normalize("ｷﾖｾｼｺﾜｰｷﾝｸﾞｽﾍﾟｰｽｺﾄﾘﾊﾞ")
	assert.Equal(t, model.UsageBusiness, e.Usage(key))
}

func TestAccount(t *testing.T) {
	e := testEngine()

	tests := []struct {
		name   string
		key    string
		usage  model.UsageCategory
		amount int64
		want   string
	}{
		{"personal charge", "ニトリ", model.UsagePersonal, 500, "owner's capital withdrawal"},
		{"personal zero is a charge", "ニトリ", model.UsagePersonal, 0, "owner's capital withdrawal"},
		{"personal refund", "ニトリ", model.UsagePersonal, -500, "owner's capital contribution"},
		{"mapped business merchant", "GOOGLE GSUITE", model.UsageBusiness, 1200, "communication expense"},
		{"mapped apportioned merchant", "LOOOPでんき", model.UsageApportioned, 8000, "utilities expense"},
		{"unmapped business merchant", "SOME NEW VENDOR", model.UsageBusiness, 100, "miscellaneous expense"},
		{"unclassified", "ZZZ UNKNOWN SHOP 123", model.UsageUnclassified, 2000, "miscellaneous expense"},
		{"empty key", "", model.UsageUnclassified, 10, "miscellaneous expense"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Account(tt.key, tt.usage, decimal.NewFromInt(tt.amount))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBusinessAmount(t *testing.T) {
	e := testEngine()

	tests := []struct {
		name   string
		usage  model.UsageCategory
		key    string
		amount string
		want   string
	}{
		{"business pass-through", model.UsageBusiness, "GOOGLE GSUITE", "1200", "1200"},
		{"business refund pass-through", model.UsageBusiness, "GOOGLE GSUITE", "-1200", "-1200"},
		{"apportioned utility 40%", model.UsageApportioned, "LOOOPでんき", "10000", "4000"},
		{"apportioned amazon 85%", model.UsageApportioned, "AMAZON", "2000", "1700"},
		{"apportioned refund keeps sign", model.UsageApportioned, "AMAZON", "-1001", "-850.85"},
		{"apportioned without ratio", model.UsageApportioned, "MYSTERY SPLIT", "5000", "0"},
		{"personal", model.UsagePersonal, "ニトリ", "5000", "0"},
		{"unclassified", model.UsageUnclassified, "", "99999", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			got := e.BusinessAmount(tt.usage, tt.key, amount)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestBusinessAmount_NeverExceedsAmount(t *testing.T) {
	e := testEngine()

	usages := []model.UsageCategory{
		model.UsageBusiness, model.UsagePersonal,
		model.UsageApportioned, model.UsageUnclassified,
	}
	keys := []string{"", "AMAZON", "LOOOPでんき", "GOOGLE GSUITE", "ZZZ"}
	amounts := []string{"0", "1", "-1", "1000", "-1000", "123456789.99"}

	for _, usage := range usages {
		for _, key := range keys {
			for _, a := range amounts {
				amount := decimal.RequireFromString(a)
				got := e.BusinessAmount(usage, key, amount)
				assert.True(t, got.Abs().LessThanOrEqual(amount.Abs()),
					"|business| %s > |amount| %s for %s/%s", got, amount, usage, key)
			}
		}
	}
}

func TestRatio(t *testing.T) {
	e := testEngine()

	ratio, ok := e.Ratio("AMAZON")
	assert.True(t, ok)
	assert.True(t, ratio.Equal(decimal.RequireFromString("0.85")))

	_, ok = e.Ratio("ZZZ UNKNOWN SHOP 123")
	assert.False(t, ok)
}
