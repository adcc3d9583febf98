package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	r := Default()

	path := filepath.Join(t.TempDir(), "rules.yaml")
	err := Save(path, r)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, r.Aliases, got.Aliases)
	assert.Equal(t, r.Usage.Business, got.Usage.Business)
	assert.Equal(t, r.Usage.Personal, got.Usage.Personal)
	assert.Equal(t, r.Usage.Apportioned, got.Usage.Apportioned)
	assert.Equal(t, r.Accounts.Merchants, got.Accounts.Merchants)
	assert.Equal(t, r.Accounts.PersonalRefund, got.Accounts.PersonalRefund)
	assert.Equal(t, r.Accounts.PersonalCharge, got.Accounts.PersonalCharge)
	assert.Equal(t, r.Accounts.Fallback, got.Accounts.Fallback)
	assert.Equal(t, r.Provisional, got.Provisional)
	assert.Equal(t, r.LowValue.Merchant, got.LowValue.Merchant)
	assert.True(t, r.LowValue.Threshold.Equal(got.LowValue.Threshold.Decimal))

	require.Len(t, got.Ratios, len(r.Ratios))
	for k, want := range r.Ratios {
		assert.True(t, want.Equal(got.Ratios[k].Decimal), "ratio for %s", k)
	}
}

func TestDefault(t *testing.T) {
	r := Default()

	assert.Contains(t, r.Usage.Business, "GOOGLE GSUITE")
	assert.Contains(t, r.Usage.Apportioned, "AMAZON")
	assert.Equal(t, "miscellaneous expense", r.Accounts.Fallback)
	assert.Equal(t, "owner's capital contribution", r.Accounts.PersonalRefund)
	assert.Equal(t, "owner's capital withdrawal", r.Accounts.PersonalCharge)

	// Every apportioned merchant ships with a ratio in range.
	for _, m := range r.Usage.Apportioned {
		ratio, ok := r.Ratios[m]
		require.True(t, ok, "missing ratio for %s", m)
		assert.False(t, ratio.IsNegative())
		assert.True(t, ratio.LessThanOrEqual(decimal.NewFromInt(1)))
	}

	assert.Equal(t, "AMAZON", r.LowValue.Merchant)
	assert.True(t, r.LowValue.Threshold.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, []string{"AMAZON"}, r.Provisional)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("usage: [not: a: map"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing rules")
}
