package journal

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiwake-dev/shiwake/internal/model"
)

func TestRoundTrip(t *testing.T) {
	recs := []model.AnnotatedRecord{
		{
			Date:           time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
			Account:        "communication expense",
			Merchant:       "GOOGLE GSUITE",
			Amount:         decimal.NewFromInt(1360),
			Usage:          model.UsageBusiness,
			BusinessAmount: decimal.NewFromInt(1360),
		},
		{
			Date:           time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC),
			Account:        "supplies expense",
			Merchant:       "AMAZON",
			Amount:         decimal.NewFromInt(-1001),
			Usage:          model.UsageApportioned,
			BusinessAmount: decimal.RequireFromString("-850.85"),
		},
		{
			Date:           time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC),
			Account:        "miscellaneous expense",
			Merchant:       "ZZZ UNKNOWN SHOP 123",
			Amount:         decimal.NewFromInt(2000),
			Usage:          model.UsageUnclassified,
			BusinessAmount: decimal.Zero,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteRecords(&buf, recs))

	// The column order is part of the contract.
	firstLine := strings.SplitN(buf.String(), "\n", 2)[0]
	assert.Equal(t, Header, strings.TrimRight(firstLine, "\r"))

	got, err := ReadRecords(&buf)
	require.NoError(t, err)
	require.Len(t, got, 3)

	for i := range recs {
		assert.Equal(t, recs[i].Date, got[i].Date)
		assert.Equal(t, recs[i].Account, got[i].Account)
		assert.Equal(t, recs[i].Merchant, got[i].Merchant)
		assert.True(t, recs[i].Amount.Equal(got[i].Amount))
		assert.Equal(t, recs[i].Usage, got[i].Usage)
		assert.True(t, recs[i].BusinessAmount.Equal(got[i].BusinessAmount))
	}
}

func TestUnmarshalRecord_Errors(t *testing.T) {
	tests := []struct {
		name string
		rec  []string
		want string
	}{
		{"wrong field count", []string{"2025-01-06", "x"}, "expected 6 fields"},
		{"bad date", []string{"NOTADATE", "a", "m", "1", "business", "1"}, "parsing date"},
		{"bad amount", []string{"2025-01-06", "a", "m", "x", "business", "1"}, "parsing amount"},
		{"bad business amount", []string{"2025-01-06", "a", "m", "1", "business", "x"}, "parsing business_amount"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalRecord(tt.rec)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestReadRecords_Empty(t *testing.T) {
	got, err := ReadRecords(bytes.NewBufferString(""))
	require.NoError(t, err)
	assert.Nil(t, got)
}
