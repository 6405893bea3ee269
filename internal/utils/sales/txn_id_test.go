package sales

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateTransactionID(t *testing.T) {
	tests := []struct {
		name  string
		date  time.Time
		count int
		want  string
	}{
		{
			name:  "first transaction of the month",
			date:  time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
			count: 0,
			want:  "AS-2403001",
		},
		{
			name:  "sequence is count plus one",
			date:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			count: 41,
			want:  "AS-2403042",
		},
		{
			name:  "december keeps two month digits",
			date:  time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC),
			count: 7,
			want:  "AS-2512008",
		},
		{
			name:  "single digit month is zero padded",
			date:  time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
			count: 99,
			want:  "AS-2601100",
		},
		{
			name:  "sequence widens past 999 instead of truncating",
			date:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			count: 999,
			want:  "AS-24031000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateTransactionID(DefaultIDPrefix, tt.date, tt.count)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateTransactionIDDeterministic(t *testing.T) {
	date := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)
	first := GenerateTransactionID(DefaultIDPrefix, date, 12)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, GenerateTransactionID(DefaultIDPrefix, date, 12))
	}
}

func TestGenerateTransactionIDCustomPrefix(t *testing.T) {
	date := time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "AP-2407003", GenerateTransactionID("AP-", date, 2))
}
