package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func days(dates []time.Time) []int {
	out := make([]int, len(dates))
	for i, d := range dates {
		out[i] = d.Day()
	}
	return out
}

func TestExpandMonthKnownCalendars(t *testing.T) {
	tests := []struct {
		name    string
		weekday int
		month   int
		year    int
		want    []int
	}{
		{"mondays february 2024", 1, 2, 2024, []int{5, 12, 19, 26}},
		{"thursdays february 2024 leap", 4, 2, 2024, []int{1, 8, 15, 22, 29}},
		{"sundays september 2024 first day", 0, 9, 2024, []int{1, 8, 15, 22, 29}},
		{"saturdays march 2024 five", 6, 3, 2024, []int{2, 9, 16, 23, 30}},
		{"wednesdays january 2025", 3, 1, 2025, []int{1, 8, 15, 22, 29}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates := ExpandMonth(tt.weekday, tt.month, tt.year, time.UTC)
			assert.Equal(t, tt.want, days(dates))
			for _, d := range dates {
				assert.Equal(t, tt.weekday, int(d.Weekday()))
				assert.Equal(t, time.Month(tt.month), d.Month())
				assert.Equal(t, tt.year, d.Year())
			}
		})
	}
}

func TestExpandMonthAlwaysFourOrFive(t *testing.T) {
	for year := 2023; year <= 2026; year++ {
		for month := 1; month <= 12; month++ {
			for weekday := 0; weekday <= 6; weekday++ {
				n := len(ExpandMonth(weekday, month, year, time.UTC))
				require.True(t, n == 4 || n == 5,
					"weekday %d %d-%02d produced %d dates", weekday, year, month, n)
			}
		}
	}
}

func TestExpandMonthDeterministic(t *testing.T) {
	a := ExpandMonth(1, 2, 2024, time.UTC)
	b := ExpandMonth(1, 2, 2024, time.UTC)
	assert.Equal(t, a, b)
}

func TestExpandMonthRespectsLocation(t *testing.T) {
	loc := time.FixedZone("UTC-7", -7*3600)
	dates := ExpandMonth(1, 2, 2024, loc)
	assert.Equal(t, []int{5, 12, 19, 26}, days(dates))
	for _, d := range dates {
		assert.Equal(t, loc, d.Location())
	}
}

func TestNextMonthRollsOverDecember(t *testing.T) {
	m, y := NextMonth(12, 2024)
	assert.Equal(t, 1, m)
	assert.Equal(t, 2025, y)

	m, y = NextMonth(7, 2024)
	assert.Equal(t, 8, m)
	assert.Equal(t, 2024, y)
}
