package calculation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/fi-forecaster/internal/domain"
)

func TestBisectionWindow(t *testing.T) {
	w := BisectionWindow{Start: 0, End: 24}
	assert.Equal(t, 12, w.Middle())
	assert.Equal(t, BisectionWindow{Start: 0, End: 12}, w.NarrowTowardEarlier())
	assert.Equal(t, BisectionWindow{Start: 12, End: 24}, w.NarrowTowardLater())
	assert.Equal(t, "[0,24]", w.String())

	assert.Equal(t, 6, BisectionWindow{Start: 5, End: 7}.Middle())
	assert.False(t, BisectionWindow{Start: 5, End: 6}.CanNarrow())
	assert.False(t, BisectionWindow{Start: 5, End: 5}.CanNarrow())
}

func TestParseNarrowingPolicy(t *testing.T) {
	tests := []struct {
		input    string
		expected NarrowingPolicy
		wantErr  bool
	}{
		{"", DefaultNarrowingPolicy, false},
		{"dominance", NarrowByDominance, false},
		{" Earlier ", NarrowAlwaysEarlier, false},
		{"sideways", "", true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.input), func(t *testing.T) {
			got, err := ParseNarrowingPolicy(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNarrowingPolicy_Next(t *testing.T) {
	w := BisectionWindow{Start: 0, End: 12}

	next, ok := NarrowByDominance.Next(w, true)
	assert.True(t, ok)
	assert.Equal(t, w.NarrowTowardEarlier(), next)

	next, ok = NarrowByDominance.Next(w, false)
	assert.True(t, ok)
	assert.Equal(t, w.NarrowTowardLater(), next)

	next, ok = NarrowAlwaysEarlier.Next(w, false)
	assert.True(t, ok)
	assert.Equal(t, w.NarrowTowardEarlier(), next)

	_, ok = NarrowByDominance.Next(BisectionWindow{Start: 3, End: 4}, true)
	assert.False(t, ok)
}

func TestNarrowingPolicy_AlwaysShrinks(t *testing.T) {
	for _, policy := range []NarrowingPolicy{NarrowByDominance, NarrowAlwaysEarlier} {
		for _, favoured := range []bool{true, false} {
			for width := 0; width <= 64; width++ {
				w := BisectionWindow{Start: 7, End: 7 + width}
				steps := 0
				for {
					next, ok := policy.Next(w, favoured)
					if !ok {
						break
					}
					require.Less(t, next.Width(), w.Width(), "policy %s favoured=%t window %s", policy, favoured, w)
					w = next
					steps++
					require.LessOrEqual(t, steps, width)
				}
			}
		}
	}
}

func TestImprovedBy(t *testing.T) {
	forecast := func(cashflow ...float64) *domain.FinancialForecast {
		return &domain.FinancialForecast{MonthlyCashflowDeltas: cashflow}
	}

	tests := []struct {
		name      string
		current   *domain.FinancialForecast
		candidate *domain.FinancialForecast
		expected  bool
	}{
		{"more cash", forecast(10, 10), forecast(10, 20), true},
		{"equal cash", forecast(10, 10), forecast(20, 0), false},
		{"less cash", forecast(10, 10), forecast(5, 5), false},
		{"overdraft with more cash", forecast(10, 10), forecast(-1, 100), false},
		{"candidate fixes overdraft", forecast(-1, 5), forecast(0, 5), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ImprovedBy(tt.current, tt.candidate))
		})
	}
}
