package calculation

import (
	"fmt"
	"strings"

	"github.com/rpgo/fi-forecaster/internal/domain"
	"github.com/rpgo/fi-forecaster/pkg/vecmath"
)

// BisectionWindow is the range of candidate retirement months, measured from
// the reference date, that is still being searched.
type BisectionWindow struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Middle is the candidate month evaluated for this window.
func (w BisectionWindow) Middle() int {
	return w.Start + (w.End-w.Start)/2
}

// Width returns End-Start.
func (w BisectionWindow) Width() int {
	return w.End - w.Start
}

// CanNarrow reports whether a strictly narrower window exists.
func (w BisectionWindow) CanNarrow() bool {
	return w.Middle() != w.Start
}

// NarrowTowardEarlier keeps the months before the middle.
func (w BisectionWindow) NarrowTowardEarlier() BisectionWindow {
	return BisectionWindow{Start: w.Start, End: w.Middle()}
}

// NarrowTowardLater keeps the months from the middle onwards.
func (w BisectionWindow) NarrowTowardLater() BisectionWindow {
	return BisectionWindow{Start: w.Middle(), End: w.End}
}

func (w BisectionWindow) String() string {
	return fmt.Sprintf("[%d,%d]", w.Start, w.End)
}

// NarrowingPolicy picks the next window once a candidate has been scored.
type NarrowingPolicy string

const (
	// NarrowByDominance searches earlier months after a favoured candidate
	// and later months otherwise.
	NarrowByDominance NarrowingPolicy = "dominance"
	// NarrowAlwaysEarlier searches earlier months after every candidate.
	// Both branches compute the same window, which reproduces the search
	// order of the first version of the planner.
	NarrowAlwaysEarlier NarrowingPolicy = "earlier"
)

// DefaultNarrowingPolicy is used when none is configured.
const DefaultNarrowingPolicy = NarrowByDominance

// ParseNarrowingPolicy resolves a policy name; the empty string selects the
// default.
func ParseNarrowingPolicy(name string) (NarrowingPolicy, error) {
	switch NarrowingPolicy(strings.ToLower(strings.TrimSpace(name))) {
	case "":
		return DefaultNarrowingPolicy, nil
	case NarrowByDominance:
		return NarrowByDominance, nil
	case NarrowAlwaysEarlier:
		return NarrowAlwaysEarlier, nil
	default:
		return "", fmt.Errorf("unknown narrowing policy %q (want %q or %q)", name, NarrowByDominance, NarrowAlwaysEarlier)
	}
}

// Next returns the window to search after a candidate was scored, or false
// when the window cannot be narrowed any further.
func (p NarrowingPolicy) Next(w BisectionWindow, candidateFavoured bool) (BisectionWindow, bool) {
	if !w.CanNarrow() {
		return w, false
	}
	if candidateFavoured {
		return w.NarrowTowardEarlier(), true
	}
	switch p {
	case NarrowAlwaysEarlier:
		return w.NarrowTowardEarlier(), true
	default:
		return w.NarrowTowardLater(), true
	}
}

// ImprovedBy reports whether candidate is preferred over current: the
// candidate must never overdraw and must end with strictly more cash.
func ImprovedBy(current, candidate *domain.FinancialForecast) bool {
	balance := candidate.CashBalance()
	if !vecmath.AllNonNegative(balance) {
		return false
	}
	return vecmath.Last(balance) > current.FinalCashBalance()
}
