package calculation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rpgo/fi-forecaster/internal/domain"
	"github.com/rpgo/fi-forecaster/pkg/dateutil"
	"github.com/rpgo/fi-forecaster/pkg/vecmath"
)

// Options tunes the retirement-date search.
type Options struct {
	// HorizonMonths bounds the search. Zero derives it from the longest
	// rendered influencer and the latest date in the input.
	HorizonMonths int `json:"horizon_months" yaml:"horizon_months"`
	// Narrowing selects how the window moves after each candidate.
	Narrowing NarrowingPolicy `json:"narrowing" yaml:"narrowing"`
}

// SearchState tracks the orchestrator's progress through a single forecast.
type SearchState int

const (
	SearchInitial SearchState = iota
	SearchIterating
	SearchConverged
	SearchFailedFirstIteration
)

func (s SearchState) String() string {
	switch s {
	case SearchInitial:
		return "initial"
	case SearchIterating:
		return "iterating"
	case SearchConverged:
		return "converged"
	case SearchFailedFirstIteration:
		return "failed_first_iteration"
	default:
		return fmt.Sprintf("SearchState(%d)", int(s))
	}
}

// CalculationEngine searches for the earliest month at which undesirable
// income can stop while prioritised spending goals stay affordable.
// An engine holds no per-call state and may be shared between goroutines.
type CalculationEngine struct {
	Options Options
	Logger  Logger
}

// NewCalculationEngine creates an engine with default options.
func NewCalculationEngine() *CalculationEngine {
	return NewCalculationEngineWithOptions(Options{})
}

// NewCalculationEngineWithOptions creates an engine with the given options.
// An empty narrowing policy selects DefaultNarrowingPolicy.
func NewCalculationEngineWithOptions(opts Options) *CalculationEngine {
	if opts.Narrowing == "" {
		opts.Narrowing = DefaultNarrowingPolicy
	}
	return &CalculationEngine{
		Options: opts,
		Logger:  NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// ProcessFinancialStateInfluencers is a convenience wrapper around a default
// engine.
func ProcessFinancialStateInfluencers(influencers *domain.FinancialStateInfluencers, currentDate time.Time) (*domain.FinancialForecast, error) {
	return NewCalculationEngine().ProcessFinancialStateInfluencers(context.Background(), influencers, currentDate)
}

// prepared holds everything rendered once per forecast.
type prepared struct {
	fixed       FinancialStateChanges
	undesirable FinancialStateChanges
	goals       []domain.SpendingGoal
	goalChanges []FinancialStateChanges
}

// ProcessFinancialStateInfluencers bisects over the month at which undesirable
// income stops. Any candidate whose cash balance goes negative before spending
// goals are considered fails the call. The first candidate keeps all
// undesirable income and must also afford every spending goal. Later
// candidates replace the best forecast only when ImprovedBy holds.
func (ce *CalculationEngine) ProcessFinancialStateInfluencers(ctx context.Context, influencers *domain.FinancialStateInfluencers, currentDate time.Time) (*domain.FinancialForecast, error) {
	if influencers == nil {
		return nil, fmt.Errorf("%w: no influencers supplied", ErrUnableToProduceFinancialForecast)
	}
	logger := ce.logger()
	policy := ce.Options.Narrowing
	if policy == "" {
		policy = DefaultNarrowingPolicy
	}

	p := prepare(influencers, currentDate)
	horizon := ce.horizon(p, influencers, currentDate)
	if horizon <= 0 {
		return nil, fmt.Errorf("%w: no influencer produces any monthly change", ErrUnableToProduceFinancialForecast)
	}

	window := BisectionWindow{Start: 0, End: 2 * horizon}
	maxIterations := window.Width() + 1
	state := SearchInitial
	var best *domain.FinancialForecast

	logger.Debugf("forecast search: %d influencers, %d goals, horizon %d months, policy %s",
		influencers.Count(), len(p.goals), horizon, policy)

	for iteration := 0; iteration < maxIterations; iteration++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("forecast search cancelled after %d iterations: %w", iteration, err)
		}
		first := state == SearchInitial
		state = SearchIterating
		month := window.Middle()

		baseline := p.fixed.Merge(p.undesirable.TruncateCashflow(month))
		balance := baseline.CashBalance()

		if i := vecmath.FirstNegative(balance); i >= 0 {
			logger.Warnf("iteration %d: window %s month %d overdraws in month %d", iteration, window, month, i)
			return nil, fmt.Errorf("%w: cash balance falls to %.2f in %s with undesirable income stopping in %s",
				ErrMonthlySpendingExceedsIncome, balance[i],
				dateutil.DateAfterMonths(currentDate, i).Format(dateutil.DateLayout),
				dateutil.DateAfterMonths(currentDate, month).Format(dateutil.DateLayout))
		}

		candidate := evaluateCandidate(p, baseline, currentDate, month)
		if first && !candidate.AllSpendingGoalsAchievable {
			state = SearchFailedFirstIteration
			logger.Warnf("forecast search %s: unachievable goals %v", state, candidate.UnachievableGoals())
			return nil, fmt.Errorf("%w: spending goals not achievable even with all income: %s",
				ErrUnableToProduceFinancialForecast, strings.Join(candidate.UnachievableGoals(), ", "))
		}
		favoured := best == nil || ImprovedBy(best, candidate)
		if favoured {
			best = candidate
		}
		logger.Debugf("iteration %d: window %s month %d final cash %.2f favoured=%t",
			iteration, window, month, candidate.FinalCashBalance(), favoured)

		next, ok := policy.Next(window, favoured)
		if !ok || next.Width() >= window.Width() {
			break
		}
		window = next
	}
	state = SearchConverged

	if best == nil {
		return nil, fmt.Errorf("%w: no candidate month produced a forecast", ErrUnableToProduceFinancialForecast)
	}
	logger.Infof("forecast search %s: financial independence %s, final cash %.2f",
		state, best.FinancialIndependenceDate, best.FinalCashBalance())
	return best, nil
}

func (ce *CalculationEngine) logger() Logger {
	if ce.Logger == nil {
		return NopLogger{}
	}
	return ce.Logger
}

// horizon covers every rendered month and every date the input mentions,
// unless an explicit horizon is configured.
func (ce *CalculationEngine) horizon(p prepared, influencers *domain.FinancialStateInfluencers, currentDate time.Time) int {
	if ce.Options.HorizonMonths > 0 {
		return ce.Options.HorizonMonths
	}
	h := max(p.fixed.Len(), p.undesirable.Len())
	if final := influencers.FinalRelevantDate(); !final.IsZero() {
		h = max(h, dateutil.MonthsBetween(final, currentDate))
	}
	for _, c := range p.goalChanges {
		h = max(h, c.Len())
	}
	return h
}

func prepare(influencers *domain.FinancialStateInfluencers, currentDate time.Time) prepared {
	goals := influencers.PrioritisedSpendingGoals()
	goalChanges := make([]FinancialStateChanges, len(goals))
	for i, g := range goals {
		goalChanges[i] = GenerateFinancialStateChanges(g, currentDate)
	}
	return prepared{
		fixed:       renderAll(influencers.FixedInfluencers(), currentDate),
		undesirable: renderAll(influencers.UndesirableIncome(), currentDate),
		goals:       goals,
		goalChanges: goalChanges,
	}
}

// evaluateCandidate folds the spending goals, in priority order, onto a
// baseline that stops undesirable income at month.
func evaluateCandidate(p prepared, baseline FinancialStateChanges, currentDate time.Time, month int) *domain.FinancialForecast {
	acc := baseline
	running := acc.CashBalance()
	processed := make([]domain.ProcessedSpendingGoal, 0, len(p.goals))
	all := true
	for i, goal := range p.goals {
		result := EvaluateSpendingGoal(goal, running, currentDate)
		processed = append(processed, result)
		if !result.IsAchievable {
			all = false
			continue
		}
		acc = acc.Merge(p.goalChanges[i])
		running = acc.CashBalance()
	}
	return &domain.FinancialForecast{
		CurrentDate:                domain.DateOf(currentDate),
		SpendingGoals:              processed,
		MonthlyCashflowDeltas:      acc.Cashflow,
		MonthlyNetworth:            acc.NetWorth(),
		FinancialIndependenceDate:  domain.DateOf(dateutil.DateAfterMonths(currentDate, month)),
		AllSpendingGoalsAchievable: all,
	}
}
