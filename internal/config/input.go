package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rpgo/fi-forecaster/internal/domain"
	"github.com/rpgo/fi-forecaster/pkg/dateutil"
)

// InputParser handles parsing of influencer files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads influencers from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.FinancialStateInfluencers, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.LoadFromBytes(data)
}

// LoadFromReader loads influencers from r.
func (ip *InputParser) LoadFromReader(r io.Reader) (*domain.FinancialStateInfluencers, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return ip.LoadFromBytes(data)
}

// LoadFromBytes parses and validates a YAML or JSON document. Unknown keys
// are rejected so that typos do not silently drop records.
func (ip *InputParser) LoadFromBytes(data []byte) (*domain.FinancialStateInfluencers, error) {
	var influencers domain.FinancialStateInfluencers
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&influencers); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse YAML: document is empty")
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateInfluencers(&influencers); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}
	return &influencers, nil
}

// ValidateInfluencers checks every record for missing dates and negative
// amounts.
func (ip *InputParser) ValidateInfluencers(inf *domain.FinancialStateInfluencers) error {
	if inf.Count() == 0 {
		return fmt.Errorf("no influencers provided")
	}

	for i, e := range inf.OnceOffExpenses {
		if err := validateOnceOff(e.Value, e.Date); err != nil {
			return fmt.Errorf("once-off expense %d (%s) validation failed: %w", i, e.Name, err)
		}
	}
	for i, e := range inf.MonthlyExpenses {
		if err := validateMonthly(e.Amount, e.StartDate, e.EndDate); err != nil {
			return fmt.Errorf("monthly expense %d (%s) validation failed: %w", i, e.Name, err)
		}
	}
	for i, in := range inf.OnceOffIncomes {
		if err := validateOnceOff(in.Amount, in.Date); err != nil {
			return fmt.Errorf("once-off income %d (%s) validation failed: %w", i, in.Name, err)
		}
	}
	for i, in := range inf.MonthlyIncomes {
		if err := validateMonthly(in.Amount, in.StartDate, in.EndDate); err != nil {
			return fmt.Errorf("monthly income %d (%s) validation failed: %w", i, in.Name, err)
		}
	}
	for i, a := range inf.Assets {
		if err := validateAsset(&a); err != nil {
			return fmt.Errorf("asset %d (%s) validation failed: %w", i, a.Name, err)
		}
	}
	for i, p := range inf.Purchases {
		if err := validatePurchase(&p); err != nil {
			return fmt.Errorf("purchase %d (%s) validation failed: %w", i, p.Label(), err)
		}
	}

	seen := make(map[string]bool, len(inf.SpendingGoals))
	for i, g := range inf.SpendingGoals {
		if g.Name == "" {
			return fmt.Errorf("spending goal %d validation failed: name is required", i)
		}
		if seen[g.Name] {
			return fmt.Errorf("spending goal %d validation failed: duplicate name %q", i, g.Name)
		}
		seen[g.Name] = true
		if err := validatePurchase(&g.ItemPurchased); err != nil {
			return fmt.Errorf("spending goal %d (%s) validation failed: %w", i, g.Name, err)
		}
	}

	return nil
}

func validateOnceOff(amount float64, date domain.Date) error {
	if amount < 0 {
		return fmt.Errorf("amount cannot be negative")
	}
	if date.IsZero() {
		return fmt.Errorf("date is required")
	}
	return nil
}

func validateMonthly(amount float64, start, end domain.Date) error {
	if amount < 0 {
		return fmt.Errorf("amount cannot be negative")
	}
	if start.IsZero() {
		return fmt.Errorf("start date is required")
	}
	if end.IsZero() {
		return fmt.Errorf("end date is required")
	}
	if end.Before(start.Time) {
		return fmt.Errorf("end date %s is before start date %s", end, start)
	}
	return nil
}

func validateAsset(a *domain.Asset) error {
	if a.InitialValue < 0 {
		return fmt.Errorf("initial value cannot be negative")
	}
	if a.PurchaseDate.IsZero() {
		return fmt.Errorf("purchase date is required")
	}
	if a.LiquidationDate.IsZero() {
		return fmt.Errorf("liquidation date is required")
	}
	switch a.Appreciation.Type {
	case "":
	case domain.AppreciationLinear:
		if a.Appreciation.Scalar <= 0 {
			return fmt.Errorf("linear appreciation scalar must be positive")
		}
	default:
		return fmt.Errorf("unknown appreciation type %q", a.Appreciation.Type)
	}
	return nil
}

func validatePurchase(p *domain.Purchase) error {
	if p.IsAsset() {
		return validateAsset(p.Asset)
	}
	return validateOnceOff(p.Value, p.Date)
}

// CreateExampleInfluencers creates an example input anchored at currentDate:
// savings, a salary the owner would like to stop, a pension, living costs, an
// investment and two spending goals. The savings cover living costs until the
// pension starts, so every stop month for the salary stays solvent.
func (ip *InputParser) CreateExampleInfluencers(currentDate time.Time) *domain.FinancialStateInfluencers {
	at := func(months int) domain.Date {
		return domain.DateOf(dateutil.DateAfterMonths(currentDate, months))
	}

	return &domain.FinancialStateInfluencers{
		CurrentDate: domain.DateOf(currentDate),
		OnceOffExpenses: []domain.OnceOffExpense{
			{Name: "Roof repair", Value: 4500, Date: at(9)},
		},
		MonthlyExpenses: []domain.MonthlyExpense{
			{Name: "Rent", Amount: 1400, StartDate: at(-1), EndDate: at(120)},
			{Name: "Groceries", Amount: 450, StartDate: at(-1), EndDate: at(120)},
		},
		OnceOffIncomes: []domain.OnceOffIncome{
			{Name: "Savings", Amount: 60000, Date: at(0)},
			{Name: "Annual bonus", Amount: 3000, Date: at(11), IsUndesirable: true},
		},
		MonthlyIncomes: []domain.MonthlyIncome{
			{Name: "Salary", Amount: 3200, StartDate: at(-1), EndDate: at(120), IsUndesirable: true},
			{Name: "Rental income", Amount: 900, StartDate: at(-1), EndDate: at(120)},
			{Name: "Pension", Amount: 1100, StartDate: at(36), EndDate: at(120)},
		},
		Assets: []domain.Asset{
			{
				Name:            "Index fund",
				PurchaseDate:    at(6),
				InitialValue:    10000,
				Appreciation:    domain.Appreciation{Type: domain.AppreciationLinear, Scalar: 1.004},
				LiquidationDate: at(60),
			},
		},
		SpendingGoals: []domain.SpendingGoal{
			{
				Name:          "New car",
				TargetDate:    at(18),
				ItemPurchased: domain.Purchase{Name: "Hatchback", Value: 18000, Date: at(18)},
			},
			{
				Name:          "Sailing trip",
				TargetDate:    at(30),
				ItemPurchased: domain.Purchase{Name: "Trip", Value: 6000, Date: at(30)},
			},
		},
	}
}
