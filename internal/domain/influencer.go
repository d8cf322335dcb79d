package domain

import "time"

// Kind tags each influencer variant.
type Kind string

const (
	KindOnceOffExpense Kind = "once_off_expense"
	KindMonthlyExpense Kind = "monthly_expense"
	KindOnceOffIncome  Kind = "once_off_income"
	KindMonthlyIncome  Kind = "monthly_income"
	KindPurchase       Kind = "purchase"
	KindAsset          Kind = "asset"
	KindSpendingGoal   Kind = "spending_goal"
)

// Influencer is any record that changes the projected financial state. The
// set of implementations is closed: only the variants in this file satisfy it.
type Influencer interface {
	Kind() Kind
	// Label is the user-facing name of the record.
	Label() string
	influencer()
}

// OnceOffExpense is a single outflow in the month of Date.
type OnceOffExpense struct {
	Name  string  `yaml:"name" json:"name"`
	Value float64 `yaml:"value" json:"value"`
	Date  Date    `yaml:"date" json:"date"`
}

// MonthlyExpense is a recurring outflow between StartDate and EndDate.
type MonthlyExpense struct {
	Name      string  `yaml:"name" json:"name"`
	Amount    float64 `yaml:"amount" json:"amount"`
	StartDate Date    `yaml:"start_date" json:"start_date"`
	EndDate   Date    `yaml:"end_date" json:"end_date"`
}

// OnceOffIncome is a single inflow in the month of Date.
type OnceOffIncome struct {
	Name          string  `yaml:"name" json:"name"`
	Amount        float64 `yaml:"amount" json:"amount"`
	Date          Date    `yaml:"date" json:"date"`
	IsUndesirable bool    `yaml:"is_undesirable" json:"is_undesirable"`
}

// MonthlyIncome is a recurring inflow. Undesirable income (e.g. a salary the
// person would stop earning if they could) is what the forecast tries to cut.
type MonthlyIncome struct {
	Name          string  `yaml:"name" json:"name"`
	Amount        float64 `yaml:"amount" json:"amount"`
	StartDate     Date    `yaml:"start_date" json:"start_date"`
	EndDate       Date    `yaml:"end_date" json:"end_date"`
	IsUndesirable bool    `yaml:"is_undesirable" json:"is_undesirable"`
}

// AppreciationType selects how an asset's value evolves.
type AppreciationType string

// AppreciationLinear multiplies the value by Scalar every month.
const AppreciationLinear AppreciationType = "linear"

// Appreciation describes an asset's value model.
type Appreciation struct {
	Type   AppreciationType `yaml:"type" json:"type"`
	Scalar float64          `yaml:"scalar" json:"scalar"`
}

// Asset is bought on PurchaseDate, changes value monthly and is sold on
// LiquidationDate.
type Asset struct {
	Name            string       `yaml:"name" json:"name"`
	PurchaseDate    Date         `yaml:"purchase_date" json:"purchase_date"`
	InitialValue    float64      `yaml:"initial_value" json:"initial_value"`
	Appreciation    Appreciation `yaml:"appreciation" json:"appreciation"`
	LiquidationDate Date         `yaml:"liquidation_date" json:"liquidation_date"`
}

// Purchase is either a flat once-off purchase of Value on Date, or, when
// Asset is set, the purchase of that asset.
type Purchase struct {
	Name  string  `yaml:"name,omitempty" json:"name,omitempty"`
	Value float64 `yaml:"value,omitempty" json:"value,omitempty"`
	Date  Date    `yaml:"date,omitempty" json:"date,omitempty"`
	Asset *Asset  `yaml:"asset,omitempty" json:"asset,omitempty"`
}

// IsAsset reports whether the purchase buys an asset.
func (p Purchase) IsAsset() bool { return p.Asset != nil }

// SpendingGoal is a discretionary purchase the person would like to make.
type SpendingGoal struct {
	Name          string   `yaml:"name" json:"name"`
	TargetDate    Date     `yaml:"target_date" json:"target_date"`
	ItemPurchased Purchase `yaml:"item_purchased" json:"item_purchased"`
}

func (OnceOffExpense) Kind() Kind { return KindOnceOffExpense }
func (MonthlyExpense) Kind() Kind { return KindMonthlyExpense }
func (OnceOffIncome) Kind() Kind  { return KindOnceOffIncome }
func (MonthlyIncome) Kind() Kind  { return KindMonthlyIncome }
func (Purchase) Kind() Kind       { return KindPurchase }
func (Asset) Kind() Kind          { return KindAsset }
func (SpendingGoal) Kind() Kind   { return KindSpendingGoal }

func (e OnceOffExpense) Label() string { return e.Name }
func (e MonthlyExpense) Label() string { return e.Name }
func (i OnceOffIncome) Label() string  { return i.Name }
func (i MonthlyIncome) Label() string  { return i.Name }
func (a Asset) Label() string          { return a.Name }
func (g SpendingGoal) Label() string   { return g.Name }

func (p Purchase) Label() string {
	if p.Name == "" && p.Asset != nil {
		return p.Asset.Name
	}
	return p.Name
}

func (OnceOffExpense) influencer() {}
func (MonthlyExpense) influencer() {}
func (OnceOffIncome) influencer()  {}
func (MonthlyIncome) influencer()  {}
func (Purchase) influencer()       {}
func (Asset) influencer()          {}
func (SpendingGoal) influencer()   {}

// FinancialStateInfluencers is the full input of one forecast.
type FinancialStateInfluencers struct {
	CurrentDate     Date             `yaml:"current_date,omitempty" json:"current_date,omitempty"`
	OnceOffExpenses []OnceOffExpense `yaml:"once_off_expenses,omitempty" json:"once_off_expenses,omitempty"`
	MonthlyExpenses []MonthlyExpense `yaml:"monthly_expenses,omitempty" json:"monthly_expenses,omitempty"`
	OnceOffIncomes  []OnceOffIncome  `yaml:"once_off_incomes,omitempty" json:"once_off_incomes,omitempty"`
	MonthlyIncomes  []MonthlyIncome  `yaml:"monthly_incomes,omitempty" json:"monthly_incomes,omitempty"`
	Assets          []Asset          `yaml:"assets,omitempty" json:"assets,omitempty"`
	Purchases       []Purchase       `yaml:"purchases,omitempty" json:"purchases,omitempty"`
	SpendingGoals   []SpendingGoal   `yaml:"spending_goals,omitempty" json:"spending_goals,omitempty"`
}

// FixedInfluencers returns every non-discretionary record except undesirable
// income: expenses, desirable income, assets and flat purchases.
func (f *FinancialStateInfluencers) FixedInfluencers() []Influencer {
	var out []Influencer
	for _, e := range f.OnceOffExpenses {
		out = append(out, e)
	}
	for _, e := range f.MonthlyExpenses {
		out = append(out, e)
	}
	for _, i := range f.OnceOffIncomes {
		if !i.IsUndesirable {
			out = append(out, i)
		}
	}
	for _, i := range f.MonthlyIncomes {
		if !i.IsUndesirable {
			out = append(out, i)
		}
	}
	for _, a := range f.Assets {
		out = append(out, a)
	}
	for _, p := range f.Purchases {
		out = append(out, p)
	}
	return out
}

// UndesirableIncome returns the income records flagged is_undesirable.
func (f *FinancialStateInfluencers) UndesirableIncome() []Influencer {
	var out []Influencer
	for _, i := range f.OnceOffIncomes {
		if i.IsUndesirable {
			out = append(out, i)
		}
	}
	for _, i := range f.MonthlyIncomes {
		if i.IsUndesirable {
			out = append(out, i)
		}
	}
	return out
}

// PrioritisedSpendingGoals returns the goals in priority order, which is the
// order they were declared in.
func (f *FinancialStateInfluencers) PrioritisedSpendingGoals() []SpendingGoal {
	out := make([]SpendingGoal, len(f.SpendingGoals))
	copy(out, f.SpendingGoals)
	return out
}

// Count returns the number of records of every kind.
func (f *FinancialStateInfluencers) Count() int {
	return len(f.OnceOffExpenses) + len(f.MonthlyExpenses) + len(f.OnceOffIncomes) +
		len(f.MonthlyIncomes) + len(f.Assets) + len(f.Purchases) + len(f.SpendingGoals)
}

// FinalRelevantDate returns the latest date any record refers to, or the zero
// time when there are no records.
func (f *FinancialStateInfluencers) FinalRelevantDate() time.Time {
	var final time.Time
	consider := func(d Date) {
		if d.After(final) {
			final = d.Time
		}
	}
	for _, e := range f.OnceOffExpenses {
		consider(e.Date)
	}
	for _, e := range f.MonthlyExpenses {
		consider(e.EndDate)
	}
	for _, i := range f.OnceOffIncomes {
		consider(i.Date)
	}
	for _, i := range f.MonthlyIncomes {
		consider(i.EndDate)
	}
	for _, a := range f.Assets {
		consider(a.LiquidationDate)
	}
	for _, p := range f.Purchases {
		consider(p.Date)
		if p.Asset != nil {
			consider(p.Asset.LiquidationDate)
		}
	}
	for _, g := range f.SpendingGoals {
		consider(g.TargetDate)
		consider(g.ItemPurchased.Date)
		if g.ItemPurchased.Asset != nil {
			consider(g.ItemPurchased.Asset.LiquidationDate)
		}
	}
	return final
}
