package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rpgo/fi-forecaster/internal/domain"
	"github.com/rpgo/fi-forecaster/pkg/dateutil"
)

var (
	colorBorder = lipgloss.Color("#575653")
	colorText   = lipgloss.Color("#FFFCF0")
	colorMuted  = lipgloss.Color("#6F6E69")
	colorAccent = lipgloss.Color("#3AA99F")
	colorGreen  = lipgloss.Color("#879A39")
	colorRed    = lipgloss.Color("#D14D41")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Width(55).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	labelStyle  = lipgloss.NewStyle().Foreground(colorMuted).Width(26)
	valueStyle  = lipgloss.NewStyle().Foreground(colorText)
	goodStyle   = lipgloss.NewStyle().Foreground(colorGreen)
	badStyle    = lipgloss.NewStyle().Foreground(colorRed)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	cellStyle   = lipgloss.NewStyle().PaddingRight(2)
)

// ConsoleFormatter renders a styled terminal summary. Colours are dropped
// automatically when the output is not a terminal.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(forecast *domain.FinancialForecast) ([]byte, error) {
	s := Summarize(forecast)
	var b strings.Builder

	b.WriteString(titleStyle.Render("FINANCIAL INDEPENDENCE FORECAST"))
	b.WriteString("\n\n")

	kv := func(label, value string) {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value)))
		b.WriteString("\n")
	}
	kv("Forecast from", s.CurrentDate)
	kv("Financial independence", fmt.Sprintf("%s (in %s)", s.FinancialIndependenceDate, FormatMonths(s.MonthsToIndependence)))
	kv("Final cash balance", s.FinalCashBalance.Format())
	kv("Final net worth", s.FinalNetworth.Format())
	if s.LowestCashDate != "" {
		kv("Lowest cash balance", fmt.Sprintf("%s on %s", s.LowestCashBalance.Format(), s.LowestCashDate))
	}
	status := goodStyle.Render("all achievable")
	if !forecast.AllSpendingGoalsAchievable {
		status = badStyle.Render(fmt.Sprintf("%d of %d achievable", s.GoalsAchieved, s.GoalsTotal))
	}
	kv("Spending goals", status)

	if len(forecast.SpendingGoals) > 0 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("SPENDING GOALS (priority order)"))
		b.WriteString("\n")
		rows := [][]string{{"#", "Goal", "Target", "Cost", "Status"}}
		for i, g := range forecast.SpendingGoals {
			state := "achievable"
			if !g.IsAchievable {
				state = "unaffordable"
			}
			goal := g.OriginalSpendingGoal
			rows = append(rows, []string{
				intToString(i + 1), goal.Name, goal.TargetDate.String(), GoalCost(goal).Format(), state,
			})
		}
		b.WriteString(renderGrid(rows))
	}

	if milestones := yearlyMilestones(forecast); len(milestones) > 1 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("YEARLY MILESTONES"))
		b.WriteString("\n")
		b.WriteString(renderGrid(milestones))
	}

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("ASSUMPTIONS"))
	b.WriteString("\n")
	for _, a := range DefaultAssumptions {
		b.WriteString(mutedStyle.Render("• " + a))
		b.WriteString("\n")
	}
	return []byte(b.String()), nil
}

// yearlyMilestones samples the forecast every 12 months plus the final month.
func yearlyMilestones(forecast *domain.FinancialForecast) [][]string {
	balance := forecast.CashBalance()
	n := max(len(balance), len(forecast.MonthlyNetworth))
	rows := [][]string{{"Date", "Cash balance", "Net worth"}}
	for i := 0; i < n; i++ {
		if i%12 != 0 && i != n-1 {
			continue
		}
		rows = append(rows, []string{
			dateutil.DateAfterMonths(forecast.CurrentDate.Time, i).Format(dateutil.DateLayout),
			formatAt(balance, i),
			formatAt(forecast.MonthlyNetworth, i),
		})
	}
	return rows
}

func formatAt(v []float64, i int) string {
	if i >= len(v) {
		return "-"
	}
	return FormatCurrency(v[i])
}

// renderGrid lays rows out in aligned columns; the first row is the header.
func renderGrid(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}
	cols := make([]string, len(rows[0]))
	for c := range rows[0] {
		cells := make([]string, len(rows))
		for r, row := range rows {
			cell := row[c]
			if r == 0 {
				cell = headerStyle.Render(cell)
			}
			cells[r] = cellStyle.Render(cell)
		}
		cols[c] = lipgloss.JoinVertical(lipgloss.Left, cells...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...) + "\n"
}
