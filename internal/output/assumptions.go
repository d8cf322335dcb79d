package output

// DefaultAssumptions lists the modeling assumptions rendered in the console report.
var DefaultAssumptions = []string{
	"Amounts are nominal; no inflation or tax is applied",
	"Linear assets compound by their scalar once per month and are sold on the liquidation date",
	"Spending goals are funded in the order they are listed",
	"Undesirable income is stopped at the financial independence date",
}
