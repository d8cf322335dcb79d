package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rpgo/fi-forecaster/internal/calculation"
	"github.com/rpgo/fi-forecaster/internal/domain"
	"github.com/rpgo/fi-forecaster/pkg/dateutil"
)

// Prints the rendered vectors of a single asset with full float precision.
func main() {
	current := flag.String("current", "2020-01-15", "reference date")
	purchase := flag.String("purchase", "2020-03-15", "purchase date")
	liquidation := flag.String("liquidation", "2020-06-15", "liquidation date")
	value := flag.Float64("value", 100, "initial value")
	scalar := flag.Float64("scalar", 1.1, "monthly linear appreciation scalar")
	flag.Parse()

	dates := make([]domain.Date, 3)
	for i, s := range []string{*current, *purchase, *liquidation} {
		t, err := dateutil.ParseDate(s)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		dates[i] = domain.DateOf(t)
	}

	asset := domain.Asset{
		Name:            "asset",
		PurchaseDate:    dates[1],
		InitialValue:    *value,
		Appreciation:    domain.Appreciation{Type: domain.AppreciationLinear, Scalar: *scalar},
		LiquidationDate: dates[2],
	}
	changes := calculation.GenerateFinancialStateChanges(asset, dates[0].Time)

	fmt.Printf("cashflow:          %v\n", changes.Cashflow)
	fmt.Printf("assets_delta:      %v\n", changes.AssetsDelta)
	fmt.Printf("liabilities_delta: %v\n", changes.LiabilitiesDelta)
	fmt.Printf("net worth:         %v\n", changes.NetWorth())
}
