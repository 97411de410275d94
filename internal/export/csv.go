// Package export renders table calculations for download.
package export

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/albionmarket/backend/internal/model"
)

var csvHeader = []string{
	"Item Name",
	"Tier",
	"Quality",
	"Total Cost",
	"Total Revenue",
	"Profit/Loss",
	"Profit Margin (%)",
	"Quantity",
	"Black Market Tax",
	"Black Market Setup Fee",
	"Buy Order Setup Fee",
}

// TableCSV renders one table's profit calculations as CSV: a header row, one
// row per item, a blank row, and a totals row.
func TableCSV(calcs []model.ProfitCalculation) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}

	var totalCost, totalRevenue, totalProfit float64
	var totalQuantity int
	for _, c := range calcs {
		name := c.ItemName
		if name == "" {
			name = "Unnamed"
		}
		row := []string{
			name,
			c.Tier,
			c.Quality,
			money(c.TotalCost),
			money(c.TotalRevenue),
			money(c.Profit),
			money(c.ProfitMargin),
			strconv.Itoa(c.Quantity),
			money(c.BlackMarketTax),
			money(c.BlackMarketSetupFee),
			money(c.BuyOrderSetupFee),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
		totalCost += c.TotalCost
		totalRevenue += c.TotalRevenue
		totalProfit += c.Profit
		totalQuantity += c.Quantity
	}

	if err := w.Write(make([]string, len(csvHeader))); err != nil {
		return nil, err
	}
	totals := []string{
		"TOTAL", "", "",
		money(totalCost),
		money(totalRevenue),
		money(totalProfit),
		"",
		strconv.Itoa(totalQuantity),
		"", "", "",
	}
	if err := w.Write(totals); err != nil {
		return nil, err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
