// Package calc implements the profit engine for Black Market flip tables.
// Goods are acquired on royal city markets (the cost side) and disposed of
// to the Caerleon Black Market (the revenue side); sales tax and order setup
// fees are applied per leg. All functions are pure: they read their inputs,
// construct fresh results, and keep no state between calls.
package calc

import (
	"sort"

	"github.com/albionmarket/backend/internal/model"
)

// Rates holds the market fee percentages. They are fixed in-game values but
// injected rather than hard-coded so callers and tests can override them.
type Rates struct {
	SalesTaxPremium float64 // Black Market sales tax with premium status
	SalesTax        float64 // Black Market sales tax without premium
	SetupFee        float64 // standing-order setup fee, both markets
}

// DefaultRates returns the live in-game rates: 4% premium tax, 8% regular
// tax, 2.5% setup fee.
func DefaultRates() Rates {
	return Rates{
		SalesTaxPremium: 0.04,
		SalesTax:        0.08,
		SetupFee:        0.025,
	}
}

// rankingSize caps every top-N list in Statistics.
const rankingSize = 10

// CalculateItemProfit computes the profit breakdown for a single item.
//
// Revenue is the Black Market leg: buyPrice (what the Black Market pays) times
// sellQuantity (what the user sells to it), minus sales tax and, when the
// disposal is a standing sell order, a setup fee. Cost is the sum over city
// legs of the pair active under the table order type: buy orders additionally
// pay a setup fee, direct purchases pay only the listed price. City rows with
// a zero or absent active pair contribute nothing.
func CalculateItemProfit(item model.Item, isPremium bool, orderType model.OrderType, rates Rates) model.ProfitCalculation {
	bm := item.CaerleonBlackMarket
	grossRevenue := bm.BuyPrice * float64(bm.SellQuantity)

	taxRate := rates.SalesTax
	if isPremium {
		taxRate = rates.SalesTaxPremium
	}
	tax := grossRevenue * taxRate

	var bmSetupFee float64
	if bm.IsSellOrder {
		bmSetupFee = grossRevenue * rates.SetupFee
	}
	netRevenue := grossRevenue - tax - bmSetupFee

	var (
		totalCost        float64
		totalQuantity    int
		buyOrderSetupFee float64
	)
	for _, city := range item.Cities {
		price, qty := city.Leg(orderType)
		if price == 0 || qty == 0 {
			continue
		}
		cost := price * float64(qty)
		if orderType == model.OrderTypeBuy {
			fee := cost * rates.SetupFee
			totalCost += cost + fee
			buyOrderSetupFee += fee
		} else {
			totalCost += cost
		}
		totalQuantity += qty
	}

	profit := netRevenue - totalCost
	var margin float64
	if totalCost > 0 {
		margin = profit / totalCost * 100
	}

	return model.ProfitCalculation{
		ItemName:            item.Name,
		Tier:                item.Tier,
		Quality:             item.Quality,
		TotalCost:           totalCost,
		TotalRevenue:        netRevenue,
		Profit:              profit,
		ProfitMargin:        margin,
		Quantity:            totalQuantity,
		GrossRevenue:        grossRevenue,
		BlackMarketTax:      tax,
		BlackMarketSetupFee: bmSetupFee,
		BuyOrderSetupFee:    buyOrderSetupFee,
	}
}

// CalculateTableStatistics runs CalculateItemProfit over every item and
// reduces the results into table-level aggregates and top-10 rankings.
//
// TotalProfit sums only positive profits and TotalLoss the absolute value of
// negative ones; NetProfit is their difference. The rankings use stable
// sorts, so ties keep the input order. LeastProfitableItems deliberately
// ranks ALL calculations ascending by profit, not just loss-makers — with
// fewer than ten loss-making items it will contain profitable ones too.
func CalculateTableStatistics(items []model.Item, isPremium bool, orderType model.OrderType, rates Rates) model.Statistics {
	calcs := make([]model.ProfitCalculation, 0, len(items))
	for _, item := range items {
		calcs = append(calcs, CalculateItemProfit(item, isPremium, orderType, rates))
	}

	var totalProfit, totalLoss float64
	for _, c := range calcs {
		switch {
		case c.Profit > 0:
			totalProfit += c.Profit
		case c.Profit < 0:
			totalLoss += -c.Profit
		}
	}

	bySold := sortedCopy(calcs, func(a, b model.ProfitCalculation) bool {
		return a.Quantity > b.Quantity
	})
	mostSold := make([]model.RankedQuantity, 0, rankingSize)
	for _, c := range truncate(bySold) {
		mostSold = append(mostSold, model.RankedQuantity{ItemName: c.ItemName, Quantity: c.Quantity})
	}

	var gainers []model.ProfitCalculation
	for _, c := range calcs {
		if c.Profit > 0 {
			gainers = append(gainers, c)
		}
	}
	byProfitDesc := sortedCopy(gainers, func(a, b model.ProfitCalculation) bool {
		return a.Profit > b.Profit
	})
	mostProfitable := make([]model.RankedProfit, 0, rankingSize)
	for _, c := range truncate(byProfitDesc) {
		mostProfitable = append(mostProfitable, model.RankedProfit{ItemName: c.ItemName, Profit: c.Profit})
	}

	byProfitAsc := sortedCopy(calcs, func(a, b model.ProfitCalculation) bool {
		return a.Profit < b.Profit
	})
	leastProfitable := make([]model.RankedProfit, 0, rankingSize)
	for _, c := range truncate(byProfitAsc) {
		leastProfitable = append(leastProfitable, model.RankedProfit{ItemName: c.ItemName, Profit: c.Profit})
	}

	return model.Statistics{
		TotalProfit:          totalProfit,
		TotalLoss:            totalLoss,
		NetProfit:            totalProfit - totalLoss,
		MostSoldItems:        mostSold,
		MostProfitableItems:  mostProfitable,
		LeastProfitableItems: leastProfitable,
		ItemCalculations:     calcs,
	}
}

// sortedCopy stable-sorts a copy, leaving the input untouched.
func sortedCopy(calcs []model.ProfitCalculation, less func(a, b model.ProfitCalculation) bool) []model.ProfitCalculation {
	out := make([]model.ProfitCalculation, len(calcs))
	copy(out, calcs)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func truncate(calcs []model.ProfitCalculation) []model.ProfitCalculation {
	if len(calcs) > rankingSize {
		return calcs[:rankingSize]
	}
	return calcs
}
