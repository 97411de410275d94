package model

// ProfitCalculation is the calculator's output for one item. The fee
// breakdown fields exist for reporting and CSV export; nothing downstream
// computes with them.
type ProfitCalculation struct {
	ItemName     string  `json:"itemName"`
	Tier         string  `json:"tier"`
	Quality      string  `json:"quality"`
	TotalCost    float64 `json:"totalCost"`
	TotalRevenue float64 `json:"totalRevenue"`
	Profit       float64 `json:"profit"`
	ProfitMargin float64 `json:"profitMargin"`
	Quantity     int     `json:"quantity"`

	GrossRevenue        float64 `json:"grossRevenue,omitempty"`
	BlackMarketTax      float64 `json:"blackMarketTax,omitempty"`
	BlackMarketSetupFee float64 `json:"blackMarketSetupFee,omitempty"`
	BuyOrderSetupFee    float64 `json:"buyOrderSetupFee,omitempty"`
}

// RankedQuantity is a most-sold ranking entry.
type RankedQuantity struct {
	ItemName string `json:"itemName"`
	Quantity int    `json:"quantity"`
}

// RankedProfit is a profit ranking entry.
type RankedProfit struct {
	ItemName string  `json:"itemName"`
	Profit   float64 `json:"profit"`
}

// Statistics aggregates the calculations of one table.
type Statistics struct {
	TotalProfit          float64             `json:"totalProfit"`
	TotalLoss            float64             `json:"totalLoss"`
	NetProfit            float64             `json:"netProfit"`
	MostSoldItems        []RankedQuantity    `json:"mostSoldItems"`
	MostProfitableItems  []RankedProfit      `json:"mostProfitableItems"`
	LeastProfitableItems []RankedProfit      `json:"leastProfitableItems"`
	ItemCalculations     []ProfitCalculation `json:"itemCalculations"`
}

// GlobalStatistics aggregates across every stored table, merged by item name.
type GlobalStatistics struct {
	MostSoldItems        []RankedQuantity `json:"mostSoldItems"`
	MostProfitableItems  []RankedProfit   `json:"mostProfitableItems"`
	LeastProfitableItems []RankedProfit   `json:"leastProfitableItems"`
}
