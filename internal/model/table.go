package model

import "time"

// OrderType selects how goods are acquired from city markets: via a standing
// buy order or by buying directly from sell orders. It is a table-level
// switch; every city row of every item in a table follows it.
type OrderType string

const (
	OrderTypeBuy  OrderType = "buy_order"
	OrderTypeSell OrderType = "sell_order"
)

// Cities is the fixed set of royal city markets an item can be sourced from.
var Cities = []string{
	"Fort Sterling",
	"Thetford",
	"Martlock",
	"Bridgewatch",
	"Lymhurst",
	"Caerleon",
}

// Tiers lists the tier.enchantment labels selectable in the editor.
var Tiers = []string{
	"4.0", "4.1", "4.2", "4.3", "4.4",
	"5.0", "5.1", "5.2", "5.3", "5.4",
	"6.0", "6.1", "6.2", "6.3", "6.4",
	"7.0", "7.1", "7.2", "7.3", "7.4",
	"8.0", "8.1", "8.2", "8.3", "8.4",
}

// Qualities lists the item quality labels.
var Qualities = []string{"Normal", "Good", "Outstanding", "Excellent", "Masterpiece"}

// CityData holds per-city market figures for one item. Only the price pair
// matching the table's order type is meaningful; the inactive pair stays
// zero. Zero and absent are equivalent everywhere.
type CityData struct {
	Name         string  `json:"name"`
	BuyPrice     float64 `json:"buyPrice,omitempty"`
	BuyQuantity  int     `json:"buyQuantity,omitempty"`
	SellPrice    float64 `json:"sellPrice,omitempty"`
	SellQuantity int     `json:"sellQuantity,omitempty"`
}

// Leg returns the price/quantity pair active under the given order type.
// Callers must go through Leg rather than reading the fields directly so the
// inactive pair can never bleed into a calculation.
func (c CityData) Leg(orderType OrderType) (price float64, qty int) {
	if orderType == OrderTypeBuy {
		return c.BuyPrice, c.BuyQuantity
	}
	return c.SellPrice, c.SellQuantity
}

// Normalize zeroes the price pair that is inactive under the given order
// type. The editor nulls the inactive pair when the order type toggles; the
// service applies the same rule on every write so stale figures from a
// previous toggle cannot survive in storage.
func (c *CityData) Normalize(orderType OrderType) {
	if orderType == OrderTypeBuy {
		c.SellPrice = 0
		c.SellQuantity = 0
	} else {
		c.BuyPrice = 0
		c.BuyQuantity = 0
	}
}

// BlackMarketData is the Caerleon Black Market leg of an item. BuyPrice is
// the price the Black Market pays per unit, BuyQuantity the maximum it
// accepts, SellQuantity the amount the user actually sells to it.
// IsSellOrder marks the disposal as a standing sell order (which incurs a
// setup fee) rather than an instant sell. It is independent of the
// table-level order type, which only governs the city legs.
type BlackMarketData struct {
	BuyPrice     float64 `json:"buyPrice"`
	BuyQuantity  int     `json:"buyQuantity"`
	SellQuantity int     `json:"sellQuantity"`
	IsSellOrder  bool    `json:"isSellOrder,omitempty"`
}

// Item is one flip opportunity: buy in royal cities, sell to the Black Market.
type Item struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Tier                string          `json:"tier"`
	Quality             string          `json:"quality"`
	Cities              []CityData      `json:"cities"`
	CaerleonBlackMarket BlackMarketData `json:"caerleonBlackMarket"`
}

// Normalize applies CityData.Normalize to every city row.
func (i *Item) Normalize(orderType OrderType) {
	for idx := range i.Cities {
		i.Cities[idx].Normalize(orderType)
	}
}

// TableData is the versioned document stored per table: the item list plus
// the trading configuration the calculations depend on.
type TableData struct {
	Items     []Item    `json:"items"`
	IsPremium bool      `json:"isPremium"`
	OrderType OrderType `json:"orderType"`
}

// Table is one flip table as stored. The current document lives in Data;
// every update also snapshots the document into table_versions.
type Table struct {
	ID            string    `json:"id"`
	TableName     string    `json:"table_name,omitempty"`
	CreatedBy     string    `json:"created_by"`
	IsPremium     bool      `json:"is_premium"`
	OrderType     OrderType `json:"order_type"`
	Data          TableData `json:"data"`
	VersionNumber int       `json:"version_number"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableVersion is a historical snapshot of a table document, keyed by
// (table_id, version_number).
type TableVersion struct {
	ID            string    `json:"id"`
	TableID       string    `json:"table_id"`
	VersionNumber int       `json:"version_number"`
	Data          TableData `json:"data"`
	CreatedAt     time.Time `json:"created_at"`
}
