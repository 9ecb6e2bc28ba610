package model

// NotAvailable marks a quote-page field that was absent from the markup.
const NotAvailable = "N/A"

// StockSnapshot holds the metrics visible on a quote page. It is produced
// fresh per request and never persisted.
type StockSnapshot struct {
	Price           string
	Revenue         string
	Profit          string
	PreviousClose   string
	DayRange        string
	YearRange       string
	MarketCap       string
	AvgVolume       string
	PERatio         string
	DividendYield   string
	PrimaryExchange string
}

// NewStockSnapshot returns a snapshot with every field marked not available.
func NewStockSnapshot() StockSnapshot {
	return StockSnapshot{
		Price:           NotAvailable,
		Revenue:         NotAvailable,
		Profit:          NotAvailable,
		PreviousClose:   NotAvailable,
		DayRange:        NotAvailable,
		YearRange:       NotAvailable,
		MarketCap:       NotAvailable,
		AvgVolume:       NotAvailable,
		PERatio:         NotAvailable,
		DividendYield:   NotAvailable,
		PrimaryExchange: NotAvailable,
	}
}
