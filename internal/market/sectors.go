package market

// sectorInfo carries the classification we attach to a quote.
type sectorInfo struct {
	Sector   string
	Industry string
}

// sectors maps the built-in universe to GICS-style classifications.
// Neither quote provider returns sector data on its quote endpoints, so we
// keep the table here; unknown symbols simply get "N/A".
var sectors = map[string]sectorInfo{
	"AAPL":  {"Technology", "Consumer Electronics"},
	"MSFT":  {"Technology", "Software - Infrastructure"},
	"GOOGL": {"Communication Services", "Internet Content & Information"},
	"AMZN":  {"Consumer Cyclical", "Internet Retail"},
	"NVDA":  {"Technology", "Semiconductors"},
	"META":  {"Communication Services", "Internet Content & Information"},
	"TSLA":  {"Consumer Cyclical", "Auto Manufacturers"},
	"BRK-B": {"Financial Services", "Insurance - Diversified"},
	"JPM":   {"Financial Services", "Banks - Diversified"},
	"V":     {"Financial Services", "Credit Services"},
	"JNJ":   {"Healthcare", "Drug Manufacturers - General"},
	"WMT":   {"Consumer Defensive", "Discount Stores"},
	"PG":    {"Consumer Defensive", "Household & Personal Products"},
	"MA":    {"Financial Services", "Credit Services"},
	"UNH":   {"Healthcare", "Healthcare Plans"},
	"HD":    {"Consumer Cyclical", "Home Improvement Retail"},
	"DIS":   {"Communication Services", "Entertainment"},
	"BAC":   {"Financial Services", "Banks - Diversified"},
	"ADBE":  {"Technology", "Software - Application"},
	"CRM":   {"Technology", "Software - Application"},
	"NFLX":  {"Communication Services", "Entertainment"},
	"INTC":  {"Technology", "Semiconductors"},
	"AMD":   {"Technology", "Semiconductors"},
	"PYPL":  {"Financial Services", "Credit Services"},
	"COST":  {"Consumer Defensive", "Discount Stores"},
	"PFE":   {"Healthcare", "Drug Manufacturers - General"},
	"KO":    {"Consumer Defensive", "Beverages - Non-Alcoholic"},
	"CSCO":  {"Technology", "Communication Equipment"},
	"PEP":   {"Consumer Defensive", "Beverages - Non-Alcoholic"},
	"TMO":   {"Healthcare", "Diagnostics & Research"},
}

// Classify returns the sector and industry for a symbol, or "N/A" for both
// when the symbol is outside the built-in table.
func Classify(symbol string) (string, string) {
	if info, ok := sectors[symbol]; ok {
		return info.Sector, info.Industry
	}
	return "N/A", "N/A"
}
