package domain

// Settings is the process-wide store configuration. The engine reads it;
// editing happens outside the engine.
type Settings struct {
	StoreName        string  `json:"store_name"`
	TaxRatePercent   float64 `json:"tax_rate_percent"`
	CurrencySymbol   string  `json:"currency_symbol"`
	DefaultThreshold int     `json:"default_threshold"`
}

// Defaults returns the settings installed on first start.
func Defaults() Settings {
	return Settings{
		StoreName:        "The Drink Spot POS",
		TaxRatePercent:   8.5,
		CurrencySymbol:   "$",
		DefaultThreshold: 10,
	}
}

// Provider exposes the current settings to the engine.
type Provider interface {
	Get() Settings
}
