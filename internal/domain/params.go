package domain

// BaseCurrency is the currency every monetary figure is normalized into.
// Its exchange rate is pinned to 1.
const BaseCurrency = "MXN"

// OperatingParams is the process-wide configuration snapshot used for
// costing. Loaded as a whole, replaced as a whole; costing calls receive it
// explicitly instead of reading globals.
type OperatingParams struct {
	DriverWage       float64 `json:"driverWage"`
	DriverBonus      float64 `json:"driverBonus"`
	PerformanceBonus float64 `json:"performanceBonus"`

	// FuelEfficiency is km per liter; FuelUnitCost is base currency per liter.
	FuelEfficiency float64 `json:"fuelEfficiency"`
	FuelUnitCost   float64 `json:"fuelUnitCost"`

	// OverheadRate is the indirect cost charge as a fraction of revenue.
	OverheadRate float64 `json:"overheadRate"`

	// Rates maps a currency code to its multiplier into the base currency.
	Rates map[string]float64 `json:"rates"`
}

// DefaultParams returns the parameter set the operation starts with before
// anything is configured.
func DefaultParams() OperatingParams {
	return OperatingParams{
		DriverWage:       300.0,
		DriverBonus:      185.06,
		PerformanceBonus: 0.0,
		FuelEfficiency:   2.5,
		FuelUnitCost:     24.0,
		OverheadRate:     0.35,
		Rates: map[string]float64{
			BaseCurrency: 1.0,
			"USD":        17.5,
		},
	}
}

// Rate resolves the exchange rate for a currency. An unrecognized or
// non-positive rate is a configuration problem surfaced to the caller, never
// silently treated as 1.
func (p OperatingParams) Rate(currency string) (float64, error) {
	if currency == BaseCurrency {
		return 1.0, nil
	}
	rate, ok := p.Rates[currency]
	if !ok {
		return 0, ValidationError{Field: "currency", Msg: "no exchange rate configured for " + currency}
	}
	if rate <= 0 {
		return 0, ValidationError{Field: "currency", Msg: "exchange rate for " + currency + " must be positive"}
	}
	return rate, nil
}

func (p OperatingParams) Validate() error {
	if p.FuelEfficiency <= 0 {
		return ValidationError{Field: "fuelEfficiency", Msg: "must be positive"}
	}
	if p.FuelUnitCost < 0 {
		return ValidationError{Field: "fuelUnitCost", Msg: "must not be negative"}
	}
	if p.DriverWage < 0 || p.DriverBonus < 0 || p.PerformanceBonus < 0 {
		return ValidationError{Field: "driver pay", Msg: "must not be negative"}
	}
	if p.OverheadRate < 0 || p.OverheadRate >= 1 {
		return ValidationError{Field: "overheadRate", Msg: "must be in [0,1)"}
	}
	for cur, rate := range p.Rates {
		if rate <= 0 {
			return ValidationError{Field: "rates", Msg: "rate for " + cur + " must be positive"}
		}
	}
	return nil
}
