package domain

// LegType classifies a priced freight movement.
type LegType string

const (
	LegImport LegType = "IMPO"
	LegExport LegType = "EXPO"
	LegEmpty  LegType = "VACIO"
)

func (t LegType) Valid() bool {
	switch t {
	case LegImport, LegExport, LegEmpty:
		return true
	}
	return false
}

// Complement is the leg type that closes a round trip started with t.
// An empty leg pairs with EXPO by operational convention.
func (t LegType) Complement() LegType {
	switch t {
	case LegImport:
		return LegExport
	case LegExport:
		return LegImport
	default:
		return LegExport
	}
}

// Incidentals holds the per-leg extra cost categories. Every category is
// always present; absent inputs stay at zero.
type Incidentals struct {
	LocalMove   float64 `json:"localMove" csv:"local_move"`
	Punctuality float64 `json:"punctuality" csv:"punctuality"`
	Demurrage   float64 `json:"demurrage" csv:"demurrage"`
	Storage     float64 `json:"storage" csv:"storage"`
	ExtraLanes  float64 `json:"extraLanes" csv:"extra_lanes"`
	Stop        float64 `json:"stop" csv:"stop"`
	FalseTrip   float64 `json:"falseTrip" csv:"false_trip"`
	Jacks       float64 `json:"jacks" csv:"jacks"`
	Accessories float64 `json:"accessories" csv:"accessories"`
	Escorts     float64 `json:"escorts" csv:"escorts"`
}

func (i Incidentals) Total() float64 {
	return i.LocalMove + i.Punctuality + i.Demurrage + i.Storage +
		i.ExtraLanes + i.Stop + i.FalseTrip + i.Jacks + i.Accessories + i.Escorts
}

func (i Incidentals) Validate() error {
	fields := map[string]float64{
		"localMove":   i.LocalMove,
		"punctuality": i.Punctuality,
		"demurrage":   i.Demurrage,
		"storage":     i.Storage,
		"extraLanes":  i.ExtraLanes,
		"stop":        i.Stop,
		"falseTrip":   i.FalseTrip,
		"jacks":       i.Jacks,
		"accessories": i.Accessories,
		"escorts":     i.Escorts,
	}
	for name, v := range fields {
		if v < 0 {
			return ValidationError{Field: name, Msg: "must not be negative"}
		}
	}
	return nil
}

// LegInput is the raw capture of a short-route leg before costing.
type LegInput struct {
	Date        string  `json:"date"`
	Type        LegType `json:"type"`
	Client      string  `json:"client"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	KM          float64 `json:"km"`
	Tolls       float64 `json:"tolls"`

	FreightAmount   float64 `json:"freightAmount"`
	FreightCurrency string  `json:"freightCurrency"`

	CrossingAmount   float64 `json:"crossingAmount"`
	CrossingCurrency string  `json:"crossingCurrency"`

	CrossingCostAmount   float64 `json:"crossingCostAmount"`
	CrossingCostCurrency string  `json:"crossingCostCurrency"`

	Incidentals Incidentals `json:"incidentals"`
}

// Classification tag for legs this system manages. Rows without it are
// ignored by the catalog.
const ShortRouteClass = "RC"

// Leg is a costed catalog entry. Derived monetary fields are computed once
// at capture time and stored with the row; the operating parameters in force
// at that moment are snapshotted so later parameter edits do not rewrite
// history.
type Leg struct {
	LegInput

	FreightRate      float64 `json:"freightRate"`
	CrossingRate     float64 `json:"crossingRate"`
	CrossingCostRate float64 `json:"crossingCostRate"`

	FreightRevenue  float64 `json:"freightRevenue"`
	CrossingRevenue float64 `json:"crossingRevenue"`
	CrossingCost    float64 `json:"crossingCost"`
	TotalRevenue    float64 `json:"totalRevenue"`

	FuelCost         float64 `json:"fuelCost"`
	DriverWage       float64 `json:"driverWage"`
	DriverBonus      float64 `json:"driverBonus"`
	PerformanceBonus float64 `json:"performanceBonus"`
	IncidentalTotal  float64 `json:"incidentalTotal"`
	TotalCost        float64 `json:"totalCost"`

	Classification string `json:"classification"`
}

func (l Leg) NetProfit() float64 {
	return l.TotalRevenue - l.TotalCost
}

// ProfitRatio is net profit over revenue. A zero-revenue leg (typical of
// VACIO) ranks with ratio 0 instead of failing.
func (l Leg) ProfitRatio() float64 {
	if l.TotalRevenue == 0 {
		return 0
	}
	return l.NetProfit() / l.TotalRevenue
}
