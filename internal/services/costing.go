package services

import (
	"strings"

	"picusrc-backend/internal/domain"
)

// ToBase normalizes an amount in the given currency into the base currency.
// Pure; the same inputs always give the same result.
func ToBase(amount float64, currency string, params domain.OperatingParams) (float64, error) {
	if amount < 0 {
		return 0, domain.ValidationError{Field: "amount", Msg: "must not be negative"}
	}
	rate, err := params.Rate(currency)
	if err != nil {
		return 0, err
	}
	return amount * rate, nil
}

// CostLeg prices a raw leg under the given parameter snapshot. It is a pure
// function: costing the same input twice with the same params yields an
// identical Leg. Nothing is persisted here.
func CostLeg(in domain.LegInput, params domain.OperatingParams) (domain.Leg, error) {
	in.Client = strings.TrimSpace(in.Client)
	in.Origin = strings.TrimSpace(in.Origin)
	in.Destination = strings.TrimSpace(in.Destination)
	in.Date = strings.TrimSpace(in.Date)

	if err := validateLegInput(in); err != nil {
		return domain.Leg{}, err
	}
	if err := params.Validate(); err != nil {
		return domain.Leg{}, err
	}

	freightRate, err := params.Rate(in.FreightCurrency)
	if err != nil {
		return domain.Leg{}, err
	}
	crossingRate, err := params.Rate(in.CrossingCurrency)
	if err != nil {
		return domain.Leg{}, err
	}
	crossingCostRate, err := params.Rate(in.CrossingCostCurrency)
	if err != nil {
		return domain.Leg{}, err
	}

	leg := domain.Leg{
		LegInput:         in,
		FreightRate:      freightRate,
		CrossingRate:     crossingRate,
		CrossingCostRate: crossingCostRate,
		Classification:   domain.ShortRouteClass,
	}

	leg.FreightRevenue = in.FreightAmount * freightRate
	leg.CrossingRevenue = in.CrossingAmount * crossingRate
	leg.CrossingCost = in.CrossingCostAmount * crossingCostRate
	leg.TotalRevenue = leg.FreightRevenue + leg.CrossingRevenue

	leg.FuelCost = in.KM / params.FuelEfficiency * params.FuelUnitCost
	leg.DriverWage = params.DriverWage
	leg.DriverBonus = params.DriverBonus
	leg.PerformanceBonus = params.PerformanceBonus
	leg.IncidentalTotal = in.Incidentals.Total()

	leg.TotalCost = leg.FuelCost + leg.DriverWage + leg.DriverBonus + leg.PerformanceBonus +
		in.Tolls + leg.IncidentalTotal + leg.CrossingCost

	return leg, nil
}

func validateLegInput(in domain.LegInput) error {
	if !in.Type.Valid() {
		return domain.ValidationError{Field: "type", Msg: "must be IMPO, EXPO or VACIO"}
	}
	if in.Origin == "" {
		return domain.ValidationError{Field: "origin", Msg: "required"}
	}
	if in.Destination == "" {
		return domain.ValidationError{Field: "destination", Msg: "required"}
	}
	// empty repositioning legs have no client
	if in.Client == "" && in.Type != domain.LegEmpty {
		return domain.ValidationError{Field: "client", Msg: "required"}
	}
	if in.KM < 0 {
		return domain.ValidationError{Field: "km", Msg: "must not be negative"}
	}
	if in.Tolls < 0 {
		return domain.ValidationError{Field: "tolls", Msg: "must not be negative"}
	}
	if in.FreightAmount < 0 {
		return domain.ValidationError{Field: "freightAmount", Msg: "must not be negative"}
	}
	if in.CrossingAmount < 0 {
		return domain.ValidationError{Field: "crossingAmount", Msg: "must not be negative"}
	}
	if in.CrossingCostAmount < 0 {
		return domain.ValidationError{Field: "crossingCostAmount", Msg: "must not be negative"}
	}
	return in.Incidentals.Validate()
}
