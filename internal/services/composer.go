package services

import (
	"fmt"

	"picusrc-backend/internal/domain"
	"picusrc-backend/internal/utils"
)

// ComposerService builds round-trip suggestions out of the catalog.
type ComposerService struct {
	Legs      LegStore
	Params    ParamsStore
	RequestID string
}

// ComposeAt runs Compose for the catalog leg at pos. The boolean is false
// when no return route exists; that is an empty result, not an error.
func (s ComposerService) ComposeAt(pos int) (domain.RoundTrip, bool, error) {
	legs, err := s.Legs.ReadAll()
	if err != nil {
		return domain.RoundTrip{}, false, err
	}
	if pos < 0 || pos >= len(legs) {
		return domain.RoundTrip{}, false, domain.NotFoundError{Resource: "leg"}
	}
	params, err := s.Params.Load()
	if err != nil {
		return domain.RoundTrip{}, false, err
	}
	trip, ok := Compose(legs[pos], legs, params)
	utils.LogEvent(s.RequestID, "composer", "compose", fmt.Sprintf("pos=%d legs=%d found=%t", pos, len(trip.Legs), ok))
	return trip, ok, nil
}

// Compose chains the outbound leg with the best available return. Direct
// returns win over repositioned ones: only when no complementary leg starts
// at the outbound's destination does the search widen to a single VACIO hop.
func Compose(outbound domain.Leg, catalog []domain.Leg, params domain.OperatingParams) (domain.RoundTrip, bool) {
	finalType := outbound.Type.Complement()

	direct := legsFrom(catalog, finalType, outbound.Destination)
	if len(direct) > 0 {
		best := RankByProfitRatio(direct)[0]
		return buildRoundTrip([]domain.Leg{outbound, best}, params), true
	}

	// No direct return: try every empty hop out of the destination and keep
	// the (hop, final) pair with the highest combined net profit. Strict
	// comparison, so the first pair found keeps a tie.
	var (
		found    bool
		bestTrip domain.RoundTrip
		bestNet  float64
	)
	for _, hop := range legsFrom(catalog, domain.LegEmpty, outbound.Destination) {
		finals := legsFrom(catalog, finalType, hop.Destination)
		if len(finals) == 0 {
			continue
		}
		final := RankByProfitRatio(finals)[0]
		combined := outbound.NetProfit() + hop.NetProfit() + final.NetProfit()
		if !found || combined > bestNet {
			found = true
			bestNet = combined
			bestTrip = buildRoundTrip([]domain.Leg{outbound, hop, final}, params)
		}
	}
	if !found {
		return domain.RoundTrip{}, false
	}
	return bestTrip, true
}

func legsFrom(catalog []domain.Leg, t domain.LegType, origin string) []domain.Leg {
	out := make([]domain.Leg, 0, len(catalog))
	for _, leg := range catalog {
		if leg.Type == t && leg.Origin == origin {
			out = append(out, leg)
		}
	}
	return out
}

func buildRoundTrip(legs []domain.Leg, params domain.OperatingParams) domain.RoundTrip {
	trip := domain.RoundTrip{Legs: legs}
	for _, leg := range legs {
		trip.TotalRevenue += leg.TotalRevenue
		trip.TotalCost += leg.TotalCost
	}
	trip.GrossProfit = trip.TotalRevenue - trip.TotalCost
	trip.Overhead = trip.TotalRevenue * params.OverheadRate
	trip.NetProfit = trip.GrossProfit - trip.Overhead
	if trip.TotalRevenue > 0 {
		trip.GrossMargin = trip.GrossProfit / trip.TotalRevenue
		trip.NetMargin = trip.NetProfit / trip.TotalRevenue
	}
	return trip
}
