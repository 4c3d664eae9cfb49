package services

import (
	"testing"

	"picusrc-backend/internal/domain"
)

// catalogLeg builds a costed leg with fixed revenue and cost, which is all
// Compose looks at besides type and route.
func catalogLeg(t domain.LegType, origin, destination string, revenue, cost float64) domain.Leg {
	return domain.Leg{
		LegInput: domain.LegInput{
			Type:        t,
			Origin:      origin,
			Destination: destination,
		},
		TotalRevenue:   revenue,
		TotalCost:      cost,
		Classification: domain.ShortRouteClass,
	}
}

func TestComposePicksBestDirectReturn(t *testing.T) {
	outbound := catalogLeg(domain.LegImport, "Laredo", "Monterrey", 10000, 6000)
	catalog := []domain.Leg{
		outbound,
		// ratio 0.25
		catalogLeg(domain.LegExport, "Monterrey", "Laredo", 8000, 6000),
		// ratio 0.40, should win
		catalogLeg(domain.LegExport, "Monterrey", "Laredo", 10000, 6000),
	}

	trip, ok := Compose(outbound, catalog, domain.DefaultParams())
	if !ok {
		t.Fatalf("expected a round trip")
	}
	if len(trip.Legs) != 2 {
		t.Fatalf("direct return should have 2 legs, got %d", len(trip.Legs))
	}
	ret := trip.Legs[1]
	if ret.TotalRevenue != 10000 || ret.TotalCost != 6000 {
		t.Fatalf("picked the wrong return: %+v", ret)
	}
}

func TestComposeFallsBackToEmptyHop(t *testing.T) {
	outbound := catalogLeg(domain.LegImport, "Laredo", "Monterrey", 10000, 6000)
	catalog := []domain.Leg{
		outbound,
		// no EXPO out of Monterrey, so the hop is required
		catalogLeg(domain.LegEmpty, "Monterrey", "Saltillo", 0, 900),
		catalogLeg(domain.LegExport, "Saltillo", "Laredo", 9000, 5000),
	}

	trip, ok := Compose(outbound, catalog, domain.DefaultParams())
	if !ok {
		t.Fatalf("expected a repositioned round trip")
	}
	if len(trip.Legs) != 3 {
		t.Fatalf("repositioned return should have 3 legs, got %d", len(trip.Legs))
	}
	if trip.Legs[1].Type != domain.LegEmpty {
		t.Fatalf("middle leg should be the empty hop, got %s", trip.Legs[1].Type)
	}
	if trip.Legs[2].Origin != "Saltillo" {
		t.Fatalf("final leg should start at the hop destination, got %s", trip.Legs[2].Origin)
	}
}

func TestComposeDirectBeatsBetterRepositioned(t *testing.T) {
	outbound := catalogLeg(domain.LegImport, "Laredo", "Monterrey", 10000, 6000)
	catalog := []domain.Leg{
		outbound,
		// a thin direct return
		catalogLeg(domain.LegExport, "Monterrey", "Laredo", 5000, 4900),
		// a much richer repositioned pair that must NOT be chosen
		catalogLeg(domain.LegEmpty, "Monterrey", "Saltillo", 0, 100),
		catalogLeg(domain.LegExport, "Saltillo", "Laredo", 20000, 5000),
	}

	trip, ok := Compose(outbound, catalog, domain.DefaultParams())
	if !ok {
		t.Fatalf("expected a round trip")
	}
	if len(trip.Legs) != 2 {
		t.Fatalf("direct return must win over repositioning, got %d legs", len(trip.Legs))
	}
}

func TestComposeBestHopPairByCombinedNet(t *testing.T) {
	outbound := catalogLeg(domain.LegImport, "Laredo", "Monterrey", 10000, 6000)
	catalog := []domain.Leg{
		outbound,
		catalogLeg(domain.LegEmpty, "Monterrey", "Saltillo", 0, 2000),
		catalogLeg(domain.LegExport, "Saltillo", "Laredo", 9000, 5000), // combined net 6000
		catalogLeg(domain.LegEmpty, "Monterrey", "Torreon", 0, 500),
		catalogLeg(domain.LegExport, "Torreon", "Laredo", 8000, 5000), // combined net 6500
	}

	trip, ok := Compose(outbound, catalog, domain.DefaultParams())
	if !ok {
		t.Fatalf("expected a round trip")
	}
	if trip.Legs[1].Destination != "Torreon" {
		t.Fatalf("hop with the best combined net should win, got %s", trip.Legs[1].Destination)
	}
}

func TestComposeNoCandidate(t *testing.T) {
	outbound := catalogLeg(domain.LegImport, "Laredo", "Monterrey", 10000, 6000)
	catalog := []domain.Leg{
		outbound,
		// empty hop with no loaded leg out of its destination
		catalogLeg(domain.LegEmpty, "Monterrey", "Saltillo", 0, 900),
	}

	if _, ok := Compose(outbound, catalog, domain.DefaultParams()); ok {
		t.Fatalf("expected no round trip")
	}
}

func TestComposeAggregates(t *testing.T) {
	params := domain.DefaultParams() // overhead 35%
	outbound := catalogLeg(domain.LegImport, "Laredo", "Monterrey", 10000, 6000)
	catalog := []domain.Leg{
		outbound,
		catalogLeg(domain.LegExport, "Monterrey", "Laredo", 8000, 6000),
	}

	trip, ok := Compose(outbound, catalog, params)
	if !ok {
		t.Fatalf("expected a round trip")
	}
	if !almost(trip.TotalRevenue, 18000) {
		t.Fatalf("total revenue: got %v", trip.TotalRevenue)
	}
	if !almost(trip.TotalCost, 12000) {
		t.Fatalf("total cost: got %v", trip.TotalCost)
	}
	if !almost(trip.GrossProfit, 6000) {
		t.Fatalf("gross profit: got %v", trip.GrossProfit)
	}
	if !almost(trip.Overhead, 6300) {
		t.Fatalf("overhead: got %v", trip.Overhead)
	}
	if !almost(trip.NetProfit, -300) {
		t.Fatalf("net profit: got %v", trip.NetProfit)
	}
	if !almost(trip.GrossMargin, 6000.0/18000.0) {
		t.Fatalf("gross margin: got %v", trip.GrossMargin)
	}
}

func TestComposeAtOutOfRange(t *testing.T) {
	svc := ComposerService{
		Legs:   &fakeLegStore{},
		Params: &fakeParamsStore{params: domain.DefaultParams()},
	}
	if _, _, err := svc.ComposeAt(0); !domain.IsNotFound(err) {
		t.Fatalf("expected not found for empty catalog, got %v", err)
	}
}
