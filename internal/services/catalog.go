package services

import (
	"fmt"
	"sort"

	"picusrc-backend/internal/domain"
	"picusrc-backend/internal/utils"
)

// CatalogService manages the authoritative set of costed short-route legs.
// Catalog rows are addressed by position, matching how the operation has
// always referred to them; every mutation rewrites the full persisted table.
type CatalogService struct {
	Legs      LegStore
	Params    ParamsStore
	RequestID string
}

func (s CatalogService) List() ([]domain.Leg, error) {
	return s.Legs.ReadAll()
}

func (s CatalogService) Get(pos int) (domain.Leg, error) {
	legs, err := s.Legs.ReadAll()
	if err != nil {
		return domain.Leg{}, err
	}
	if pos < 0 || pos >= len(legs) {
		return domain.Leg{}, domain.NotFoundError{Resource: "leg"}
	}
	return legs[pos], nil
}

// Add prices the input under the current parameter snapshot and appends it.
func (s CatalogService) Add(in domain.LegInput) (domain.Leg, error) {
	params, err := s.Params.Load()
	if err != nil {
		return domain.Leg{}, err
	}
	leg, err := CostLeg(in, params)
	if err != nil {
		return domain.Leg{}, err
	}
	legs, err := s.Legs.ReadAll()
	if err != nil {
		return domain.Leg{}, err
	}
	legs = append(legs, leg)
	if err := s.Legs.ReplaceAll(legs); err != nil {
		return domain.Leg{}, err
	}
	utils.LogEvent(s.RequestID, "catalog", "add", fmt.Sprintf("type=%s route=%s->%s", leg.Type, leg.Origin, leg.Destination))
	return leg, nil
}

// UpdateAt recomputes the leg at pos from fresh input. All derived fields
// are rebuilt; partially updated rows never reach the store.
func (s CatalogService) UpdateAt(pos int, in domain.LegInput) (domain.Leg, error) {
	params, err := s.Params.Load()
	if err != nil {
		return domain.Leg{}, err
	}
	leg, err := CostLeg(in, params)
	if err != nil {
		return domain.Leg{}, err
	}
	legs, err := s.Legs.ReadAll()
	if err != nil {
		return domain.Leg{}, err
	}
	if pos < 0 || pos >= len(legs) {
		return domain.Leg{}, domain.NotFoundError{Resource: "leg"}
	}
	legs[pos] = leg
	if err := s.Legs.ReplaceAll(legs); err != nil {
		return domain.Leg{}, err
	}
	utils.LogEvent(s.RequestID, "catalog", "update", fmt.Sprintf("pos=%d", pos))
	return leg, nil
}

// DeleteAt removes the legs at the given positions (any order, duplicates
// tolerated) and rewrites the table.
func (s CatalogService) DeleteAt(positions []int) error {
	legs, err := s.Legs.ReadAll()
	if err != nil {
		return err
	}
	drop := make(map[int]bool, len(positions))
	for _, p := range positions {
		if p < 0 || p >= len(legs) {
			return domain.NotFoundError{Resource: "leg"}
		}
		drop[p] = true
	}
	kept := make([]domain.Leg, 0, len(legs))
	for i, leg := range legs {
		if !drop[i] {
			kept = append(kept, leg)
		}
	}
	if err := s.Legs.ReplaceAll(kept); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "catalog", "delete", fmt.Sprintf("removed=%d", len(drop)))
	return nil
}

// ByType filters legs to one classification type, keeping catalog order.
func ByType(legs []domain.Leg, t domain.LegType) []domain.Leg {
	out := make([]domain.Leg, 0, len(legs))
	for _, leg := range legs {
		if leg.Type == t {
			out = append(out, leg)
		}
	}
	return out
}

// ByRoute filters to a type plus an exact, case-sensitive origin/destination
// pair. City names chain by exact match only.
func ByRoute(legs []domain.Leg, t domain.LegType, origin, destination string) []domain.Leg {
	out := make([]domain.Leg, 0, len(legs))
	for _, leg := range legs {
		if leg.Type == t && leg.Origin == origin && leg.Destination == destination {
			out = append(out, leg)
		}
	}
	return out
}

// RankByProfitRatio returns a copy sorted by profit ratio descending. The
// sort is stable so equal ratios keep their catalog order.
func RankByProfitRatio(legs []domain.Leg) []domain.Leg {
	out := make([]domain.Leg, len(legs))
	copy(out, legs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ProfitRatio() > out[j].ProfitRatio()
	})
	return out
}
