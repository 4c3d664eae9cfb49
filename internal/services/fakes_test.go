package services

import (
	"picusrc-backend/internal/domain"
)

// In-memory stores mirroring the whole-table read/replace contract of the
// MySQL repositories.

type fakeLegStore struct {
	legs []domain.Leg
	err  error
}

func (f *fakeLegStore) ReadAll() ([]domain.Leg, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.Leg, len(f.legs))
	copy(out, f.legs)
	return out, nil
}

func (f *fakeLegStore) ReplaceAll(legs []domain.Leg) error {
	if f.err != nil {
		return f.err
	}
	f.legs = make([]domain.Leg, len(legs))
	copy(f.legs, legs)
	return nil
}

type fakeParamsStore struct {
	params domain.OperatingParams
}

func (f *fakeParamsStore) Load() (domain.OperatingParams, error) {
	return f.params, nil
}

func (f *fakeParamsStore) Save(params domain.OperatingParams) error {
	f.params = params
	return nil
}

type fakeTripStore struct {
	rows []domain.TripLeg
}

func (f *fakeTripStore) ReadAll() ([]domain.TripLeg, error) {
	out := make([]domain.TripLeg, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeTripStore) ForItinerary(id string) ([]domain.TripLeg, error) {
	out := []domain.TripLeg{}
	for _, row := range f.rows {
		if row.ItineraryID == id {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeTripStore) Append(legs ...domain.TripLeg) error {
	f.rows = append(f.rows, legs...)
	return nil
}

func (f *fakeTripStore) ReplaceItinerary(id string, legs []domain.TripLeg) error {
	kept := f.rows[:0:0]
	for _, row := range f.rows {
		if row.ItineraryID != id {
			kept = append(kept, row)
		}
	}
	f.rows = append(kept, legs...)
	return nil
}
