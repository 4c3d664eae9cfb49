package services

import "picusrc-backend/internal/domain"

// Persistence boundaries. Every store keeps the flat-table discipline the
// operation has always run on: read the whole table at the start of an
// operation, write the whole table (or a whole itinerary's rows) at the end.
// Two sessions writing at once race last-writer-wins; that is documented
// behavior for this single-operator deployment, not something to lock away.

// LegStore holds the short-route catalog.
type LegStore interface {
	ReadAll() ([]domain.Leg, error)
	ReplaceAll(legs []domain.Leg) error
}

// ParamsStore holds the operating parameter set as one unit.
type ParamsStore interface {
	Load() (domain.OperatingParams, error)
	Save(params domain.OperatingParams) error
}

// TripLogStore holds the scheduled trip legs grouped by itinerary id.
type TripLogStore interface {
	ReadAll() ([]domain.TripLeg, error)
	ForItinerary(id string) ([]domain.TripLeg, error)
	Append(legs ...domain.TripLeg) error
	ReplaceItinerary(id string, legs []domain.TripLeg) error
}
