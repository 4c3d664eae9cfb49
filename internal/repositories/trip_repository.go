package repositories

import (
	"database/sql"

	"picusrc-backend/internal/config"
	intdb "picusrc-backend/internal/db"
	"picusrc-backend/internal/domain"
)

const tripLegColumns = `
	itinerary_id, trip_number, trip_date, vehicle_id, driver_id, role,` + legColumns

const tripLegPlaceholders = `?,?,?,?,?,?,` + legPlaceholders

// TripRepository persists scheduled trip legs. Appends add rows; editing a
// pending itinerary overwrites just that itinerary's rows in one
// transaction. Nothing here merges concurrent sessions.
type TripRepository struct {
	DB *sql.DB
}

func (r TripRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

func (r TripRepository) ReadAll() ([]domain.TripLeg, error) {
	db := r.db()
	if db == nil {
		return nil, domain.InternalError{Msg: "database not connected"}
	}
	if !intdb.HasTable(db, "trip_legs") {
		return []domain.TripLeg{}, nil
	}
	rows, err := db.Query(`SELECT` + tripLegColumns + ` FROM trip_legs ORDER BY id ASC`)
	if err != nil {
		return nil, domain.InternalError{Msg: "query trip legs", Err: err}
	}
	defer rows.Close()
	return collectTripLegs(rows)
}

func (r TripRepository) ForItinerary(id string) ([]domain.TripLeg, error) {
	db := r.db()
	if db == nil {
		return nil, domain.InternalError{Msg: "database not connected"}
	}
	if !intdb.HasTable(db, "trip_legs") {
		return []domain.TripLeg{}, nil
	}
	rows, err := db.Query(`SELECT`+tripLegColumns+` FROM trip_legs WHERE itinerary_id=? ORDER BY id ASC`, id)
	if err != nil {
		return nil, domain.InternalError{Msg: "query itinerary", Err: err}
	}
	defer rows.Close()
	return collectTripLegs(rows)
}

func (r TripRepository) Append(legs ...domain.TripLeg) error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not connected"}
	}
	tx, err := db.Begin()
	if err != nil {
		return domain.InternalError{Msg: "begin append", Err: err}
	}
	defer tx.Rollback()

	for _, leg := range legs {
		if _, err := tx.Exec(
			`INSERT INTO trip_legs (`+tripLegColumns+`) VALUES (`+tripLegPlaceholders+`)`,
			tripLegInsertArgs(leg)...,
		); err != nil {
			return domain.InternalError{Msg: "insert trip leg", Err: err}
		}
	}
	if err := tx.Commit(); err != nil {
		return domain.InternalError{Msg: "commit append", Err: err}
	}
	return nil
}

func (r TripRepository) ReplaceItinerary(id string, legs []domain.TripLeg) error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not connected"}
	}
	tx, err := db.Begin()
	if err != nil {
		return domain.InternalError{Msg: "begin replace", Err: err}
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM trip_legs WHERE itinerary_id=?`, id); err != nil {
		return domain.InternalError{Msg: "clear itinerary", Err: err}
	}
	for _, leg := range legs {
		if _, err := tx.Exec(
			`INSERT INTO trip_legs (`+tripLegColumns+`) VALUES (`+tripLegPlaceholders+`)`,
			tripLegInsertArgs(leg)...,
		); err != nil {
			return domain.InternalError{Msg: "insert trip leg", Err: err}
		}
	}
	if err := tx.Commit(); err != nil {
		return domain.InternalError{Msg: "commit replace", Err: err}
	}
	return nil
}

func tripLegInsertArgs(t domain.TripLeg) []any {
	args := []any{t.ItineraryID, t.TripNumber, t.TripDate, t.VehicleID, t.DriverID, string(t.Role)}
	return append(args, legInsertArgs(t.Leg)...)
}

func collectTripLegs(rows *sql.Rows) ([]domain.TripLeg, error) {
	out := []domain.TripLeg{}
	for rows.Next() {
		t, err := scanTripLeg(rows)
		if err != nil {
			return nil, domain.InternalError{Msg: "scan trip leg", Err: err}
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "iterate trip legs", Err: err}
	}
	return out, nil
}

func scanTripLeg(rs rowScanner) (domain.TripLeg, error) {
	var t domain.TripLeg
	var role, legType string
	l := &t.Leg
	err := rs.Scan(
		&t.ItineraryID, &t.TripNumber, &t.TripDate, &t.VehicleID, &t.DriverID, &role,
		&l.Date, &legType, &l.Client, &l.Origin, &l.Destination, &l.KM, &l.Tolls,
		&l.FreightCurrency, &l.FreightAmount, &l.FreightRate, &l.FreightRevenue,
		&l.CrossingCurrency, &l.CrossingAmount, &l.CrossingRate, &l.CrossingRevenue,
		&l.CrossingCostCurrency, &l.CrossingCostAmount, &l.CrossingCostRate, &l.CrossingCost,
		&l.TotalRevenue, &l.FuelCost, &l.DriverWage, &l.DriverBonus, &l.PerformanceBonus,
		&l.Incidentals.LocalMove, &l.Incidentals.Punctuality, &l.Incidentals.Demurrage,
		&l.Incidentals.Storage, &l.Incidentals.ExtraLanes, &l.Incidentals.Stop,
		&l.Incidentals.FalseTrip, &l.Incidentals.Jacks, &l.Incidentals.Accessories,
		&l.Incidentals.Escorts, &l.IncidentalTotal, &l.TotalCost,
		&l.Classification,
	)
	if err != nil {
		return domain.TripLeg{}, err
	}
	t.Role = domain.SegmentRole(role)
	l.Type = domain.LegType(legType)
	return t, nil
}
