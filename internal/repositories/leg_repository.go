package repositories

import (
	"database/sql"
	"fmt"

	"picusrc-backend/internal/config"
	intdb "picusrc-backend/internal/db"
	"picusrc-backend/internal/domain"
)

const legColumns = `
	leg_date, leg_type, client, origin, destination, km, tolls,
	freight_currency, freight_amount, freight_rate, freight_revenue,
	crossing_currency, crossing_amount, crossing_rate, crossing_revenue,
	crossing_cost_currency, crossing_cost_amount, crossing_cost_rate, crossing_cost,
	total_revenue, fuel_cost, driver_wage, driver_bonus, performance_bonus,
	local_move, punctuality, demurrage, storage_fee, extra_lanes, stop_fee,
	false_trip, jacks, accessories, escorts, incidental_total, total_cost,
	classification`

const legPlaceholders = `?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?`

// LegRepository persists the short-route catalog. The store contract is a
// flat table: full filtered read, full filtered overwrite. The overwrite runs
// in one transaction so readers never observe a half-written catalog; across
// sessions the last writer wins, as this single-operator system has always
// behaved.
type LegRepository struct {
	DB *sql.DB
}

func (r LegRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

func (r LegRepository) ReadAll() ([]domain.Leg, error) {
	db := r.db()
	if db == nil {
		return nil, domain.InternalError{Msg: "database not connected"}
	}
	if !intdb.HasTable(db, "legs") {
		return []domain.Leg{}, nil
	}

	rows, err := db.Query(`SELECT`+legColumns+` FROM legs WHERE classification=? ORDER BY id ASC`, domain.ShortRouteClass)
	if err != nil {
		return nil, domain.InternalError{Msg: "query legs", Err: err}
	}
	defer rows.Close()

	out := []domain.Leg{}
	for rows.Next() {
		leg, err := scanLeg(rows)
		if err != nil {
			return nil, domain.InternalError{Msg: "scan leg", Err: err}
		}
		out = append(out, leg)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "iterate legs", Err: err}
	}
	return out, nil
}

func (r LegRepository) ReplaceAll(legs []domain.Leg) error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not connected"}
	}
	tx, err := db.Begin()
	if err != nil {
		return domain.InternalError{Msg: "begin replace", Err: err}
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM legs WHERE classification=?`, domain.ShortRouteClass); err != nil {
		return domain.InternalError{Msg: "clear legs", Err: err}
	}
	for _, leg := range legs {
		if _, err := tx.Exec(
			`INSERT INTO legs (`+legColumns+`) VALUES (`+legPlaceholders+`)`,
			legInsertArgs(leg)...,
		); err != nil {
			return domain.InternalError{Msg: "insert leg", Err: err}
		}
	}
	if err := tx.Commit(); err != nil {
		return domain.InternalError{Msg: "commit replace", Err: err}
	}
	return nil
}

func legInsertArgs(l domain.Leg) []any {
	return []any{
		l.Date, string(l.Type), l.Client, l.Origin, l.Destination, l.KM, l.Tolls,
		l.FreightCurrency, l.FreightAmount, l.FreightRate, l.FreightRevenue,
		l.CrossingCurrency, l.CrossingAmount, l.CrossingRate, l.CrossingRevenue,
		l.CrossingCostCurrency, l.CrossingCostAmount, l.CrossingCostRate, l.CrossingCost,
		l.TotalRevenue, l.FuelCost, l.DriverWage, l.DriverBonus, l.PerformanceBonus,
		l.Incidentals.LocalMove, l.Incidentals.Punctuality, l.Incidentals.Demurrage,
		l.Incidentals.Storage, l.Incidentals.ExtraLanes, l.Incidentals.Stop,
		l.Incidentals.FalseTrip, l.Incidentals.Jacks, l.Incidentals.Accessories,
		l.Incidentals.Escorts, l.IncidentalTotal, l.TotalCost,
		l.Classification,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLeg(rs rowScanner) (domain.Leg, error) {
	var l domain.Leg
	var legType string
	err := rs.Scan(
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
		return domain.Leg{}, err
	}
	l.Type = domain.LegType(legType)
	if !l.Type.Valid() {
		return domain.Leg{}, fmt.Errorf("unknown leg type %q", legType)
	}
	return l, nil
}
