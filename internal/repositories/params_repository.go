package repositories

import (
	"database/sql"
	"strings"

	"picusrc-backend/internal/config"
	intdb "picusrc-backend/internal/db"
	"picusrc-backend/internal/domain"
)

// ParamsRepository persists the operating parameter set as a key/value
// table. Load overlays stored values on the defaults, so the system is
// usable before anything has ever been saved; Save rewrites the whole set.
type ParamsRepository struct {
	DB *sql.DB
}

const ratePrefix = "rate_"

func (r ParamsRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

func (r ParamsRepository) Load() (domain.OperatingParams, error) {
	params := domain.DefaultParams()
	db := r.db()
	if db == nil {
		return params, domain.InternalError{Msg: "database not connected"}
	}
	if !intdb.HasTable(db, "operating_params") {
		return params, nil
	}

	rows, err := db.Query(`SELECT param_key, param_value FROM operating_params`)
	if err != nil {
		return params, domain.InternalError{Msg: "query params", Err: err}
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var value float64
		if err := rows.Scan(&key, &value); err != nil {
			return params, domain.InternalError{Msg: "scan param", Err: err}
		}
		switch key {
		case "driver_wage":
			params.DriverWage = value
		case "driver_bonus":
			params.DriverBonus = value
		case "performance_bonus":
			params.PerformanceBonus = value
		case "fuel_efficiency":
			params.FuelEfficiency = value
		case "fuel_unit_cost":
			params.FuelUnitCost = value
		case "overhead_rate":
			params.OverheadRate = value
		default:
			if cur, ok := strings.CutPrefix(key, ratePrefix); ok {
				params.Rates[cur] = value
			}
		}
	}
	if err := rows.Err(); err != nil {
		return params, domain.InternalError{Msg: "iterate params", Err: err}
	}
	// the base currency never floats
	params.Rates[domain.BaseCurrency] = 1.0
	return params, nil
}

func (r ParamsRepository) Save(params domain.OperatingParams) error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not connected"}
	}
	tx, err := db.Begin()
	if err != nil {
		return domain.InternalError{Msg: "begin save", Err: err}
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM operating_params`); err != nil {
		return domain.InternalError{Msg: "clear params", Err: err}
	}

	kv := map[string]float64{
		"driver_wage":       params.DriverWage,
		"driver_bonus":      params.DriverBonus,
		"performance_bonus": params.PerformanceBonus,
		"fuel_efficiency":   params.FuelEfficiency,
		"fuel_unit_cost":    params.FuelUnitCost,
		"overhead_rate":     params.OverheadRate,
	}
	for cur, rate := range params.Rates {
		kv[ratePrefix+cur] = rate
	}
	for key, value := range kv {
		if _, err := tx.Exec(`INSERT INTO operating_params (param_key, param_value) VALUES (?, ?)`, key, value); err != nil {
			return domain.InternalError{Msg: "insert param", Err: err}
		}
	}
	if err := tx.Commit(); err != nil {
		return domain.InternalError{Msg: "commit save", Err: err}
	}
	return nil
}
