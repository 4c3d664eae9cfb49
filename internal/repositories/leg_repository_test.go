package repositories

import (
	"database/sql/driver"
	"errors"
	"reflect"
	"strings"
	"testing"

	"picusrc-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

var errDuplicate = errors.New("duplicate row")

func legColumnNames() []string {
	parts := strings.Split(legColumns, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

func asDriverValues(args []any) []driver.Value {
	out := make([]driver.Value, len(args))
	for i, a := range args {
		out[i] = a
	}
	return out
}

func sampleLeg() domain.Leg {
	return domain.Leg{
		LegInput: domain.LegInput{
			Date:                 "2025-03-10",
			Type:                 domain.LegImport,
			Client:               "ACME",
			Origin:               "Nuevo Laredo",
			Destination:          "Monterrey",
			KM:                   250,
			Tolls:                400,
			FreightAmount:        1000,
			FreightCurrency:      "USD",
			CrossingAmount:       150,
			CrossingCurrency:     "USD",
			CrossingCostAmount:   50,
			CrossingCostCurrency: "USD",
			Incidentals:          domain.Incidentals{Demurrage: 500},
		},
		FreightRate:      17.5,
		CrossingRate:     17.5,
		CrossingCostRate: 17.5,
		FreightRevenue:   17500,
		CrossingRevenue:  2625,
		CrossingCost:     875,
		TotalRevenue:     20125,
		FuelCost:         2400,
		DriverWage:       300,
		DriverBonus:      185.06,
		IncidentalTotal:  500,
		TotalCost:        4660.06,
		Classification:   domain.ShortRouteClass,
	}
}

func expectHasTable(mock sqlmock.Sqlmock, table string, present bool) {
	rows := sqlmock.NewRows([]string{"table_name"})
	if present {
		rows.AddRow(table)
	}
	mock.ExpectQuery("information_schema\\.tables").WithArgs(table).WillReturnRows(rows)
}

func TestLegRepositoryReadAllMissingTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectHasTable(mock, "legs", false)

	legs, err := LegRepository{DB: db}.ReadAll()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(legs) != 0 {
		t.Fatalf("missing table should read as empty catalog, got %d", len(legs))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLegRepositoryReadAllScansRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	want := sampleLeg()
	expectHasTable(mock, "legs", true)
	mock.ExpectQuery("SELECT(.|\\s)+FROM legs WHERE classification").
		WithArgs(domain.ShortRouteClass).
		WillReturnRows(sqlmock.NewRows(legColumnNames()).AddRow(asDriverValues(legInsertArgs(want))...))

	legs, err := LegRepository{DB: db}.ReadAll()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(legs) != 1 {
		t.Fatalf("got %d legs, want 1", len(legs))
	}
	if !reflect.DeepEqual(legs[0], want) {
		t.Fatalf("scanned leg diverged:\ngot  %+v\nwant %+v", legs[0], want)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLegRepositoryReplaceAllTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	legs := []domain.Leg{sampleLeg(), sampleLeg()}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM legs WHERE classification").
		WithArgs(domain.ShortRouteClass).
		WillReturnResult(sqlmock.NewResult(0, 2))
	for range legs {
		mock.ExpectExec("INSERT INTO legs").WillReturnResult(sqlmock.NewResult(1, 1))
	}
	mock.ExpectCommit()

	if err := (LegRepository{DB: db}).ReplaceAll(legs); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLegRepositoryReplaceAllRollsBackOnInsertError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM legs WHERE classification").
		WithArgs(domain.ShortRouteClass).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO legs").WillReturnError(errDuplicate)
	mock.ExpectRollback()

	err = LegRepository{DB: db}.ReplaceAll([]domain.Leg{sampleLeg()})
	if !domain.IsInternal(err) {
		t.Fatalf("expected internal error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
