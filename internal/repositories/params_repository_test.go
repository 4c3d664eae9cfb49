package repositories

import (
	"testing"

	"picusrc-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestParamsRepositoryLoadDefaultsWhenTableMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectHasTable(mock, "operating_params", false)

	params, err := ParamsRepository{DB: db}.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := domain.DefaultParams()
	if params.DriverWage != want.DriverWage || params.FuelEfficiency != want.FuelEfficiency {
		t.Fatalf("defaults not returned: %+v", params)
	}
	if params.Rates["USD"] != want.Rates["USD"] {
		t.Fatalf("default USD rate missing: %+v", params.Rates)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestParamsRepositoryLoadOverlaysStoredValues(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectHasTable(mock, "operating_params", true)
	mock.ExpectQuery("SELECT param_key, param_value FROM operating_params").
		WillReturnRows(sqlmock.NewRows([]string{"param_key", "param_value"}).
			AddRow("driver_wage", 350.0).
			AddRow("rate_USD", 18.2).
			AddRow("rate_MXN", 2.0). // must be pinned back to 1
			AddRow("unknown_key", 99.0))

	params, err := ParamsRepository{DB: db}.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if params.DriverWage != 350.0 {
		t.Fatalf("driver wage overlay: got %v", params.DriverWage)
	}
	if params.Rates["USD"] != 18.2 {
		t.Fatalf("USD rate overlay: got %v", params.Rates["USD"])
	}
	if params.Rates[domain.BaseCurrency] != 1.0 {
		t.Fatalf("base currency rate must stay 1, got %v", params.Rates[domain.BaseCurrency])
	}
	// untouched fields keep their defaults
	if params.DriverBonus != domain.DefaultParams().DriverBonus {
		t.Fatalf("driver bonus lost its default: %v", params.DriverBonus)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestParamsRepositorySaveRewritesWholeSet(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	params := domain.DefaultParams()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM operating_params").WillReturnResult(sqlmock.NewResult(0, 8))
	// six scalar params + two currency rates
	for i := 0; i < 8; i++ {
		mock.ExpectExec("INSERT INTO operating_params").WillReturnResult(sqlmock.NewResult(1, 1))
	}
	mock.ExpectCommit()

	if err := (ParamsRepository{DB: db}).Save(params); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
