package services

import (
	"bytes"
	"strings"
	"testing"

	"picusrc-backend/internal/domain"
)

func newReportService(t *testing.T) ReportService {
	t.Helper()
	svc, trips, legs := newTripService()
	row := register(t, svc, "5001", "2025-03-10")
	if _, err := svc.Close(row.ItineraryID, []int{1}); err != nil {
		t.Fatalf("close: %v", err)
	}
	return ReportService{
		Trips:  trips,
		Legs:   legs,
		Params: svc.Params,
	}
}

func TestConcludedCSV(t *testing.T) {
	svc := newReportService(t)

	data, filename, err := svc.ConcludedCSV("2025-03-01", "2025-03-31")
	if err != nil {
		t.Fatalf("csv: %v", err)
	}
	if filename != "concluded_trips_2025-03-01_2025-03-31.csv" {
		t.Fatalf("filename: got %q", filename)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "itinerary_id") || !strings.Contains(lines[0], "net_profit") {
		t.Fatalf("header missing expected columns: %q", lines[0])
	}
	if !strings.Contains(lines[1], "5001_2025-03-10") {
		t.Fatalf("row missing itinerary id: %q", lines[1])
	}
	if !strings.Contains(lines[1], "CONCLUDED") {
		t.Fatalf("row missing status: %q", lines[1])
	}
}

func TestConcludedPDF(t *testing.T) {
	svc := newReportService(t)

	data, filename, err := svc.ConcludedPDF("2025-03-01", "2025-03-31")
	if err != nil {
		t.Fatalf("pdf: %v", err)
	}
	if filename != "concluded_trips_2025-03-01_2025-03-31.pdf" {
		t.Fatalf("filename: got %q", filename)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output is not a PDF, starts with %q", data[:8])
	}
}

func TestConcludedCSVEmptyRange(t *testing.T) {
	svc := ReportService{
		Trips:  &fakeTripStore{},
		Legs:   &fakeLegStore{},
		Params: &fakeParamsStore{params: domain.DefaultParams()},
	}
	data, filename, err := svc.ConcludedCSV("", "")
	if err != nil {
		t.Fatalf("csv: %v", err)
	}
	if filename != "concluded_trips.csv" {
		t.Fatalf("filename: got %q", filename)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		// csvutil writes just the header for an empty slice
		t.Fatalf("expected at least a header line")
	}
}
