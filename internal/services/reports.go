package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"picusrc-backend/internal/domain"
	"picusrc-backend/internal/utils"

	"github.com/jszwec/csvutil"
	"github.com/phpdave11/gofpdf"
)

// ReportService renders concluded-trip reports as downloadable files.
type ReportService struct {
	Trips     TripLogStore
	Legs      LegStore
	Params    ParamsStore
	RequestID string
}

func (s ReportService) tripService() TripService {
	return TripService{Trips: s.Trips, Legs: s.Legs, Params: s.Params, RequestID: s.RequestID}
}

// ConcludedPDF builds the concluded-trips report for the date range.
func (s ReportService) ConcludedPDF(from, to string) ([]byte, string, error) {
	summaries, err := s.tripService().ListConcluded(from, to)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "reports", "concluded_pdf", fmt.Sprintf("from=%s to=%s rows=%d", from, to, len(summaries)))
	return buildConcludedPDF(summaries, from, to)
}

// ConcludedCSV builds the same report as CSV.
func (s ReportService) ConcludedCSV(from, to string) ([]byte, string, error) {
	summaries, err := s.tripService().ListConcluded(from, to)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "reports", "concluded_csv", fmt.Sprintf("from=%s to=%s rows=%d", from, to, len(summaries)))

	out, err := csvutil.Marshal(summaries)
	if err != nil {
		return nil, "", err
	}
	return out, reportFilename("concluded_trips", from, to, "csv"), nil
}

func buildConcludedPDF(summaries []domain.ItinerarySummary, from, to string) ([]byte, string, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Concluded Trips", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "CONCLUDED TRIPS")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	rangeLabel := "all dates"
	if from != "" || to != "" {
		rangeLabel = fmt.Sprintf("%s to %s", orDash(from), orDash(to))
	}
	pdf.Cell(0, 6, "Range: "+rangeLabel)
	pdf.Ln(5)
	pdf.Cell(0, 6, "Generated: "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	headers := []string{"Itinerary", "Trip #", "Date", "Vehicle", "Driver", "Legs", "Revenue", "Cost", "Overhead", "Net Profit"}
	widths := []float64{42, 24, 24, 22, 22, 12, 31, 31, 31, 31}

	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	var totalRevenue, totalCost, totalOverhead, totalNet float64
	for _, row := range summaries {
		cells := []string{
			row.ItineraryID,
			row.TripNumber,
			row.TripDate,
			orDash(row.VehicleID),
			orDash(row.DriverID),
			fmt.Sprintf("%d", row.LegCount),
			utils.FormatMoney(row.TotalRevenue),
			utils.FormatMoney(row.TotalCost),
			utils.FormatMoney(row.Overhead),
			utils.FormatMoney(row.NetProfit),
		}
		for i, v := range cells {
			align := "L"
			if i >= 5 {
				align = "R"
			}
			pdf.CellFormat(widths[i], 6, v, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)

		totalRevenue += row.TotalRevenue
		totalCost += row.TotalCost
		totalOverhead += row.Overhead
		totalNet += row.NetProfit
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(widths[0]+widths[1]+widths[2]+widths[3]+widths[4]+widths[5], 7, "TOTAL", "1", 0, "L", false, 0, "")
	pdf.CellFormat(widths[6], 7, utils.FormatMoney(totalRevenue), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[7], 7, utils.FormatMoney(totalCost), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[8], 7, utils.FormatMoney(totalOverhead), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[9], 7, utils.FormatMoney(totalNet), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), reportFilename("concluded_trips", from, to, "pdf"), nil
}

func reportFilename(base, from, to, ext string) string {
	parts := []string{base}
	if from != "" {
		parts = append(parts, from)
	}
	if to != "" {
		parts = append(parts, to)
	}
	return strings.Join(parts, "_") + "." + ext
}

func orDash(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "-"
	}
	return v
}
