package services

import (
	"fmt"
	"strings"
	"time"

	"picusrc-backend/internal/domain"
	"picusrc-backend/internal/utils"
)

// TripService tracks scheduled trips from registration to conclusion.
// An itinerary with one recorded leg is pending; once return legs land it is
// concluded and only shows up in the date-range reports.
type TripService struct {
	Trips     TripLogStore
	Legs      LegStore
	Params    ParamsStore
	RequestID string
}

type RegisterOutboundInput struct {
	LegPos     int    `json:"legPos"`
	TripNumber string `json:"tripNumber"`
	Date       string `json:"date"`
	VehicleID  string `json:"vehicleId"`
	DriverID   string `json:"driverId"`
}

type EditOutboundInput struct {
	Incidentals domain.Incidentals `json:"incidentals"`
	VehicleID   string             `json:"vehicleId"`
	DriverID    string             `json:"driverId"`
}

// RegisterOutbound copies the chosen catalog leg into the trip log under a
// fresh itinerary id. Registering an id twice is a conflict; the existing
// rows stay untouched.
func (s TripService) RegisterOutbound(in RegisterOutboundInput) (domain.TripLeg, error) {
	in.TripNumber = strings.TrimSpace(in.TripNumber)
	in.Date = strings.TrimSpace(in.Date)
	in.VehicleID = strings.TrimSpace(in.VehicleID)
	in.DriverID = strings.TrimSpace(in.DriverID)

	if in.TripNumber == "" {
		return domain.TripLeg{}, domain.ValidationError{Field: "tripNumber", Msg: "required"}
	}
	if in.VehicleID == "" {
		return domain.TripLeg{}, domain.ValidationError{Field: "vehicleId", Msg: "required"}
	}
	if in.DriverID == "" {
		return domain.TripLeg{}, domain.ValidationError{Field: "driverId", Msg: "required"}
	}
	if _, err := utils.ParseDate(in.Date); err != nil {
		return domain.TripLeg{}, domain.ValidationError{Field: "date", Msg: "expected YYYY-MM-DD", Err: err}
	}

	legs, err := s.Legs.ReadAll()
	if err != nil {
		return domain.TripLeg{}, err
	}
	if in.LegPos < 0 || in.LegPos >= len(legs) {
		return domain.TripLeg{}, domain.NotFoundError{Resource: "leg"}
	}
	leg := legs[in.LegPos]
	// only loaded movements open a trip; empty legs ride along as returns
	if leg.Type != domain.LegImport && leg.Type != domain.LegExport {
		return domain.TripLeg{}, domain.ValidationError{Field: "legPos", Msg: "outbound leg must be IMPO or EXPO"}
	}

	id := domain.ItineraryID(in.TripNumber, in.Date)
	existing, err := s.Trips.ForItinerary(id)
	if err != nil {
		return domain.TripLeg{}, err
	}
	if len(existing) > 0 {
		return domain.TripLeg{}, domain.ConflictError{Resource: "itinerary", Msg: id + " already registered"}
	}

	row := domain.TripLeg{
		Leg:         leg,
		ItineraryID: id,
		TripNumber:  in.TripNumber,
		TripDate:    in.Date,
		VehicleID:   in.VehicleID,
		DriverID:    in.DriverID,
		Role:        domain.RoleOutbound,
	}
	if err := s.Trips.Append(row); err != nil {
		return domain.TripLeg{}, err
	}
	utils.LogEvent(s.RequestID, "trips", "register_outbound", fmt.Sprintf("itinerary=%s leg=%d", id, in.LegPos))
	return row, nil
}

// Close appends the return leg(s) for a pending itinerary. A direct return
// is one leg; a repositioned return lands as two rows (the empty hop plus
// the loaded final), both in the return role.
func (s TripService) Close(itineraryID string, legPositions []int) ([]domain.TripLeg, error) {
	if len(legPositions) == 0 {
		return nil, domain.ValidationError{Field: "legPositions", Msg: "at least one return leg required"}
	}
	rows, err := s.Trips.ForItinerary(itineraryID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.NotFoundError{Resource: "itinerary"}
	}
	if len(rows) >= 2 {
		return nil, domain.InvalidTransitionError{ItineraryID: itineraryID, Msg: "already concluded"}
	}
	outbound := rows[0]

	legs, err := s.Legs.ReadAll()
	if err != nil {
		return nil, err
	}
	appended := make([]domain.TripLeg, 0, len(legPositions))
	for _, pos := range legPositions {
		if pos < 0 || pos >= len(legs) {
			return nil, domain.NotFoundError{Resource: "leg"}
		}
		appended = append(appended, domain.TripLeg{
			Leg:         legs[pos],
			ItineraryID: itineraryID,
			TripNumber:  outbound.TripNumber,
			TripDate:    outbound.TripDate,
			VehicleID:   outbound.VehicleID,
			DriverID:    outbound.DriverID,
			Role:        domain.RoleReturn,
		})
	}
	if err := s.Trips.Append(appended...); err != nil {
		return nil, err
	}
	utils.LogEvent(s.RequestID, "trips", "close", fmt.Sprintf("itinerary=%s returns=%d", itineraryID, len(appended)))
	return appended, nil
}

// EditOutbound updates the incidental costs (and optionally vehicle/driver)
// of a pending itinerary's outbound leg. The stored total cost is adjusted
// by the incidental delta only; fuel, wages, tolls and crossing stay as
// captured.
func (s TripService) EditOutbound(itineraryID string, in EditOutboundInput) (domain.TripLeg, error) {
	if err := in.Incidentals.Validate(); err != nil {
		return domain.TripLeg{}, err
	}
	rows, err := s.Trips.ForItinerary(itineraryID)
	if err != nil {
		return domain.TripLeg{}, err
	}
	if len(rows) == 0 {
		return domain.TripLeg{}, domain.NotFoundError{Resource: "itinerary"}
	}
	if len(rows) >= 2 {
		return domain.TripLeg{}, domain.InvalidTransitionError{ItineraryID: itineraryID, Msg: "concluded itineraries cannot be edited"}
	}

	row := rows[0]
	newTotal := in.Incidentals.Total()
	row.TotalCost = row.TotalCost - row.IncidentalTotal + newTotal
	row.Incidentals = in.Incidentals
	row.IncidentalTotal = newTotal
	if v := strings.TrimSpace(in.VehicleID); v != "" {
		row.VehicleID = v
	}
	if d := strings.TrimSpace(in.DriverID); d != "" {
		row.DriverID = d
	}

	if err := s.Trips.ReplaceItinerary(itineraryID, []domain.TripLeg{row}); err != nil {
		return domain.TripLeg{}, err
	}
	utils.LogEvent(s.RequestID, "trips", "edit_outbound", "itinerary="+itineraryID)
	return row, nil
}

// ListPending returns the outbound rows of itineraries still waiting for a
// return.
func (s TripService) ListPending() ([]domain.TripLeg, error) {
	rows, err := s.Trips.ReadAll()
	if err != nil {
		return nil, err
	}
	grouped, order := groupByItinerary(rows)
	out := make([]domain.TripLeg, 0, len(order))
	for _, id := range order {
		if len(grouped[id]) == 1 {
			out = append(out, grouped[id][0])
		}
	}
	return out, nil
}

// ListConcluded aggregates itineraries with two or more legs whose outbound
// date falls inside the inclusive range. An empty bound leaves that side of
// the range open.
func (s TripService) ListConcluded(from, to string) ([]domain.ItinerarySummary, error) {
	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)

	var fromDate, toDate time.Time
	hasFrom, hasTo := from != "", to != ""
	if hasFrom {
		d, err := utils.ParseDate(from)
		if err != nil {
			return nil, domain.ValidationError{Field: "from", Msg: "expected YYYY-MM-DD", Err: err}
		}
		fromDate = d
	}
	if hasTo {
		d, err := utils.ParseDate(to)
		if err != nil {
			return nil, domain.ValidationError{Field: "to", Msg: "expected YYYY-MM-DD", Err: err}
		}
		toDate = d
	}
	if hasFrom && hasTo && toDate.Before(fromDate) {
		return nil, domain.ValidationError{Field: "to", Msg: "must not precede from"}
	}

	params, err := s.Params.Load()
	if err != nil {
		return nil, err
	}
	rows, err := s.Trips.ReadAll()
	if err != nil {
		return nil, err
	}

	grouped, order := groupByItinerary(rows)
	out := make([]domain.ItinerarySummary, 0, len(order))
	for _, id := range order {
		legs := grouped[id]
		if len(legs) < 2 {
			continue
		}
		outbound := legs[0]
		for _, leg := range legs {
			if leg.Role == domain.RoleOutbound {
				outbound = leg
				break
			}
		}
		d, err := utils.ParseDate(outbound.TripDate)
		if err != nil {
			continue
		}
		if hasFrom && d.Before(fromDate) {
			continue
		}
		if hasTo && d.After(toDate) {
			continue
		}
		out = append(out, summarize(id, outbound, legs, params))
	}
	return out, nil
}

func groupByItinerary(rows []domain.TripLeg) (map[string][]domain.TripLeg, []string) {
	grouped := make(map[string][]domain.TripLeg, len(rows))
	order := make([]string, 0, len(rows))
	for _, row := range rows {
		if _, seen := grouped[row.ItineraryID]; !seen {
			order = append(order, row.ItineraryID)
		}
		grouped[row.ItineraryID] = append(grouped[row.ItineraryID], row)
	}
	return grouped, order
}

func summarize(id string, outbound domain.TripLeg, legs []domain.TripLeg, params domain.OperatingParams) domain.ItinerarySummary {
	sum := domain.ItinerarySummary{
		ItineraryID: id,
		TripNumber:  outbound.TripNumber,
		TripDate:    outbound.TripDate,
		VehicleID:   outbound.VehicleID,
		DriverID:    outbound.DriverID,
		Status:      domain.StatusConcluded,
		LegCount:    len(legs),
	}
	if len(legs) == 1 {
		sum.Status = domain.StatusPending
	}
	for _, leg := range legs {
		sum.TotalRevenue += leg.TotalRevenue
		sum.TotalCost += leg.TotalCost
	}
	sum.GrossProfit = sum.TotalRevenue - sum.TotalCost
	sum.Overhead = sum.TotalRevenue * params.OverheadRate
	sum.NetProfit = sum.GrossProfit - sum.Overhead
	return sum
}
