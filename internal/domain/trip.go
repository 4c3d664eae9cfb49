package domain

// SegmentRole marks which half of an itinerary a scheduled leg covers.
// Stored values keep the operation's own terms.
type SegmentRole string

const (
	RoleOutbound SegmentRole = "IDA"
	RoleReturn   SegmentRole = "VUELTA"
)

// ItineraryStatus is derived purely from how many legs an itinerary has
// recorded: one leg means the truck is still out.
type ItineraryStatus string

const (
	StatusPending   ItineraryStatus = "PENDING"
	StatusConcluded ItineraryStatus = "CONCLUDED"
)

// ItineraryID joins a trip number and a trip date into the shared grouping
// key for an itinerary's legs.
func ItineraryID(tripNumber, date string) string {
	return tripNumber + "_" + date
}

// TripLeg is one scheduled leg of an itinerary. It is a copy of the catalog
// leg at registration time, not a reference: later catalog edits never
// rewrite a recorded trip.
type TripLeg struct {
	Leg

	ItineraryID string      `json:"itineraryId"`
	TripNumber  string      `json:"tripNumber"`
	TripDate    string      `json:"tripDate"`
	VehicleID   string      `json:"vehicleId"`
	DriverID    string      `json:"driverId"`
	Role        SegmentRole `json:"role"`
}

// RoundTrip is the composer's result: the chained legs plus the figures the
// simulator reports for the whole loop.
type RoundTrip struct {
	Legs []Leg `json:"legs"`

	TotalRevenue float64 `json:"totalRevenue"`
	TotalCost    float64 `json:"totalCost"`
	GrossProfit  float64 `json:"grossProfit"`
	Overhead     float64 `json:"overhead"`
	NetProfit    float64 `json:"netProfit"`
	GrossMargin  float64 `json:"grossMargin"`
	NetMargin    float64 `json:"netMargin"`
}

// ItinerarySummary aggregates one concluded (or pending) itinerary for
// reporting.
type ItinerarySummary struct {
	ItineraryID string          `json:"itineraryId" csv:"itinerary_id"`
	TripNumber  string          `json:"tripNumber" csv:"trip_number"`
	TripDate    string          `json:"tripDate" csv:"trip_date"`
	VehicleID   string          `json:"vehicleId" csv:"vehicle_id"`
	DriverID    string          `json:"driverId" csv:"driver_id"`
	Status      ItineraryStatus `json:"status" csv:"status"`
	LegCount    int             `json:"legCount" csv:"leg_count"`

	TotalRevenue float64 `json:"totalRevenue" csv:"total_revenue"`
	TotalCost    float64 `json:"totalCost" csv:"total_cost"`
	GrossProfit  float64 `json:"grossProfit" csv:"gross_profit"`
	Overhead     float64 `json:"overhead" csv:"overhead"`
	NetProfit    float64 `json:"netProfit" csv:"net_profit"`
}
