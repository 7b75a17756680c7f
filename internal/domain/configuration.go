// Package domain contains the core data types for the travel approval planner.
// It has no behaviour beyond small helpers and is imported by every other
// internal package (planner, repo, service, handler).
package domain

// ModeNA is the mode selector value meaning "this leg does not occur".
const ModeNA = "NA"

// Mode choices offered by the form for each leg type.
var (
	LocalModes      = []string{"Cab", "Auto", "Cab / Auto", ModeNA}
	OutstationModes = []string{"Bus", "Train", "Flight", ModeNA}
)

// TripConfiguration is the full set of form inputs a plan is computed from.
//
// Dates are "2006-01-02" and times "15:04"; both may be empty. Costs are kept
// as text until the planner parses them, so an imported or half-typed value
// survives a save/load round trip unchanged.
type TripConfiguration struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	University string `json:"university"`
	Reason     string `json:"reason"`

	TripStartDate   string `json:"tripStartDate"`
	TripStartTime   string `json:"tripStartTime"`
	TripReachDate   string `json:"tripReachDate"`
	TripReachTime   string `json:"tripReachTime"`
	ReturnStartDate string `json:"returnStartDate"`
	ReturnStartTime string `json:"returnStartTime"`
	ReturnReachDate string `json:"returnReachDate"`
	ReturnReachTime string `json:"returnReachTime"`
	WorkStartDate   string `json:"workStartDate"`
	WorkEndDate     string `json:"workEndDate"`

	HomeLocation     string `json:"homeLocation"`
	BaseCity         string `json:"baseCity"`
	BoardingPoint    string `json:"boardingPoint"`
	DestinationPoint string `json:"destinationPoint"` // arrival point in the target city
	TargetCity       string `json:"targetCity"`
	HotelName        string `json:"hotelName"`

	// Onward
	HomeStationMode      string `json:"homeStationMode"`
	OutstationMode       string `json:"outstationMode"`
	OutstationLocalMode  string `json:"outstationLocalMode"`
	HomeStationCost      string `json:"homeStationCost"`
	OutstationTravelCost string `json:"outstationTravelCost"`
	OutstationLocalCost  string `json:"outstationLocalCost"`

	// Return
	ReturnHomeStationMode      string `json:"returnHomeStationMode"`
	ReturnOutstationMode       string `json:"returnOutstationMode"`
	ReturnOutstationLocalMode  string `json:"returnOutstationLocalMode"`
	ReturnHomeStationCost      string `json:"returnHomeStationCost"`
	ReturnOutstationTravelCost string `json:"returnOutstationTravelCost"`
	ReturnOutstationLocalCost  string `json:"returnOutstationLocalCost"`

	// Campus
	DailyUniversityMode string `json:"dailyUniversityMode"`
	DailyUniversityCost string `json:"dailyUniversityCost"`
	HotelDailyCost      string `json:"hotelDailyCost"`
	EarlyCheckInCost    string `json:"earlyCheckInCost"`
	EarlyCheckIn        bool   `json:"earlyCheckIn"`
}
