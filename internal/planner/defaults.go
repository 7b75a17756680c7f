package planner

import "github.com/pkordes/travel-approval/internal/domain"

// University is a campus the traveler visits, with the city it is in.
type University struct {
	Name string `json:"name"`
	City string `json:"city"`
}

var universities = []University{
	{Name: "Alliance University", City: "Bangalore"},
	{Name: "CBE Kalvium Direct", City: "Coimbatore"},
	{Name: "Christ Univeristy", City: "Bangalore"},
	{Name: "RV University", City: "Bangalore"},
	{Name: "The Apollo University", City: "Chittoor"},
	{Name: "Yenepoya University, Bangalore", City: "Bangalore"},
	{Name: "Yenepoya University, Mangalore", City: "Mangalore"},
}

// Universities returns the known campuses in display order.
func Universities() []University {
	out := make([]University, len(universities))
	copy(out, universities)
	return out
}

// UniversityCity returns the city of a known university.
func UniversityCity(name string) (string, bool) {
	for _, u := range universities {
		if u.Name == name {
			return u.City, true
		}
	}
	return "", false
}

// DefaultConfiguration is the form state a new plan starts from.
func DefaultConfiguration() domain.TripConfiguration {
	return domain.TripConfiguration{
		Name:             "Ramkumar",
		Reason:           "Monthly campus visit",
		HomeLocation:     "Pattanam Pudur",
		BaseCity:         "Coimbatore",
		BoardingPoint:    "Hope College",
		DestinationPoint: "Bus Station / Airport",
		HotelName:        "Hotel Stay Nearby",

		HomeStationMode:      "Cab",
		OutstationMode:       "Bus",
		OutstationLocalMode:  "Auto",
		HomeStationCost:      "300",
		OutstationTravelCost: "1500",
		OutstationLocalCost:  "250",

		ReturnHomeStationMode:      "Cab",
		ReturnOutstationMode:       "Bus",
		ReturnOutstationLocalMode:  "Auto",
		ReturnHomeStationCost:      "300",
		ReturnOutstationTravelCost: "1500",
		ReturnOutstationLocalCost:  "250",

		DailyUniversityMode: "Cab / Auto",
		DailyUniversityCost: "300",
		HotelDailyCost:      "2500",
		EarlyCheckInCost:    "1250",
		EarlyCheckIn:        true,
	}
}

// DeriveDefaults applies the form's follow-on edits to next, given the state
// before the user's change:
//   - a newly chosen known university fills in the target city;
//   - a changed onward mode is copied to the matching return mode.
//
// Fields the user did not change are left alone, so a return mode set on its
// own is kept until the onward mode changes again.
func DeriveDefaults(prev, next domain.TripConfiguration) domain.TripConfiguration {
	if next.University != prev.University {
		if city, ok := UniversityCity(next.University); ok {
			next.TargetCity = city
		}
	}
	if next.HomeStationMode != prev.HomeStationMode {
		next.ReturnHomeStationMode = next.HomeStationMode
	}
	if next.OutstationMode != prev.OutstationMode {
		next.ReturnOutstationMode = next.OutstationMode
	}
	if next.OutstationLocalMode != prev.OutstationLocalMode {
		next.ReturnOutstationLocalMode = next.OutstationLocalMode
	}
	return next
}
