package planner

import (
	"math"

	"github.com/pkordes/travel-approval/internal/domain"
)

// Accommodation prices the hotel stay from the onward arrival date (check-in)
// to the return departure date (check-out).
//
// The night count is the absolute day difference rounded up, and never less
// than one: same-day, reversed, missing or unparseable dates all still pay for
// one night. The early check-in surcharge is added only when the flag is set.
func Accommodation(cfg domain.TripConfiguration) (domain.AccommodationDetails, error) {
	var r costReader
	out := accommodation(cfg, &r)
	return out, r.err()
}

func accommodation(cfg domain.TripConfiguration, r *costReader) domain.AccommodationDetails {
	nights := NightsBetween(cfg.TripReachDate, cfg.ReturnStartDate)
	rate := r.read("hotelDailyCost", cfg.HotelDailyCost)

	var surcharge float64
	if cfg.EarlyCheckIn {
		surcharge = r.read("earlyCheckInCost", cfg.EarlyCheckInCost)
	}

	return domain.AccommodationDetails{
		From:             cfg.TripReachDate,
		To:               cfg.ReturnStartDate,
		Days:             nights,
		HotelName:        cfg.HotelName,
		DailyRate:        rate,
		EarlyCheckInCost: surcharge,
		TotalAmount:      float64(nights)*rate + surcharge,
		EarlyCheckIn:     cfg.EarlyCheckIn,
	}
}

// NightsBetween returns ceil(|checkOut - checkIn|) in days, floored at 1.
func NightsBetween(checkIn, checkOut string) int {
	in, ok := parseDate(checkIn)
	if !ok {
		return 1
	}
	out, ok := parseDate(checkOut)
	if !ok {
		return 1
	}
	days := math.Ceil(math.Abs(out.Sub(in).Hours()) / 24)
	return max(1, int(days))
}
