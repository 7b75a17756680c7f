package planner

import "github.com/pkordes/travel-approval/internal/domain"

// Fixed times of the daily campus commute.
const (
	CommuteOutTime  = "08:30"
	CommuteBackTime = "18:00"
)

// leg describes one optional segment before its cost is parsed.
type leg struct {
	mode      string
	costField string
	cost      string
	from, to  string
	date      string
	time      string
}

// OnwardJourney builds the outbound legs: home to boarding point, base city
// to target city, and arrival point to hotel. A leg whose mode is "NA" is
// skipped. The local leg at the destination uses the onward arrival date and
// time; the others use the departure date and time.
func OnwardJourney(cfg domain.TripConfiguration) ([]domain.TravelSegment, error) {
	var r costReader
	out := onwardJourney(cfg, &r)
	return out, r.err()
}

// DailyCommute builds two legs per campus work day, hotel to university at
// 08:30 and back at 18:00, unless the daily mode is "NA". An empty or
// inverted work range yields no legs.
func DailyCommute(cfg domain.TripConfiguration) ([]domain.TravelSegment, error) {
	var r costReader
	out := dailyCommute(cfg, &r)
	return out, r.err()
}

// ReturnJourney builds the inbound legs in travel order: hotel to arrival
// point, target city to base city, and boarding point to home. Each leg has
// its own mode selector, independent of the onward legs. The final leg uses
// the return arrival date and time.
func ReturnJourney(cfg domain.TripConfiguration) ([]domain.TravelSegment, error) {
	var r costReader
	out := returnJourney(cfg, &r)
	return out, r.err()
}

func onwardJourney(cfg domain.TripConfiguration, r *costReader) []domain.TravelSegment {
	return buildLegs(r, []leg{
		{
			mode: cfg.HomeStationMode, costField: "homeStationCost", cost: cfg.HomeStationCost,
			from: cfg.HomeLocation, to: cfg.BoardingPoint,
			date: cfg.TripStartDate, time: cfg.TripStartTime,
		},
		{
			mode: cfg.OutstationMode, costField: "outstationTravelCost", cost: cfg.OutstationTravelCost,
			from: cfg.BaseCity, to: cfg.TargetCity,
			date: cfg.TripStartDate, time: cfg.TripStartTime,
		},
		{
			mode: cfg.OutstationLocalMode, costField: "outstationLocalCost", cost: cfg.OutstationLocalCost,
			from: cfg.DestinationPoint, to: cfg.HotelName,
			date: cfg.TripReachDate, time: cfg.TripReachTime,
		},
	})
}

func returnJourney(cfg domain.TripConfiguration, r *costReader) []domain.TravelSegment {
	return buildLegs(r, []leg{
		{
			mode: cfg.ReturnOutstationLocalMode, costField: "returnOutstationLocalCost", cost: cfg.ReturnOutstationLocalCost,
			from: cfg.HotelName, to: cfg.DestinationPoint,
			date: cfg.ReturnStartDate, time: cfg.ReturnStartTime,
		},
		{
			mode: cfg.ReturnOutstationMode, costField: "returnOutstationTravelCost", cost: cfg.ReturnOutstationTravelCost,
			from: cfg.TargetCity, to: cfg.BaseCity,
			date: cfg.ReturnStartDate, time: cfg.ReturnStartTime,
		},
		{
			mode: cfg.ReturnHomeStationMode, costField: "returnHomeStationCost", cost: cfg.ReturnHomeStationCost,
			from: cfg.BoardingPoint, to: cfg.HomeLocation,
			date: cfg.ReturnReachDate, time: cfg.ReturnReachTime,
		},
	})
}

func dailyCommute(cfg domain.TripConfiguration, r *costReader) []domain.TravelSegment {
	out := []domain.TravelSegment{}
	if isNA(cfg.DailyUniversityMode) {
		return out
	}
	dates := DatesInRange(cfg.WorkStartDate, cfg.WorkEndDate)
	if len(dates) == 0 {
		return out
	}

	amount := r.read("dailyUniversityCost", cfg.DailyUniversityCost)
	for _, date := range dates {
		out = append(out,
			domain.TravelSegment{
				From: cfg.HotelName, To: cfg.University,
				Date: date, Time: CommuteOutTime,
				Mode: cfg.DailyUniversityMode, Amount: amount,
			},
			domain.TravelSegment{
				From: cfg.University, To: cfg.HotelName,
				Date: date, Time: CommuteBackTime,
				Mode: cfg.DailyUniversityMode, Amount: amount,
			},
		)
	}
	return out
}

func buildLegs(r *costReader, legs []leg) []domain.TravelSegment {
	out := []domain.TravelSegment{}
	for _, l := range legs {
		if isNA(l.mode) {
			continue
		}
		out = append(out, domain.TravelSegment{
			From:   l.from,
			To:     l.to,
			Date:   l.date,
			Time:   l.time,
			Mode:   l.mode,
			Amount: r.read(l.costField, l.cost),
		})
	}
	return out
}

func isNA(mode string) bool {
	return mode == domain.ModeNA
}
