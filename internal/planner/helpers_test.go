package planner_test

import (
	"github.com/pkordes/travel-approval/internal/domain"
	"github.com/pkordes/travel-approval/internal/planner"
)

// juneTrip is the reference three-day visit used across the planner tests:
// all legs active, default costs, hotel at 2500 with early check-in.
func juneTrip() domain.TripConfiguration {
	cfg := planner.DefaultConfiguration()
	cfg.University = "RV University"
	cfg.TargetCity = "Bangalore"
	cfg.TripStartDate = "2024-06-10"
	cfg.TripStartTime = "09:00"
	cfg.TripReachDate = "2024-06-10"
	cfg.TripReachTime = "13:00"
	cfg.ReturnStartDate = "2024-06-12"
	cfg.ReturnStartTime = "10:00"
	cfg.ReturnReachDate = "2024-06-12"
	cfg.ReturnReachTime = "18:00"
	cfg.WorkStartDate = "2024-06-10"
	cfg.WorkEndDate = "2024-06-11"
	return cfg
}

func allModesNA(cfg domain.TripConfiguration) domain.TripConfiguration {
	cfg.HomeStationMode = domain.ModeNA
	cfg.OutstationMode = domain.ModeNA
	cfg.OutstationLocalMode = domain.ModeNA
	cfg.ReturnHomeStationMode = domain.ModeNA
	cfg.ReturnOutstationMode = domain.ModeNA
	cfg.ReturnOutstationLocalMode = domain.ModeNA
	cfg.DailyUniversityMode = domain.ModeNA
	return cfg
}
