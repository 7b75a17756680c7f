package planner

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkordes/travel-approval/internal/domain"
)

const defaultUserName = "User"

// Build computes the complete travel plan for cfg.
//
// The onward departure date, the return departure date and the university are
// required. Those checks, malformed dates or times, and unparseable costs are
// all reported together as one domain.ErrValidation; no partial plan is ever
// returned. The grand total is rounded once, after every amount is summed.
func Build(cfg domain.TripConfiguration) (domain.TravelPlan, error) {
	if problems := checkRequired(cfg); len(problems) > 0 {
		return domain.TravelPlan{}, fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(problems, "; "))
	}

	var r costReader
	onward := onwardJourney(cfg, &r)
	daily := dailyCommute(cfg, &r)
	ret := returnJourney(cfg, &r)
	stay := accommodation(cfg, &r)
	if err := r.err(); err != nil {
		return domain.TravelPlan{}, err
	}
	food := FoodExpenses(cfg)

	var total float64
	for _, list := range [][]domain.TravelSegment{onward, daily, ret} {
		for _, s := range list {
			total += s.Amount
		}
	}
	total += stay.TotalAmount + food.TotalAmount

	name := cfg.Name
	if strings.TrimSpace(name) == "" {
		name = defaultUserName
	}

	return domain.TravelPlan{
		UserName:         name,
		UserEmail:        cfg.Email,
		University:       cfg.University,
		Reason:           cfg.Reason,
		StartDate:        cfg.TripStartDate,
		EndDate:          cfg.ReturnReachDate,
		BaseCity:         cfg.BaseCity,
		TargetCity:       cfg.TargetCity,
		BoardingPoint:    cfg.BoardingPoint,
		DestinationPoint: cfg.DestinationPoint,
		HotelName:        cfg.HotelName,

		OnwardJourney:    onward,
		DailyLocalTravel: daily,
		ReturnJourney:    ret,
		Accommodation:    stay,
		FoodExpense:      food,

		TotalEstimatedExpense: math.Round(total),
	}, nil
}

// checkRequired returns one message per missing or malformed field.
func checkRequired(cfg domain.TripConfiguration) []string {
	var problems []string

	if strings.TrimSpace(cfg.TripStartDate) == "" {
		problems = append(problems, "tripStartDate is required")
	}
	if strings.TrimSpace(cfg.ReturnStartDate) == "" {
		problems = append(problems, "returnStartDate is required")
	}
	if strings.TrimSpace(cfg.University) == "" {
		problems = append(problems, "university is required")
	}

	dates := []struct{ field, value string }{
		{"tripStartDate", cfg.TripStartDate},
		{"tripReachDate", cfg.TripReachDate},
		{"returnStartDate", cfg.ReturnStartDate},
		{"returnReachDate", cfg.ReturnReachDate},
		{"workStartDate", cfg.WorkStartDate},
		{"workEndDate", cfg.WorkEndDate},
	}
	for _, d := range dates {
		if strings.TrimSpace(d.value) == "" {
			continue
		}
		if _, ok := parseDate(d.value); !ok {
			problems = append(problems, fmt.Sprintf("%s: %q is not a YYYY-MM-DD date", d.field, d.value))
		}
	}

	times := []struct{ field, value string }{
		{"tripStartTime", cfg.TripStartTime},
		{"tripReachTime", cfg.TripReachTime},
		{"returnStartTime", cfg.ReturnStartTime},
		{"returnReachTime", cfg.ReturnReachTime},
	}
	for _, c := range times {
		if !validClock(c.value) {
			problems = append(problems, fmt.Sprintf("%s: %q is not an HH:MM time", c.field, c.value))
		}
	}

	return problems
}
