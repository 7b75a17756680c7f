package planner

import "github.com/pkordes/travel-approval/internal/domain"

// MealRate is the fixed allowance per qualifying meal, in INR.
const MealRate = 200

// mealTimes are the instants, per calendar day, at which a meal is counted.
var mealTimes = []string{"07:00", "13:00", "20:00"} // breakfast, lunch, dinner

const (
	defaultStartTime = "00:00"
	defaultEndTime   = "23:59"
)

// FoodExpenses counts, for each date from the onward departure to the return
// arrival, how many meal times fall inside the closed trip window
// [departure, arrival]. A missing departure time counts from 00:00 and a
// missing arrival time counts until 23:59.
//
// Dates with no qualifying meal are left out. Without both dates the result is
// an empty breakdown with a zero total.
func FoodExpenses(cfg domain.TripConfiguration) domain.FoodBreakdown {
	empty := domain.FoodBreakdown{DailyExpenses: []domain.DailyFoodExpense{}}

	if _, ok := parseDate(cfg.TripStartDate); !ok {
		return empty
	}
	if _, ok := parseDate(cfg.ReturnReachDate); !ok {
		return empty
	}

	start, err := instant(cfg.TripStartDate, cfg.TripStartTime, defaultStartTime)
	if err != nil {
		return empty
	}
	end, err := instant(cfg.ReturnReachDate, cfg.ReturnReachTime, defaultEndTime)
	if err != nil {
		return empty
	}

	out := empty
	for _, date := range DatesInRange(cfg.TripStartDate, cfg.ReturnReachDate) {
		count := 0
		for _, clock := range mealTimes {
			meal, err := instant(date, clock, clock)
			if err != nil {
				continue
			}
			if !meal.Before(start) && !meal.After(end) {
				count++
			}
		}
		if count == 0 {
			continue
		}
		row := domain.DailyFoodExpense{
			Date:   date,
			Count:  count,
			Rate:   MealRate,
			Amount: float64(count * MealRate),
		}
		out.DailyExpenses = append(out.DailyExpenses, row)
		out.TotalAmount += row.Amount
	}
	return out
}
