package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-approval/internal/domain"
	"github.com/pkordes/travel-approval/internal/planner"
)

// TestBuild_JuneVisit is the end-to-end scenario: three travel days, two
// campus days, every mode active.
func TestBuild_JuneVisit(t *testing.T) {
	plan, err := planner.Build(juneTrip())

	require.NoError(t, err)

	assert.Len(t, plan.OnwardJourney, 3)
	assert.Len(t, plan.DailyLocalTravel, 4)
	assert.Len(t, plan.ReturnJourney, 3)

	assert.Equal(t, 2, plan.Accommodation.Days)
	assert.Equal(t, 6250.0, plan.Accommodation.TotalAmount)

	// Jun 10 from 09:00: lunch+dinner; Jun 11: all three; Jun 12 until 18:00: breakfast+lunch.
	require.Len(t, plan.FoodExpense.DailyExpenses, 3)
	assert.Equal(t, []int{2, 3, 2}, []int{
		plan.FoodExpense.DailyExpenses[0].Count,
		plan.FoodExpense.DailyExpenses[1].Count,
		plan.FoodExpense.DailyExpenses[2].Count,
	})
	assert.Equal(t, 1400.0, plan.FoodExpense.TotalAmount)

	// 2050 onward + 1200 commute + 2050 return + 6250 stay + 1400 food.
	assert.Equal(t, 12950.0, plan.TotalEstimatedExpense)

	assert.Equal(t, "Ramkumar", plan.UserName)
	assert.Equal(t, "RV University", plan.University)
	assert.Equal(t, "2024-06-10", plan.StartDate)
	assert.Equal(t, "2024-06-12", plan.EndDate)
}

func TestBuild_TotalEqualsSumOfParts(t *testing.T) {
	plan, err := planner.Build(juneTrip())
	require.NoError(t, err)

	var sum float64
	for _, list := range [][]domain.TravelSegment{plan.OnwardJourney, plan.DailyLocalTravel, plan.ReturnJourney} {
		for _, s := range list {
			sum += s.Amount
		}
	}
	sum += plan.Accommodation.TotalAmount + plan.FoodExpense.TotalAmount

	assert.Equal(t, sum, plan.TotalEstimatedExpense)
}

func TestBuild_RoundsOnceAtTheEnd(t *testing.T) {
	cfg := allModesNA(juneTrip())
	cfg.HomeStationMode = "Cab"
	cfg.HomeStationCost = "100.4"
	cfg.ReturnHomeStationMode = "Cab"
	cfg.ReturnHomeStationCost = "100.4"
	cfg.HotelDailyCost = "0"
	cfg.EarlyCheckIn = false
	cfg.ReturnReachDate = "" // no food window

	plan, err := planner.Build(cfg)

	require.NoError(t, err)
	// Rounding each leg first would give 200.
	assert.Equal(t, 201.0, plan.TotalEstimatedExpense)
}

func TestBuild_NAModesNeverAppear(t *testing.T) {
	plan, err := planner.Build(allModesNA(juneTrip()))

	require.NoError(t, err)
	assert.Empty(t, plan.OnwardJourney)
	assert.Empty(t, plan.DailyLocalTravel)
	assert.Empty(t, plan.ReturnJourney)
	assert.Equal(t, 6250.0+1400.0, plan.TotalEstimatedExpense)
}

func TestBuild_MissingRequiredFields(t *testing.T) {
	cfg := juneTrip()
	cfg.TripStartDate = ""
	cfg.ReturnStartDate = " "
	cfg.University = ""

	plan, err := planner.Build(cfg)

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "tripStartDate is required")
	assert.ErrorContains(t, err, "returnStartDate is required")
	assert.ErrorContains(t, err, "university is required")
	assert.Equal(t, domain.TravelPlan{}, plan, "no partial plan on failure")
}

func TestBuild_MalformedDateOrTime(t *testing.T) {
	badDate := juneTrip()
	badDate.WorkEndDate = "11-06-2024"

	badTime := juneTrip()
	badTime.TripStartTime = "9am"

	for name, cfg := range map[string]domain.TripConfiguration{"date": badDate, "time": badTime} {
		t.Run(name, func(t *testing.T) {
			_, err := planner.Build(cfg)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestBuild_ReportsEveryBadCost(t *testing.T) {
	cfg := juneTrip()
	cfg.OutstationTravelCost = "fifteen hundred"
	cfg.DailyUniversityCost = "-300"

	_, err := planner.Build(cfg)

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "outstationTravelCost")
	assert.ErrorContains(t, err, "dailyUniversityCost")
}

func TestBuild_EmptyCostCountsAsZero(t *testing.T) {
	cfg := juneTrip()
	cfg.HomeStationCost = ""

	plan, err := planner.Build(cfg)

	require.NoError(t, err)
	assert.Zero(t, plan.OnwardJourney[0].Amount)
	assert.Equal(t, 12650.0, plan.TotalEstimatedExpense)
}

func TestBuild_DefaultUserName(t *testing.T) {
	cfg := juneTrip()
	cfg.Name = ""

	plan, err := planner.Build(cfg)

	require.NoError(t, err)
	assert.Equal(t, "User", plan.UserName)
}

func TestBuild_IsRepeatable(t *testing.T) {
	cfg := juneTrip()

	first, err := planner.Build(cfg)
	require.NoError(t, err)

	cfg.HotelDailyCost = "3000"
	second, err := planner.Build(cfg)
	require.NoError(t, err)

	assert.Equal(t, 6250.0, first.Accommodation.TotalAmount, "earlier plan is not touched")
	assert.Equal(t, 7250.0, second.Accommodation.TotalAmount)
}
