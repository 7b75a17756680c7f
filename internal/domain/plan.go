package domain

// TravelSegment is one point-to-point leg of the trip.
// Segments are values produced by the planner and never modified afterwards.
type TravelSegment struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Date   string  `json:"date"`
	Time   string  `json:"time,omitempty"`
	Mode   string  `json:"mode"`
	Amount float64 `json:"amount"`
}

// DailyFoodExpense is the meal allowance for one calendar date.
// Dates on which no meal falls inside the trip window have no row at all.
type DailyFoodExpense struct {
	Date   string  `json:"date"`
	Count  int     `json:"count"`
	Rate   float64 `json:"rate"`
	Amount float64 `json:"amount"`
}

// FoodBreakdown lists the per-day meal allowances and their sum.
type FoodBreakdown struct {
	DailyExpenses []DailyFoodExpense `json:"dailyExpenses"`
	TotalAmount   float64            `json:"totalAmount"`
}

// AccommodationDetails is the lodging cost for the stay.
// Days is the night count and is never below 1.
type AccommodationDetails struct {
	From             string  `json:"from"`
	To               string  `json:"to"`
	Days             int     `json:"days"`
	HotelName        string  `json:"hotelName"`
	DailyRate        float64 `json:"dailyRate"`
	EarlyCheckInCost float64 `json:"earlyCheckInCost"`
	TotalAmount      float64 `json:"totalAmount"`
	EarlyCheckIn     bool    `json:"earlyCheckIn"`
}

// StayAmount is the lodging cost without the early check-in surcharge.
func (a AccommodationDetails) StayAmount() float64 {
	return float64(a.Days) * a.DailyRate
}

// TravelPlan is the complete, immutable result of planning one trip.
// Any change to the configuration requires building a new plan.
type TravelPlan struct {
	UserName         string `json:"userName"`
	UserEmail        string `json:"userEmail"`
	University       string `json:"university"`
	Reason           string `json:"reason"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	BaseCity         string `json:"baseCity"`
	TargetCity       string `json:"targetCity"`
	BoardingPoint    string `json:"boardingPoint"`
	DestinationPoint string `json:"destinationPoint"`
	HotelName        string `json:"hotelName"`

	OnwardJourney    []TravelSegment      `json:"onwardJourney"`
	DailyLocalTravel []TravelSegment      `json:"dailyLocalTravel"`
	ReturnJourney    []TravelSegment      `json:"returnJourney"`
	Accommodation    AccommodationDetails `json:"accommodation"`
	FoodExpense      FoodBreakdown        `json:"foodExpense"`

	TotalEstimatedExpense float64 `json:"totalEstimatedExpense"`
}
