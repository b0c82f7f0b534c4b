package domain

// TripOperation is the admin-maintained financial record of one departure.
// Monetary amounts are whole Rupiah (int64), never floats.
type TripOperation struct {
	ID int64 `json:"id"`

	Date          string `json:"date"` // YYYY-MM-DD
	RouteFrom     string `json:"routeFrom"`
	RouteTo       string `json:"routeTo"`
	RouteVia      string `json:"routeVia,omitempty"`
	DepartureTime string `json:"departureTime"` // free text, "08:00" or "08.00"

	PassengerCount int `json:"passengerCount"`

	TicketIncome int64 `json:"ticketIncome"`
	OtherIncome  int64 `json:"otherIncome"`

	FuelCost       int64 `json:"fuelCost"`
	FerryCost      int64 `json:"ferryCost"`
	SnackCost      int64 `json:"snackCost"`
	MealCost       int64 `json:"mealCost"`
	DriverFee      int64 `json:"driverFee"`
	DriverMealCost int64 `json:"driverMealCost"`
	TollCost       int64 `json:"tollCost"`
	ParkingCost    int64 `json:"parkingCost"`
	OtherCost      int64 `json:"otherCost"`

	Notes       string `json:"notes,omitempty"`
	DriverName  string `json:"driverName,omitempty"`
	PlateNumber string `json:"plateNumber,omitempty"`
}

func (t TripOperation) TotalIncome() int64 {
	return t.TicketIncome + t.OtherIncome
}

func (t TripOperation) TotalExpense() int64 {
	return t.FuelCost + t.FerryCost + t.SnackCost + t.MealCost +
		t.DriverFee + t.DriverMealCost + t.TollCost + t.ParkingCost + t.OtherCost
}

// Profit may be negative when expenses exceed income.
func (t TripOperation) Profit() int64 {
	return t.TotalIncome() - t.TotalExpense()
}

// ExpenseCategory identifies one of the nine cost fields of a trip.
type ExpenseCategory string

const (
	ExpenseFuel       ExpenseCategory = "fuel"
	ExpenseFerry      ExpenseCategory = "ferry"
	ExpenseSnack      ExpenseCategory = "snack"
	ExpenseMeal       ExpenseCategory = "meal"
	ExpenseDriverFee  ExpenseCategory = "driver_fee"
	ExpenseDriverMeal ExpenseCategory = "driver_meal"
	ExpenseToll       ExpenseCategory = "toll"
	ExpenseParking    ExpenseCategory = "parking"
	ExpenseOther      ExpenseCategory = "other"
)

// ExpenseCategories lists the nine categories in reporting priority order.
var ExpenseCategories = []ExpenseCategory{
	ExpenseFuel,
	ExpenseFerry,
	ExpenseSnack,
	ExpenseMeal,
	ExpenseDriverFee,
	ExpenseDriverMeal,
	ExpenseToll,
	ExpenseParking,
	ExpenseOther,
}

// ExpenseAmount returns the cost stored under one category.
func (t TripOperation) ExpenseAmount(cat ExpenseCategory) int64 {
	switch cat {
	case ExpenseFuel:
		return t.FuelCost
	case ExpenseFerry:
		return t.FerryCost
	case ExpenseSnack:
		return t.SnackCost
	case ExpenseMeal:
		return t.MealCost
	case ExpenseDriverFee:
		return t.DriverFee
	case ExpenseDriverMeal:
		return t.DriverMealCost
	case ExpenseToll:
		return t.TollCost
	case ExpenseParking:
		return t.ParkingCost
	case ExpenseOther:
		return t.OtherCost
	default:
		return 0
	}
}
