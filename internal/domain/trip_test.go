package domain

import "testing"

func sampleTrip() TripOperation {
	return TripOperation{
		TicketIncome:   1_500_000,
		OtherIncome:    100_000,
		FuelCost:       300_000,
		FerryCost:      250_000,
		SnackCost:      50_000,
		MealCost:       75_000,
		DriverFee:      225_000,
		DriverMealCost: 40_000,
		TollCost:       60_000,
		ParkingCost:    10_000,
		OtherCost:      20_000,
	}
}

func TestTripTotals(t *testing.T) {
	tr := sampleTrip()
	if got := tr.TotalIncome(); got != 1_600_000 {
		t.Fatalf("TotalIncome = %d, want 1600000", got)
	}
	if got := tr.TotalExpense(); got != 1_030_000 {
		t.Fatalf("TotalExpense = %d, want 1030000", got)
	}
	if got := tr.Profit(); got != 570_000 {
		t.Fatalf("Profit = %d, want 570000", got)
	}
}

func TestTripProfitCanBeNegative(t *testing.T) {
	tr := TripOperation{TicketIncome: 100_000, FuelCost: 300_000}
	if got := tr.Profit(); got != -200_000 {
		t.Fatalf("Profit = %d, want -200000", got)
	}
}

func TestExpenseAmountCoversAllCategories(t *testing.T) {
	tr := sampleTrip()
	var sum int64
	for _, cat := range ExpenseCategories {
		sum += tr.ExpenseAmount(cat)
	}
	if sum != tr.TotalExpense() {
		t.Fatalf("category sum %d != TotalExpense %d", sum, tr.TotalExpense())
	}
	if got := tr.ExpenseAmount("unknown"); got != 0 {
		t.Fatalf("unknown category should be 0, got %d", got)
	}
}
