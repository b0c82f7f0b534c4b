package finance

import (
	"testing"
	"time"

	"travelia/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trip(date string, pax int, income, fuel int64) domain.TripOperation {
	return domain.TripOperation{
		Date:           date,
		RouteFrom:      "Denpasar",
		RouteTo:        "Mataram",
		PassengerCount: pax,
		TicketIncome:   income,
		FuelCost:       fuel,
	}
}

func TestBucketByDayZeroFillsWholeMonth(t *testing.T) {
	out := BucketByDay(nil, 2026, time.January)
	require.Len(t, out, 31)
	assert.Equal(t, "2026-01-01", out[0].Label)
	assert.Equal(t, "2026-01-31", out[30].Label)
	for _, b := range out {
		assert.Zero(t, b.Trips)
		assert.Zero(t, b.Income)
	}
}

func TestBucketByDayFebruaryLeapYear(t *testing.T) {
	require.Len(t, BucketByDay(nil, 2024, time.February), 29)
	require.Len(t, BucketByDay(nil, 2026, time.February), 28)
}

func TestBucketByDayPlacesRecords(t *testing.T) {
	records := []domain.TripOperation{
		trip("2026-01-05", 7, 1_050_000, 300_000),
		trip("2026-01-05", 5, 750_000, 0),
		trip("2026-01-20", 3, 450_000, 100_000),
		trip("2026-02-01", 9, 999_000, 0),   // other month, skipped
		trip("not-a-date", 9, 999_000, 0),   // malformed, skipped
	}
	out := BucketByDay(records, 2026, time.January)

	day5 := out[4]
	assert.Equal(t, 12, day5.Passengers)
	assert.Equal(t, int64(1_800_000), day5.Income)
	assert.Equal(t, int64(300_000), day5.Expense)
	assert.Equal(t, int64(1_500_000), day5.Profit)
	assert.Equal(t, 2, day5.Trips)

	assert.Equal(t, 1, out[19].Trips)

	sum := Summarize(out)
	assert.Equal(t, 15, sum.Passengers)
	assert.Equal(t, sum.Income-sum.Expense, sum.Profit)
}

func TestBucketByWeekNumbering(t *testing.T) {
	// 2026-01-01 is a Thursday (weekday 4): Jan 1-3 land in week 1,
	// Jan 4 (Sunday) starts week 2.
	records := []domain.TripOperation{
		trip("2026-01-02", 4, 400_000, 0),
		trip("2026-01-04", 6, 600_000, 0),
	}
	out := BucketByWeek(records, 2026)
	require.Len(t, out, 2)
	assert.Equal(t, "Minggu 1", out[0].Label)
	assert.Equal(t, 4, out[0].Passengers)
	assert.Equal(t, "Minggu 2", out[1].Label)
	assert.Equal(t, 6, out[1].Passengers)
}

func TestBucketByWeekOmitsEmptyWeeks(t *testing.T) {
	records := []domain.TripOperation{
		trip("2026-01-02", 4, 400_000, 0),
		trip("2026-12-28", 2, 200_000, 0),
	}
	out := BucketByWeek(records, 2026)
	require.Len(t, out, 2)
}

func TestBucketByMonthAlwaysTwelve(t *testing.T) {
	records := []domain.TripOperation{
		trip("2026-03-10", 5, 500_000, 50_000),
		trip("2026-03-11", 2, 200_000, 0),
		trip("2026-11-01", 1, 100_000, 0),
		trip("2025-03-10", 8, 800_000, 0), // wrong year, skipped
	}
	out := BucketByMonth(records, 2026)
	require.Len(t, out, 12)
	assert.Equal(t, "Januari", out[0].Label)
	assert.Equal(t, "Desember", out[11].Label)
	assert.Equal(t, 7, out[2].Passengers)
	assert.Equal(t, 2, out[2].Trips)
	assert.Equal(t, 1, out[10].Trips)
	assert.Zero(t, out[0].Trips)
}

func TestBucketByYearDistinctAscending(t *testing.T) {
	records := []domain.TripOperation{
		trip("2026-06-01", 3, 300_000, 0),
		trip("2024-01-15", 2, 200_000, 0),
		trip("2026-07-01", 1, 100_000, 0),
	}
	out := BucketByYear(records)
	require.Len(t, out, 2)
	assert.Equal(t, "2024", out[0].Label)
	assert.Equal(t, "2026", out[1].Label)
	assert.Equal(t, 4, out[1].Passengers)
}

func TestBucketByYearEmpty(t *testing.T) {
	assert.Empty(t, BucketByYear(nil))
}

func TestSummarizeEmptyIsZero(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestSummarizeIsAssociative(t *testing.T) {
	a := []Bucket{{Passengers: 3, Income: 300, Expense: 100, Profit: 200, Trips: 1}}
	b := []Bucket{{Passengers: 5, Income: 500, Expense: 50, Profit: 450, Trips: 2}}

	whole := Summarize(append(append([]Bucket{}, a...), b...))
	sa, sb := Summarize(a), Summarize(b)
	parts := Summary{
		Passengers: sa.Passengers + sb.Passengers,
		Income:     sa.Income + sb.Income,
		Expense:    sa.Expense + sb.Expense,
		Profit:     sa.Profit + sb.Profit,
		Trips:      sa.Trips + sb.Trips,
	}
	assert.Equal(t, whole, parts)
}

func TestExpenseBreakdownPositiveOnlyInPriorityOrder(t *testing.T) {
	records := []domain.TripOperation{
		{Date: "2026-01-01", FuelCost: 200_000, TollCost: 50_000},
		{Date: "2026-01-02", FuelCost: 100_000, DriverFee: 150_000},
	}
	out := ExpenseBreakdown(records)
	require.Len(t, out, 3)
	assert.Equal(t, domain.ExpenseFuel, out[0].Category)
	assert.Equal(t, int64(300_000), out[0].Amount)
	assert.Equal(t, domain.ExpenseDriverFee, out[1].Category)
	assert.Equal(t, domain.ExpenseToll, out[2].Category)

	var sum int64
	for _, ct := range out {
		sum += ct.Amount
	}
	var expect int64
	for _, r := range records {
		expect += r.TotalExpense()
	}
	assert.Equal(t, expect, sum)
}

func TestExpenseBreakdownEmpty(t *testing.T) {
	assert.Empty(t, ExpenseBreakdown(nil))
	assert.Empty(t, ExpenseBreakdown([]domain.TripOperation{{Date: "2026-01-01"}}))
}
