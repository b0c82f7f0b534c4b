// Package finance turns flat trip-operation records into time-bucketed
// financial summaries. Everything here is a pure function over its inputs:
// no DB access, no hidden state, int64 Rupiah arithmetic only.
package finance

import (
	"fmt"
	"time"

	"travelia/internal/domain"
)

// Bucket is one derived aggregation row, discarded after render.
type Bucket struct {
	Label      string `json:"label"`
	Passengers int    `json:"passengers"`
	Income     int64  `json:"income"`
	Expense    int64  `json:"expense"`
	Profit     int64  `json:"profit"`
	Trips      int    `json:"trips"`
}

// Summary is the roll-up of a bucket list, used for KPI header cards.
type Summary struct {
	Passengers int   `json:"passengers"`
	Income     int64 `json:"income"`
	Expense    int64 `json:"expense"`
	Profit     int64 `json:"profit"`
	Trips      int   `json:"trips"`
}

// CategoryTotal is one expense category with its summed amount.
type CategoryTotal struct {
	Category domain.ExpenseCategory `json:"category"`
	Amount   int64                  `json:"amount"`
}

var monthNames = []string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

func (b *Bucket) add(t domain.TripOperation) {
	b.Passengers += t.PassengerCount
	b.Income += t.TotalIncome()
	b.Expense += t.TotalExpense()
	b.Profit += t.Profit()
	b.Trips++
}

// recordDate parses the record's calendar date. Producers are responsible
// for valid ISO dates; anything unparsable is simply skipped by the
// bucketing functions instead of failing the whole report.
func recordDate(t domain.TripOperation) (time.Time, bool) {
	d, err := time.Parse("2006-01-02", t.Date)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// BucketByDay produces one bucket per calendar day of the given month,
// zero-filled for days without records, ascending by day of month. The
// month's real length is used, so February follows the leap-year rule.
func BucketByDay(records []domain.TripOperation, year int, month time.Month) []Bucket {
	days := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	out := make([]Bucket, days)
	for i := range out {
		out[i].Label = fmt.Sprintf("%04d-%02d-%02d", year, int(month), i+1)
	}
	for _, t := range records {
		d, ok := recordDate(t)
		if !ok || d.Year() != year || d.Month() != month {
			continue
		}
		out[d.Day()-1].add(t)
	}
	return out
}

// BucketByWeek partitions one year into week buckets. The week number is
// derived from the day of year offset by January 1's weekday, mirroring
// how the admin dashboards have always numbered weeks. Weeks without
// records are omitted; ordering is ascending by week number.
func BucketByWeek(records []domain.TripOperation, year int) []Bucket {
	offset := int(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).Weekday())

	// max 54 slots: 366 days + 6 offset days
	byWeek := make([]*Bucket, 55)
	for _, t := range records {
		d, ok := recordDate(t)
		if !ok || d.Year() != year {
			continue
		}
		wk := (d.YearDay() + offset - 1) / 7
		if byWeek[wk] == nil {
			byWeek[wk] = &Bucket{Label: fmt.Sprintf("Minggu %d", wk+1)}
		}
		byWeek[wk].add(t)
	}

	out := []Bucket{}
	for _, b := range byWeek {
		if b != nil {
			out = append(out, *b)
		}
	}
	return out
}

// BucketByMonth produces exactly 12 buckets (Januari-Desember),
// zero-filled for months without records.
func BucketByMonth(records []domain.TripOperation, year int) []Bucket {
	out := make([]Bucket, 12)
	for i := range out {
		out[i].Label = monthNames[i]
	}
	for _, t := range records {
		d, ok := recordDate(t)
		if !ok || d.Year() != year {
			continue
		}
		out[int(d.Month())-1].add(t)
	}
	return out
}

// BucketByYear produces one bucket per distinct year present in the
// data, ascending, with no zero-filling.
func BucketByYear(records []domain.TripOperation) []Bucket {
	byYear := map[int]*Bucket{}
	minYear, maxYear := 0, 0
	for _, t := range records {
		d, ok := recordDate(t)
		if !ok {
			continue
		}
		y := d.Year()
		if byYear[y] == nil {
			byYear[y] = &Bucket{Label: fmt.Sprintf("%d", y)}
			if minYear == 0 || y < minYear {
				minYear = y
			}
			if y > maxYear {
				maxYear = y
			}
		}
		byYear[y].add(t)
	}

	out := []Bucket{}
	for y := minYear; y <= maxYear && minYear > 0; y++ {
		if b := byYear[y]; b != nil {
			out = append(out, *b)
		}
	}
	return out
}

// Summarize reduces a bucket list to a single total. It is associative:
// summarizing a concatenation equals combining separate summaries, and an
// empty list yields all zeros.
func Summarize(buckets []Bucket) Summary {
	var s Summary
	for _, b := range buckets {
		s.Passengers += b.Passengers
		s.Income += b.Income
		s.Expense += b.Expense
		s.Profit += b.Profit
		s.Trips += b.Trips
	}
	return s
}

// ExpenseBreakdown sums each of the nine expense categories over the
// record set and returns only categories with a strictly positive sum,
// in the fixed reporting priority order.
func ExpenseBreakdown(records []domain.TripOperation) []CategoryTotal {
	out := []CategoryTotal{}
	for _, cat := range domain.ExpenseCategories {
		var sum int64
		for _, t := range records {
			sum += t.ExpenseAmount(cat)
		}
		if sum > 0 {
			out = append(out, CategoryTotal{Category: cat, Amount: sum})
		}
	}
	return out
}
