package services

import (
	"time"

	"travelia/internal/domain"
	"travelia/internal/finance"
	"travelia/internal/repositories"
)

// ReportsService feeds the admin dashboards: trip operations bucketed by
// day/week/month/year plus KPI totals and the expense breakdown.
type ReportsService struct {
	TripRepo repositories.TripRepository
}

type ReportResult struct {
	Buckets  []finance.Bucket        `json:"buckets"`
	Summary  finance.Summary         `json:"summary"`
	Expenses []finance.CategoryTotal `json:"expenses"`
}

func report(buckets []finance.Bucket, records []domain.TripOperation) ReportResult {
	return ReportResult{
		Buckets:  buckets,
		Summary:  finance.Summarize(buckets),
		Expenses: finance.ExpenseBreakdown(records),
	}
}

func (s ReportsService) Daily(year int, month time.Month) (ReportResult, error) {
	records, err := s.TripRepo.List(year, int(month))
	if err != nil {
		return ReportResult{}, err
	}
	return report(finance.BucketByDay(records, year, month), records), nil
}

func (s ReportsService) Weekly(year int) (ReportResult, error) {
	records, err := s.TripRepo.List(year, 0)
	if err != nil {
		return ReportResult{}, err
	}
	return report(finance.BucketByWeek(records, year), records), nil
}

func (s ReportsService) Monthly(year int) (ReportResult, error) {
	records, err := s.TripRepo.List(year, 0)
	if err != nil {
		return ReportResult{}, err
	}
	return report(finance.BucketByMonth(records, year), records), nil
}

func (s ReportsService) Yearly() (ReportResult, error) {
	records, err := s.TripRepo.List(0, 0)
	if err != nil {
		return ReportResult{}, err
	}
	return report(finance.BucketByYear(records), records), nil
}
