package services

import (
	"context"
	"io"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/report"
	"fintrack/internal/store"
)

// reportService computes dashboard metrics and exports.
type reportService struct {
	store store.Store
}

// NewReportService creates a new ReportServicer.
func NewReportService(s store.Store) ReportServicer {
	return &reportService{store: s}
}

// Dashboard summarizes the transactions matching filter, newest first.
func (s *reportService) Dashboard(ctx context.Context, filter report.Filter) (*Dashboard, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	transactions, err := s.store.FindTransactions(ctx, filter, report.NewestFirst)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Categories:      categories,
		TotalCategories: len(categories),
		Filter:          filter,
		Summary:         report.Summarize(transactions),
	}, nil
}

// ExportCSV writes every transaction, oldest first, as CSV. Dashboard
// filters never apply to exports.
func (s *reportService) ExportCSV(ctx context.Context, w io.Writer) error {
	transactions, err := s.store.FindTransactions(ctx, report.Filter{}, report.OldestFirst)
	if err != nil {
		return err
	}

	if err := report.WriteCSV(w, transactions); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
