package services

import (
	"context"
	"strings"
	"time"

	"github.com/communitywatch/backend/internal/models"
	repo "github.com/communitywatch/backend/internal/repository"
)

type ReportService struct {
	reports repo.Reports
	now     func() time.Time
}

func NewReportService(reports repo.Reports) *ReportService {
	return &ReportService{reports: reports, now: time.Now}
}

type CreateReportInput struct {
	Type        string
	Location    string
	Description string
	Contact     string
	Severity    string
}

func (s *ReportService) Create(ctx context.Context, in CreateReportInput) (models.Report, error) {
	rep := models.Report{
		Type:        strings.TrimSpace(in.Type),
		Location:    strings.TrimSpace(in.Location),
		Description: strings.TrimSpace(in.Description),
		Contact:     strings.TrimSpace(in.Contact),
		Severity:    strings.TrimSpace(in.Severity),
		// Mongo keeps times at millisecond precision; truncating up front
		// keeps a created report identical to its later listing.
		Timestamp: s.now().UTC().Truncate(time.Millisecond),
	}
	if err := rep.Validate(); err != nil {
		return models.Report{}, err
	}
	return s.reports.Create(ctx, rep)
}

// List returns reports newest first, filtered by exact type match when
// typeFilter is non-empty.
func (s *ReportService) List(ctx context.Context, typeFilter string) ([]models.Report, error) {
	return s.reports.List(ctx, typeFilter)
}
