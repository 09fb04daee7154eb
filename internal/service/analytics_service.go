package service

import (
	"context"
	"time"

	"blogwave/internal/models"
	"blogwave/internal/repository"
)

type AnalyticsService struct {
	analyticsRepo repository.AnalyticsRepository
}

func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{analyticsRepo: analyticsRepo}
}

type RecordAnalyticsInput struct {
	PostID         *uint
	Views          int
	UniqueVisitors int
	AvgTimeOnPage  string
	BounceRate     int
	Date           *time.Time
}

// Record stores an analytics entry. Entries are write-once.
func (s *AnalyticsService) Record(ctx context.Context, in RecordAnalyticsInput) (*models.Analytics, error) {
	fields := map[string]string{}
	if in.Views < 0 {
		fields["views"] = "views cannot be negative"
	}
	if in.UniqueVisitors < 0 {
		fields["uniqueVisitors"] = "uniqueVisitors cannot be negative"
	}
	if in.BounceRate < 0 || in.BounceRate > 100 {
		fields["bounceRate"] = "bounceRate must be between 0 and 100"
	}
	if len(fields) > 0 {
		return nil, models.NewFieldValidationError(fields)
	}

	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}

	entry := &models.Analytics{
		PostID:         in.PostID,
		Views:          in.Views,
		UniqueVisitors: in.UniqueVisitors,
		AvgTimeOnPage:  in.AvgTimeOnPage,
		BounceRate:     in.BounceRate,
		Date:           date,
	}
	if err := s.analyticsRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

type ListAnalyticsInput struct {
	PostID    *uint
	StartDate *time.Time
	EndDate   *time.Time
}

func (s *AnalyticsService) List(ctx context.Context, in ListAnalyticsInput) ([]*models.Analytics, error) {
	if in.StartDate != nil && in.EndDate != nil && in.EndDate.Before(*in.StartDate) {
		return nil, models.NewValidationError("endDate cannot be before startDate")
	}
	return s.analyticsRepo.List(ctx, repository.AnalyticsFilter{
		PostID:    in.PostID,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
	})
}
