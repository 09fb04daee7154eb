// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"time"

	"blogwave/internal/models"
	"blogwave/internal/observability"

	"gorm.io/gorm"
)

// AnalyticsFilter holds the optional filters accepted by List.
type AnalyticsFilter struct {
	PostID    *uint
	StartDate *time.Time
	EndDate   *time.Time
}

// AnalyticsRepository defines interface for analytics operations.
// Records are write-once; there is no update or delete.
type AnalyticsRepository interface {
	Create(ctx context.Context, entry *models.Analytics) error
	List(ctx context.Context, filter AnalyticsFilter) ([]*models.Analytics, error)
}

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new AnalyticsRepository
func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) Create(ctx context.Context, entry *models.Analytics) error {
	defer observability.TrackQuery("create", "analytics")()
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *analyticsRepository) List(ctx context.Context, filter AnalyticsFilter) ([]*models.Analytics, error) {
	defer observability.TrackQuery("list", "analytics")()
	var entries []*models.Analytics
	q := r.db.WithContext(ctx)
	if filter.PostID != nil {
		q = q.Where("post_id = ?", *filter.PostID)
	}
	if filter.StartDate != nil {
		q = q.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		q = q.Where("date <= ?", *filter.EndDate)
	}
	err := q.Order("date DESC").Find(&entries).Error
	return entries, err
}
