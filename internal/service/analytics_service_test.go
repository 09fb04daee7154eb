package service

import (
	"context"
	"testing"
	"time"

	"blogwave/internal/models"
	"blogwave/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// analyticsRepoStub is a stub for repository.AnalyticsRepository.
type analyticsRepoStub struct {
	createFn func(context.Context, *models.Analytics) error
	listFn   func(context.Context, repository.AnalyticsFilter) ([]*models.Analytics, error)
}

func (s *analyticsRepoStub) Create(ctx context.Context, entry *models.Analytics) error {
	return s.createFn(ctx, entry)
}
func (s *analyticsRepoStub) List(ctx context.Context, filter repository.AnalyticsFilter) ([]*models.Analytics, error) {
	return s.listFn(ctx, filter)
}

func noopAnalyticsRepo() *analyticsRepoStub {
	return &analyticsRepoStub{
		createFn: func(_ context.Context, e *models.Analytics) error {
			e.ID = 1
			return nil
		},
		listFn: func(_ context.Context, _ repository.AnalyticsFilter) ([]*models.Analytics, error) {
			return nil, nil
		},
	}
}

func TestAnalyticsService_Record(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("negative views rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewAnalyticsService(noopAnalyticsRepo())
		_, err := svc.Record(ctx, RecordAnalyticsInput{Views: -1})
		assertValidationError(t, err)
	})

	t.Run("bounce rate over 100 rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewAnalyticsService(noopAnalyticsRepo())
		_, err := svc.Record(ctx, RecordAnalyticsInput{BounceRate: 101})
		assertValidationError(t, err)
	})

	t.Run("date defaults to now", func(t *testing.T) {
		t.Parallel()
		svc := NewAnalyticsService(noopAnalyticsRepo())
		entry, err := svc.Record(ctx, RecordAnalyticsInput{Views: 10, UniqueVisitors: 5})
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now(), entry.Date, time.Minute)
	})

	t.Run("explicit date kept", func(t *testing.T) {
		t.Parallel()
		svc := NewAnalyticsService(noopAnalyticsRepo())
		date := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
		entry, err := svc.Record(ctx, RecordAnalyticsInput{Views: 10, Date: &date})
		require.NoError(t, err)
		assert.Equal(t, date, entry.Date)
	})
}

func TestAnalyticsService_List(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("inverted range rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewAnalyticsService(noopAnalyticsRepo())
		start := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 0, -5)
		_, err := svc.List(ctx, ListAnalyticsInput{StartDate: &start, EndDate: &end})
		assertValidationError(t, err)
	})

	t.Run("filters passed through", func(t *testing.T) {
		t.Parallel()
		var captured repository.AnalyticsFilter
		repo := noopAnalyticsRepo()
		repo.listFn = func(_ context.Context, f repository.AnalyticsFilter) ([]*models.Analytics, error) {
			captured = f
			return nil, nil
		}
		svc := NewAnalyticsService(repo)

		postID := uint(4)
		start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
		_, err := svc.List(ctx, ListAnalyticsInput{PostID: &postID, StartDate: &start})
		require.NoError(t, err)
		require.NotNil(t, captured.PostID)
		assert.Equal(t, uint(4), *captured.PostID)
		require.NotNil(t, captured.StartDate)
		assert.Nil(t, captured.EndDate)
	})
}
