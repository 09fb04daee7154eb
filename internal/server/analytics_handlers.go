package server

import (
	"time"

	"blogwave/internal/models"
	"blogwave/internal/service"

	"github.com/gofiber/fiber/v2"
)

// analyticsDateFormats are accepted for date query params and payload fields.
var analyticsDateFormats = []string{time.RFC3339, "2006-01-02"}

func parseAnalyticsDate(v string) (*time.Time, bool) {
	if v == "" {
		return nil, true
	}
	for _, layout := range analyticsDateFormats {
		if t, err := time.Parse(layout, v); err == nil {
			return &t, true
		}
	}
	return nil, false
}

// CreateAnalytics handles POST /api/analytics
func (s *Server) CreateAnalytics(c *fiber.Ctx) error {
	var req struct {
		PostID         *uint  `json:"postId"`
		Views          int    `json:"views"`
		UniqueVisitors int    `json:"uniqueVisitors"`
		AvgTimeOnPage  string `json:"avgTimeOnPage"`
		BounceRate     int    `json:"bounceRate"`
		Date           string `json:"date"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	date, ok := parseAnalyticsDate(req.Date)
	if !ok {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("date must be RFC3339 or YYYY-MM-DD"))
	}

	entry, err := s.analyticsService.Record(c.Context(), service.RecordAnalyticsInput{
		PostID:         req.PostID,
		Views:          req.Views,
		UniqueVisitors: req.UniqueVisitors,
		AvgTimeOnPage:  req.AvgTimeOnPage,
		BounceRate:     req.BounceRate,
		Date:           date,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// GetAnalytics handles GET /api/analytics with postId/startDate/endDate filters.
func (s *Server) GetAnalytics(c *fiber.Ctx) error {
	var postID *uint
	if v := c.QueryInt("postId", 0); v > 0 {
		id := uint(v)
		postID = &id
	}

	start, ok := parseAnalyticsDate(c.Query("startDate"))
	if !ok {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("startDate must be RFC3339 or YYYY-MM-DD"))
	}
	end, ok := parseAnalyticsDate(c.Query("endDate"))
	if !ok {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("endDate must be RFC3339 or YYYY-MM-DD"))
	}

	entries, err := s.analyticsService.List(c.Context(), service.ListAnalyticsInput{
		PostID:    postID,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(entries)
}
