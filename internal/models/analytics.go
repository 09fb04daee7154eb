// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Analytics is a write-once engagement record, optionally tied to a post.
type Analytics struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	PostID         *uint     `gorm:"index" json:"postId"`
	Views          int       `gorm:"not null;default:0" json:"views"`
	UniqueVisitors int       `gorm:"not null;default:0" json:"uniqueVisitors"`
	AvgTimeOnPage  string    `json:"avgTimeOnPage"`
	BounceRate     int       `json:"bounceRate"`
	Date           time.Time `json:"date"`
}
