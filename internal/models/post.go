// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Post lifecycle statuses.
const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
	PostStatusArchived  = "archived"
)

// ValidPostStatus reports whether s is a known post status.
func ValidPostStatus(s string) bool {
	switch s {
	case PostStatusDraft, PostStatusPublished, PostStatusArchived:
		return true
	}
	return false
}

// Post represents a blog post in BlogWave.
type Post struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Title           string     `gorm:"not null" json:"title"`
	Content         string     `gorm:"type:text;not null" json:"content"`
	Excerpt         string     `json:"excerpt"`
	Slug            string     `gorm:"unique;not null" json:"slug"`
	AuthorID        uint       `gorm:"not null;index" json:"authorId"`
	Author          *User      `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Status          string     `gorm:"not null;default:draft;index" json:"status"`
	Category        string     `json:"category"`
	FeaturedImage   string     `json:"featuredImage"`
	Tags            string     `json:"tags"`
	MetaTitle       string     `json:"metaTitle"`
	MetaDescription string     `json:"metaDescription"`
	PublishedAt     *time.Time `json:"publishedAt"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	AllowComments   *bool      `gorm:"default:true" json:"allowComments"`
	Views           int        `gorm:"default:0" json:"views"`
}

// CommentsAllowed reports whether the post accepts new comments.
// A nil AllowComments means the column default (true).
func (p *Post) CommentsAllowed() bool {
	return p.AllowComments == nil || *p.AllowComments
}

// Published reports whether the post is publicly visible.
func (p *Post) Published() bool {
	return p.Status == PostStatusPublished
}
