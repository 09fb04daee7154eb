// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Comment moderation statuses.
const (
	CommentStatusPending  = "pending"
	CommentStatusApproved = "approved"
	CommentStatusRejected = "rejected"
	CommentStatusSpam     = "spam"
)

// ValidCommentStatus reports whether s is a known moderation status.
func ValidCommentStatus(s string) bool {
	switch s {
	case CommentStatusPending, CommentStatusApproved, CommentStatusRejected, CommentStatusSpam:
		return true
	}
	return false
}

// Comment represents a reader comment on a post.
// ParentID enables threading but is currently unused by the UI.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"not null" json:"content"`
	PostID    uint      `gorm:"not null;index" json:"postId"`
	AuthorID  uint      `gorm:"not null;index" json:"authorId"`
	Author    *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Status    string    `gorm:"not null;default:pending;index" json:"status"`
	ParentID  *uint     `json:"parentId"`
	CreatedAt time.Time `json:"createdAt"`
}
