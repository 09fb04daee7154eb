// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents an author account in BlogWave.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"unique;not null" json:"username"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Bio       string    `json:"bio"`
	Website   string    `json:"website"`
	Avatar    string    `json:"avatar"`
	Twitter   string    `json:"twitter"`
	Linkedin  string    `json:"linkedin"`
	Github    string    `json:"github"`
	CreatedAt time.Time `json:"createdAt"`
	Posts     []Post    `gorm:"foreignKey:AuthorID" json:"posts,omitempty"`
}
