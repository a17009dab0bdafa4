// Package models contains data structures for the application's domain models.
package models

// Account represents an authenticatable principal. The email address is the
// sole login credential; there is no username.
type Account struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Email       string `gorm:"size:50;uniqueIndex;not null" json:"email"`
	Password    string `gorm:"not null" json:"-"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
	IsStaff     bool   `gorm:"default:false" json:"is_staff"`
	IsSuperuser bool   `gorm:"default:false" json:"is_superuser"`

	// Owned records. The database enforces the cascades: deleting an
	// account deletes its profile, posts and comments. Rows in the
	// post_likes join table are removed without touching the liked posts.
	Profile  *Profile  `gorm:"constraint:OnDelete:CASCADE" json:"profile,omitempty"`
	Posts    []Post    `gorm:"constraint:OnDelete:CASCADE" json:"posts,omitempty"`
	Comments []Comment `gorm:"constraint:OnDelete:CASCADE" json:"comments,omitempty"`
}
