package models

import "time"

// Post is a content item authored by an account. Likes are a many-to-many
// relation to accounts through the post_likes join table; the set may be
// empty.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:100;not null" json:"title"`
	AccountID uint      `gorm:"index;not null" json:"account_id"`
	CreatedOn time.Time `gorm:"autoCreateTime;<-:create" json:"created_on"`
	Img       string    `json:"img"`

	Liked    []Account `gorm:"many2many:post_likes;constraint:OnDelete:CASCADE" json:"liked,omitempty"`
	Comments []Comment `gorm:"constraint:OnDelete:CASCADE" json:"comments,omitempty"`
}
