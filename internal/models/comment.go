package models

// Comment is a text reply to a post. Deleting either the parent post or the
// authoring account deletes the comment.
type Comment struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Text      string `gorm:"size:100;not null" json:"text"`
	AccountID uint   `gorm:"index;not null" json:"account_id"`
	PostID    uint   `gorm:"index;not null" json:"post_id"`
}
