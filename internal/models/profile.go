package models

import "time"

// Profile holds the public-facing identity of an account. Exactly one
// profile exists per account.
type Profile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	NickName  string    `gorm:"size:20;not null" json:"nick_name"`
	AccountID uint      `gorm:"uniqueIndex;not null" json:"account_id"`
	CreatedOn time.Time `gorm:"autoCreateTime;<-:create" json:"created_on"`
	Img       string    `json:"img"`
}
