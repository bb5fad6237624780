package models

import "time"

type Option struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"column:option;type:text;not null" json:"option"`
	PollID    int64     `gorm:"not null;index" json:"pollId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Poll  *Poll  `gorm:"foreignKey:PollID" json:"-"`
	Votes []Vote `gorm:"foreignKey:OptionID" json:"votes,omitempty"`
}
