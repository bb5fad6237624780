package models

import "time"

type Vote struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	OptionID     int64     `gorm:"not null;index" json:"optionId"`
	AccessCodeID int64     `gorm:"not null;index" json:"accessCodeId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Option     *Option     `gorm:"foreignKey:OptionID" json:"-"`
	AccessCode *AccessCode `gorm:"foreignKey:AccessCodeID" json:"-"`
}
