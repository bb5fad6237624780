package models

import "time"

type Poll struct {
	ID                    int64     `gorm:"primaryKey" json:"id"`
	Title                 string    `gorm:"size:255;not null" json:"title"`
	Description           string    `gorm:"type:text" json:"description"`
	MaxVotesPerOption     int       `gorm:"not null" json:"maxVotesPerOption"`
	MaxVotesPerAccessCode int       `gorm:"not null" json:"maxVotesPerAccessCode"`
	ClosingAt             time.Time `gorm:"not null" json:"closingAt"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`

	AccessCodes []AccessCode `gorm:"foreignKey:PollID" json:"accessCodes,omitempty"`
	Options     []Option     `gorm:"foreignKey:PollID" json:"options,omitempty"`
}

// IsOpen reports whether the poll still accepts votes at the given instant.
// A poll closing exactly at now is already closed.
func (p *Poll) IsOpen(now time.Time) bool {
	return p.ClosingAt.After(now)
}
