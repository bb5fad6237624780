package models

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog records one completed write operation on a poll.
// Entries are best-effort; a failed audit insert never fails the request.
type AuditLog struct {
	ID           int64          `gorm:"primaryKey" json:"id"`
	PollID       int64          `gorm:"index;not null" json:"pollId"`
	AccessCodeID int64          `gorm:"index" json:"accessCodeId"`
	Action       string         `gorm:"size:100;not null" json:"action"` // e.g. "vote.cast", "option.create"
	Metadata     datatypes.JSON `gorm:"type:json" json:"metadata"`
	IP           string         `gorm:"size:64" json:"ip"`
	UserAgent    string         `gorm:"size:255" json:"userAgent"`
	CreatedAt    time.Time      `json:"createdAt"`
}
