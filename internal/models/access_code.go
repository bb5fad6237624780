package models

import (
	"time"

	"github.com/google/uuid"
)

type AccessCodeType string

const (
	AccessAdmin AccessCodeType = "admin"
	AccessView  AccessCodeType = "view"
	AccessVote  AccessCodeType = "vote"
)

// ParseAccessCodeType converts the wire value into the closed enum.
func ParseAccessCodeType(s string) (AccessCodeType, bool) {
	switch AccessCodeType(s) {
	case AccessAdmin, AccessView, AccessVote:
		return AccessCodeType(s), true
	}
	return "", false
}

// AccessCode is an opaque bearer token granting one role on one poll.
// The same code string may exist on different polls; the composite unique
// index keeps lookups poll-scoped so a code never validates cross-poll.
type AccessCode struct {
	ID        int64          `gorm:"primaryKey" json:"id"`
	Code      string         `gorm:"size:64;not null;uniqueIndex:uniq_code_poll" json:"code"`
	Type      AccessCodeType `gorm:"size:16;not null" json:"type"`
	PollID    int64          `gorm:"not null;uniqueIndex:uniq_code_poll;index" json:"pollId"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`

	Poll *Poll `gorm:"foreignKey:PollID" json:"-"`
}

// NewAccessCode mints a code of the given type with a fresh random token.
// PollID is assigned by the caller (or by association on poll creation).
func NewAccessCode(t AccessCodeType) AccessCode {
	return AccessCode{
		Code: uuid.NewString(),
		Type: t,
	}
}
