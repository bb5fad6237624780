package rbac

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pollgate/internal/models"
)

var (
	// ErrCodeNotFound means no access code matches (code, pollId) exactly.
	ErrCodeNotFound = errors.New("access code not found")
	// ErrInsufficientRole means the code exists but its type is not in the
	// required set for the operation.
	ErrInsufficientRole = errors.New("insufficient role")
)

type Checker struct{ DB *gorm.DB }

// Authorize resolves the presented code within the given poll and checks it
// against the required role set. The lookup is poll-scoped: a code string that
// is valid on another poll does not authorize here. On success the resolved
// access code is returned so writes can be stamped with its id.
func (c Checker) Authorize(ctx context.Context, pollID int64, code string, required ...models.AccessCodeType) (*models.AccessCode, error) {
	var ac models.AccessCode
	err := c.DB.WithContext(ctx).
		Where("code = ? AND poll_id = ?", code, pollID).
		First(&ac).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCodeNotFound
	}
	if err != nil {
		return nil, err
	}

	for _, t := range required {
		if ac.Type == t {
			return &ac, nil
		}
	}
	return nil, ErrInsufficientRole
}
