package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"pollgate/internal/models"
	"pollgate/internal/rbac"
)

// recordAudit writes one audit row for a completed operation. Best-effort:
// the request has already succeeded, so failures are only logged.
func recordAudit(db *gorm.DB, c *gin.Context, pollID, accessCodeID int64, action string, meta map[string]any) {
	raw, _ := json.Marshal(meta)

	entry := models.AuditLog{
		PollID:       pollID,
		AccessCodeID: accessCodeID,
		Action:       action,
		Metadata:     datatypes.JSON(raw),
		IP:           c.ClientIP(),
		UserAgent:    c.GetHeader("User-Agent"),
	}
	if err := db.Create(&entry).Error; err != nil {
		log.Warn().Err(err).Str("action", action).Msg("audit write failed")
	}
}

// ListAudit returns a poll's audit entries newest-first. Admin only.
func ListAudit(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		pollID, ok := pollIDParam(c)
		if !ok {
			return
		}

		var poll models.Poll
		err := db.First(&poll, pollID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			pollNotFound(c)
			return
		}
		if err != nil {
			log.Error().Err(err).Msg("poll lookup failed")
			internalError(c, "Failed to fetch audit log.")
			return
		}

		chk := rbac.Checker{DB: db}
		if _, err := chk.Authorize(c, poll.ID, c.Param("accessCode"), models.AccessAdmin); err != nil {
			authError(c, err, "Failed to fetch audit log.")
			return
		}

		var entries []models.AuditLog
		if err := db.Where("poll_id = ?", poll.ID).Order("id DESC").Find(&entries).Error; err != nil {
			log.Error().Err(err).Msg("audit lookup failed")
			internalError(c, "Failed to fetch audit log.")
			return
		}

		c.JSON(http.StatusOK, gin.H{"audit": entries})
	}
}
