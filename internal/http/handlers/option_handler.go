package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"pollgate/internal/models"
	"pollgate/internal/rbac"
)

type createOptionRequest struct {
	Text string `json:"option" binding:"required"`
}

// CreateOption handles POST /api/options/poll/:pollId/accessCode/:accessCode.
// Admin only; options are append-only once the poll exists.
func CreateOption(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		pollID, ok := pollIDParam(c)
		if !ok {
			return
		}

		var in createOptionRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			respondIssues(c, bindingIssues(err))
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
			internalError(c, "Failed to create option.")
			return
		}

		chk := rbac.Checker{DB: db}
		granted, err := chk.Authorize(c, poll.ID, c.Param("accessCode"), models.AccessAdmin)
		if err != nil {
			authError(c, err, "Failed to create option.")
			return
		}

		option := models.Option{
			Text:   in.Text,
			PollID: poll.ID,
		}
		if err := db.Create(&option).Error; err != nil {
			log.Error().Err(err).Msg("option insert failed")
			internalError(c, "Failed to create option.")
			return
		}

		recordAudit(db, c, poll.ID, granted.ID, "option.create",
			map[string]any{"option": option.Text})

		c.JSON(http.StatusCreated, option)
	}
}
