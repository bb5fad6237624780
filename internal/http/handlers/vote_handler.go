package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"pollgate/internal/models"
	"pollgate/internal/rbac"
)

// CastVote handles GET /api/polls/vote/:pollId/accessCode/:accessCode/option/:optionId.
//
// The check order is load -> lifecycle -> authorization -> option membership
// and is externally observable through status codes: a closed poll answers
// "closed" even to an invalid access code. Keep the order as is.
func CastVote(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		pollID, ok := pollIDParam(c)
		if !ok {
			return
		}
		optionID, ok := optionIDParam(c)
		if !ok {
			return
		}

		var poll models.Poll
		err := db.Preload("Options").First(&poll, pollID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			pollNotFound(c)
			return
		}
		if err != nil {
			log.Error().Err(err).Msg("poll lookup failed")
			internalError(c, "Failed to cast vote.")
			return
		}

		if !poll.IsOpen(time.Now()) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "The poll is closed."})
			return
		}

		chk := rbac.Checker{DB: db}
		granted, err := chk.Authorize(c, poll.ID, c.Param("accessCode"),
			models.AccessAdmin, models.AccessVote)
		if err != nil {
			authError(c, err, "Failed to cast vote.")
			return
		}

		var option *models.Option
		for i := range poll.Options {
			if poll.Options[i].ID == optionID {
				option = &poll.Options[i]
				break
			}
		}
		if option == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Option does not exist."})
			return
		}

		vote := models.Vote{
			OptionID:     option.ID,
			AccessCodeID: granted.ID,
		}
		if err := db.Create(&vote).Error; err != nil {
			log.Error().Err(err).Msg("vote insert failed")
			internalError(c, "Failed to cast vote.")
			return
		}

		recordAudit(db, c, poll.ID, granted.ID, "vote.cast",
			map[string]any{"optionId": option.ID})

		c.JSON(http.StatusCreated, vote)
	}
}
