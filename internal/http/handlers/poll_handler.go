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

type createPollRequest struct {
	Title                 string    `json:"title" binding:"required,min=30"`
	Description           string    `json:"description"`
	MaxVotesPerOption     int       `json:"maxVotesPerOption" binding:"required,min=1,max=100"`
	MaxVotesPerAccessCode int       `json:"maxVotesPerAccessCode" binding:"required,min=1,max=100"`
	ClosingAt             time.Time `json:"closingAt" binding:"required"`
}

func (r createPollRequest) validate(now time.Time) []Issue {
	if !r.ClosingAt.After(now) {
		return []Issue{{Path: "closingAt", Message: "The closing date must be in the future."}}
	}
	return nil
}

// CreatePoll handles POST /api/polls. The poll row and its root admin access
// code are written in one transaction; the response embeds only that code.
func CreatePoll(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in createPollRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			respondIssues(c, bindingIssues(err))
			return
		}
		if issues := in.validate(time.Now()); len(issues) > 0 {
			respondIssues(c, issues)
			return
		}

		poll := models.Poll{
			Title:                 in.Title,
			Description:           in.Description,
			MaxVotesPerOption:     in.MaxVotesPerOption,
			MaxVotesPerAccessCode: in.MaxVotesPerAccessCode,
			ClosingAt:             in.ClosingAt,
			AccessCodes:           []models.AccessCode{models.NewAccessCode(models.AccessAdmin)},
		}

		if err := db.Create(&poll).Error; err != nil {
			log.Error().Err(err).Msg("poll insert failed")
			internalError(c, "Failed to create poll.")
			return
		}

		recordAudit(db, c, poll.ID, poll.AccessCodes[0].ID, "poll.create",
			map[string]any{"title": poll.Title})

		c.JSON(http.StatusCreated, poll)
	}
}

// ViewPoll handles GET /api/polls/:pollId/accessCode/:accessCode. Any of the
// three roles may read; all see identical poll and option data.
func ViewPoll(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		pollID, ok := pollIDParam(c)
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
			internalError(c, "Failed to fetch poll.")
			return
		}

		chk := rbac.Checker{DB: db}
		if _, err := chk.Authorize(c, poll.ID, c.Param("accessCode"),
			models.AccessAdmin, models.AccessView, models.AccessVote); err != nil {
			authError(c, err, "Failed to fetch poll.")
			return
		}

		c.JSON(http.StatusOK, poll)
	}
}
