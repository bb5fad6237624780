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

type createAccessCodeRequest struct {
	Code string `json:"code" binding:"required,min=30"`
	Type string `json:"type" binding:"required,oneof=admin view vote"`
}

// CreateAccessCode mints a view/vote/admin code for an existing poll. Only a
// holder of the poll's admin code may mint; this is how participant codes are
// distributed. Mounted under both /api/polls/:pollId/createAccessCode and
// /api/accessCodes/:pollId.
func CreateAccessCode(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		pollID, ok := pollIDParam(c)
		if !ok {
			return
		}

		var in createAccessCodeRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			respondIssues(c, bindingIssues(err))
			return
		}
		codeType, ok := models.ParseAccessCodeType(in.Type)
		if !ok {
			respondIssues(c, []Issue{{Path: "type", Message: "A valid access code type must be specified."}})
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
			internalError(c, "Failed to create access code.")
			return
		}

		chk := rbac.Checker{DB: db}
		granted, err := chk.Authorize(c, poll.ID, in.Code, models.AccessAdmin)
		if err != nil {
			authError(c, err, "Failed to create access code.")
			return
		}

		ac := models.NewAccessCode(codeType)
		ac.PollID = poll.ID
		if err := db.Create(&ac).Error; err != nil {
			log.Error().Err(err).Msg("access code insert failed")
			internalError(c, "Failed to create access code.")
			return
		}

		recordAudit(db, c, poll.ID, granted.ID, "accessCode.create",
			map[string]any{"type": string(ac.Type)})

		c.JSON(http.StatusCreated, ac)
	}
}
