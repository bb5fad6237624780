package seed

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"pollgate/internal/models"
)

// Demo creates a sample poll with options and an admin access code for local
// development. Safe to run more than once.
func Demo(db *gorm.DB) error {
	poll := models.Poll{
		Title: "What is your favourite colour? Please pick exactly one.",
		Description: "We are researching our clients' favourite colours. " +
			"We would appreciate you completing this poll!",
		MaxVotesPerOption:     1,
		MaxVotesPerAccessCode: 1,
		ClosingAt:             time.Now().AddDate(0, 1, 0),
	}
	if err := db.Where("title = ?", poll.Title).FirstOrCreate(&poll).Error; err != nil {
		return err
	}

	admin := models.NewAccessCode(models.AccessAdmin)
	admin.PollID = poll.ID
	if err := db.Where("poll_id = ? AND type = ?", poll.ID, models.AccessAdmin).
		FirstOrCreate(&admin).Error; err != nil {
		return err
	}

	for _, text := range []string{"Red", "Green", "Blue"} {
		option := models.Option{Text: text, PollID: poll.ID}
		if err := db.Where("poll_id = ? AND `option` = ?", poll.ID, text).
			FirstOrCreate(&option).Error; err != nil {
			return err
		}
	}

	log.Info().
		Int64("poll_id", poll.ID).
		Str("admin_code", admin.Code).
		Msg("seed OK")
	return nil
}
