package httpserver

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pollgate/internal/http/handlers"
)

func NewRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	api := r.Group("/api")
	{
		api.POST("/polls", handlers.CreatePoll(db))
		api.POST("/polls/:pollId/createAccessCode", handlers.CreateAccessCode(db))
		api.GET("/polls/:pollId/accessCode/:accessCode", handlers.ViewPoll(db))
		api.GET("/polls/:pollId/accessCode/:accessCode/audit", handlers.ListAudit(db))
		api.GET("/polls/vote/:pollId/accessCode/:accessCode/option/:optionId", handlers.CastVote(db))

		// Alternate mount for code minting; same handler as the /polls route.
		api.POST("/accessCodes/:pollId", handlers.CreateAccessCode(db))

		api.POST("/options/poll/:pollId/accessCode/:accessCode", handlers.CreateOption(db))
	}

	return r
}
