package server

import (
	"net/http"
	"time"

	"mood-playlist/domain/repository"
	httpHandler "mood-playlist/interfaces/http"
	"mood-playlist/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitiateRouter(
	moodHandler httpHandler.IMoodHandler,
	userRepository repository.IUser,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Analysis endpoints; resolution results are safe to expose unauthenticated
	router.POST("/mood/image", moodHandler.AnalyzeImage)
	router.POST("/mood/text", moodHandler.AnalyzeText)

	// Persistence endpoints require a logged-in user
	api := router.Group("api")
	api.Use(middleware.Auth(userRepository))
	api.POST("/mood/save", moodHandler.SaveMood)
	api.GET("/mood/saved", moodHandler.ListSavedMoods)

	return router
}
