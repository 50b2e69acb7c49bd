package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/portfolio-showcase/pkg/logger"
)

type Handlers struct {
	Profile   *ProfileHandler
	Interview *InterviewHandler
	Settings  *SettingsHandler
	Backup    *BackupHandler
}

func NewRouter(h Handlers, log logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(log), ErrorMiddleware(log))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		profile := api.Group("/profile")
		{
			profile.GET("", h.Profile.GetProfile)
			profile.PUT("", h.Profile.UpdateProfile)
			profile.DELETE("", h.Profile.ResetProfile)
			profile.POST("/image", h.Profile.ImportImage)
			profile.GET("/export", h.Profile.ExportProfile)
		}

		interviews := api.Group("/interviews")
		{
			interviews.GET("", h.Interview.ListInterviews)
			interviews.POST("", h.Interview.CreateInterview)
			interviews.GET("/:id", h.Interview.GetInterview)
			interviews.PUT("/:id", h.Interview.UpdateInterview)
			interviews.DELETE("/:id", h.Interview.DeleteInterview)
			interviews.PATCH("/:id/status", h.Interview.UpdateStatus)
			interviews.POST("/:id/questions", h.Interview.AddQuestion)
			interviews.POST("/:id/topics", h.Interview.AddTechnicalTopic)
		}

		prefs := api.Group("/settings")
		{
			prefs.GET("/theme", h.Settings.GetTheme)
			prefs.POST("/theme/toggle", h.Settings.ToggleTheme)
		}

		if h.Backup != nil {
			api.POST("/backup", h.Backup.RunBackup)
		}
	}

	return router
}
