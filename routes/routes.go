package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"nutritrack/controllers"
	"nutritrack/middlewares"
	"nutritrack/services"
)

// Deps is everything the router hands to its controllers.
type Deps struct {
	JWTSecret []byte
	Log       *zap.Logger

	Profiles   *services.ProfileService
	Onboarding *services.OnboardingService
	Foods      *services.FoodLogService
	Coins      *services.CoinService
	Coach      *services.CoachService
	Catalog    *services.CatalogService
	Analytics  *services.AnalyticsService
	Backup     *services.BackupService
	Realtime   *services.RealtimeHub
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(d.Log))

	profile := controllers.NewProfileController(d.Profiles, d.Onboarding)
	food := controllers.NewFoodController(d.Foods, d.Coins)
	coach := controllers.NewCoachController(d.Coach)
	catalog := controllers.NewCatalogController(d.Catalog)
	analytics := controllers.NewAnalyticsController(d.Analytics, d.Log)
	backup := controllers.NewBackupController(d.Backup, d.Log)
	rt := controllers.NewRealtimeController(d.Realtime)

	// Public routes
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/catalog", catalog.Search)
	r.POST("/goals/preview", controllers.PreviewGoals)

	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware(d.JWTSecret))
	{
		api.GET("/profile", profile.GetProfile)
		api.PUT("/profile", profile.UpdateProfile)
		api.GET("/profile/summary", profile.GetSummary)
		api.POST("/onboarding/preview", profile.PreviewOnboarding)
		api.POST("/onboarding/complete", profile.CompleteOnboarding)

		api.GET("/days/:date/foods", food.ListFoods)
		api.POST("/days/:date/foods", food.AddFood)
		api.POST("/days/:date/foods/:id/confirm", food.ConfirmFood)
		api.DELETE("/days/:date/foods/:id", food.DeleteFood)
		api.GET("/days/:date/summary", food.GetSummary)
		api.GET("/coins", food.GetCoins)

		api.GET("/coach/flows", coach.Flows)
		api.POST("/coach/:flow", coach.Respond)

		api.GET("/analytics", analytics.GetRange)
		api.GET("/analytics/export", analytics.Export)

		api.GET("/backup", backup.Snapshot)
		api.POST("/backup", backup.Create)

		api.GET("/ws", rt.Events)
	}

	return r
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *gin.Context) {
		c.Next()
		log.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()))
	}
}
