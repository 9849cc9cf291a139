package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ecem/goodworks/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	memberController *controllers.MemberController,
	workController *controllers.WorkController,
	newsController *controllers.NewsController,
	eventController *controllers.EventController,
	siteController *controllers.SiteController,
) {
	api := router.Group("/api")

	members := api.Group("/members")
	{
		members.GET("", memberController.GetMembers)
		members.POST("", memberController.CreateMember)
		members.GET("/:id", memberController.GetMemberByID)
		members.PUT("/:id", memberController.UpdateMember)
		members.DELETE("/:id", memberController.DeleteMember)
	}

	works := api.Group("/works")
	{
		works.GET("", workController.GetWorks)
		works.POST("", workController.CreateWork)
		works.GET("/:id", workController.GetWorkByID)
		works.PUT("/:id", workController.UpdateWork)
		works.DELETE("/:id", workController.DeleteWork)
	}

	news := api.Group("/news")
	{
		news.GET("", newsController.GetNews)
		news.POST("", newsController.CreateNews)
		news.GET("/:id", newsController.GetNewsByID)
		news.PUT("/:id", newsController.UpdateNews)
		news.DELETE("/:id", newsController.DeleteNews)
	}

	events := api.Group("/events")
	{
		events.GET("", eventController.GetEvents)
		events.POST("", eventController.CreateEvent)
		events.GET("/:id", eventController.GetEventByID)
		events.PUT("/:id", eventController.UpdateEvent)
		events.DELETE("/:id", eventController.DeleteEvent)
	}

	api.GET("/stats", siteController.GetStats)
	api.POST("/contact", siteController.PostContact)
	api.GET("/health", siteController.GetHealth)
}
