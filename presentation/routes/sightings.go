package routes

import (
	"github.com/catspotter/cat-tracker/presentation/controllers/sighting"
	"github.com/gin-gonic/gin"
)

func SightingRoutes(router *gin.RouterGroup, controller sighting.SightingController) {
	cats := router.Group("/cats")
	{
		cats.GET("", controller.List)
		cats.POST("", controller.Create)
		cats.GET("/recent-with-images", controller.RecentWithImages)
		cats.GET("/:id", controller.GetByID)
	}
}
