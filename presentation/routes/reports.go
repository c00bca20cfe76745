package routes

import (
	"github.com/catspotter/cat-tracker/presentation/controllers/report"
	"github.com/gin-gonic/gin"
)

func ReportRoutes(router *gin.RouterGroup, controller report.ReportController) {
	reports := router.Group("/reports")
	{
		reports.GET("/summary", controller.Summary)
		reports.GET("/export", controller.Export)
	}
}
