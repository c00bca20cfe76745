package routes

import (
	"github.com/catspotter/cat-tracker/presentation/controllers/upload"
	"github.com/gin-gonic/gin"
)

func UploadRoutes(router *gin.RouterGroup, controller upload.UploadController) {
	router.POST("/upload", controller.Upload)
}
