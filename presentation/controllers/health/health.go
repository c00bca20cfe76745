package health

import (
	"net/http"
	"time"

	"github.com/catspotter/cat-tracker/infrastructure/persistence/database"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	serviceMessage = "NYC Cat Tracker API"
	serviceVersion = "1.0.0"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type HealthController interface {
	Info(ctx *gin.Context)
	Health(ctx *gin.Context)
	DbTest(ctx *gin.Context)
}

type healthController struct {
	database *gorm.DB
}

func NewHealthController(db *gorm.DB) HealthController {
	return &healthController{
		database: db,
	}
}

func (c *healthController) Info(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"message": serviceMessage,
		"version": serviceVersion,
	})
}

func (c *healthController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// DbTest probes connectivity on the pooled connection so deploys can
// tell an unhealthy database apart from an unhealthy API.
func (c *healthController) DbTest(ctx *gin.Context) {
	if err := database.Ping(c.database); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error:   "database_unavailable",
			Message: err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": "connected",
	})
}
