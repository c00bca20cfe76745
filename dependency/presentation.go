package dependency

import (
	"time"

	"github.com/catspotter/cat-tracker/infrastructure/metrics"
	"github.com/catspotter/cat-tracker/infrastructure/persistence/database"
	healthCtrl "github.com/catspotter/cat-tracker/presentation/controllers/health"
	reportCtrl "github.com/catspotter/cat-tracker/presentation/controllers/report"
	sightingCtrl "github.com/catspotter/cat-tracker/presentation/controllers/sighting"
	uploadCtrl "github.com/catspotter/cat-tracker/presentation/controllers/upload"
	"github.com/catspotter/cat-tracker/presentation/middlewares"
	"github.com/catspotter/cat-tracker/presentation/routes"
	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

func (c *Container) initControllers() {
	c.SightingController = sightingCtrl.NewSightingController(c.SightingUC)
	c.UploadController = uploadCtrl.NewUploadController(c.UploadUC, c.LocalStorage)
	c.ReportController = reportCtrl.NewReportController(c.ReportUC)
	c.HealthController = healthCtrl.NewHealthController(database.GetDb())

	c.Logger.Info("Controllers initialized successfully")
}

func (c *Container) SetupRouter() *gin.Engine {
	switch c.Config.Server.RunMode {
	case "release", "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	binding.Validator = new(middlewares.DefaultValidator)

	router := gin.Default()

	if c.Config.Sentry.Dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:            c.Config.Sentry.Dsn,
			Debug:          c.Config.Sentry.Debug,
			SendDefaultPII: c.Config.Sentry.SendDefaultPII,
		}); err != nil {
			c.Logger.Error("failed to initialize Sentry", zap.Error(err))
		} else {
			router.Use(sentrygin.New(sentrygin.Options{
				Repanic:         true,
				WaitForDelivery: false,
				Timeout:         5 * time.Second,
			}))
		}
	}

	router.Use(middlewares.GinLogger(c.Logger))
	router.Use(middlewares.CorsMiddleware(c.Config))
	router.Use(middlewares.MetricsMiddleware(c.MetricsManager))

	router.GET("/", c.HealthController.Info)
	router.GET("/health", c.HealthController.Health)
	router.GET("/db-test", c.HealthController.DbTest)

	router.GET("/uploads/*path", c.UploadController.Serve)
	router.HEAD("/uploads/*path", c.UploadController.Serve)

	c.registerObservabilityRoutes(router)
	c.registerAPIRoutes(router)

	c.Logger.Info("Router configured successfully")

	return router
}

func (c *Container) registerAPIRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		routes.SightingRoutes(api, c.SightingController)
		routes.UploadRoutes(api, c.UploadController)
		routes.ReportRoutes(api, c.ReportController)
	}
}

func (c *Container) registerObservabilityRoutes(router *gin.Engine) {
	metricsGroup := router.Group("")
	{
		metrics.GetHandler(metricsGroup, c.MetricsManager)
	}
}
