package dependency

import (
	"context"
	"fmt"
	"time"

	reportUseCase "github.com/catspotter/cat-tracker/application/usecases/report"
	sightingUseCase "github.com/catspotter/cat-tracker/application/usecases/sighting"
	uploadUseCase "github.com/catspotter/cat-tracker/application/usecases/upload"
	"github.com/catspotter/cat-tracker/domain/repository"
	"github.com/catspotter/cat-tracker/infrastructure/config"
	"github.com/catspotter/cat-tracker/infrastructure/logger"
	"github.com/catspotter/cat-tracker/infrastructure/metrics"
	"github.com/catspotter/cat-tracker/infrastructure/persistence/database"
	"github.com/catspotter/cat-tracker/infrastructure/storage"
	healthCtrl "github.com/catspotter/cat-tracker/presentation/controllers/health"
	reportCtrl "github.com/catspotter/cat-tracker/presentation/controllers/report"
	sightingCtrl "github.com/catspotter/cat-tracker/presentation/controllers/sighting"
	uploadCtrl "github.com/catspotter/cat-tracker/presentation/controllers/upload"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

// Container wires every dependency once at startup; after that the
// wiring is immutable and requests share nothing else.
type Container struct {
	Config *config.Config
	Logger *logger.Logger

	TracerProvider *trace.TracerProvider
	MetricsManager metrics.Manager

	Storage      storage.Storage
	LocalStorage *storage.LocalStorage

	SightingRepo repository.SightingRepository

	SightingUC sightingUseCase.SightingUseCase
	ReportUC   reportUseCase.ReportUseCase
	UploadUC   uploadUseCase.UploadUseCase

	SightingController sightingCtrl.SightingController
	UploadController   uploadCtrl.UploadController
	ReportController   reportCtrl.ReportController
	HealthController   healthCtrl.HealthController
}

func NewContainer() (*Container, error) {
	c := &Container{}

	c.Config = config.GetConfig()

	loggerInstance, err := logger.NewLogger(c.Config)
	if err != nil {
		return nil, fmt.Errorf("error initializing logger: %w", err)
	}
	c.Logger = loggerInstance

	c.Logger.Info("Initializing Cat Tracker API dependencies")

	if err := c.initInfrastructure(); err != nil {
		return nil, fmt.Errorf("error initializing infrastructure: %w", err)
	}

	c.initRepositories()
	c.initUseCases()
	c.initControllers()

	c.Logger.Info("Dependencies initialized successfully")

	return c, nil
}

func (c *Container) Shutdown() error {
	c.Logger.Info("Shutting down dependencies...")

	if c.TracerProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.TracerProvider.Shutdown(ctx); err != nil {
			c.Logger.Error("failed to shutdown tracer provider", zap.Error(err))
		}
	}

	if err := database.CloseDb(); err != nil {
		c.Logger.Error("failed to close database", zap.Error(err))
	}

	if err := c.Logger.Log.Sync(); err != nil {
		c.Logger.Error("failed to sync logger", zap.Error(err))
	}

	return nil
}
