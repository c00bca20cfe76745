package dependency

import (
	"fmt"

	"github.com/catspotter/cat-tracker/infrastructure/metrics"
	"github.com/catspotter/cat-tracker/infrastructure/metrics/exporters"
	"github.com/catspotter/cat-tracker/infrastructure/persistence/database"
	"github.com/catspotter/cat-tracker/infrastructure/persistence/migration"
	"github.com/catspotter/cat-tracker/infrastructure/storage"
	"go.uber.org/zap"
)

func (c *Container) initInfrastructure() error {
	tracerProvider, err := exporters.InitJaegerExporter(c.Config)
	if err != nil {
		c.Logger.Error("failed to initialize Jaeger exporter", zap.Error(err))
		c.Logger.Warn("Using noop tracer provider as fallback")
	} else if tracerProvider == nil {
		c.Logger.Info("Jaeger endpoint not configured, tracing disabled")
	} else {
		c.TracerProvider = tracerProvider
		c.Logger.Info("Jaeger exporter initialized successfully",
			zap.String("endpoint", c.Config.Jaeger.Endpoint),
			zap.String("service", c.Config.Jaeger.ServiceName),
		)

		go exporters.SendTelemetryTrace(c.Config)
	}

	meter := exporters.Prometheus(c.Config.Jaeger.ServiceName, c.Config.Jaeger.ServiceVersion)
	if meter == nil {
		return fmt.Errorf("failed to initialize Prometheus exporter")
	}

	c.MetricsManager = metrics.NewMetricsManager(meter, c.Logger)

	c.MetricsManager.NewGauge("app_go_routines", "Number of goroutines")
	c.MetricsManager.NewGauge("app_sys_memory_alloc", "Bytes allocated and in use")
	c.MetricsManager.NewGauge("app_sys_total_alloc", "Total bytes allocated")
	c.MetricsManager.NewGauge("app_go_numGC", "Number of completed GC cycles")
	c.MetricsManager.NewGauge("app_go_sys", "Total bytes of memory obtained from OS")

	c.MetricsManager.NewCounter("http_requests_total", "Total number of HTTP requests")
	c.MetricsManager.NewHistogram("http_request_duration_seconds", "HTTP request duration in seconds",
		0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0)

	c.Logger.Info("Metrics initialized successfully")

	if err := database.InitDb(c.Config, c.Logger.Log); err != nil {
		return err
	}
	migration.Up1()

	return c.initStorage()
}

// initStorage always builds the local driver (it also serves /uploads),
// and prefers object storage when the config carries credentials.
func (c *Container) initStorage() error {
	localStorage, err := storage.NewLocalStorage(c.Config.Storage.LocalDir, c.Config.GetServerURL())
	if err != nil {
		return err
	}
	c.LocalStorage = localStorage

	if c.Config.HasObjectStorage() {
		s3Storage, err := storage.NewS3Storage(c.Config)
		if err != nil {
			return err
		}
		c.Storage = s3Storage
		c.Logger.Info("Using S3 object storage for uploads",
			zap.String("bucket", c.Config.Storage.S3.Bucket),
			zap.String("region", c.Config.Storage.S3.Region),
		)
		return nil
	}

	c.Storage = localStorage
	c.Logger.Info("Using local disk storage for uploads",
		zap.String("dir", c.Config.Storage.LocalDir),
	)
	return nil
}
