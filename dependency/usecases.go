package dependency

import (
	reportUseCase "github.com/catspotter/cat-tracker/application/usecases/report"
	sightingUseCase "github.com/catspotter/cat-tracker/application/usecases/sighting"
	uploadUseCase "github.com/catspotter/cat-tracker/application/usecases/upload"
)

func (c *Container) initUseCases() {
	c.SightingUC = sightingUseCase.NewSightingUseCase(c.SightingRepo, c.Logger)
	c.ReportUC = reportUseCase.NewReportUseCase(c.SightingRepo, c.Logger)
	c.UploadUC = uploadUseCase.NewUploadUseCase(c.Storage, c.Config.Storage.MaxUploadSize, c.Logger)

	c.Logger.Info("Use cases initialized successfully")
}
