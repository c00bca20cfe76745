package dependency

import (
	"github.com/catspotter/cat-tracker/infrastructure/persistence/database"
	"github.com/catspotter/cat-tracker/infrastructure/persistence/repository"
)

func (c *Container) initRepositories() {
	c.SightingRepo = repository.NewSightingRepository(database.GetDb())

	c.Logger.Info("Repositories initialized successfully")
}
