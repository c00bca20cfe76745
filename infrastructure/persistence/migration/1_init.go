package migration

import (
	"log"

	"github.com/catspotter/cat-tracker/domain/model"
	"github.com/catspotter/cat-tracker/infrastructure/persistence/database"
	"gorm.io/gorm"
)

func Up1() {
	database := database.GetDb()
	createTables(database)
}

func createTables(database *gorm.DB) {
	tables := []any{}

	tables = addNewTable(database, model.CatSighting{}, tables)

	if len(tables) == 0 {
		return
	}

	err := database.Migrator().CreateTable(tables...)
	if err != nil {
		log.Printf("Error migrating: %v\n", err)
		return
	}
	log.Println("Tables Created")
}

func addNewTable(database *gorm.DB, model any, tables []any) []any {
	if !database.Migrator().HasTable(model) {
		tables = append(tables, model)
	}
	return tables
}
