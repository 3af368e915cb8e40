package migration

import (
	"fmt"
	"log"

	"pantry-planner/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.InventoryItem{}); err != nil {
		log.Fatalf("Error migrating inventory item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Shipment{}); err != nil {
		log.Fatalf("Error migrating shipment database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.CachedRecipe{}); err != nil {
		log.Fatalf("Error migrating recipe cache database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeInteraction{}); err != nil {
		log.Fatalf("Error migrating recipe interaction database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
