package migration

import (
	"School-Canteen-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	models := []any{
		&entities.User{},
		&entities.Allergy{},
		&entities.UserAllergy{},
		&entities.Product{},
		&entities.Category{},
		&entities.Dish{},
		&entities.DishIngredient{},
		&entities.DishAllergy{},
		&entities.Subscription{},
		&entities.Order{},
		&entities.OrderLine{},
		&entities.Payment{},
		&entities.TopUp{},
		&entities.PurchaseRequest{},
		&entities.Notification{},
		&entities.Review{},
	}

	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Fatalf("Error migrating %T: %v", model, err)
			return err
		}
	}

	fmt.Println("Database migration complete")
	return nil
}
