package database

import (
	"fmt"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedIfEmpty seeds the sample data only when no restaurant exists yet.
// It reports whether seeding happened.
func SeedIfEmpty(db *gorm.DB) (bool, error) {
	var count int64
	if err := db.Model(&models.Restaurant{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count restaurants: %w", err)
	}
	if count > 0 {
		log.Info("Database already seeded with initial data")
		return false, nil
	}

	log.Info("Database is empty, seeding initial data")
	return true, Seed(db)
}

// Seed inserts sample restaurants, pizzas and prices in a single transaction
func Seed(db *gorm.DB) error {
	restaurants := []*models.Restaurant{
		{Name: "Karen's Pizza Shack", Address: "address1"},
		{Name: "Sanjay's Pizza", Address: "address2"},
		{Name: "Kiki's Pizza", Address: "address3"},
	}
	pizzas := []*models.Pizza{
		{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
		{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
		{Name: "Melanie", Ingredients: "Dough, Sauce, Ricotta, Red peppers, Mustard"},
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(restaurants).Error; err != nil {
			return fmt.Errorf("failed to seed restaurants: %w", err)
		}
		if err := tx.Create(pizzas).Error; err != nil {
			return fmt.Errorf("failed to seed pizzas: %w", err)
		}

		prices := []int{1, 4, 5}
		for i, price := range prices {
			restaurantPizza, err := restaurants[i].AddPizza(pizzas[i], price)
			if err != nil {
				return err
			}
			// the pizza is already stored, only the association row is new
			restaurantPizza.Pizza = nil
			if err := tx.Create(restaurantPizza).Error; err != nil {
				return fmt.Errorf("failed to seed restaurant pizzas: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"restaurants":       len(restaurants),
		"pizzas":            len(pizzas),
		"restaurant_pizzas": 3,
	}).Info("Database seeded successfully")
	return nil
}
