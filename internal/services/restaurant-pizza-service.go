package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
)

// RestaurantPizzaService provides methods to interact with the priced
// restaurant/pizza associations
type RestaurantPizzaService interface {
	// ListRestaurantPizzas retrieves all associations with their parents loaded
	ListRestaurantPizzas(ctx context.Context) ([]models.RestaurantPizza, error)
	// CreateRestaurantPizza validates and stores a new association.
	// Invalid input is reported as a *models.ValidationError and nothing is written.
	CreateRestaurantPizza(ctx context.Context, price int, restaurantID, pizzaID uint) (models.RestaurantPizza, error)
}

type restaurantPizzaService struct {
	db *gorm.DB
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db}
}

// withParents loads everything the association serializer renders
func withParents(db *gorm.DB) *gorm.DB {
	return db.Preload("Restaurant").Preload("Pizza.RestaurantPizzas.Restaurant")
}

func (s *restaurantPizzaService) ListRestaurantPizzas(ctx context.Context) ([]models.RestaurantPizza, error) {
	var restaurantPizzas []models.RestaurantPizza
	if err := withParents(s.db.WithContext(ctx)).Order("id").Find(&restaurantPizzas).Error; err != nil {
		return nil, fmt.Errorf("failed to list restaurant pizzas: %w", err)
	}
	return restaurantPizzas, nil
}

func (s *restaurantPizzaService) CreateRestaurantPizza(ctx context.Context, price int, restaurantID, pizzaID uint) (models.RestaurantPizza, error) {
	restaurantPizza, err := models.NewRestaurantPizza(price, restaurantID, pizzaID)
	if err != nil {
		return models.RestaurantPizza{}, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &models.Restaurant{}, "restaurant_id", restaurantID); err != nil {
			return err
		}
		if err := requireRow(tx, &models.Pizza{}, "pizza_id", pizzaID); err != nil {
			return err
		}
		if err := tx.Create(restaurantPizza).Error; err != nil {
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return models.NewValidationError("restaurant_id and pizza_id must reference existing records")
			}
			return fmt.Errorf("failed to create restaurant pizza: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.RestaurantPizza{}, err
	}

	var created models.RestaurantPizza
	if err := withParents(s.db.WithContext(ctx)).First(&created, restaurantPizza.ID).Error; err != nil {
		return models.RestaurantPizza{}, lookupError("restaurant pizza", restaurantPizza.ID, err)
	}
	return created, nil
}
