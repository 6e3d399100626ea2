package services

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
)

// PizzaService provides methods to interact with the pizza database
type PizzaService interface {
	// ListPizzas retrieves all pizzas from the database
	ListPizzas(ctx context.Context) ([]models.Pizza, error)
	// GetPizza retrieves a pizza by its ID with its associations
	GetPizza(ctx context.Context, id uint) (models.Pizza, error)
	// CreatePizza creates a new pizza in the database
	CreatePizza(ctx context.Context, pizza models.Pizza) (models.Pizza, error)
	// DeletePizza deletes a pizza and its associations by its ID
	DeletePizza(ctx context.Context, id uint) error
	// GetRestaurantsForPizza retrieves the distinct restaurants serving a pizza
	GetRestaurantsForPizza(ctx context.Context, id uint) ([]models.Restaurant, error)
}

// pizzaService is the implementation of the PizzaService interface
type pizzaService struct {
	db *gorm.DB
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{db: db}
}

func (s *pizzaService) ListPizzas(ctx context.Context) ([]models.Pizza, error) {
	var pizzas []models.Pizza
	if err := s.db.WithContext(ctx).Order("id").Find(&pizzas).Error; err != nil {
		return nil, fmt.Errorf("failed to list pizzas: %w", err)
	}
	return pizzas, nil
}

func (s *pizzaService) GetPizza(ctx context.Context, id uint) (models.Pizza, error) {
	var pizza models.Pizza
	if err := s.db.WithContext(ctx).Preload("RestaurantPizzas.Restaurant").First(&pizza, id).Error; err != nil {
		return models.Pizza{}, lookupError("pizza", id, err)
	}
	return pizza, nil
}

func (s *pizzaService) CreatePizza(ctx context.Context, pizza models.Pizza) (models.Pizza, error) {
	pizza.ID = 0
	pizza.RestaurantPizzas = nil
	if err := s.db.WithContext(ctx).Create(&pizza).Error; err != nil {
		return models.Pizza{}, fmt.Errorf("failed to create pizza: %w", err)
	}
	return pizza, nil
}

func (s *pizzaService) DeletePizza(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pizza models.Pizza
		if err := tx.First(&pizza, id).Error; err != nil {
			return lookupError("pizza", id, err)
		}
		if err := tx.Where("pizza_id = ?", id).Delete(&models.RestaurantPizza{}).Error; err != nil {
			return fmt.Errorf("failed to delete associations of pizza %d: %w", id, err)
		}
		if err := tx.Delete(&pizza).Error; err != nil {
			return fmt.Errorf("failed to delete pizza %d: %w", id, err)
		}
		return nil
	})
}

func (s *pizzaService) GetRestaurantsForPizza(ctx context.Context, id uint) ([]models.Restaurant, error) {
	db := s.db.WithContext(ctx)
	if err := db.First(&models.Pizza{}, id).Error; err != nil {
		return nil, lookupError("pizza", id, err)
	}

	query, args, err := squirrel.Select("restaurants.id", "restaurants.name", "restaurants.address").
		Distinct().
		From("restaurants").
		Join("restaurant_pizzas ON restaurant_pizzas.restaurant_id = restaurants.id").
		Where(squirrel.Eq{"restaurant_pizzas.pizza_id": id}).
		OrderBy("restaurants.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build restaurants query: %w", err)
	}

	var restaurants []models.Restaurant
	if err := db.Raw(query, args...).Scan(&restaurants).Error; err != nil {
		return nil, fmt.Errorf("failed to list restaurants of pizza %d: %w", id, err)
	}
	return restaurants, nil
}
