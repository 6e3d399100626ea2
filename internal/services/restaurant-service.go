package services

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
)

// restaurantDetailPreload loads everything the restaurant serializer renders
const restaurantDetailPreload = "RestaurantPizzas.Pizza.RestaurantPizzas.Restaurant"

// RestaurantService provides methods to interact with the restaurant database
type RestaurantService interface {
	// ListRestaurants retrieves all restaurants without their associations
	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)
	// GetRestaurant retrieves a restaurant with its nested associations
	GetRestaurant(ctx context.Context, id uint) (models.Restaurant, error)
	// CreateRestaurant stores a new restaurant
	CreateRestaurant(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error)
	// DeleteRestaurant deletes a restaurant together with its associations
	DeleteRestaurant(ctx context.Context, id uint) error
	// GetPizzasForRestaurant retrieves the distinct pizzas a restaurant serves
	GetPizzasForRestaurant(ctx context.Context, id uint) ([]models.Pizza, error)
}

// restaurantService is the implementation of the RestaurantService interface
type restaurantService struct {
	db *gorm.DB
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{db: db}
}

func (s *restaurantService) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.WithContext(ctx).Order("id").Find(&restaurants).Error; err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}
	return restaurants, nil
}

func (s *restaurantService) GetRestaurant(ctx context.Context, id uint) (models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := s.db.WithContext(ctx).Preload(restaurantDetailPreload).First(&restaurant, id).Error; err != nil {
		return models.Restaurant{}, lookupError("restaurant", id, err)
	}
	return restaurant, nil
}

func (s *restaurantService) CreateRestaurant(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error) {
	restaurant.ID = 0
	restaurant.RestaurantPizzas = nil
	if err := s.db.WithContext(ctx).Create(&restaurant).Error; err != nil {
		return models.Restaurant{}, fmt.Errorf("failed to create restaurant: %w", err)
	}
	return restaurant, nil
}

func (s *restaurantService) DeleteRestaurant(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, id).Error; err != nil {
			return lookupError("restaurant", id, err)
		}
		if err := tx.Where("restaurant_id = ?", id).Delete(&models.RestaurantPizza{}).Error; err != nil {
			return fmt.Errorf("failed to delete associations of restaurant %d: %w", id, err)
		}
		if err := tx.Delete(&restaurant).Error; err != nil {
			return fmt.Errorf("failed to delete restaurant %d: %w", id, err)
		}
		return nil
	})
}

func (s *restaurantService) GetPizzasForRestaurant(ctx context.Context, id uint) ([]models.Pizza, error) {
	db := s.db.WithContext(ctx)
	if err := db.First(&models.Restaurant{}, id).Error; err != nil {
		return nil, lookupError("restaurant", id, err)
	}

	query, args, err := squirrel.Select("pizzas.id", "pizzas.name", "pizzas.ingredients").
		Distinct().
		From("pizzas").
		Join("restaurant_pizzas ON restaurant_pizzas.pizza_id = pizzas.id").
		Where(squirrel.Eq{"restaurant_pizzas.restaurant_id": id}).
		OrderBy("pizzas.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build pizzas query: %w", err)
	}

	var pizzas []models.Pizza
	if err := db.Raw(query, args...).Scan(&pizzas).Error; err != nil {
		return nil, fmt.Errorf("failed to list pizzas of restaurant %d: %w", id, err)
	}
	return pizzas, nil
}
