package models

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// Price bounds for a pizza sold by a restaurant
const (
	MinPrice = 1
	MaxPrice = 30
)

var validate = validator.New()

// RestaurantPizza is the priced association between a restaurant and a pizza
type RestaurantPizza struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	Price        int  `gorm:"not null;check:chk_restaurant_pizzas_price,price >= 1 AND price <= 30" json:"price" validate:"min=1,max=30"`
	RestaurantID uint `gorm:"not null;index" json:"restaurant_id" validate:"required"`
	PizzaID      uint `gorm:"not null;index" json:"pizza_id" validate:"required"`

	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty" validate:"-"`
	Pizza      *Pizza      `gorm:"foreignKey:PizzaID" json:"pizza,omitempty" validate:"-"`
}

func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}

// NewRestaurantPizza returns a validated association row ready to be persisted
func NewRestaurantPizza(price int, restaurantID, pizzaID uint) (*RestaurantPizza, error) {
	restaurantPizza := &RestaurantPizza{
		Price:        price,
		RestaurantID: restaurantID,
		PizzaID:      pizzaID,
	}
	if err := restaurantPizza.Validate(); err != nil {
		return nil, err
	}
	return restaurantPizza, nil
}

// ValidatePrice checks that price lies within [MinPrice, MaxPrice]
func ValidatePrice(price int) error {
	if price < MinPrice || price > MaxPrice {
		return NewValidationError(priceMessage())
	}
	return nil
}

// SetPrice changes the price, leaving it untouched when the new value is invalid
func (rp *RestaurantPizza) SetPrice(price int) error {
	if err := ValidatePrice(price); err != nil {
		return err
	}
	rp.Price = price
	return nil
}

// Validate checks every field of the association and returns a *ValidationError
// listing all the violations found.
func (rp *RestaurantPizza) Validate() error {
	err := validate.Struct(rp)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("validating restaurant pizza: %w", err)
	}

	return NewValidationError(lo.Map(fieldErrors, func(fe validator.FieldError, _ int) string {
		return describeFieldError(fe)
	})...)
}

// BeforeSave validates the struct being saved. Single column updates skip
// the struct, the price check constraint covers those.
func (rp *RestaurantPizza) BeforeSave(tx *gorm.DB) error {
	return rp.Validate()
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Field() {
	case "Price":
		return priceMessage()
	case "RestaurantID":
		return "restaurant_id is required"
	case "PizzaID":
		return "pizza_id is required"
	default:
		return fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag())
	}
}

func priceMessage() string {
	return fmt.Sprintf("price must be between %d and %d", MinPrice, MaxPrice)
}
