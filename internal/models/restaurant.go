package models

import "github.com/samber/lo"

// Restaurant is a place that serves pizzas at a given price
type Restaurant struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`

	// RestaurantPizzas are owned by the restaurant and removed together with it
	RestaurantPizzas []RestaurantPizza `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"restaurant_pizzas,omitempty"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}

// Pizzas returns the pizzas reachable through the loaded associations
func (r *Restaurant) Pizzas() []Pizza {
	return lo.FilterMap(r.RestaurantPizzas, func(rp RestaurantPizza, _ int) (Pizza, bool) {
		if rp.Pizza == nil {
			return Pizza{}, false
		}
		return *rp.Pizza, true
	})
}

// AddPizza builds a new association between the restaurant and the pizza and
// appends it to the restaurant's associations. Nothing is persisted.
func (r *Restaurant) AddPizza(pizza *Pizza, price int) (*RestaurantPizza, error) {
	restaurantPizza, err := NewRestaurantPizza(price, r.ID, pizza.ID)
	if err != nil {
		return nil, err
	}
	restaurantPizza.Pizza = pizza
	r.RestaurantPizzas = append(r.RestaurantPizzas, *restaurantPizza)
	return restaurantPizza, nil
}
