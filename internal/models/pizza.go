package models

import "github.com/samber/lo"

// Pizza represents a pizza with its properties
type Pizza struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`

	RestaurantPizzas []RestaurantPizza `gorm:"foreignKey:PizzaID;constraint:OnDelete:CASCADE" json:"restaurant_pizzas,omitempty"`
}

func (Pizza) TableName() string {
	return "pizzas"
}

// Restaurants returns the restaurants reachable through the loaded associations
func (p *Pizza) Restaurants() []Restaurant {
	return lo.FilterMap(p.RestaurantPizzas, func(rp RestaurantPizza, _ int) (Restaurant, bool) {
		if rp.Restaurant == nil {
			return Restaurant{}, false
		}
		return *rp.Restaurant, true
	})
}

// AddRestaurant builds a new association between the pizza and the restaurant
// and appends it to the pizza's associations. Nothing is persisted.
func (p *Pizza) AddRestaurant(restaurant *Restaurant, price int) (*RestaurantPizza, error) {
	restaurantPizza, err := NewRestaurantPizza(price, restaurant.ID, p.ID)
	if err != nil {
		return nil, err
	}
	restaurantPizza.Restaurant = restaurant
	p.RestaurantPizzas = append(p.RestaurantPizzas, *restaurantPizza)
	return restaurantPizza, nil
}
