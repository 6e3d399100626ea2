package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRestaurantPizza(t *testing.T) {
	testCases := []struct {
		name         string
		price        int
		restaurantID uint
		pizzaID      uint
		wantErr      bool
		wantMessages []string
	}{
		{name: "lowest valid price", price: 1, restaurantID: 1, pizzaID: 1},
		{name: "highest valid price", price: 30, restaurantID: 1, pizzaID: 2},
		{name: "zero price", price: 0, restaurantID: 1, pizzaID: 1, wantErr: true, wantMessages: []string{"price must be between 1 and 30"}},
		{name: "price above range", price: 31, restaurantID: 1, pizzaID: 1, wantErr: true, wantMessages: []string{"price must be between 1 and 30"}},
		{name: "negative price", price: -5, restaurantID: 1, pizzaID: 1, wantErr: true, wantMessages: []string{"price must be between 1 and 30"}},
		{
			name:         "missing foreign keys",
			price:        10,
			wantErr:      true,
			wantMessages: []string{"restaurant_id is required", "pizza_id is required"},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			restaurantPizza, err := NewRestaurantPizza(tt.price, tt.restaurantID, tt.pizzaID)

			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tt.price, restaurantPizza.Price)
				assert.Equal(t, tt.restaurantID, restaurantPizza.RestaurantID)
				assert.Equal(t, tt.pizzaID, restaurantPizza.PizzaID)
				return
			}

			require.Error(t, err)
			assert.Nil(t, restaurantPizza)
			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.ElementsMatch(t, tt.wantMessages, validationErr.Errors)
		})
	}
}

func TestSetPrice(t *testing.T) {
	restaurantPizza := &RestaurantPizza{Price: 10, RestaurantID: 1, PizzaID: 1}

	require.NoError(t, restaurantPizza.SetPrice(25))
	assert.Equal(t, 25, restaurantPizza.Price)

	err := restaurantPizza.SetPrice(31)
	require.Error(t, err)
	assert.Equal(t, 25, restaurantPizza.Price, "invalid price must not be applied")
}

func TestBeforeSaveRejectsInvalidPrice(t *testing.T) {
	restaurantPizza := &RestaurantPizza{Price: 45, RestaurantID: 1, PizzaID: 1}

	err := restaurantPizza.BeforeSave(nil)

	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationError("first", "second")
	assert.Equal(t, "validation failed: first; second", err.Error())
}

func TestAssociationFactories(t *testing.T) {
	restaurant := &Restaurant{ID: 1, Name: "Karen's Pizza Shack", Address: "address1"}
	pizza := &Pizza{ID: 2, Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"}

	t.Run("restaurant adds pizza", func(t *testing.T) {
		restaurantPizza, err := restaurant.AddPizza(pizza, 12)
		require.NoError(t, err)

		assert.Equal(t, uint(1), restaurantPizza.RestaurantID)
		assert.Equal(t, uint(2), restaurantPizza.PizzaID)
		assert.Same(t, pizza, restaurantPizza.Pizza)
		require.Len(t, restaurant.Pizzas(), 1)
		assert.Equal(t, "Emma", restaurant.Pizzas()[0].Name)
	})

	t.Run("pizza adds restaurant", func(t *testing.T) {
		restaurantPizza, err := pizza.AddRestaurant(restaurant, 7)
		require.NoError(t, err)

		assert.Same(t, restaurant, restaurantPizza.Restaurant)
		require.Len(t, pizza.Restaurants(), 1)
		assert.Equal(t, "Karen's Pizza Shack", pizza.Restaurants()[0].Name)
	})

	t.Run("invalid price leaves associations untouched", func(t *testing.T) {
		before := len(restaurant.RestaurantPizzas)
		_, err := restaurant.AddPizza(pizza, 0)
		require.Error(t, err)
		assert.Len(t, restaurant.RestaurantPizzas, before)
	})
}

func TestAccessorsSkipUnloadedRelations(t *testing.T) {
	restaurant := Restaurant{RestaurantPizzas: []RestaurantPizza{{ID: 1, Price: 5, RestaurantID: 1, PizzaID: 3}}}
	assert.Empty(t, restaurant.Pizzas())

	pizza := Pizza{RestaurantPizzas: []RestaurantPizza{{ID: 1, Price: 5, RestaurantID: 1, PizzaID: 3}}}
	assert.Empty(t, pizza.Restaurants())
}
