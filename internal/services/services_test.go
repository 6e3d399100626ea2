package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.InitDatabase(database.DatabaseConfig{
		Driver:     "sqlite",
		Path:       filepath.Join(t.TempDir(), "test.sqlite"),
		MaxRetries: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, database.Migrate(db))
	return db
}

type fixture struct {
	restaurants      RestaurantService
	pizzas           PizzaService
	restaurantPizzas RestaurantPizzaService
}

func newFixture(t *testing.T) (fixture, *gorm.DB) {
	db := setupTestDB(t)
	return fixture{
		restaurants:      NewRestaurantService(db),
		pizzas:           NewPizzaService(db),
		restaurantPizzas: NewRestaurantPizzaService(db),
	}, db
}

func countRestaurantPizzas(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.RestaurantPizza{}).Count(&count).Error)
	return count
}

func TestListRestaurantsEmpty(t *testing.T) {
	f, _ := newFixture(t)

	restaurants, err := f.restaurants.ListRestaurants(context.Background())

	require.NoError(t, err)
	assert.Empty(t, restaurants)
}

func TestCreateRestaurantPizza(t *testing.T) {
	ctx := context.Background()
	f, db := newFixture(t)

	restaurant, err := f.restaurants.CreateRestaurant(ctx, models.Restaurant{Name: "A", Address: "1 St"})
	require.NoError(t, err)
	pizza, err := f.pizzas.CreatePizza(ctx, models.Pizza{Name: "Margherita", Ingredients: "Cheese"})
	require.NoError(t, err)

	t.Run("valid prices are stored", func(t *testing.T) {
		for _, price := range []int{1, 10, 30} {
			created, err := f.restaurantPizzas.CreateRestaurantPizza(ctx, price, restaurant.ID, pizza.ID)
			require.NoError(t, err)

			assert.NotZero(t, created.ID)
			assert.Equal(t, price, created.Price)
			require.NotNil(t, created.Restaurant)
			require.NotNil(t, created.Pizza)
			assert.Equal(t, "A", created.Restaurant.Name)
			assert.Equal(t, "Margherita", created.Pizza.Name)
		}
		assert.Equal(t, int64(3), countRestaurantPizzas(t, db))
	})

	t.Run("invalid input writes nothing", func(t *testing.T) {
		before := countRestaurantPizzas(t, db)

		testCases := []struct {
			name         string
			price        int
			restaurantID uint
			pizzaID      uint
		}{
			{name: "zero price", price: 0, restaurantID: restaurant.ID, pizzaID: pizza.ID},
			{name: "price above range", price: 31, restaurantID: restaurant.ID, pizzaID: pizza.ID},
			{name: "negative price", price: -5, restaurantID: restaurant.ID, pizzaID: pizza.ID},
			{name: "unknown restaurant", price: 10, restaurantID: 999, pizzaID: pizza.ID},
			{name: "unknown pizza", price: 10, restaurantID: restaurant.ID, pizzaID: 999},
			{name: "missing ids", price: 10},
		}
		for _, tt := range testCases {
			t.Run(tt.name, func(t *testing.T) {
				_, err := f.restaurantPizzas.CreateRestaurantPizza(ctx, tt.price, tt.restaurantID, tt.pizzaID)

				var validationErr *models.ValidationError
				require.True(t, errors.As(err, &validationErr), "expected a validation error, got %v", err)
			})
		}

		assert.Equal(t, before, countRestaurantPizzas(t, db))
	})
}

func TestPriceColumnRejectsOutOfRangeUpdates(t *testing.T) {
	ctx := context.Background()
	f, db := newFixture(t)

	restaurant, err := f.restaurants.CreateRestaurant(ctx, models.Restaurant{Name: "A", Address: "1 St"})
	require.NoError(t, err)
	pizza, err := f.pizzas.CreatePizza(ctx, models.Pizza{Name: "Margherita", Ingredients: "Cheese"})
	require.NoError(t, err)
	created, err := f.restaurantPizzas.CreateRestaurantPizza(ctx, 10, restaurant.ID, pizza.ID)
	require.NoError(t, err)

	storedPrice := func(t *testing.T) int {
		t.Helper()
		var stored models.RestaurantPizza
		require.NoError(t, db.First(&stored, created.ID).Error)
		return stored.Price
	}

	for _, price := range []int{0, 31, 99} {
		var row models.RestaurantPizza
		require.NoError(t, db.First(&row, created.ID).Error)

		err := db.Model(&row).Update("price", price).Error
		assert.Error(t, err, "price %d should be rejected", price)

		err = db.Exec("UPDATE restaurant_pizzas SET price = ? WHERE id = ?", price, created.ID).Error
		assert.Error(t, err, "price %d should be rejected without hooks", price)

		assert.Equal(t, 10, storedPrice(t))
	}

	var row models.RestaurantPizza
	require.NoError(t, db.First(&row, created.ID).Error)
	require.NoError(t, db.Model(&row).Update("price", 30).Error)
	assert.Equal(t, 30, storedPrice(t))
}

func TestGetRestaurant(t *testing.T) {
	ctx := context.Background()
	f, _ := newFixture(t)

	restaurant, err := f.restaurants.CreateRestaurant(ctx, models.Restaurant{Name: "A", Address: "1 St"})
	require.NoError(t, err)
	pizza, err := f.pizzas.CreatePizza(ctx, models.Pizza{Name: "Margherita", Ingredients: "Cheese"})
	require.NoError(t, err)
	_, err = f.restaurantPizzas.CreateRestaurantPizza(ctx, 10, restaurant.ID, pizza.ID)
	require.NoError(t, err)

	t.Run("loads nested associations", func(t *testing.T) {
		got, err := f.restaurants.GetRestaurant(ctx, restaurant.ID)
		require.NoError(t, err)

		require.Len(t, got.RestaurantPizzas, 1)
		association := got.RestaurantPizzas[0]
		assert.Equal(t, 10, association.Price)
		require.NotNil(t, association.Pizza)
		require.Len(t, association.Pizza.RestaurantPizzas, 1)
		require.NotNil(t, association.Pizza.RestaurantPizzas[0].Restaurant)
		assert.Equal(t, "A", association.Pizza.RestaurantPizzas[0].Restaurant.Name)
		assert.Equal(t, []string{"Margherita"}, pizzaNames(got.Pizzas()))
	})

	t.Run("missing restaurant", func(t *testing.T) {
		_, err := f.restaurants.GetRestaurant(ctx, 404)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestDeleteRestaurantCascades(t *testing.T) {
	ctx := context.Background()
	f, db := newFixture(t)

	kept, err := f.restaurants.CreateRestaurant(ctx, models.Restaurant{Name: "Kept", Address: "2 St"})
	require.NoError(t, err)
	doomed, err := f.restaurants.CreateRestaurant(ctx, models.Restaurant{Name: "Doomed", Address: "3 St"})
	require.NoError(t, err)

	var pizzaIDs []uint
	for _, name := range []string{"Emma", "Geri", "Melanie"} {
		pizza, err := f.pizzas.CreatePizza(ctx, models.Pizza{Name: name, Ingredients: "Dough"})
		require.NoError(t, err)
		pizzaIDs = append(pizzaIDs, pizza.ID)

		_, err = f.restaurantPizzas.CreateRestaurantPizza(ctx, 5, doomed.ID, pizza.ID)
		require.NoError(t, err)
	}
	_, err = f.restaurantPizzas.CreateRestaurantPizza(ctx, 7, kept.ID, pizzaIDs[0])
	require.NoError(t, err)
	require.Equal(t, int64(4), countRestaurantPizzas(t, db))

	require.NoError(t, f.restaurants.DeleteRestaurant(ctx, doomed.ID))

	assert.Equal(t, int64(1), countRestaurantPizzas(t, db), "exactly the deleted restaurant's associations are removed")

	pizzas, err := f.pizzas.ListPizzas(ctx)
	require.NoError(t, err)
	assert.Len(t, pizzas, 3, "pizzas are not removed with the restaurant")

	_, err = f.restaurants.GetRestaurant(ctx, doomed.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	t.Run("deleting twice reports not found", func(t *testing.T) {
		assert.ErrorIs(t, f.restaurants.DeleteRestaurant(ctx, doomed.ID), models.ErrNotFound)
	})
}

func TestDeletePizzaCascades(t *testing.T) {
	ctx := context.Background()
	f, db := newFixture(t)

	restaurant, err := f.restaurants.CreateRestaurant(ctx, models.Restaurant{Name: "A", Address: "1 St"})
	require.NoError(t, err)
	pizza, err := f.pizzas.CreatePizza(ctx, models.Pizza{Name: "Geri", Ingredients: "Pepperoni"})
	require.NoError(t, err)
	_, err = f.restaurantPizzas.CreateRestaurantPizza(ctx, 12, restaurant.ID, pizza.ID)
	require.NoError(t, err)

	require.NoError(t, f.pizzas.DeletePizza(ctx, pizza.ID))

	assert.Zero(t, countRestaurantPizzas(t, db))
	_, err = f.restaurants.GetRestaurant(ctx, restaurant.ID)
	assert.NoError(t, err, "the restaurant survives")
	assert.ErrorIs(t, f.pizzas.DeletePizza(ctx, pizza.ID), models.ErrNotFound)
}

func TestAccessors(t *testing.T) {
	ctx := context.Background()
	f, _ := newFixture(t)

	karen, err := f.restaurants.CreateRestaurant(ctx, models.Restaurant{Name: "Karen's Pizza Shack", Address: "address1"})
	require.NoError(t, err)
	kiki, err := f.restaurants.CreateRestaurant(ctx, models.Restaurant{Name: "Kiki's Pizza", Address: "address3"})
	require.NoError(t, err)
	emma, err := f.pizzas.CreatePizza(ctx, models.Pizza{Name: "Emma", Ingredients: "Cheese"})
	require.NoError(t, err)
	geri, err := f.pizzas.CreatePizza(ctx, models.Pizza{Name: "Geri", Ingredients: "Pepperoni"})
	require.NoError(t, err)

	for _, pair := range [][2]uint{{karen.ID, emma.ID}, {karen.ID, emma.ID}, {karen.ID, geri.ID}, {kiki.ID, geri.ID}} {
		_, err := f.restaurantPizzas.CreateRestaurantPizza(ctx, 9, pair[0], pair[1])
		require.NoError(t, err)
	}

	pizzas, err := f.restaurants.GetPizzasForRestaurant(ctx, karen.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Emma", "Geri"}, pizzaNames(pizzas))

	restaurants, err := f.pizzas.GetRestaurantsForPizza(ctx, geri.ID)
	require.NoError(t, err)
	require.Len(t, restaurants, 2)
	assert.Equal(t, "Karen's Pizza Shack", restaurants[0].Name)
	assert.Equal(t, "Kiki's Pizza", restaurants[1].Name)

	loaded, err := f.pizzas.GetPizza(ctx, geri.ID)
	require.NoError(t, err)
	assert.Len(t, loaded.Restaurants(), 2)

	_, err = f.restaurants.GetPizzasForRestaurant(ctx, 999)
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = f.pizzas.GetRestaurantsForPizza(ctx, 999)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestListRestaurantPizzas(t *testing.T) {
	ctx := context.Background()
	f, _ := newFixture(t)

	restaurant, err := f.restaurants.CreateRestaurant(ctx, models.Restaurant{Name: "A", Address: "1 St"})
	require.NoError(t, err)
	pizza, err := f.pizzas.CreatePizza(ctx, models.Pizza{Name: "Emma", Ingredients: "Cheese"})
	require.NoError(t, err)
	_, err = f.restaurantPizzas.CreateRestaurantPizza(ctx, 3, restaurant.ID, pizza.ID)
	require.NoError(t, err)

	restaurantPizzas, err := f.restaurantPizzas.ListRestaurantPizzas(ctx)
	require.NoError(t, err)
	require.Len(t, restaurantPizzas, 1)
	require.NotNil(t, restaurantPizzas[0].Restaurant)
	require.NotNil(t, restaurantPizzas[0].Pizza)
	assert.Len(t, restaurantPizzas[0].Pizza.RestaurantPizzas, 1)
}

func pizzaNames(pizzas []models.Pizza) []string {
	names := make([]string, 0, len(pizzas))
	for _, pizza := range pizzas {
		names = append(names, pizza.Name)
	}
	return names
}
