package controllers

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the restaurant, pizza and restaurant pizza endpoints
func RegisterRoutes(router gin.IRouter, restaurants RestaurantController, pizzas PizzaController, restaurantPizzas RestaurantPizzaController) {
	restaurantRoutes := router.Group("/restaurants")
	{
		restaurantRoutes.GET("", restaurants.GetAllRestaurants)
		restaurantRoutes.POST("", restaurants.CreateRestaurant)
		restaurantRoutes.GET("/:id", restaurants.GetRestaurantByID)
		restaurantRoutes.DELETE("/:id", restaurants.DeleteRestaurant)
		restaurantRoutes.GET("/:id/pizzas", restaurants.GetRestaurantPizzas)
	}

	pizzaRoutes := router.Group("/pizzas")
	{
		pizzaRoutes.GET("", pizzas.GetAllPizzas)
		pizzaRoutes.POST("", pizzas.CreatePizza)
		pizzaRoutes.GET("/:id", pizzas.GetPizzaByID)
		pizzaRoutes.DELETE("/:id", pizzas.DeletePizza)
		pizzaRoutes.GET("/:id/restaurants", pizzas.GetPizzaRestaurants)
	}

	restaurantPizzaRoutes := router.Group("/restaurant_pizzas")
	{
		restaurantPizzaRoutes.GET("", restaurantPizzas.GetAllRestaurantPizzas)
		restaurantPizzaRoutes.POST("", restaurantPizzas.CreateRestaurantPizza)
	}
}
