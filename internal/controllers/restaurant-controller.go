package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/serializer"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantController handles HTTP requests related to restaurants
type RestaurantController interface {
	// GetAllRestaurants lists restaurants without their associations
	GetAllRestaurants(c *gin.Context)
	// GetRestaurantByID retrieves a restaurant with its nested associations
	GetRestaurantByID(c *gin.Context)
	// CreateRestaurant creates a new restaurant
	CreateRestaurant(c *gin.Context)
	// DeleteRestaurant deletes a restaurant and its associations
	DeleteRestaurant(c *gin.Context)
	// GetRestaurantPizzas lists the pizzas a restaurant serves
	GetRestaurantPizzas(c *gin.Context)
}

type restaurantController struct {
	service services.RestaurantService
}

// NewRestaurantController creates a new instance of RestaurantController
func NewRestaurantController(service services.RestaurantService) RestaurantController {
	return &restaurantController{service: service}
}

type createRestaurantRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}

// GetAllRestaurants godoc
// @Summary Get all restaurants
// @Description Get a list of all restaurants (id, name, address)
// @Tags restaurants
// @Produce json
// @Success 200 {array} models.Restaurant
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants [get]
func (c *restaurantController) GetAllRestaurants(ctx *gin.Context) {
	restaurants, err := c.service.ListRestaurants(ctx.Request.Context())
	if err != nil {
		respondInternalError(ctx, "Failed to retrieve restaurants", err)
		return
	}
	ctx.JSON(http.StatusOK, serializer.Restaurants(restaurants, "restaurant_pizzas"))
}

// GetRestaurantByID godoc
// @Summary Get restaurant by ID
// @Description Get a restaurant with its pizzas and prices
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.Restaurant
// @Failure 404 {object} models.ErrorResponse
// @Router /restaurants/{id} [get]
func (c *restaurantController) GetRestaurantByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		respondNotFound(ctx, models.MsgRestaurantNotFound)
		return
	}

	restaurant, err := c.service.GetRestaurant(ctx.Request.Context(), id)
	if err != nil {
		respondLookupError(ctx, err, models.MsgRestaurantNotFound, "Failed to retrieve restaurant")
		return
	}
	ctx.JSON(http.StatusOK, serializer.Restaurant(&restaurant))
}

// CreateRestaurant godoc
// @Summary Create a new restaurant
// @Description Create a new restaurant with the input payload
// @Tags restaurants
// @Accept json
// @Produce json
// @Param restaurant body createRestaurantRequest true "Restaurant object"
// @Success 201 {object} models.Restaurant
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants [post]
func (c *restaurantController) CreateRestaurant(ctx *gin.Context) {
	var request createRestaurantRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondValidationError(ctx, err)
		return
	}

	restaurant, err := c.service.CreateRestaurant(ctx.Request.Context(), models.Restaurant{
		Name:    request.Name,
		Address: request.Address,
	})
	if err != nil {
		respondInternalError(ctx, "Failed to create restaurant", err)
		return
	}
	ctx.JSON(http.StatusCreated, serializer.Restaurant(&restaurant))
}

// DeleteRestaurant godoc
// @Summary Delete a restaurant
// @Description Delete a restaurant and every price it defines
// @Tags restaurants
// @Param id path int true "Restaurant ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants/{id} [delete]
func (c *restaurantController) DeleteRestaurant(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		respondNotFound(ctx, models.MsgRestaurantNotFound)
		return
	}

	if err := c.service.DeleteRestaurant(ctx.Request.Context(), id); err != nil {
		respondLookupError(ctx, err, models.MsgRestaurantNotFound, "Failed to delete restaurant")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetRestaurantPizzas godoc
// @Summary Get the pizzas of a restaurant
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {array} models.Pizza
// @Failure 404 {object} models.ErrorResponse
// @Router /restaurants/{id}/pizzas [get]
func (c *restaurantController) GetRestaurantPizzas(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		respondNotFound(ctx, models.MsgRestaurantNotFound)
		return
	}

	pizzas, err := c.service.GetPizzasForRestaurant(ctx.Request.Context(), id)
	if err != nil {
		respondLookupError(ctx, err, models.MsgRestaurantNotFound, "Failed to retrieve pizzas")
		return
	}
	ctx.JSON(http.StatusOK, serializer.Pizzas(pizzas, "restaurant_pizzas"))
}
