package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/serializer"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantPizzaController handles HTTP requests related to pizza prices
type RestaurantPizzaController interface {
	// GetAllRestaurantPizzas lists every association fully serialized
	GetAllRestaurantPizzas(c *gin.Context)
	// CreateRestaurantPizza prices a pizza at a restaurant
	CreateRestaurantPizza(c *gin.Context)
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService) RestaurantPizzaController {
	return &restaurantPizzaController{service: service}
}

// Pointers tell a missing field apart from a zero value
type createRestaurantPizzaRequest struct {
	Price        *int  `json:"price" binding:"required"`
	RestaurantID *uint `json:"restaurant_id" binding:"required"`
	PizzaID      *uint `json:"pizza_id" binding:"required"`
}

// GetAllRestaurantPizzas godoc
// @Summary Get all restaurant pizzas
// @Description Get every price with its restaurant and pizza
// @Tags restaurant_pizzas
// @Produce json
// @Success 200 {array} models.RestaurantPizza
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurant_pizzas [get]
func (c *restaurantPizzaController) GetAllRestaurantPizzas(ctx *gin.Context) {
	restaurantPizzas, err := c.service.ListRestaurantPizzas(ctx.Request.Context())
	if err != nil {
		respondInternalError(ctx, "Failed to retrieve restaurant pizzas", err)
		return
	}
	ctx.JSON(http.StatusOK, serializer.RestaurantPizzas(restaurantPizzas))
}

// CreateRestaurantPizza godoc
// @Summary Create a restaurant pizza
// @Description Price an existing pizza at an existing restaurant. The price must be between 1 and 30.
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body createRestaurantPizzaRequest true "Price, restaurant and pizza"
// @Success 201 {object} models.RestaurantPizza
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var request createRestaurantPizzaRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondValidationError(ctx, err)
		return
	}

	restaurantPizza, err := c.service.CreateRestaurantPizza(ctx.Request.Context(), *request.Price, *request.RestaurantID, *request.PizzaID)
	if err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			respondValidationError(ctx, err)
			return
		}
		respondInternalError(ctx, "Failed to create restaurant pizza", err)
		return
	}
	ctx.JSON(http.StatusCreated, serializer.RestaurantPizza(&restaurantPizza))
}
