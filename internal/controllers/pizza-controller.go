package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/serializer"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
)

// PizzaController handles HTTP requests related to pizzas
type PizzaController interface {
	// GetAllPizzas retrieves all pizzas
	GetAllPizzas(c *gin.Context)
	// GetPizzaByID retrieves a pizza with the restaurants selling it
	GetPizzaByID(c *gin.Context)
	// CreatePizza creates a new pizza
	CreatePizza(c *gin.Context)
	// DeletePizza deletes a pizza by its ID
	DeletePizza(c *gin.Context)
	// GetPizzaRestaurants lists the restaurants serving a pizza
	GetPizzaRestaurants(c *gin.Context)
}

type pizzaController struct {
	service services.PizzaService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService) PizzaController {
	return &pizzaController{service: service}
}

type createPizzaRequest struct {
	Name        string `json:"name" binding:"required"`
	Ingredients string `json:"ingredients"`
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Description Get a list of all pizzas (id, name, ingredients)
// @Tags pizzas
// @Produce json
// @Success 200 {array} models.Pizza
// @Failure 500 {object} models.ErrorResponse
// @Router /pizzas [get]
func (c *pizzaController) GetAllPizzas(ctx *gin.Context) {
	pizzas, err := c.service.ListPizzas(ctx.Request.Context())
	if err != nil {
		respondInternalError(ctx, "Failed to retrieve pizzas", err)
		return
	}
	ctx.JSON(http.StatusOK, serializer.Pizzas(pizzas, "restaurant_pizzas"))
}

// GetPizzaByID godoc
// @Summary Get pizza by ID
// @Description Get a pizza with the restaurants selling it and their prices
// @Tags pizzas
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {object} models.Pizza
// @Failure 404 {object} models.ErrorResponse
// @Router /pizzas/{id} [get]
func (c *pizzaController) GetPizzaByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		respondNotFound(ctx, models.MsgPizzaNotFound)
		return
	}

	pizza, err := c.service.GetPizza(ctx.Request.Context(), id)
	if err != nil {
		respondLookupError(ctx, err, models.MsgPizzaNotFound, "Failed to retrieve pizza")
		return
	}
	ctx.JSON(http.StatusOK, serializer.Pizza(&pizza))
}

// CreatePizza godoc
// @Summary Create a new pizza
// @Description Create a new pizza with the input payload
// @Tags pizzas
// @Accept json
// @Produce json
// @Param pizza body createPizzaRequest true "Pizza object"
// @Success 201 {object} models.Pizza
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /pizzas [post]
func (c *pizzaController) CreatePizza(ctx *gin.Context) {
	var request createPizzaRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondValidationError(ctx, err)
		return
	}

	pizza, err := c.service.CreatePizza(ctx.Request.Context(), models.Pizza{
		Name:        request.Name,
		Ingredients: request.Ingredients,
	})
	if err != nil {
		respondInternalError(ctx, "Failed to create pizza", err)
		return
	}
	ctx.JSON(http.StatusCreated, serializer.Pizza(&pizza))
}

// DeletePizza godoc
// @Summary Delete a pizza
// @Description Delete a pizza and every price referencing it
// @Tags pizzas
// @Param id path int true "Pizza ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /pizzas/{id} [delete]
func (c *pizzaController) DeletePizza(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		respondNotFound(ctx, models.MsgPizzaNotFound)
		return
	}

	if err := c.service.DeletePizza(ctx.Request.Context(), id); err != nil {
		respondLookupError(ctx, err, models.MsgPizzaNotFound, "Failed to delete pizza")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetPizzaRestaurants godoc
// @Summary Get the restaurants serving a pizza
// @Tags pizzas
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {array} models.Restaurant
// @Failure 404 {object} models.ErrorResponse
// @Router /pizzas/{id}/restaurants [get]
func (c *pizzaController) GetPizzaRestaurants(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		respondNotFound(ctx, models.MsgPizzaNotFound)
		return
	}

	restaurants, err := c.service.GetRestaurantsForPizza(ctx.Request.Context(), id)
	if err != nil {
		respondLookupError(ctx, err, models.MsgPizzaNotFound, "Failed to retrieve restaurants")
		return
	}
	ctx.JSON(http.StatusOK, serializer.Restaurants(restaurants, "restaurant_pizzas"))
}
