// Package serializer turns entity graphs into JSON-safe maps.
//
// Every entity type has a fixed set of excluded dotted paths that removes the
// back-references closing a cycle. Those rules are merged with the caller's
// exclusions at every nesting level, so serialization always terminates.
// Excluding a bare field name drops the field entirely.
package serializer

import (
	"strings"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/samber/lo"
)

// Rules is a list of dotted field paths left out of a serialized entity
type Rules []string

var (
	RestaurantRules = Rules{"restaurant_pizzas.restaurant"}
	PizzaRules      = Rules{"restaurant_pizzas.pizza"}
	// pizza.restaurant_pizzas is deliberately not excluded here
	RestaurantPizzaRules = Rules{"restaurant.restaurant_pizzas"}
)

type exclusions map[string]struct{}

func newExclusions(rules Rules, paths []string) exclusions {
	ex := make(exclusions, len(rules)+len(paths))
	for _, path := range rules {
		ex[path] = struct{}{}
	}
	for _, path := range paths {
		ex[path] = struct{}{}
	}
	return ex
}

func (ex exclusions) excludes(field string) bool {
	_, ok := ex[field]
	return ok
}

// under returns the exclusions that apply to the value nested at field
func (ex exclusions) under(field string) []string {
	prefix := field + "."
	var nested []string
	for path := range ex {
		if rest, ok := strings.CutPrefix(path, prefix); ok {
			nested = append(nested, rest)
		}
	}
	return nested
}

// Restaurant serializes a restaurant and its loaded associations
func Restaurant(r *models.Restaurant, exclude ...string) map[string]any {
	if r == nil {
		return nil
	}
	ex := newExclusions(RestaurantRules, exclude)

	out := map[string]any{
		"id":      r.ID,
		"name":    r.Name,
		"address": r.Address,
	}
	if !ex.excludes("restaurant_pizzas") {
		out["restaurant_pizzas"] = restaurantPizzaList(r.RestaurantPizzas, ex.under("restaurant_pizzas"))
	}
	return out
}

// Pizza serializes a pizza and its loaded associations
func Pizza(p *models.Pizza, exclude ...string) map[string]any {
	if p == nil {
		return nil
	}
	ex := newExclusions(PizzaRules, exclude)

	out := map[string]any{
		"id":          p.ID,
		"name":        p.Name,
		"ingredients": p.Ingredients,
	}
	if !ex.excludes("restaurant_pizzas") {
		out["restaurant_pizzas"] = restaurantPizzaList(p.RestaurantPizzas, ex.under("restaurant_pizzas"))
	}
	return out
}

// RestaurantPizza serializes an association together with its loaded parents
func RestaurantPizza(rp *models.RestaurantPizza, exclude ...string) map[string]any {
	if rp == nil {
		return nil
	}
	ex := newExclusions(RestaurantPizzaRules, exclude)

	out := map[string]any{
		"id":            rp.ID,
		"price":         rp.Price,
		"restaurant_id": rp.RestaurantID,
		"pizza_id":      rp.PizzaID,
	}
	if !ex.excludes("restaurant") {
		out["restaurant"] = Restaurant(rp.Restaurant, ex.under("restaurant")...)
	}
	if !ex.excludes("pizza") {
		out["pizza"] = Pizza(rp.Pizza, ex.under("pizza")...)
	}
	return out
}

// Restaurants serializes every restaurant with the same exclusions
func Restaurants(restaurants []models.Restaurant, exclude ...string) []map[string]any {
	return lo.Map(restaurants, func(r models.Restaurant, _ int) map[string]any {
		return Restaurant(&r, exclude...)
	})
}

// Pizzas serializes every pizza with the same exclusions
func Pizzas(pizzas []models.Pizza, exclude ...string) []map[string]any {
	return lo.Map(pizzas, func(p models.Pizza, _ int) map[string]any {
		return Pizza(&p, exclude...)
	})
}

// RestaurantPizzas serializes every association with the same exclusions
func RestaurantPizzas(restaurantPizzas []models.RestaurantPizza, exclude ...string) []map[string]any {
	return restaurantPizzaList(restaurantPizzas, exclude)
}

func restaurantPizzaList(restaurantPizzas []models.RestaurantPizza, exclude []string) []map[string]any {
	return lo.Map(restaurantPizzas, func(rp models.RestaurantPizza, _ int) map[string]any {
		return RestaurantPizza(&rp, exclude...)
	})
}
