package main

import (
	"net/http"

	"github.com/beatrizodsk/popmenu-api/internal/domain"
	"github.com/go-chi/chi"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RestaurantResponse struct {
	domain.Restaurant
	Menus []domain.Menu `json:"menus"`
}

// listRestaurantsHandler godoc
//
//	@Summary		List restaurants
//	@Tags			restaurants
//	@Produce		json
//	@Success		200	{array}		RestaurantResponse
//	@Failure		500	{object}	map[string]string
//	@Router			/restaurants [get]
func (app *application) listRestaurantsHandler(w http.ResponseWriter, r *http.Request) {
	restaurants, err := app.restaurantRepo.List(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := make([]RestaurantResponse, 0, len(restaurants))
	for _, restaurant := range restaurants {
		menus, err := app.menuRepo.ListByRestaurantID(r.Context(), restaurant.ID)
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}
		response = append(response, RestaurantResponse{Restaurant: restaurant, Menus: menus})
	}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getRestaurantHandler godoc
//
//	@Summary		Get restaurant by ID
//	@Tags			restaurants
//	@Produce		json
//	@Param			restaurant_id	path		string	true	"Restaurant ID"
//	@Success		200				{object}	RestaurantResponse
//	@Failure		400				{object}	map[string]string
//	@Failure		404				{object}	map[string]string
//	@Router			/restaurants/{restaurant_id} [get]
func (app *application) getRestaurantHandler(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "restaurant_id"))
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	restaurant, err := app.restaurantRepo.GetByID(r.Context(), restaurantID)
	if err != nil {
		app.notFoundError(w, r, err)
		return
	}

	menus, err := app.menuRepo.ListByRestaurantID(r.Context(), restaurant.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := RestaurantResponse{Restaurant: *restaurant, Menus: menus}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
