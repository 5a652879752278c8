package main

import (
	"net/http"

	"github.com/beatrizodsk/popmenu-api/internal/domain"
	"github.com/go-chi/chi"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuResponse struct {
	domain.Menu
	MenuItems []domain.MenuItem `json:"menu_items"`
}

// getMenuHandler godoc
//
//	@Summary		Get menu by ID
//	@Description	Returns a menu with its associated menu items
//	@Tags			menus
//	@Produce		json
//	@Param			menu_id	path		string	true	"Menu ID"
//	@Success		200		{object}	MenuResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/menus/{menu_id} [get]
func (app *application) getMenuHandler(w http.ResponseWriter, r *http.Request) {
	menuID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "menu_id"))
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	menu, err := app.menuRepo.GetByID(r.Context(), menuID)
	if err != nil {
		app.notFoundError(w, r, err)
		return
	}

	items, err := app.menuItemRepo.ListByMenuID(r.Context(), menu.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := MenuResponse{Menu: *menu, MenuItems: items}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
