package importer

import (
	"context"

	"github.com/beatrizodsk/popmenu-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeStore is an in-memory entity store implementing the repository
// interfaces plus Transactor. WithTransaction snapshots the state and
// restores it when fn fails, matching the all-or-nothing semantics of
// the real store.
type fakeStore struct {
	restaurants []domain.Restaurant
	menus       []domain.Menu
	items       []domain.MenuItem
	links       []domain.MenuItemLink

	// failLinks makes every LinkToMenu call fail, for rollback tests.
	failLinks bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{}
}

func (s *fakeStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	restaurants := append([]domain.Restaurant(nil), s.restaurants...)
	menus := append([]domain.Menu(nil), s.menus...)
	items := append([]domain.MenuItem(nil), s.items...)
	links := append([]domain.MenuItemLink(nil), s.links...)

	if err := fn(ctx); err != nil {
		s.restaurants = restaurants
		s.menus = menus
		s.items = items
		s.links = links
		return err
	}

	return nil
}

func (s *fakeStore) FindByNormalizedName(ctx context.Context, normalizedName string) (*domain.Restaurant, error) {
	for i := range s.restaurants {
		if s.restaurants[i].NameNormalized == normalizedName {
			restaurant := s.restaurants[i]
			return &restaurant, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *fakeStore) Create(ctx context.Context, restaurant *domain.Restaurant) error {
	if restaurant.Name == "" {
		return domain.NewValidationError("restaurant name can't be blank")
	}
	for i := range s.restaurants {
		if s.restaurants[i].NameNormalized == restaurant.NameNormalized {
			return &domain.ConstraintError{Constraint: "restaurants.name_normalized", Err: domain.ErrNotFound}
		}
	}
	restaurant.ID = primitive.NewObjectID()
	s.restaurants = append(s.restaurants, *restaurant)
	return nil
}

func (s *fakeStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Restaurant, error) {
	for i := range s.restaurants {
		if s.restaurants[i].ID == id {
			restaurant := s.restaurants[i]
			return &restaurant, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *fakeStore) List(ctx context.Context) ([]domain.Restaurant, error) {
	return append([]domain.Restaurant(nil), s.restaurants...), nil
}

// menuStore and itemStore expose the menu and item repository views of
// the same underlying state.

type menuStore struct{ *fakeStore }

func (s menuStore) FindInRestaurantByNormalizedName(ctx context.Context, restaurantID primitive.ObjectID, normalizedName string) (*domain.Menu, error) {
	for i := range s.menus {
		if s.menus[i].RestaurantID == restaurantID && s.menus[i].NameNormalized == normalizedName {
			menu := s.menus[i]
			return &menu, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s menuStore) Create(ctx context.Context, menu *domain.Menu) error {
	if menu.Name == "" {
		return domain.NewValidationError("menu name can't be blank")
	}
	if menu.RestaurantID.IsZero() {
		return domain.NewValidationError("menu must belong to a restaurant")
	}
	menu.ID = primitive.NewObjectID()
	s.fakeStore.menus = append(s.fakeStore.menus, *menu)
	return nil
}

func (s menuStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Menu, error) {
	for i := range s.menus {
		if s.menus[i].ID == id {
			menu := s.menus[i]
			return &menu, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s menuStore) ListByRestaurantID(ctx context.Context, restaurantID primitive.ObjectID) ([]domain.Menu, error) {
	var menus []domain.Menu
	for i := range s.menus {
		if s.menus[i].RestaurantID == restaurantID {
			menus = append(menus, s.menus[i])
		}
	}
	return menus, nil
}

type itemStore struct{ *fakeStore }

func (s itemStore) FindByNormalizedNameAndPrice(ctx context.Context, normalizedName string, price float64) (*domain.MenuItem, error) {
	for i := range s.items {
		if s.items[i].NameNormalized == normalizedName && s.items[i].Price == price {
			item := s.items[i]
			return &item, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s itemStore) Create(ctx context.Context, item *domain.MenuItem) error {
	if item.Name == "" {
		return domain.NewValidationError("menu item name can't be blank")
	}
	if item.Price <= 0 {
		return domain.NewValidationError("menu item price must be greater than 0")
	}
	item.ID = primitive.NewObjectID()
	s.fakeStore.items = append(s.fakeStore.items, *item)
	return nil
}

func (s itemStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.MenuItem, error) {
	for i := range s.items {
		if s.items[i].ID == id {
			item := s.items[i]
			return &item, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s itemStore) ListByMenuID(ctx context.Context, menuID primitive.ObjectID) ([]domain.MenuItem, error) {
	var items []domain.MenuItem
	for i := range s.links {
		if s.links[i].MenuID != menuID {
			continue
		}
		for j := range s.items {
			if s.items[j].ID == s.links[i].MenuItemID {
				items = append(items, s.items[j])
			}
		}
	}
	return items, nil
}

func (s itemStore) IsLinkedToMenu(ctx context.Context, itemID, menuID primitive.ObjectID) (bool, error) {
	for i := range s.links {
		if s.links[i].MenuID == menuID && s.links[i].MenuItemID == itemID {
			return true, nil
		}
	}
	return false, nil
}

func (s itemStore) LinkToMenu(ctx context.Context, itemID, menuID primitive.ObjectID) error {
	if s.failLinks {
		return domain.NewValidationError("link rejected")
	}
	s.fakeStore.links = append(s.fakeStore.links, domain.MenuItemLink{
		ID:         primitive.NewObjectID(),
		MenuID:     menuID,
		MenuItemID: itemID,
	})
	return nil
}
