package importer

import (
	"context"
	"errors"
	"fmt"

	"github.com/beatrizodsk/popmenu-api/internal/domain"
	"github.com/beatrizodsk/popmenu-api/internal/repo"
)

// The three resolvers share one pattern: look up an existing entity by
// its normalized name (scoped per entity type), return it verbatim when
// found, create it otherwise. Store failures are logged and returned,
// never swallowed, so a single failure terminates the run.

type RestaurantResolver struct {
	restaurants repo.RestaurantRepository
	logger      *Logger
}

func NewRestaurantResolver(restaurants repo.RestaurantRepository, logger *Logger) *RestaurantResolver {
	return &RestaurantResolver{restaurants: restaurants, logger: logger}
}

// Resolve finds or creates a restaurant. Names are globally unique
// after normalization: no two restaurants differ only by case or
// whitespace.
func (r *RestaurantResolver) Resolve(ctx context.Context, name string) (*domain.Restaurant, bool, error) {
	key := domain.NormalizeName(name)

	existing, err := r.restaurants.FindByNormalizedName(ctx, key)
	if err == nil {
		r.logger.Warning(fmt.Sprintf("Restaurant already exists: %s", existing.Name))
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to look up restaurant %q: %w", name, err)
	}

	restaurant := &domain.Restaurant{
		Name:           domain.SquishName(name),
		NameNormalized: key,
	}
	if err := r.restaurants.Create(ctx, restaurant); err != nil {
		r.logger.Error(fmt.Sprintf("Failed to create restaurant '%s': %v", name, err))
		return nil, false, fmt.Errorf("failed to create restaurant %q: %w", name, err)
	}

	r.logger.Info(fmt.Sprintf("Created restaurant: %s", name))
	return restaurant, true, nil
}

type MenuResolver struct {
	menus  repo.MenuRepository
	logger *Logger
}

func NewMenuResolver(menus repo.MenuRepository, logger *Logger) *MenuResolver {
	return &MenuResolver{menus: menus, logger: logger}
}

// Resolve finds or creates a menu scoped to one restaurant. The same
// menu name may exist in different restaurants; within one restaurant
// it resolves to a single menu.
func (r *MenuResolver) Resolve(ctx context.Context, name string, restaurant *domain.Restaurant) (*domain.Menu, bool, error) {
	key := domain.NormalizeName(name)

	existing, err := r.menus.FindInRestaurantByNormalizedName(ctx, restaurant.ID, key)
	if err == nil {
		r.logger.Warning(fmt.Sprintf("Menu already exists: %s in restaurant %s", existing.Name, restaurant.Name))
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to look up menu %q: %w", name, err)
	}

	menu := &domain.Menu{
		Name:           domain.SquishName(name),
		NameNormalized: key,
		RestaurantID:   restaurant.ID,
	}
	if err := r.menus.Create(ctx, menu); err != nil {
		r.logger.Error(fmt.Sprintf("Failed to create menu '%s' for restaurant '%s': %v", name, restaurant.Name, err))
		return nil, false, fmt.Errorf("failed to create menu %q: %w", name, err)
	}

	r.logger.Info(fmt.Sprintf("Created menu '%s' for restaurant '%s'", name, restaurant.Name))
	return menu, true, nil
}

type MenuItemResolver struct {
	items  repo.MenuItemRepository
	logger *Logger
}

func NewMenuItemResolver(items repo.MenuItemRepository, logger *Logger) *MenuItemResolver {
	return &MenuItemResolver{items: items, logger: logger}
}

// Resolve finds or creates a menu item. Price is part of the identity:
// the same name at a different price yields a distinct item, not a
// collision.
func (r *MenuItemResolver) Resolve(ctx context.Context, item domain.MenuItemInput) (*domain.MenuItem, bool, error) {
	var name string
	if item.Name != nil {
		name = *item.Name
	}

	price, err := item.Price.Float()
	if err != nil {
		return nil, false, err
	}

	key := domain.NormalizeName(name)

	existing, err := r.items.FindByNormalizedNameAndPrice(ctx, key, price)
	if err == nil {
		r.logger.Warning(fmt.Sprintf("Menu item already exists: %s with price %s", existing.Name, item.Price))
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to look up menu item %q: %w", name, err)
	}

	menuItem := &domain.MenuItem{
		Name:           domain.SquishName(name),
		NameNormalized: key,
		Price:          price,
	}
	if err := r.items.Create(ctx, menuItem); err != nil {
		r.logger.Error(fmt.Sprintf("Failed to create menu item '%s' with price %s: %v", name, item.Price, err))
		return nil, false, fmt.Errorf("failed to create menu item %q: %w", name, err)
	}

	r.logger.Info(fmt.Sprintf("Created menu item: %s with price %s", name, item.Price))
	return menuItem, true, nil
}
