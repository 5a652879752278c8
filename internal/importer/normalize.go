package importer

import (
	"strings"

	"github.com/beatrizodsk/popmenu-api/internal/domain"
)

// Normalize rewrites a parsed document into the canonical shape the
// orchestrator walks: the legacy dishes key is folded into menu_items,
// item names are un-escaped and trimmed, and price formats are
// validated. The input document is never mutated.
func Normalize(doc domain.ImportDocument) (domain.ImportDocument, error) {
	out := domain.ImportDocument{}
	if doc.Restaurants == nil {
		return out, nil
	}

	out.Restaurants = make([]domain.RestaurantInput, len(doc.Restaurants))
	for i, restaurant := range doc.Restaurants {
		normalized := restaurant
		if restaurant.Menus != nil {
			normalized.Menus = make([]domain.MenuInput, len(restaurant.Menus))
			for j, menu := range restaurant.Menus {
				normalizedMenu, err := normalizeMenu(menu)
				if err != nil {
					return domain.ImportDocument{}, err
				}
				normalized.Menus[j] = normalizedMenu
			}
		}
		out.Restaurants[i] = normalized
	}

	return out, nil
}

func normalizeMenu(menu domain.MenuInput) (domain.MenuInput, error) {
	normalized := menu

	// legacy key wins: a dishes array replaces menu_items entirely
	items := menu.MenuItems
	if menu.Dishes != nil {
		items = menu.Dishes
	}
	normalized.Dishes = nil
	normalized.MenuItems = nil

	if items == nil {
		return normalized, nil
	}

	normalized.MenuItems = make([]domain.MenuItemInput, len(items))
	for i, item := range items {
		cleaned := item
		if item.Name != nil {
			name := sanitizeName(*item.Name)
			cleaned.Name = &name
		}
		if err := item.Price.Validate(); err != nil {
			return domain.MenuInput{}, err
		}
		normalized.MenuItems[i] = cleaned
	}

	return normalized, nil
}

// sanitizeName un-escapes the two backslash-escaped quote sequences the
// feed is known to carry and trims surrounding whitespace. Nil names
// are left untouched by the caller; validation happens at the store.
func sanitizeName(name string) string {
	name = strings.ReplaceAll(name, `\"`, `"`)
	name = strings.ReplaceAll(name, `\'`, `'`)
	return strings.TrimSpace(name)
}
