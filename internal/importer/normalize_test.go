package importer

import (
	"encoding/json"
	"testing"

	"github.com/beatrizodsk/popmenu-api/internal/domain"
)

func decodeDocument(t *testing.T, raw string) domain.ImportDocument {
	t.Helper()

	var doc domain.ImportDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("failed to decode document: %v", err)
	}
	return doc
}

func TestNormalizeRenamesLegacyDishesKey(t *testing.T) {
	doc := decodeDocument(t, `{
		"restaurants": [{
			"name": "Casa",
			"menus": [{
				"name": "lunch",
				"dishes": [{"name": "Tacos", "price": 7.50}]
			}]
		}]
	}`)

	normalized, err := Normalize(doc)
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}

	menu := normalized.Restaurants[0].Menus[0]
	if menu.Dishes != nil {
		t.Errorf("expected dishes to be cleared, got %v", menu.Dishes)
	}
	if len(menu.MenuItems) != 1 {
		t.Fatalf("expected 1 menu item, got %d", len(menu.MenuItems))
	}
	if got := *menu.MenuItems[0].Name; got != "Tacos" {
		t.Errorf("expected item name Tacos, got %q", got)
	}
}

func TestNormalizeLegacyKeyOverwritesMenuItems(t *testing.T) {
	doc := decodeDocument(t, `{
		"restaurants": [{
			"name": "Casa",
			"menus": [{
				"name": "lunch",
				"menu_items": [{"name": "Old", "price": 1}],
				"dishes": [{"name": "New", "price": 2}]
			}]
		}]
	}`)

	normalized, err := Normalize(doc)
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}

	menu := normalized.Restaurants[0].Menus[0]
	if len(menu.MenuItems) != 1 {
		t.Fatalf("expected 1 menu item, got %d", len(menu.MenuItems))
	}
	if got := *menu.MenuItems[0].Name; got != "New" {
		t.Errorf("expected legacy dishes content to win, got %q", got)
	}
}

func TestNormalizeSanitizesItemNames(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"escaped double quote", `Joe\"s Special`, `Joe"s Special`},
		{"escaped single quote", `Joe\'s Special`, `Joe's Special`},
		{"surrounding whitespace", "  Burger  ", "Burger"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			name := tc.in
			doc := domain.ImportDocument{
				Restaurants: []domain.RestaurantInput{{
					Name: "Casa",
					Menus: []domain.MenuInput{{
						Name:      "lunch",
						MenuItems: []domain.MenuItemInput{{Name: &name, Price: domain.NumberPrice(5)}},
					}},
				}},
			}

			normalized, err := Normalize(doc)
			if err != nil {
				t.Fatalf("Normalize returned error: %v", err)
			}

			got := *normalized.Restaurants[0].Menus[0].MenuItems[0].Name
			if got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestNormalizeLeavesNilNamesUntouched(t *testing.T) {
	doc := decodeDocument(t, `{
		"restaurants": [{
			"name": "Casa",
			"menus": [{
				"name": "lunch",
				"menu_items": [{"price": 5}]
			}]
		}]
	}`)

	normalized, err := Normalize(doc)
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}

	if normalized.Restaurants[0].Menus[0].MenuItems[0].Name != nil {
		t.Error("expected nil name to stay nil")
	}
}

func TestNormalizeValidatesPriceFormats(t *testing.T) {
	cases := []struct {
		name    string
		price   string
		wantErr bool
	}{
		{"number", `9.99`, false},
		{"integer", `10`, false},
		{"zero", `0`, false},
		{"numeric string", `"12.50"`, false},
		{"integer string", `"12"`, false},
		{"trailing dot string", `"12."`, false},
		{"null", `null`, false},
		{"negative number", `-5`, true},
		{"negative string", `"-5"`, true},
		{"word string", `"free"`, true},
		{"boolean", `true`, true},
		{"object", `{"amount": 5}`, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := decodeDocument(t, `{
				"restaurants": [{
					"name": "Casa",
					"menus": [{
						"name": "lunch",
						"menu_items": [{"name": "Thing", "price": `+tc.price+`}]
					}]
				}]
			}`)

			_, err := Normalize(doc)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error, got none")
				}
				if !domain.IsInputError(err) {
					t.Errorf("expected an input error, got %T: %v", err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize returned error: %v", err)
			}
		})
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	name := `  Joe\"s  `
	doc := domain.ImportDocument{
		Restaurants: []domain.RestaurantInput{{
			Name: "Casa",
			Menus: []domain.MenuInput{{
				Name:   "lunch",
				Dishes: []domain.MenuItemInput{{Name: &name, Price: domain.NumberPrice(5)}},
			}},
		}},
	}

	if _, err := Normalize(doc); err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}

	if name != `  Joe\"s  ` {
		t.Errorf("input name was mutated: %q", name)
	}
	if doc.Restaurants[0].Menus[0].Dishes == nil {
		t.Error("input dishes slice was cleared")
	}
	if got := *doc.Restaurants[0].Menus[0].Dishes[0].Name; got != `  Joe\"s  ` {
		t.Errorf("input item name was mutated: %q", got)
	}
}

func TestNormalizeEmptyDocument(t *testing.T) {
	normalized, err := Normalize(domain.ImportDocument{})
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if normalized.Restaurants != nil {
		t.Errorf("expected no restaurants, got %v", normalized.Restaurants)
	}
}
