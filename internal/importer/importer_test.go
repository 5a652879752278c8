package importer

import (
	"context"
	"errors"
	"testing"

	"github.com/beatrizodsk/popmenu-api/internal/domain"
	"go.uber.org/zap"
)

func newTestImporter(store *fakeStore) *Importer {
	return New(store, menuStore{store}, itemStore{store}, store, zap.NewNop().Sugar())
}

const scenarioDocument = `{
	"restaurants": [{
		"name": "Test Restaurant",
		"menus": [{
			"name": "lunch",
			"menu_items": [{"name": "Burger", "price": 10.00}]
		}]
	}]
}`

func TestImportIsIdempotent(t *testing.T) {
	store := newFakeStore()
	imp := newTestImporter(store)
	ctx := context.Background()

	first, err := imp.Run(ctx, []byte(scenarioDocument), false)
	if err != nil {
		t.Fatalf("first run returned error: %v", err)
	}
	if !first.Success {
		t.Fatal("expected first run to succeed")
	}

	want := domain.ImportSummary{
		RestaurantsProcessed: 1,
		MenusCreated:         1,
		MenuItemsCreated:     1,
		AssociationsCreated:  1,
	}
	if first.Summary != want {
		t.Errorf("first run summary = %+v, want %+v", first.Summary, want)
	}
	if first.RunID == "" {
		t.Error("expected a run ID")
	}

	second, err := imp.Run(ctx, []byte(scenarioDocument), false)
	if err != nil {
		t.Fatalf("second run returned error: %v", err)
	}
	if !second.Success {
		t.Fatal("expected second run to succeed")
	}

	wantSecond := domain.ImportSummary{RestaurantsProcessed: 1}
	if second.Summary != wantSecond {
		t.Errorf("second run summary = %+v, want %+v", second.Summary, wantSecond)
	}

	// restaurant, menu, item and association all resolved to existing rows
	if second.Counts[domain.LevelWarning] != 4 {
		t.Errorf("expected 4 warnings on the second run, got %d", second.Counts[domain.LevelWarning])
	}
	if second.Counts[domain.LevelError] != 0 {
		t.Errorf("expected no errors on the second run, got %d", second.Counts[domain.LevelError])
	}

	if len(store.restaurants) != 1 || len(store.menus) != 1 || len(store.items) != 1 || len(store.links) != 1 {
		t.Errorf("expected no net new rows after the second run: %d restaurants, %d menus, %d items, %d links",
			len(store.restaurants), len(store.menus), len(store.items), len(store.links))
	}
}

func TestImportRollsBackOnStoreFailure(t *testing.T) {
	store := newFakeStore()
	imp := newTestImporter(store)

	// second of three items fails store validation (null price)
	doc := `{
		"restaurants": [{
			"name": "Test Restaurant",
			"menus": [{
				"name": "lunch",
				"menu_items": [
					{"name": "Starter", "price": 4.00},
					{"name": "Broken", "price": null},
					{"name": "Dessert", "price": 6.00}
				]
			}]
		}]
	}`

	_, err := imp.Run(context.Background(), []byte(doc), false)
	if err == nil {
		t.Fatal("expected run to fail")
	}

	var validationErr *domain.ValidationError
	if !errors.As(err, &validationErr) {
		t.Errorf("expected a validation error, got %T: %v", err, err)
	}

	if len(store.restaurants) != 0 || len(store.menus) != 0 || len(store.items) != 0 || len(store.links) != 0 {
		t.Errorf("expected no rows to survive the rollback: %d restaurants, %d menus, %d items, %d links",
			len(store.restaurants), len(store.menus), len(store.items), len(store.links))
	}
}

func TestImportRollsBackOnLinkFailure(t *testing.T) {
	store := newFakeStore()
	store.failLinks = true
	imp := newTestImporter(store)

	_, err := imp.Run(context.Background(), []byte(scenarioDocument), false)
	if err == nil {
		t.Fatal("expected run to fail")
	}

	if len(store.restaurants) != 0 || len(store.menus) != 0 || len(store.items) != 0 {
		t.Error("expected association failure to roll back every entity from the run")
	}
}

func TestImportMalformedJSONIsInputError(t *testing.T) {
	store := newFakeStore()
	imp := newTestImporter(store)

	_, err := imp.Run(context.Background(), []byte(`{"restaurants": [`), false)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	if !domain.IsInputError(err) {
		t.Errorf("expected an input error, got %T: %v", err, err)
	}
	if len(store.restaurants) != 0 {
		t.Error("expected nothing to be written")
	}
}

func TestImportInvalidPriceFailsBeforeTransaction(t *testing.T) {
	store := newFakeStore()
	imp := newTestImporter(store)

	doc := `{
		"restaurants": [{
			"name": "Casa",
			"menus": [{
				"name": "lunch",
				"menu_items": [{"name": "Thing", "price": "free"}]
			}]
		}]
	}`

	_, err := imp.Run(context.Background(), []byte(doc), false)
	if err == nil {
		t.Fatal("expected error for invalid price")
	}
	if !domain.IsInputError(err) {
		t.Errorf("expected an input error, got %T: %v", err, err)
	}
	if len(store.restaurants) != 0 {
		t.Error("expected nothing to be written")
	}
}

func TestImportSharesItemsAcrossMenus(t *testing.T) {
	store := newFakeStore()
	imp := newTestImporter(store)

	doc := `{
		"restaurants": [{
			"name": "Casa",
			"menus": [
				{"name": "lunch", "menu_items": [{"name": "Burger", "price": 9.00}]},
				{"name": "dinner", "menu_items": [{"name": "burger", "price": 9.00}]}
			]
		}]
	}`

	report, err := imp.Run(context.Background(), []byte(doc), false)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if report.Summary.MenuItemsCreated != 1 {
		t.Errorf("expected 1 item created, got %d", report.Summary.MenuItemsCreated)
	}
	if report.Summary.AssociationsCreated != 2 {
		t.Errorf("expected 2 associations created, got %d", report.Summary.AssociationsCreated)
	}
	if len(store.items) != 1 || len(store.links) != 2 {
		t.Errorf("expected 1 item with 2 links, got %d items and %d links", len(store.items), len(store.links))
	}
}

func TestImportEmptyDocumentSucceeds(t *testing.T) {
	store := newFakeStore()
	imp := newTestImporter(store)

	report, err := imp.Run(context.Background(), []byte(`{}`), false)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !report.Success {
		t.Error("expected success on an empty document")
	}
	if report.Summary != (domain.ImportSummary{}) {
		t.Errorf("expected zero counts, got %+v", report.Summary)
	}
}
