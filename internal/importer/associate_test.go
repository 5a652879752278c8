package importer

import (
	"context"
	"testing"

	"github.com/beatrizodsk/popmenu-api/internal/domain"
)

func TestAssociateIsIdempotent(t *testing.T) {
	store := newFakeStore()
	log := NewLogger(nil)
	items := itemStore{store}
	manager := NewAssociationManager(items, log)
	ctx := context.Background()

	name := "Burger"
	item, _, err := NewMenuItemResolver(items, log).Resolve(ctx, domain.MenuItemInput{Name: &name, Price: domain.NumberPrice(9)})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	restaurant, _, err := NewRestaurantResolver(store, log).Resolve(ctx, "Casa")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	menu, _, err := NewMenuResolver(menuStore{store}, log).Resolve(ctx, "lunch", restaurant)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	created, err := manager.Associate(ctx, item, menu)
	if err != nil {
		t.Fatalf("Associate returned error: %v", err)
	}
	if !created {
		t.Error("expected first association to be created")
	}

	created, err = manager.Associate(ctx, item, menu)
	if err != nil {
		t.Fatalf("Associate returned error: %v", err)
	}
	if created {
		t.Error("expected repeated association to be a no-op")
	}

	if len(store.links) != 1 {
		t.Errorf("expected 1 link, got %d", len(store.links))
	}
}

func TestAssociateSurfacesLinkFailures(t *testing.T) {
	store := newFakeStore()
	store.failLinks = true
	log := NewLogger(nil)
	manager := NewAssociationManager(itemStore{store}, log)
	ctx := context.Background()

	item := &domain.MenuItem{Name: "Burger"}
	menu := &domain.Menu{Name: "lunch"}

	if _, err := manager.Associate(ctx, item, menu); err == nil {
		t.Fatal("expected link failure to be returned")
	}

	summary := log.Summary()
	if summary.Counts[domain.LevelError] != 1 {
		t.Errorf("expected 1 error event, got %d", summary.Counts[domain.LevelError])
	}
}
