package importer

import (
	"context"
	"fmt"

	"github.com/beatrizodsk/popmenu-api/internal/domain"
	"github.com/beatrizodsk/popmenu-api/internal/repo"
)

type AssociationManager struct {
	items  repo.MenuItemRepository
	logger *Logger
}

func NewAssociationManager(items repo.MenuItemRepository, logger *Logger) *AssociationManager {
	return &AssociationManager{items: items, logger: logger}
}

// Associate links an item to a menu. Repeated linking is a no-op. A
// failed link aborts the run: the caller cannot otherwise observe a
// missing association.
func (a *AssociationManager) Associate(ctx context.Context, item *domain.MenuItem, menu *domain.Menu) (bool, error) {
	linked, err := a.items.IsLinkedToMenu(ctx, item.ID, menu.ID)
	if err != nil {
		return false, fmt.Errorf("failed to check association of %q with %q: %w", item.Name, menu.Name, err)
	}

	if linked {
		a.logger.Warning(fmt.Sprintf("Menu item '%s' already associated with menu '%s'", item.Name, menu.Name))
		return false, nil
	}

	if err := a.items.LinkToMenu(ctx, item.ID, menu.ID); err != nil {
		a.logger.Error(fmt.Sprintf("Failed to associate menu item '%s' with menu '%s': %v", item.Name, menu.Name, err))
		return false, fmt.Errorf("failed to associate menu item %q with menu %q: %w", item.Name, menu.Name, err)
	}

	a.logger.Info(fmt.Sprintf("Associated menu item '%s' with menu '%s'", item.Name, menu.Name))
	return true, nil
}
