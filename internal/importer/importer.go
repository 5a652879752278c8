package importer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/beatrizodsk/popmenu-api/internal/domain"
	"github.com/beatrizodsk/popmenu-api/internal/repo"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Importer walks a restaurant document and reconciles it against the
// store: every restaurant, menu and menu item either resolves to an
// existing row or is created, and menu/item links are made idempotently.
// The whole walk runs inside one transaction; nothing survives a
// failure partway through. Re-running the same document after a
// successful run creates nothing further.
type Importer struct {
	restaurants repo.RestaurantRepository
	menus       repo.MenuRepository
	items       repo.MenuItemRepository
	tx          repo.Transactor
	logger      *zap.SugaredLogger
}

func New(
	restaurants repo.RestaurantRepository,
	menus repo.MenuRepository,
	items repo.MenuItemRepository,
	tx repo.Transactor,
	logger *zap.SugaredLogger,
) *Importer {
	return &Importer{
		restaurants: restaurants,
		menus:       menus,
		items:       items,
		tx:          tx,
		logger:      logger,
	}
}

// Run parses raw JSON bytes and imports the document. A malformed
// payload is an input error; nothing has been written yet.
func (imp *Importer) Run(ctx context.Context, raw []byte, echo bool) (*domain.ImportReport, error) {
	var doc domain.ImportDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, domain.NewInputError("invalid JSON format: %v", err)
	}
	return imp.RunDocument(ctx, doc, echo)
}

// RunDocument imports an already-parsed document. When echo is set,
// progress events are additionally written to the service logger.
func (imp *Importer) RunDocument(ctx context.Context, doc domain.ImportDocument, echo bool) (*domain.ImportReport, error) {
	runID := uuid.NewString()

	var echoLogger *zap.SugaredLogger
	if echo {
		echoLogger = imp.logger.With("run_id", runID)
	}
	log := NewLogger(echoLogger)

	log.Info("Starting restaurant data import")

	log.Info("Normalizing JSON data")
	normalized, err := Normalize(doc)
	if err != nil {
		log.Error(fmt.Sprintf("Restaurant data import failed: %v", err))
		return nil, err
	}

	var summary domain.ImportSummary

	restaurantResolver := NewRestaurantResolver(imp.restaurants, log)
	menuResolver := NewMenuResolver(imp.menus, log)
	itemResolver := NewMenuItemResolver(imp.items, log)
	associations := NewAssociationManager(imp.items, log)

	err = imp.tx.WithTransaction(ctx, func(ctx context.Context) error {
		for _, restaurantData := range normalized.Restaurants {
			if err := imp.processRestaurant(ctx, restaurantData, restaurantResolver, menuResolver, itemResolver, associations, log, &summary); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error(fmt.Sprintf("Transaction rolled back due to: %v", err))
		return nil, err
	}

	log.Info("Restaurant data import completed successfully")

	snapshot := log.Summary()
	return &domain.ImportReport{
		RunID:   runID,
		Success: true,
		Counts:  snapshot.Counts,
		Events:  snapshot.Events,
		Summary: summary,
		Elapsed: snapshot.Elapsed,
	}, nil
}

func (imp *Importer) processRestaurant(
	ctx context.Context,
	restaurantData domain.RestaurantInput,
	restaurantResolver *RestaurantResolver,
	menuResolver *MenuResolver,
	itemResolver *MenuItemResolver,
	associations *AssociationManager,
	log *Logger,
	summary *domain.ImportSummary,
) error {
	log.Info(fmt.Sprintf("Processing restaurant: %s", restaurantData.Name))

	restaurant, _, err := restaurantResolver.Resolve(ctx, restaurantData.Name)
	if err != nil {
		return err
	}
	summary.RestaurantsProcessed++

	for _, menuData := range restaurantData.Menus {
		log.Info(fmt.Sprintf("Processing menu: %s for restaurant: %s", menuData.Name, restaurant.Name))

		menu, created, err := menuResolver.Resolve(ctx, menuData.Name, restaurant)
		if err != nil {
			return err
		}
		if created {
			summary.MenusCreated++
		}

		for _, itemData := range menuData.MenuItems {
			var itemName string
			if itemData.Name != nil {
				itemName = *itemData.Name
			}
			log.Info(fmt.Sprintf("Processing menu item: %s for menu: %s", itemName, menu.Name))

			item, created, err := itemResolver.Resolve(ctx, itemData)
			if err != nil {
				return err
			}
			if created {
				summary.MenuItemsCreated++
			}

			linked, err := associations.Associate(ctx, item, menu)
			if err != nil {
				return err
			}
			if linked {
				summary.AssociationsCreated++
			}
		}
	}

	return nil
}
