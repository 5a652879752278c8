package repo

import (
	"context"

	"github.com/beatrizodsk/popmenu-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuItemRepository interface {
	// FindByNormalizedNameAndPrice matches on the comparison key plus
	// exact price; the same name at a different price is a different
	// item. Returns domain.ErrNotFound when no item matches.
	FindByNormalizedNameAndPrice(ctx context.Context, normalizedName string, price float64) (*domain.MenuItem, error)
	Create(ctx context.Context, item *domain.MenuItem) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.MenuItem, error)
	ListByMenuID(ctx context.Context, menuID primitive.ObjectID) ([]domain.MenuItem, error)

	// IsLinkedToMenu / LinkToMenu manage the menu <-> item association.
	IsLinkedToMenu(ctx context.Context, itemID, menuID primitive.ObjectID) (bool, error)
	LinkToMenu(ctx context.Context, itemID, menuID primitive.ObjectID) error
}
