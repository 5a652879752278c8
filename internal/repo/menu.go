package repo

import (
	"context"

	"github.com/beatrizodsk/popmenu-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuRepository interface {
	// FindInRestaurantByNormalizedName scopes the lookup to one
	// restaurant; the same menu name may exist in other restaurants.
	// Returns domain.ErrNotFound when no menu matches.
	FindInRestaurantByNormalizedName(ctx context.Context, restaurantID primitive.ObjectID, normalizedName string) (*domain.Menu, error)
	Create(ctx context.Context, menu *domain.Menu) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Menu, error)
	ListByRestaurantID(ctx context.Context, restaurantID primitive.ObjectID) ([]domain.Menu, error)
}
