package repo

import (
	"context"

	"github.com/beatrizodsk/popmenu-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RestaurantRepository interface {
	// FindByNormalizedName looks up a restaurant by its comparison key.
	// Returns domain.ErrNotFound when no restaurant matches.
	FindByNormalizedName(ctx context.Context, normalizedName string) (*domain.Restaurant, error)
	Create(ctx context.Context, restaurant *domain.Restaurant) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Restaurant, error)
	List(ctx context.Context) ([]domain.Restaurant, error)
}
