package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beatrizodsk/popmenu-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MenuRepository struct {
	collection *mongo.Collection
}

func NewMenuRepository(db *mongo.Database) *MenuRepository {
	return &MenuRepository{
		collection: db.Collection("menus"),
	}
}

func (r *MenuRepository) FindInRestaurantByNormalizedName(ctx context.Context, restaurantID primitive.ObjectID, normalizedName string) (*domain.Menu, error) {
	filter := bson.M{
		"restaurant_id":   restaurantID,
		"name_normalized": normalizedName,
	}

	var menu domain.Menu
	err := r.collection.FindOne(ctx, filter).Decode(&menu)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find menu: %w", err)
	}

	return &menu, nil
}

func (r *MenuRepository) Create(ctx context.Context, menu *domain.Menu) error {
	if menu.Name == "" {
		return domain.NewValidationError("menu name can't be blank")
	}
	if menu.RestaurantID.IsZero() {
		return domain.NewValidationError("menu must belong to a restaurant")
	}

	if menu.ID.IsZero() {
		menu.ID = primitive.NewObjectID()
	}
	menu.CreatedAt = time.Now()
	menu.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, menu)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &domain.ConstraintError{Constraint: "menus.restaurant_id+name_normalized", Err: err}
		}
		return fmt.Errorf("failed to create menu: %w", err)
	}

	return nil
}

func (r *MenuRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Menu, error) {
	var menu domain.Menu
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&menu)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get menu: %w", err)
	}

	return &menu, nil
}

func (r *MenuRepository) ListByRestaurantID(ctx context.Context, restaurantID primitive.ObjectID) ([]domain.Menu, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"restaurant_id": restaurantID})
	if err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}
	defer cursor.Close(ctx)

	var menus []domain.Menu
	if err := cursor.All(ctx, &menus); err != nil {
		return nil, fmt.Errorf("failed to decode menus: %w", err)
	}

	return menus, nil
}
