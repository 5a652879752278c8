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

type MenuItemRepository struct {
	collection *mongo.Collection
	links      *mongo.Collection
}

func NewMenuItemRepository(db *mongo.Database) *MenuItemRepository {
	return &MenuItemRepository{
		collection: db.Collection("menu_items"),
		links:      db.Collection("menu_item_links"),
	}
}

func (r *MenuItemRepository) FindByNormalizedNameAndPrice(ctx context.Context, normalizedName string, price float64) (*domain.MenuItem, error) {
	filter := bson.M{
		"name_normalized": normalizedName,
		"price":           price,
	}

	var item domain.MenuItem
	err := r.collection.FindOne(ctx, filter).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find menu item: %w", err)
	}

	return &item, nil
}

func (r *MenuItemRepository) Create(ctx context.Context, item *domain.MenuItem) error {
	if item.Name == "" {
		return domain.NewValidationError("menu item name can't be blank")
	}
	if item.Price <= 0 {
		return domain.NewValidationError("menu item price must be greater than 0")
	}

	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &domain.ConstraintError{Constraint: "menu_items.name_normalized+price", Err: err}
		}
		return fmt.Errorf("failed to create menu item: %w", err)
	}

	return nil
}

func (r *MenuItemRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}

	return &item, nil
}

func (r *MenuItemRepository) ListByMenuID(ctx context.Context, menuID primitive.ObjectID) ([]domain.MenuItem, error) {
	cursor, err := r.links.Find(ctx, bson.M{"menu_id": menuID})
	if err != nil {
		return nil, fmt.Errorf("failed to list menu item links: %w", err)
	}
	defer cursor.Close(ctx)

	var links []domain.MenuItemLink
	if err := cursor.All(ctx, &links); err != nil {
		return nil, fmt.Errorf("failed to decode menu item links: %w", err)
	}

	if len(links) == 0 {
		return []domain.MenuItem{}, nil
	}

	ids := make([]primitive.ObjectID, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.MenuItemID)
	}

	itemsCursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	defer itemsCursor.Close(ctx)

	var items []domain.MenuItem
	if err := itemsCursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode menu items: %w", err)
	}

	return items, nil
}

func (r *MenuItemRepository) IsLinkedToMenu(ctx context.Context, itemID, menuID primitive.ObjectID) (bool, error) {
	filter := bson.M{
		"menu_id":      menuID,
		"menu_item_id": itemID,
	}

	count, err := r.links.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to check menu item link: %w", err)
	}

	return count > 0, nil
}

func (r *MenuItemRepository) LinkToMenu(ctx context.Context, itemID, menuID primitive.ObjectID) error {
	link := domain.MenuItemLink{
		ID:         primitive.NewObjectID(),
		MenuID:     menuID,
		MenuItemID: itemID,
		CreatedAt:  time.Now(),
	}

	_, err := r.links.InsertOne(ctx, link)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &domain.ConstraintError{Constraint: "menu_item_links.menu_id+menu_item_id", Err: err}
		}
		return fmt.Errorf("failed to link menu item to menu: %w", err)
	}

	return nil
}
