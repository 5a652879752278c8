package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Restaurant struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	NameNormalized string             `bson:"name_normalized" json:"-"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}

type Menu struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	NameNormalized string             `bson:"name_normalized" json:"-"`
	RestaurantID   primitive.ObjectID `bson:"restaurant_id" json:"restaurant_id"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}

// MenuItem is not owned by any single menu; it is shared across menus
// through MenuItemLink. Identity for resolution is (name_normalized, price):
// the same name at a different price is a distinct item.
type MenuItem struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	NameNormalized string             `bson:"name_normalized" json:"-"`
	Price          float64            `bson:"price" json:"price"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}

// MenuItemLink is one row of the menu <-> menu item many-to-many relation.
type MenuItemLink struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MenuID     primitive.ObjectID `bson:"menu_id" json:"menu_id"`
	MenuItemID primitive.ObjectID `bson:"menu_item_id" json:"menu_item_id"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}
