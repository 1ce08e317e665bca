package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GroceryItem is one entry on the shopping list. Items are created and
// deleted, never updated in place; the id is assigned by the record store on
// insert and is stable for the item's lifetime.
type GroceryItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name"          json:"name"`
	Category  string             `bson:"category"      json:"category"`
	Store     string             `bson:"store"         json:"store"`
	CreatedAt time.Time          `bson:"createdAt"     json:"createdAt"`
}

// PriceObservation records what an item cost at a particular store. The
// document id is derived from (itemName, storeName), so saving the same pair
// twice replaces the earlier observation instead of duplicating it. Price and
// weight are kept as the text the user entered; the unit price is computed at
// display time and never persisted.
type PriceObservation struct {
	ID        string `bson:"_id,omitempty" json:"id"`
	ItemName  string `bson:"itemName"      json:"itemName"`
	BrandName string `bson:"brandName"     json:"brandName"`
	StoreName string `bson:"storeName"     json:"storeName"`
	Price     string `bson:"price"         json:"price"`
	Weight    string `bson:"weight"        json:"weight"`
	Unit      string `bson:"unit"          json:"unit"`
}

// StoreEntry is one row in the append-only registry of custom store names.
type StoreEntry struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name"          json:"name"`
}

// Recipe is a catalog entry with ordered ingredient and instruction lists and
// macro-nutrient fields in grams.
type Recipe struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name"          json:"name"`
	Description  string             `bson:"description"   json:"description"`
	Ingredients  []string           `bson:"ingredients"   json:"ingredients"`
	Instructions []string           `bson:"instructions"  json:"instructions"`
	ServingSize  float64            `bson:"servingSize"   json:"servingSize"`
	Protein      float64            `bson:"protein"       json:"protein"`
	Carbs        float64            `bson:"carbs"         json:"carbs"`
	Fat          float64            `bson:"fat"           json:"fat"`
}
