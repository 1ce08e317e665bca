package grocery

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pantry/db"
	"pantry/models"
	"pantry/mq"
	"pantry/utils"
	"pantry/validation"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "grocery").Logger()

// Handler serves the shopping-list endpoints.
type Handler struct {
	db *db.DB
}

func NewHandler(database *db.DB) *Handler {
	return &Handler{db: database}
}

type createItemRequest struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required,grocerycategory"`
	Store    string `json:"store" validate:"required,grocerystore"`
}

// CreateItem inserts a new grocery item. The name is trimmed and must be
// non-empty; category and store must come from the closed vocabularies.
func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req, ok := validation.DecodeAndValidate[createItemRequest](w, r)
	if !ok {
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "name is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item := models.GroceryItem{
		Name:      name,
		Category:  req.Category,
		Store:     req.Store,
		CreatedAt: time.Now().UTC(),
	}

	res, err := h.db.ShoppingList.InsertOne(ctx, item)
	if err != nil {
		logger.Error().Err(err).Msg("insert grocery item")
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add item")
		return
	}
	item.ID = res.InsertedID.(primitive.ObjectID)

	mq.Emit("grocery-item-created", mq.Index{EntityType: "shoppingList", Method: "POST", EntityId: item.ID.Hex()})

	utils.RespondWithJSON(w, http.StatusCreated, item)
}

// GetItems returns the list newest-first. With ?store= the list is filtered
// to one tab; adding &grouped=1 returns the categorized view instead of the
// flat list.
func (h *Handler) GetItems(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := FetchAll(ctx, h.db)
	if err != nil {
		logger.Error().Err(err).Msg("fetch grocery items")
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch items")
		return
	}

	if store := r.URL.Query().Get("store"); store != "" {
		items = FilterByStore(items, store)
	}

	if r.URL.Query().Get("grouped") != "" {
		utils.RespondWithJSON(w, http.StatusOK, GroupByCategory(items, nil))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, items)
}

// DeleteItem removes exactly the item matching the confirmed identifier.
func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	objID, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := h.db.ShoppingList.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		logger.Error().Err(err).Str("id", objID.Hex()).Msg("delete grocery item")
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete item")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Item not found")
		return
	}

	mq.Emit("grocery-item-deleted", mq.Index{EntityType: "shoppingList", Method: "DELETE", EntityId: objID.Hex()})

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// FetchAll returns the full shopping list ordered by createdAt descending.
// The live feed uses the same query, so HTTP reads and pushed snapshots
// always agree on ordering.
func FetchAll(ctx context.Context, database *db.DB) ([]models.GroceryItem, error) {
	cursor, err := database.ShoppingList.Find(ctx, bson.M{}, db.OptionsFindLatest())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.GroceryItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.GroceryItem{}
	}
	return items, nil
}
