package prices

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pantry/db"
	"pantry/models"
	"pantry/mq"
	"pantry/rdx"
	"pantry/utils"
	"pantry/validation"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "prices").Logger()

const (
	matchCacheTTL = 5 * time.Minute

	// Upper bound for the closed-range prefix query: higher than any
	// character that can appear in an item name.
	prefixUpperBound = "\uf8ff"
)

// Handler serves price observations, suggestions, and the store registry.
type Handler struct {
	db    *db.DB
	cache *rdx.Cache
}

func NewHandler(database *db.DB, cache *rdx.Cache) *Handler {
	return &Handler{db: database, cache: cache}
}

// Key derives the deterministic document id for a (item, store) pair, so a
// save is an idempotent replace rather than a racy read-then-branch.
func Key(itemName, storeName string) string {
	return strings.ToLower(strings.TrimSpace(itemName)) + "|" + strings.ToLower(strings.TrimSpace(storeName))
}

func matchCacheKey(itemName string) string {
	return "prices:item:" + strings.ToLower(strings.TrimSpace(itemName))
}

type savePriceRequest struct {
	ItemName  string `json:"itemName" validate:"required"`
	BrandName string `json:"brandName" validate:"required"`
	StoreName string `json:"storeName" validate:"required"`
	Price     string `json:"price" validate:"required,numeric"`
	Weight    string `json:"weight" validate:"required"`
	Unit      string `json:"unit" validate:"required,priceunit"`
}

// SavePrice upserts the observation for one (item, store) pair. A second save
// for the same pair replaces the first document in place. Store names outside
// the known list are appended to the registry best-effort.
func (h *Handler) SavePrice(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req, ok := validation.DecodeAndValidate[savePriceRequest](w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	h.registerStore(ctx, req.StoreName)

	obs := models.PriceObservation{
		ID:        Key(req.ItemName, req.StoreName),
		ItemName:  strings.TrimSpace(req.ItemName),
		BrandName: req.BrandName,
		StoreName: strings.TrimSpace(req.StoreName),
		Price:     req.Price,
		Weight:    req.Weight,
		Unit:      req.Unit,
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := h.db.ShoppingPrices.ReplaceOne(ctx, bson.M{"_id": obs.ID}, obs, opts); err != nil {
		logger.Error().Err(err).Str("key", obs.ID).Msg("upsert price observation")
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save price")
		return
	}

	// Invalidate before responding so a racing reader re-fetches instead of
	// serving the stale match list.
	if err := h.cache.Del(ctx, matchCacheKey(obs.ItemName)); err != nil {
		logger.Error().Err(err).Str("item", obs.ItemName).Msg("invalidate price cache")
	}

	mq.Emit("price-saved", mq.Index{EntityType: "shoppingPrices", Method: "PUT", EntityId: obs.ID})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"observation": obs,
		"unitPrice":   FormatUnitPrice(obs.Price, obs.Weight, obs.Unit),
	})
}

// LookupPrice fetches the observation for one (item, store) pair, used to
// prefill the save form. 404 means the subsequent save will be an insert.
func (h *Handler) LookupPrice(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	itemName := r.URL.Query().Get("item")
	storeName := r.URL.Query().Get("store")
	if itemName == "" || storeName == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "item and store are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var obs models.PriceObservation
	err := h.db.ShoppingPrices.FindOne(ctx, bson.M{"_id": Key(itemName, storeName)}).Decode(&obs)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "No price recorded")
		return
	}
	if err != nil {
		logger.Error().Err(err).Msg("lookup price observation")
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to look up price")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, obs)
}

// PriceMatch is a price observation annotated with its display unit price.
type PriceMatch struct {
	models.PriceObservation
	UnitPrice string `json:"unitPrice"`
}

// GetItemPrices returns every observation whose itemName exactly matches the
// query. Results are cached in Redis keyed by item name, mirroring the eager
// prefetch the list view performs whenever the item list changes.
func (h *Handler) GetItemPrices(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	itemName := r.URL.Query().Get("item")
	if itemName == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "item is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	observations, err := h.itemObservations(ctx, itemName)
	if err != nil {
		logger.Error().Err(err).Str("item", itemName).Msg("fetch price matches")
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch prices")
		return
	}

	matches := make([]PriceMatch, 0, len(observations))
	for _, obs := range observations {
		matches = append(matches, PriceMatch{
			PriceObservation: obs,
			UnitPrice:        FormatUnitPrice(obs.Price, obs.Weight, obs.Unit),
		})
	}

	utils.RespondWithJSON(w, http.StatusOK, matches)
}

func (h *Handler) itemObservations(ctx context.Context, itemName string) ([]models.PriceObservation, error) {
	cacheKey := matchCacheKey(itemName)

	if raw, found, err := h.cache.Get(ctx, cacheKey); err != nil {
		logger.Error().Err(err).Str("key", cacheKey).Msg("price cache read")
	} else if found {
		var cached []models.PriceObservation
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return cached, nil
		}
	}

	cursor, err := h.db.ShoppingPrices.Find(ctx, bson.M{"itemName": strings.TrimSpace(itemName)})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var observations []models.PriceObservation
	if err := cursor.All(ctx, &observations); err != nil {
		return nil, err
	}
	if observations == nil {
		observations = []models.PriceObservation{}
	}

	if data, err := json.Marshal(observations); err == nil {
		if err := h.cache.Set(ctx, cacheKey, string(data), matchCacheTTL); err != nil {
			logger.Error().Err(err).Str("key", cacheKey).Msg("price cache write")
		}
	}

	return observations, nil
}

// Suggestions returns distinct historical item names starting with the typed
// prefix, case-insensitive. The record-store query is a closed range over the
// sorted itemName index emulating "starts with".
func (h *Handler) Suggestions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	prefix := strings.TrimSpace(r.URL.Query().Get("q"))
	if prefix == "" {
		utils.RespondWithJSON(w, http.StatusOK, []string{})
		return
	}
	lower := strings.ToLower(prefix)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{"itemName": bson.M{"$gte": lower, "$lt": lower + prefixUpperBound}}
	opts := options.Find().
		SetSort(bson.D{{Key: "itemName", Value: 1}}).
		SetProjection(bson.M{"itemName": 1})

	cursor, err := h.db.ShoppingPrices.Find(ctx, filter, opts)
	if err != nil {
		logger.Error().Err(err).Str("prefix", prefix).Msg("fetch suggestions")
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch suggestions")
		return
	}
	defer cursor.Close(ctx)

	seen := make(map[string]struct{})
	suggestions := []string{}
	for cursor.Next(ctx) {
		var doc struct {
			ItemName string `bson:"itemName"`
		}
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		if !strings.HasPrefix(strings.ToLower(doc.ItemName), lower) {
			continue
		}
		if _, dup := seen[doc.ItemName]; dup {
			continue
		}
		seen[doc.ItemName] = struct{}{}
		suggestions = append(suggestions, doc.ItemName)
	}

	utils.RespondWithJSON(w, http.StatusOK, suggestions)
}

// GetStores returns the default store list merged with the custom registry,
// deduplicated and sorted.
func (h *Handler) GetStores(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	names, err := h.knownStores(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("fetch store registry")
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch stores")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, names)
}

func (h *Handler) knownStores(ctx context.Context) ([]string, error) {
	cursor, err := h.db.ShoppingStores.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.StoreEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	names := []string{}
	for _, name := range models.DefaultPriceStores {
		if _, dup := seen[name]; !dup {
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	for _, e := range entries {
		if _, dup := seen[e.Name]; !dup {
			seen[e.Name] = struct{}{}
			names = append(names, e.Name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// registerStore appends a custom store name to the registry if it is not
// already known. Best-effort: the check is a read against the current list,
// concurrent saves can still duplicate a name, and failures are only logged.
func (h *Handler) registerStore(ctx context.Context, storeName string) {
	name := strings.TrimSpace(storeName)
	if name == "" {
		return
	}

	known, err := h.knownStores(ctx)
	if err != nil {
		logger.Error().Err(err).Str("store", name).Msg("read store registry")
		return
	}
	for _, existing := range known {
		if existing == name {
			return
		}
	}

	if _, err := h.db.ShoppingStores.InsertOne(ctx, models.StoreEntry{Name: name}); err != nil {
		logger.Error().Err(err).Str("store", name).Msg("register store")
	}
}
