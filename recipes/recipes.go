package recipes

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"pantry/db"
	"pantry/models"
	"pantry/utils"
	"pantry/validation"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "recipes").Logger()

// Handler serves the recipe catalog.
type Handler struct {
	db *db.DB
}

func NewHandler(database *db.DB) *Handler {
	return &Handler{db: database}
}

// GetRecipes fetches the whole catalog in natural order, then applies the
// browse filter in memory: ?search= with &mode=name|ingredient, and optional
// inclusive ceilings ?protein=&carbs=&fat= in grams.
func (h *Handler) GetRecipes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cursor, err := h.db.Recipes.Find(ctx, bson.M{})
	if err != nil {
		logger.Error().Err(err).Msg("fetch recipes")
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch recipes")
		return
	}
	defer cursor.Close(ctx)

	var all []models.Recipe
	if err := cursor.All(ctx, &all); err != nil {
		logger.Error().Err(err).Msg("decode recipes")
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode recipes")
		return
	}

	filter := filterFromQuery(r)
	recipes := filter.Apply(all)
	if recipes == nil {
		recipes = []models.Recipe{}
	}

	utils.RespondWithJSON(w, http.StatusOK, recipes)
}

func filterFromQuery(r *http.Request) Filter {
	q := r.URL.Query()

	mode := SearchByName
	if q.Get("mode") == string(SearchByIngredient) {
		mode = SearchByIngredient
	}

	return Filter{
		Search:     q.Get("search"),
		Mode:       mode,
		ProteinMax: ceiling(q.Get("protein")),
		CarbsMax:   ceiling(q.Get("carbs")),
		FatMax:     ceiling(q.Get("fat")),
	}
}

// ceiling parses an optional numeric ceiling; absent or malformed means unset.
func ceiling(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// GetRecipe fetches one recipe by id.
func (h *Handler) GetRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var recipe models.Recipe
	err = h.db.Recipes.FindOne(ctx, bson.M{"_id": id}).Decode(&recipe)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Recipe not found")
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("id", id.Hex()).Msg("fetch recipe")
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch recipe")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, recipe)
}

type createRecipeRequest struct {
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients" validate:"required,min=1,dive,required"`
	Instructions []string `json:"instructions" validate:"required,min=1,dive,required"`
	ServingSize  float64  `json:"servingSize" validate:"gte=0"`
	Protein      float64  `json:"protein" validate:"gte=0"`
	Carbs        float64  `json:"carbs" validate:"gte=0"`
	Fat          float64  `json:"fat" validate:"gte=0"`
}

// CreateRecipe inserts a full recipe.
func (h *Handler) CreateRecipe(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req, ok := validation.DecodeAndValidate[createRecipeRequest](w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	recipe := models.Recipe{
		Name:         req.Name,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		ServingSize:  req.ServingSize,
		Protein:      req.Protein,
		Carbs:        req.Carbs,
		Fat:          req.Fat,
	}

	res, err := h.db.Recipes.InsertOne(ctx, recipe)
	if err != nil {
		logger.Error().Err(err).Msg("insert recipe")
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add recipe")
		return
	}
	recipe.ID = res.InsertedID.(primitive.ObjectID)

	utils.RespondWithJSON(w, http.StatusCreated, recipe)
}
