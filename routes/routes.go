package routes

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"pantry/grocery"
	"pantry/home"
	"pantry/live"
	"pantry/metrics"
	"pantry/prices"
	"pantry/ratelim"
	"pantry/recipes"
)

func AddShoppingRoutes(router *httprouter.Router, h *grocery.Handler, rl *ratelim.RateLimiter) {
	router.GET("/api/v1/shopping/items", h.GetItems)
	router.POST("/api/v1/shopping/items", rl.Limit(h.CreateItem))
	router.DELETE("/api/v1/shopping/items/:id", rl.Limit(h.DeleteItem))
}

func AddPriceRoutes(router *httprouter.Router, h *prices.Handler, rl *ratelim.RateLimiter) {
	router.GET("/api/v1/shopping/prices", h.GetItemPrices)
	router.GET("/api/v1/shopping/prices/lookup", h.LookupPrice)
	router.PUT("/api/v1/shopping/prices", rl.Limit(h.SavePrice))
	router.GET("/api/v1/shopping/suggestions", rl.Limit(h.Suggestions))
	router.GET("/api/v1/shopping/stores", h.GetStores)
}

func AddRecipeRoutes(router *httprouter.Router, h *recipes.Handler, rl *ratelim.RateLimiter) {
	router.GET("/api/v1/recipes", h.GetRecipes)
	router.GET("/api/v1/recipes/recipe/:id", h.GetRecipe)
	router.POST("/api/v1/recipes", rl.Limit(h.CreateRecipe))
}

func AddLiveRoutes(router *httprouter.Router, hub *live.Hub) {
	router.GET("/ws/shopping", live.Feed(hub))
}

func AddHomeRoutes(router *httprouter.Router) {
	router.GET("/api/v1/home/:section", home.GetHomeContent)
}

func AddMetricsRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/metrics", metrics.Handler())
}
