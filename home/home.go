package home

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"pantry/models"
	"pantry/utils"
)

// GetHomeContent serves the closed vocabularies the client forms render from,
// under /home/:section.
func GetHomeContent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	section := strings.ToLower(ps.ByName("section"))

	var data interface{}
	switch section {
	case "categories":
		data = models.Categories
	case "stores":
		data = models.Stores
	case "units":
		data = models.Units
	case "pricestores":
		data = models.DefaultPriceStores
	default:
		utils.RespondWithError(w, http.StatusNotFound, "Invalid API route")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, data)
}
