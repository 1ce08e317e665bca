package recipes

import (
	"strings"

	"pantry/models"
)

// SearchMode selects which recipe field the search text matches against.
type SearchMode string

const (
	SearchByName       SearchMode = "name"
	SearchByIngredient SearchMode = "ingredient"
)

// Filter holds the browse predicates: one case-insensitive substring search
// plus optional inclusive macro ceilings. A nil ceiling excludes nothing on
// that dimension.
type Filter struct {
	Search     string
	Mode       SearchMode
	ProteinMax *float64
	CarbsMax   *float64
	FatMax     *float64
}

// Apply returns the recipes passing every predicate, preserving input order.
func (f Filter) Apply(all []models.Recipe) []models.Recipe {
	needle := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]models.Recipe, 0, len(all))
	for _, rec := range all {
		if !f.matchSearch(rec, needle) {
			continue
		}
		if f.ProteinMax != nil && rec.Protein > *f.ProteinMax {
			continue
		}
		if f.CarbsMax != nil && rec.Carbs > *f.CarbsMax {
			continue
		}
		if f.FatMax != nil && rec.Fat > *f.FatMax {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func (f Filter) matchSearch(rec models.Recipe, needle string) bool {
	if needle == "" {
		return true
	}
	if f.Mode == SearchByIngredient {
		for _, ing := range rec.Ingredients {
			if strings.Contains(strings.ToLower(ing), needle) {
				return true
			}
		}
		return false
	}
	return strings.Contains(strings.ToLower(rec.Name), needle)
}
