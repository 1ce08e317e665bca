package recipes

import (
	"testing"

	"pantry/models"
)

func fptr(v float64) *float64 { return &v }

func sampleRecipes() []models.Recipe {
	return []models.Recipe{
		{Name: "A", Ingredients: []string{"egg", "milk"}, Protein: 10, Carbs: 5, Fat: 3},
		{Name: "B", Ingredients: []string{"flour"}, Protein: 30, Carbs: 60, Fat: 12},
	}
}

func names(recipes []models.Recipe) []string {
	out := make([]string, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r.Name)
	}
	return out
}

func TestFilterByIngredient(t *testing.T) {
	f := Filter{Search: "egg", Mode: SearchByIngredient}

	got := names(f.Apply(sampleRecipes()))
	if len(got) != 1 || got[0] != "A" {
		t.Errorf("got %v, want [A]", got)
	}
}

func TestFilterByNameCaseInsensitive(t *testing.T) {
	f := Filter{Search: "a", Mode: SearchByName}

	got := names(f.Apply(sampleRecipes()))
	if len(got) != 1 || got[0] != "A" {
		t.Errorf("got %v, want [A]", got)
	}
}

func TestFilterEmptySearchPassesAll(t *testing.T) {
	f := Filter{Mode: SearchByName}

	if got := f.Apply(sampleRecipes()); len(got) != 2 {
		t.Errorf("got %d recipes, want 2", len(got))
	}
}

func TestProteinCeilingInclusive(t *testing.T) {
	f := Filter{Mode: SearchByName, ProteinMax: fptr(20)}

	got := names(f.Apply(sampleRecipes()))
	if len(got) != 1 || got[0] != "A" {
		t.Errorf("got %v, want [A]", got)
	}

	// The bound itself passes.
	exact := Filter{Mode: SearchByName, ProteinMax: fptr(10)}
	if got := names(exact.Apply(sampleRecipes())); len(got) != 1 || got[0] != "A" {
		t.Errorf("got %v, want [A] at the exact ceiling", got)
	}
}

func TestUnsetCeilingExcludesNothing(t *testing.T) {
	f := Filter{Mode: SearchByName}

	if got := f.Apply(sampleRecipes()); len(got) != 2 {
		t.Errorf("unset ceilings excluded recipes: got %d, want 2", len(got))
	}
}

func TestCombinedPredicates(t *testing.T) {
	recs := []models.Recipe{
		{Name: "Omelette", Ingredients: []string{"egg", "cheese"}, Protein: 18, Carbs: 2, Fat: 14},
		{Name: "Egg fried rice", Ingredients: []string{"egg", "rice"}, Protein: 12, Carbs: 45, Fat: 10},
	}

	f := Filter{Search: "egg", Mode: SearchByIngredient, CarbsMax: fptr(10)}
	got := names(f.Apply(recs))
	if len(got) != 1 || got[0] != "Omelette" {
		t.Errorf("got %v, want [Omelette]", got)
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	recs := []models.Recipe{{Name: "C"}, {Name: "A"}, {Name: "B"}}

	got := names(Filter{Mode: SearchByName}.Apply(recs))
	want := []string{"C", "A", "B"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order changed: got %v, want %v", got, want)
		}
	}
}
