package grocery

import (
	"testing"

	"pantry/models"
)

func item(name, category, store string) models.GroceryItem {
	return models.GroceryItem{Name: name, Category: category, Store: store}
}

func TestGroupByCategoryMembership(t *testing.T) {
	items := []models.GroceryItem{
		item("Apples", "Fruits", "Costco"),
		item("Bananas", "Fruits", "Costco"),
		item("Milk", "Dairy", "Costco"),
	}

	groups := GroupByCategory(items, nil)

	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groups))
	}
	if groups[0].Category != "Fruits" || groups[0].Count != 2 {
		t.Errorf("groups[0] = %q/%d, want Fruits/2", groups[0].Category, groups[0].Count)
	}
	if groups[1].Category != "Dairy" || groups[1].Count != 1 {
		t.Errorf("groups[1] = %q/%d, want Dairy/1", groups[1].Category, groups[1].Count)
	}

	// Every item with a known category appears in exactly one group.
	total := 0
	for _, g := range groups {
		total += len(g.Items)
	}
	if total != len(items) {
		t.Errorf("items across groups = %d, want %d", total, len(items))
	}
}

func TestGroupByCategoryDisplayOrder(t *testing.T) {
	items := []models.GroceryItem{
		item("Soap", "Household Supplies", "Costco"),
		item("Apples", "Fruits", "Costco"),
		item("Chicken", "Meat", "Costco"),
	}

	groups := GroupByCategory(items, nil)

	want := []string{"Fruits", "Meat", "Household Supplies"}
	if len(groups) != len(want) {
		t.Fatalf("groups = %d, want %d", len(groups), len(want))
	}
	for i, g := range groups {
		if g.Category != want[i] {
			t.Errorf("groups[%d] = %q, want %q", i, g.Category, want[i])
		}
	}
}

func TestGroupByCategoryDropsUnknownCategory(t *testing.T) {
	items := []models.GroceryItem{
		item("Apples", "Fruits", "Costco"),
		item("Mystery", "Produce", "Costco"), // not in the vocabulary
	}

	groups := GroupByCategory(items, nil)

	if len(groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(groups))
	}
	for _, g := range groups {
		for _, it := range g.Items {
			if it.Name == "Mystery" {
				t.Errorf("unknown-category item appeared in group %q", g.Category)
			}
		}
	}
}

func TestGroupByCategoryOmitsEmptyGroups(t *testing.T) {
	groups := GroupByCategory([]models.GroceryItem{item("Milk", "Dairy", "Costco")}, nil)

	if len(groups) != 1 {
		t.Fatalf("groups = %d, want 1 (empty categories must be omitted)", len(groups))
	}
}

func TestFilterByStoreExclusivity(t *testing.T) {
	items := []models.GroceryItem{
		item("Apples", "Fruits", "Costco"),
		item("Bread", "Dry Goods", "Other"),
		item("Milk", "Dairy", "Costco"),
	}

	costco := FilterByStore(items, "Costco")
	other := FilterByStore(items, "Other")

	if len(costco) != 2 {
		t.Errorf("costco items = %d, want 2", len(costco))
	}
	if len(other) != 1 {
		t.Errorf("other items = %d, want 1", len(other))
	}
	for _, it := range costco {
		if it.Store != "Costco" {
			t.Errorf("item %q in Costco tab has store %q", it.Name, it.Store)
		}
	}
}

func TestExpansionSetDefaultsOpen(t *testing.T) {
	e := NewExpansionSet()
	for _, c := range models.Categories {
		if !e.IsExpanded(c) {
			t.Errorf("category %q should default to expanded", c)
		}
	}
}

func TestExpansionSetToggle(t *testing.T) {
	e := NewExpansionSet()

	e.Toggle("Dairy")
	if e.IsExpanded("Dairy") {
		t.Error("Dairy should be collapsed after one toggle")
	}
	if !e.IsExpanded("Fruits") {
		t.Error("toggling Dairy must not affect Fruits")
	}

	e.Toggle("Dairy")
	if !e.IsExpanded("Dairy") {
		t.Error("double-toggle should restore the prior state")
	}
}

func TestExpansionStateSurvivesDataRefresh(t *testing.T) {
	e := NewExpansionSet()
	e.Toggle("Dairy")

	// Same view state applied to two different snapshots.
	first := GroupByCategory([]models.GroceryItem{item("Milk", "Dairy", "Costco")}, e)
	second := GroupByCategory([]models.GroceryItem{
		item("Milk", "Dairy", "Costco"),
		item("Cheese", "Dairy", "Costco"),
	}, e)

	if first[0].Expanded || second[0].Expanded {
		t.Error("collapsed state should survive a data refresh")
	}
	if second[0].Count != 2 {
		t.Errorf("count = %d, want 2", second[0].Count)
	}
}
