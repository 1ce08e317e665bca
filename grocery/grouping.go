package grocery

import (
	"pantry/models"
)

// CategoryGroup is one rendered section of the shopping list view.
type CategoryGroup struct {
	Category string               `json:"category"`
	Count    int                  `json:"count"`
	Expanded bool                 `json:"expanded"`
	Items    []models.GroceryItem `json:"items"`
}

// FilterByStore returns the items belonging to the active store tab. An item
// is shown if and only if its store equals the tab.
func FilterByStore(items []models.GroceryItem, store string) []models.GroceryItem {
	out := make([]models.GroceryItem, 0, len(items))
	for _, it := range items {
		if it.Store == store {
			out = append(out, it)
		}
	}
	return out
}

// GroupByCategory partitions items by the fixed category vocabulary, in
// display order. Categories with no members are omitted; an item whose
// category is outside the vocabulary appears in no group. A nil expansion set
// renders every group expanded.
func GroupByCategory(items []models.GroceryItem, expanded *ExpansionSet) []CategoryGroup {
	byCategory := make(map[string][]models.GroceryItem)
	for _, it := range items {
		byCategory[it.Category] = append(byCategory[it.Category], it)
	}

	groups := make([]CategoryGroup, 0, len(models.Categories))
	for _, category := range models.Categories {
		members := byCategory[category]
		if len(members) == 0 {
			continue
		}
		groups = append(groups, CategoryGroup{
			Category: category,
			Count:    len(members),
			Expanded: expanded == nil || expanded.IsExpanded(category),
			Items:    members,
		})
	}
	return groups
}

// ExpansionSet tracks which category sections are open. Every category starts
// expanded; toggling flips one label. The set is view state, independent of
// the underlying item list, so it survives data refreshes.
type ExpansionSet struct {
	collapsed map[string]struct{}
}

func NewExpansionSet() *ExpansionSet {
	return &ExpansionSet{collapsed: make(map[string]struct{})}
}

// Toggle flips the expansion state of one category. Toggling twice restores
// the prior state.
func (e *ExpansionSet) Toggle(category string) {
	if _, ok := e.collapsed[category]; ok {
		delete(e.collapsed, category)
		return
	}
	e.collapsed[category] = struct{}{}
}

func (e *ExpansionSet) IsExpanded(category string) bool {
	_, ok := e.collapsed[category]
	return !ok
}
