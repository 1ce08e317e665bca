package models

// Categories is the canonical grouping vocabulary, in display order. Grouping
// silently drops any item whose category is not in this list.
var Categories = []string{
	"Fruits",
	"Vegetables",
	"Meat",
	"Dry Goods",
	"Condiments & Spices",
	"Snacks",
	"Dairy",
	"Frozen Foods",
	"Beverages",
	"Health Care",
	"Household Supplies",
	"Dogs",
	"Gifts",
	"Other",
}

// Stores are the two shopping contexts an item can belong to.
var Stores = []string{"Costco", "Other"}

// Units is the fixed vocabulary for price observations.
var Units = []string{"L", "g", "gal", "item", "lb", "ml", "oz", "pack", "qt", "rolls", "sq ft"}

// DefaultPriceStores seeds the store choices in the save-price flow. Custom
// names entered under "Other" end up in the shoppingStores registry.
var DefaultPriceStores = []string{"Aldi", "Costco", "Kroger", "Publix", "Walmart", "Other"}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func ValidCategory(c string) bool { return contains(Categories, c) }

func ValidStore(s string) bool { return contains(Stores, s) }

func ValidUnit(u string) bool { return contains(Units, u) }
