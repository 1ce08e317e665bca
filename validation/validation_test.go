package validation

import "testing"

type itemPayload struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required,grocerycategory"`
	Store    string `json:"store" validate:"required,grocerystore"`
}

type pricePayload struct {
	Price string `json:"price" validate:"required,numeric"`
	Unit  string `json:"unit" validate:"required,priceunit"`
}

func TestValidItemPayload(t *testing.T) {
	p := itemPayload{Name: "Milk", Category: "Dairy", Store: "Costco"}
	if err := Validate(&p); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRejectsUnknownCategory(t *testing.T) {
	p := itemPayload{Name: "Milk", Category: "Produce", Store: "Costco"}
	if err := Validate(&p); err == nil {
		t.Error("category outside the vocabulary should be rejected")
	}
}

func TestRejectsUnknownStore(t *testing.T) {
	p := itemPayload{Name: "Milk", Category: "Dairy", Store: "Target"}
	if err := Validate(&p); err == nil {
		t.Error("store outside the vocabulary should be rejected")
	}
}

func TestRejectsEmptyName(t *testing.T) {
	p := itemPayload{Category: "Dairy", Store: "Costco"}
	err := Validate(&p)
	if err == nil {
		t.Fatal("empty name should be rejected")
	}
	fields := FormatValidationErrors(err)
	if _, ok := fields["name"]; !ok {
		t.Errorf("error should be keyed by json field name, got %v", fields)
	}
}

func TestPriceMustBeNumeric(t *testing.T) {
	p := pricePayload{Price: "ten dollars", Unit: "lb"}
	if err := Validate(&p); err == nil {
		t.Error("non-numeric price should be rejected")
	}
}

func TestUnitVocabulary(t *testing.T) {
	ok := pricePayload{Price: "3.50", Unit: "sq ft"}
	if err := Validate(&ok); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	bad := pricePayload{Price: "3.50", Unit: "bushel"}
	if err := Validate(&bad); err == nil {
		t.Error("unit outside the vocabulary should be rejected")
	}
}
