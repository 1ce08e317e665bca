package prices

import "testing"

func TestFormatUnitPrice(t *testing.T) {
	tests := []struct {
		name   string
		price  string
		weight string
		unit   string
		want   string
	}{
		{"simple division", "10.00", "4", "lb", "$2.50 per lb"},
		{"rounds to two decimals", "10.00", "3", "oz", "$3.33 per oz"},
		{"zero weight", "10.00", "0", "lb", "$0.00"},
		{"non-numeric weight", "10.00", "a lot", "lb", "$0.00"},
		{"non-numeric price", "cheap", "4", "lb", "$0.00"},
		{"empty price", "", "4", "lb", "$0.00"},
		{"empty weight", "10.00", "", "lb", "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatUnitPrice(tt.price, tt.weight, tt.unit)
			if got != tt.want {
				t.Errorf("FormatUnitPrice(%q, %q, %q) = %q, want %q", tt.price, tt.weight, tt.unit, got, tt.want)
			}
		})
	}
}

func TestUnitPriceNoDivisionByZero(t *testing.T) {
	if _, ok := UnitPrice("10.00", "0"); ok {
		t.Error("weight 0 must not be divided")
	}
}

func TestKeyDeterministic(t *testing.T) {
	a := Key("Milk", "Costco")
	b := Key("  milk ", "COSTCO")
	if a != b {
		t.Errorf("keys differ for the same logical pair: %q vs %q", a, b)
	}
	if a != "milk|costco" {
		t.Errorf("key = %q, want %q", a, "milk|costco")
	}

	if Key("Milk", "Costco") == Key("Milk", "Kroger") {
		t.Error("different stores must produce different keys")
	}
}
