package home

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"

	"pantry/models"
)

func getSection(t *testing.T, section string) *httptest.ResponseRecorder {
	t.Helper()
	router := httprouter.New()
	router.GET("/api/v1/home/:section", GetHomeContent)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/home/"+section, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestVocabularySections(t *testing.T) {
	tests := []struct {
		section string
		want    []string
	}{
		{"categories", models.Categories},
		{"stores", models.Stores},
		{"units", models.Units},
		{"pricestores", models.DefaultPriceStores},
	}

	for _, tt := range tests {
		t.Run(tt.section, func(t *testing.T) {
			rec := getSection(t, tt.section)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}

			var got []string
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d entries, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("entry %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestUnknownSectionIs404(t *testing.T) {
	rec := getSection(t, "aisles")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
