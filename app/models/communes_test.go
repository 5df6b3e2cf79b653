package models_test

import (
	"testing"

	"github.com/damassweet/damas/app/models"
)

func TestCommuneList(t *testing.T) {
	if len(models.Communes) != 55 {
		t.Errorf("have %d communes, want 55", len(models.Communes))
	}

	for _, name := range []string{"Hydra", "Bab El Oued", "Alger Centre", "Les Eucalyptus"} {
		if !models.ValidCommune(name) {
			t.Errorf("%q should be a valid commune", name)
		}
	}
	if models.ValidCommune("Oran") {
		t.Error("Oran is outside the delivery zone")
	}
	if models.ValidCommune("hydra") {
		t.Error("commune match must be exact, not case-folded")
	}
}

func TestStatusAndBoxSizeValidation(t *testing.T) {
	for _, s := range models.Statuses {
		if !models.ValidStatus(s) {
			t.Errorf("%q should be valid", s)
		}
	}
	if models.ValidStatus("shipped") {
		t.Error("shipped is not a status")
	}

	for _, b := range models.BoxSizes {
		if !models.ValidBoxSize(b) {
			t.Errorf("%q should be valid", b)
		}
	}
	if models.ValidBoxSize("small") {
		t.Error("box sizes are stored in Arabic only")
	}
}

func TestStockEntryTotal(t *testing.T) {
	entry := models.StockEntry{QuantitySmall: 3, QuantityMedium: 2, QuantityLarge: 1}
	if got := entry.Total(); got != 6 {
		t.Errorf("total = %d, want 6", got)
	}
}
