package supplier

import (
	"reflect"
	"testing"
)

func testCatalog() []Vendor {
	return []Vendor{
		{Name: "ErgoSeats Ltd", Category: "furniture", Items: []string{"office chairs", "desks"}, Price: 4000, DeliveryDays: 5, Rating: 4.5, Certified: true, Contact: "sales@ergoseats.example"},
		{Name: "BudgetOffice Co", Category: "furniture", Items: []string{"chairs", "tables"}, Price: 1500, DeliveryDays: 12, Rating: 3.8, Certified: false, Contact: "hello@budgetoffice.example"},
		{Name: "TechWorld", Category: "electronics", Items: []string{"laptops", "monitors"}, Price: 55000, DeliveryDays: 3, Rating: 4.7, Certified: true, Contact: "biz@techworld.example"},
		{Name: "PremiumSit", Category: "furniture", Items: []string{"executive chairs"}, Price: 20000, DeliveryDays: 7, Rating: 4.9, Certified: true, Contact: "contact@premiumsit.example"},
	}
}

func TestFindSuppliersFiltersByBudget(t *testing.T) {
	req := Requirements{
		ProductType:  "office chairs",
		Category:     "furniture",
		Quantity:     10,
		Budget:       50_000,
		TimelineDays: 7,
	}

	matches := FindSuppliers(req, testCatalog())

	if len(matches) == 0 {
		t.Fatal("expected in-budget matches")
	}
	for _, m := range matches {
		if total := m.Price * 10; total > req.Budget {
			t.Errorf("vendor %s total %v exceeds budget %v", m.Name, total, req.Budget)
		}
	}
}

func TestFindSuppliersRanking(t *testing.T) {
	req := Requirements{
		ProductType:  "office chairs",
		Category:     "furniture",
		Quantity:     1,
		Budget:       25_000,
		TimelineDays: 7,
	}

	matches := FindSuppliers(req, testCatalog())

	if len(matches) != 3 {
		t.Fatalf("len = %d, want 3 furniture vendors", len(matches))
	}
	// PremiumSit: 49 + 20 + 30 + 10 = 109; ErgoSeats: 45 + 20 + 30 + 10 = 105;
	// BudgetOffice: 38 + 0 + 30 + 0 = 68.
	if matches[0].Name != "PremiumSit" {
		t.Errorf("best match = %s, want PremiumSit", matches[0].Name)
	}
	if matches[1].Name != "ErgoSeats Ltd" {
		t.Errorf("second match = %s, want ErgoSeats Ltd", matches[1].Name)
	}
	if matches[2].Name != "BudgetOffice Co" {
		t.Errorf("third match = %s, want BudgetOffice Co", matches[2].Name)
	}
}

func TestFindSuppliersDeterministic(t *testing.T) {
	req := Requirements{ProductType: "chairs", Category: "furniture", Quantity: 2, Budget: 100_000}

	first := FindSuppliers(req, testCatalog())
	second := FindSuppliers(req, testCatalog())

	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different ordered results")
	}
}

func TestFindSuppliersRelaxedSubstring(t *testing.T) {
	// No category supplied and the item keyword only appears in a vendor name.
	req := Requirements{ProductType: "techworld bundle", Quantity: 1, Budget: 100_000}

	matches := FindSuppliers(req, testCatalog())

	if len(matches) == 0 {
		t.Fatal("relaxed match should find TechWorld")
	}
	if matches[0].Name != "TechWorld" {
		t.Errorf("match = %s, want TechWorld", matches[0].Name)
	}
}

func TestFindSuppliersNoMatch(t *testing.T) {
	req := Requirements{ProductType: "submarine", Category: "marine", Quantity: 1, Budget: 10}

	matches := FindSuppliers(req, testCatalog())

	if len(matches) != 0 {
		t.Errorf("len = %d, want 0", len(matches))
	}
}

func TestFindSuppliersAttributeAnswersAffectRanking(t *testing.T) {
	catalog := []Vendor{
		{Name: "PlainChairs", Category: "furniture", Items: []string{"office chairs"}, Price: 5000, DeliveryDays: 5, Rating: 4.0},
		{Name: "MeshChairs", Category: "furniture", Items: []string{"office chairs", "ergonomic mesh chairs"}, Price: 5000, DeliveryDays: 5, Rating: 4.0},
	}
	req := Requirements{
		ProductType: "office chairs",
		Category:    "furniture",
		Quantity:    1,
		Budget:      10_000,
		Attributes:  []string{"ergonomic mesh", "standard quality"},
	}

	matches := FindSuppliers(req, catalog)

	if len(matches) != 2 {
		t.Fatalf("len = %d, want 2", len(matches))
	}
	if matches[0].Name != "MeshChairs" {
		t.Errorf("best match = %s, want MeshChairs after attribute bonus", matches[0].Name)
	}
	if matches[0].Score <= matches[1].Score {
		t.Errorf("attribute overlap should break the tie, scores %v vs %v", matches[0].Score, matches[1].Score)
	}
}

func TestAttributeOverlapBonusCapped(t *testing.T) {
	v := Vendor{Items: []string{"ergonomic mesh executive chairs"}}
	attrs := []string{"ergonomic", "mesh", "executive", "chairs"}

	if got := attributeOverlapBonus(attrs, v); got != 15 {
		t.Errorf("bonus = %v, want capped 15", got)
	}
}
