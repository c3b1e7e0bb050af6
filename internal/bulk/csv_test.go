package bulk

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"bluecycle/internal/domain"
	"bluecycle/internal/models"
)

func TestPickupRoundTrip(t *testing.T) {
	driver := uint(7)
	in := []models.Pickup{
		{
			ID:             1,
			Address:        "Jl. Sudirman 1",
			WasteType:      "plastic",
			QuantityKg:     5.5,
			DeliveryMethod: domain.DeliveryPickup,
			Status:         domain.PickupCompleted,
			Price:          100000,
			RequestedByID:  3,
			AssignedDriverID: &driver,
			CreatedAt:      time.Now(),
		},
		{
			ID:             2,
			Address:        "Jl. Thamrin, blok \"B\"",
			WasteType:      "glass",
			QuantityKg:     2,
			DeliveryMethod: domain.DeliveryDropoff,
			Status:         domain.PickupPending,
			Price:          40000,
			RequestedByID:  4,
			CreatedAt:      time.Now(),
		},
	}

	var buf bytes.Buffer
	if err := WritePickups(&buf, in); err != nil {
		t.Fatalf("write: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	out, res := ParsePickups(lines)
	if res.Failed != 0 {
		t.Fatalf("failed rows: %v", res.Errors)
	}
	if res.Success != len(in) || len(out) != len(in) {
		t.Fatalf("parsed %d rows, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i].Address != in[i].Address ||
			out[i].WasteType != in[i].WasteType ||
			out[i].QuantityKg != in[i].QuantityKg ||
			out[i].DeliveryMethod != in[i].DeliveryMethod ||
			out[i].Status != in[i].Status ||
			out[i].Price != in[i].Price ||
			out[i].RequestedByID != in[i].RequestedByID {
			t.Errorf("row %d: got %+v, want %+v", i, out[i], in[i])
		}
	}
	if out[0].AssignedDriverID == nil || *out[0].AssignedDriverID != driver {
		t.Errorf("row 0: assigned driver lost in round trip")
	}
	if out[1].AssignedDriverID != nil {
		t.Errorf("row 1: unexpected assigned driver")
	}
}

func TestParsePickupsBadRows(t *testing.T) {
	lines := []string{
		strings.Join(PickupHeader, ","),
		`,Jl. A,plastic,5,PICKUP,PENDING,50000,3,,`,
		`,Jl. B,plastic,notanumber,PICKUP,PENDING,50000,3,,`,
		`,Jl. C,plastic,5,TELEPORT,PENDING,50000,3,,`,
		`,Jl. D,plastic,5,PICKUP,WHATEVER,50000,3,,`,
		`,Jl. E,plastic,5,PICKUP,PENDING,-1,3,,`,
		"",
	}
	out, res := ParsePickups(lines)
	if res.Success != 1 || len(out) != 1 {
		t.Fatalf("success = %d (rows %d), want 1", res.Success, len(out))
	}
	if res.Failed != 4 {
		t.Fatalf("failed = %d, want 4; errors: %v", res.Failed, res.Errors)
	}
	if len(res.Errors) != 4 {
		t.Fatalf("errors = %v, want 4 entries", res.Errors)
	}
}

func TestCollectionPointRoundTrip(t *testing.T) {
	in := []models.CollectionPoint{
		{ID: 1, Name: "Depo Selatan", Address: "Jl. Raya 10", City: "Jakarta", Latitude: -6.2, Longitude: 106.8, CapacityKg: 1200, Active: true},
		{ID: 2, Name: "Depo Utara", Address: "Jl. Pantai 2", City: "Jakarta", Latitude: -6.1, Longitude: 106.9, CapacityKg: 800, Active: false},
	}
	var buf bytes.Buffer
	if err := WriteCollectionPoints(&buf, in); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	out, res := ParseCollectionPoints(lines)
	if res.Failed != 0 || len(out) != len(in) {
		t.Fatalf("parsed %d rows (failed %d): %v", len(out), res.Failed, res.Errors)
	}
	for i := range in {
		if out[i].Name != in[i].Name || out[i].Latitude != in[i].Latitude ||
			out[i].Longitude != in[i].Longitude || out[i].Active != in[i].Active {
			t.Errorf("row %d: got %+v, want %+v", i, out[i], in[i])
		}
	}
}

func TestCatalogRoundTrip(t *testing.T) {
	in := []models.WasteCatalogItem{
		{ID: 1, Name: "PET bottles", Category: "plastic", Unit: "kg", PricePerUnit: 3000, Active: true},
	}
	var buf bytes.Buffer
	if err := WriteCatalog(&buf, in); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	out, res := ParseCatalog(lines)
	if res.Failed != 0 || len(out) != 1 {
		t.Fatalf("parsed %d rows (failed %d): %v", len(out), res.Failed, res.Errors)
	}
	if out[0].Name != in[0].Name || out[0].PricePerUnit != in[0].PricePerUnit {
		t.Errorf("got %+v, want %+v", out[0], in[0])
	}
}

func TestImportAcceptsHeaderlessFile(t *testing.T) {
	lines := []string{`,Jl. A,plastic,5,PICKUP,PENDING,50000,3,,`}
	out, res := ParsePickups(lines)
	if res.Success != 1 || len(out) != 1 {
		t.Fatalf("success = %d, want 1: %v", res.Success, res.Errors)
	}
}
