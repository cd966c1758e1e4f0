package model

import "testing"

func TestItemStatusIsValid(t *testing.T) {
	tests := []struct {
		status   ItemStatus
		expected bool
	}{
		{ItemStatusOK, true},
		{ItemStatusDamaged, true},
		{"", false},
		{"broken", false},
		// Status values are case-sensitive wire strings.
		{"ok", false},
		{"damaged", false},
	}

	for _, tt := range tests {
		got := tt.status.IsValid()
		if got != tt.expected {
			t.Errorf("IsValid(%q) = %v, want %v", tt.status, got, tt.expected)
		}
	}
}

func TestClearDamage(t *testing.T) {
	item := &Item{
		Label:    "Walls",
		Status:   ItemStatusDamaged,
		Notes:    "crack above the door",
		PhotoIDs: []string{"p1", "p2"},
	}
	item.ClearDamage()

	if item.Notes != "" {
		t.Errorf("notes not cleared: %q", item.Notes)
	}
	if item.PhotoIDs != nil {
		t.Errorf("photo ids not cleared: %v", item.PhotoIDs)
	}
}

func TestRoomLabel(t *testing.T) {
	tests := []struct {
		roomType RoomType
		expected string
	}{
		{RoomKitchen, "Kitchen"},
		{RoomBathroom, "Bathroom"},
		{RoomLiving, "Living Room"},
		{RoomCustom, "Custom Room"},
		// Unknown types fall back to the raw string.
		{"garage", "garage"},
	}

	for _, tt := range tests {
		got := RoomLabel(tt.roomType)
		if got != tt.expected {
			t.Errorf("RoomLabel(%q) = %q, want %q", tt.roomType, got, tt.expected)
		}
	}
}

func TestTemplateShapes(t *testing.T) {
	for _, rt := range RoomTypes() {
		if len(StructuralLabels(rt)) == 0 {
			t.Errorf("%s has no structural items", rt)
		}
	}

	if got := len(StructuralLabels(RoomKitchen)); got != 6 {
		t.Errorf("kitchen structural items = %d, want 6", got)
	}

	// Bathrooms and custom rooms have nothing to add in furnished mode.
	for _, rt := range []RoomType{RoomBathroom, RoomCustom} {
		if labels := FurnishingLabels(rt); len(labels) != 0 {
			t.Errorf("%s has furnishing items %v, want none", rt, labels)
		}
	}
}

func TestLabelsAreCopies(t *testing.T) {
	first := StructuralLabels(RoomKitchen)
	first[0] = "mutated"

	second := StructuralLabels(RoomKitchen)
	if second[0] == "mutated" {
		t.Error("StructuralLabels returned a shared slice")
	}
}
