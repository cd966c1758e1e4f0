package model

// roomTemplate holds the fixed item vocabulary for one room type.
type roomTemplate struct {
	label      string
	structural []string
	furnishing []string
}

// roomTemplates is the room-type vocabulary. Structural items are always
// present; furnishing items only while furnished mode is on. Bathrooms and
// custom rooms intentionally have no furnishing template.
var roomTemplates = map[RoomType]roomTemplate{
	RoomKitchen: {
		label:      "Kitchen",
		structural: []string{"Walls", "Cabinets", "Worktops", "Sink", "Flooring", "Doors"},
		furnishing: []string{"Fridge/Freezer", "Oven/Hob", "Washing Machine", "Table & Chairs"},
	},
	RoomBathroom: {
		label:      "Bathroom",
		structural: []string{"Walls", "Tiles", "Shower/Bath", "Toilet", "Sink", "Flooring", "Ventilation", "Doors"},
	},
	RoomBedroom: {
		label:      "Bedroom",
		structural: []string{"Walls", "Doors", "Windows", "Flooring", "Wardrobes"},
		furnishing: []string{"Bed Frame", "Mattress", "Curtains/Blinds"},
	},
	RoomLiving: {
		label:      "Living Room",
		structural: []string{"Walls", "Doors", "Windows", "Flooring", "Fixtures"},
		furnishing: []string{"Sofa", "Coffee Table", "TV Stand", "Curtains/Blinds"},
	},
	RoomHallway: {
		label:      "Hallway",
		structural: []string{"Walls", "Doors", "Flooring", "Lighting"},
		furnishing: []string{"Mirror", "Shoe Rack"},
	},
	RoomCustom: {
		label:      "Custom Room",
		structural: []string{"Walls", "Doors", "Windows", "Flooring"},
	},
}

// RoomLabel returns the canonical display label for a room type, or the
// raw type string if unknown.
func RoomLabel(t RoomType) string {
	if tmpl, ok := roomTemplates[t]; ok {
		return tmpl.label
	}
	return string(t)
}

// StructuralLabels returns the structural item labels for a room type.
func StructuralLabels(t RoomType) []string {
	return clone(roomTemplates[t].structural)
}

// FurnishingLabels returns the furnishing item labels for a room type.
// The result may be empty.
func FurnishingLabels(t RoomType) []string {
	return clone(roomTemplates[t].furnishing)
}

// RoomTypes returns all known room types in menu order.
func RoomTypes() []RoomType {
	return []RoomType{RoomKitchen, RoomBathroom, RoomBedroom, RoomLiving, RoomHallway, RoomCustom}
}

func clone(labels []string) []string {
	if labels == nil {
		return nil
	}
	out := make([]string, len(labels))
	copy(out, labels)
	return out
}
