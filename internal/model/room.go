package model

import "time"

// RoomType identifies which template a room was created from.
type RoomType string

// Room types.
const (
	RoomKitchen  RoomType = "kitchen"
	RoomBathroom RoomType = "bathroom"
	RoomBedroom  RoomType = "bedroom"
	RoomLiving   RoomType = "living"
	RoomHallway  RoomType = "hallway"
	RoomCustom   RoomType = "custom"
)

// IsValid reports whether the room type is a recognized value.
func (t RoomType) IsValid() bool {
	_, ok := roomTemplates[t]
	return ok
}

// Room is a named collection of inspectable items.
type Room struct {
	ID    int64    `json:"id,omitempty"`
	Type  RoomType `json:"type,omitempty"`
	Name  string   `json:"name"`
	Items []*Item  `json:"items"`
}

// Inspection is the full state of one inspection session, captured as an
// immutable snapshot at report-creation time.
type Inspection struct {
	Timestamp    time.Time `json:"ts"`
	Address      string    `json:"address"`
	Tenant       string    `json:"tenant"`
	Landlord     string    `json:"landlord"`
	GeneralNotes string    `json:"notes"`
	Rooms        []Room    `json:"rooms"`
}
