package model

// ItemStatus is the recorded condition of an inspectable item.
type ItemStatus string

// Item statuses. These are wire values; they appear verbatim in
// serialized snapshots and reports.
const (
	ItemStatusOK      ItemStatus = "OK"
	ItemStatusDamaged ItemStatus = "Damaged"
)

// IsValid reports whether the status is a recognized value.
func (s ItemStatus) IsValid() bool {
	return s == ItemStatusOK || s == ItemStatusDamaged
}

// ItemOrigin records how an item came to be part of a room.
type ItemOrigin string

// Item origins.
const (
	OriginStructural ItemOrigin = "structural"
	OriginFurnishing ItemOrigin = "furnishing"
	OriginCustom     ItemOrigin = "custom"
)

// Item is a single inspectable unit within a room.
//
// Invariant: an item with status OK carries no damage detail. Notes is
// empty and PhotoIDs is empty. The builder enforces this on every
// transition; ClearDamage restores it.
type Item struct {
	ID       int64      `json:"id,omitempty"`
	Label    string     `json:"label"`
	Status   ItemStatus `json:"status"`
	Notes    string     `json:"notes,omitempty"`
	PhotoIDs []string   `json:"photos,omitempty"`
	Origin   ItemOrigin `json:"origin,omitempty"`
}

// ClearDamage wipes notes and photo references, restoring the OK-state
// invariant. It does not touch the photo store; callers must delete the
// referenced blobs first.
func (i *Item) ClearDamage() {
	i.Notes = ""
	i.PhotoIDs = nil
}

// Damaged reports whether the item is marked damaged.
func (i *Item) Damaged() bool {
	return i.Status == ItemStatusDamaged
}
