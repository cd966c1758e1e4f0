// Package builder holds the mutable state of one inspection editing
// session: the ordered rooms and their items, the furnished-mode flag and
// the property details. All commands go through the Builder so that the
// damage invariants and photo ownership rules hold after every mutation.
package builder

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/erazemk/ogled/internal/model"
	"github.com/erazemk/ogled/internal/photo"
)

// PhotoStore is the photo persistence boundary the builder needs. It is
// implemented by photo.Store.
type PhotoStore interface {
	Save(ctx context.Context, id string, data []byte, mime string) error
	Delete(ctx context.Context, id string) error
	ClearAll(ctx context.Context) error
}

// Command errors.
var (
	ErrUnknownRoomType = errors.New("unknown room type")
	ErrRoomNotFound    = errors.New("room not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrItemNotDamaged  = errors.New("item is not marked damaged")
	ErrItemNotCustom   = errors.New("only custom items can be removed")
	ErrInvalidStatus   = errors.New("invalid item status")
)

// Builder is the single mutator of one session's inspection state. All
// methods are safe for concurrent use; commands are serialized so that a
// photo purge always completes (or fails) before the next command on the
// same item runs.
type Builder struct {
	mu     sync.Mutex
	photos PhotoStore
	newID  func() string

	rooms     []*model.Room
	furnished bool

	address      string
	tenant       string
	landlord     string
	generalNotes string

	nextRoomID   int64
	nextItemID   int64
	bedroomCount int64
}

// New creates an empty session backed by the given photo store.
func New(photos PhotoStore) *Builder {
	return &Builder{photos: photos, newID: photo.NewID}
}

// SetDetails records the free-text property details. Values are trimmed.
func (b *Builder) SetDetails(address, tenant, landlord, generalNotes string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.address = strings.TrimSpace(address)
	b.tenant = strings.TrimSpace(tenant)
	b.landlord = strings.TrimSpace(landlord)
	b.generalNotes = strings.TrimSpace(generalNotes)
}

// Furnished reports whether furnished mode is on.
func (b *Builder) Furnished() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.furnished
}

// Rooms returns a copy of the current rooms in creation order.
func (b *Builder) Rooms() []*model.Room {
	b.mu.Lock()
	defer b.mu.Unlock()

	rooms := make([]*model.Room, len(b.rooms))
	for i, room := range b.rooms {
		rooms[i] = copyRoom(room)
	}
	return rooms
}

// AddRoom creates a room from the template for the given type, including
// furnishing items when furnished mode is on. Bedrooms get a numbered
// name from a counter owned by this session.
func (b *Builder) AddRoom(roomType model.RoomType) (*model.Room, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !roomType.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRoomType, roomType)
	}

	b.nextRoomID++
	room := &model.Room{
		ID:   b.nextRoomID,
		Type: roomType,
		Name: model.RoomLabel(roomType),
	}
	if roomType == model.RoomBedroom {
		b.bedroomCount++
		room.Name = fmt.Sprintf("Bedroom %d", b.bedroomCount)
	}

	for _, label := range model.StructuralLabels(roomType) {
		room.Items = append(room.Items, b.newItem(label, model.OriginStructural))
	}
	if b.furnished {
		for _, label := range model.FurnishingLabels(roomType) {
			room.Items = append(room.Items, b.newItem(label, model.OriginFurnishing))
		}
	}

	b.rooms = append(b.rooms, room)
	return copyRoom(room), nil
}

// RemoveRoom deletes a room. Photos of its damaged items are purged
// first; if any delete fails the room is kept and the error returned so
// the user can retry.
func (b *Builder) RemoveRoom(ctx context.Context, roomID int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx := -1
	for i, room := range b.rooms {
		if room.ID == roomID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrRoomNotFound
	}

	var errs []error
	for _, item := range b.rooms[idx].Items {
		if err := b.purgeItem(ctx, item); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("purging photos for room %q: %w", b.rooms[idx].Name, err)
	}

	b.rooms = append(b.rooms[:idx], b.rooms[idx+1:]...)
	return nil
}

// RenameRoom sets a room's display name. An empty or whitespace-only
// name keeps the current one.
func (b *Builder) RenameRoom(roomID int64, name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	room := b.findRoom(roomID)
	if room == nil {
		return ErrRoomNotFound
	}
	if name = strings.TrimSpace(name); name != "" {
		room.Name = name
	}
	return nil
}

// SetFurnished toggles furnished mode. Turning it on appends each room's
// missing furnishing-template items; turning it off removes every
// furnishing item, purging photos of damaged ones first. Furnishing items
// are ephemeral: any damage recorded on them is lost when the mode turns
// off and they come back fresh when it turns on again.
func (b *Builder) SetFurnished(ctx context.Context, furnished bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.furnished == furnished {
		return nil
	}

	if furnished {
		b.furnished = true
		for _, room := range b.rooms {
			present := make(map[string]bool)
			for _, item := range room.Items {
				if item.Origin == model.OriginFurnishing {
					present[item.Label] = true
				}
			}
			for _, label := range model.FurnishingLabels(room.Type) {
				if !present[label] {
					room.Items = append(room.Items, b.newItem(label, model.OriginFurnishing))
				}
			}
		}
		return nil
	}

	var errs []error
	for _, room := range b.rooms {
		kept := room.Items[:0]
		for _, item := range room.Items {
			if item.Origin != model.OriginFurnishing {
				kept = append(kept, item)
				continue
			}
			if err := b.purgeItem(ctx, item); err != nil {
				// Fail closed: keep the item (with its remaining photo
				// references) rather than orphaning blobs.
				errs = append(errs, err)
				kept = append(kept, item)
			}
		}
		room.Items = kept
	}
	if err := errors.Join(errs...); err != nil {
		// The mode stays on while furnishing items remain, so retrying
		// the toggle reaches the undeleted blobs instead of no-opping.
		return err
	}
	b.furnished = false
	return nil
}

// AddCustomItem appends a user-defined item to a room. Empty or
// whitespace-only labels are silently ignored (nil item, no error).
func (b *Builder) AddCustomItem(roomID int64, label string) (*model.Item, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	room := b.findRoom(roomID)
	if room == nil {
		return nil, ErrRoomNotFound
	}
	if label = strings.TrimSpace(label); label == "" {
		return nil, nil
	}

	item := b.newItem(label, model.OriginCustom)
	room.Items = append(room.Items, item)
	return copyItem(item), nil
}

// RemoveItem deletes a custom item, purging its photos if it was damaged.
// Template items (structural or furnishing) cannot be removed
// individually.
func (b *Builder) RemoveItem(ctx context.Context, roomID, itemID int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	room := b.findRoom(roomID)
	if room == nil {
		return ErrRoomNotFound
	}

	for i, item := range room.Items {
		if item.ID != itemID {
			continue
		}
		if item.Origin != model.OriginCustom {
			return ErrItemNotCustom
		}
		if err := b.purgeItem(ctx, item); err != nil {
			return fmt.Errorf("purging photos for item %q: %w", item.Label, err)
		}
		room.Items = append(room.Items[:i], room.Items[i+1:]...)
		return nil
	}
	return ErrItemNotFound
}

// SetItemStatus applies the OK/Damaged state machine. The transition from
// Damaged to OK purges every photo the item references; if any delete
// fails the item stays Damaged with the undeleted ids still referenced
// and the error is returned, so a retry purges only what remains.
func (b *Builder) SetItemStatus(ctx context.Context, roomID, itemID int64, status model.ItemStatus) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	item, err := b.findItem(roomID, itemID)
	if err != nil {
		return err
	}
	if item.Status == status {
		return nil
	}

	if status == model.ItemStatusOK {
		if err := b.purgeItem(ctx, item); err != nil {
			return fmt.Errorf("purging photos for item %q: %w", item.Label, err)
		}
	}
	item.Status = status
	return nil
}

// SetItemNotes records damage notes. Only valid while the item is marked
// damaged; notes on OK items must stay empty.
func (b *Builder) SetItemNotes(roomID, itemID int64, notes string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	item, err := b.findItem(roomID, itemID)
	if err != nil {
		return err
	}
	if !item.Damaged() {
		return ErrItemNotDamaged
	}
	item.Notes = strings.TrimSpace(notes)
	return nil
}

// AddPhoto stores a photo blob and appends its generated id to the item's
// photo list. The id is only recorded once the store write succeeds, so
// the list never references missing data. Rejected for OK items.
func (b *Builder) AddPhoto(ctx context.Context, roomID, itemID int64, data []byte, mime string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	item, err := b.findItem(roomID, itemID)
	if err != nil {
		return "", err
	}
	if !item.Damaged() {
		return "", ErrItemNotDamaged
	}

	id := b.newID()
	if err := b.photos.Save(ctx, id, data, mime); err != nil {
		return "", fmt.Errorf("storing photo: %w", err)
	}
	item.PhotoIDs = append(item.PhotoIDs, id)
	return id, nil
}

// RemovePhoto deletes one photo blob and drops its id from the item. The
// id is only dropped once the delete succeeds (fail closed).
func (b *Builder) RemovePhoto(ctx context.Context, roomID, itemID int64, photoID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	item, err := b.findItem(roomID, itemID)
	if err != nil {
		return err
	}

	for i, id := range item.PhotoIDs {
		if id != photoID {
			continue
		}
		if err := b.photos.Delete(ctx, id); err != nil {
			return fmt.Errorf("deleting photo: %w", err)
		}
		item.PhotoIDs = append(item.PhotoIDs[:i], item.PhotoIDs[i+1:]...)
		return nil
	}
	return fmt.Errorf("photo %s: %w", photoID, ErrItemNotFound)
}

// Snapshot captures the current state as an immutable Inspection with a
// fresh timestamp. Free text is trimmed; rooms without a name fall back
// to "Room".
func (b *Builder) Snapshot() model.Inspection {
	b.mu.Lock()
	defer b.mu.Unlock()

	insp := model.Inspection{
		Timestamp:    time.Now().UTC(),
		Address:      b.address,
		Tenant:       b.tenant,
		Landlord:     b.landlord,
		GeneralNotes: b.generalNotes,
		Rooms:        make([]model.Room, 0, len(b.rooms)),
	}

	for _, room := range b.rooms {
		cp := *copyRoom(room)
		if cp.Name = strings.TrimSpace(cp.Name); cp.Name == "" {
			cp.Name = "Room"
		}
		for _, item := range cp.Items {
			item.Notes = strings.TrimSpace(item.Notes)
		}
		insp.Rooms = append(insp.Rooms, cp)
	}
	return insp
}

// Reset clears the session and the photo store, starting a fresh
// inspection. State is kept if the store clear fails.
func (b *Builder) Reset(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.photos.ClearAll(ctx); err != nil {
		return fmt.Errorf("clearing photo store: %w", err)
	}

	b.rooms = nil
	b.furnished = false
	b.address, b.tenant, b.landlord, b.generalNotes = "", "", "", ""
	b.nextRoomID, b.nextItemID, b.bedroomCount = 0, 0, 0
	return nil
}

// purgeItem deletes every photo the item references and clears its
// damage detail. Each id is dropped only after its delete succeeds;
// undeleted ids stay referenced and the joined errors are returned.
func (b *Builder) purgeItem(ctx context.Context, item *model.Item) error {
	if len(item.PhotoIDs) == 0 {
		item.ClearDamage()
		return nil
	}

	var errs []error
	remaining := item.PhotoIDs[:0]
	for _, id := range item.PhotoIDs {
		if err := b.photos.Delete(ctx, id); err != nil {
			errs = append(errs, err)
			remaining = append(remaining, id)
		}
	}

	if len(errs) > 0 {
		item.PhotoIDs = remaining
		return errors.Join(errs...)
	}
	item.ClearDamage()
	return nil
}

func (b *Builder) newItem(label string, origin model.ItemOrigin) *model.Item {
	b.nextItemID++
	return &model.Item{
		ID:     b.nextItemID,
		Label:  label,
		Status: model.ItemStatusOK,
		Origin: origin,
	}
}

func (b *Builder) findRoom(roomID int64) *model.Room {
	for _, room := range b.rooms {
		if room.ID == roomID {
			return room
		}
	}
	return nil
}

func (b *Builder) findItem(roomID, itemID int64) (*model.Item, error) {
	room := b.findRoom(roomID)
	if room == nil {
		return nil, ErrRoomNotFound
	}
	for _, item := range room.Items {
		if item.ID == itemID {
			return item, nil
		}
	}
	return nil, ErrItemNotFound
}

func copyRoom(room *model.Room) *model.Room {
	cp := *room
	cp.Items = make([]*model.Item, len(room.Items))
	for i, item := range room.Items {
		cp.Items[i] = copyItem(item)
	}
	return &cp
}

func copyItem(item *model.Item) *model.Item {
	cp := *item
	if item.PhotoIDs != nil {
		cp.PhotoIDs = make([]string, len(item.PhotoIDs))
		copy(cp.PhotoIDs, item.PhotoIDs)
	}
	return &cp
}
