package builder

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/erazemk/ogled/internal/model"
)

// flakyStore is a PhotoStore whose operations can be made to fail per id.
type flakyStore struct {
	saveErr   error
	deleteErr map[string]error
	blobs     map[string][]byte
}

func newFlakyStore() *flakyStore {
	return &flakyStore{
		deleteErr: make(map[string]error),
		blobs:     make(map[string][]byte),
	}
}

func (s *flakyStore) Save(_ context.Context, id string, data []byte, _ string) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.blobs[id] = data
	return nil
}

func (s *flakyStore) Delete(_ context.Context, id string) error {
	if err := s.deleteErr[id]; err != nil {
		return err
	}
	delete(s.blobs, id)
	return nil
}

func (s *flakyStore) ClearAll(context.Context) error {
	s.blobs = make(map[string][]byte)
	return nil
}

func damagedItem(t *testing.T, b *Builder) (roomID, itemID int64) {
	t.Helper()
	room, err := b.AddRoom(model.RoomKitchen)
	if err != nil {
		t.Fatalf("adding room: %v", err)
	}
	item := room.Items[0]
	if err := b.SetItemStatus(context.Background(), room.ID, item.ID, model.ItemStatusDamaged); err != nil {
		t.Fatalf("marking damaged: %v", err)
	}
	return room.ID, item.ID
}

func TestAddPhotoSaveFailureNoDanglingID(t *testing.T) {
	store := newFlakyStore()
	b := New(store)
	roomID, itemID := damagedItem(t, b)

	store.saveErr = errors.New("disk full")
	if _, err := b.AddPhoto(context.Background(), roomID, itemID, []byte("pic"), "image/jpeg"); err == nil {
		t.Fatal("expected save failure to surface")
	}

	if ids := findItem(t, b, roomID, itemID).PhotoIDs; len(ids) != 0 {
		t.Errorf("failed save must not record an id, got %v", ids)
	}
}

func TestRemovePhotoDeleteFailureKeepsID(t *testing.T) {
	store := newFlakyStore()
	b := New(store)
	roomID, itemID := damagedItem(t, b)
	ctx := context.Background()

	id, err := b.AddPhoto(ctx, roomID, itemID, []byte("pic"), "image/jpeg")
	if err != nil {
		t.Fatalf("adding photo: %v", err)
	}

	store.deleteErr[id] = errors.New("io error")
	if err := b.RemovePhoto(ctx, roomID, itemID, id); err == nil {
		t.Fatal("expected delete failure to surface")
	}

	// Fail closed: the reference survives a failed delete.
	if ids := findItem(t, b, roomID, itemID).PhotoIDs; !slices.Contains(ids, id) {
		t.Errorf("id dropped despite failed delete, list: %v", ids)
	}
}

func TestPartialPurgeKeepsItemDamaged(t *testing.T) {
	store := newFlakyStore()
	b := New(store)
	roomID, itemID := damagedItem(t, b)
	ctx := context.Background()

	good, _ := b.AddPhoto(ctx, roomID, itemID, []byte("one"), "image/jpeg")
	bad, _ := b.AddPhoto(ctx, roomID, itemID, []byte("two"), "image/jpeg")
	store.deleteErr[bad] = errors.New("io error")

	if err := b.SetItemStatus(ctx, roomID, itemID, model.ItemStatusOK); err == nil {
		t.Fatal("expected partial purge failure to surface")
	}

	item := findItem(t, b, roomID, itemID)
	if item.Status != model.ItemStatusDamaged {
		t.Errorf("item must stay Damaged after partial purge, got %s", item.Status)
	}
	if slices.Contains(item.PhotoIDs, good) {
		t.Error("successfully deleted id still referenced")
	}
	if !slices.Contains(item.PhotoIDs, bad) {
		t.Error("undeleted id lost from references")
	}

	// Retrying after the store recovers completes the transition.
	delete(store.deleteErr, bad)
	if err := b.SetItemStatus(ctx, roomID, itemID, model.ItemStatusOK); err != nil {
		t.Fatalf("retry purge: %v", err)
	}
	item = findItem(t, b, roomID, itemID)
	if item.Status != model.ItemStatusOK || len(item.PhotoIDs) != 0 {
		t.Errorf("expected clean OK item after retry, got %s %v", item.Status, item.PhotoIDs)
	}
	if len(store.blobs) != 0 {
		t.Errorf("expected empty store after retry, %d blobs left", len(store.blobs))
	}
}

func TestFurnishedOffPurgeFailureRetryable(t *testing.T) {
	store := newFlakyStore()
	b := New(store)
	ctx := context.Background()

	if err := b.SetFurnished(ctx, true); err != nil {
		t.Fatalf("furnished on: %v", err)
	}
	room, err := b.AddRoom(model.RoomLiving)
	if err != nil {
		t.Fatalf("adding room: %v", err)
	}
	var sofa *model.Item
	for _, item := range room.Items {
		if item.Origin == model.OriginFurnishing {
			sofa = item
			break
		}
	}
	if sofa == nil {
		t.Fatal("no furnishing item in furnished living room")
	}
	if err := b.SetItemStatus(ctx, room.ID, sofa.ID, model.ItemStatusDamaged); err != nil {
		t.Fatalf("marking damaged: %v", err)
	}
	id, err := b.AddPhoto(ctx, room.ID, sofa.ID, []byte("pic"), "image/jpeg")
	if err != nil {
		t.Fatalf("adding photo: %v", err)
	}

	store.deleteErr[id] = errors.New("io error")
	if err := b.SetFurnished(ctx, false); err == nil {
		t.Fatal("expected purge failure to surface")
	}
	if !b.Furnished() {
		t.Fatal("furnished flag committed despite failed purge")
	}

	// Retrying after the store recovers completes the toggle.
	delete(store.deleteErr, id)
	if err := b.SetFurnished(ctx, false); err != nil {
		t.Fatalf("retry toggle-off: %v", err)
	}
	if b.Furnished() {
		t.Error("furnished flag still set after retry")
	}
	for _, item := range labelsOf(t, b, room.ID) {
		if item == sofa.Label {
			t.Errorf("furnishing item %q still present after retried toggle-off", sofa.Label)
		}
	}
	if len(store.blobs) != 0 {
		t.Errorf("expected blob purged after retry, %d left", len(store.blobs))
	}
}

func TestRemoveRoomPurgeFailureKeepsRoom(t *testing.T) {
	store := newFlakyStore()
	b := New(store)
	roomID, itemID := damagedItem(t, b)
	ctx := context.Background()

	id, _ := b.AddPhoto(ctx, roomID, itemID, []byte("pic"), "image/jpeg")
	store.deleteErr[id] = errors.New("io error")

	if err := b.RemoveRoom(ctx, roomID); err == nil {
		t.Fatal("expected purge failure to block room removal")
	}
	if len(b.Rooms()) != 1 {
		t.Error("room removed despite failed purge")
	}
}
