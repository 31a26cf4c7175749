package repository

import (
	"github.com/iliyamo/hotel-reservation/internal/model"
)

// RoomStore keeps every configured room in memory. Rooms are indexed by
// room number for constant-time lookup and additionally kept in
// insertion order, which matches creation-time order because rooms are
// never deleted. Listings are served newest first.
type RoomStore struct {
	byNumber map[int]*model.Room
	ordered  []*model.Room
}

// NewRoomStore returns an empty RoomStore.
func NewRoomStore() *RoomStore {
	return &RoomStore{byNumber: make(map[int]*model.Room)}
}

// Get returns the room with the given number, or ErrRoomNotFound. The
// returned pointer refers to the stored room, so callers may update its
// mutable fields in place.
func (s *RoomStore) Get(number int) (*model.Room, error) {
	room, ok := s.byNumber[number]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// Insert adds a room that is not yet present. Room numbers are unique;
// the caller is expected to Get first and update in place when the room
// already exists.
func (s *RoomStore) Insert(room *model.Room) {
	s.byNumber[room.Number] = room
	s.ordered = append(s.ordered, room)
}

// List returns value copies of all rooms ordered by creation time
// descending. Mutating the returned slice does not affect the store.
func (s *RoomStore) List() []model.Room {
	out := make([]model.Room, 0, len(s.ordered))
	for i := len(s.ordered) - 1; i >= 0; i-- {
		out = append(out, *s.ordered[i])
	}
	return out
}

// Len returns the number of configured rooms.
func (s *RoomStore) Len() int { return len(s.ordered) }
