package repository

import (
	"github.com/iliyamo/hotel-reservation/internal/model"
)

// UserStore keeps every configured user in memory, indexed by user ID
// with insertion order preserved for creation-time listings. Users are
// never deleted.
type UserStore struct {
	byID    map[int]*model.User
	ordered []*model.User
}

// NewUserStore returns an empty UserStore.
func NewUserStore() *UserStore {
	return &UserStore{byID: make(map[int]*model.User)}
}

// Get returns the user with the given ID, or ErrUserNotFound. The
// returned pointer refers to the stored user, so callers may update its
// mutable fields in place.
func (s *UserStore) Get(id int) (*model.User, error) {
	user, ok := s.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Insert adds a user that is not yet present. User IDs are unique; the
// caller is expected to Get first and update in place when the user
// already exists.
func (s *UserStore) Insert(user *model.User) {
	s.byID[user.ID] = user
	s.ordered = append(s.ordered, user)
}

// List returns value copies of all users ordered by creation time
// descending.
func (s *UserStore) List() []model.User {
	out := make([]model.User, 0, len(s.ordered))
	for i := len(s.ordered) - 1; i >= 0; i-- {
		out = append(out, *s.ordered[i])
	}
	return out
}

// Len returns the number of configured users.
func (s *UserStore) Len() int { return len(s.ordered) }
