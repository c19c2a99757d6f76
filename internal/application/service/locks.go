package service

import (
	"regexp"
	"sync"

	"github.com/google/uuid"
)

// contactPattern matches the 10-digit contact numbers the forms accept
var contactPattern = regexp.MustCompile(`^\d{10}$`)

// UserLocks serializes read-derive-write sequences per user. Balance
// recomputes, receipt numbering and the due paid-transition all read state,
// derive a value and write it back; holding the user's lock across the
// sequence makes each of them linearizable for that user. A single instance
// is shared by every service that mutates financial state.
type UserLocks struct {
	locks sync.Map // uuid.UUID -> *sync.Mutex
}

// NewUserLocks creates a new per-user lock set
func NewUserLocks() *UserLocks {
	return &UserLocks{}
}

// Lock acquires the lock for the given user and returns the unlock function
func (l *UserLocks) Lock(userID uuid.UUID) func() {
	v, _ := l.locks.LoadOrStore(userID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
