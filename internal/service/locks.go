package service

import "sync"

// userLocks serializes mutations per user. Submissions from two devices
// for the same user contend on one mutex; different users never do.
type userLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[string]*sync.Mutex)}
}

func (u *userLocks) get(userID string) *sync.Mutex {
	u.mu.Lock()
	defer u.mu.Unlock()

	if l, ok := u.locks[userID]; ok {
		return l
	}
	l := &sync.Mutex{}
	u.locks[userID] = l
	return l
}

// Lock acquires the lock for userID and returns the unlock function
func (u *userLocks) Lock(userID string) func() {
	l := u.get(userID)
	l.Lock()
	return l.Unlock
}
