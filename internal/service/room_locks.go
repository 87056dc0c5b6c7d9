package service

import "sync"

// RoomLocks serializes read-modify-write cycles per room code. Every mutation
// of a room document must run under the room's lock, otherwise two concurrent
// writers can each read the same roster and the second write-back silently
// discards the first one's update.
type RoomLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewRoomLocks creates an empty lock table.
func NewRoomLocks() *RoomLocks {
	return &RoomLocks{locks: make(map[string]*sync.Mutex)}
}

// Acquire locks the mutex for code and returns its release function. Lock
// entries are kept for the lifetime of the process; rooms are few and short
// codes make the table small.
func (l *RoomLocks) Acquire(code string) func() {
	l.mu.Lock()
	m, ok := l.locks[code]
	if !ok {
		m = &sync.Mutex{}
		l.locks[code] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
