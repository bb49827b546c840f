package service_roomlock

import (
	"sync"

	"github.com/humanbelnik/stopbus/core/internal/model"
)

// Locker serializes mutations per room code. The engine itself runs plain
// read-modify-write against the store, so without this two last submitters
// racing each other could both miss the all-submitted check. The dispatch
// layer wraps every mutating call in Lock/Unlock; engine contracts stay
// untouched.
//
// Entries are refcounted so the map does not grow with every room ever seen.
type Locker struct {
	mu    sync.Mutex
	locks map[model.RoomCode]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func New() *Locker {
	return &Locker{
		locks: make(map[model.RoomCode]*entry),
	}
}

func (l *Locker) Lock(code model.RoomCode) {
	l.mu.Lock()
	e, ok := l.locks[code]
	if !ok {
		e = &entry{}
		l.locks[code] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()
}

func (l *Locker) Unlock(code model.RoomCode) {
	l.mu.Lock()
	e, ok := l.locks[code]
	if !ok {
		l.mu.Unlock()
		return
	}
	e.refs--
	if e.refs == 0 {
		delete(l.locks, code)
	}
	l.mu.Unlock()

	e.mu.Unlock()
}
