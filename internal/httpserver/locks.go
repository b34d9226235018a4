package httpserver

import (
	"sync"

	"github.com/gorilla/websocket"
)

// roundLocks hands out one mutex per round id. Entries are reference counted
// and dropped when the last holder unlocks.
type roundLocks struct {
	mu sync.Mutex
	m  map[string]*roundLock
}

type roundLock struct {
	sync.Mutex
	refs int
}

func newRoundLocks() *roundLocks {
	return &roundLocks{m: make(map[string]*roundLock)}
}

// lock blocks until the caller holds id's lock and returns its release func.
func (l *roundLocks) lock(id string) (unlock func()) {
	l.mu.Lock()
	rl, ok := l.m[id]
	if !ok {
		rl = &roundLock{}
		l.m[id] = rl
	}
	rl.refs++
	l.mu.Unlock()

	rl.Lock()
	return func() {
		rl.Unlock()
		l.mu.Lock()
		rl.refs--
		if rl.refs == 0 {
			delete(l.m, id)
		}
		l.mu.Unlock()
	}
}

// listeners tracks the single keyboard connection attached to each round.
type listeners struct {
	mu    sync.Mutex
	conns map[string]*websocket.Conn
}

func newListeners() *listeners {
	return &listeners{conns: make(map[string]*websocket.Conn)}
}

// attach makes c the round's listener, closing any previous one so keys are
// never handled twice. The returned detach is safe to call more than once and
// only removes c if it is still the current listener.
func (l *listeners) attach(id string, c *websocket.Conn) (detach func()) {
	l.mu.Lock()
	prev := l.conns[id]
	l.conns[id] = c
	l.mu.Unlock()

	if prev != nil {
		closeConn(prev, websocket.ClosePolicyViolation, "replaced by a newer connection")
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			if l.conns[id] == c {
				delete(l.conns, id)
			}
			l.mu.Unlock()
		})
	}
}

// count returns the number of attached listeners.
func (l *listeners) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.conns)
}
