// Package state holds UI-facing signals shared between the navigation guard
// and whatever renders or reports on it.
package state

import "sync"

// Loading reports whether a navigation is in progress. It is true while at
// least one transition sits between LoadingWriter.Begin and
// LoadingWriter.End.
type Loading struct {
	mu       sync.Mutex
	inflight int
	subs     map[int]chan bool
	nextID   int
}

// LoadingWriter is the only handle that can change a Loading value.
type LoadingWriter struct {
	l *Loading
}

func NewLoading() (*Loading, *LoadingWriter) {
	l := &Loading{subs: make(map[int]chan bool)}
	return l, &LoadingWriter{l: l}
}

func (l *Loading) Value() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inflight > 0
}

// Subscribe returns a channel that receives the new value every time it
// changes. Only the latest value is kept for slow readers. The returned
// func stops delivery and closes the channel.
func (l *Loading) Subscribe() (<-chan bool, func()) {
	ch := make(chan bool, 1)

	l.mu.Lock()
	id := l.nextID
	l.nextID++
	l.subs[id] = ch
	l.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.subs, id)
			l.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// publish must be called with l.mu held.
func (l *Loading) publish(v bool) {
	for _, ch := range l.subs {
		select {
		case <-ch:
		default:
		}
		ch <- v
	}
}

func (w *LoadingWriter) Begin() {
	l := w.l
	l.mu.Lock()
	defer l.mu.Unlock()

	l.inflight++
	if l.inflight == 1 {
		l.publish(true)
	}
}

// End is a no-op when no transition is in progress.
func (w *LoadingWriter) End() {
	l := w.l
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.inflight == 0 {
		return
	}
	l.inflight--
	if l.inflight == 0 {
		l.publish(false)
	}
}
