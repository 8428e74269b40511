package bench

import "sync"

// Forwards every event to all of its listeners, one event at a time
type ArenaListener struct {
	mu        sync.Mutex
	listeners []ListenerLike
}

func NewArenaListener(listeners ...ListenerLike) *ArenaListener {
	return &ArenaListener{listeners: listeners}
}

func (al *ArenaListener) Add(listener ListenerLike) {
	al.mu.Lock()
	defer al.mu.Unlock()
	al.listeners = append(al.listeners, listener)
}

func (al *ArenaListener) each(f func(ListenerLike)) {
	al.mu.Lock()
	defer al.mu.Unlock()
	for _, l := range al.listeners {
		f(l)
	}
}

func (al *ArenaListener) OnMoveMade(info VersusWorkerInfo) {
	al.each(func(l ListenerLike) { l.OnMoveMade(info) })
}

func (al *ArenaListener) OnFinishedGame(info VersusWorkerInfo) {
	al.each(func(l ListenerLike) { l.OnFinishedGame(info) })
}

func (al *ArenaListener) OnFinishedWork(info VersusWorkerInfo) {
	al.each(func(l ListenerLike) { l.OnFinishedWork(info) })
}

func (al *ArenaListener) Summary(summary VersusSummaryInfo) {
	al.each(func(l ListenerLike) { l.Summary(summary) })
}
