package state

import "sync"

// notifier fans out change signals to subscribers. Signals are coalescing: a
// subscriber that has not drained its channel yet gets no second signal, so a
// slow consumer never blocks a store mutation. Subscribers read the actual
// value with the store's Snapshot method.
type notifier struct {
	mutex       sync.Mutex
	subscribers []chan struct{}
}

// Subscribe registers a new subscriber channel.
func (n *notifier) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	n.mutex.Lock()
	n.subscribers = append(n.subscribers, ch)
	n.mutex.Unlock()
	return ch
}

// Notify signals every subscriber without blocking.
func (n *notifier) Notify() {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	for _, ch := range n.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
