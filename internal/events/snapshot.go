// Package events fans out wallet snapshots to subscribers.
package events

import (
	"sync"

	"github.com/vadiminshakov/walletswap/internal/domain"
)

// SnapshotBroadcaster fans out snapshots to all subscribers via buffered channels.
type SnapshotBroadcaster struct {
	mu     sync.RWMutex
	subs   map[chan domain.WalletSnapshot]struct{}
	buffer int
}

// NewSnapshotBroadcaster creates a broadcaster with the given per-subscriber buffer.
func NewSnapshotBroadcaster(buffer int) *SnapshotBroadcaster {
	if buffer < 1 {
		buffer = 64
	}
	return &SnapshotBroadcaster{
		subs:   make(map[chan domain.WalletSnapshot]struct{}),
		buffer: buffer,
	}
}

// Publish sends the snapshot to all subscribers, dropping if a reader is slow.
// Returns the number of subscribers that received it.
func (b *SnapshotBroadcaster) Publish(s domain.WalletSnapshot) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	delivered := 0
	for ch := range b.subs {
		select {
		case ch <- s:
			delivered++
		default:
			// drop slow consumer
		}
	}
	return delivered
}

// Subscribe returns a channel that receives snapshots until Unsubscribe is called.
func (b *SnapshotBroadcaster) Subscribe() chan domain.WalletSnapshot {
	ch := make(chan domain.WalletSnapshot, b.buffer)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes the channel and closes it.
func (b *SnapshotBroadcaster) Unsubscribe(ch chan domain.WalletSnapshot) {
	b.mu.Lock()
	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
	b.mu.Unlock()
}
