// Package storage turns settings writes into change notifications, both for
// writes made in this process and for writes made by other processes.
package storage

import (
	"bytes"
	"context"
	"sort"
	"sync"

	"github.com/bnema/toolip/internal/application/port"
	"github.com/bnema/toolip/internal/domain/entity"
)

const subscriberBuffer = 32

// ChangeHub remembers the last value seen per key and fans out a
// StorageChange to every subscriber whenever a value really differs.
//
// Subscribers must not write through the hub from their receive loop
// while a send to them is pending.
type ChangeHub struct {
	area entity.StorageArea

	mu       sync.Mutex
	snapshot map[string][]byte
	subs     map[*subscriber]struct{}
}

type subscriber struct {
	ch   chan entity.StorageChange
	done chan struct{}
	once sync.Once
}

// NewChangeHub creates a hub for area seeded with initial values.
func NewChangeHub(area entity.StorageArea, initial map[string][]byte) *ChangeHub {
	snapshot := make(map[string][]byte, len(initial))
	for k, v := range initial {
		snapshot[k] = bytes.Clone(v)
	}
	return &ChangeHub{
		area:     area,
		snapshot: snapshot,
		subs:     make(map[*subscriber]struct{}),
	}
}

// Subscribe implements port.StorageWatcher.
func (h *ChangeHub) Subscribe(ctx context.Context) (<-chan entity.StorageChange, error) {
	sub := &subscriber{
		ch:   make(chan entity.StorageChange, subscriberBuffer),
		done: make(chan struct{}),
	}

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		sub.once.Do(func() { close(sub.done) })

		h.mu.Lock()
		delete(h.subs, sub)
		close(sub.ch)
		h.mu.Unlock()
	}()
	return sub.ch, nil
}

// Seed replaces the snapshot without emitting changes.
func (h *ChangeHub) Seed(values map[string][]byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.snapshot = make(map[string][]byte, len(values))
	for k, v := range values {
		h.snapshot[k] = bytes.Clone(v)
	}
}

// Observe records value for key and reports whether it changed.
func (h *ChangeHub) Observe(key string, value []byte) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	change, changed := h.diffLocked(key, value)
	if changed {
		h.publishLocked(change)
	}
	return changed
}

// ObserveAll records a full read of the store. Keys missing from values are
// reported as removed. It returns the number of changes emitted.
func (h *ChangeHub) ObserveAll(values map[string][]byte) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	keys := make([]string, 0, len(values)+len(h.snapshot))
	for k := range values {
		keys = append(keys, k)
	}
	for k := range h.snapshot {
		if _, ok := values[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	emitted := 0
	for _, k := range keys {
		if change, changed := h.diffLocked(k, values[k]); changed {
			h.publishLocked(change)
			emitted++
		}
	}
	return emitted
}

// Subscribers returns the number of live subscriptions.
func (h *ChangeHub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

func (h *ChangeHub) diffLocked(key string, value []byte) (entity.StorageChange, bool) {
	old, existed := h.snapshot[key]
	if value == nil {
		if !existed {
			return entity.StorageChange{}, false
		}
		delete(h.snapshot, key)
	} else {
		if existed && bytes.Equal(old, value) {
			return entity.StorageChange{}, false
		}
		h.snapshot[key] = bytes.Clone(value)
	}

	return entity.StorageChange{
		Area:     h.area,
		Key:      key,
		OldValue: old,
		NewValue: bytes.Clone(value),
	}, true
}

func (h *ChangeHub) publishLocked(change entity.StorageChange) {
	for sub := range h.subs {
		select {
		case sub.ch <- change:
		case <-sub.done:
		}
	}
}

var _ port.StorageWatcher = (*ChangeHub)(nil)
