// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"

	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/models"
)

type notifier struct {
	mu          sync.RWMutex
	subscribers map[int]chan models.Event
	next        int

	logger *logger.Logger
}

// NewNotifier returns a [Notifier] with no subscribers.
func NewNotifier(log *logger.Logger) Notifier {
	return &notifier{subscribers: make(map[int]chan models.Event), logger: log}
}

func (n *notifier) Notify(event models.Event) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	for id, ch := range n.subscribers {
		select {
		case ch <- event:
		default:
			n.logger.Warn().Int("subscriber", id).Str("event", string(event.Kind)).Msg("subscriber is full, event dropped")
		}
	}
}

func (n *notifier) Subscribe(buffer int) (<-chan models.Event, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan models.Event, buffer)

	n.mu.Lock()
	id := n.next
	n.next++
	n.subscribers[id] = ch
	n.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.subscribers, id)
			n.mu.Unlock()
			close(ch)
		})
	}
}
