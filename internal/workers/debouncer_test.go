// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type collected[T any] struct {
	mu     sync.Mutex
	values []T
}

func (c *collected[T]) add(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = append(c.values, v)
}

func (c *collected[T]) get() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T(nil), c.values...)
}

func TestDebouncer_DeliversLatestValueOnce(t *testing.T) {
	var got collected[int]
	d := NewDebouncer(30*time.Millisecond, got.add)

	for i := 1; i <= 5; i++ {
		d.Push(i)
		time.Sleep(5 * time.Millisecond)
	}

	assert.Eventually(t, func() bool { return len(got.get()) == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, []int{5}, got.get())
}

func TestDebouncer_SeparateBursts(t *testing.T) {
	var got collected[string]
	d := NewDebouncer(10*time.Millisecond, got.add)

	d.Push("a")
	assert.Eventually(t, func() bool { return len(got.get()) == 1 }, time.Second, 5*time.Millisecond)
	d.Push("b")
	assert.Eventually(t, func() bool { return len(got.get()) == 2 }, time.Second, 5*time.Millisecond)

	assert.Equal(t, []string{"a", "b"}, got.get())
}

func TestDebouncer_Stop(t *testing.T) {
	var got collected[struct{}]
	d := NewDebouncer(20*time.Millisecond, got.add)

	d.Push(struct{}{})
	d.Stop()
	d.Push(struct{}{})

	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, got.get())
}
