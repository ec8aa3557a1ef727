// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/internal/settings"
)

type countingSync struct {
	calls atomic.Int32
	err   error
}

func (c *countingSync) Synchronize(context.Context) error {
	c.calls.Add(1)
	return c.err
}

func (c *countingSync) IsSynchronizing() bool { return false }

func newJobSettings(t *testing.T) *settings.Store {
	t.Helper()
	st, err := settings.LoadAt(filepath.Join(t.TempDir(), settings.FileName))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestSyncJob_RunsPeriodically(t *testing.T) {
	svc := &countingSync{err: errors.New("offline")}
	job := NewSyncJob(svc, newJobSettings(t), time.Minute, logger.Nop()).(*syncJob)
	job.interval = func() time.Duration { return 10 * time.Millisecond }

	job.Start(context.Background())
	defer job.Stop()

	assert.Eventually(t, func() bool { return svc.calls.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
}

func TestSyncJob_TriggerRunsImmediately(t *testing.T) {
	svc := &countingSync{}
	job := NewSyncJob(svc, newJobSettings(t), time.Hour, logger.Nop())

	job.Start(context.Background())
	defer job.Stop()

	job.Trigger()
	assert.Eventually(t, func() bool { return svc.calls.Load() == 1 }, 2*time.Second, 5*time.Millisecond)

	job.Trigger()
	assert.Eventually(t, func() bool { return svc.calls.Load() == 2 }, 2*time.Second, 5*time.Millisecond)
}

func TestSyncJob_StopHaltsLoop(t *testing.T) {
	svc := &countingSync{}
	job := NewSyncJob(svc, newJobSettings(t), time.Hour, logger.Nop())

	job.Stop()

	job.Start(context.Background())
	job.Stop()
	job.Trigger()

	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, svc.calls.Load())
}

func TestSyncJob_CancelledContextStopsLoop(t *testing.T) {
	svc := &countingSync{}
	job := NewSyncJob(svc, newJobSettings(t), time.Hour, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not exit")
	}
}

func TestSyncJob_IntervalFromSettings(t *testing.T) {
	st := newJobSettings(t)
	job := NewSyncJob(&countingSync{}, st, 0, logger.Nop()).(*syncJob)

	require.NoError(t, st.Set(settings.SynchronizationInterval, 3))
	assert.Equal(t, 3*time.Minute, job.interval())

	require.NoError(t, st.Set(settings.SynchronizationInterval, 0))
	assert.Equal(t, defaultSyncInterval, job.interval())
}
