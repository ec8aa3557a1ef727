// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/internal/settings"
)

const defaultSyncInterval = 10 * time.Minute

type syncJob struct {
	syncService CloudSyncService
	settings    settings.Provider
	fallback    time.Duration

	trigger chan struct{}

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// interval is replaced in tests.
	interval func() time.Duration

	logger *logger.Logger
}

// NewSyncJob creates a SyncJob calling syncService.Synchronize every
// SynchronizationInterval minutes, or every fallback when the setting is
// not positive. The job is idle until Start is called.
func NewSyncJob(syncService CloudSyncService, provider settings.Provider, fallback time.Duration, log *logger.Logger) SyncJob {
	if fallback <= 0 {
		fallback = defaultSyncInterval
	}
	j := &syncJob{
		syncService: syncService,
		settings:    provider,
		fallback:    fallback,
		trigger:     make(chan struct{}, 1),
		logger:      log,
	}
	j.interval = j.settingsInterval
	return j
}

func (j *syncJob) settingsInterval() time.Duration {
	if minutes := j.settings.Int(settings.SynchronizationInterval); minutes > 0 {
		return time.Duration(minutes) * time.Minute
	}
	return j.fallback
}

// Start implements SyncJob. It stops any previously running loop first.
// The goroutine exits when ctx is cancelled or Stop is called.
func (j *syncJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTimer(j.interval())
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
			case <-j.trigger:
				t.Stop()
			}

			if err := j.syncService.Synchronize(jobCtx); err != nil {
				j.logger.Warn().Err(err).Msg("synchronization pass failed")
			}
			t.Reset(j.interval())
		}
	}()
}

func (j *syncJob) Trigger() {
	select {
	case j.trigger <- struct{}{}:
	default:
	}
}

// Stop implements SyncJob. It cancels the loop and blocks until it has
// exited. No-op when the job is not running.
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
