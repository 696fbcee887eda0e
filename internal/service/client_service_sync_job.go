// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"
)

const defaultSyncInterval = 15 * time.Minute

type clientSyncJob struct {
	runner SyncRunner

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	trigger chan struct{}
}

// NewClientSyncJob creates a job that calls runner.RunOnce on a ticker. The
// job is idle until Start is called.
func NewClientSyncJob(runner SyncRunner) SyncJob {
	return &clientSyncJob{
		runner:  runner,
		trigger: make(chan struct{}, 1),
	}
}

// Start implements SyncJob. It stops any previously running job, then
// launches a goroutine that runs a pass immediately and then every interval.
// A non-positive interval defaults to 15 minutes. The goroutine exits when
// ctx is cancelled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		j.runner.RunOnce(jobCtx, false)

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.runner.RunOnce(jobCtx, false)
			case <-j.trigger:
				j.runner.RunOnce(jobCtx, false)
			}
		}
	}()
}

// Stop implements SyncJob. It cancels the goroutine's context and blocks
// until it has exited. Calling it on a stopped job is a no-op.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// TriggerNow implements SyncJob.
func (j *clientSyncJob) TriggerNow() {
	select {
	case j.trigger <- struct{}{}:
	default:
	}
}
