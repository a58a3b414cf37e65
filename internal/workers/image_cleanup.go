// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-trip-journal/internal/logger"
	"github.com/MKhiriev/go-trip-journal/internal/storage"
)

// ImageCleanupWorker deletes unreferenced photo objects in the background.
// Deletion is best-effort: a failed batch is logged and dropped, never
// retried, and never surfaces to the request that queued it. An orphan
// object in the bucket is acceptable; a request blocked on storage is not.
type ImageCleanupWorker struct {
	objectStorage storage.ObjectStorage
	queue         chan []string

	logger *logger.Logger
}

func NewImageCleanupWorker(objectStorage storage.ObjectStorage, queueSize int, log *logger.Logger) *ImageCleanupWorker {
	return &ImageCleanupWorker{
		objectStorage: objectStorage,
		queue:         make(chan []string, queueSize),
		logger:        log.GetChildLogger(),
	}
}

// Enqueue hands a batch of storage keys to the worker without blocking.
// When the queue is full the batch is dropped and logged.
func (w *ImageCleanupWorker) Enqueue(keys []string) {
	select {
	case w.queue <- keys:
	default:
		w.logger.Warn().Strs("keys", keys).Msg("cleanup queue is full, dropping batch")
	}
}

// Run processes queued batches until ctx is cancelled, then drains whatever
// is still queued before returning.
func (w *ImageCleanupWorker) Run(ctx context.Context) {
	for {
		select {
		case keys := <-w.queue:
			w.remove(ctx, keys)
		case <-ctx.Done():
			w.drain()
			return
		}
	}
}

func (w *ImageCleanupWorker) remove(ctx context.Context, keys []string) {
	if err := w.objectStorage.Remove(ctx, keys); err != nil {
		w.logger.Err(err).Strs("keys", keys).Msg("image cleanup failed")
		return
	}
	w.logger.Debug().Strs("keys", keys).Msg("images removed")
}

// drain deletes remaining batches with a background context so that queued
// work from the last requests is not lost at shutdown.
func (w *ImageCleanupWorker) drain() {
	for {
		select {
		case keys := <-w.queue:
			w.remove(context.Background(), keys)
		default:
			return
		}
	}
}
