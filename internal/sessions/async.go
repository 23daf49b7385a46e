package sessions

import (
	"context"

	"github.com/google/uuid"
)

// ScanResult reports the outcome of an asynchronous scan.
type ScanResult struct {
	RequestID string
	Err       error
}

// ScanAsync runs Scan on its own goroutine and delivers the result on the
// returned channel, tagged with a request ID so the caller can match stale
// results after a rescan. Scans are not cancellable mid-flight; a done
// context only abandons delivery.
func (s *Store) ScanAsync(ctx context.Context) (string, <-chan ScanResult) {
	requestID := uuid.New().String()
	results := make(chan ScanResult, 1)

	go func() {
		defer close(results)
		err := s.Scan()
		select {
		case results <- ScanResult{RequestID: requestID, Err: err}:
		case <-ctx.Done():
		}
	}()

	return requestID, results
}
