package encoder

import (
	"context"
	"sync"

	"github.com/sourcegraph/conc/pool"

	"github.com/roadcast/roadcast/pkg/rcdf"
)

const defaultBatchWorkers = 8

type BatchFailure struct {
	EventID string
	Reason  string
}

// BatchResult holds one message per input event (aligned by index) plus the
// out-of-band failure summary. A failed CV lookup still yields a message with
// default extension values, so Messages never has gaps.
type BatchResult struct {
	Messages []*rcdf.TravelerMessage
	Failures []BatchFailure
}

// EncodeBatchCVTIM encodes a whole feed refresh. Events are independent, so
// they run in parallel, bounded to avoid overwhelming the spatial store. One
// event's failure never aborts the batch.
func (e *Encoder) EncodeBatchCVTIM(ctx context.Context, events []*rcdf.SourceEvent, maxWorkers int) *BatchResult {
	if maxWorkers <= 0 {
		maxWorkers = defaultBatchWorkers
	}

	result := &BatchResult{
		Messages: make([]*rcdf.TravelerMessage, len(events)),
	}

	var failureMutex sync.Mutex

	workerPool := pool.New().WithMaxGoroutines(maxWorkers)

	for i, event := range events {
		i, event := i, event
		workerPool.Go(func() {
			message, err := e.EncodeEventCVTIM(ctx, event)
			result.Messages[i] = message

			if err != nil {
				failureMutex.Lock()
				result.Failures = append(result.Failures, BatchFailure{
					EventID: event.PrimaryIdentifier,
					Reason:  err.Error(),
				})
				failureMutex.Unlock()
			}
		})
	}

	workerPool.Wait()

	return result
}
