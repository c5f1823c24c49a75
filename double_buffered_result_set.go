package odbcbatch

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// stopRequest asks the fetch worker to exit.
const stopRequest = -1

// fetchResponse is the outcome of one background fetch. A failure is
// delivered here instead of escaping the worker.
type fetchResponse struct {
	rows int
	err  error
}

// DoubleBufferedResultSet overlaps fetching the next batch with consumption
// of the current one. It owns two bound result sets on the same statement,
// each half the requested size, and a worker goroutine that fetches into
// whichever one the consumer is not reading.
//
// Each slot is touched by a single side at a time: the worker between a
// request and its response, the consumer after the response and before it
// requests that slot again.
type DoubleBufferedResultSet struct {
	slots         [2]*BoundResultSet
	activeReading int

	// Both channels hold at most one pending request plus the stop request,
	// so neither side ever blocks on a send.
	requests  chan int
	responses chan fetchResponse
	done      chan struct{}

	closed *atomic.Bool
}

// NewDoubleBufferedResultSet creates both slots and starts fetching the
// first batch in the background.
func NewDoubleBufferedResultSet(stmt Statement, size BufferSize, opts Options) (*DoubleBufferedResultSet, error) {
	half := HalveBufferSize(size)
	rs := &DoubleBufferedResultSet{
		requests:  make(chan int, 2),
		responses: make(chan fetchResponse, 2),
		done:      make(chan struct{}),
		closed:    atomic.NewBool(false),
	}
	for i := range rs.slots {
		slot, err := newBoundResultSet(stmt, half, opts, modeDoubleBuffered)
		if err != nil {
			return nil, err
		}
		rs.slots[i] = slot
	}

	go rs.work()
	rs.requests <- 0
	rs.activeReading = 1
	logger.Debug("started fetch worker", zap.Stringer("slot_size", half))
	return rs, nil
}

func (rs *DoubleBufferedResultSet) work() {
	defer close(rs.done)
	for slot := range rs.requests {
		if slot == stopRequest {
			return
		}
		rs.responses <- rs.fetchSlot(slot)
	}
}

func (rs *DoubleBufferedResultSet) fetchSlot(slot int) (resp fetchResponse) {
	defer func() {
		if r := recover(); r != nil {
			resp = fetchResponse{err: errors.WithStack(NewError(ErrDriver, fmt.Sprintf("fetch worker panic: %v", r)))}
		}
		if resp.err != nil {
			workerFailures.Inc()
			logger.Warn("background fetch failed", zap.Int("slot", slot), zap.Error(resp.err))
		}
	}()

	if err := rs.slots[slot].Rebind(); err != nil {
		return fetchResponse{err: err}
	}
	rows, err := rs.slots[slot].FetchNextBatch()
	return fetchResponse{rows: rows, err: err}
}

// FetchNextBatch requests a background fetch into the slot the consumer
// just finished with, then waits for the oldest outstanding fetch and
// returns its row count or its failure.
func (rs *DoubleBufferedResultSet) FetchNextBatch() (int, error) {
	if rs.closed.Load() {
		return 0, NewError(ErrClosed, "result set is closed")
	}
	rs.requests <- rs.activeReading
	rs.activeReading = 1 - rs.activeReading
	resp := <-rs.responses
	return resp.rows, resp.err
}

// ColumnInfo returns the column metadata.
func (rs *DoubleBufferedResultSet) ColumnInfo() []ColumnInfo {
	return rs.slots[rs.activeReading].ColumnInfo()
}

// Buffers returns the buffers of the batch last delivered by FetchNextBatch,
// never those being filled in the background.
func (rs *DoubleBufferedResultSet) Buffers() []*Buffer {
	return rs.slots[rs.activeReading].Buffers()
}

// RowsToBuffer returns the capacity of one slot.
func (rs *DoubleBufferedResultSet) RowsToBuffer() int {
	return rs.slots[0].RowsToBuffer()
}

// Close stops the worker and waits for it to exit. A fetch in flight is
// allowed to finish first, so the statement must stay open until Close
// returns.
func (rs *DoubleBufferedResultSet) Close() error {
	if !rs.closed.CAS(false, true) {
		return nil
	}
	rs.requests <- stopRequest
	<-rs.done
	for _, slot := range rs.slots {
		slot.Close()
	}
	logger.Debug("stopped fetch worker")
	return nil
}
