package stats

import (
	"fmt"
	"io"
)

// StatusOK is the status recorded for an operation that did not fail.
const StatusOK = "ok"

// Op describes a single replayed list operation.
type Op struct {
	Number          int
	Name            string
	Status          string // StatusOK, or the error message
	LatencyInMicros int64
}

// Summary aggregates the operations seen for one operation name.
type Summary struct {
	Count    int
	Failures int
	// Sum of the latencies, used to report the mean.
	TotalMicros int64
}

// MeanMicros returns the mean latency of the operations in s.
func (s Summary) MeanMicros() float64 {
	if s.Count == 0 {
		return 0
	}
	return float64(s.TotalMicros) / float64(s.Count)
}

// Collector aggregates the operations pushed through OpChan.
// Ops and Summaries must only be read after Run has returned.
type Collector struct {
	OpChan chan Op // Input channel for stat aggregation.

	Writer io.Writer // Used for logging.

	DoneChan chan struct{} // An external kill switch.

	Ops       []Op
	Summaries map[string]Summary
}

// New returns a collector fed by opc that exits once donec is closed.
func New(opc chan Op, writer io.Writer, donec chan struct{}) *Collector {
	return &Collector{
		OpChan:    opc,
		Writer:    writer,
		DoneChan:  donec,
		Summaries: make(map[string]Summary),
	}
}

// Run aggregates operations until DoneChan is closed. Operations still
// buffered in OpChan at that point are aggregated before it returns.
func (c *Collector) Run() {
	defer fmt.Fprintln(c.Writer, "stats collector • exited")

	for {
		select {
		case op := <-c.OpChan:
			c.OpCalc(op)
		case <-c.DoneChan:
			// Don't exit until you make sure that the op chan is drained first
			for {
				select {
				case op := <-c.OpChan:
					c.OpCalc(op)
				default:
					return
				}
			}
		}
	}
}

// OpCalc adds op to the aggregated stats.
func (c *Collector) OpCalc(op Op) {
	c.Ops = append(c.Ops, op)

	if c.Summaries == nil {
		c.Summaries = make(map[string]Summary)
	}
	s := c.Summaries[op.Name]
	s.Count++
	if op.Status != StatusOK {
		s.Failures++
	}
	s.TotalMicros += op.LatencyInMicros
	c.Summaries[op.Name] = s
}
