// Package replay applies a script of list operations to a sequence and
// reports what each one did.
package replay

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/kchristidis/itlist/stats"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 . Sequence

// Sequence is the list surface the runner drives.
// *itlist.List[string] implements it.
type Sequence interface {
	Append(v string)
	InsertAt(index int, v string) error
	Get(index int) (string, error)
	Set(index int, v string) (string, error)
	RemoveAt(index int) (string, error)
	ResetToHead()
	ResetToTail()
	Next() (string, error)
	Previous() (string, error)
	Remove() error
	IndexOf(v string) int
	Clear()
	Len() int
	ToArray() []string
}

// Runner replays operations against a sequence.
type Runner struct {
	Seq Sequence

	// Used to feed the stats collector. May be nil.
	OpChan chan stats.Op

	Writer io.Writer
	// Also log the contents of the sequence after every operation.
	Debug bool
}

// New returns a new runner.
func New(seq Sequence, opc chan stats.Op, writer io.Writer) *Runner {
	return &Runner{
		Seq:    seq,
		OpChan: opc,
		Writer: writer,
	}
}

// Run applies ops in order. A failing operation is logged and recorded, and
// the run carries on with the next one. It returns the number of operations
// that failed.
func (r *Runner) Run(ops []Op) int {
	var failed int
	for i, op := range ops {
		timeStart := time.Now()
		res, err := r.apply(op)
		elapsed := time.Since(timeStart).Microseconds()

		status := stats.StatusOK
		if err != nil {
			failed++
			status = err.Error()
			msg := fmt.Sprintf("replay op:%06d • failure! cannot %s: %s", i, op, err)
			fmt.Fprintln(r.Writer, msg)
		} else {
			msg := fmt.Sprintf("replay op:%06d • %s", i, op)
			if res != "" {
				msg += " → " + res
			}
			fmt.Fprintln(r.Writer, msg)
		}

		if r.Debug {
			msg := fmt.Sprintf("replay op:%06d • contents: %v (size: %d)", i, r.Seq.ToArray(), r.Seq.Len())
			fmt.Fprintln(r.Writer, msg)
		}

		if r.OpChan != nil {
			r.OpChan <- stats.Op{
				Number:          i,
				Name:            op.Name,
				Status:          status,
				LatencyInMicros: elapsed,
			}
		}
	}

	msg := fmt.Sprintf("replay • done: %d ops, %d failed, final size %d", len(ops), failed, r.Seq.Len())
	fmt.Fprintln(r.Writer, msg)
	return failed
}

func (r *Runner) apply(op Op) (string, error) {
	switch op.Name {
	case OpAppend:
		r.Seq.Append(op.Value)
		return "", nil
	case OpInsert:
		return "", r.Seq.InsertAt(op.Index, op.Value)
	case OpGet:
		return r.Seq.Get(op.Index)
	case OpSet:
		return r.Seq.Set(op.Index, op.Value)
	case OpRemoveAt:
		return r.Seq.RemoveAt(op.Index)
	case OpHead:
		r.Seq.ResetToHead()
		return "", nil
	case OpTail:
		r.Seq.ResetToTail()
		return "", nil
	case OpNext:
		return r.Seq.Next()
	case OpPrev:
		return r.Seq.Previous()
	case OpRemove:
		return "", r.Seq.Remove()
	case OpIndexOf:
		return strconv.Itoa(r.Seq.IndexOf(op.Value)), nil
	case OpClear:
		r.Seq.Clear()
		return "", nil
	default:
		return "", fmt.Errorf("unknown op %q", op.Name)
	}
}
