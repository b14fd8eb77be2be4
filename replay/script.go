package replay

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// The columns of a replay script.
const (
	ColOp = iota
	ColIndex
	ColValue

	ColCount
)

// Operation names understood by the runner.
const (
	OpAppend   = "append"
	OpInsert   = "insert"
	OpGet      = "get"
	OpSet      = "set"
	OpRemoveAt = "remove_at"
	OpHead     = "head"
	OpTail     = "tail"
	OpNext     = "next"
	OpPrev     = "prev"
	OpRemove   = "remove"
	OpIndexOf  = "index_of"
	OpClear    = "clear"
)

// Which columns each operation reads.
var opArgs = map[string]struct{ index, value bool }{
	OpAppend:   {value: true},
	OpInsert:   {index: true, value: true},
	OpGet:      {index: true},
	OpSet:      {index: true, value: true},
	OpRemoveAt: {index: true},
	OpHead:     {},
	OpTail:     {},
	OpNext:     {},
	OpPrev:     {},
	OpRemove:   {},
	OpIndexOf:  {value: true},
	OpClear:    {},
}

// Op is a single line of a replay script.
type Op struct {
	Name  string
	Index int
	Value string
}

func (o Op) String() string {
	args := opArgs[o.Name]
	switch {
	case args.index && args.value:
		return fmt.Sprintf("%s(%d, %q)", o.Name, o.Index, o.Value)
	case args.index:
		return fmt.Sprintf("%s(%d)", o.Name, o.Index)
	case args.value:
		return fmt.Sprintf("%s(%q)", o.Name, o.Value)
	default:
		return o.Name + "()"
	}
}

// Load reads a replay script: a CSV file with an "op,index,value" header
// followed by one operation per line.
func Load(r io.Reader) ([]Op, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = ColCount

	// Skip the headers
	if _, err := cr.Read(); err != nil {
		return nil, err
	}

	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}

	ops := make([]Op, 0, len(recs))
	for i, rec := range recs {
		op, err := parseOp(rec)
		if err != nil {
			// Line 1 holds the headers.
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// LoadFile reads the replay script at fname.
func LoadFile(fname string) ([]Op, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

func parseOp(rec []string) (Op, error) {
	op := Op{Name: strings.TrimSpace(rec[ColOp])}
	args, ok := opArgs[op.Name]
	if !ok {
		return Op{}, fmt.Errorf("unknown op %q", op.Name)
	}
	if args.index {
		index, err := strconv.Atoi(strings.TrimSpace(rec[ColIndex]))
		if err != nil {
			return Op{}, fmt.Errorf("op %q: invalid index: %w", op.Name, err)
		}
		op.Index = index
	}
	if args.value {
		op.Value = rec[ColValue]
	}
	return op, nil
}
