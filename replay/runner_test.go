package replay_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/kchristidis/itlist/itlist"
	"github.com/kchristidis/itlist/replay"
	"github.com/kchristidis/itlist/replay/replayfakes"
	"github.com/kchristidis/itlist/stats"
	"github.com/onsi/gomega/gbytes"
	"github.com/stretchr/testify/require"

	. "github.com/onsi/gomega"
)

func TestRunner(t *testing.T) {
	t.Run("against a list", func(t *testing.T) {
		g := NewGomegaWithT(t)
		bfr := gbytes.NewBuffer()
		opc := make(chan stats.Op, 20)

		ops, err := replay.Load(strings.NewReader(`op,index,value
append,,1
append,,2
append,,3
head,,
next,,
next,,
remove,,
next,,
insert,5,x
`))
		require.NoError(t, err)

		l := itlist.New[string]()
		r := replay.New(l, opc, bfr)
		failed := r.Run(ops)

		require.Equal(t, 1, failed)
		require.Equal(t, []string{"1", "3"}, l.ToArray())

		g.Expect(bfr).To(gbytes.Say(`replay op:000004 • next\(\) → 1`))
		g.Expect(bfr).To(gbytes.Say(`replay op:000006 • remove\(\)`))
		g.Expect(bfr).To(gbytes.Say(`replay op:000007 • next\(\) → 3`))
		g.Expect(bfr).To(gbytes.Say(`op:000008 • failure! cannot insert\(5, "x"\): index out of range \(size: 2, index: 5\)`))
		g.Expect(bfr).To(gbytes.Say("done: 9 ops, 1 failed, final size 2"))

		require.Len(t, opc, len(ops))
		for i := range ops {
			op := <-opc
			require.Equal(t, i, op.Number)
			require.Equal(t, ops[i].Name, op.Name)
			if i == 8 {
				require.NotEqual(t, stats.StatusOK, op.Status)
			} else {
				require.Equal(t, stats.StatusOK, op.Status)
			}
		}
	})

	t.Run("debug logs the contents", func(t *testing.T) {
		g := NewGomegaWithT(t)
		bfr := gbytes.NewBuffer()

		r := replay.New(itlist.New[string](), nil, bfr)
		r.Debug = true
		r.Run([]replay.Op{{Name: replay.OpAppend, Value: "a"}, {Name: replay.OpIndexOf, Value: "a"}})

		g.Expect(bfr).To(gbytes.Say(`op:000000 • contents: \[a\] \(size: 1\)`))
		g.Expect(bfr).To(gbytes.Say(`op:000001 • index_of\("a"\) → 0`))
	})

	t.Run("sequence calls", func(t *testing.T) {
		seq := new(replayfakes.FakeSequence)
		seq.GetReturns("v", nil)
		seq.SetReturns("old", nil)
		seq.IndexOfReturns(-1)

		r := replay.New(seq, nil, gbytes.NewBuffer())
		failed := r.Run([]replay.Op{
			{Name: replay.OpAppend, Value: "a"},
			{Name: replay.OpInsert, Index: 2, Value: "b"},
			{Name: replay.OpGet, Index: 3},
			{Name: replay.OpSet, Index: 4, Value: "c"},
			{Name: replay.OpRemoveAt, Index: 5},
			{Name: replay.OpHead},
			{Name: replay.OpTail},
			{Name: replay.OpNext},
			{Name: replay.OpPrev},
			{Name: replay.OpRemove},
			{Name: replay.OpIndexOf, Value: "d"},
			{Name: replay.OpClear},
		})
		require.Equal(t, 0, failed)

		require.Equal(t, "a", seq.AppendArgsForCall(0))
		index, v := seq.InsertAtArgsForCall(0)
		require.Equal(t, 2, index)
		require.Equal(t, "b", v)
		require.Equal(t, 3, seq.GetArgsForCall(0))
		index, v = seq.SetArgsForCall(0)
		require.Equal(t, 4, index)
		require.Equal(t, "c", v)
		require.Equal(t, 5, seq.RemoveAtArgsForCall(0))
		require.Equal(t, 1, seq.ResetToHeadCallCount())
		require.Equal(t, 1, seq.ResetToTailCallCount())
		require.Equal(t, 1, seq.NextCallCount())
		require.Equal(t, 1, seq.PreviousCallCount())
		require.Equal(t, 1, seq.RemoveCallCount())
		require.Equal(t, "d", seq.IndexOfArgsForCall(0))
		require.Equal(t, 1, seq.ClearCallCount())
	})

	t.Run("sequence fails", func(t *testing.T) {
		g := NewGomegaWithT(t)
		bfr := gbytes.NewBuffer()
		opc := make(chan stats.Op, 10)

		seq := new(replayfakes.FakeSequence)
		seq.NextReturnsOnCall(0, "", itlist.ErrNoSuchElement)
		seq.NextReturnsOnCall(1, "b", nil)
		seq.RemoveReturns(errors.New("foo"))

		r := replay.New(seq, opc, bfr)
		failed := r.Run([]replay.Op{
			{Name: replay.OpNext},
			{Name: replay.OpNext},
			{Name: replay.OpRemove},
		})
		require.Equal(t, 2, failed)

		g.Expect(bfr).To(gbytes.Say(fmt.Sprintf("op:000000 • failure! cannot next\\(\\): %s", itlist.ErrNoSuchElement)))
		g.Expect(bfr).To(gbytes.Say(`op:000001 • next\(\) → b`))
		g.Expect(bfr).To(gbytes.Say(`op:000002 • failure! cannot remove\(\): foo`))

		require.Equal(t, itlist.ErrNoSuchElement.Error(), (<-opc).Status)
		require.Equal(t, stats.StatusOK, (<-opc).Status)
		require.Equal(t, "foo", (<-opc).Status)
	})

	t.Run("unknown op", func(t *testing.T) {
		g := NewGomegaWithT(t)
		bfr := gbytes.NewBuffer()

		seq := new(replayfakes.FakeSequence)
		r := replay.New(seq, nil, bfr)
		require.Equal(t, 1, r.Run([]replay.Op{{Name: "pop"}}))
		g.Expect(bfr).To(gbytes.Say(`unknown op "pop"`))
	})
}
