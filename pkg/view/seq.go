package view

import (
	"strconv"

	"github.com/go-drift/weft/pkg/errors"
	"github.com/go-drift/weft/pkg/id"
	"github.com/go-drift/weft/pkg/widget"
)

// Seq is an ordered, heterogeneous list of child views. Slots correspond by
// position across cycles.
type Seq[T, A any] []View[T, A]

// Tuple returns the views as a sequence.
func Tuple[T, A any](views ...View[T, A]) Seq[T, A] {
	return Seq[T, A](views)
}

// SeqState is the diff-state of a sequence: one id and one child state per
// slot.
type SeqState struct {
	Ids    []id.Id
	States []any
}

// Build builds every slot in order, each into its own pod.
func (s Seq[T, A]) Build(cx *Cx) (*SeqState, []*widget.Pod) {
	state := &SeqState{Ids: make([]id.Id, 0, len(s)), States: make([]any, 0, len(s))}
	pods := make([]*widget.Pod, 0, len(s))
	for _, v := range s {
		vid, vs, pod := BuildPod(cx, v)
		state.Ids = append(state.Ids, vid)
		state.States = append(state.States, vs)
		pods = append(pods, pod)
	}
	return state, pods
}

// Rebuild diffs s against prev slot by slot. Slots whose child changed get
// an update request on their pod. Slots added at the end are built, slots
// beyond the new length are disposed; both count as a change.
func (s Seq[T, A]) Rebuild(cx *Cx, prev Seq[T, A], state *SeqState, pods *[]*widget.Pod) bool {
	if len(state.Ids) != len(prev) || len(state.States) != len(prev) || len(*pods) != len(prev) {
		panic(&errors.ContractError{
			Op:   "view.Seq.Rebuild",
			Want: strconv.Itoa(len(prev)) + " slots",
			Got:  strconv.Itoa(len(*pods)) + " pods",
		})
	}
	changed := false
	common := min(len(s), len(prev))
	for i := range common {
		pod := (*pods)[i]
		if RebuildChild(cx, s[i], prev[i], &state.Ids[i], &state.States[i], pod) {
			pod.RequestUpdate()
			changed = true
		}
	}
	for _, v := range s[common:] {
		vid, vs, pod := BuildPod(cx, v)
		state.Ids = append(state.Ids, vid)
		state.States = append(state.States, vs)
		*pods = append(*pods, pod)
		changed = true
	}
	if len(s) < len(prev) {
		for _, pod := range (*pods)[len(s):] {
			pod.Dispose()
		}
		clear((*pods)[len(s):])
		clear(state.States[len(s):])
		*pods = (*pods)[:len(s)]
		state.Ids = state.Ids[:len(s)]
		state.States = state.States[:len(s)]
		changed = true
	}
	return changed
}

// Event forwards to the slot whose id matches the head of path.
func (s Seq[T, A]) Event(path id.Path, state *SeqState, event any, app *T) EventResult[A] {
	head, tail, ok := path.Head()
	if !ok {
		return Stale[A]()
	}
	for i, vid := range state.Ids {
		if vid == head && i < len(s) {
			return s[i].Event(tail, state.States[i], event, app)
		}
	}
	return Stale[A]()
}
