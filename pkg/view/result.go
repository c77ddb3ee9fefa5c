package view

// ResultKind classifies the outcome of delivering an event to a view.
type ResultKind int

const (
	// ResultNop means the event was handled with no further consequence.
	ResultNop ResultKind = iota
	// ResultAction carries an action for the enclosing scope.
	ResultAction
	// ResultRequestRebuild asks memoizing ancestors to rebuild even though
	// their input data did not change.
	ResultRequestRebuild
	// ResultStale means the path no longer matches the tree.
	ResultStale
)

func (k ResultKind) String() string {
	switch k {
	case ResultNop:
		return "nop"
	case ResultAction:
		return "action"
	case ResultRequestRebuild:
		return "request_rebuild"
	case ResultStale:
		return "stale"
	default:
		return "unknown"
	}
}

// EventResult is returned from View.Event.
type EventResult[A any] struct {
	Kind   ResultKind
	Action A
}

// Nop returns a result with no consequence.
func Nop[A any]() EventResult[A] {
	return EventResult[A]{Kind: ResultNop}
}

// Action returns a result carrying a.
func Action[A any](a A) EventResult[A] {
	return EventResult[A]{Kind: ResultAction, Action: a}
}

// RequestRebuild returns a result that invalidates memoized ancestors.
func RequestRebuild[A any]() EventResult[A] {
	return EventResult[A]{Kind: ResultRequestRebuild}
}

// Stale returns a result reporting that the path did not match.
func Stale[A any]() EventResult[A] {
	return EventResult[A]{Kind: ResultStale}
}

// IsStale reports whether the result is ResultStale.
func (r EventResult[A]) IsStale() bool {
	return r.Kind == ResultStale
}

// MapResult converts the action of r with f, keeping every other kind.
func MapResult[A, B any](r EventResult[A], f func(A) B) EventResult[B] {
	if r.Kind == ResultAction {
		return Action(f(r.Action))
	}
	return EventResult[B]{Kind: r.Kind}
}
