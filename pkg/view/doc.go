// Package view is the declarative side of the engine. Application code
// returns a fresh tree of View values every cycle; the views diff themselves
// against the previous cycle's tree and push the differences into the
// retained widget tree.
//
// # Identity
//
// Every view node that builds a widget gets an [id.Id] when it is first
// built. The id survives as long as the node keeps its structural position
// and concrete type (and key, see [Keyed]). Build and Rebuild run inside a
// [Cx] that holds the id path of the node being processed, so widgets that
// emit messages (buttons) can record the full path from the root.
//
// # Event routing
//
// Messages carry the id path of the view that should handle them. The
// driver matches the root id and passes the remainder to the root view's
// Event. Each view receives the path with its own id already stripped and
// forwards the tail to the child whose id matches the head. A path that
// does not match anything yields a Stale result; it usually means the
// target was removed between the event and its delivery.
//
// # Correspondence
//
// Children are matched by position. A slot whose view changes concrete type
// or key is torn down and rebuilt fresh rather than updated; reordering a
// sequence therefore rebuilds the moved slots instead of moving their state.
package view
