// Package order contains the order aggregate: the Order root, its frozen
// line items, the status state machine, and the product snapshot value
// object.
//
// An Order and its items form one consistency unit. Items carry a snapshot
// of the product taken at creation time, so later catalog edits never change
// historical order totals. The status workflow is:
//
//	checking ──> verified ──> done
//	    │            │
//	    └────────────┴──> cancelled
//
// done and cancelled are terminal. Transitions are guarded by the actor's
// role and, for cancellation, by order ownership.
package order
