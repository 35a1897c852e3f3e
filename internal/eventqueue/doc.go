// Package eventqueue is the FIFO of tagged mutation records by which
// buffer edits notify other subsystems (views, the deferred buffer
// removal set) without those subsystems being mutated directly from
// buffer code.
//
// The queue is drained exactly once per tick, after mode dispatch, in
// the order events were issued.
package eventqueue
