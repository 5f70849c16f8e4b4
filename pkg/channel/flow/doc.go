// Package flow provides a minimal fluent Flow[E, T] for synchronous
// composition of channel.Channel values.
//
// Methods keep the payload type fixed:
// - Start/FromValue/FromError: create a Flow
// - Then: apply a payload-to-payload step
// - Filter: drop the payload when a predicate fails
// - Ensure: trigger side effects without changing the result
// - Channel: unwrap the underlying Channel
//
// Package functions switch the payload or error type, which Go methods
// cannot express:
// - Via: a step producing a payload of a new type
// - MapError: transform the failure value
// - Finally: reduce to a concrete value via one handler per variant
//
// A failure entering the flow short-circuits every subsequent step; step
// functions are never invoked once the Flow carries a failure.
package flow
