// Package dispatch owns the bounded-concurrency engine: a fixed-size pool of
// workers draining a shared worklist of input records.
//
// Each record is rendered through the command template and executed exactly
// once by some worker; at most Workers invocations are in flight at any
// instant. Whichever worker finishes first pulls the next unclaimed record
// (greedy load balancing, no static partitioning). Run blocks until every
// invocation has completed; that is the only synchronization guarantee.
//
// Key properties:
//   - No completion-order guarantee across records
//   - No result aggregation: exit codes are logged per invocation, never
//     collected or reported to the caller
//   - A failing command never halts dispatch of the remaining records
//   - Empty input returns immediately with zero invocations
//
// The worklist is a buffered channel filled and closed before the workers
// start, so the channel is the sole synchronization point. The template is
// immutable and shared without copying.
package dispatch
