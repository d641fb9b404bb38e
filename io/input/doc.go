// SPDX-License-Identifier: Unlicense OR MIT

/*
Package input turns asynchronous pointer callbacks into per-tick
events.

An [Accumulator] absorbs raw host events as they arrive: movement
and scroll are summed, the absolute position is overwritten and
button state changes are recorded as ordered transitions. Once per
tick, [Drain] reads and resets the accumulator and writes the
result to the output queues in [Writers].

Host callbacks and the tick may run concurrently. Sums are kept in
atomics and swapped out on drain; the button state and its pending
transitions are guarded together by a mutex.
*/
package input
