// Package schedule provides the timing primitives the enhancement
// engine needs: a single-slot debouncer for coalescing resize bursts
// and independent per-element release timers for touch feedback.
//
// The debouncer is last-writer-wins: each notification cancels any
// pending timer and arms a fresh one, so a burst of notifications
// produces exactly one callback, scheduled one quiet interval after
// the final notification. There is at most one pending callback at any
// time.
package schedule
