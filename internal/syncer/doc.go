// SPDX-License-Identifier: Apache-2.0

// Package syncer keeps the client's local domain stores consistent with the
// authoritative remote snapshot store.
//
// The [Coordinator] owns no domain data. It holds coordination flags and, per
// registered [Domain], a debounced push pipeline: every local mutation is
// coalesced into a single trailing-edge full-snapshot upsert, protected by a
// bounded-backoff [RetryPolicy]. At startup (and per-actor on actor switch)
// the coordinator arbitrates whether local or remote state is authoritative:
// a non-empty remote snapshot always wins, while an empty remote with
// non-empty local state triggers recovery — the local snapshot is pushed,
// never deleted. Results that arrive for an actor who is no longer active are
// discarded outright.
//
// The host application drives the coordinator through three lifecycle hooks:
// Initialize once at boot, OnResume when it detects the process waking from a
// suspended or backgrounded state, and OnShutdown before exit to flush every
// pending push. Initialize never fails: a dead remote degrades the client to
// local-only operation, it never blocks it.
package syncer
