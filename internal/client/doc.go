// SPDX-License-Identifier: Apache-2.0

// Package client implements the hearthkeep client runtime.
//
// It wires local stores, the remote snapshot adapter, and the sync
// coordinator into a single process lifecycle, and exposes the derived
// queries (expense balances) the embedding application reads.
package client
