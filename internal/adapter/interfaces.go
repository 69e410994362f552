// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the transport layer between the client and the
// hearthkeep sync server.
//
// The primary abstraction is [RemoteStore], which decouples the sync
// coordinator from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPRemoteStore]). Error values defined in errors.go
// are mapped from HTTP status codes by mapHTTPError so that callers can use
// [errors.Is] for transport-agnostic error handling.
package adapter

import (
	"context"

	"github.com/hearthkeep/hearthkeep/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_store_mock.go -package=mock

// RemoteStore is the authoritative remote snapshot store, one full snapshot
// per (domain, actor) pair. Both operations surface network failures as
// errors; neither offers partial success.
type RemoteStore interface {
	// FetchAll retrieves the remote snapshot for the domain, filtered to
	// actorID for actor-scoped domains (empty for shared domains). A domain
	// that has never been written resolves to an empty snapshot, not an
	// error.
	FetchAll(ctx context.Context, domain, actorID string) (models.Snapshot, error)

	// Upsert writes a full snapshot to the remote store. The write is
	// idempotent: repeating it with identical content leaves remote state
	// unchanged.
	Upsert(ctx context.Context, snapshot models.Snapshot) error

	// Ping reports whether the remote endpoint is reachable.
	Ping(ctx context.Context) error
}
