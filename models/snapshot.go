package models

import (
	"encoding/json"
	"time"
)

// Domain names known to both the client and the sync server.
const (
	DomainPortfolios   = "portfolios"
	DomainTransactions = "transactions"
	DomainSymbolTags   = "symbolTags"
	DomainExpenses     = "expenses"
	DomainTasks        = "tasks"
	DomainEvents       = "events"
)

// Snapshot is the wire envelope for one domain's full state. Records holds the
// domain's record list as raw JSON; the sync layer never looks inside beyond
// an emptiness check. ActorID is empty for shared domains.
type Snapshot struct {
	Domain    string          `json:"domain"`
	ActorID   string          `json:"actor_id,omitempty"`
	Records   json.RawMessage `json:"records"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// EmptyRecords is the canonical encoding of "no records" in a snapshot.
var EmptyRecords = json.RawMessage("[]")
