package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind classifies a portfolio transaction.
type TransactionKind string

const (
	TransactionBuy      TransactionKind = "buy"
	TransactionSell     TransactionKind = "sell"
	TransactionDividend TransactionKind = "dividend"
)

// Transaction is a single entry in the household's financial transaction
// history. History is append-mostly and expensive to reconstruct, so the sync
// layer treats this domain as protected against empty overwrites.
type Transaction struct {
	ID          string          `json:"id"`
	PortfolioID string          `json:"portfolio_id"`
	Symbol      string          `json:"symbol"`
	Kind        TransactionKind `json:"kind"`
	Quantity    decimal.Decimal `json:"quantity"`
	Amount      Money           `json:"amount"`
	At          time.Time       `json:"at"`
}
