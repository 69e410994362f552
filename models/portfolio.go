package models

import "github.com/shopspring/decimal"

// Portfolio is a collection of holdings tracked under one name, shared by the
// whole household.
type Portfolio struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Currency string    `json:"currency"`
	Holdings []Holding `json:"holdings"`
}

// Holding is a position in a single instrument inside a portfolio.
type Holding struct {
	Symbol    string          `json:"symbol"`
	Quantity  decimal.Decimal `json:"quantity"`
	CostBasis Money           `json:"cost_basis"`
}
