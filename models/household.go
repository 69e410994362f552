package models

import "time"

// Task is a to-do item scoped to the actor who created it.
type Task struct {
	ID    string     `json:"id"`
	Title string     `json:"title"`
	Notes string     `json:"notes,omitempty"`
	Done  bool       `json:"done"`
	Due   *time.Time `json:"due,omitempty"`
}

// Expense is a shared household expense, optionally split between actors.
type Expense struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      Money     `json:"amount"`
	PaidBy      string    `json:"paid_by"`
	SplitWith   []string  `json:"split_with,omitempty"`
	At          time.Time `json:"at"`
}

// Event is a scheduled calendar entry scoped to a single actor.
type Event struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
	Location string    `json:"location,omitempty"`
}

// SymbolTag attaches free-form tags to an instrument symbol, shared across the
// household so everyone sees the same classification.
type SymbolTag struct {
	Symbol string   `json:"symbol"`
	Tags   []string `json:"tags"`
}

// Actor identifies a household member. Credential handling lives outside this
// application; an actor here is just an identity records are partitioned by.
type Actor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
