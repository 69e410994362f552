package client

import (
	"sort"

	"github.com/hearthkeep/hearthkeep/models"
)

// Balance summarizes one actor's position in the shared expense ledger.
type Balance struct {
	ActorID string
	// Paid is the total this actor fronted.
	Paid models.Money
	// Owed is this actor's share of every expense they participate in.
	Owed models.Money
	// Net is Paid minus Owed; negative means the actor owes the household.
	Net models.Money
}

const balancesCacheKey = "expense-balances"

// ExpenseBalances computes each actor's paid/owed/net position across the
// shared expense ledger. The result is cached until the next local edit or
// adopted remote snapshot invalidates it.
func (a *App) ExpenseBalances() []Balance {
	if cached, ok := a.cache.Get(balancesCacheKey); ok {
		if balances, ok := cached.([]Balance); ok {
			return balances
		}
	}

	balances := computeBalances(a.stores.Expenses.Get())
	a.cache.Put(balancesCacheKey, balances)
	return balances
}

// computeBalances splits every expense evenly between the payer and the
// actors listed in SplitWith. An expense with no SplitWith entries is the
// payer's alone and nets to zero for them.
func computeBalances(expenses []models.Expense) []Balance {
	byActor := make(map[string]Balance)

	get := func(actorID string) Balance {
		b, ok := byActor[actorID]
		if !ok {
			b = Balance{ActorID: actorID}
		}
		return b
	}

	for _, e := range expenses {
		if e.PaidBy == "" {
			continue
		}

		participants := []string{e.PaidBy}
		seen := map[string]bool{e.PaidBy: true}
		for _, p := range e.SplitWith {
			if p == "" || seen[p] {
				continue
			}
			seen[p] = true
			participants = append(participants, p)
		}

		payer := get(e.PaidBy)
		payer.Paid = payer.Paid.Add(e.Amount)
		byActor[e.PaidBy] = payer

		share := e.Amount.Div(int64(len(participants)))
		for _, p := range participants {
			b := get(p)
			b.Owed = b.Owed.Add(share)
			byActor[p] = b
		}
	}

	balances := make([]Balance, 0, len(byActor))
	for _, b := range byActor {
		b.Net = b.Paid.Sub(b.Owed)
		balances = append(balances, b)
	}
	sort.Slice(balances, func(i, j int) bool { return balances[i].ActorID < balances[j].ActorID })

	return balances
}
