package client

import (
	"time"

	"github.com/hearthkeep/hearthkeep/internal/utils"
	"github.com/hearthkeep/hearthkeep/models"
)

// Record creation helpers for the embedding application. Each appends to the
// relevant local store, which wakes the store's watchers and schedules a
// debounced push.

// AddTask creates a task for the given actor and stores it.
func (a *App) AddTask(actorID, title string) models.Task {
	task := models.Task{
		ID:    utils.NewID(),
		Title: title,
	}
	a.stores.Tasks.Set(actorID, append(a.stores.Tasks.Get(actorID), task))
	return task
}

// AddExpense records a shared expense paid by one actor and split with the
// given others.
func (a *App) AddExpense(description string, amount models.Money, paidBy string, splitWith ...string) models.Expense {
	expense := models.Expense{
		ID:          utils.NewID(),
		Description: description,
		Amount:      amount,
		PaidBy:      paidBy,
		SplitWith:   splitWith,
		At:          time.Now().UTC(),
	}
	a.stores.Expenses.Set(append(a.stores.Expenses.Get(), expense))
	return expense
}

// AddEvent schedules a calendar entry for the given actor.
func (a *App) AddEvent(actorID, title string, startsAt, endsAt time.Time) models.Event {
	event := models.Event{
		ID:       utils.NewID(),
		Title:    title,
		StartsAt: startsAt,
		EndsAt:   endsAt,
	}
	a.stores.Events.Set(actorID, append(a.stores.Events.Get(actorID), event))
	return event
}
