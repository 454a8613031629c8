package client

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

var ErrUnknownEntry = errors.New("there is no pending expense with this key")

// EntryState is either Pending or Confirmed.
type EntryState interface {
	entryState()
}

// Pending is an expense that was applied locally, but not yet confirmed
// by the server.
type Pending struct {
	Key uuid.UUID
}

// Confirmed is an expense the server has recorded with the ID.
type Confirmed struct {
	ID uint64
}

func (Pending) entryState()   {}
func (Confirmed) entryState() {}

// Entry is an expense in a Projection.
type Entry struct {
	State       EntryState
	Amount      decimal.Decimal
	Description string
	Date        time.Time
}

// Projection is the local view of a budget and its expenses. Expenses are
// applied optimistically and later confirmed or rolled back.
//
// It is safe for concurrent use.
type Projection struct {
	mu        sync.Mutex
	budget    Budget
	remaining decimal.Decimal
	entries   []Entry // newest first
}

// NewProjection returns a projection of the budget with the confirmed expenses.
func NewProjection(budget Budget, expenses []Expense) *Projection {
	p := &Projection{
		budget:    budget,
		remaining: budget.Remaining,
		entries:   make([]Entry, 0, len(expenses)),
	}

	for _, e := range expenses {
		p.entries = append(p.entries, Entry{
			State:       Confirmed{ID: e.ID},
			Amount:      e.Amount,
			Description: e.Description,
			Date:        e.Date,
		})
	}

	return p
}

// BudgetID returns the ID of the projected budget.
func (p *Projection) BudgetID() uint64 {
	return p.budget.ID
}

// Remaining returns the remaining amount including all pending expenses.
func (p *Projection) Remaining() decimal.Decimal {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.remaining
}

// Entries returns a copy of all entries, the newest first.
func (p *Projection) Entries() []Entry {
	p.mu.Lock()
	defer p.mu.Unlock()

	return slices.Clone(p.entries)
}

// PendingCount returns the number of unconfirmed entries.
func (p *Projection) PendingCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, e := range p.entries {
		if _, ok := e.State.(Pending); ok {
			n++
		}
	}

	return n
}

// ApplyExpense adds a pending entry and decreases the remaining amount.
// The returned key identifies the entry for Confirm and Rollback.
func (p *Projection) ApplyExpense(amount decimal.Decimal, description string) uuid.UUID {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := uuid.New()
	p.entries = slices.Insert(p.entries, 0, Entry{
		State:       Pending{Key: key},
		Amount:      amount,
		Description: description,
		Date:        time.Now().UTC(),
	})
	p.remaining = p.remaining.Sub(amount)

	return key
}

// Confirm replaces the pending entry with the expense recorded by the server.
// The remaining amount is set to the server value minus the entries that
// are still pending, local arithmetic for confirmed entries is discarded.
func (p *Projection) Confirm(key uuid.UUID, expense Expense, remaining decimal.Decimal) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	i := p.pendingIndex(key)
	if i < 0 {
		return ErrUnknownEntry
	}

	p.entries[i] = Entry{
		State:       Confirmed{ID: expense.ID},
		Amount:      expense.Amount,
		Description: expense.Description,
		Date:        expense.Date,
	}
	for _, e := range p.entries {
		if _, ok := e.State.(Pending); ok {
			remaining = remaining.Sub(e.Amount)
		}
	}
	p.remaining = remaining

	return nil
}

// Rollback removes the pending entry and reverses its decrement.
func (p *Projection) Rollback(key uuid.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	i := p.pendingIndex(key)
	if i < 0 {
		return ErrUnknownEntry
	}

	p.remaining = p.remaining.Add(p.entries[i].Amount)
	p.entries = slices.Delete(p.entries, i, i+1)

	return nil
}

func (p *Projection) pendingIndex(key uuid.UUID) int {
	return slices.IndexFunc(p.entries, func(e Entry) bool {
		pending, ok := e.State.(Pending)
		return ok && pending.Key == key
	})
}
