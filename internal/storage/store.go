package storage

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/user/gastos/internal/model"
)

// CounterKey holds the highest id assigned so far, as a decimal string.
const CounterKey = "id"

// Ledger owns the persistent key space for expense records.
//
// The layout is flat: CounterKey maps to the current counter, and each
// record lives under its decimal id. Deletions leave holes; ids are never
// reused because the counter only increases.
//
// A ledger assumes a single writer. NextID followed by Save's counter commit
// is two separate store accesses, not a transaction, so two concurrent
// writers could compute the same id.
type Ledger struct {
	kv KV
}

// NewLedger creates a ledger over the given namespace.
func NewLedger(kv KV) *Ledger {
	return &Ledger{kv: kv}
}

// Init ensures the id counter exists and is parseable, repairing it to 0
// otherwise. Safe to call more than once.
func (l *Ledger) Init() error {
	raw, ok, err := l.kv.Get(CounterKey)
	if err != nil {
		return err
	}
	if ok {
		if _, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return nil
		}
	}
	return l.kv.Set(CounterKey, "0")
}

// NextID returns the identifier the next Save will assign. A missing or
// unparseable counter is reset to 0 first, making the next id 1. NextID
// does not advance the counter; Save commits it.
func (l *Ledger) NextID() (int64, error) {
	raw, ok, err := l.kv.Get(CounterKey)
	if err != nil {
		return 0, err
	}
	if ok {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return n + 1, nil
		}
	}
	if err := l.kv.Set(CounterKey, "0"); err != nil {
		return 0, err
	}
	return 1, nil
}

// counter reads the persisted id counter. Missing or unparseable reads as 0.
func (l *Ledger) counter() (int64, error) {
	raw, ok, err := l.kv.Get(CounterKey)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, nil
	}
	return n, nil
}

// Save persists an expense under the next identifier, then commits the
// counter. Completeness is the caller's responsibility; Save does not
// re-validate. The assigned id is returned and set on e.
func (l *Ledger) Save(e *model.Expense) (int64, error) {
	id, err := l.NextID()
	if err != nil {
		return 0, err
	}

	raw, err := json.Marshal(e)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal expense: %w", err)
	}

	key := strconv.FormatInt(id, 10)
	if err := l.kv.Set(key, string(raw)); err != nil {
		return 0, fmt.Errorf("failed to write expense %d: %w", id, err)
	}
	if err := l.kv.Set(CounterKey, key); err != nil {
		return 0, fmt.Errorf("failed to commit id counter: %w", err)
	}

	e.ID = id
	return id, nil
}

// ListAll scans ids 1 through the current counter in ascending order.
// Missing or unparseable entries are deleted holes and are skipped. Every
// call re-reads the full persisted range; there is no cache.
func (l *Ledger) ListAll() ([]*model.Expense, error) {
	max, err := l.counter()
	if err != nil {
		return nil, err
	}

	expenses := make([]*model.Expense, 0, max)
	for id := int64(1); id <= max; id++ {
		raw, ok, err := l.kv.Get(strconv.FormatInt(id, 10))
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		var e model.Expense
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			continue
		}
		e.ID = id
		expenses = append(expenses, &e)
	}

	return expenses, nil
}

// Query narrows the full scan by the non-empty fields of criteria. Filters
// combine conjunctively and compare by exact string equality; an all-empty
// criteria returns the same set as ListAll.
func (l *Ledger) Query(criteria model.Expense) ([]*model.Expense, error) {
	all, err := l.ListAll()
	if err != nil {
		return nil, err
	}

	matched := make([]*model.Expense, 0, len(all))
	for _, e := range all {
		if e.Matches(criteria) {
			matched = append(matched, e)
		}
	}

	return matched, nil
}

// Get returns the expense stored under id.
func (l *Ledger) Get(id int64) (*model.Expense, error) {
	raw, ok, err := l.kv.Get(strconv.FormatInt(id, 10))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, model.ErrExpenseNotFound
	}

	var e model.Expense
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		return nil, model.ErrExpenseNotFound
	}
	e.ID = id
	return &e, nil
}

// Delete removes the record under id. Deleting an absent id is a no-op; the
// counter is never decremented, so the id stays permanently retired.
func (l *Ledger) Delete(id int64) error {
	return l.kv.Delete(strconv.FormatInt(id, 10))
}

// Count returns the number of live records.
func (l *Ledger) Count() (int, error) {
	all, err := l.ListAll()
	if err != nil {
		return 0, err
	}
	return len(all), nil
}
