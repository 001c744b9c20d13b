package model

// Expense represents a single expense entry.
//
// The six content fields hold whatever text the caller supplied; the ledger
// performs no normalization or coercion. ID is assigned by the ledger at
// save time and is zero on an unsaved expense. ID is excluded from the
// persisted value: the store attaches it from the scan position when
// reading.
type Expense struct {
	ID          int64  `json:"-"`
	Year        string `json:"year"`
	Month       string `json:"month"`
	Day         string `json:"day"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

// IsComplete reports whether all six content fields are non-empty.
// The fields are checked by name; ID never takes part in the check.
func (e *Expense) IsComplete() bool {
	required := []string{
		e.Year,
		e.Month,
		e.Day,
		e.Category,
		e.Description,
		e.Amount,
	}
	for _, v := range required {
		if v == "" {
			return false
		}
	}
	return true
}

// Matches reports whether e satisfies the given criteria. A criteria field
// left empty imposes no constraint; a non-empty field must equal the
// expense's field exactly. All non-empty fields must match (logical AND).
func (e *Expense) Matches(c Expense) bool {
	if c.Year != "" && e.Year != c.Year {
		return false
	}
	if c.Month != "" && e.Month != c.Month {
		return false
	}
	if c.Day != "" && e.Day != c.Day {
		return false
	}
	if c.Category != "" && e.Category != c.Category {
		return false
	}
	if c.Description != "" && e.Description != c.Description {
		return false
	}
	if c.Amount != "" && e.Amount != c.Amount {
		return false
	}
	return true
}
