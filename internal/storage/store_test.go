package storage

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/gastos/internal/model"
)

// withEachBackend runs fn against a fresh ledger on every KV backend.
func withEachBackend(t *testing.T, fn func(t *testing.T, ledger *Ledger, kv KV)) {
	t.Helper()

	t.Run("sqlite", func(t *testing.T) {
		kv, err := NewSQLiteKV(t.TempDir())
		require.NoError(t, err)
		defer kv.Close()

		ledger := NewLedger(kv)
		require.NoError(t, ledger.Init())
		fn(t, ledger, kv)
	})

	t.Run("file", func(t *testing.T) {
		kv, err := NewFileKV(t.TempDir())
		require.NoError(t, err)
		defer kv.Close()

		ledger := NewLedger(kv)
		require.NoError(t, ledger.Init())
		fn(t, ledger, kv)
	})
}

func expense(category, description, amount string) *model.Expense {
	return &model.Expense{
		Year:        "2024",
		Month:       "05",
		Day:         "10",
		Category:    category,
		Description: description,
		Amount:      amount,
	}
}

func TestLedgerSave(t *testing.T) {
	withEachBackend(t, func(t *testing.T, ledger *Ledger, kv KV) {
		t.Run("assigns sequential ids starting at 1", func(t *testing.T) {
			id1, err := ledger.Save(expense("1", "Lunch", "20"))
			require.NoError(t, err)
			assert.Equal(t, int64(1), id1)

			id2, err := ledger.Save(expense("3", "Cinema", "30"))
			require.NoError(t, err)
			assert.Equal(t, int64(2), id2)
		})

		t.Run("sets the id on the saved expense", func(t *testing.T) {
			e := expense("5", "Bus", "4.50")
			id, err := ledger.Save(e)
			require.NoError(t, err)
			assert.Equal(t, id, e.ID)
		})

		t.Run("listing grows by exactly one per save", func(t *testing.T) {
			before, err := ledger.ListAll()
			require.NoError(t, err)

			_, err = ledger.Save(expense("2", "Books", "80"))
			require.NoError(t, err)

			after, err := ledger.ListAll()
			require.NoError(t, err)
			assert.Len(t, after, len(before)+1)
		})
	})
}

func TestLedgerListAll(t *testing.T) {
	withEachBackend(t, func(t *testing.T, ledger *Ledger, kv KV) {
		t.Run("empty ledger lists nothing", func(t *testing.T) {
			all, err := ledger.ListAll()
			require.NoError(t, err)
			assert.Empty(t, all)
		})

		t.Run("fields come back verbatim with ids attached", func(t *testing.T) {
			saved := expense("1", "Café da manhã", "12.50")
			id, err := ledger.Save(saved)
			require.NoError(t, err)

			all, err := ledger.ListAll()
			require.NoError(t, err)
			require.Len(t, all, 1)

			got := all[0]
			assert.Equal(t, id, got.ID)
			assert.Equal(t, "2024", got.Year)
			assert.Equal(t, "05", got.Month)
			assert.Equal(t, "10", got.Day)
			assert.Equal(t, "1", got.Category)
			assert.Equal(t, "Café da manhã", got.Description)
			assert.Equal(t, "12.50", got.Amount)
		})

		t.Run("ascending id order", func(t *testing.T) {
			ledger.Save(expense("2", "a", "1"))
			ledger.Save(expense("2", "b", "2"))

			all, err := ledger.ListAll()
			require.NoError(t, err)
			for i := 1; i < len(all); i++ {
				assert.Less(t, all[i-1].ID, all[i].ID)
			}
		})

		t.Run("unparseable entry is skipped as a hole", func(t *testing.T) {
			id, err := ledger.Save(expense("4", "corruptme", "9"))
			require.NoError(t, err)

			require.NoError(t, kv.Set(strconv.FormatInt(id, 10), "not json"))

			all, err := ledger.ListAll()
			require.NoError(t, err)
			for _, e := range all {
				assert.NotEqual(t, "corruptme", e.Description)
			}
		})
	})
}

func TestLedgerQuery(t *testing.T) {
	withEachBackend(t, func(t *testing.T, ledger *Ledger, kv KV) {
		_, err := ledger.Save(&model.Expense{
			Year: "2024", Month: "05", Day: "10",
			Category: "1", Description: "Lunch", Amount: "20",
		})
		require.NoError(t, err)
		_, err = ledger.Save(&model.Expense{
			Year: "2024", Month: "05", Day: "12",
			Category: "3", Description: "Cinema", Amount: "30",
		})
		require.NoError(t, err)
		_, err = ledger.Save(&model.Expense{
			Year: "2023", Month: "11", Day: "02",
			Category: "3", Description: "Museum", Amount: "15",
		})
		require.NoError(t, err)

		t.Run("empty criteria returns the same set as ListAll", func(t *testing.T) {
			all, err := ledger.ListAll()
			require.NoError(t, err)

			got, err := ledger.Query(model.Expense{})
			require.NoError(t, err)
			assert.Equal(t, all, got)
		})

		t.Run("single field narrows to exact matches", func(t *testing.T) {
			got, err := ledger.Query(model.Expense{Category: "3"})
			require.NoError(t, err)
			require.Len(t, got, 2)
			assert.Equal(t, "Cinema", got[0].Description)
			assert.Equal(t, "Museum", got[1].Description)
		})

		t.Run("multiple fields intersect", func(t *testing.T) {
			got, err := ledger.Query(model.Expense{Category: "3", Year: "2024"})
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, "Cinema", got[0].Description)
		})

		t.Run("no coercion, exact string equality only", func(t *testing.T) {
			got, err := ledger.Query(model.Expense{Amount: "20.0"})
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	})
}

func TestLedgerDelete(t *testing.T) {
	withEachBackend(t, func(t *testing.T, ledger *Ledger, kv KV) {
		id1, err := ledger.Save(expense("1", "Lunch", "20"))
		require.NoError(t, err)
		id2, err := ledger.Save(expense("3", "Cinema", "30"))
		require.NoError(t, err)

		t.Run("deleted id becomes a hole", func(t *testing.T) {
			require.NoError(t, ledger.Delete(id1))

			all, err := ledger.ListAll()
			require.NoError(t, err)
			require.Len(t, all, 1)
			assert.Equal(t, id2, all[0].ID)
		})

		t.Run("deleting an absent id is a no-op", func(t *testing.T) {
			assert.NoError(t, ledger.Delete(999))
			assert.NoError(t, ledger.Delete(id1))
		})

		t.Run("ids are never reused after delete", func(t *testing.T) {
			id3, err := ledger.Save(expense("5", "Taxi", "18"))
			require.NoError(t, err)
			assert.Greater(t, id3, id2)

			all, err := ledger.ListAll()
			require.NoError(t, err)
			for _, e := range all {
				assert.NotEqual(t, id1, e.ID)
			}
		})

		t.Run("counter is untouched by delete", func(t *testing.T) {
			next, err := ledger.NextID()
			require.NoError(t, err)

			require.NoError(t, ledger.Delete(id2))

			nextAfter, err := ledger.NextID()
			require.NoError(t, err)
			assert.Equal(t, next, nextAfter)
		})
	})
}

func TestLedgerGet(t *testing.T) {
	withEachBackend(t, func(t *testing.T, ledger *Ledger, kv KV) {
		id, err := ledger.Save(expense("2", "Books", "80"))
		require.NoError(t, err)

		t.Run("existing id", func(t *testing.T) {
			got, err := ledger.Get(id)
			require.NoError(t, err)
			assert.Equal(t, id, got.ID)
			assert.Equal(t, "Books", got.Description)
		})

		t.Run("missing id", func(t *testing.T) {
			_, err := ledger.Get(42)
			assert.ErrorIs(t, err, model.ErrExpenseNotFound)
		})

		t.Run("deleted id", func(t *testing.T) {
			require.NoError(t, ledger.Delete(id))
			_, err := ledger.Get(id)
			assert.ErrorIs(t, err, model.ErrExpenseNotFound)
		})
	})
}

func TestLedgerCounterRepair(t *testing.T) {
	withEachBackend(t, func(t *testing.T, ledger *Ledger, kv KV) {
		t.Run("missing counter reads as next id 1", func(t *testing.T) {
			require.NoError(t, kv.Delete(CounterKey))

			next, err := ledger.NextID()
			require.NoError(t, err)
			assert.Equal(t, int64(1), next)
		})

		t.Run("corrupt counter is repaired and save assigns 1", func(t *testing.T) {
			require.NoError(t, kv.Set(CounterKey, "banana"))

			id, err := ledger.Save(expense("1", "Lunch", "20"))
			require.NoError(t, err)
			assert.Equal(t, int64(1), id)

			all, err := ledger.ListAll()
			require.NoError(t, err)
			require.Len(t, all, 1)
			assert.Equal(t, int64(1), all[0].ID)
		})

		t.Run("init is idempotent and preserves a valid counter", func(t *testing.T) {
			require.NoError(t, ledger.Init())
			require.NoError(t, ledger.Init())

			next, err := ledger.NextID()
			require.NoError(t, err)
			assert.Equal(t, int64(2), next)
		})
	})
}

func TestLedgerCount(t *testing.T) {
	withEachBackend(t, func(t *testing.T, ledger *Ledger, kv KV) {
		count, err := ledger.Count()
		require.NoError(t, err)
		assert.Equal(t, 0, count)

		id, err := ledger.Save(expense("1", "Lunch", "20"))
		require.NoError(t, err)
		_, err = ledger.Save(expense("3", "Cinema", "30"))
		require.NoError(t, err)

		count, err = ledger.Count()
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		require.NoError(t, ledger.Delete(id))

		count, err = ledger.Count()
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestOpen(t *testing.T) {
	t.Run("sqlite backend", func(t *testing.T) {
		kv, err := Open(BackendSQLite, t.TempDir())
		require.NoError(t, err)
		defer kv.Close()
		assert.IsType(t, &SQLiteKV{}, kv)
	})

	t.Run("file backend", func(t *testing.T) {
		kv, err := Open(BackendFile, t.TempDir())
		require.NoError(t, err)
		defer kv.Close()
		assert.IsType(t, &FileKV{}, kv)
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := Open("redis", t.TempDir())
		assert.ErrorIs(t, err, model.ErrUnknownBackend)
	})
}
