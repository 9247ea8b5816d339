package reconcile

import (
	"fmt"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequentialIDs returns a deterministic id generator.
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func fixedClock(d civil.Date) func() time.Time {
	return func() time.Time { return d.In(time.UTC).Add(10 * time.Hour) }
}

func newTestStore() *Store {
	return NewStore("user-1",
		WithIDGenerator(sequentialIDs()),
		WithClock(fixedClock(civil.Date{Year: 2024, Month: time.July, Day: 25})))
}

func draft(name, price string) PurchaseDraft {
	return PurchaseDraft{ItemName: name, Price: decimal.RequireFromString(price)}
}

func datePtr(y int, m time.Month, d int) *civil.Date {
	return &civil.Date{Year: y, Month: m, Day: d}
}

func TestAddPurchase(t *testing.T) {
	t.Run("CreatesPurchaseAndPantryItem", func(t *testing.T) {
		s := newTestStore()
		calories := 42
		expiry := datePtr(2024, time.August, 1)

		res, err := s.AddPurchase(PurchaseDraft{
			ItemName:    "  Milk ",
			Price:       decimal.RequireFromString("1.20"),
			Supermarket: "A",
			ExpiryDate:  expiry,
			Calories:    &calories,
		})
		require.NoError(t, err)

		assert.Equal(t, "Milk", res.Purchase.ItemName)
		assert.Equal(t, "user-1", res.Purchase.OwnerID)
		assert.Equal(t, civil.Date{Year: 2024, Month: time.July, Day: 25}, res.Purchase.PurchaseDate)
		assert.Equal(t, "A", res.Purchase.Supermarket)
		assert.Equal(t, 42, *res.Purchase.Calories)
		assert.Equal(t, res.Purchase.ID, res.PantryItem.PurchaseID)
		assert.Equal(t, "Milk", res.PantryItem.Name)
		assert.Equal(t, *expiry, *res.PantryItem.ExpiryDate)

		// The caller's draft must not alias the stored records.
		expiry.Day = 2
		assert.Equal(t, 1, res.PantryItem.ExpiryDate.Day)

		assert.Len(t, s.Purchases(), 1)
		assert.Len(t, s.Pantry(), 1)
	})

	t.Run("KeepsSuppliedDate", func(t *testing.T) {
		s := newTestStore()
		d := draft("Bread", "0.90")
		d.PurchaseDate = civil.Date{Year: 2024, Month: time.July, Day: 1}

		res, err := s.AddPurchase(d)
		require.NoError(t, err)
		assert.Equal(t, d.PurchaseDate, res.Purchase.PurchaseDate)
	})

	t.Run("ValidatesInput", func(t *testing.T) {
		negative := -1
		tests := []struct {
			name  string
			draft PurchaseDraft
		}{
			{"EmptyName", draft("", "1")},
			{"BlankName", draft("   ", "1")},
			{"ZeroPrice", draft("Milk", "0")},
			{"NegativePrice", draft("Milk", "-2.5")},
			{"NegativeCalories", PurchaseDraft{ItemName: "Milk", Price: decimal.NewFromInt(1), Calories: &negative}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				s := newTestStore()
				_, err := s.AddPurchase(tt.draft)
				assert.ErrorIs(t, err, ErrInvalidInput)
				assert.Empty(t, s.Purchases())
				assert.Empty(t, s.Pantry())
			})
		}
	})

	t.Run("RejectsDuplicateInPantry", func(t *testing.T) {
		s := newTestStore()
		_, err := s.AddPurchase(draft("Milk", "1.20"))
		require.NoError(t, err)

		for _, name := range []string{"Milk", "milk", "MILK", " mIlK "} {
			_, err := s.AddPurchase(draft(name, "2.00"))
			assert.ErrorIs(t, err, ErrDuplicateInPantry, name)
		}

		assert.Len(t, s.Purchases(), 1)
		assert.Len(t, s.Pantry(), 1)
	})

	t.Run("EachSuccessGrowsBothCollectionsByOne", func(t *testing.T) {
		s := newTestStore()
		for i, name := range []string{"Milk", "Eggs", "Bread", "Rice"} {
			_, err := s.AddPurchase(draft(name, "1"))
			require.NoError(t, err)
			assert.Len(t, s.Purchases(), i+1)
			assert.Len(t, s.Pantry(), i+1)
		}
	})
}

func TestRemoveFromPantry(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		s := newTestStore()
		_, err := s.RemoveFromPantry("missing")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Empty(t, s.ShoppingList())
	})

	t.Run("RestocksShoppingList", func(t *testing.T) {
		s := newTestStore()
		res, err := s.AddPurchase(draft("Milk", "1.20"))
		require.NoError(t, err)

		removal, err := s.RemoveFromPantry(res.PantryItem.ID)
		require.NoError(t, err)
		assert.Equal(t, "Milk", removal.RemovedName)
		assert.True(t, removal.AddedToShoppingList)
		require.NotNil(t, removal.ShoppingListItem)

		list := s.ShoppingList()
		require.Len(t, list, 1)
		assert.Equal(t, "Milk", list[0].Name)
		assert.False(t, list[0].IsCompleted)
		assert.Empty(t, s.Pantry())
		assert.Len(t, s.Purchases(), 1, "purchase history is permanent")
	})

	t.Run("SkipsExistingEntryInAnyState", func(t *testing.T) {
		for _, completed := range []bool{false, true} {
			t.Run(fmt.Sprintf("completed=%v", completed), func(t *testing.T) {
				s := newTestStore()
				item, err := s.AddShoppingListItem("MILK")
				require.NoError(t, err)
				if completed {
					_, err = s.ToggleShoppingListItem(item.ID)
					require.NoError(t, err)
				}

				res, err := s.AddPurchase(draft("milk", "1"))
				require.NoError(t, err)

				removal, err := s.RemoveFromPantry(res.PantryItem.ID)
				require.NoError(t, err)
				assert.False(t, removal.AddedToShoppingList)
				assert.Nil(t, removal.ShoppingListItem)
				assert.Len(t, s.ShoppingList(), 1)
			})
		}
	})

	t.Run("FreesNameForRepurchase", func(t *testing.T) {
		s := newTestStore()
		res, err := s.AddPurchase(draft("Milk", "1.20"))
		require.NoError(t, err)

		_, err = s.RemoveFromPantry(res.PantryItem.ID)
		require.NoError(t, err)

		_, err = s.AddPurchase(draft("milk", "1.30"))
		assert.NoError(t, err)
		assert.Len(t, s.Purchases(), 2)
		assert.Len(t, s.Pantry(), 1)
	})
}

func TestShoppingList(t *testing.T) {
	t.Run("AddRejectsBlankName", func(t *testing.T) {
		s := newTestStore()
		_, err := s.AddShoppingListItem("  ")
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Empty(t, s.ShoppingList())
	})

	t.Run("AddRejectsDuplicateRegardlessOfState", func(t *testing.T) {
		s := newTestStore()
		item, err := s.AddShoppingListItem("Eggs")
		require.NoError(t, err)

		_, err = s.AddShoppingListItem("eggs")
		assert.ErrorIs(t, err, ErrDuplicateInList)

		_, err = s.ToggleShoppingListItem(item.ID)
		require.NoError(t, err)

		_, err = s.AddShoppingListItem("EGGS")
		assert.ErrorIs(t, err, ErrDuplicateInList)
		assert.Len(t, s.ShoppingList(), 1)
	})

	t.Run("KeepsInsertionOrder", func(t *testing.T) {
		s := newTestStore()
		for _, name := range []string{"c", "a", "b"} {
			_, err := s.AddShoppingListItem(name)
			require.NoError(t, err)
		}
		var names []string
		for _, item := range s.ShoppingList() {
			names = append(names, item.Name)
		}
		assert.Equal(t, []string{"c", "a", "b"}, names)
	})

	t.Run("ToggleTwiceRestoresState", func(t *testing.T) {
		s := newTestStore()
		item, err := s.AddShoppingListItem("Eggs")
		require.NoError(t, err)

		first, err := s.ToggleShoppingListItem(item.ID)
		require.NoError(t, err)
		assert.True(t, first.IsCompleted)

		second, err := s.ToggleShoppingListItem(item.ID)
		require.NoError(t, err)
		assert.Equal(t, item.IsCompleted, second.IsCompleted)
	})

	t.Run("ToggleNotFound", func(t *testing.T) {
		s := newTestStore()
		_, err := s.ToggleShoppingListItem("missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Remove", func(t *testing.T) {
		s := newTestStore()
		item, err := s.AddShoppingListItem("Eggs")
		require.NoError(t, err)

		assert.NoError(t, s.RemoveShoppingListItem(item.ID))
		assert.Empty(t, s.ShoppingList())
		assert.ErrorIs(t, s.RemoveShoppingListItem(item.ID), ErrNotFound)
	})

	t.Run("ClearCompletedRemovesAllAndOnlyCompleted", func(t *testing.T) {
		s := newTestStore()
		var ids []string
		for _, name := range []string{"a", "b", "c", "d"} {
			item, err := s.AddShoppingListItem(name)
			require.NoError(t, err)
			ids = append(ids, item.ID)
		}
		_, _ = s.ToggleShoppingListItem(ids[0])
		_, _ = s.ToggleShoppingListItem(ids[2])

		removed := s.ClearCompletedItems()
		require.Len(t, removed, 2)
		assert.Equal(t, "a", removed[0].Name)
		assert.Equal(t, "c", removed[1].Name)

		remaining := s.ShoppingList()
		require.Len(t, remaining, 2)
		assert.Equal(t, "b", remaining[0].Name)
		assert.Equal(t, "d", remaining[1].Name)

		assert.Empty(t, s.ClearCompletedItems(), "second call removes nothing")
	})
}

func TestRestore(t *testing.T) {
	snap := Snapshot{
		Purchases:    []Purchase{{ID: "p1", ItemName: "Milk", Price: decimal.NewFromInt(1)}},
		Pantry:       []PantryItem{{ID: "i1", Name: "Milk", PurchaseID: "p1"}},
		ShoppingList: []ShoppingListItem{{ID: "l1", Name: "Eggs"}},
	}
	s := Restore("user-1", snap, WithIDGenerator(sequentialIDs()))

	_, err := s.AddPurchase(draft("milk", "1"))
	assert.ErrorIs(t, err, ErrDuplicateInPantry)

	_, err = s.AddShoppingListItem("eggs")
	assert.ErrorIs(t, err, ErrDuplicateInList)

	// Mutating the store must not leak into the snapshot it came from.
	_, err = s.RemoveFromPantry("i1")
	require.NoError(t, err)
	assert.Len(t, snap.Pantry, 1)
}

func TestScenarioCaseInsensitiveDuplicate(t *testing.T) {
	s := newTestStore()

	_, err := s.AddPurchase(PurchaseDraft{ItemName: "Milk", Price: decimal.RequireFromString("1.20"), Supermarket: "A"})
	require.NoError(t, err)
	require.Len(t, s.Pantry(), 1)
	assert.Equal(t, "Milk", s.Pantry()[0].Name)

	_, err = s.AddPurchase(PurchaseDraft{ItemName: "milk", Price: decimal.RequireFromString("2.00")})
	assert.ErrorIs(t, err, ErrDuplicateInPantry)

	require.Len(t, s.Pantry(), 1)
	assert.Equal(t, "Milk", s.Pantry()[0].Name)
	assert.Len(t, s.Purchases(), 1)
}
