package grocery

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"grocery-tracker/core/middleware/owner"
	"grocery-tracker/core/persistence"
	"grocery-tracker/core/persistence/mocks"
	"grocery-tracker/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testUser = "user-1"

func fixedClock() time.Time {
	return time.Date(2024, time.July, 25, 12, 0, 0, 0, time.UTC)
}

func setupTestApp(t *testing.T, adapter persistence.Adapter) *fiber.App {
	t.Helper()
	app, _ := setupTestAppWithSessions(t, adapter)
	return app
}

func setupTestAppWithSessions(t *testing.T, adapter persistence.Adapter) (*fiber.App, *reconcile.Sessions) {
	t.Helper()
	logger := zap.NewNop()
	mirror := persistence.NewMirror(adapter, time.Second, logger)
	sessions := reconcile.NewSessions(mirror, 0, logger, reconcile.WithClock(fixedClock))

	app := fiber.New()
	api := app.Group("/api")
	require.NoError(t, NewFeature(sessions, mirror, logger).Load(api))
	return app, sessions
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	return doRequestAs(t, app, testUser, method, path, body)
}

func doRequestAs(t *testing.T, app *fiber.App, user, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(owner.HeaderName, user)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestFeature(t *testing.T) {
	f := NewFeature(reconcile.NewSessions(nil, 0, nil), nil, nil)
	assert.Equal(t, "grocery", f.Name())
	assert.True(t, f.IsEnabled())
	assert.NoError(t, f.Load(fiber.New()))
}

func TestRequiresUser(t *testing.T) {
	app := setupTestApp(t, persistence.NewMemoryStore())

	for _, route := range []struct{ method, path string }{
		{"GET", "/api/purchases"},
		{"POST", "/api/purchases"},
		{"GET", "/api/pantry"},
		{"DELETE", "/api/pantry/p1"},
		{"GET", "/api/shopping-list"},
		{"DELETE", "/api/shopping-list/completed"},
		{"GET", "/api/dashboard"},
	} {
		resp, err := app.Test(httptest.NewRequest(route.method, route.path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, route.path)
	}
}

func TestHandleAddPurchase(t *testing.T) {
	store := persistence.NewMemoryStore()
	app := setupTestApp(t, store)

	resp := doRequest(t, app, "POST", "/api/purchases", map[string]any{
		"itemName":    " Milk ",
		"price":       1.2,
		"supermarket": "Lidl",
		"expiryDate":  "2024-07-28",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	out := decode[PurchaseOutcome](t, resp)
	assert.Equal(t, "Milk", out.Purchase.ItemName)
	assert.True(t, out.Purchase.Price.Equal(decimal.RequireFromString("1.20")))
	assert.Equal(t, "2024-07-25", out.Purchase.PurchaseDate.String())
	assert.Equal(t, testUser, out.Purchase.OwnerID)
	assert.Equal(t, out.Purchase.ID, out.PantryItem.PurchaseID)
	assert.Empty(t, out.Warnings)

	purchases, err := store.Get(context.Background(), testUser, persistence.CollectionPurchases)
	require.NoError(t, err)
	assert.Len(t, purchases, 1)
	pantry, err := store.Get(context.Background(), testUser, persistence.CollectionPantry)
	require.NoError(t, err)
	assert.Len(t, pantry, 1)

	t.Run("DuplicateInPantry", func(t *testing.T) {
		resp := doRequest(t, app, "POST", "/api/purchases", map[string]any{"itemName": "milk", "price": "0.99"})
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

		list := decode[[]reconcile.Purchase](t, doRequest(t, app, "GET", "/api/purchases", nil))
		assert.Len(t, list, 1)
	})

	t.Run("OtherUserIsolated", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/purchases", nil)
		req.Header.Set(owner.HeaderName, "user-2")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Empty(t, decode[[]reconcile.Purchase](t, resp))
	})
}

func TestHandleAddPurchase_Invalid(t *testing.T) {
	app := setupTestApp(t, persistence.NewMemoryStore())

	tests := []struct {
		name  string
		body  map[string]any
		field string
		rule  string
	}{
		{"MissingName", map[string]any{"price": 2}, "itemName", "required"},
		{"NegativeCalories", map[string]any{"itemName": "Bread", "price": 2, "calories": -5}, "calories", "min"},
		{"ZeroPrice", map[string]any{"itemName": "Bread", "price": 0}, "", ""},
		{"NegativePrice", map[string]any{"itemName": "Bread", "price": "-1"}, "", ""},
		{"BadDate", map[string]any{"itemName": "Bread", "price": 2, "expiryDate": "soon"}, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, app, "POST", "/api/purchases", tt.body)
			require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

			if tt.field != "" {
				body := decode[map[string]any](t, resp)
				fields, ok := body["fields"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, tt.rule, fields[tt.field])
			}
		})
	}

	assert.Empty(t, decode[[]reconcile.Purchase](t, doRequest(t, app, "GET", "/api/purchases", nil)))
}

func TestHandleListPantry(t *testing.T) {
	app := setupTestApp(t, persistence.NewMemoryStore())

	for _, p := range []map[string]any{
		{"itemName": "Rice", "price": 3},
		{"itemName": "Yogurt", "price": 1, "expiryDate": "2024-07-20"},
		{"itemName": "Cheese", "price": 4, "expiryDate": "2024-08-30"},
		{"itemName": "Milk", "price": 1, "expiryDate": "2024-07-27"},
	} {
		require.Equal(t, fiber.StatusCreated, doRequest(t, app, "POST", "/api/purchases", p).StatusCode)
	}

	entries := decode[[]reconcile.PantryEntry](t, doRequest(t, app, "GET", "/api/pantry?today=2024-07-25", nil))
	require.Len(t, entries, 4)

	assert.Equal(t, "Yogurt", entries[0].Name)
	assert.Equal(t, reconcile.ExpiryExpired, entries[0].Expiry.State)
	assert.Equal(t, 5, entries[0].Expiry.DaysOverdue)

	assert.Equal(t, "Milk", entries[1].Name)
	assert.Equal(t, reconcile.ExpiringSoon, entries[1].Expiry.State)
	assert.Equal(t, 2, entries[1].Expiry.DaysRemaining)

	assert.Equal(t, "Cheese", entries[2].Name)
	assert.Equal(t, reconcile.ExpiryFresh, entries[2].Expiry.State)

	assert.Equal(t, "Rice", entries[3].Name)
	assert.Equal(t, reconcile.ExpiryNone, entries[3].Expiry.State)

	t.Run("DefaultsToStoreDay", func(t *testing.T) {
		entries := decode[[]reconcile.PantryEntry](t, doRequest(t, app, "GET", "/api/pantry", nil))
		require.Len(t, entries, 4)
		assert.Equal(t, reconcile.ExpiringSoon, entries[1].Expiry.State)
	})

	t.Run("BadToday", func(t *testing.T) {
		resp := doRequest(t, app, "GET", "/api/pantry?today=yesterday", nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandleRemoveFromPantry(t *testing.T) {
	store := persistence.NewMemoryStore()
	app := setupTestApp(t, store)

	added := decode[PurchaseOutcome](t, doRequest(t, app, "POST", "/api/purchases", map[string]any{"itemName": "Milk", "price": "1.20"}))

	resp := doRequest(t, app, "DELETE", "/api/pantry/"+added.PantryItem.ID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := decode[RemovalOutcome](t, resp)
	assert.Equal(t, "Milk", out.RemovedName)
	assert.True(t, out.AddedToShoppingList)
	require.NotNil(t, out.ShoppingListItem)
	assert.False(t, out.ShoppingListItem.IsCompleted)

	list := decode[[]reconcile.ShoppingListItem](t, doRequest(t, app, "GET", "/api/shopping-list", nil))
	require.Len(t, list, 1)
	assert.Equal(t, "Milk", list[0].Name)

	pantry, err := store.Get(context.Background(), testUser, persistence.CollectionPantry)
	require.NoError(t, err)
	assert.Empty(t, pantry)
	listRecords, err := store.Get(context.Background(), testUser, persistence.CollectionShoppingList)
	require.NoError(t, err)
	assert.Len(t, listRecords, 1)

	t.Run("Unknown", func(t *testing.T) {
		resp := doRequest(t, app, "DELETE", "/api/pantry/"+added.PantryItem.ID, nil)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("AlreadyListedIsNotAddedTwice", func(t *testing.T) {
		again := decode[PurchaseOutcome](t, doRequest(t, app, "POST", "/api/purchases", map[string]any{"itemName": "milk", "price": 1}))
		out := decode[RemovalOutcome](t, doRequest(t, app, "DELETE", "/api/pantry/"+again.PantryItem.ID, nil))
		assert.False(t, out.AddedToShoppingList)
		assert.Nil(t, out.ShoppingListItem)

		list := decode[[]reconcile.ShoppingListItem](t, doRequest(t, app, "GET", "/api/shopping-list", nil))
		assert.Len(t, list, 1)
	})
}

func TestShoppingListRoutes(t *testing.T) {
	app := setupTestApp(t, persistence.NewMemoryStore())

	resp := doRequest(t, app, "POST", "/api/shopping-list", map[string]any{"name": "Eggs"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	eggs := decode[ItemOutcome](t, resp).Item
	assert.False(t, eggs.IsCompleted)

	bread := decode[ItemOutcome](t, doRequest(t, app, "POST", "/api/shopping-list", map[string]any{"name": "Bread"})).Item

	t.Run("Duplicate", func(t *testing.T) {
		resp := doRequest(t, app, "POST", "/api/shopping-list", map[string]any{"name": "EGGS"})
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})

	t.Run("Blank", func(t *testing.T) {
		assert.Equal(t, fiber.StatusBadRequest, doRequest(t, app, "POST", "/api/shopping-list", map[string]any{"name": ""}).StatusCode)
		assert.Equal(t, fiber.StatusBadRequest, doRequest(t, app, "POST", "/api/shopping-list", map[string]any{"name": "   "}).StatusCode)
	})

	t.Run("Toggle", func(t *testing.T) {
		resp := doRequest(t, app, "PATCH", "/api/shopping-list/"+eggs.ID+"/toggle", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.True(t, decode[ItemOutcome](t, resp).Item.IsCompleted)

		assert.Equal(t, fiber.StatusNotFound, doRequest(t, app, "PATCH", "/api/shopping-list/missing/toggle", nil).StatusCode)
	})

	t.Run("ClearCompleted", func(t *testing.T) {
		resp := doRequest(t, app, "DELETE", "/api/shopping-list/completed", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, 1, decode[ClearOutcome](t, resp).Removed)

		list := decode[[]reconcile.ShoppingListItem](t, doRequest(t, app, "GET", "/api/shopping-list", nil))
		require.Len(t, list, 1)
		assert.Equal(t, bread.ID, list[0].ID)
	})

	t.Run("Remove", func(t *testing.T) {
		assert.Equal(t, fiber.StatusOK, doRequest(t, app, "DELETE", "/api/shopping-list/"+bread.ID, nil).StatusCode)
		assert.Equal(t, fiber.StatusNotFound, doRequest(t, app, "DELETE", "/api/shopping-list/"+bread.ID, nil).StatusCode)
		assert.Empty(t, decode[[]reconcile.ShoppingListItem](t, doRequest(t, app, "GET", "/api/shopping-list", nil)))
	})
}

func TestHandleDashboard(t *testing.T) {
	app := setupTestApp(t, persistence.NewMemoryStore())

	doRequest(t, app, "POST", "/api/purchases", map[string]any{"itemName": "Milk", "price": "1.20", "expiryDate": "2024-07-26"})
	doRequest(t, app, "POST", "/api/purchases", map[string]any{"itemName": "Yogurt", "price": "0.80", "expiryDate": "2024-07-01"})
	doRequest(t, app, "POST", "/api/shopping-list", map[string]any{"name": "Eggs"})

	resp := doRequest(t, app, "GET", "/api/dashboard?today=2024-07-25", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	sum := decode[reconcile.Summary](t, resp)
	assert.True(t, sum.TotalSpent.Equal(decimal.RequireFromString("2.00")))
	assert.Equal(t, 2, sum.PurchaseCount)
	assert.Equal(t, 2, sum.PantryCount)
	assert.Equal(t, 1, sum.ExpiredCount)
	assert.Equal(t, 1, sum.ExpiringSoonCount)
	assert.Equal(t, 1, sum.OpenListCount)
	assert.Len(t, sum.RecentPurchases, 2)
}

func TestMirrorFailureReportsWarnings(t *testing.T) {
	adapter := new(mocks.Adapter)
	adapter.On("Get", mock.Anything, testUser, mock.Anything).Return([]persistence.Record{}, nil)
	adapter.On("Put", mock.Anything, testUser, mock.Anything, mock.Anything).Return(errors.New("disk full"))

	app := setupTestApp(t, adapter)

	resp := doRequest(t, app, "POST", "/api/purchases", map[string]any{"itemName": "Milk", "price": "1.20"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	out := decode[PurchaseOutcome](t, resp)
	assert.Equal(t, []string{
		"could not save purchases change: disk full",
		"could not save pantry change: disk full",
	}, out.Warnings)

	// The change is kept in memory.
	list := decode[[]reconcile.Purchase](t, doRequest(t, app, "GET", "/api/purchases", nil))
	assert.Len(t, list, 1)
	adapter.AssertNumberOfCalls(t, "Put", 2)
}

func TestSessionHydratesFromBackend(t *testing.T) {
	store := persistence.NewMemoryStore()
	mirror := persistence.NewMirror(store, time.Second, nil)

	seeded := reconcile.ShoppingListItem{ID: "list-1", OwnerID: testUser, Name: "Coffee"}
	require.Empty(t, mirror.Apply(context.Background(), testUser,
		persistence.PutOp(persistence.CollectionShoppingList, seeded.ID, seeded)))

	app := setupTestApp(t, store)

	list := decode[[]reconcile.ShoppingListItem](t, doRequest(t, app, "GET", "/api/shopping-list", nil))
	assert.Equal(t, []reconcile.ShoppingListItem{seeded}, list)
}

func TestSessionsKeepOwnerAcrossRequests(t *testing.T) {
	app, sessions := setupTestAppWithSessions(t, persistence.NewMemoryStore())

	resp := doRequestAs(t, app, "alice", "POST", "/api/shopping-list", ShoppingListRequest{Name: "Bread"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp = doRequestAs(t, app, "bobby", "GET", "/api/purchases", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp = doRequestAs(t, app, "carol", "GET", "/api/pantry", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, 3, sessions.Len())

	// Later requests from other users must not rewrite earlier sessions.
	list := decode[[]reconcile.ShoppingListItem](t, doRequestAs(t, app, "alice", "GET", "/api/shopping-list", nil))
	require.Len(t, list, 1)
	assert.Equal(t, "alice", list[0].OwnerID)
	assert.Equal(t, 3, sessions.Len())

	for _, user := range []string{"alice", "bobby", "carol"} {
		assert.Equal(t, user, sessions.Get(context.Background(), user).OwnerID())
	}
	assert.Equal(t, 3, sessions.Len())
}
