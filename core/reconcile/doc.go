// Package reconcile keeps the three grocery collections of a user consistent:
// the purchase log, the pantry derived from it, and the shopping list.
//
// # Store
//
// A Store is owned by a single user session. It exposes only the commands
// below and validates each one before mutating any collection, so a
// rejected command leaves every collection untouched:
//
//   - AddPurchase: appends a purchase and its pantry item together. Rejected
//     when the pantry already holds the same name, ignoring case.
//   - RemoveFromPantry: consumes a pantry item and restocks the shopping list
//     when the name is not already on it (the cascade is reported back).
//   - AddShoppingListItem, ToggleShoppingListItem, RemoveShoppingListItem.
//   - ClearCompletedItems: drops every completed entry.
//
// Rejections are returned as errors wrapping ErrInvalidInput,
// ErrDuplicateInPantry, ErrDuplicateInList or ErrNotFound.
//
// # Derived views
//
// The pantry is displayed by ascending expiry date (undated items last) and
// every item is classified as none, expired, expiring-soon or fresh. These
// projections are recomputed on every read.
//
// # Sessions
//
// Sessions caches one Store per owner, hydrated from a Loader (the
// persistence mirror) with singleflight protection against concurrent loads.
//
// # Usage
//
//	store := reconcile.NewStore(ownerID)
//	res, err := store.AddPurchase(reconcile.PurchaseDraft{
//	    ItemName: "Milk",
//	    Price:    decimal.RequireFromString("1.20"),
//	})
//	if errors.Is(err, reconcile.ErrDuplicateInPantry) {
//	    // already in stock
//	}
package reconcile
