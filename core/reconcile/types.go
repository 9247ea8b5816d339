package reconcile

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Purchase is one entry of the append-only purchase log.
type Purchase struct {
	// ID is the unique identifier for the purchase.
	ID string `json:"id"`

	// OwnerID is the user the purchase belongs to.
	OwnerID string `json:"ownerId"`

	// ItemName is the name of the grocery item as entered by the user.
	ItemName string `json:"itemName"`

	// Price is the amount paid. Always strictly positive.
	Price decimal.Decimal `json:"price"`

	// PurchaseDate is the calendar day of the purchase.
	PurchaseDate civil.Date `json:"purchaseDate"`

	// Supermarket is where the item was bought. May be empty.
	Supermarket string `json:"supermarket"`

	// ExpiryDate is the best-before day, if known.
	ExpiryDate *civil.Date `json:"expiryDate,omitempty"`

	// Calories is the declared energy content, if known.
	Calories *int `json:"calories,omitempty"`
}

// PantryItem is one unit of stock currently held.
type PantryItem struct {
	ID         string      `json:"id"`
	OwnerID    string      `json:"ownerId"`
	Name       string      `json:"name"`
	PurchaseID string      `json:"purchaseId"`
	ExpiryDate *civil.Date `json:"expiryDate,omitempty"`
}

// ShoppingListItem is an entry of the shopping list.
type ShoppingListItem struct {
	ID          string `json:"id"`
	OwnerID     string `json:"ownerId"`
	Name        string `json:"name"`
	IsCompleted bool   `json:"isCompleted"`
}

// PurchaseDraft carries the user input for a new purchase.
// A zero PurchaseDate means "today".
type PurchaseDraft struct {
	ItemName     string
	Price        decimal.Decimal
	PurchaseDate civil.Date
	Supermarket  string
	ExpiryDate   *civil.Date
	Calories     *int
}

// PurchaseResult is the pair created by AddPurchase.
type PurchaseResult struct {
	Purchase   Purchase   `json:"purchase"`
	PantryItem PantryItem `json:"pantryItem"`
}

// RemovalResult reports the outcome of RemoveFromPantry, including the
// cascading restock of the shopping list.
type RemovalResult struct {
	// RemovedName is the name of the pantry item that was consumed.
	RemovedName string `json:"removedName"`

	// AddedToShoppingList is true when a new shopping-list entry was created.
	AddedToShoppingList bool `json:"addedToShoppingList"`

	// ShoppingListItem is the created entry, nil when none was added.
	ShoppingListItem *ShoppingListItem `json:"shoppingListItem,omitempty"`
}

// Snapshot is a full copy of the three collections of one owner.
type Snapshot struct {
	Purchases    []Purchase         `json:"purchases"`
	Pantry       []PantryItem       `json:"pantry"`
	ShoppingList []ShoppingListItem `json:"shoppingList"`
}
