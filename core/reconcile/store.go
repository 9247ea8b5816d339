package reconcile

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// Store owns the purchases, pantry and shopping list of a single owner and
// keeps them consistent on every mutation. It performs no I/O.
type Store struct {
	mu sync.Mutex

	ownerID      string
	purchases    []Purchase
	pantry       []PantryItem
	shoppingList []ShoppingListItem

	now   func() time.Time
	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used to date purchases without a date.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides the identifier generator.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// NewStore creates an empty store for the given owner.
func NewStore(ownerID string, opts ...Option) *Store {
	s := &Store{
		ownerID: ownerID,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Restore creates a store pre-populated from persisted records.
// Records are taken as-is; the slices are copied.
func Restore(ownerID string, snap Snapshot, opts ...Option) *Store {
	s := NewStore(ownerID, opts...)
	s.purchases = slices.Clone(snap.Purchases)
	s.pantry = slices.Clone(snap.Pantry)
	s.shoppingList = slices.Clone(snap.ShoppingList)
	return s
}

// OwnerID returns the owner of the store.
func (s *Store) OwnerID() string {
	return s.ownerID
}

// AddPurchase records a purchase and the pantry item it produces.
// It is rejected with ErrDuplicateInPantry when the pantry already holds an
// item with the same name, ignoring case; nothing is recorded in that case.
func (s *Store) AddPurchase(draft PurchaseDraft) (PurchaseResult, error) {
	name := strings.TrimSpace(draft.ItemName)
	if name == "" {
		return PurchaseResult{}, fmt.Errorf("%w: item name is required", ErrInvalidInput)
	}
	if !draft.Price.IsPositive() {
		return PurchaseResult{}, fmt.Errorf("%w: price must be positive, got %s", ErrInvalidInput, draft.Price)
	}
	if draft.Calories != nil && *draft.Calories < 0 {
		return PurchaseResult{}, fmt.Errorf("%w: calories must not be negative", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.pantryIndexByName(name); idx >= 0 {
		return PurchaseResult{}, fmt.Errorf("%w: %q", ErrDuplicateInPantry, s.pantry[idx].Name)
	}

	date := draft.PurchaseDate
	if date.IsZero() {
		date = civil.DateOf(s.now())
	}

	purchase := Purchase{
		ID:           s.newID(),
		OwnerID:      s.ownerID,
		ItemName:     name,
		Price:        draft.Price,
		PurchaseDate: date,
		Supermarket:  strings.TrimSpace(draft.Supermarket),
		ExpiryDate:   cloneDate(draft.ExpiryDate),
		Calories:     cloneInt(draft.Calories),
	}
	item := PantryItem{
		ID:         s.newID(),
		OwnerID:    s.ownerID,
		Name:       name,
		PurchaseID: purchase.ID,
		ExpiryDate: cloneDate(draft.ExpiryDate),
	}

	// Both appends happen under the same lock after validation, so either
	// both collections change or neither does.
	s.purchases = append(s.purchases, purchase)
	s.pantry = append(s.pantry, item)

	return PurchaseResult{Purchase: purchase, PantryItem: item}, nil
}

// RemoveFromPantry marks a pantry item as used. When no shopping-list entry
// with the same name exists, in any completion state, an incomplete one is
// created.
func (s *Store) RemoveFromPantry(pantryItemID string) (RemovalResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.pantry, func(p PantryItem) bool { return p.ID == pantryItemID })
	if idx < 0 {
		return RemovalResult{}, fmt.Errorf("%w: pantry item %q", ErrNotFound, pantryItemID)
	}

	removed := s.pantry[idx]
	s.pantry = slices.Delete(s.pantry, idx, idx+1)

	result := RemovalResult{RemovedName: removed.Name}
	if s.listIndexByName(removed.Name) < 0 {
		item := s.appendListItem(removed.Name)
		result.AddedToShoppingList = true
		result.ShoppingListItem = &item
	}
	return result, nil
}

// AddShoppingListItem adds an incomplete entry to the shopping list.
// Blank names are rejected with ErrInvalidInput and names already present,
// ignoring case and completion state, with ErrDuplicateInList.
func (s *Store) AddShoppingListItem(name string) (ShoppingListItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ShoppingListItem{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.listIndexByName(name); idx >= 0 {
		return ShoppingListItem{}, fmt.Errorf("%w: %q", ErrDuplicateInList, s.shoppingList[idx].Name)
	}
	return s.appendListItem(name), nil
}

// ToggleShoppingListItem flips the completion flag of an entry.
func (s *Store) ToggleShoppingListItem(itemID string) (ShoppingListItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.listIndexByID(itemID)
	if idx < 0 {
		return ShoppingListItem{}, fmt.Errorf("%w: shopping list item %q", ErrNotFound, itemID)
	}
	s.shoppingList[idx].IsCompleted = !s.shoppingList[idx].IsCompleted
	return s.shoppingList[idx], nil
}

// RemoveShoppingListItem deletes an entry regardless of its state.
func (s *Store) RemoveShoppingListItem(itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.listIndexByID(itemID)
	if idx < 0 {
		return fmt.Errorf("%w: shopping list item %q", ErrNotFound, itemID)
	}
	s.shoppingList = slices.Delete(s.shoppingList, idx, idx+1)
	return nil
}

// ClearCompletedItems removes every completed entry and returns them.
// It always succeeds; the result is empty when nothing was completed.
func (s *Store) ClearCompletedItems() []ShoppingListItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed []ShoppingListItem
	kept := s.shoppingList[:0]
	for _, item := range s.shoppingList {
		if item.IsCompleted {
			removed = append(removed, item)
			continue
		}
		kept = append(kept, item)
	}
	clear(s.shoppingList[len(kept):])
	s.shoppingList = kept
	return removed
}

// Purchases returns a copy of the purchase log in insertion order.
func (s *Store) Purchases() []Purchase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Purchase{}, s.purchases...)
}

// Pantry returns a copy of the pantry in insertion order.
func (s *Store) Pantry() []PantryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]PantryItem{}, s.pantry...)
}

// PantryByExpiry returns the pantry sorted for display.
func (s *Store) PantryByExpiry() []PantryItem {
	return SortByExpiry(s.Pantry())
}

// ShoppingList returns a copy of the shopping list in insertion order.
func (s *Store) ShoppingList() []ShoppingListItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ShoppingListItem{}, s.shoppingList...)
}

// Snapshot returns a copy of all three collections. Empty collections are
// non-nil so they encode as JSON arrays.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Purchases:    append([]Purchase{}, s.purchases...),
		Pantry:       append([]PantryItem{}, s.pantry...),
		ShoppingList: append([]ShoppingListItem{}, s.shoppingList...),
	}
}

// Today returns the current calendar day according to the store clock.
func (s *Store) Today() civil.Date {
	return civil.DateOf(s.now())
}

func (s *Store) appendListItem(name string) ShoppingListItem {
	item := ShoppingListItem{
		ID:      s.newID(),
		OwnerID: s.ownerID,
		Name:    name,
	}
	s.shoppingList = append(s.shoppingList, item)
	return item
}

func (s *Store) pantryIndexByName(name string) int {
	return slices.IndexFunc(s.pantry, func(p PantryItem) bool { return strings.EqualFold(p.Name, name) })
}

func (s *Store) listIndexByName(name string) int {
	return slices.IndexFunc(s.shoppingList, func(i ShoppingListItem) bool { return strings.EqualFold(i.Name, name) })
}

func (s *Store) listIndexByID(id string) int {
	return slices.IndexFunc(s.shoppingList, func(i ShoppingListItem) bool { return i.ID == id })
}

func cloneDate(d *civil.Date) *civil.Date {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
