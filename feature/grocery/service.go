package grocery

import (
	"context"

	"grocery-tracker/core/logger"
	"grocery-tracker/core/persistence"
	"grocery-tracker/core/reconcile"

	"cloud.google.com/go/civil"
	"go.uber.org/zap"
)

// Service runs store commands for a user and mirrors their effects.
type Service struct {
	sessions *reconcile.Sessions
	mirror   *persistence.Mirror
	logger   *zap.Logger
}

// NewService creates a grocery service. mirror may be nil, in which case
// changes live only in the session cache.
func NewService(sessions *reconcile.Sessions, mirror *persistence.Mirror, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{sessions: sessions, mirror: mirror, logger: logger}
}

// PurchaseOutcome is the result of AddPurchase.
type PurchaseOutcome struct {
	reconcile.PurchaseResult
	Warnings []string `json:"warnings,omitempty"`
}

// RemovalOutcome is the result of RemoveFromPantry.
type RemovalOutcome struct {
	reconcile.RemovalResult
	Warnings []string `json:"warnings,omitempty"`
}

// ItemOutcome is the result of a command touching one list item.
type ItemOutcome struct {
	Item     reconcile.ShoppingListItem `json:"item"`
	Warnings []string                   `json:"warnings,omitempty"`
}

// ClearOutcome is the result of ClearCompleted.
type ClearOutcome struct {
	Removed  int      `json:"removed"`
	Warnings []string `json:"warnings,omitempty"`
}

func (s *Service) store(ctx context.Context, ownerID string) *reconcile.Store {
	return s.sessions.Get(ctx, ownerID)
}

func (s *Service) sync(ctx context.Context, ownerID string, ops ...persistence.Op) []string {
	if s.mirror == nil || len(ops) == 0 {
		return nil
	}
	return s.mirror.Apply(ctx, ownerID, ops...)
}

// Purchases returns the purchase log in insertion order.
func (s *Service) Purchases(ctx context.Context, ownerID string) []reconcile.Purchase {
	return s.store(ctx, ownerID).Purchases()
}

// AddPurchase records a purchase and its pantry item.
func (s *Service) AddPurchase(ctx context.Context, ownerID string, draft reconcile.PurchaseDraft) (PurchaseOutcome, error) {
	res, err := s.store(ctx, ownerID).AddPurchase(draft)
	if err != nil {
		return PurchaseOutcome{}, err
	}

	logger.WithOwner(s.logger, ownerID).Info("Purchase recorded",
		zap.String("item", res.Purchase.ItemName),
		zap.String("price", res.Purchase.Price.String()))

	warnings := s.sync(ctx, ownerID,
		persistence.PutOp(persistence.CollectionPurchases, res.Purchase.ID, res.Purchase),
		persistence.PutOp(persistence.CollectionPantry, res.PantryItem.ID, res.PantryItem),
	)
	return PurchaseOutcome{PurchaseResult: res, Warnings: warnings}, nil
}

// Pantry returns the pantry sorted by expiry with each item classified
// against today. A zero today means the store's current day.
func (s *Service) Pantry(ctx context.Context, ownerID string, today civil.Date) []reconcile.PantryEntry {
	st := s.store(ctx, ownerID)
	if today.IsZero() {
		today = st.Today()
	}
	return reconcile.ClassifyPantry(st.PantryByExpiry(), today)
}

// RemoveFromPantry consumes a pantry item, restocking the list if needed.
func (s *Service) RemoveFromPantry(ctx context.Context, ownerID, pantryItemID string) (RemovalOutcome, error) {
	res, err := s.store(ctx, ownerID).RemoveFromPantry(pantryItemID)
	if err != nil {
		return RemovalOutcome{}, err
	}

	logger.WithOwner(s.logger, ownerID).Info("Pantry item used",
		zap.String("item", res.RemovedName),
		zap.Bool("restocked", res.AddedToShoppingList))

	ops := []persistence.Op{persistence.DeleteOp(persistence.CollectionPantry, pantryItemID)}
	if res.ShoppingListItem != nil {
		ops = append(ops, persistence.PutOp(persistence.CollectionShoppingList, res.ShoppingListItem.ID, *res.ShoppingListItem))
	}
	return RemovalOutcome{RemovalResult: res, Warnings: s.sync(ctx, ownerID, ops...)}, nil
}

// ShoppingList returns the list in insertion order.
func (s *Service) ShoppingList(ctx context.Context, ownerID string) []reconcile.ShoppingListItem {
	return s.store(ctx, ownerID).ShoppingList()
}

// AddShoppingListItem adds an incomplete entry to the list.
func (s *Service) AddShoppingListItem(ctx context.Context, ownerID, name string) (ItemOutcome, error) {
	item, err := s.store(ctx, ownerID).AddShoppingListItem(name)
	if err != nil {
		return ItemOutcome{}, err
	}
	warnings := s.sync(ctx, ownerID, persistence.PutOp(persistence.CollectionShoppingList, item.ID, item))
	return ItemOutcome{Item: item, Warnings: warnings}, nil
}

// ToggleShoppingListItem flips the completion flag of an entry.
func (s *Service) ToggleShoppingListItem(ctx context.Context, ownerID, itemID string) (ItemOutcome, error) {
	item, err := s.store(ctx, ownerID).ToggleShoppingListItem(itemID)
	if err != nil {
		return ItemOutcome{}, err
	}
	warnings := s.sync(ctx, ownerID, persistence.PutOp(persistence.CollectionShoppingList, item.ID, item))
	return ItemOutcome{Item: item, Warnings: warnings}, nil
}

// RemoveShoppingListItem deletes an entry. The returned slice holds
// persistence warnings.
func (s *Service) RemoveShoppingListItem(ctx context.Context, ownerID, itemID string) ([]string, error) {
	if err := s.store(ctx, ownerID).RemoveShoppingListItem(itemID); err != nil {
		return nil, err
	}
	return s.sync(ctx, ownerID, persistence.DeleteOp(persistence.CollectionShoppingList, itemID)), nil
}

// ClearCompleted deletes every completed entry.
func (s *Service) ClearCompleted(ctx context.Context, ownerID string) ClearOutcome {
	removed := s.store(ctx, ownerID).ClearCompletedItems()

	ops := make([]persistence.Op, 0, len(removed))
	for _, item := range removed {
		ops = append(ops, persistence.DeleteOp(persistence.CollectionShoppingList, item.ID))
	}
	return ClearOutcome{Removed: len(removed), Warnings: s.sync(ctx, ownerID, ops...)}
}

// Dashboard summarizes the user's data as of today. A zero today means the
// store's current day.
func (s *Service) Dashboard(ctx context.Context, ownerID string, today civil.Date) reconcile.Summary {
	st := s.store(ctx, ownerID)
	if today.IsZero() {
		today = st.Today()
	}
	return reconcile.Summarize(st.Snapshot(), today)
}
