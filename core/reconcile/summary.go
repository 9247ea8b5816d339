package reconcile

import (
	"slices"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// RecentPurchasesLimit caps the purchases listed in a Summary.
const RecentPurchasesLimit = 10

// Summary is the dashboard view over one owner's collections.
type Summary struct {
	TotalSpent        decimal.Decimal `json:"totalSpent"`
	PurchaseCount     int             `json:"purchaseCount"`
	PantryCount       int             `json:"pantryCount"`
	ExpiredCount      int             `json:"expiredCount"`
	ExpiringSoonCount int             `json:"expiringSoonCount"`
	OpenListCount     int             `json:"openListCount"`
	CompletedCount    int             `json:"completedCount"`
	RecentPurchases   []Purchase      `json:"recentPurchases"`
}

// Summarize computes the dashboard view of a snapshot relative to today.
// Recent purchases are the newest first, by date then by log position.
func Summarize(snap Snapshot, today civil.Date) Summary {
	sum := Summary{
		TotalSpent:    decimal.Zero,
		PurchaseCount: len(snap.Purchases),
		PantryCount:   len(snap.Pantry),
	}

	for _, p := range snap.Purchases {
		sum.TotalSpent = sum.TotalSpent.Add(p.Price)
	}

	for _, item := range snap.Pantry {
		switch ClassifyExpiry(item.ExpiryDate, today).State {
		case ExpiryExpired:
			sum.ExpiredCount++
		case ExpiringSoon:
			sum.ExpiringSoonCount++
		}
	}

	for _, item := range snap.ShoppingList {
		if item.IsCompleted {
			sum.CompletedCount++
		} else {
			sum.OpenListCount++
		}
	}

	recent := slices.Clone(snap.Purchases)
	slices.Reverse(recent)
	slices.SortStableFunc(recent, func(a, b Purchase) int {
		switch {
		case a.PurchaseDate.After(b.PurchaseDate):
			return -1
		case a.PurchaseDate.Before(b.PurchaseDate):
			return 1
		default:
			return 0
		}
	})
	if len(recent) > RecentPurchasesLimit {
		recent = recent[:RecentPurchasesLimit]
	}
	sum.RecentPurchases = recent

	return sum
}

// Summary computes the dashboard view of the store for its current day.
func (s *Store) Summary() Summary {
	return Summarize(s.Snapshot(), s.Today())
}
