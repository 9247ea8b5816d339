package reconcile

import (
	"fmt"
	"slices"

	"cloud.google.com/go/civil"
)

// ExpiryState is the freshness class of a pantry item.
type ExpiryState string

const (
	// ExpiryNone means the item has no expiry date.
	ExpiryNone ExpiryState = "none"
	// ExpiryExpired means the expiry date is strictly before today.
	ExpiryExpired ExpiryState = "expired"
	// ExpiringSoon means the item expires today or within SoonWindowDays.
	ExpiringSoon ExpiryState = "expiring-soon"
	// ExpiryFresh means the item expires later than SoonWindowDays from today.
	ExpiryFresh ExpiryState = "fresh"
)

// SoonWindowDays is the inclusive number of days ahead that counts as
// expiring soon.
const SoonWindowDays = 3

// ExpiryStatus is the classification of one expiry date against a day.
type ExpiryStatus struct {
	State ExpiryState `json:"status"`
	// DaysOverdue is set for expired items.
	DaysOverdue int `json:"daysOverdue,omitempty"`
	// DaysRemaining is set for items expiring soon.
	DaysRemaining int `json:"daysRemaining,omitempty"`
	// Message is a short human-readable description.
	Message string `json:"message,omitempty"`
}

// ClassifyExpiry classifies an optional expiry date relative to today.
func ClassifyExpiry(expiry *civil.Date, today civil.Date) ExpiryStatus {
	if expiry == nil {
		return ExpiryStatus{State: ExpiryNone}
	}

	days := expiry.DaysSince(today)
	switch {
	case days < 0:
		return ExpiryStatus{
			State:       ExpiryExpired,
			DaysOverdue: -days,
			Message:     fmt.Sprintf("Expired %d days ago", -days),
		}
	case days <= SoonWindowDays:
		return ExpiryStatus{
			State:         ExpiringSoon,
			DaysRemaining: days,
			Message:       fmt.Sprintf("Expires in %d day(s)", days),
		}
	default:
		return ExpiryStatus{
			State:   ExpiryFresh,
			Message: fmt.Sprintf("Expires on %02d/%02d/%04d", expiry.Day, int(expiry.Month), expiry.Year),
		}
	}
}

// SortByExpiry returns a copy of items ordered by ascending expiry date.
// Items without a date sort last; ties keep their relative order.
func SortByExpiry(items []PantryItem) []PantryItem {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b PantryItem) int {
		return compareExpiry(a.ExpiryDate, b.ExpiryDate)
	})
	return sorted
}

func compareExpiry(a, b *civil.Date) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case a.Before(*b):
		return -1
	case a.After(*b):
		return 1
	default:
		return 0
	}
}

// PantryEntry is a pantry item decorated with its expiry classification.
type PantryEntry struct {
	PantryItem
	Expiry ExpiryStatus `json:"expiry"`
}

// ClassifyPantry sorts items by expiry and classifies each against today.
func ClassifyPantry(items []PantryItem, today civil.Date) []PantryEntry {
	sorted := SortByExpiry(items)
	entries := make([]PantryEntry, 0, len(sorted))
	for _, item := range sorted {
		entries = append(entries, PantryEntry{
			PantryItem: item,
			Expiry:     ClassifyExpiry(item.ExpiryDate, today),
		})
	}
	return entries
}
