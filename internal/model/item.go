// Package model defines the core data structures for bag.
package model

import (
	"errors"
	"strconv"
	"strings"
)

// Field limits for Item. The name is the unique key of an item.
const (
	MaxNameLength     = 29
	MaxCategoryLength = 19

	// DefaultQuantity is used when a quantity cannot be parsed.
	DefaultQuantity = 1
)

// ErrEmptyName is returned when an item is built without a name.
var ErrEmptyName = errors.New("item name cannot be empty")

// Item is a named, categorized, counted entry in the inventory.
// Items are identified by Name alone (case-sensitive).
type Item struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Quantity int    `yaml:"quantity"`
}

// NewItem builds an Item from user input.
// Surrounding whitespace is trimmed, the name and category are truncated to
// their maximum lengths, and an empty name is rejected. Quantity is accepted
// as is, including zero and negative values.
func NewItem(name, category string, quantity int) (Item, error) {
	name = Truncate(strings.TrimSpace(name), MaxNameLength)
	if name == "" {
		return Item{}, ErrEmptyName
	}
	return Item{
		Name:     name,
		Category: Truncate(strings.TrimSpace(category), MaxCategoryLength),
		Quantity: quantity,
	}, nil
}

// ParseQuantity parses a quantity typed by the user.
// Malformed or empty input yields DefaultQuantity.
func ParseQuantity(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return DefaultQuantity
	}
	return n
}

// Truncate returns s cut to at most n characters.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// SampleItems returns the demo inventory loaded at session start.
// The last entry repeats a name so that seeding exercises merge-on-insert.
func SampleItems() []Item {
	return []Item{
		{Name: "RedPotion", Category: "Heal", Quantity: 2},
		{Name: "BluePotion", Category: "Mana", Quantity: 3},
		{Name: "Bandage", Category: "Heal", Quantity: 5},
		{Name: "Grenade", Category: "Attack", Quantity: 1},
		{Name: "MysteryKey", Category: "Quest", Quantity: 1},
		{Name: "Lantern", Category: "Utility", Quantity: 1},
		{Name: "RedPotion", Category: "Heal", Quantity: 1},
	}
}
