// Package cli provides terminal output and menu helpers for bag.
package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// MenuEntry is one selectable line of a menu.
type MenuEntry struct {
	Key   int    // number typed to select the entry
	Name  string // command word, also accepted by unique prefix
	Label string // text shown to the user
}

// Menu is a numbered list of commands.
type Menu struct {
	Title   string
	Entries []MenuEntry
}

// Render writes the menu to w.
func (m *Menu) Render(w io.Writer) {
	fmt.Fprintf(w, "\n%s\n", Bold("=== "+m.Title+" ==="))
	for _, e := range m.Entries {
		fmt.Fprintf(w, "%d. %s %s\n", e.Key, e.Label, Gray("("+e.Name+")"))
	}
}

// Match resolves user input to a menu entry.
// Input may be the entry's number or a unique prefix of its name.
func (m *Menu) Match(input string) (MenuEntry, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return MenuEntry{}, fmt.Errorf("no option entered")
	}

	if n, err := strconv.Atoi(input); err == nil {
		for _, e := range m.Entries {
			if e.Key == n {
				return e, nil
			}
		}
		return MenuEntry{}, fmt.Errorf("unknown option %d", n)
	}

	names := make([]string, len(m.Entries))
	for i, e := range m.Entries {
		names[i] = e.Name
	}
	name, err := MatchCommand(input, names)
	if err != nil {
		return MenuEntry{}, err
	}
	for _, e := range m.Entries {
		if e.Name == name {
			return e, nil
		}
	}
	return MenuEntry{}, fmt.Errorf("unknown command %q", input)
}

// MatchCommand finds a unique command from a prefix.
// An exact match wins over longer commands sharing the prefix.
func MatchCommand(prefix string, commands []string) (string, error) {
	prefix = strings.ToLower(prefix)

	var matches []string
	for _, cmd := range commands {
		lower := strings.ToLower(cmd)
		if lower == prefix {
			return cmd, nil
		}
		if strings.HasPrefix(lower, prefix) {
			matches = append(matches, cmd)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("unknown command %q", prefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ambiguous command %q matches: %s", prefix, strings.Join(matches, ", "))
	}
}
