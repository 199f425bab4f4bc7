package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jacksmith/bag/internal/cli"
	"github.com/jacksmith/bag/internal/config"
	"github.com/jacksmith/bag/internal/logging"
	"github.com/jacksmith/bag/internal/model"
	"github.com/jacksmith/bag/internal/ops"
	"github.com/jacksmith/bag/internal/store"
)

// resetGlobals restores package-level flag and config state between tests.
func resetGlobals(t *testing.T) {
	t.Helper()
	cli.SetColorEnabled(false)
	t.Cleanup(func() {
		configFile = ""
		logLevel = ""
		noColor = false
		dumpStore = dumpAll
		benchN = store.ArrayCapacity
		statsMetrics = false
		appConfig = nil
		appLogger = nil
		cli.SetColorEnabled(false)
	})
}

// runCommand calls a command's RunE with captured output and the given stdin.
func runCommand(t *testing.T, run func(*cobra.Command, []string) error, stdin string) (string, error) {
	t.Helper()
	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	err := run(cmd, nil)
	return out.String(), err
}

// runScript feeds input to a non-interactive shell over s.
func runScript(t *testing.T, s *ops.Session, input string) string {
	t.Helper()
	var out bytes.Buffer
	sh := newShell(s, strings.NewReader(input), &out, false)
	sh.timings = false
	require.NoError(t, sh.run())
	return out.String()
}

func emptySession(t *testing.T) *ops.Session {
	t.Helper()
	s := ops.NewSession(logging.Nop())
	t.Cleanup(s.Close)
	return s
}

func seededSession(t *testing.T) *ops.Session {
	t.Helper()
	s := emptySession(t)
	require.NoError(t, s.Seed())
	return s
}

func TestShellInsertMerges(t *testing.T) {
	resetGlobals(t)
	s := emptySession(t)

	tests := []struct {
		name string
		menu string
		kind store.Kind
	}{
		{name: "array", menu: "1", kind: store.KindArray},
		{name: "list", menu: "2", kind: store.KindList},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := tt.menu + "\n" +
				"1\nPotion\nHeal\n2\n" +
				"1\nPotion\nHeal\n3\n" +
				"3\n0\n0\n"
			out := runScript(t, s, input)

			assert.Contains(t, out, fmt.Sprintf("Item inserted into the %s.", tt.kind))
			assert.Contains(t, out, fmt.Sprintf("Item already in the %s; quantity updated.", tt.kind))
			assert.Contains(t, out, fmt.Sprintf("Items in bag (%s) - total: 1", tt.kind))
			assert.Contains(t, out, "Exiting...")

			st, err := s.Store(tt.kind)
			require.NoError(t, err)
			it, ok := st.Find("Potion")
			require.True(t, ok)
			assert.Equal(t, 5, it.Quantity)
		})
	}
}

func TestShellEmptyListing(t *testing.T) {
	resetGlobals(t)
	out := runScript(t, emptySession(t), "2\n3\n0\n1\n3\n0\n0\n")
	assert.Contains(t, out, "(list) Bag is empty.")
	assert.Contains(t, out, "(array) Bag is empty.")
}

func TestShellRemove(t *testing.T) {
	resetGlobals(t)
	s := seededSession(t)

	out := runScript(t, s, "1\n2\nGrenade\n2\nGhost\n0\n2\n2\nGrenade\n0\n0\n")

	assert.Contains(t, out, "Item removed from the array.")
	assert.Contains(t, out, `error: item "Ghost" not found in array`)
	assert.Contains(t, out, "hint: names are case-sensitive")
	assert.Contains(t, out, "Item removed from the list.")
	assert.Equal(t, 5, s.Array.Len())
	assert.Equal(t, 5, s.List.Len())
}

func TestShellSortAndBinarySearch(t *testing.T) {
	resetGlobals(t)
	s := seededSession(t)

	out := runScript(t, s, "1\n5\n6\nGrenade\n6\nNothing\n3\n0\n0\n")

	assert.Contains(t, out, "Array sorted by name.")
	assert.Contains(t, out, "Item found (binary) at index 2: Grenade (Attack) x1")
	assert.Contains(t, out, "Item not found (binary).")
	assert.NotContains(t, out, "warning")

	// Listing after sort is in name order.
	idx := strings.Index(out, "Items in bag (array)")
	require.GreaterOrEqual(t, idx, 0)
	listing := out[idx:]
	assert.Less(t, strings.Index(listing, "Bandage"), strings.Index(listing, "RedPotion"))
}

func TestShellBinarySearchUnsortedWarns(t *testing.T) {
	resetGlobals(t)
	out := runScript(t, seededSession(t), "1\n6\nRedPotion\n0\n0\n")

	assert.Contains(t, out, "warning: the array is not sorted")
	// RedPotion sits at index 0 of the unsorted array, outside the probed half.
	assert.Contains(t, out, "Item not found (binary).")
}

func TestShellSequentialSearch(t *testing.T) {
	resetGlobals(t)
	s := seededSession(t)
	s.ResetCounters()

	out := runScript(t, s, "1\n4\nBandage\n0\n2\n4\nBandage\n4\nGhost\n0\n0\n")

	assert.Contains(t, out, "Item found at index 2: Bandage (Heal) x5")
	assert.Contains(t, out, "Comparisons: 3 (array sequential total: 3)")
	assert.Contains(t, out, "Item found in list: Bandage (Heal) x5")
	assert.Contains(t, out, "Comparisons: 4 (list sequential total: 4)")
	assert.Contains(t, out, "Item not found (list).")
	assert.NotContains(t, out, "Time:")
}

func TestShellMalformedQuantityDefaults(t *testing.T) {
	resetGlobals(t)
	s := emptySession(t)

	out := runScript(t, s, "2\n1\nRope\nUtility\nlots\n4\nRope\n0\n0\n")

	assert.Contains(t, out, "Item found in list: Rope (Utility) x1")
}

func TestShellRejectsEmptyName(t *testing.T) {
	resetGlobals(t)
	s := emptySession(t)

	out := runScript(t, s, "1\n1\n   \nHeal\n1\n0\n0\n")

	assert.Contains(t, out, "error: invalid name: must not be empty")
	assert.True(t, s.Array.Empty())
}

func TestShellTruncatesLongName(t *testing.T) {
	resetGlobals(t)
	s := emptySession(t)

	long := strings.Repeat("x", 40)
	runScript(t, s, "1\n1\n"+long+"\nMisc\n1\n0\n0\n")

	it, ok := s.Array.At(0)
	require.True(t, ok)
	assert.Equal(t, strings.Repeat("x", model.MaxNameLength), it.Name)
}

func TestShellCapacityExceeded(t *testing.T) {
	resetGlobals(t)
	s := emptySession(t)
	for i := 0; i < store.ArrayCapacity; i++ {
		_, err := s.Insert(store.KindArray, model.Item{Name: fmt.Sprintf("n%03d", i), Quantity: 1})
		require.NoError(t, err)
	}

	out := runScript(t, s, "1\n1\nOne more\nMisc\n1\n0\n0\n")

	assert.Contains(t, out, "error: array is full (100 items), cannot insert")
	assert.Contains(t, out, "hint: remove an item or use the list store")
	assert.Equal(t, store.ArrayCapacity, s.Array.Len())
}

func TestShellPrefixCommands(t *testing.T) {
	resetGlobals(t)
	s := emptySession(t)

	out := runScript(t, s, "ar\nins\nRope\nUtility\n2\nli\nlist\nback\nq\n")

	assert.Contains(t, out, "Item inserted into the array.")
	assert.Contains(t, out, `error: ambiguous command "li" matches: list, linear`)
	assert.Contains(t, out, "Items in bag (array) - total: 1")
	assert.Contains(t, out, "Exiting...")
}

func TestShellInvalidOption(t *testing.T) {
	resetGlobals(t)
	out := runScript(t, emptySession(t), "7\n\n0\n")
	assert.Contains(t, out, "error: unknown option 7")
	assert.Contains(t, out, "Exiting...")
}

func TestShellCounters(t *testing.T) {
	resetGlobals(t)
	s := seededSession(t)
	s.ResetCounters()

	out := runScript(t, s, "1\n4\nLantern\n7\n0\n2\n4\nLantern\n5\n0\n3\n4\n9\n3\n0\n")

	assert.Contains(t, out, " - Sequential search: 6")
	assert.Contains(t, out, " - Binary search: 0")
	assert.Contains(t, out, " - Sequential search (list): 1")
	assert.Contains(t, out, "SEARCH      STORE  COMPARISONS")
	assert.Contains(t, out, `bag_search_comparisons_total{algorithm="sequential",store="array"} 6`)
	assert.Contains(t, out, "Counters reset.")
	assert.Equal(t, int64(0), s.Counters.ArraySequential.Read())
}

func TestShellExport(t *testing.T) {
	resetGlobals(t)
	out := runScript(t, seededSession(t), "5\n0\n")

	assert.Contains(t, out, "array:")
	assert.Contains(t, out, "list:")
	assert.Contains(t, out, "- name: RedPotion")
	assert.Contains(t, out, "counters:")
}

func TestShellEOF(t *testing.T) {
	resetGlobals(t)

	tests := []struct {
		name  string
		input string
	}{
		{name: "no input", input: ""},
		{name: "inside sub-menu", input: "1\n"},
		{name: "during insert prompts", input: "1\n1\nPotion\n"},
		{name: "last line without newline", input: "1\n3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runScript(t, emptySession(t), tt.input)
			assert.Contains(t, out, "Exiting...")
		})
	}
}

func TestShellInteractivePrompts(t *testing.T) {
	resetGlobals(t)
	var out bytes.Buffer
	sh := newShell(emptySession(t), strings.NewReader("1\n0\n0\n"), &out, true)
	require.NoError(t, sh.run())

	assert.Contains(t, out.String(), "=== Main menu ===")
	assert.Contains(t, out.String(), "=== Bag (array) ===")
	assert.Contains(t, out.String(), "6. Binary search (requires sort) (binary)")
	assert.Contains(t, out.String(), "Choice: ")
}

func TestRunShell(t *testing.T) {
	resetGlobals(t)
	out, err := runCommand(t, runShell, "1\n3\n0\n0\n")
	require.NoError(t, err)
	// Seeded by default.
	assert.Contains(t, out, "Items in bag (array) - total: 6")
	assert.NotContains(t, out, "Choice: ")
}

func TestRunShellWithoutSeed(t *testing.T) {
	resetGlobals(t)
	cfg := config.Default()
	cfg.Seed = false
	appConfig = cfg

	out, err := runCommand(t, runShell, "2\n3\n0\n0\n")
	require.NoError(t, err)
	assert.Contains(t, out, "(list) Bag is empty.")
}

func TestDemoCommand(t *testing.T) {
	resetGlobals(t)
	out, err := runCommand(t, runDemo, "")
	require.NoError(t, err)

	assert.Contains(t, out, "array  inserted RedPotion (Heal) x2")
	assert.Contains(t, out, "list   updated  RedPotion (Heal) x1")
	assert.Contains(t, out, "Items in bag (array) - total: 6")
	assert.Contains(t, out, "Items in bag (list) - total: 6")
	assert.Contains(t, out, "# After selection sort")
	assert.Contains(t, out, "Bandage      index 0")
	assert.Contains(t, out, "RedPotion    index 5")
	assert.Contains(t, out, "# Counters")
}

func TestDumpCommand(t *testing.T) {
	resetGlobals(t)

	out, err := runCommand(t, runDump, "")
	require.NoError(t, err)

	var doc inventoryDump
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Array, 6)
	require.Len(t, doc.List, 6)
	assert.Equal(t, model.Item{Name: "RedPotion", Category: "Heal", Quantity: 3}, doc.Array[0])
	assert.Equal(t, "Lantern", doc.List[0].Name)

	dumpStore = "list"
	out, err = runCommand(t, runDump, "")
	require.NoError(t, err)
	doc = inventoryDump{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Nil(t, doc.Array)
	assert.Len(t, doc.List, 6)

	dumpStore = "tree"
	_, err = runCommand(t, runDump, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown store "tree"`)
}

func TestStatsCommand(t *testing.T) {
	resetGlobals(t)

	out, err := runCommand(t, runStats, "")
	require.NoError(t, err)
	// 6 items: sequential sums to 1+2+...+6 on both stores.
	assert.Contains(t, out, "sequential  array           21")
	assert.Contains(t, out, "sequential  list            21")

	statsMetrics = true
	out, err = runCommand(t, runStats, "")
	require.NoError(t, err)
	assert.Contains(t, out, "# TYPE bag_search_comparisons_total counter")
	assert.Contains(t, out, `bag_search_comparisons_total{algorithm="sequential",store="list"} 21`)
}

func TestBenchCommand(t *testing.T) {
	resetGlobals(t)

	benchN = 10
	out, err := runCommand(t, runBench, "")
	require.NoError(t, err)
	assert.Contains(t, out, "Searched each of 10 items once per algorithm.")
	assert.Contains(t, out, "ALGORITHM")
	assert.Contains(t, out, "5.50")
	assert.Contains(t, out, "Selection sort:")

	benchN = 0
	_, err = runCommand(t, runBench, "")
	assert.Error(t, err)
}

func TestRootCommand(t *testing.T) {
	resetGlobals(t)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	defer rootCmd.SetOut(nil)
	defer rootCmd.SetErr(nil)

	rootCmd.SetArgs([]string{"stats", "--metrics", "--no-color"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "bag_search_comparisons_total")
	require.NotNil(t, appConfig)
	assert.Equal(t, config.ColorNever, appConfig.Color)

	rootCmd.SetArgs([]string{"stats", "--log-level=loud"})
	err := rootCmd.Execute()
	assert.ErrorIs(t, err, config.ErrInvalidLogLevel)
}

func TestCompleteStoreKinds(t *testing.T) {
	got, directive := completeStoreKinds(nil, nil, "l")
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	require.Len(t, got, 1)
	assert.True(t, strings.HasPrefix(got[0], "list\t"))

	got, _ = completeStoreKinds(nil, nil, "")
	assert.Len(t, got, 3)
}
