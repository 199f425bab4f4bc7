package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jacksmith/bag/internal/cli"
	"github.com/jacksmith/bag/internal/model"
	"github.com/jacksmith/bag/internal/ops"
	"github.com/jacksmith/bag/internal/stats"
	"github.com/jacksmith/bag/internal/store"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive menu",
	Long: `Start the interactive menu.

The main menu opens a sub-menu for each bag (array or linked list) and shows
or resets the comparison counters. Options can be chosen by number or by a
unique prefix of their name, e.g. "ins" for insert.

When stdin is not a terminal, prompts and menus are not printed, so a script
can be piped in:

  printf '1\n1\nRope\nUtility\n2\n3\n0\n0\n' | bag shell`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	in := cmd.InOrStdin()
	sh := newShell(s, in, cmd.OutOrStdout(), cli.IsTerminal(in))
	sh.timings = currentConfig().Timings
	return sh.run()
}

// errQuit ends the shell; it is returned when input runs out.
var errQuit = errors.New("quit")

var mainMenu = &cli.Menu{
	Title: "Main menu",
	Entries: []cli.MenuEntry{
		{Key: 1, Name: "array", Label: "Use the array bag"},
		{Key: 2, Name: "list", Label: "Use the linked-list bag"},
		{Key: 3, Name: "counters", Label: "Show all counters"},
		{Key: 4, Name: "metrics", Label: "Print counters in Prometheus format"},
		{Key: 5, Name: "export", Label: "Print both bags as YAML"},
		{Key: 9, Name: "reset", Label: "Reset counters"},
		{Key: 0, Name: "quit", Label: "Quit"},
	},
}

var arrayMenu = &cli.Menu{
	Title: "Bag (array)",
	Entries: []cli.MenuEntry{
		{Key: 1, Name: "insert", Label: "Insert item"},
		{Key: 2, Name: "remove", Label: "Remove item by name"},
		{Key: 3, Name: "list", Label: "List items"},
		{Key: 4, Name: "linear", Label: "Sequential search"},
		{Key: 5, Name: "sort", Label: "Sort by name (selection sort)"},
		{Key: 6, Name: "binary", Label: "Binary search (requires sort)"},
		{Key: 7, Name: "counters", Label: "Show comparison counters"},
		{Key: 0, Name: "back", Label: "Back to main menu"},
	},
}

var listMenu = &cli.Menu{
	Title: "Bag (linked list)",
	Entries: []cli.MenuEntry{
		{Key: 1, Name: "insert", Label: "Insert item"},
		{Key: 2, Name: "remove", Label: "Remove item by name"},
		{Key: 3, Name: "list", Label: "List items"},
		{Key: 4, Name: "search", Label: "Sequential search"},
		{Key: 5, Name: "counters", Label: "Show comparison counters"},
		{Key: 0, Name: "back", Label: "Back to main menu"},
	},
}

// shell is the interactive menu loop over one session.
type shell struct {
	session     *ops.Session
	in          *bufio.Reader
	out         io.Writer
	interactive bool // print menus and prompts
	timings     bool // print elapsed times
}

func newShell(s *ops.Session, in io.Reader, out io.Writer, interactive bool) *shell {
	return &shell{
		session:     s,
		in:          bufio.NewReader(in),
		out:         out,
		interactive: interactive,
		timings:     true,
	}
}

func (sh *shell) run() error {
	fmt.Fprintln(sh.out, cli.Bold("=== bag: array vs linked list ==="))

	err := sh.mainLoop()
	if errors.Is(err, errQuit) {
		fmt.Fprintln(sh.out, "Exiting...")
		return nil
	}
	return err
}

func (sh *shell) mainLoop() error {
	for {
		entry, err := sh.choose(mainMenu)
		if err != nil {
			return err
		}

		switch entry.Name {
		case "array":
			err = sh.arrayLoop()
		case "list":
			err = sh.listLoop()
		case "counters":
			renderCounters(sh.out, sh.session.Counters.Snapshot())
		case "metrics":
			err = stats.WriteText(sh.out, sh.session.Counters)
		case "export":
			err = writeDump(sh.out, sh.session, dumpAll)
		case "reset":
			sh.session.ResetCounters()
			fmt.Fprintln(sh.out, "Counters reset.")
		case "quit":
			return errQuit
		}
		if err != nil {
			return err
		}
	}
}

func (sh *shell) arrayLoop() error {
	for {
		entry, err := sh.choose(arrayMenu)
		if err != nil {
			return err
		}

		switch entry.Name {
		case "insert":
			err = sh.insert(store.KindArray)
		case "remove":
			err = sh.remove(store.KindArray)
		case "list":
			err = sh.list(store.KindArray)
		case "linear":
			err = sh.searchArrayLinear()
		case "sort":
			sh.sortArray()
		case "binary":
			err = sh.searchArrayBinary()
		case "counters":
			snap := sh.session.Counters.Snapshot()
			fmt.Fprintln(sh.out, "Accumulated comparisons:")
			fmt.Fprintf(sh.out, " - Sequential search: %d\n", snap.ArraySequential)
			fmt.Fprintf(sh.out, " - Binary search: %d\n", snap.ArrayBinary)
		case "back":
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (sh *shell) listLoop() error {
	for {
		entry, err := sh.choose(listMenu)
		if err != nil {
			return err
		}

		switch entry.Name {
		case "insert":
			err = sh.insert(store.KindList)
		case "remove":
			err = sh.remove(store.KindList)
		case "list":
			err = sh.list(store.KindList)
		case "search":
			err = sh.searchList()
		case "counters":
			fmt.Fprintln(sh.out, "Accumulated comparisons:")
			fmt.Fprintf(sh.out, " - Sequential search (list): %d\n", sh.session.Counters.ListSequential.Read())
		case "back":
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// choose shows m and reads until a valid option is entered.
func (sh *shell) choose(m *cli.Menu) (cli.MenuEntry, error) {
	if sh.interactive {
		m.Render(sh.out)
	}
	for {
		line, err := sh.readLine("Choice: ")
		if err != nil {
			return cli.MenuEntry{}, err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		entry, err := m.Match(line)
		if err != nil {
			fmt.Fprintln(sh.out, cli.FormatError(err))
			continue
		}
		return entry, nil
	}
}

// readLine prints prompt when interactive and returns the next input line.
// End of input yields errQuit.
func (sh *shell) readLine(prompt string) (string, error) {
	if sh.interactive {
		fmt.Fprint(sh.out, prompt)
	}
	line, err := sh.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", errQuit
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (sh *shell) insert(kind store.Kind) error {
	name, err := sh.readLine("Name: ")
	if err != nil {
		return err
	}
	category, err := sh.readLine("Category: ")
	if err != nil {
		return err
	}
	qty, err := sh.readLine("Quantity: ")
	if err != nil {
		return err
	}

	item, err := model.NewItem(name, category, model.ParseQuantity(qty))
	if err != nil {
		sh.printError(&cli.InputError{Field: "name", Message: "must not be empty"})
		return nil
	}

	res, err := sh.session.Insert(kind, item)
	if err != nil {
		sh.printError(err)
		return nil
	}
	if res == store.Updated {
		fmt.Fprintf(sh.out, "Item already in the %s; quantity updated.\n", kind)
	} else {
		fmt.Fprintf(sh.out, "Item inserted into the %s.\n", kind)
	}
	return nil
}

func (sh *shell) remove(kind store.Kind) error {
	name, err := sh.readLine("Name of item to remove: ")
	if err != nil {
		return err
	}
	if err := sh.session.Remove(kind, strings.TrimSpace(name)); err != nil {
		sh.printError(err)
		return nil
	}
	fmt.Fprintf(sh.out, "Item removed from the %s.\n", kind)
	return nil
}

func (sh *shell) list(kind store.Kind) error {
	items, err := sh.session.Items(kind)
	if err != nil {
		return err
	}
	renderItems(sh.out, kind, items)
	return nil
}

func (sh *shell) searchArrayLinear() error {
	name, err := sh.readLine("Name to search (sequential): ")
	if err != nil {
		return err
	}
	res := sh.session.SearchArrayLinear(strings.TrimSpace(name))
	if res.Found {
		fmt.Fprintf(sh.out, "Item found at index %d: %s\n", res.Index, cli.FormatItem(res.Item))
	} else {
		fmt.Fprintln(sh.out, "Item not found (sequential).")
	}
	sh.printSearchStats("array sequential", res)
	return nil
}

func (sh *shell) sortArray() {
	elapsed := sh.session.SortArray()
	fmt.Fprintln(sh.out, "Array sorted by name.")
	if sh.timings {
		fmt.Fprintf(sh.out, "Sort time: %s\n", elapsed)
	}
}

func (sh *shell) searchArrayBinary() error {
	name, err := sh.readLine("Name to search (binary): ")
	if err != nil {
		return err
	}
	if !sh.session.Array.Sorted() {
		fmt.Fprintln(sh.out, cli.Yellow("warning: the array is not sorted; the result may be wrong (sort first)"))
	}
	res := sh.session.SearchArrayBinary(strings.TrimSpace(name))
	if res.Found {
		fmt.Fprintf(sh.out, "Item found (binary) at index %d: %s\n", res.Index, cli.FormatItem(res.Item))
	} else {
		fmt.Fprintln(sh.out, "Item not found (binary).")
	}
	sh.printSearchStats("array binary", res)
	return nil
}

func (sh *shell) searchList() error {
	name, err := sh.readLine("Name to search (sequential, list): ")
	if err != nil {
		return err
	}
	res := sh.session.SearchList(strings.TrimSpace(name))
	if res.Found {
		fmt.Fprintf(sh.out, "Item found in list: %s\n", cli.FormatItem(res.Item))
	} else {
		fmt.Fprintln(sh.out, "Item not found (list).")
	}
	sh.printSearchStats("list sequential", res)
	return nil
}

func (sh *shell) printSearchStats(label string, res ops.SearchResult) {
	var b strings.Builder
	if sh.timings {
		fmt.Fprintf(&b, "Time: %s | ", res.Elapsed)
	}
	fmt.Fprintf(&b, "Comparisons: %d (%s total: %d)", res.Comparisons, label, res.Total)
	fmt.Fprintln(sh.out, cli.Gray(b.String()))
}

func (sh *shell) printError(err error) {
	fmt.Fprintln(sh.out, cli.FormatError(err))
	if hint := cli.Hint(err); hint != "" {
		fmt.Fprintln(sh.out, cli.Gray("hint: "+hint))
	}
}

// renderItems prints a listing, reporting an empty store distinctly.
func renderItems(w io.Writer, kind store.Kind, items []model.Item) {
	if len(items) == 0 {
		fmt.Fprintf(w, "(%s) Bag is empty.\n", kind)
		return
	}
	fmt.Fprintf(w, "Items in bag (%s) - total: %d\n", kind, len(items))
	cli.ItemTable(items).Render(w)
}

// renderCounters prints all comparison counters as a table.
func renderCounters(w io.Writer, snap stats.Snapshot) {
	t := cli.NewTable("SEARCH", "STORE", "COMPARISONS")
	t.AlignRight(2)
	t.AddRow("sequential", "array", fmt.Sprint(snap.ArraySequential))
	t.AddRow("binary", "array", fmt.Sprint(snap.ArrayBinary))
	t.AddRow("sequential", "list", fmt.Sprint(snap.ListSequential))
	t.Render(w)
}
