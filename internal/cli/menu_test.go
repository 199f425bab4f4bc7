package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchCommand(t *testing.T) {
	commands := []string{"insert", "remove", "list", "linear", "sort", "search"}

	tests := []struct {
		name      string
		prefix    string
		want      string
		wantError bool
		errorMsg  string
	}{
		{name: "exact match", prefix: "list", want: "list"},
		{name: "exact match case insensitive", prefix: "LIST", want: "list"},
		{name: "unique prefix ins matches insert", prefix: "ins", want: "insert"},
		{name: "unique prefix r matches remove", prefix: "r", want: "remove"},
		{name: "unique prefix lin matches linear", prefix: "lin", want: "linear"},
		{name: "unique prefix so matches sort", prefix: "so", want: "sort"},
		{
			name:      "ambiguous prefix l matches list and linear",
			prefix:    "l",
			wantError: true,
			errorMsg:  "ambiguous command",
		},
		{
			name:      "ambiguous prefix s matches sort and search",
			prefix:    "s",
			wantError: true,
			errorMsg:  "ambiguous command",
		},
		{
			name:      "no match xyz",
			prefix:    "xyz",
			wantError: true,
			errorMsg:  "unknown command",
		},
		{
			name:      "empty prefix is ambiguous",
			prefix:    "",
			wantError: true,
			errorMsg:  "ambiguous command",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MatchCommand(tt.prefix, commands)

			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestMatchCommandExactBeatsPrefix(t *testing.T) {
	got, err := MatchCommand("stat", []string{"stats", "stat"})
	require.NoError(t, err)
	assert.Equal(t, "stat", got)
}

func TestMatchCommandEmptyCommands(t *testing.T) {
	_, err := MatchCommand("list", []string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func testMenu() *Menu {
	return &Menu{
		Title: "Array",
		Entries: []MenuEntry{
			{Key: 1, Name: "insert", Label: "Insert item"},
			{Key: 2, Name: "remove", Label: "Remove item by name"},
			{Key: 3, Name: "list", Label: "List items"},
			{Key: 0, Name: "back", Label: "Back"},
		},
	}
}

func TestMenuMatch(t *testing.T) {
	m := testMenu()

	e, err := m.Match("2")
	require.NoError(t, err)
	assert.Equal(t, "remove", e.Name)

	e, err = m.Match(" 0 ")
	require.NoError(t, err)
	assert.Equal(t, "back", e.Name)

	e, err = m.Match("li")
	require.NoError(t, err)
	assert.Equal(t, 3, e.Key)

	_, err = m.Match("9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown option 9")

	_, err = m.Match("")
	require.Error(t, err)

	_, err = m.Match("zap")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestMenuRender(t *testing.T) {
	SetColorEnabled(false)
	defer SetColorEnabled(true)

	var buf bytes.Buffer
	testMenu().Render(&buf)

	expected := "\n=== Array ===\n" +
		"1. Insert item (insert)\n" +
		"2. Remove item by name (remove)\n" +
		"3. List items (list)\n" +
		"0. Back (back)\n"
	assert.Equal(t, expected, buf.String())
}
