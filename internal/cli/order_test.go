package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileylov/dragsort/internal/dataset"
	"github.com/rileylov/dragsort/internal/reorder"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseMove(t *testing.T) {
	m, err := ParseMove("0:3:below")
	require.NoError(t, err)
	assert.Equal(t, Move{Source: 0, Target: 3, Side: reorder.SideBelow}, m)

	for _, bad := range []string{"", "0:3", "a:3:above", "0:b:above", "0:3:left", "0:3:above:x"} {
		_, err := ParseMove(bad)
		assert.ErrorIs(t, err, ErrBadMove, bad)
	}
}

func TestApplyMoves(t *testing.T) {
	items := dataset.Default()[:5]

	got := ApplyMoves(items, []Move{{Source: 0, Target: 3, Side: reorder.SideBelow}})
	assert.Equal(t, []string{"2", "3", "4", "1", "5"}, dataset.IDs(got))

	got = ApplyMoves(items, []Move{{Source: 3, Target: 1, Side: reorder.SideAbove}})
	assert.Equal(t, []string{"1", "4", "2", "3", "5"}, dataset.IDs(got))

	got = ApplyMoves(items, []Move{
		{Source: 0, Target: 5, Side: reorder.SideAbove},
		{Source: 2, Target: 2, Side: reorder.SideBelow},
		{Source: 9, Target: 0, Side: reorder.SideAbove},
	})
	assert.Equal(t, []string{"2", "3", "4", "5", "1"}, dataset.IDs(got))
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, dataset.IDs(items), "input untouched")
}

func TestOrderCommand_Text(t *testing.T) {
	out, err := execute(t, "order", "--move", "0:3:below")
	require.NoError(t, err)
	assert.Equal(t,
		"1. The Charles Grand Brasserie & Bar (2)\n"+
			"2. Bridge Climb (3)\n"+
			"3. Scotland Island (4)\n"+
			"4. Scotland Island (1)\n"+
			"5. Clam Bar (5)\n"+
			"6. Vivid Festival (6)\n",
		out)
}

func TestOrderCommand_JSON(t *testing.T) {
	out, err := execute(t, "order", "--format", "json", "--move", "5:0:above")
	require.NoError(t, err)

	var items []dataset.Item
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	assert.Equal(t, []string{"6", "1", "2", "3", "4", "5"}, dataset.IDs(items))
}

func TestOrderCommand_YAMLRoundTripsThroughItemsFile(t *testing.T) {
	out, err := execute(t, "order", "--format", "yaml", "--move", "0:6:above")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "items.yaml")
	require.NoError(t, os.WriteFile(path, []byte(out), 0o644))

	out, err = execute(t, "order", "--items", path, "--format", "json")
	require.NoError(t, err)
	var items []dataset.Item
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	assert.Equal(t, []string{"2", "3", "4", "5", "6", "1"}, dataset.IDs(items))
}

func TestOrderCommand_Errors(t *testing.T) {
	_, err := execute(t, "order", "--format", "xml")
	assert.ErrorContains(t, err, "invalid format")

	_, err = execute(t, "order", "--move", "1-2")
	assert.ErrorIs(t, err, ErrBadMove)

	_, err = execute(t, "order", "--items", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "dup.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items:\n  - id: a\n  - id: a\n"), 0o644))
	_, err = execute(t, "order", "--items", path)
	assert.ErrorIs(t, err, dataset.ErrDuplicateID)
}

func TestNewLogger(t *testing.T) {
	logger, closeLog, err := newLogger(&RootOptions{})
	require.NoError(t, err)
	logger.Info("dropped")
	closeLog()

	path := filepath.Join(t.TempDir(), "debug.log")
	logger, closeLog, err = newLogger(&RootOptions{LogFile: path, Verbose: true})
	require.NoError(t, err)
	logger.Debug("drag started", "index", 2)
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "drag started")
	assert.Contains(t, string(data), "index=2")
}
