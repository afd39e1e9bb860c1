package palette_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/bliss/pkg/palette"
)

func writeLayout(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadLayout(t *testing.T) {
	path := writeLayout(t, `
name: first board
cellType: ActionBmwCodeCell
startRow: 2
startColumn: 1
rows:
  - [BLANK, cat]
  - ["7", dog]
`)

	layout, err := palette.LoadLayout(path)
	require.NoError(t, err)
	assert.Equal(t, "first board", layout.Name)
	assert.Equal(t, 2, layout.StartRow)
	assert.Equal(t, 1, layout.StartColumn)
	require.Len(t, layout.Rows, 2)
	assert.Equal(t, []string{"BLANK", "cat"}, layout.Rows[0])
	assert.Equal(t, []string{"7", "dog"}, layout.Rows[1])
}

func TestLoadLayout_Invalid(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := palette.LoadLayout(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := palette.LoadLayout(writeLayout(t, "rows: [unclosed"))
		assert.Error(t, err)
	})

	t.Run("no rows", func(t *testing.T) {
		_, err := palette.LoadLayout(writeLayout(t, "name: empty board"))
		assert.ErrorContains(t, err, "no rows")
	})

	t.Run("no name", func(t *testing.T) {
		_, err := palette.LoadLayout(writeLayout(t, "rows: [[cat]]"))
		assert.ErrorContains(t, err, "no name")
	})
}
