package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_FlagDefaults(t *testing.T) {
	t.Parallel()

	cmd := New("test").rootCommand()

	ext, err := cmd.Flags().GetStringSlice("ext")
	require.NoError(t, err)
	assert.Equal(t, []string{".tsx", ".ts", ".css", ".py"}, ext)

	dirs, err := cmd.Flags().GetStringSlice("exclude-dir")
	require.NoError(t, err)
	assert.Contains(t, dirs, "node_modules")
	assert.Contains(t, dirs, ".git")

	files, err := cmd.Flags().GetStringSlice("exclude-file")
	require.NoError(t, err)
	assert.Contains(t, files, "__init__.py")

	output, err := cmd.Flags().GetString("output")
	require.NoError(t, err)
	assert.Equal(t, "table", output)
}

func TestLargestCommand_FlagDefaults(t *testing.T) {
	t.Parallel()

	cmd := New("test").largestCommand()

	top, err := cmd.Flags().GetInt("top")
	require.NoError(t, err)
	assert.Equal(t, 5, top)

	ext, err := cmd.Flags().GetStringSlice("ext")
	require.NoError(t, err)
	assert.Equal(t, []string{".js", ".ts", ".tsx", ".jsx", ".py"}, ext)

	minSize, err := cmd.Flags().GetString("min-size")
	require.NoError(t, err)
	assert.Equal(t, "0KB", minSize)
}

func TestValidateOutput(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validateOutput("table"))
	assert.NoError(t, validateOutput("json"))
	assert.Error(t, validateOutput("yaml"))
}

func TestExecute_UnknownOutput(t *testing.T) {
	t.Parallel()

	cmd := New("test").rootCommand()
	cmd.SetArgs([]string{"--output", "yaml", t.TempDir()})

	assert.Error(t, cmd.Execute())
}
