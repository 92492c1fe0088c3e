package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patrol/internal/config"
	"github.com/katalvlaran/patrol/labmap"
	"github.com/katalvlaran/patrol/search"
)

const exampleMap = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

// run executes the root command with args and stdin, returning stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd("test")
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeMap(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "map.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestVisited(t *testing.T) {
	out, _, err := run(t, "", "visited", writeMap(t, exampleMap))
	require.NoError(t, err)
	require.Equal(t, "41\n", out)
}

func TestVisitedStdin(t *testing.T) {
	out, _, err := run(t, exampleMap, "visited", "-")
	require.NoError(t, err)
	require.Equal(t, "41\n", out)
}

func TestLoops(t *testing.T) {
	out, _, err := run(t, exampleMap, "loops", "--workers", "2", "--list", "-")
	require.NoError(t, err)
	require.Equal(t, "6\n6,3\n7,6\n7,7\n8,1\n8,3\n9,7\n", out)
}

func TestSolve(t *testing.T) {
	out, _, err := run(t, exampleMap, "solve", "-")
	require.NoError(t, err)
	require.Equal(t, "visited: 41\nloops: 6\n", out)
}

func TestRender(t *testing.T) {
	out, _, err := run(t, ".#..\n....\n.^..\n", "render", "--no-color", "-")
	require.NoError(t, err)
	require.Equal(t, ".#..\n.XXX\n.X..\n", out)
}

func TestRenderLoops(t *testing.T) {
	out, _, err := run(t, exampleMap, "render", "--no-color", "--loops", "--workers", "3", "-")
	require.NoError(t, err)
	want := strings.Join([]string{
		"....#.....",
		"....XXXXX#",
		"....X...X.",
		"..#.X...X.",
		"..XXXXX#X.",
		"..X.X.X.X.",
		".#XOXXXXX.",
		".XXXXXOO#.",
		"#OXOXXXX..",
		"......#O..",
	}, "\n") + "\n"
	require.Equal(t, want, out)
	require.Equal(t, 6, strings.Count(out, "O"))
}

func TestRenderCycleKeepsGuard(t *testing.T) {
	in := ".#....\n.^...#\n#.....\n....#.\n"
	out, _, err := run(t, in, "render", "--no-color", "-")
	require.NoError(t, err)
	require.Equal(t, ".#....\n.>XXX#\n#XXXX.\n....#.\n", out)
}

func TestLoopsRejectsLoopingBaseline(t *testing.T) {
	_, _, err := run(t, ".#....\n.^...#\n#.....\n....#.\n", "loops", "-")
	require.ErrorIs(t, err, search.ErrBaselineCycle)
}

func TestBadMap(t *testing.T) {
	_, _, err := run(t, "...\n...\n", "visited", "-")
	require.ErrorIs(t, err, labmap.ErrNoGuard)

	_, _, err = run(t, "", "visited", filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
}

func TestConfigFileAndOverrides(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "patrol.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("workers: 1\nlog:\n  level: info\n  format: json\n"), 0o600))

	out, errOut, err := run(t, exampleMap, "visited", "--config", cfgPath, "-")
	require.NoError(t, err)
	require.Equal(t, "41\n", out)
	require.Contains(t, errOut, "patrol finished")
	require.Contains(t, errOut, `"visited":41`)

	_, _, err = run(t, exampleMap, "visited", "--config", cfgPath, "--log-level", "loud", "-")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = run(t, exampleMap, "visited", "--config", filepath.Join(t.TempDir(), "nope.yaml"), "-")
	require.ErrorIs(t, err, config.ErrConfigNotFound)
}

func TestDefaultLogsAreQuiet(t *testing.T) {
	_, errOut, err := run(t, exampleMap, "solve", "-")
	require.NoError(t, err)
	require.Empty(t, errOut)
}
