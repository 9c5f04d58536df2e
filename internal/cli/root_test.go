package cli

import (
	"bytes"
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootCommandHelp(t *testing.T) {
	cmd := NewRootCommand()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())
	require.Contains(t, buf.String(), "leadership assessment")
	require.Contains(t, buf.String(), "--server")
}

func TestRootCommandHasSubcommands(t *testing.T) {
	cmd := NewRootCommand()

	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	require.True(t, names["run"])
	require.True(t, names["questions"])
}

func TestQuestionsCommandListsAllQuestions(t *testing.T) {
	cmd := NewRootCommand()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"questions"})

	require.NoError(t, cmd.Execute())
	output := buf.String()
	require.Contains(t, output, "Leadership Oriented")
	require.Contains(t, output, "Team Building Oriented")
	require.Equal(t, 8, strings.Count(output, ". "), output)
}

func TestRunCommandDryRun(t *testing.T) {
	cmd := NewRootCommand()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetIn(strings.NewReader("Jane\njane@example.com\n555\nn\nn\nn\nn\ny\nn\nn\nn\n"))
	cmd.SetArgs([]string{"run", "--dry-run"})

	require.NoError(t, cmd.Execute())
	require.Contains(t, buf.String(), "Team-Building Training")
	require.Contains(t, buf.String(), "Please contact 755-25-25")
}

func TestClientPackagesStayOffServerStack(t *testing.T) {
	forbidden := []string{"/internal/service", "/internal/repository", "/internal/database", "gorm.io/", "github.com/sendgrid/"}

	for _, dir := range []string{".", "../client"} {
		files, err := filepath.Glob(filepath.Join(dir, "*.go"))
		require.NoError(t, err)

		for _, file := range files {
			if strings.HasSuffix(file, "_test.go") {
				continue
			}
			parsed, err := parser.ParseFile(token.NewFileSet(), file, nil, parser.ImportsOnly)
			require.NoError(t, err)
			for _, imp := range parsed.Imports {
				path, err := strconv.Unquote(imp.Path.Value)
				require.NoError(t, err)
				for _, bad := range forbidden {
					require.NotContains(t, path, bad, "%s imports %s", file, path)
				}
			}
		}
	}
}
