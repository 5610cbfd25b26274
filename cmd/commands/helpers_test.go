package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/microcomp/internal/cli"
)

const testVocabulary = `tags:
  - name: invoice
    color: "#3498db"
  - name: receipt
  - name: blue sky
categories:
  - name: bill
    description: Utility bills
  - name: contract
custom_fields:
  - name: total
    type: monetary
`

// setupProject creates a project with a vocabulary in a temp dir and moves into it
func setupProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, os.MkdirAll(".microcomp", 0755))
	require.NoError(t, os.WriteFile(filepath.Join(".microcomp", "vocabulary.yaml"), []byte(testVocabulary), 0644))

	var out, errOut bytes.Buffer
	cli.SetOutput(&out, &errOut)
	t.Cleanup(func() {
		cli.SetOutput(os.Stdout, os.Stderr)
		cli.SetInput(os.Stdin)
		cli.SetGlobalFlags(false, false, false)
	})
	cli.SetGlobalFlags(false, true, false)

	return dir
}

// execute runs cmd with args and returns its output
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(oldwd))
	})
}
