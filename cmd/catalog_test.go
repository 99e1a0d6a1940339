package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCatalog(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("QUESTIONS_FILE", "")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"catalog"}, args...))
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		_ = rootCmd.PersistentFlags().Set("questions", "")
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestCatalogCommand_Embedded(t *testing.T) {
	out, err := runCatalog(t)
	require.NoError(t, err)
	assert.Contains(t, out, "proposicoes")
	assert.Contains(t, out, "tabelas")
	assert.Contains(t, out, "2 distinct questions")
}

func TestCatalogCommand_FileFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`subjects:
  - id: conectivos
    questions:
      - prompt: "p AND q is true when?"
        options: ["never", "both true"]
        correct: 1
      - prompt: "NOT p when p is true?"
        options: ["F", "V"]
        correct: 0
`), 0o644))

	out, err := runCatalog(t, "--questions", path)
	require.NoError(t, err)
	assert.Contains(t, out, "conectivos")
	assert.Contains(t, out, "2 distinct questions")
	assert.NotContains(t, out, "tabelas")
}

func TestCatalogCommand_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`subjects:
  - id: all
    questions: []
`), 0o644))

	_, err := runCatalog(t, "--questions", path)
	assert.Error(t, err)
}
