package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	for _, cmd := range []*cobra.Command{generateCmd, splitCmd} {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSplitFromStdin(t *testing.T) {
	out, err := execute(t, "Resume stuff---Cover stuff", "split")
	require.NoError(t, err)
	assert.Contains(t, out, "=== Resume ===\nResume stuff\n")
	assert.Contains(t, out, "=== Cover Letter ===\nCover stuff\n")
}

func TestSplitFileToDirectory(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "generated.txt")
	require.NoError(t, os.WriteFile(in, []byte("RESUME\nJane\nCOVER LETTER\nDear team"), 0o600))
	outDir := filepath.Join(dir, "out")

	_, err := execute(t, "", "split", in, "--out", outDir)
	require.NoError(t, err)

	resume, err := os.ReadFile(filepath.Join(outDir, "resume.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Jane\n", string(resume))
	letter, err := os.ReadFile(filepath.Join(outDir, "cover_letter.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Dear team\n", string(letter))
}

func TestGenerateAgainstOpenAICompatibleServer(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"Resume stuff---Cover stuff"}}]}`))
	}))
	defer upstream.Close()

	chdirForTest(t, t.TempDir())
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("OPENAI_BASE_URL", upstream.URL)
	t.Setenv("OPENAI_API_KEY", "")
	require.NoError(t, os.Unsetenv("OPENAI_API_KEY"))

	skillsFile := filepath.Join(t.TempDir(), "skills.md")
	require.NoError(t, os.WriteFile(skillsFile, []byte("Go, SQL"), 0o600))

	out, err := execute(t, "", "generate",
		"--skills-file", skillsFile,
		"--experience", "5 years backend",
		"--job", "Senior Go engineer",
		"--api-key", "k",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Resume stuff")
	assert.Contains(t, out, "Cover stuff")
}

func TestGenerateMissingKey(t *testing.T) {
	chdirForTest(t, t.TempDir())
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "")
	require.NoError(t, os.Unsetenv("OPENAI_API_KEY"))

	_, err := execute(t, "", "generate", "--skills", "Go", "--experience", "x", "--job", "y")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")
}

// chdirForTest mirrors testing.T.Chdir (Go 1.24+) for older toolchains:
// it changes the working directory and restores it when the test ends.
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
