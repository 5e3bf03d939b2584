package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sixteen/internal/store"
)

// resetFlags restores every flag to its default so commands can run more
// than once in a process.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--log-file", filepath.Join(dir, "sixteen.log")}, args...))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestClassify_Flags(t *testing.T) {
	out, err := execute(t, "classify",
		"--answer", "1=I", "--answer", "4=n", "--answer", "7=F", "--answer", "10=P")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "INFP  The Mediator\n"), out)
	assert.Contains(t, out, "answered 4/12")
	assert.Contains(t, out, "https://line.me/R/ti/p/@infp_link")
}

func TestClassify_NoAnswersIsESTJ(t *testing.T) {
	out, err := execute(t, "classify")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "ESTJ"), out)
}

func TestClassify_AnswersFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`"1": I
"2": I
"3": E
"4": "-"
`), 0o644))

	out, err := execute(t, "classify", "--answers-file", path, "--answer", "3=I")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "ISTJ"), out)
	assert.Contains(t, out, "E 0 - 3 I", "flag overrides the file")
}

func TestReadAnswersFile_BareNoPreference(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`1: i
2: -
3: ~
4:
5: "-"
`), 0o644))

	got, err := readAnswersFile(path)
	require.NoError(t, err)
	assert.Equal(t, map[int]string{1: "I", 2: "-", 3: "-", 4: "-", 5: "-"}, got)
}

func TestReadAnswersFile_RejectsNested(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(path, []byte("1: [E, I]\n2: {a: b}\n"), 0o644))

	_, err := readAnswersFile(path)
	assert.Error(t, err)
}

func TestClassify_AnswersFileBareDash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(path, []byte("1: I\n2: -\n3: -\n"), 0o644))

	out, err := execute(t, "classify", "--answers-file", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "ISTJ"), out)
	assert.Contains(t, out, "answered 3/12")
	assert.Contains(t, out, "E 0 - 1 I")
}

func TestClassify_Rejects(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad pair", []string{"--answer", "1"}},
		{"bad id", []string{"--answer", "x=E"}},
		{"unknown question", []string{"--answer", "99=E"}},
		{"wrong axis letter", []string{"--answer", "1=N"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, append([]string{"classify"}, tt.args...)...)
			assert.Error(t, err)
		})
	}
}

func TestParseAnswerFlags(t *testing.T) {
	got, err := parseAnswerFlags([]string{"1=e", " 2 = - ", "1=I"})
	require.NoError(t, err)
	assert.Equal(t, map[int]string{1: "I", 2: "-"}, got)
}

func TestTypes(t *testing.T) {
	out, err := execute(t, "types")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 17)
	assert.True(t, strings.HasPrefix(lines[0], "TYPE"))
	assert.True(t, strings.HasPrefix(lines[1], "ESTJ"))
	assert.True(t, strings.HasPrefix(lines[16], "INFP"))
}

func TestStats(t *testing.T) {
	db := filepath.Join(t.TempDir(), "events.db")

	out, err := execute(t, "--db", db, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Sessions started:   0")

	st, err := store.Open(db)
	require.NoError(t, err)
	repo := st.EventRepo()
	ctx := context.Background()
	for _, e := range []store.QuizEventData{
		{Name: store.EventStart, SessionID: "s1"},
		{Name: store.EventComplete, SessionID: "s1", ResultType: "INFP"},
		{Name: store.EventStart, SessionID: "s2"},
		{Name: store.EventComplete, SessionID: "s2", ResultType: "INFP"},
		{Name: store.EventCTAClick, SessionID: "s2", ResultType: "INFP"},
	} {
		require.NoError(t, repo.AppendQuizEvent(ctx, e))
	}
	require.NoError(t, st.Close())

	out, err = execute(t, "--db", db, "stats", "--recent", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Sessions started:   2")
	assert.Contains(t, out, "Sessions completed: 2 (100%)")
	assert.Contains(t, out, "Link clicks:        1 (50%)")
	assert.Contains(t, out, "INFP █")
	assert.Contains(t, out, "line_click")
}

func TestReset(t *testing.T) {
	db := filepath.Join(t.TempDir(), "events.db")

	_, err := execute(t, "--db", db, "reset")
	require.Error(t, err, "reset needs --yes")

	st, err := store.Open(db)
	require.NoError(t, err)
	require.NoError(t, st.EventRepo().AppendQuizEvent(context.Background(),
		store.QuizEventData{Name: store.EventStart, SessionID: "s1"}))
	require.NoError(t, st.Close())

	out, err := execute(t, "--db", db, "reset", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "cleared")

	st, err = store.Open(db)
	require.NoError(t, err)
	defer st.Close()
	counts, err := st.EventRepo().Counts(context.Background())
	require.NoError(t, err)
	assert.Zero(t, counts.Starts)
}

func TestContentValidate(t *testing.T) {
	out, err := execute(t, "content", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "built-in content: ok")
	assert.Contains(t, out, "12 questions, 16 results")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("version: v1.0.0\nquestions: []\n"), 0o644))
	_, err = execute(t, "content", "validate", bad)
	assert.Error(t, err)
}

func TestInvalidMode(t *testing.T) {
	_, err := execute(t, "--mode", "sideways", "types")
	assert.Error(t, err)
}

func TestAssetRoot(t *testing.T) {
	assert.Equal(t, ".", assetRoot(""))
	assert.Equal(t, filepath.Join("a", "b"), assetRoot(filepath.Join("a", "b", "content.yaml")))
}
