package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	trie "github.com/sarthakjha889/go-dict-trie"
)

const dictionary = "abc\nabd\nabd\n\ntest\nte\n"

func writeDictionary(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := Run(args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), err
}

func TestLookupCommands(t *testing.T) {
	path := writeDictionary(t, dictionary)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"contains", []string{"contains", "abc", "ab"}, "abc\ttrue\nab\tfalse\n"},
		{"get", []string{"get", "abd", "xyz"}, "abd\t2\nxyz\t0\n"},
		{"prefix", []string{"prefix", "ab", "ac"}, "ab\ttrue\nac\tfalse\n"},
		{"list", []string{"list"}, "abc\nabd\nte\ntest\n"},
		{"list all", []string{"list", "--all"}, "abc\nabd\nabd\nte\ntest\n"},
		{"remove", []string{"remove", "abd"}, "abd\t1\n"},
		{"remove count", []string{"remove", "abd", "-n", "2"}, "abd\t0\n"},
		{"remove force", []string{"remove", "abd", "--force"}, "abd\t0\n"},
		{"stats", []string{"stats"}, "words\t5\ndistinct\t4\nlongest\t4\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, "", append([]string{"-d", path}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearchCommands(t *testing.T) {
	path := writeDictionary(t, dictionary)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"hamming", []string{"hamming", "abc"}, "abc\nabd\n"},
		{"hamming trace", []string{"hamming", "abe", "--trace"}, "abc\t1\t==X\nabd\t1\t==X\n"},
		{"hamming best", []string{"hamming", "abd", "-k", "2", "--mode", "best"}, "abd\n"},
		{"levenshtein first", []string{"levenshtein", "ac", "--mode", "first"}, "abc\n"},
		{"levenshtein all", []string{"levenshtein", "tes"}, "te\ntest\n"},
		{"levenshtein best trace", []string{"levenshtein", "abd", "-k", "2", "-m", "best", "-t"}, "abd\t0\t===\n"},
		{"levenshtein best fuzzy", []string{"levenshtein", "tst", "-m", "best", "-t"}, "test\t1\t=I==\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, "", append([]string{"-d", path}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("No match", func(t *testing.T) {
		got, err := run(t, "", "-d", path, "hamming", "xyz")
		assert.ErrorIs(t, err, ErrNoMatch)
		assert.Empty(t, got)
	})

	t.Run("Negative distance", func(t *testing.T) {
		_, err := run(t, "", "-d", path, "levenshtein", "abc", "--distance=-1")
		assert.Error(t, err)
	})

	t.Run("Unknown mode", func(t *testing.T) {
		_, err := run(t, "", "-d", path, "hamming", "abc", "--mode", "worst")
		assert.Error(t, err)
	})
}

func TestListSort(t *testing.T) {
	path := writeDictionary(t, "b\nA\na\n")

	got, err := run(t, "", "-d", path, "list")
	require.NoError(t, err)
	assert.Equal(t, "A\na\nb\n", got)

	got, err = run(t, "", "-d", path, "list", "--sort")
	require.NoError(t, err)
	assert.Equal(t, "a\nA\nb\n", got)

	_, err = run(t, "", "-d", path, "list", "--sort", "--lang", "not a tag")
	assert.Error(t, err)
}

func TestFillCommand(t *testing.T) {
	got, err := run(t, "", "fill", "--alphabet", "ab", "-l", "2")
	require.NoError(t, err)
	assert.Equal(t, "aa\nab\nba\nbb\n", got)

	path := writeDictionary(t, "abc\nzz\n")
	got, err = run(t, "", "-d", path, "fill", "--alphabet", "ab", "-l", "2", "--merge")
	require.NoError(t, err)
	assert.Equal(t, "aa\nab\nabc\nba\nbb\nzz\n", got)

	_, err = run(t, "", "fill", "--alphabet", "ab", "--length=-1")
	assert.Error(t, err)
}

func TestDictionarySources(t *testing.T) {
	t.Run("Stdin", func(t *testing.T) {
		got, err := run(t, dictionary, "--dictionary=-", "contains", "test")
		require.NoError(t, err)
		assert.Equal(t, "test\ttrue\n", got)
	})

	t.Run("Environment", func(t *testing.T) {
		t.Setenv("DICT_TRIE_DICTIONARY", writeDictionary(t, dictionary))
		got, err := run(t, "", "get", "abd")
		require.NoError(t, err)
		assert.Equal(t, "abd\t2\n", got)
	})

	t.Run("No dictionary", func(t *testing.T) {
		got, err := run(t, "", "contains", "abc")
		require.NoError(t, err)
		assert.Equal(t, "abc\tfalse\n", got)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := run(t, "", "-d", filepath.Join(t.TempDir(), "missing.txt"), "list")
		assert.ErrorContains(t, err, "opening dictionary")
	})

	t.Run("Keep empty", func(t *testing.T) {
		path := writeDictionary(t, dictionary)
		got, err := run(t, "", "-d", path, "--keep-empty", "stats")
		require.NoError(t, err)
		assert.Equal(t, "words\t6\ndistinct\t5\nlongest\t4\n", got)
	})
}

func TestReadWords(t *testing.T) {
	tr := trie.New()
	n, err := ReadWords(strings.NewReader("abc\r\nabc\n\nte"), tr, false)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	count, ok := tr.Get("abc")
	assert.True(t, ok)
	assert.Equal(t, 2, count)
	assert.True(t, tr.Contains("te"))
	assert.False(t, tr.Contains(""))
}

func TestVersion(t *testing.T) {
	v := Version(Name)
	assert.True(t, strings.HasPrefix(v, "dict-trie version "+version))
	assert.Contains(t, v, homepage)
}
