// Package cli implements the dict-trie command line tool on top of package trie.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	trie "github.com/sarthakjha889/go-dict-trie"
)

const (
	// Name is the name of the command line tool.
	Name = "dict-trie"

	version  = "0.1.0"
	author   = "sarthakjha889"
	homepage = "https://github.com/sarthakjha889/go-dict-trie"
)

// Version returns the version banner printed by --version.
func Version(name string) string {
	return fmt.Sprintf("%s version %s\n\nAuthor   : %s\nHomepage : %s", name, version, author, homepage)
}

// Globals are the flags shared by every command.
type Globals struct {
	Dictionary string           `short:"d" type:"path" env:"DICT_TRIE_DICTIONARY" placeholder:"FILE" help:"Word list with one word per line, or - for stdin. Repeated words are counted."`
	KeepEmpty  bool             `help:"Store blank lines as the empty word instead of skipping them."`
	Verbose    bool             `short:"v" help:"Enable debug logging."`
	Version    kong.VersionFlag `help:"Print version information and quit."`
}

// CLI is the command tree of dict-trie.
type CLI struct {
	Globals

	Contains    ContainsCmd    `cmd:"" help:"Report whether words are stored."`
	Get         GetCmd         `cmd:"" help:"Print how many times words are stored."`
	Prefix      PrefixCmd      `cmd:"" help:"Report whether stored words start with the given prefixes."`
	List        ListCmd        `cmd:"" help:"Print the stored words."`
	Hamming     HammingCmd     `cmd:"" help:"Find words of the same length within a Hamming distance."`
	Levenshtein LevenshteinCmd `cmd:"" help:"Find words within an edit distance."`
	Fill        FillCmd        `cmd:"" help:"Print every word of a given length over an alphabet."`
	Remove      RemoveCmd      `cmd:"" help:"Remove occurrences of a word and print what is left of it."`
	Stats       StatsCmd       `cmd:"" help:"Print dictionary statistics."`
}

// Context is passed to the Run method of every command.
type Context struct {
	*Globals
	In  io.Reader
	Out io.Writer
	Log *logrus.Logger
}

// Run parses args and runs the selected command. Results go to stdout, logs to stderr.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var c CLI
	parser, err := kong.New(&c,
		kong.Name(Name),
		kong.Description("Dictionary lookups with Hamming and Levenshtein fallback."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Vars{"version": Version(Name)},
	)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	log := logrus.New()
	log.SetOutput(stderr)
	if c.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return ctx.Run(&Context{Globals: &c.Globals, In: stdin, Out: stdout, Log: log})
}

// Load builds a trie from the configured dictionary. Without a dictionary the trie is empty.
func (c *Context) Load() (*trie.Trie, error) {
	t := trie.New()
	if c.Dictionary == "" {
		c.Log.Debug("no dictionary given, starting from an empty trie")
		return t, nil
	}

	r := c.In
	if c.Dictionary != "-" {
		f, err := os.Open(c.Dictionary)
		if err != nil {
			return nil, fmt.Errorf("opening dictionary: %w", err)
		}
		defer f.Close()
		r = f
	}

	n, err := ReadWords(r, t, c.KeepEmpty)
	if err != nil {
		return nil, fmt.Errorf("reading dictionary %s: %w", c.Dictionary, err)
	}
	c.Log.WithFields(logrus.Fields{
		"dictionary": c.Dictionary,
		"words":      n,
		"distinct":   t.Len(),
	}).Debug("loaded dictionary")
	return t, nil
}

// ReadWords adds every line of r to t and returns the number of words added.
// Blank lines are skipped unless keepEmpty is set.
func ReadWords(r io.Reader, t *trie.Trie, keepEmpty bool) (int, error) {
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		word := scanner.Text()
		if word == "" && !keepEmpty {
			continue
		}
		t.Add(word)
		n++
	}
	return n, scanner.Err()
}
