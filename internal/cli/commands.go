package cli

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	trie "github.com/sarthakjha889/go-dict-trie"
)

// ErrNoMatch is returned by the search commands when nothing is within the distance.
var ErrNoMatch = errors.New("no match")

type ContainsCmd struct {
	Words []string `arg:"" help:"Words to look up."`
}

func (c *ContainsCmd) Run(ctx *Context) error {
	t, err := ctx.Load()
	if err != nil {
		return err
	}
	for _, w := range c.Words {
		fmt.Fprintf(ctx.Out, "%s\t%t\n", w, t.Contains(w))
	}
	return nil
}

type GetCmd struct {
	Words []string `arg:"" help:"Words to look up."`
}

func (c *GetCmd) Run(ctx *Context) error {
	t, err := ctx.Load()
	if err != nil {
		return err
	}
	for _, w := range c.Words {
		count, _ := t.Get(w)
		fmt.Fprintf(ctx.Out, "%s\t%d\n", w, count)
	}
	return nil
}

type PrefixCmd struct {
	Prefixes []string `arg:"" help:"Prefixes to look up."`
}

func (c *PrefixCmd) Run(ctx *Context) error {
	t, err := ctx.Load()
	if err != nil {
		return err
	}
	for _, p := range c.Prefixes {
		fmt.Fprintf(ctx.Out, "%s\t%t\n", p, t.HasPrefix(p))
	}
	return nil
}

type ListCmd struct {
	All  bool   `short:"a" help:"Print a word once for every time it is stored."`
	Sort bool   `short:"s" help:"Sort by the collation rules of --lang instead of by code point."`
	Lang string `default:"und" help:"BCP 47 language tag used by --sort."`
}

func (c *ListCmd) Run(ctx *Context) error {
	tag, err := language.Parse(c.Lang)
	if err != nil {
		return fmt.Errorf("parsing language %q: %w", c.Lang, err)
	}
	t, err := ctx.Load()
	if err != nil {
		return err
	}
	words := slices.Collect(t.List(!c.All))
	if c.Sort {
		collate.New(tag).SortStrings(words)
	}
	for _, w := range words {
		fmt.Fprintln(ctx.Out, w)
	}
	return nil
}

// SearchFlags are shared by the approximate search commands.
type SearchFlags struct {
	Word     string `arg:"" help:"Query word."`
	Distance int    `short:"k" default:"1" help:"Maximum distance."`
	Mode     string `short:"m" enum:"all,first,best" default:"all" help:"Print all matches, the first one found, or one with the smallest distance (${enum})."`
	Trace    bool   `short:"t" help:"Print the distance and alignment of every match."`
}

func (f *SearchFlags) Validate() error {
	if f.Distance < 0 {
		return fmt.Errorf("distance must not be negative, got %d", f.Distance)
	}
	return nil
}

// searcher binds the search methods of one distance measure.
type searcher struct {
	words func(string, int) iter.Seq[string]
	trace func(string, int) iter.Seq[trie.Match]
	best  func(string, int) (string, bool)
}

func (f *SearchFlags) search(ctx *Context, s searcher) error {
	found := false
	emit := func(m trie.Match) {
		found = true
		if f.Trace {
			fmt.Fprintf(ctx.Out, "%s\t%d\t%s\n", m.Word, trie.Distance(m.Trace), m.Trace)
		} else {
			fmt.Fprintln(ctx.Out, m.Word)
		}
	}

	switch f.Mode {
	case "best":
		if w, ok := s.best(f.Word, f.Distance); ok {
			emit(alignment(s.trace(f.Word, f.Distance), w))
		}
	case "first":
		for m := range s.trace(f.Word, f.Distance) {
			emit(m)
			break
		}
	default:
		if f.Trace {
			for m := range s.trace(f.Word, f.Distance) {
				emit(m)
			}
		} else {
			for w := range s.words(f.Word, f.Distance) {
				emit(trie.Match{Word: w})
			}
		}
	}

	ctx.Log.WithFields(logrus.Fields{"query": f.Word, "distance": f.Distance, "mode": f.Mode}).Debug("search finished")
	if !found {
		return fmt.Errorf("%w for %q within distance %d", ErrNoMatch, f.Word, f.Distance)
	}
	return nil
}

// alignment returns the cheapest alignment of word among matches.
func alignment(matches iter.Seq[trie.Match], word string) trie.Match {
	best := trie.Match{Word: word, Remaining: -1}
	for m := range matches {
		if m.Word == word && m.Remaining > best.Remaining {
			best = m
		}
	}
	return best
}

type HammingCmd struct {
	SearchFlags
}

func (c *HammingCmd) Run(ctx *Context) error {
	t, err := ctx.Load()
	if err != nil {
		return err
	}
	return c.search(ctx, searcher{words: t.AllHamming, trace: t.AllHammingTrace, best: t.BestHamming})
}

type LevenshteinCmd struct {
	SearchFlags
}

func (c *LevenshteinCmd) Run(ctx *Context) error {
	t, err := ctx.Load()
	if err != nil {
		return err
	}
	return c.search(ctx, searcher{words: t.AllLevenshtein, trace: t.AllLevenshteinTrace, best: t.BestLevenshtein})
}

type FillCmd struct {
	Alphabet string `required:"" help:"Symbols to build words from."`
	Length   int    `short:"l" required:"" help:"Length of the generated words."`
	Merge    bool   `help:"Merge the generated words into the dictionary and print the result."`
}

func (c *FillCmd) Validate() error {
	if c.Length < 0 {
		return fmt.Errorf("length must not be negative, got %d", c.Length)
	}
	return nil
}

func (c *FillCmd) Run(ctx *Context) error {
	t := trie.New()
	if c.Merge {
		var err error
		if t, err = ctx.Load(); err != nil {
			return err
		}
	}
	t.Fill([]rune(c.Alphabet), c.Length)
	for w := range t.All() {
		fmt.Fprintln(ctx.Out, w)
	}
	return nil
}

type RemoveCmd struct {
	Word  string `arg:"" help:"Word to remove."`
	Count int    `short:"n" default:"1" help:"Number of occurrences to remove."`
	Force bool   `short:"f" help:"Remove every occurrence."`
}

func (c *RemoveCmd) Run(ctx *Context) error {
	t, err := ctx.Load()
	if err != nil {
		return err
	}
	count := c.Count
	if c.Force {
		count = trie.ForceRemove
	}
	gone := t.RemoveN(c.Word, count)
	left, _ := t.Get(c.Word)
	ctx.Log.WithFields(logrus.Fields{"word": c.Word, "count": count, "gone": gone}).Debug("removed word")
	fmt.Fprintf(ctx.Out, "%s\t%d\n", c.Word, left)
	return nil
}

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	t, err := ctx.Load()
	if err != nil {
		return err
	}
	longest := 0
	for w := range t.All() {
		longest = max(longest, len([]rune(w)))
	}
	fmt.Fprintf(ctx.Out, "words\t%s\n", humanize.Comma(int64(t.Total())))
	fmt.Fprintf(ctx.Out, "distinct\t%s\n", humanize.Comma(int64(t.Len())))
	fmt.Fprintf(ctx.Out, "longest\t%d\n", longest)
	return nil
}
