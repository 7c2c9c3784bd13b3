package trie

import (
	"iter"
	"strings"
)

// Operation codes used in alignment traces.
const (
	OpMatch     = '='
	OpMismatch  = 'X'
	OpInsertion = 'I'
	OpDeletion  = 'D'
)

// Match is an approximate search hit. Remaining is the part of the distance budget
// that was left unused, and Trace is the alignment of the query against Word with one
// operation code per step.
type Match struct {
	Word      string
	Remaining int
	Trace     string
}

// Distance returns the number of edits recorded in an alignment trace.
func Distance(trace string) int {
	return len(trace) - strings.Count(trace, string(OpMatch))
}

// AllHamming returns the stored words of the same length as word that differ from it in
// at most distance positions. A negative distance matches nothing.
func (t *Trie) AllHamming(word string, distance int) iter.Seq[string] {
	return words(t.AllHammingTrace(word, distance))
}

// AllHammingTrace is like AllHamming, but also reports the unused budget and the
// alignment of every hit.
func (t *Trie) AllHammingTrace(word string, distance int) iter.Seq[Match] {
	query := []rune(word)
	return func(yield func(Match) bool) {
		t.root.hamming(query, nil, distance, nil, yield)
	}
}

// Hamming returns the first word found by AllHamming.
func (t *Trie) Hamming(word string, distance int) (string, bool) {
	return first(t.AllHamming(word, distance))
}

// BestHamming returns a word with the smallest Hamming distance to word, trying word
// itself first and then every distance up to the given one.
func (t *Trie) BestHamming(word string, distance int) (string, bool) {
	return t.best(word, distance, t.Hamming)
}

// hamming walks the trie consuming one query symbol per edge and charging one unit of
// budget for every edge that differs from the query.
func (n *node) hamming(query, path []rune, budget int, trace []byte, yield func(Match) bool) bool {
	if budget < 0 {
		return true
	}
	if len(query) == 0 {
		if n.terminal() {
			return yield(Match{Word: string(path), Remaining: budget, Trace: string(trace)})
		}
		return true
	}
	for _, r := range n.symbols() {
		cost, op := substitution(r, query[0])
		if !n.children[r].hamming(query[1:], append(path, r), budget-cost, append(trace, op), yield) {
			return false
		}
	}
	return true
}

// AllLevenshtein returns every stored word within the given edit distance of word, where
// substitutions, insertions and deletions each cost one. Every word is produced once even
// when it can be reached through several alignments. A negative distance matches nothing.
func (t *Trie) AllLevenshtein(word string, distance int) iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := make(map[string]struct{})
		for m := range t.AllLevenshteinTrace(word, distance) {
			if _, ok := seen[m.Word]; ok {
				continue
			}
			seen[m.Word] = struct{}{}
			if !yield(m.Word) {
				return
			}
		}
	}
}

// AllLevenshteinTrace is like AllLevenshtein, but produces one Match per alignment, so a
// word can be reported several times with different traces.
func (t *Trie) AllLevenshteinTrace(word string, distance int) iter.Seq[Match] {
	query := []rune(word)
	return func(yield func(Match) bool) {
		t.root.levenshtein(query, nil, distance, nil, yield)
	}
}

// Levenshtein returns the first word found by AllLevenshtein.
func (t *Trie) Levenshtein(word string, distance int) (string, bool) {
	return first(t.AllLevenshtein(word, distance))
}

// BestLevenshtein returns a word with the smallest edit distance to word, trying word
// itself first and then every distance up to the given one.
func (t *Trie) BestLevenshtein(word string, distance int) (string, bool) {
	return t.best(word, distance, t.Levenshtein)
}

// levenshtein combines three moves at every node: a deletion consumes a query symbol
// without descending, a substitution consumes one and descends, and an insertion descends
// without consuming one. Every move except a matching substitution costs one unit of
// budget.
func (n *node) levenshtein(query, path []rune, budget int, trace []byte, yield func(Match) bool) bool {
	if budget < 0 {
		return true
	}
	if len(query) == 0 {
		if n.terminal() && !yield(Match{Word: string(path), Remaining: budget, Trace: string(trace)}) {
			return false
		}
	} else if !n.levenshtein(query[1:], path, budget-1, append(trace, OpDeletion), yield) {
		return false
	}
	for _, r := range n.symbols() {
		child := n.children[r]
		next := append(path, r)
		if len(query) > 0 {
			cost, op := substitution(r, query[0])
			if !child.levenshtein(query[1:], next, budget-cost, append(trace, op), yield) {
				return false
			}
		}
		if !child.levenshtein(query, next, budget-1, append(trace, OpInsertion), yield) {
			return false
		}
	}
	return true
}

func substitution(stored, queried rune) (int, byte) {
	if stored == queried {
		return 0, OpMatch
	}
	return 1, OpMismatch
}

func (t *Trie) best(word string, distance int, search func(string, int) (string, bool)) (string, bool) {
	if distance < 0 {
		return "", false
	}
	if t.Contains(word) {
		return word, true
	}
	for d := 1; d <= distance; d++ {
		if hit, ok := search(word, d); ok {
			return hit, true
		}
	}
	return "", false
}

func words(matches iter.Seq[Match]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for m := range matches {
			if !yield(m.Word) {
				return
			}
		}
	}
}

func first(seq iter.Seq[string]) (string, bool) {
	for s := range seq {
		return s, true
	}
	return "", false
}
