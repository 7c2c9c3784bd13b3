/*
Package trie provides a character-level prefix tree for dictionary lookups with a fuzzy
fallback. It supports exact and prefix queries, counted insertion and removal, and
approximate matching under Hamming and Levenshtein distance, optionally reporting the
alignment of every hit as a string of operation codes: '=' for a match, 'X' for a
substitution, 'I' for an insertion and 'D' for a deletion.
*/
package trie
