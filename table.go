package jamo

import (
	"fmt"
	"io"

	"github.com/npillmayer/jamo/jamotab"
)

// Token is one element of a decomposition entry: either a code point or an
// opaque marker that is never recursed into.
type Token = jamotab.Token

// Entry is one decomposition table entry.
type Entry = jamotab.Entry

// EntryReader yields decomposition table entries one-by-one.
// It should return io.EOF when the stream is exhausted.
type EntryReader interface {
	Next() (Entry, error)
}

// Compounds nest at most two levels deep: a cluster may contain a double
// consonant, which in turn contains two simple consonants.
const maxRecursion = 2

// Table is a loaded decomposition table. It is read-only after loading and
// may be shared freely across concurrent callers.
type Table struct {
	decompositions map[rune][]Token
	Identifier     string // identifies the table's data source
}

// LoadTable builds a decomposition table from one or more streaming,
// format-agnostic sources.
//
// File format parsing is intentionally outside the base package. Use package
// jamotab to parse the concrete reference-file format and feed this API.
// Reference lines without decomposition tokens are skipped.
func LoadTable(name string, readers ...EntryReader) (*Table, error) {
	t := &Table{
		decompositions: make(map[rune][]Token, 512),
		Identifier:     fmt.Sprintf("decompositions: %s", name),
	}
	for _, reader := range readers {
		if err := t.merge(reader); err != nil {
			return nil, err
		}
	}
	entries, compounds := t.Stats()
	tracer().Infof("decomposition table %q: %d entries, %d compound jamo", name, entries, compounds)
	return t, nil
}

// LoadOverrideReader merges auxiliary entries into this table. Explicit
// auxiliary entries take priority over entries already loaded.
func (t *Table) LoadOverrideReader(reader EntryReader) error {
	return t.merge(reader)
}

func (t *Table) merge(reader EntryReader) error {
	for {
		entry, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if len(entry.Tokens) == 0 {
			continue
		}
		t.decompositions[entry.Code] = append([]Token(nil), entry.Tokens...)
	}
}

// Stats reports the number of table entries and the number of characters
// whose recursive decomposition yields two or more jamo components.
func (t *Table) Stats() (entries, compounds int) {
	entries = len(t.decompositions)
	for code := range t.decompositions {
		n := 0
		for _, token := range t.expand(code, 0) {
			if !token.IsMarker() {
				n++
			}
		}
		if n >= 2 {
			compounds++
		}
	}
	return entries, compounds
}

// expand resolves the decomposition of c recursively. Markers terminate
// recursion, as do components without an entry of their own. A nil result
// means c has no decomposition at all.
func (t *Table) expand(c rune, depth int) []Token {
	tokens, ok := t.decompositions[c]
	if !ok {
		return nil
	}
	expanded := make([]Token, 0, 4)
	for _, token := range tokens {
		if token.IsMarker() {
			expanded = append(expanded, token)
			continue
		}
		if depth < maxRecursion {
			if sub := t.expand(token.Rune, depth+1); sub != nil {
				expanded = append(expanded, sub...)
				continue
			}
		}
		expanded = append(expanded, token)
	}
	return expanded
}
